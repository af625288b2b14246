package review

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	reviewRepo "bookwise/database/repository/review"
	"bookwise/models"

	"github.com/google/uuid"
)

// ErrNoReviews means the summarization period contained nothing to digest.
var ErrNoReviews = errors.New("no reviews in period")

// TextGenerator produces free-form text from a prompt. Satisfied by
// intelligence.GeminiClient.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// ReviewService ingests customer reviews and produces AI digests of them.
type ReviewService interface {
	Ingest(ctx context.Context, businessID string, reviews []models.Review) error
	List(ctx context.Context, businessID string) ([]models.Review, error)
	Summarize(ctx context.Context, businessID string, periodStart, periodEnd time.Time) (*models.ReviewSummary, error)
	LatestSummary(ctx context.Context, businessID string) (*models.ReviewSummary, error)
}

// DefaultReviewService implements ReviewService.
type DefaultReviewService struct {
	Repo      reviewRepo.ReviewRepository
	Generator TextGenerator
	Now       func() time.Time
}

func (s *DefaultReviewService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Ingest stores a batch of reviews, stamping IDs and the owning business.
func (s *DefaultReviewService) Ingest(ctx context.Context, businessID string, reviews []models.Review) error {
	now := s.now()
	for i := range reviews {
		reviews[i].ID = uuid.New().String()
		reviews[i].BusinessID = businessID
		reviews[i].CreatedAt = now
		if reviews[i].ReviewedAt.IsZero() {
			reviews[i].ReviewedAt = now
		}
	}
	if err := s.Repo.CreateMany(ctx, reviews); err != nil {
		return fmt.Errorf("ingest reviews: %w", err)
	}
	return nil
}

func (s *DefaultReviewService) List(ctx context.Context, businessID string) ([]models.Review, error) {
	return s.Repo.List(ctx, businessID)
}

// Summarize digests the period's reviews into a short owner-facing summary
// and stores it.
func (s *DefaultReviewService) Summarize(ctx context.Context, businessID string, periodStart, periodEnd time.Time) (*models.ReviewSummary, error) {
	reviews, err := s.Repo.ListInRange(ctx, businessID, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}
	if len(reviews) == 0 {
		return nil, ErrNoReviews
	}

	text, err := s.Generator.GenerateContent(ctx, buildSummaryPrompt(reviews))
	if err != nil {
		return nil, fmt.Errorf("summarize reviews: %w", err)
	}

	summary := &models.ReviewSummary{
		ID:          uuid.New().String(),
		BusinessID:  businessID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Summary:     strings.TrimSpace(text),
		ReviewCount: len(reviews),
		CreatedAt:   s.now(),
	}
	if err := s.Repo.SaveSummary(ctx, summary); err != nil {
		return nil, fmt.Errorf("save review summary: %w", err)
	}
	return summary, nil
}

func (s *DefaultReviewService) LatestSummary(ctx context.Context, businessID string) (*models.ReviewSummary, error) {
	return s.Repo.LatestSummary(ctx, businessID)
}

func buildSummaryPrompt(reviews []models.Review) string {
	var sb strings.Builder
	sb.WriteString("Summarize the following customer reviews for a small business owner. ")
	sb.WriteString("Highlight recurring praise, recurring complaints, and one actionable suggestion. ")
	sb.WriteString("Keep it under 120 words.\n\n")
	for _, r := range reviews {
		fmt.Fprintf(&sb, "- (%d/5) %s\n", r.Rating, strings.TrimSpace(r.Body))
	}
	return sb.String()
}
