package review

import (
	"context"
	"testing"
	"time"

	"bookwise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewStore struct {
	reviews []models.Review
	summary *models.ReviewSummary
}

func (f *fakeReviewStore) CreateMany(ctx context.Context, reviews []models.Review) error {
	f.reviews = append(f.reviews, reviews...)
	return nil
}
func (f *fakeReviewStore) List(ctx context.Context, businessID string) ([]models.Review, error) {
	return f.reviews, nil
}
func (f *fakeReviewStore) ListInRange(ctx context.Context, businessID string, periodStart, periodEnd time.Time) ([]models.Review, error) {
	var out []models.Review
	for _, r := range f.reviews {
		if !r.ReviewedAt.Before(periodStart) && !r.ReviewedAt.After(periodEnd) {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeReviewStore) SaveSummary(ctx context.Context, summary *models.ReviewSummary) error {
	f.summary = summary
	return nil
}
func (f *fakeReviewStore) LatestSummary(ctx context.Context, businessID string) (*models.ReviewSummary, error) {
	return f.summary, nil
}

type fakeGenerator struct {
	prompt string
	reply  string
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.reply, nil
}

func TestIngestStampsReviews(t *testing.T) {
	store := &fakeReviewStore{}
	svc := &DefaultReviewService{Repo: store}

	err := svc.Ingest(context.Background(), "biz", []models.Review{
		{Rating: 5, Body: "Great cut"},
		{Rating: 2, Body: "Long wait", ReviewedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)
	require.Len(t, store.reviews, 2)

	for _, r := range store.reviews {
		assert.NotEmpty(t, r.ID)
		assert.Equal(t, "biz", r.BusinessID)
		assert.False(t, r.ReviewedAt.IsZero())
	}
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), store.reviews[1].ReviewedAt,
		"explicit review dates are kept")
}

func TestSummarize(t *testing.T) {
	periodStart := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	store := &fakeReviewStore{reviews: []models.Review{
		{BusinessID: "biz", Rating: 5, Body: "Great cut", ReviewedAt: periodStart.AddDate(0, 0, 3)},
		{BusinessID: "biz", Rating: 1, Body: "Too loud", ReviewedAt: periodStart.AddDate(0, 0, 10)},
	}}
	gen := &fakeGenerator{reply: "  Mostly positive; reduce noise.  "}
	svc := &DefaultReviewService{Repo: store, Generator: gen}

	summary, err := svc.Summarize(context.Background(), "biz", periodStart, periodEnd)
	require.NoError(t, err)

	assert.Equal(t, "Mostly positive; reduce noise.", summary.Summary)
	assert.Equal(t, 2, summary.ReviewCount)
	assert.Contains(t, gen.prompt, "Great cut")
	assert.Contains(t, gen.prompt, "(1/5) Too loud")
	require.NotNil(t, store.summary, "summary persisted")
}

func TestSummarizeEmptyPeriod(t *testing.T) {
	svc := &DefaultReviewService{Repo: &fakeReviewStore{}, Generator: &fakeGenerator{}}

	_, err := svc.Summarize(context.Background(), "biz",
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrNoReviews)
}
