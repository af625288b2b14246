package business

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	businessRepo "bookwise/database/repository/business"
	"bookwise/models"

	"github.com/google/uuid"
)

var (
	// ErrBusinessNotFound marks a business lookup miss.
	ErrBusinessNotFound = errors.New("business not found")
	// ErrSlugTaken rejects a slug already claimed by another business.
	ErrSlugTaken = errors.New("slug already in use")
	// ErrInvalidTimezone rejects a timezone name Go cannot load.
	ErrInvalidTimezone = errors.New("invalid timezone")
)

const defaultTimezone = "UTC"

// BusinessService manages tenants and their memberships.
type BusinessService interface {
	Create(ctx context.Context, business *models.Business, ownerUserID string) error
	GetByID(ctx context.Context, businessID string) (*models.Business, error)
	GetBySlug(ctx context.Context, slug string) (*models.Business, error)
	Update(ctx context.Context, business *models.Business) error
	ListForUser(ctx context.Context, userID string) ([]models.Business, error)
}

// DefaultBusinessService implements BusinessService.
type DefaultBusinessService struct {
	Repo businessRepo.BusinessRepository
}

var slugSanitizer = regexp.MustCompile(`[^a-z0-9]+`)

// Create registers a new business and makes ownerUserID its owner member.
func (s *DefaultBusinessService) Create(ctx context.Context, business *models.Business, ownerUserID string) error {
	if business.Timezone == "" {
		business.Timezone = defaultTimezone
	}
	if _, err := time.LoadLocation(business.Timezone); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTimezone, business.Timezone)
	}

	if business.Slug == "" {
		business.Slug = Slugify(business.Name)
	}
	existing, err := s.Repo.GetBySlug(ctx, business.Slug)
	if err != nil {
		return fmt.Errorf("check slug: %w", err)
	}
	if existing != nil {
		return ErrSlugTaken
	}

	business.ID = uuid.New().String()
	business.CreatedAt = time.Now()
	business.UpdatedAt = business.CreatedAt
	if err := s.Repo.Create(ctx, business); err != nil {
		return fmt.Errorf("create business: %w", err)
	}

	member := &models.BusinessMember{
		BusinessID: business.ID,
		UserID:     ownerUserID,
		Role:       "owner",
		CreatedAt:  business.CreatedAt,
	}
	if err := s.Repo.AddMember(ctx, member); err != nil {
		return fmt.Errorf("add owner member: %w", err)
	}
	return nil
}

func (s *DefaultBusinessService) GetByID(ctx context.Context, businessID string) (*models.Business, error) {
	business, err := s.Repo.GetByID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("fetch business: %w", err)
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}
	return business, nil
}

func (s *DefaultBusinessService) GetBySlug(ctx context.Context, slug string) (*models.Business, error) {
	business, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("fetch business: %w", err)
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}
	return business, nil
}

func (s *DefaultBusinessService) Update(ctx context.Context, business *models.Business) error {
	existing, err := s.Repo.GetByID(ctx, business.ID)
	if err != nil {
		return fmt.Errorf("fetch business: %w", err)
	}
	if existing == nil {
		return ErrBusinessNotFound
	}
	if business.Timezone != "" {
		if _, err := time.LoadLocation(business.Timezone); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidTimezone, business.Timezone)
		}
	} else {
		business.Timezone = existing.Timezone
	}
	business.Slug = existing.Slug
	business.CreatedAt = existing.CreatedAt
	business.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, business); err != nil {
		return fmt.Errorf("update business: %w", err)
	}
	return nil
}

func (s *DefaultBusinessService) ListForUser(ctx context.Context, userID string) ([]models.Business, error) {
	return s.Repo.ListForUser(ctx, userID)
}

// Slugify turns a display name into a URL-safe slug.
func Slugify(name string) string {
	slug := slugSanitizer.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
