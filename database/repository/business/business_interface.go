package businessRepo

import (
	"context"

	"bookwise/models"
)

// BusinessRepository provides tenant and membership lookups.
type BusinessRepository interface {
	Create(ctx context.Context, business *models.Business) error
	GetByID(ctx context.Context, businessID string) (*models.Business, error)
	GetBySlug(ctx context.Context, slug string) (*models.Business, error)
	Update(ctx context.Context, business *models.Business) error
	ListForUser(ctx context.Context, userID string) ([]models.Business, error)
	AddMember(ctx context.Context, member *models.BusinessMember) error
	IsMember(ctx context.Context, businessID, userID string) (bool, error)
}
