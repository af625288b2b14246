package serviceRepo

import (
	"context"

	"bookwise/models"
)

// ServiceRepository provides access to a business's service catalog.
type ServiceRepository interface {
	Create(ctx context.Context, service *models.Service) error
	// GetByID returns (nil, nil) when no service matches: a missing service is
	// a valid "no availability" answer for the solver, not a store failure.
	GetByID(ctx context.Context, serviceID string) (*models.Service, error)
	Update(ctx context.Context, service *models.Service) error
	List(ctx context.Context, businessID string) ([]models.Service, error)
	ListActive(ctx context.Context, businessID string) ([]models.Service, error)
}
