package customerRepo

import (
	"context"

	"bookwise/models"
)

// CustomerRepository stores a business's customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	// GetByID returns (nil, nil) when no customer matches.
	GetByID(ctx context.Context, customerID string) (*models.Customer, error)
	// GetByEmail returns (nil, nil) when no customer of the business matches.
	GetByEmail(ctx context.Context, businessID, email string) (*models.Customer, error)
	List(ctx context.Context, businessID string) ([]models.Customer, error)
	SaveChurnSnapshot(ctx context.Context, snapshot *models.ChurnSnapshot) error
	LatestChurnSnapshot(ctx context.Context, businessID string) (*models.ChurnSnapshot, error)
}
