package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	customerRepo "bookwise/database/repository/customer"
	"bookwise/models"

	"github.com/google/uuid"
)

// ErrCustomerNotFound marks a tenant-scoped customer lookup miss.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerService manages a business's customer records.
type CustomerService interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, businessID, customerID string) (*models.Customer, error)
	List(ctx context.Context, businessID string) ([]models.Customer, error)
	// GetOrCreateByEmail returns the existing customer with that email, or
	// creates a minimal record when none exists.
	GetOrCreateByEmail(ctx context.Context, businessID, email, name string) (*models.Customer, error)
}

// DefaultCustomerService implements CustomerService.
type DefaultCustomerService struct {
	Repo customerRepo.CustomerRepository
}

func (s *DefaultCustomerService) Create(ctx context.Context, customer *models.Customer) error {
	customer.ID = uuid.New().String()
	customer.Email = strings.ToLower(strings.TrimSpace(customer.Email))
	customer.CreatedAt = time.Now()
	if err := s.Repo.Create(ctx, customer); err != nil {
		return fmt.Errorf("create customer: %w", err)
	}
	return nil
}

func (s *DefaultCustomerService) GetByID(ctx context.Context, businessID, customerID string) (*models.Customer, error) {
	customer, err := s.Repo.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("fetch customer: %w", err)
	}
	if customer == nil || customer.BusinessID != businessID {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

func (s *DefaultCustomerService) List(ctx context.Context, businessID string) ([]models.Customer, error) {
	return s.Repo.List(ctx, businessID)
}

func (s *DefaultCustomerService) GetOrCreateByEmail(ctx context.Context, businessID, email, name string) (*models.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	existing, err := s.Repo.GetByEmail(ctx, businessID, email)
	if err != nil {
		return nil, fmt.Errorf("fetch customer by email: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	customer := &models.Customer{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Name:       name,
		Email:      email,
		CreatedAt:  time.Now(),
	}
	if err := s.Repo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return customer, nil
}
