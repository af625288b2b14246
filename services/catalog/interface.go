package catalog

import (
	"context"
	"errors"

	serviceRepo "bookwise/database/repository/service"
	staffRepo "bookwise/database/repository/staff"
	"bookwise/models"
)

var (
	// ErrServiceNotFound marks a tenant-scoped service lookup miss.
	ErrServiceNotFound = errors.New("service not found")
	// ErrStaffNotFound marks a tenant-scoped staff lookup miss.
	ErrStaffNotFound = errors.New("staff member not found")
	// ErrInvalidHours rejects weekly-hours rows that fail validation.
	ErrInvalidHours = errors.New("invalid weekly hours")
)

// CatalogService manages the booking configuration of a business: its
// services, staff roster, weekly working hours and time off. This is
// long-lived configuration edited outside the availability core.
type CatalogService interface {
	CreateService(ctx context.Context, service *models.Service) error
	UpdateService(ctx context.Context, service *models.Service) error
	ListServices(ctx context.Context, businessID string, activeOnly bool) ([]models.Service, error)

	CreateStaff(ctx context.Context, staff *models.Staff) error
	UpdateStaff(ctx context.Context, staff *models.Staff) error
	ListStaff(ctx context.Context, businessID string) ([]models.Staff, error)

	SetWeeklyHours(ctx context.Context, businessID, staffID string, hours []models.WeeklyHours) error
	GetWeeklyHours(ctx context.Context, businessID, staffID string) ([]models.WeeklyHours, error)

	AddTimeOff(ctx context.Context, businessID string, timeOff *models.TimeOff) error
	RemoveTimeOff(ctx context.Context, businessID, staffID, timeOffID string) error
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Services serviceRepo.ServiceRepository
	Staff    staffRepo.StaffRepository
}
