package apptRepo

import (
	"context"
	"time"

	"bookwise/models"
)

// AppointmentRepository stores committed bookings.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	// GetByID returns (nil, nil) when no appointment matches.
	GetByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	Update(ctx context.Context, appointment *models.Appointment) error
	UpdateStatus(ctx context.Context, businessID, appointmentID, status string) error
	// List returns appointments of a business ordered by start time; nil range
	// bounds leave that side open.
	List(ctx context.Context, businessID string, rangeStart, rangeEnd *time.Time) ([]models.Appointment, error)
	// ListActiveInRange returns scheduled/confirmed appointments intersecting
	// [rangeStart, rangeEnd].
	ListActiveInRange(ctx context.Context, businessID string, rangeStart, rangeEnd time.Time) ([]models.Appointment, error)
	// ListActiveOverlapping returns scheduled/confirmed appointments overlapping
	// the half-open interval [start, end), excluding excludeID when non-empty.
	ListActiveOverlapping(ctx context.Context, businessID string, start, end time.Time, excludeID string) ([]models.Appointment, error)
	// CountByCustomerSince returns, per customer ID, the number of active
	// appointments starting at or after since.
	CountByCustomerSince(ctx context.Context, businessID string, since time.Time) (map[string]int, error)
}
