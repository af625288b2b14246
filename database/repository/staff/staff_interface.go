package staffRepo

import (
	"context"
	"time"

	"bookwise/models"
)

// StaffRepository provides staff rosters, their weekly working hours and
// time-off exceptions.
type StaffRepository interface {
	Create(ctx context.Context, staff *models.Staff) error
	// GetByID returns (nil, nil) when no staff member matches.
	GetByID(ctx context.Context, staffID string) (*models.Staff, error)
	Update(ctx context.Context, staff *models.Staff) error
	List(ctx context.Context, businessID string) ([]models.Staff, error)
	// ListActive returns active staff of the business; a non-nil staffID
	// narrows the result to that single staff member.
	ListActive(ctx context.Context, businessID string, staffID *string) ([]models.Staff, error)

	// SetWeeklyHours replaces the weekly shift template for one staff member.
	SetWeeklyHours(ctx context.Context, staffID string, hours []models.WeeklyHours) error
	ListWeeklyHours(ctx context.Context, staffIDs []string) ([]models.WeeklyHours, error)

	AddTimeOff(ctx context.Context, timeOff *models.TimeOff) error
	DeleteTimeOff(ctx context.Context, staffID, timeOffID string) error
	// ListTimeOff returns time-off intervals for the given staff intersecting
	// [rangeStart, rangeEnd].
	ListTimeOff(ctx context.Context, staffIDs []string, rangeStart, rangeEnd time.Time) ([]models.TimeOff, error)
}
