package catalog

import (
	"context"
	"fmt"
	"time"

	"bookwise/models"

	"github.com/google/uuid"
)

func (s *DefaultCatalogService) CreateService(ctx context.Context, service *models.Service) error {
	if service.DurationMinutes <= 0 {
		return fmt.Errorf("service duration must be positive")
	}
	service.ID = uuid.New().String()
	service.IsActive = true
	service.CreatedAt = time.Now()
	service.UpdatedAt = service.CreatedAt
	if err := s.Services.Create(ctx, service); err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	return nil
}

func (s *DefaultCatalogService) UpdateService(ctx context.Context, service *models.Service) error {
	existing, err := s.Services.GetByID(ctx, service.ID)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	if existing == nil || existing.BusinessID != service.BusinessID {
		return ErrServiceNotFound
	}
	service.CreatedAt = existing.CreatedAt
	service.UpdatedAt = time.Now()
	if err := s.Services.Update(ctx, service); err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

func (s *DefaultCatalogService) ListServices(ctx context.Context, businessID string, activeOnly bool) ([]models.Service, error) {
	if activeOnly {
		return s.Services.ListActive(ctx, businessID)
	}
	return s.Services.List(ctx, businessID)
}

func (s *DefaultCatalogService) CreateStaff(ctx context.Context, staff *models.Staff) error {
	staff.ID = uuid.New().String()
	staff.IsActive = true
	staff.CreatedAt = time.Now()
	if err := s.Staff.Create(ctx, staff); err != nil {
		return fmt.Errorf("create staff: %w", err)
	}
	return nil
}

func (s *DefaultCatalogService) UpdateStaff(ctx context.Context, staff *models.Staff) error {
	existing, err := s.Staff.GetByID(ctx, staff.ID)
	if err != nil {
		return fmt.Errorf("update staff: %w", err)
	}
	if existing == nil || existing.BusinessID != staff.BusinessID {
		return ErrStaffNotFound
	}
	staff.CreatedAt = existing.CreatedAt
	if err := s.Staff.Update(ctx, staff); err != nil {
		return fmt.Errorf("update staff: %w", err)
	}
	return nil
}

func (s *DefaultCatalogService) ListStaff(ctx context.Context, businessID string) ([]models.Staff, error) {
	return s.Staff.List(ctx, businessID)
}

// SetWeeklyHours replaces the staff member's shift template. At most one
// shift per weekday; each row must have a start strictly before its end.
func (s *DefaultCatalogService) SetWeeklyHours(ctx context.Context, businessID, staffID string, hours []models.WeeklyHours) error {
	if err := s.requireStaff(ctx, businessID, staffID); err != nil {
		return err
	}

	seen := make(map[int]bool)
	for _, h := range hours {
		if h.DayOfWeek < 0 || h.DayOfWeek > 6 {
			return fmt.Errorf("%w: day of week %d out of range", ErrInvalidHours, h.DayOfWeek)
		}
		if seen[h.DayOfWeek] {
			return fmt.Errorf("%w: duplicate day of week %d", ErrInvalidHours, h.DayOfWeek)
		}
		seen[h.DayOfWeek] = true
		if h.StartTime >= h.EndTime {
			return fmt.Errorf("%w: start %s not before end %s", ErrInvalidHours, h.StartTime, h.EndTime)
		}
	}

	if err := s.Staff.SetWeeklyHours(ctx, staffID, hours); err != nil {
		return fmt.Errorf("set weekly hours: %w", err)
	}
	return nil
}

func (s *DefaultCatalogService) GetWeeklyHours(ctx context.Context, businessID, staffID string) ([]models.WeeklyHours, error) {
	if err := s.requireStaff(ctx, businessID, staffID); err != nil {
		return nil, err
	}
	return s.Staff.ListWeeklyHours(ctx, []string{staffID})
}

func (s *DefaultCatalogService) AddTimeOff(ctx context.Context, businessID string, timeOff *models.TimeOff) error {
	if err := s.requireStaff(ctx, businessID, timeOff.StaffID); err != nil {
		return err
	}
	if !timeOff.Start.Before(timeOff.End) {
		return fmt.Errorf("time off start must be before end")
	}
	timeOff.ID = uuid.New().String()
	if err := s.Staff.AddTimeOff(ctx, timeOff); err != nil {
		return fmt.Errorf("add time off: %w", err)
	}
	return nil
}

func (s *DefaultCatalogService) RemoveTimeOff(ctx context.Context, businessID, staffID, timeOffID string) error {
	if err := s.requireStaff(ctx, businessID, staffID); err != nil {
		return err
	}
	if err := s.Staff.DeleteTimeOff(ctx, staffID, timeOffID); err != nil {
		return fmt.Errorf("remove time off: %w", err)
	}
	return nil
}

func (s *DefaultCatalogService) requireStaff(ctx context.Context, businessID, staffID string) error {
	staff, err := s.Staff.GetByID(ctx, staffID)
	if err != nil {
		return fmt.Errorf("fetch staff: %w", err)
	}
	if staff == nil || staff.BusinessID != businessID {
		return ErrStaffNotFound
	}
	return nil
}
