package appointment

import (
	"context"
	"fmt"
	"time"

	"bookwise/models"
	"bookwise/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create validates tenant ownership of the referenced customer, service and
// staff, re-checks conflicts at write time and inserts the appointment as
// scheduled. A 24h-before reminder job is enqueued when the start is far
// enough out; reminder scheduling is best-effort and never fails the booking.
func (s *DefaultAppointmentService) Create(ctx context.Context, businessID string, input CreateAppointmentInput) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if !input.EndTime.After(input.StartTime) {
		return nil, ErrInvalidInterval
	}

	customer, err := s.Customers.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	if customer == nil || customer.BusinessID != businessID {
		return nil, ErrCustomerNotFound
	}

	service, err := s.Services.GetByID(ctx, input.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	if service == nil || service.BusinessID != businessID {
		return nil, ErrServiceNotFound
	}

	if input.StaffID != nil {
		staff, err := s.Staff.GetByID(ctx, *input.StaffID)
		if err != nil {
			return nil, fmt.Errorf("create appointment: %w", err)
		}
		if staff == nil || staff.BusinessID != businessID {
			return nil, ErrStaffNotFound
		}
	}

	conflict, err := s.hasConflict(ctx, businessID, input.StaffID, input.StartTime, input.EndTime, "")
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrSlotConflict
	}

	now := s.now()
	appt := &models.Appointment{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		CustomerID: input.CustomerID,
		ServiceID:  input.ServiceID,
		StaffID:    input.StaffID,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		Status:     models.AppointmentScheduled,
		Notes:      input.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	if err := s.scheduleReminder(ctx, appt, customer, service); err != nil {
		logger.Warn("failed to schedule appointment reminder",
			zap.String("appointmentID", appt.ID), zap.Error(err))
	}

	return appt, nil
}

func (s *DefaultAppointmentService) GetByID(ctx context.Context, businessID, appointmentID string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	if appt == nil || appt.BusinessID != businessID {
		return nil, ErrAppointmentNotFound
	}
	return appt, nil
}

func (s *DefaultAppointmentService) List(ctx context.Context, businessID string, rangeStart, rangeEnd *time.Time) ([]models.Appointment, error) {
	appointments, err := s.Repo.List(ctx, businessID, rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appointments, nil
}

var knownStatuses = map[string]bool{
	models.AppointmentScheduled: true,
	models.AppointmentConfirmed: true,
	models.AppointmentCompleted: true,
	models.AppointmentCancelled: true,
	models.AppointmentNoShow:    true,
}

func (s *DefaultAppointmentService) UpdateStatus(ctx context.Context, businessID, appointmentID, status string) (*models.Appointment, error) {
	if !knownStatuses[status] {
		return nil, ErrInvalidStatus
	}
	appt, err := s.GetByID(ctx, businessID, appointmentID)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateStatus(ctx, businessID, appointmentID, status); err != nil {
		return nil, fmt.Errorf("update appointment status: %w", err)
	}
	appt.Status = status
	appt.UpdatedAt = s.now()
	return appt, nil
}

// Cancel marks the appointment cancelled; cancelled appointments immediately
// stop blocking availability.
func (s *DefaultAppointmentService) Cancel(ctx context.Context, businessID, appointmentID string) (*models.Appointment, error) {
	appt, err := s.GetByID(ctx, businessID, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.Status == models.AppointmentCancelled || appt.Status == models.AppointmentCompleted {
		return nil, ErrAlreadyFinalized
	}
	return s.UpdateStatus(ctx, businessID, appointmentID, models.AppointmentCancelled)
}

// Reschedule moves the appointment, re-running the conflict check with the
// appointment itself excluded so it does not collide with its own old slot.
func (s *DefaultAppointmentService) Reschedule(ctx context.Context, businessID, appointmentID string, start, end time.Time) (*models.Appointment, error) {
	if !end.After(start) {
		return nil, ErrInvalidInterval
	}

	appt, err := s.GetByID(ctx, businessID, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.Status == models.AppointmentCancelled || appt.Status == models.AppointmentCompleted {
		return nil, ErrAlreadyFinalized
	}

	conflict, err := s.hasConflict(ctx, businessID, appt.StaffID, start, end, appointmentID)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrSlotConflict
	}

	appt.StartTime = start
	appt.EndTime = end
	appt.UpdatedAt = s.now()
	if err := s.Repo.Update(ctx, appt); err != nil {
		return nil, fmt.Errorf("reschedule appointment: %w", err)
	}
	return appt, nil
}
