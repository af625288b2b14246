package appointment

import (
	"context"
	"fmt"
	"time"

	"bookwise/models"
	"bookwise/services/tasks"
)

// reminderLeadTime is how long before the appointment start the reminder fires.
const reminderLeadTime = 24 * time.Hour

// scheduleReminder enqueues a reminder job 24 hours before the appointment
// start. Appointments starting sooner than that get no reminder. SMS is
// preferred when the customer has a phone number, email otherwise.
func (s *DefaultAppointmentService) scheduleReminder(ctx context.Context, appt *models.Appointment, customer *models.Customer, service *models.Service) error {
	if s.Jobs == nil {
		return nil
	}

	fireAt := appt.StartTime.Add(-reminderLeadTime)
	if !fireAt.After(s.now()) {
		return nil
	}

	channel, to := "email", customer.Email
	if customer.Phone != "" {
		channel, to = "sms", customer.Phone
	}
	if to == "" {
		return nil
	}

	payload := models.ReminderPayload{
		BusinessID:    appt.BusinessID,
		AppointmentID: appt.ID,
		Channel:       channel,
		To:            to,
		Subject:       "Appointment Reminder",
		Message: fmt.Sprintf("Reminder: Your %s is tomorrow at %s.",
			service.Name, s.formatLocalTime(ctx, appt.BusinessID, appt.StartTime)),
	}

	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("build reminder task: %w", err)
	}
	if _, err := s.Jobs.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("enqueue reminder task: %w", err)
	}
	return nil
}

// formatLocalTime renders an instant in the business's timezone, falling back
// to the instant's own location when the business or its timezone is unusable.
func (s *DefaultAppointmentService) formatLocalTime(ctx context.Context, businessID string, t time.Time) string {
	if s.Businesses != nil {
		if business, err := s.Businesses.GetByID(ctx, businessID); err == nil && business != nil {
			if loc, err := time.LoadLocation(business.Timezone); err == nil {
				return t.In(loc).Format("3:04 PM")
			}
		}
	}
	return t.Format("3:04 PM")
}
