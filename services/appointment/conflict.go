package appointment

import (
	"context"
	"fmt"
	"time"

	"bookwise/models"
	"bookwise/services/availability"
)

// ConflictsWith reports whether the candidate interval [start,end) collides
// with any of the given active appointments for the candidate staff member.
// It applies the same half-open overlap rule as the availability filters so
// that "browse available slots" and "commit a booking" can never disagree on
// what a conflict is. A nil staff ID on either side blocks everything: an
// unassigned appointment occupies all staff, and an unassigned candidate
// competes with all staff.
func ConflictsWith(appointments []models.Appointment, staffID *string, start, end time.Time) bool {
	for _, appt := range appointments {
		if !availability.Overlaps(start, end, appt.StartTime, appt.EndTime) {
			continue
		}
		if appt.StaffID == nil || staffID == nil || *appt.StaffID == *staffID {
			return true
		}
	}
	return false
}

// hasConflict is the write-path conflict check. excludeID skips the
// appointment being rescheduled so it does not collide with itself.
func (s *DefaultAppointmentService) hasConflict(ctx context.Context, businessID string, staffID *string, start, end time.Time, excludeID string) (bool, error) {
	overlapping, err := s.Repo.ListActiveOverlapping(ctx, businessID, start, end, excludeID)
	if err != nil {
		return false, fmt.Errorf("conflict check: %w", err)
	}
	return ConflictsWith(overlapping, staffID, start, end), nil
}
