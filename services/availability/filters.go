package availability

import (
	"time"

	"bookwise/models"
)

// MinLeadTime is the minimum buffer between now and a bookable slot's start.
const MinLeadTime = time.Hour

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// overlap. Touching endpoints (e1 == s2) do not overlap. This is the single
// overlap definition shared by the slot filters and the write-path conflict
// check; the two must never diverge.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}

// passesLeadTime rejects slots starting earlier than now plus MinLeadTime.
func passesLeadTime(start, now time.Time) bool {
	return !start.Before(now.Add(MinLeadTime))
}

// fitsShift rejects slots extending past the shift end. The grid generator
// already guarantees this; re-checked here so the filter chain stands on its
// own.
func fitsShift(end, shiftEnd time.Time) bool {
	return !end.After(shiftEnd)
}

// overlapsTimeOff reports whether the slot overlaps any time-off interval of
// the slot's staff member.
func overlapsTimeOff(start, end time.Time, staffID string, timeOff []models.TimeOff) bool {
	for _, to := range timeOff {
		if to.StaffID != staffID {
			continue
		}
		if Overlaps(start, end, to.Start, to.End) {
			return true
		}
	}
	return false
}

// conflictsAppointment reports whether the slot overlaps an active
// appointment that blocks this staff member. An appointment with no assigned
// staff occupies every staff member's time: it blocks all candidates of the
// business during its interval.
func conflictsAppointment(start, end time.Time, staffID string, appointments []models.Appointment) bool {
	for _, appt := range appointments {
		if !Overlaps(start, end, appt.StartTime, appt.EndTime) {
			continue
		}
		if appt.StaffID == nil || *appt.StaffID == staffID {
			return true
		}
	}
	return false
}
