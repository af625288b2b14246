package models

import "time"

// TimeSlot is one bookable opening. Immutable once produced; End is always
// Start plus the service duration.
type TimeSlot struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	StaffID *string   `json:"staffId"`
}

// AvailabilityRequest defines an availability query window. StaffID narrows
// the search to one staff member; when nil all active staff are considered.
type AvailabilityRequest struct {
	BusinessID string
	ServiceID  string
	StartDate  time.Time
	EndDate    time.Time
	StaffID    *string
}
