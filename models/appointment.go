package models

import "time"

// Appointment statuses. Only scheduled and confirmed appointments block a
// slot or a new booking; the rest are inert for conflict purposes.
const (
	AppointmentScheduled = "scheduled"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
	AppointmentNoShow    = "no_show"
)

// ActiveAppointmentStatuses are the statuses that occupy time.
var ActiveAppointmentStatuses = []string{AppointmentScheduled, AppointmentConfirmed}

// Appointment is a committed booking. A nil StaffID means the appointment is
// not assigned to anyone in particular and occupies every staff member's time.
type Appointment struct {
	ID         string    `bson:"id" json:"id"`
	BusinessID string    `bson:"business_id" json:"businessId"`
	CustomerID string    `bson:"customer_id" json:"customerId"`
	ServiceID  string    `bson:"service_id" json:"serviceId"`
	StaffID    *string   `bson:"staff_id,omitempty" json:"staffId"`
	StartTime  time.Time `bson:"start_time" json:"startTime"`
	EndTime    time.Time `bson:"end_time" json:"endTime"`
	Status     string    `bson:"status" json:"status"`
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}

// IsActive reports whether the appointment occupies time for conflict checks.
func (a *Appointment) IsActive() bool {
	return a.Status == AppointmentScheduled || a.Status == AppointmentConfirmed
}
