package appointment

import "errors"

var (
	// ErrAppointmentNotFound marks a lookup miss scoped to the tenant.
	ErrAppointmentNotFound = errors.New("appointment not found")
	// ErrCustomerNotFound is returned when the customer does not belong to the business.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrServiceNotFound is returned when the service does not belong to the business.
	ErrServiceNotFound = errors.New("service not found")
	// ErrStaffNotFound is returned when the staff member does not belong to the business.
	ErrStaffNotFound = errors.New("staff member not found")
	// ErrSlotConflict is returned when the requested interval overlaps an
	// active appointment. Callers should re-search availability rather than
	// retry blindly.
	ErrSlotConflict = errors.New("time slot conflict")
	// ErrInvalidInterval is returned when end does not come after start.
	ErrInvalidInterval = errors.New("appointment end must be after start")
	// ErrAlreadyFinalized guards mutation of cancelled or completed appointments.
	ErrAlreadyFinalized = errors.New("cannot modify a cancelled or completed appointment")
	// ErrInvalidStatus rejects status values outside the known set.
	ErrInvalidStatus = errors.New("unknown appointment status")
)
