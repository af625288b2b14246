package availability

import "errors"

var (
	// ErrInvalidRange is returned when the request window ends before it starts.
	ErrInvalidRange = errors.New("availability: start date must not be after end date")
	// ErrWindowTooLarge is returned when the request window exceeds
	// MaxWindowDays. Without a cap a hostile or mistaken range would make the
	// solver iterate without bound.
	ErrWindowTooLarge = errors.New("availability: date range exceeds maximum window")
)
