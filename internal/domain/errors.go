package domain

import "errors"

var (
	// ErrBookingExists is returned when a generated booking id collides with an
	// already persisted booking.
	ErrBookingExists = errors.New("booking id already exists")
)
