package attendance

import "errors"

var (
	ErrDayComplete      = errors.New("clock in and clock out are already recorded for today")
	ErrClockOutBeforeIn = errors.New("clock out cannot be earlier than clock in")
	ErrInvalidMonth     = errors.New("month must be in YYYY-MM format")
)
