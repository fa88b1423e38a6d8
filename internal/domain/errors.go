package domain

import "errors"

var (
	ErrEmptyEmployeeName    = errors.New("employee name must not be empty")
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrShiftCodeNotFound    = errors.New("shift code not found")
	ErrUnknownShiftCode     = errors.New("shift code is not in the catalog")
	ErrInvalidClockValue    = errors.New("time must be in HH:MM format")
	ErrInvalidCategory      = errors.New("unknown shift category")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrDateOutsideMonth     = errors.New("date is outside the active month")
	ErrInvalidMonth         = errors.New("month must be between 1 and 12")
)
