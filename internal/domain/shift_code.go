package domain

import (
	"fmt"
	"time"
)

// ShiftCategory classifies what a shift code means for workload accounting.
type ShiftCategory string

const (
	CategoryWork     ShiftCategory = "WORK"
	CategoryRest     ShiftCategory = "REST"
	CategoryVacation ShiftCategory = "VACATION"
	CategoryOther    ShiftCategory = "OTHER"
)

// ShiftCode is one entry of the shift catalog. Codes without start and end
// times represent non-working statuses (rest, leave). BreakTime is kept as
// the raw clock value it was entered as; hour accounting applies a
// configured flat deduction instead of parsing it.
type ShiftCode struct {
	Code      string        `json:"code"`
	Name      string        `json:"name"`
	StartTime *string       `json:"start_time,omitempty"`
	BreakTime *string       `json:"break_time,omitempty"`
	EndTime   *string       `json:"end_time,omitempty"`
	Color     string        `json:"color"`
	Notes     *string       `json:"notes,omitempty"`
	Category  ShiftCategory `json:"category"`
}

type UpdateShiftCodeInput struct {
	Name      string        `json:"name"`
	StartTime *string       `json:"start_time,omitempty"`
	BreakTime *string       `json:"break_time,omitempty"`
	EndTime   *string       `json:"end_time,omitempty"`
	Color     string        `json:"color"`
	Notes     *string       `json:"notes,omitempty"`
	Category  ShiftCategory `json:"category"`
}

// IsWorking reports whether the code has a defined working span.
func (s ShiftCode) IsWorking() bool {
	return s.StartTime != nil && s.EndTime != nil
}

// Span returns the raw clock distance from StartTime to EndTime, before any
// break deduction. ok is false when either bound is missing or malformed.
func (s ShiftCode) Span() (span time.Duration, ok bool) {
	if !s.IsWorking() {
		return 0, false
	}
	start, err := ParseClock(*s.StartTime)
	if err != nil {
		return 0, false
	}
	end, err := ParseClock(*s.EndTime)
	if err != nil {
		return 0, false
	}
	if end <= start {
		return 0, false
	}
	return end - start, true
}

// ParseClock parses an HH:MM wall-clock value as an offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, nil
}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c ShiftCategory) bool {
	switch c {
	case CategoryWork, CategoryRest, CategoryVacation, CategoryOther:
		return true
	}
	return false
}
