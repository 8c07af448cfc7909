package kernel

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
)

// ErrShiftIsNotConstructed is returned when validating a zero-value ShiftWindow.
var ErrShiftIsNotConstructed = errs.NewValueIsRequiredError("ShiftWindow must be created via NewShiftWindow or ParseShiftWindow")

// ShiftWindow is the inclusive time-of-day interval during which a partner accepts deliveries.
// Windows never cross midnight: start is always at or before end.
type ShiftWindow struct {
	start TimeOfDay
	end   TimeOfDay
}

// NewShiftWindow creates a window from two validated times.
//
// Returns an error when either bound is invalid or when end is before start.
func NewShiftWindow(start, end TimeOfDay) (ShiftWindow, error) {
	if err := errors.Join(start.Validate(), end.Validate()); err != nil {
		return ShiftWindow{}, err
	}
	if end.Before(start) {
		return ShiftWindow{}, errs.NewValueIsInvalidErrorWithCause(
			"shift",
			fmt.Errorf("end %s is before start %s, overnight shifts are not supported", end, start),
		)
	}
	return ShiftWindow{start: start, end: end}, nil
}

// ParseShiftWindow creates a window from two "HH:MM" strings.
//
// Example:
//
//	shift, err := kernel.ParseShiftWindow("09:00", "17:00")
func ParseShiftWindow(start, end string) (ShiftWindow, error) {
	s, startErr := ParseTimeOfDay(start)
	e, endErr := ParseTimeOfDay(end)
	if err := errors.Join(startErr, endErr); err != nil {
		return ShiftWindow{}, err
	}
	return NewShiftWindow(s, e)
}

// Start returns the first minute of the shift.
func (w ShiftWindow) Start() TimeOfDay {
	return w.start
}

// End returns the last minute of the shift.
func (w ShiftWindow) End() TimeOfDay {
	return w.end
}

// Contains reports whether t lies within [start, end], bounds included.
func (w ShiftWindow) Contains(t TimeOfDay) bool {
	return w.start.Minutes() <= t.Minutes() && t.Minutes() <= w.end.Minutes()
}

// Validate rejects the zero value.
func (w ShiftWindow) Validate() error {
	if w.start.Validate() != nil || w.end.Validate() != nil {
		return ErrShiftIsNotConstructed
	}
	return nil
}

func (w ShiftWindow) String() string {
	return w.start.String() + "-" + w.end.String()
}
