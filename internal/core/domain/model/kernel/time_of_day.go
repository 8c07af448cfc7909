package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"dispatch/internal/pkg/errs"
)

const (
	minutesPerHour = 60
	hoursPerDay    = 24
)

// ErrTimeOfDayIsNotConstructed is returned when validating a TimeOfDay that did not come from
// ParseTimeOfDay or NewTimeOfDay.
var ErrTimeOfDayIsNotConstructed = errs.NewValueIsRequiredError("TimeOfDay must be created via ParseTimeOfDay or NewTimeOfDay")

// TimeOfDay is a wall-clock time without date or zone, stored as minutes since midnight.
// Two values compare with the ordinary integer operators through Minutes.
type TimeOfDay struct {
	minutes int
	valid   bool
}

// NewTimeOfDay builds a TimeOfDay from hour (0-23) and minute (0-59).
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour >= hoursPerDay {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("hour", hour, 0, hoursPerDay-1)
	}
	if minute < 0 || minute >= minutesPerHour {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minute", minute, 0, minutesPerHour-1)
	}
	return TimeOfDay{minutes: hour*minutesPerHour + minute, valid: true}, nil
}

// ParseTimeOfDay parses an "HH:MM" string. A single-digit hour ("9:30") is accepted,
// minutes always need two digits.
//
// Example:
//
//	t, err := kernel.ParseTimeOfDay("14:00")
//	// t.Minutes() == 840
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause("time", fmt.Errorf("%q is not in HH:MM format", s))
	}

	hour, err := parseDigits(hh)
	if err != nil {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause("time", fmt.Errorf("%q: bad hour: %w", s, err))
	}
	minute, err := parseDigits(mm)
	if err != nil {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause("time", fmt.Errorf("%q: bad minute: %w", s, err))
	}

	return NewTimeOfDay(hour, minute)
}

// ToMinutes converts an "HH:MM" string to minutes since midnight.
func ToMinutes(s string) (int, error) {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		return 0, err
	}
	return t.Minutes(), nil
}

// Minutes returns the offset from midnight.
func (t TimeOfDay) Minutes() int {
	return t.minutes
}

// Before reports whether t is strictly earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

// String formats the value as zero-padded "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/minutesPerHour, t.minutes%minutesPerHour)
}

// Validate rejects the zero value.
func (t TimeOfDay) Validate() error {
	if !t.valid {
		return ErrTimeOfDayIsNotConstructed
	}
	return nil
}

// parseDigits accepts ASCII digits only, so "+9" and " 9" are rejected.
func parseDigits(s string) (int, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%q is not numeric", s)
		}
	}
	return strconv.Atoi(s)
}
