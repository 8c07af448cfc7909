package partner

import (
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
)

// Status tells whether a partner takes work at all.
type Status int

const (
	StatusUnknown Status = iota
	Active
	Inactive
)

// ParseStatus converts "active" or "inactive" into a Status.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return Active, nil
	case "inactive":
		return Inactive, nil
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("partner status", fmt.Errorf("%q is not a valid partner status", s))
}

func (s Status) Validate() error {
	if s != Active && s != Inactive {
		return errs.NewValueIsInvalidErrorWithCause("partner status", fmt.Errorf("%d is not a valid partner status", s))
	}
	return nil
}

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Inactive:
		return "inactive"
	case StatusUnknown:
	}
	return "unknown"
}

// Availability is the dispatcher-facing view of a partner, derived from status and load.
type Availability string

const (
	// Available partners are active with spare capacity.
	Available Availability = "available"
	// Busy partners are active but full.
	Busy Availability = "busy"
	// Offline partners are inactive.
	Offline Availability = "offline"
)
