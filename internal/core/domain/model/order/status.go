package order

import (
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Assigned ──> Picked ──> Delivered
//
// Only Pending orders are visible to the assignment engine. The move to Assigned
// happens through an engine outcome or a manual assignment, later moves come from
// external status updates.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status. The order waits for a partner.
	Pending

	// Assigned indicates a partner has taken the order.
	Assigned

	// Picked indicates the partner has collected the order.
	Picked

	// Delivered is final.
	Delivered
)

var statusNames = map[Status]string{
	Pending:   "pending",
	Assigned:  "assigned",
	Picked:    "picked",
	Delivered: "delivered",
}

// ParseStatus converts the wire name ("pending", "assigned", "picked", "delivered") into a Status.
func ParseStatus(s string) (Status, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for st, n := range statusNames {
		if n == name {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that s is one of the declared statuses.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "unknown".
func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return "unknown"
}

// ValidateCanHavePartner checks that the presence of a partner matches the status.
// Pending orders have no partner, every later status has one.
func (s Status) ValidateCanHavePartner(hasPartner bool) error {
	if hasPartner && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a partner", s),
		)
	}
	if !hasPartner && s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no partner", s),
		)
	}
	return nil
}

// Assign transitions Pending to Assigned. Any other source status is rejected,
// so an order can never be assigned twice.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to assign", s),
		)
	}
	return Assigned, nil
}

// Next returns the status that follows s in the delivery workflow.
//
// Returns:
//   - Picked for Assigned
//   - Delivered for Picked
//   - an error for Pending (use Assign), Delivered (final) and invalid values
func (s Status) Next() (Status, error) {
	switch s {
	case Assigned:
		return Picked, nil
	case Picked:
		return Delivered, nil
	case Unknown, Pending, Delivered:
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%s has no follow-up status", s),
	)
}

// TransitionTo validates a move from s to target driven by an external status update.
// Only single forward steps are accepted, and Assigned can only be reached through Assign.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if target == Assigned {
		return s.Assign()
	}
	next, err := s.Next()
	if err != nil || next != target {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot move order from %s to %s", s, target),
		)
	}
	return next, nil
}
