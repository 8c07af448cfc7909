package assignment

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Reason classifies why an order could not be matched.
type Reason int

const (
	// ReasonNone is carried by successful outcomes.
	ReasonNone Reason = iota
	// NoEligiblePartner means no active, under-capacity partner covers the order's area.
	NoEligiblePartner
	// NoPartnerOnShift means partners cover the area but none is on shift at the scheduled time.
	NoPartnerOnShift
)

var reasonMessages = map[Reason]string{
	NoEligiblePartner: "No eligible partner available",
	NoPartnerOnShift:  "No partner available at scheduled time",
}

var reasonCodes = map[Reason]string{
	NoEligiblePartner: "NoEligiblePartner",
	NoPartnerOnShift:  "NoPartnerOnShift",
}

// ParseReason accepts either the message or the code of a failure reason.
func ParseReason(s string) (Reason, error) {
	for r, msg := range reasonMessages {
		if s == msg || s == reasonCodes[r] {
			return r, nil
		}
	}
	return ReasonNone, errs.NewValueIsInvalidErrorWithCause("reason", fmt.Errorf("%q is not a known failure reason", s))
}

// String returns the human-readable message, empty for ReasonNone.
func (r Reason) String() string {
	return reasonMessages[r]
}

// Code returns the stable machine name, e.g. "NoPartnerOnShift".
func (r Reason) Code() string {
	return reasonCodes[r]
}

// IsFailure reports whether r is one of the failure reasons.
func (r Reason) IsFailure() bool {
	_, ok := reasonMessages[r]
	return ok
}
