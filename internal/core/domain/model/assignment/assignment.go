package assignment

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// Status is the outcome of matching one order.
type Status string

const (
	Success Status = "success"
	Failed  Status = "failed"
)

// ParseStatus converts "success" or "failed" into a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case Success, Failed:
		return Status(s), nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("assignment status", fmt.Errorf("%q is not a valid assignment status", s))
}

// Assignment is an immutable outcome record. A successful record names the partner,
// a failed record carries a Reason instead. Records are appended to the assignment
// log and never changed.
type Assignment struct {
	id        kernel.UUID
	orderID   kernel.UUID
	partnerID *kernel.UUID
	timestamp time.Time
	status    Status
	reason    Reason
	latency   time.Duration
}

// NewSuccess records that orderID was given to partnerID at timestamp.
// orderCreatedAt is used to compute the assignment latency.
func NewSuccess(id, orderID, partnerID kernel.UUID, timestamp, orderCreatedAt time.Time) (*Assignment, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), partnerID.Validate()); err != nil {
		return nil, err
	}
	return &Assignment{
		id:        id,
		orderID:   orderID,
		partnerID: &partnerID,
		timestamp: timestamp.UTC(),
		status:    Success,
		latency:   latency(timestamp, orderCreatedAt),
	}, nil
}

// NewFailure records that orderID could not be matched for reason.
func NewFailure(id, orderID kernel.UUID, reason Reason, timestamp, orderCreatedAt time.Time) (*Assignment, error) {
	var errReason error
	if !reason.IsFailure() {
		errReason = errs.NewValueIsInvalidErrorWithCause("reason", fmt.Errorf("%d is not a failure reason", reason))
	}
	if err := errors.Join(id.Validate(), orderID.Validate(), errReason); err != nil {
		return nil, err
	}
	return &Assignment{
		id:        id,
		orderID:   orderID,
		timestamp: timestamp.UTC(),
		status:    Failed,
		reason:    reason,
		latency:   latency(timestamp, orderCreatedAt),
	}, nil
}

// Restore rebuilds a record from storage, enforcing that a partner is present
// exactly for successes and a reason exactly for failures.
func Restore(
	id, orderID kernel.UUID,
	partnerID *kernel.UUID,
	status Status,
	reason Reason,
	timestamp time.Time,
	latency time.Duration,
) (*Assignment, error) {
	var a *Assignment
	var err error
	switch status {
	case Success:
		if partnerID == nil {
			return nil, errs.NewValueIsRequiredError("partner")
		}
		if reason != ReasonNone {
			return nil, errs.NewValueIsInvalidErrorWithCause("reason", errors.New("successful assignment has a failure reason"))
		}
		a, err = NewSuccess(id, orderID, *partnerID, timestamp, timestamp)
	case Failed:
		if partnerID != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("partner", errors.New("failed assignment references a partner"))
		}
		a, err = NewFailure(id, orderID, reason, timestamp, timestamp)
	default:
		_, err = ParseStatus(string(status))
	}
	if err != nil {
		return nil, err
	}
	if latency > 0 {
		a.latency = latency
	}
	return a, nil
}

func (a *Assignment) ID() kernel.UUID         { return a.id }
func (a *Assignment) OrderID() kernel.UUID    { return a.orderID }
func (a *Assignment) Partner() *kernel.UUID   { return a.partnerID }
func (a *Assignment) Timestamp() time.Time    { return a.timestamp }
func (a *Assignment) Status() Status          { return a.status }
func (a *Assignment) Reason() Reason          { return a.reason }
func (a *Assignment) Latency() time.Duration  { return a.latency }
func (a *Assignment) IsSuccess() bool         { return a.status == Success }

// latency is clamped at zero so that clock skew never yields negative durations.
func latency(timestamp, orderCreatedAt time.Time) time.Duration {
	if d := timestamp.Sub(orderCreatedAt); d > 0 {
		return d
	}
	return 0
}
