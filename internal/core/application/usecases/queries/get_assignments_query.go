package queries

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/google/uuid"
)

const (
	// DefaultAssignmentsLimit is used when the caller asks for no particular page size.
	DefaultAssignmentsLimit = 50
	// MaxAssignmentsLimit caps how many records one request may read.
	MaxAssignmentsLimit = 500
)

var ErrGetAssignmentsQueryIsNotConstructed = errors.New(
	"GetAssignmentsQuery must be created via NewGetAssignmentsQuery constructor",
)

// GetAssignmentsQuery reads the most recent assignment records.
type GetAssignmentsQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetAssignmentsQuery creates a query for the newest limit records.
// A zero limit means DefaultAssignmentsLimit.
func NewGetAssignmentsQuery(limit int) (GetAssignmentsQuery, error) {
	if limit == 0 {
		limit = DefaultAssignmentsLimit
	}
	if limit < 0 || limit > MaxAssignmentsLimit {
		return GetAssignmentsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxAssignmentsLimit)
	}
	return GetAssignmentsQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentsQueryIsNotConstructed)
}

// Limit returns the page size.
func (q GetAssignmentsQuery) Limit() int {
	return q.limit
}

// AssignmentView is one record of the assignment log with display names joined in.
type AssignmentView struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	OrderNumber string
	PartnerID   *kernel.UUID
	PartnerName string
	Status      string
	// Reason is the stable reason code, empty for successes.
	Reason     string
	Latency    time.Duration
	RecordedAt time.Time
}

// PartnerAvailability counts partners per availability.
type PartnerAvailability struct {
	Available int
	Busy      int
	Offline   int
}

// GetAssignmentsQueryResponse is the dispatcher's view of current work.
type GetAssignmentsQueryResponse struct {
	Assignments []AssignmentView
	Partners    PartnerAvailability
}

type assignmentRow struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	OrderNumber string
	PartnerID   *uuid.UUID
	PartnerName string
	Status      string
	Reason      string
	LatencyMs   int64
	RecordedAt  time.Time
}

func (r assignmentRow) toView() (AssignmentView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return AssignmentView{}, err
	}
	orderID, err := kernel.UUIDFromBytes(r.OrderID[:])
	if err != nil {
		return AssignmentView{}, fmt.Errorf("assignment %s: %w", id, err)
	}

	view := AssignmentView{
		ID:          id,
		OrderID:     orderID,
		OrderNumber: r.OrderNumber,
		PartnerName: r.PartnerName,
		Status:      r.Status,
		Reason:      r.Reason,
		Latency:     time.Duration(r.LatencyMs) * time.Millisecond,
		RecordedAt:  r.RecordedAt.UTC(),
	}
	if view.PartnerID, err = optionalUUID(r.PartnerID); err != nil {
		return AssignmentView{}, fmt.Errorf("assignment %s: %w", id, err)
	}
	return view, nil
}
