package services

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
)

// ErrInvalidBatchInput is returned when the batch contains an order or partner that
// was not built through its constructor. Business failures never produce an error.
var ErrInvalidBatchInput = errors.New("assignment batch contains an unconstructed aggregate")

// AssignmentPlan is the result of one engine run.
//
// Assignments holds one outcome per pending input order, in input order.
// LoadDeltas maps each partner that received work to the number of orders it received.
// Applying the plan (assigning orders, adding load) is up to the caller.
type AssignmentPlan struct {
	Assignments []*assignment.Assignment
	LoadDeltas  map[kernel.UUID]int
}

// Successes returns the successful outcomes in order.
func (p AssignmentPlan) Successes() []*assignment.Assignment {
	out := make([]*assignment.Assignment, 0, len(p.Assignments))
	for _, a := range p.Assignments {
		if a.IsSuccess() {
			out = append(out, a)
		}
	}
	return out
}

// EngineOption configures an AssignmentEngine.
type EngineOption func(*AssignmentEngine)

// WithClock replaces time.Now as the source of the run timestamp.
func WithClock(now func() time.Time) EngineOption {
	return func(e *AssignmentEngine) {
		e.now = now
	}
}

// WithIDGenerator replaces kernel.NewUUID as the source of assignment record IDs.
func WithIDGenerator(newID func() kernel.UUID) EngineOption {
	return func(e *AssignmentEngine) {
		e.newID = newID
	}
}

// AssignmentEngine is a domain service that matches pending orders to delivery partners
// in a single synchronous batch pass.
//
// Selection algorithm:
//   - The candidate pool is every active partner carrying fewer than partner.Capacity orders
//   - The pool is ranked once, by load ascending and then rating descending, and is not
//     re-ranked as loads change during the run
//   - For each pending order, in input order, candidates are narrowed to those covering
//     the order's area and still under capacity, then to those on shift at the scheduled time
//   - The first remaining candidate in rank order gets the order
//
// The engine reads orders and partners but never mutates them. Loads are tracked in
// a working copy owned by the run and reported back as AssignmentPlan.LoadDeltas.
//
// Example usage:
//
//	engine := services.NewAssignmentEngine()
//	plan, err := engine.Assign(orders, partners)
//	if err != nil {
//	    // an input aggregate was not constructed
//	}
//	for _, a := range plan.Assignments {
//	    // persist a, and apply plan.LoadDeltas in the same transaction
//	}
type AssignmentEngine struct {
	now   func() time.Time
	newID func() kernel.UUID
}

// NewAssignmentEngine creates an engine using the wall clock and random UUIDs unless overridden.
func NewAssignmentEngine(opts ...EngineOption) *AssignmentEngine {
	e := &AssignmentEngine{
		now:   time.Now,
		newID: kernel.NewUUID,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Assign runs one batch.
//
// Parameters:
//   - orders: any orders, only Pending ones are considered
//   - partners: any partners, only active and under-capacity ones are candidates
//
// Returns:
//   - AssignmentPlan: one outcome per pending order plus per-partner load deltas
//   - error: ErrInvalidBatchInput if an order or partner is nil or unconstructed
func (e *AssignmentEngine) Assign(orders []*order.Order, partners []*partner.Partner) (AssignmentPlan, error) {
	if err := validateBatch(orders, partners); err != nil {
		return AssignmentPlan{}, err
	}

	ranAt := e.now()
	pool, loads := rankCandidates(partners)

	plan := AssignmentPlan{
		Assignments: make([]*assignment.Assignment, 0, len(orders)),
		LoadDeltas:  make(map[kernel.UUID]int),
	}

	for _, o := range orders {
		if !o.IsPending() {
			continue
		}

		chosen, reason := selectPartner(o, pool, loads)

		var (
			a   *assignment.Assignment
			err error
		)
		if chosen == nil {
			a, err = assignment.NewFailure(e.newID(), o.ID(), reason, ranAt, o.CreatedAt())
		} else {
			a, err = assignment.NewSuccess(e.newID(), o.ID(), chosen.ID(), ranAt, o.CreatedAt())
		}
		if err != nil {
			return AssignmentPlan{}, fmt.Errorf("record outcome for order %s: %w", o.ID(), err)
		}

		if chosen != nil {
			loads[chosen.ID()]++
			plan.LoadDeltas[chosen.ID()]++
		}
		plan.Assignments = append(plan.Assignments, a)
	}

	return plan, nil
}

// rankCandidates builds the candidate pool, sorted once, and the working copy of loads.
func rankCandidates(partners []*partner.Partner) ([]*partner.Partner, map[kernel.UUID]int) {
	pool := make([]*partner.Partner, 0, len(partners))
	loads := make(map[kernel.UUID]int, len(partners))

	for _, p := range partners {
		if !p.IsAvailable() {
			continue
		}
		if _, seen := loads[p.ID()]; seen {
			continue
		}
		pool = append(pool, p)
		loads[p.ID()] = p.CurrentLoad()
	}

	slices.SortStableFunc(pool, func(a, b *partner.Partner) int {
		if c := cmp.Compare(a.CurrentLoad(), b.CurrentLoad()); c != 0 {
			return c
		}
		return cmp.Compare(b.Rating(), a.Rating())
	})

	return pool, loads
}

// selectPartner walks the ranked pool and returns the first eligible partner,
// or nil and the reason no partner qualified.
func selectPartner(o *order.Order, pool []*partner.Partner, loads map[kernel.UUID]int) (*partner.Partner, assignment.Reason) {
	coveredArea := false
	for _, p := range pool {
		if !p.Covers(o.Area()) || loads[p.ID()] >= partner.Capacity {
			continue
		}
		coveredArea = true
		if p.OnShift(o.ScheduledFor()) {
			return p, assignment.ReasonNone
		}
	}

	if !coveredArea {
		return nil, assignment.NoEligiblePartner
	}
	return nil, assignment.NoPartnerOnShift
}

func validateBatch(orders []*order.Order, partners []*partner.Partner) error {
	for i, o := range orders {
		if err := o.Validate(); err != nil {
			return fmt.Errorf("%w: order #%d: %w", ErrInvalidBatchInput, i, err)
		}
	}
	for i, p := range partners {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%w: partner #%d: %w", ErrInvalidBatchInput, i, err)
		}
	}
	return nil
}
