package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// RunAssignmentResult lists the outcomes produced by one run, in processing order.
type RunAssignmentResult struct {
	Outcomes []*assignment.Assignment
}

// RunAssignmentCommandHandler runs the assignment engine against a locked snapshot
// and applies the resulting plan transactionally.
//
// Workflow:
//   - Take the run lock, so at most one run is in flight across instances
//   - Load pending orders and available partners with row locks
//   - Compute the plan, then assign orders, add partner load and append outcomes
//   - Commit, then publish outcomes and record run metrics
//
// Example:
//
//	result, err := handler.Handle(ctx, NewRunAssignmentCommand())
//	switch {
//	case errors.Is(err, ports.ErrRunInProgress):
//	    // another run is active, try later
//	case err != nil:
//	    return err
//	}
//	fmt.Printf("%d orders processed", len(result.Outcomes))
type RunAssignmentCommandHandler struct {
	uowFactory UoWFactory
	engine     *services.AssignmentEngine
	locker     ports.RunLocker
	publisher  ports.AssignmentPublisher
	observer   ports.AssignmentObserver
	logger     *slog.Logger
}

// NewRunAssignmentCommandHandler creates a handler for assignment runs.
func NewRunAssignmentCommandHandler(
	uowFactory UoWFactory,
	engine *services.AssignmentEngine,
	locker ports.RunLocker,
	publisher ports.AssignmentPublisher,
	observer ports.AssignmentObserver,
	logger *slog.Logger,
) RunAssignmentCommandHandler {
	return RunAssignmentCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
		locker:     locker,
		publisher:  publisher,
		observer:   observer,
		logger:     logger.With("component", "run_assignment_handler"),
	}
}

// Handle performs one run. It returns ports.ErrRunInProgress without touching any
// data when another run holds the lock. A run with no pending orders succeeds with
// no outcomes.
func (h RunAssignmentCommandHandler) Handle(ctx context.Context, cmd RunAssignmentCommand) (RunAssignmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return RunAssignmentResult{}, err
	}

	release, err := h.locker.Acquire(ctx)
	if err != nil {
		return RunAssignmentResult{}, err
	}
	defer func() {
		if releaseErr := release(context.WithoutCancel(ctx)); releaseErr != nil {
			h.logger.WarnContext(ctx, "failed to release run lock", "error", releaseErr)
		}
	}()

	started := time.Now()

	outcomes, err := h.applyPlan(ctx)
	if err != nil {
		return RunAssignmentResult{}, err
	}

	h.observer.ObserveRun(time.Since(started), outcomes)

	if len(outcomes) > 0 {
		if err = h.publisher.Publish(ctx, outcomes); err != nil {
			h.logger.WarnContext(ctx, "failed to publish assignment outcomes",
				"outcomes", len(outcomes), "error", err)
		}
	}

	return RunAssignmentResult{Outcomes: outcomes}, nil
}

func (h RunAssignmentCommandHandler) applyPlan(ctx context.Context) ([]*assignment.Assignment, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	partnerRepo := uow.PartnerRepository()
	logRepo := uow.AssignmentRepository()

	orders, err := orderRepo.GetAllPending(ctx)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, uow.Commit(ctx)
	}

	partners, err := partnerRepo.GetAllAvailable(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := h.engine.Assign(orders, partners)
	if err != nil {
		return nil, err
	}

	if err = applyAssignments(ctx, orderRepo, orders, plan.Successes()); err != nil {
		return nil, err
	}
	if err = applyLoadDeltas(ctx, partnerRepo, partners, plan.LoadDeltas); err != nil {
		return nil, err
	}
	if err = logRepo.Append(ctx, plan.Assignments...); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "assignment run completed",
		"pending", len(orders),
		"assigned", len(plan.Successes()),
		"failed", len(plan.Assignments)-len(plan.Successes()))

	return plan.Assignments, nil
}

func applyAssignments(
	ctx context.Context,
	repo ports.OrderRepository,
	orders []*order.Order,
	successes []*assignment.Assignment,
) error {
	byID := make(map[kernel.UUID]*order.Order, len(orders))
	for _, o := range orders {
		byID[o.ID()] = o
	}

	for _, a := range successes {
		o, ok := byID[a.OrderID()]
		if !ok {
			return fmt.Errorf("plan references unknown order %s", a.OrderID())
		}
		if err := o.Assign(*a.Partner(), a.Timestamp()); err != nil {
			return err
		}
		if err := repo.Update(ctx, o); err != nil {
			return err
		}
	}
	return nil
}

func applyLoadDeltas(
	ctx context.Context,
	repo ports.PartnerRepository,
	partners []*partner.Partner,
	deltas map[kernel.UUID]int,
) error {
	for _, p := range partners {
		delta, ok := deltas[p.ID()]
		if !ok {
			continue
		}
		if err := p.TakeOrders(delta); err != nil {
			return err
		}
		if err := repo.Update(ctx, p); err != nil {
			return err
		}
		delete(deltas, p.ID())
	}
	if len(deltas) > 0 {
		return fmt.Errorf("plan references %d unknown partners", len(deltas))
	}
	return nil
}
