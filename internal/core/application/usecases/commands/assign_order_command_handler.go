package commands

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// AssignOrderCommandHandler performs a manual assignment.
//
// Business rules:
//   - The order must be pending
//   - The partner must be active and under capacity
//   - A successful Assignment record is appended to the log, so manual and
//     automatic assignments show up alike in metrics
//
// Area and shift are not checked: a dispatcher may knowingly override them.
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.AssignmentPublisher
	logger     *slog.Logger
	now        func() time.Time
}

// NewAssignOrderCommandHandler creates a handler for manual assignments.
func NewAssignOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.AssignmentPublisher,
	logger *slog.Logger,
) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "assign_order_handler"),
		now:        time.Now,
	}
}

// Handle assigns the order and returns the appended record.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) (*assignment.Assignment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

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

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	p, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return nil, err
	}

	at := h.now()
	if err = o.Assign(p.ID(), at); err != nil {
		return nil, err
	}
	if err = p.TakeOrders(1); err != nil {
		return nil, err
	}

	record, err := assignment.NewSuccess(kernel.NewUUID(), o.ID(), p.ID(), at, o.CreatedAt())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	if err = partnerRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	if err = logRepo.Append(ctx, record); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.publisher.Publish(ctx, []*assignment.Assignment{record}); err != nil {
		h.logger.WarnContext(ctx, "failed to publish manual assignment",
			"order_id", o.ID().String(), "error", err)
	}

	return record, nil
}
