package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/order"
)

// CreateOrderCommandHandler registers a new order in Pending status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// the order now waits for the next assignment run
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle persists the order. Order numbers are unique, a duplicate is reported
// by the repository as errs.ErrObjectAlreadyExists.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.Number(), cmd.Customer(), cmd.Area(), cmd.Items(), cmd.ScheduledFor(), h.now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
