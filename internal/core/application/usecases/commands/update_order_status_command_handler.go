package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// UpdateOrderStatusCommandHandler applies external status updates.
// Delivering an order releases one unit of load on its partner and counts the
// delivery in the partner's metrics, in the same transaction.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle loads the order, applies the transition and persists the result.
// Invalid transitions are reported as errs.ErrValueIsInvalid.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	partnerRepo := uow.PartnerRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.ChangeStatus(cmd.Status(), h.now()); err != nil {
		return err
	}

	if o.Status() == order.Delivered && o.Partner() != nil {
		if err = releasePartner(ctx, partnerRepo, *o.Partner()); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func releasePartner(ctx context.Context, repo ports.PartnerRepository, id kernel.UUID) error {
	p, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err = p.CompleteOrder(); err != nil {
		return err
	}
	return repo.Update(ctx, p)
}
