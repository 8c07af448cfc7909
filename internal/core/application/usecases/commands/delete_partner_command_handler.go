package commands

import (
	"context"
	"errors"
)

// ErrPartnerHasActiveOrders is returned when deleting a partner that still carries orders.
var ErrPartnerHasActiveOrders = errors.New("partner still carries orders")

// DeletePartnerCommandHandler removes partners.
type DeletePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewDeletePartnerCommandHandler creates a handler for partner removal.
func NewDeletePartnerCommandHandler(uowFactory PartnerUoWFactory) DeletePartnerCommandHandler {
	return DeletePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the partner unless it carries orders, in which case
// ErrPartnerHasActiveOrders is returned and nothing changes.
func (h DeletePartnerCommandHandler) Handle(ctx context.Context, cmd DeletePartnerCommand) error {
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

	repo := uow.PartnerRepository()

	p, err := repo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}
	if p.CurrentLoad() > 0 {
		return ErrPartnerHasActiveOrders
	}

	if err = repo.Delete(ctx, cmd.PartnerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
