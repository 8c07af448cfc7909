package commands

import (
	"context"

	"dispatch/internal/core/domain/model/partner"
)

// UpdatePartnerCommandHandler applies profile edits and activation changes.
type UpdatePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewUpdatePartnerCommandHandler creates a handler for partner updates.
func NewUpdatePartnerCommandHandler(uowFactory PartnerUoWFactory) UpdatePartnerCommandHandler {
	return UpdatePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the partner, applies the changes and persists it.
// Deactivating a partner keeps the orders it already carries.
func (h UpdatePartnerCommandHandler) Handle(ctx context.Context, cmd UpdatePartnerCommand) error {
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

	pr := cmd.profile
	if err = p.ChangeProfile(pr.name, pr.email, pr.phone, pr.areas, pr.shift, pr.rating); err != nil {
		return err
	}

	if cmd.Status() == partner.Active {
		p.Activate()
	} else {
		p.Deactivate()
	}

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
