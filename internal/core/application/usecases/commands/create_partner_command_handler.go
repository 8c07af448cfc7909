package commands

import (
	"context"

	"dispatch/internal/core/domain/model/partner"
)

// CreatePartnerCommandHandler persists a new active partner with no load.
type CreatePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewCreatePartnerCommandHandler creates a handler for partner registration.
func NewCreatePartnerCommandHandler(uowFactory PartnerUoWFactory) CreatePartnerCommandHandler {
	return CreatePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the aggregate and stores it. A duplicate email is reported by the
// repository as errs.ErrObjectAlreadyExists.
func (h CreatePartnerCommandHandler) Handle(ctx context.Context, cmd CreatePartnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	pr := cmd.profile
	p, err := partner.NewPartner(cmd.PartnerID(), pr.name, pr.email, pr.phone, pr.areas, pr.shift, pr.rating)
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

	if err = uow.PartnerRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
