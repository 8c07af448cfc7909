package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrDeletePartnerCommandIsNotConstructed = errors.New(
	"DeletePartnerCommand must be created via NewDeletePartnerCommand constructor",
)

// DeletePartnerCommand removes a partner that carries no orders.
type DeletePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeletePartnerCommand requires a valid identifier.
func NewDeletePartnerCommand(partnerID kernel.UUID) (DeletePartnerCommand, error) {
	if err := partnerID.Validate(); err != nil {
		return DeletePartnerCommand{}, err
	}
	return DeletePartnerCommand{
		partnerID: partnerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePartnerCommand) Validate() error {
	return c.guard.Validate(ErrDeletePartnerCommandIsNotConstructed)
}

// PartnerID returns the identifier of the partner to delete.
func (c DeletePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}
