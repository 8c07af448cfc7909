package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand hands a specific pending order to a specific partner,
// bypassing the assignment engine's ranking.
//
// Example:
//
//	cmd, err := NewAssignOrderCommand(orderID, partnerID)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand requires both identifiers to be valid.
func NewAssignOrderCommand(orderID, partnerID kernel.UUID) (AssignOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), partnerID.Validate()); err != nil {
		return AssignOrderCommand{}, err
	}
	return AssignOrderCommand{
		orderID:   orderID,
		partnerID: partnerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PartnerID returns the chosen partner.
func (c AssignOrderCommand) PartnerID() kernel.UUID {
	return c.partnerID
}
