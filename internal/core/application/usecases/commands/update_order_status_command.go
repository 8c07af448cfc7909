package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand moves an order forward in its delivery workflow,
// for example when the partner reports the order as picked or delivered.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand parses the target status ("picked", "delivered", ...).
func NewUpdateOrderStatusCommand(orderID kernel.UUID, status string) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	target, errStatus := order.ParseStatus(status)
	if err := errors.Join(orderID.Validate(), errStatus); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	cmd.orderID = orderID
	cmd.status = target

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}
