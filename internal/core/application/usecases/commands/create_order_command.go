package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItemInput is one requested order line before validation.
type OrderItemInput struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
}

// CreateOrderInput is the raw order intake as received from HTTP or Kafka.
type CreateOrderInput struct {
	OrderNumber     string
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Area            string
	Items           []OrderItemInput
	ScheduledFor    string
}

// CreateOrderCommand represents a request to register a new pending order.
// All raw values are parsed into domain value objects when the command is built,
// so a constructed command is always valid input for order.NewOrder.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), CreateOrderInput{
//	    OrderNumber:  "ORD-1001",
//	    CustomerName: "Ann Lee", CustomerPhone: "+1 555 0100", CustomerAddress: "12 Main St",
//	    Area:         "Downtown",
//	    Items:        []OrderItemInput{{Name: "Pizza", Quantity: 2, Price: decimal.RequireFromString("12.50")}},
//	    ScheduledFor: "14:00",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	number       string
	customer     order.Customer
	area         kernel.Area
	items        []order.Item
	scheduledFor kernel.TimeOfDay

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the intake and builds the command.
// Every invalid field is reported in the joined error.
func NewCreateOrderCommand(orderID kernel.UUID, in CreateOrderInput) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNumber(in.OrderNumber),
		cmd.setCustomer(in.CustomerName, in.CustomerPhone, in.CustomerAddress),
		cmd.setArea(in.Area),
		cmd.setItems(in.Items),
		cmd.setScheduledFor(in.ScheduledFor),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID           { return c.orderID }
func (c CreateOrderCommand) Number() string                 { return c.number }
func (c CreateOrderCommand) Customer() order.Customer       { return c.customer }
func (c CreateOrderCommand) Area() kernel.Area              { return c.area }
func (c CreateOrderCommand) Items() []order.Item            { return c.items }
func (c CreateOrderCommand) ScheduledFor() kernel.TimeOfDay { return c.scheduledFor }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	c.number = number
	return nil
}

func (c *CreateOrderCommand) setCustomer(name, phone, address string) error {
	customer, err := order.NewCustomer(name, phone, address)
	if err != nil {
		return err
	}
	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setArea(area string) error {
	a, err := kernel.ParseArea(area)
	if err != nil {
		return err
	}
	c.area = a
	return nil
}

func (c *CreateOrderCommand) setItems(inputs []OrderItemInput) error {
	if len(inputs) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	items := make([]order.Item, 0, len(inputs))
	var errItems error
	for _, in := range inputs {
		item, err := order.NewItem(in.Name, in.Quantity, in.Price)
		if err != nil {
			errItems = errors.Join(errItems, err)
			continue
		}
		items = append(items, item)
	}
	if errItems != nil {
		return errItems
	}
	c.items = items
	return nil
}

func (c *CreateOrderCommand) setScheduledFor(s string) error {
	at, err := kernel.ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	c.scheduledFor = at
	return nil
}
