package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a customer delivery. It carries everything the
// assignment engine matches on (area and scheduled time) plus the customer-facing
// details the management surface shows.
//
// Order follows these invariants:
//   - Must have a valid identifier and a non-blank order number
//   - Must have a valid customer, area and scheduled time
//   - Must contain at least one item
//   - A partner is referenced exactly when the status is past Pending
//   - Status transitions follow the Status state machine
type Order struct {
	id           kernel.UUID
	number       string
	customer     Customer
	area         kernel.Area
	items        []Item
	status       Status
	partnerID    *kernel.UUID
	scheduledFor kernel.TimeOfDay
	createdAt    time.Time
	updatedAt    time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order without a partner.
//
// Parameters:
//   - id: unique identifier
//   - number: human-facing order number such as "ORD-1001"
//   - customer: delivery contact
//   - area: delivery zone
//   - items: at least one order line
//   - scheduledFor: requested delivery time of day
//   - now: creation timestamp, also used as the first update timestamp
//
// Returns the order, or all validation errors joined together.
//
// Example:
//
//	customer, _ := order.NewCustomer("Ann Lee", "+1 555 0100", "12 Main St")
//	item, _ := order.NewItem("Pizza", 2, decimal.RequireFromString("12.50"))
//	at, _ := kernel.ParseTimeOfDay("14:00")
//	o, err := order.NewOrder(kernel.NewUUID(), "ORD-1001", customer, kernel.Downtown, []order.Item{item}, at, time.Now())
func NewOrder(
	id kernel.UUID,
	number string,
	customer Customer,
	area kernel.Area,
	items []Item,
	scheduledFor kernel.TimeOfDay,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:    Pending,
		createdAt: now.UTC(),
		updatedAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomer(customer),
		o.setArea(area),
		o.setItems(items),
		o.setScheduledFor(scheduledFor),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage. It applies the same checks as
// NewOrder plus the status/partner consistency rule.
func RestoreOrder(
	id kernel.UUID,
	number string,
	customer Customer,
	area kernel.Area,
	items []Item,
	status Status,
	partnerID *kernel.UUID,
	scheduledFor kernel.TimeOfDay,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt: createdAt.UTC(),
		updatedAt: updatedAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomer(customer),
		o.setArea(area),
		o.setItems(items),
		o.setScheduledFor(scheduledFor),
		o.setStatus(status, partnerID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order went through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                { return o.id }
func (o *Order) Number() string                 { return o.number }
func (o *Order) Customer() Customer             { return o.customer }
func (o *Order) Area() kernel.Area              { return o.area }
func (o *Order) Status() Status                 { return o.status }
func (o *Order) ScheduledFor() kernel.TimeOfDay { return o.scheduledFor }
func (o *Order) CreatedAt() time.Time           { return o.createdAt }
func (o *Order) UpdatedAt() time.Time           { return o.updatedAt }

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Partner returns the assigned partner's ID, or nil while the order is Pending.
func (o *Order) Partner() *kernel.UUID {
	return o.partnerID
}

// IsPending reports whether the order is waiting for a partner.
func (o *Order) IsPending() bool {
	return o.status == Pending
}

// TotalAmount is the sum of quantity × price over all items.
func (o *Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Assign moves a Pending order to Assigned and records the partner.
//
// Returns an error if the partner ID is invalid or the order is not Pending.
//
// Example:
//
//	if err := o.Assign(partnerID, time.Now()); err != nil {
//	    // the order was already taken
//	}
func (o *Order) Assign(partnerID kernel.UUID, at time.Time) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.partnerID = &partnerID
	o.updatedAt = at.UTC()
	return nil
}

// ChangeStatus applies an external status update such as Assigned → Picked.
// Moving to Assigned this way is rejected because it needs a partner; use Assign.
func (o *Order) ChangeStatus(target Status, at time.Time) error {
	if target == Assigned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			errors.New("orders are assigned through an assignment, not a status update"),
		)
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = at.UTC()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.number = number
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if customer.name == "" || customer.phone == "" || customer.address == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	o.customer = customer
	return nil
}

func (o *Order) setArea(area kernel.Area) error {
	if err := area.Validate(); err != nil {
		return err
	}
	o.area = area
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if item.name == "" || item.quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("item %d was not created via NewItem", i))
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setScheduledFor(at kernel.TimeOfDay) error {
	if err := at.Validate(); err != nil {
		return err
	}
	o.scheduledFor = at
	return nil
}

func (o *Order) setStatus(status Status, partnerID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateCanHavePartner(partnerID != nil); err != nil {
		return err
	}
	if partnerID != nil {
		if err := partnerID.Validate(); err != nil {
			return err
		}
		id := *partnerID
		o.partnerID = &id
	}
	o.status = status
	return nil
}
