// Package kafka feeds order-intake events from Kafka into the CreateOrder command.
package kafka

import (
	"strings"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// OrderCreatedEvent is the wire form of an order intake message.
// OrderID is optional: when set, redelivered events map to the same order.
type OrderCreatedEvent struct {
	OrderID      string          `json:"order_id,omitempty"`
	OrderNumber  string          `json:"order_number"`
	Customer     CustomerPayload `json:"customer"`
	Area         string          `json:"area"`
	Items        []ItemPayload   `json:"items"`
	ScheduledFor string          `json:"scheduled_for"`
}

type CustomerPayload struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type ItemPayload struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// toCommand validates the event into a CreateOrderCommand.
func (ev OrderCreatedEvent) toCommand() (commands.CreateOrderCommand, error) {
	id := kernel.NewUUID()
	if raw := strings.TrimSpace(ev.OrderID); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return commands.CreateOrderCommand{}, err
		}
		id = parsed
	}

	items := make([]commands.OrderItemInput, 0, len(ev.Items))
	for _, it := range ev.Items {
		items = append(items, commands.OrderItemInput{Name: it.Name, Quantity: it.Quantity, Price: it.Price})
	}

	return commands.NewCreateOrderCommand(id, commands.CreateOrderInput{
		OrderNumber:     ev.OrderNumber,
		CustomerName:    ev.Customer.Name,
		CustomerPhone:   ev.Customer.Phone,
		CustomerAddress: ev.Customer.Address,
		Area:            ev.Area,
		Items:           items,
		ScheduledFor:    ev.ScheduledFor,
	})
}
