// Package orderrepo persists order aggregates with gorm.
// Items are stored as a JSONB document, the total as NUMERIC so that read
// models can filter and sort on it without decoding items.
package orderrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderDTO is the row shape of the orders table.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number          string          `gorm:"uniqueIndex:idx_orders_number;not null"`
	CustomerName    string          `gorm:"not null"`
	CustomerPhone   string          `gorm:"not null"`
	CustomerAddress string          `gorm:"not null"`
	Area            string          `gorm:"not null"`
	Items           datatypes.JSON  `gorm:"type:jsonb;not null"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status          string          `gorm:"index:idx_orders_status;not null"`
	PartnerID       *uuid.UUID      `gorm:"type:uuid;index:idx_orders_partner_id"`
	ScheduledFor    string          `gorm:"type:varchar(5);not null"`
	CreatedAt       time.Time       `gorm:"index:idx_orders_created_at;not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName overrides gorm's default naming.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one element of the items JSON document.
type ItemDTO struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

func fromDomain(o *order.Order) (OrderDTO, error) {
	items := make([]ItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemDTO{
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
		})
	}
	rawItems, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, fmt.Errorf("encode items of order %s: %w", o.ID(), err)
	}

	var partnerID *uuid.UUID
	if id := o.Partner(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	return OrderDTO{
		ID:              o.ID().Bytes(),
		Number:          o.Number(),
		CustomerName:    o.Customer().Name(),
		CustomerPhone:   o.Customer().Phone(),
		CustomerAddress: o.Customer().Address(),
		Area:            o.Area().String(),
		Items:           datatypes.JSON(rawItems),
		TotalAmount:     o.TotalAmount(),
		Status:          o.Status().String(),
		PartnerID:       partnerID,
		ScheduledFor:    o.ScheduledFor().String(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}, nil
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.PartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.PartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}
		partnerID = &pID
	}

	customer, err := order.NewCustomer(dto.CustomerName, dto.CustomerPhone, dto.CustomerAddress)
	if err != nil {
		return nil, err
	}

	area, err := kernel.ParseArea(dto.Area)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	scheduledFor, err := kernel.ParseTimeOfDay(dto.ScheduledFor)
	if err != nil {
		return nil, err
	}

	items, err := decodeItems(dto.Items)
	if err != nil {
		return nil, fmt.Errorf("decode items of order %s: %w", id, err)
	}

	return order.RestoreOrder(id, dto.Number, customer, area, items, status, partnerID, scheduledFor, dto.CreatedAt, dto.UpdatedAt)
}

func decodeItems(raw datatypes.JSON) ([]order.Item, error) {
	var dtos []ItemDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dtos))
	for _, d := range dtos {
		item, err := order.NewItem(d.Name, d.Quantity, d.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
