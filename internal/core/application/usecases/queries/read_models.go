package queries

import (
	"encoding/json"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderItemView is one order line in a read model.
type OrderItemView struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// OrderView is the read model of an order.
type OrderView struct {
	ID              kernel.UUID
	Number          string
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Area            string
	Items           []OrderItemView
	TotalAmount     decimal.Decimal
	Status          string
	PartnerID       *kernel.UUID
	ScheduledFor    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PartnerView is the read model of a delivery partner.
type PartnerView struct {
	ID              kernel.UUID
	Name            string
	Email           string
	Phone           string
	Status          string
	CurrentLoad     int
	Areas           []string
	ShiftStart      string
	ShiftEnd        string
	Rating          float64
	CompletedOrders int
	CancelledOrders int
	Availability    partner.Availability
}

type orderRow struct {
	ID              uuid.UUID
	Number          string
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Area            string
	Items           datatypes.JSON
	TotalAmount     decimal.Decimal
	Status          string
	PartnerID       *uuid.UUID
	ScheduledFor    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (r orderRow) toView() (OrderView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return OrderView{}, err
	}

	partnerID, err := optionalUUID(r.PartnerID)
	if err != nil {
		return OrderView{}, err
	}

	items := make([]OrderItemView, 0)
	if len(r.Items) > 0 {
		if err = json.Unmarshal(r.Items, &items); err != nil {
			return OrderView{}, fmt.Errorf("decode items of order %s: %w", id, err)
		}
	}

	return OrderView{
		ID:              id,
		Number:          r.Number,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerAddress: r.CustomerAddress,
		Area:            r.Area,
		Items:           items,
		TotalAmount:     r.TotalAmount,
		Status:          r.Status,
		PartnerID:       partnerID,
		ScheduledFor:    r.ScheduledFor,
		CreatedAt:       r.CreatedAt.UTC(),
		UpdatedAt:       r.UpdatedAt.UTC(),
	}, nil
}

type partnerRow struct {
	ID              uuid.UUID
	Name            string
	Email           string
	Phone           string
	Status          string
	CurrentLoad     int
	Areas           pq.StringArray `gorm:"type:text[]"`
	ShiftStart      string
	ShiftEnd        string
	Rating          float64
	CompletedOrders int
	CancelledOrders int
}

func (r partnerRow) toView() (PartnerView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return PartnerView{}, err
	}

	return PartnerView{
		ID:              id,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Status:          r.Status,
		CurrentLoad:     r.CurrentLoad,
		Areas:           []string(r.Areas),
		ShiftStart:      r.ShiftStart,
		ShiftEnd:        r.ShiftEnd,
		Rating:          r.Rating,
		CompletedOrders: r.CompletedOrders,
		CancelledOrders: r.CancelledOrders,
		Availability:    availabilityOf(r.Status, r.CurrentLoad),
	}, nil
}

// availabilityOf mirrors partner.Partner.Availability for a row.
func availabilityOf(status string, load int) partner.Availability {
	switch {
	case status != partner.Active.String():
		return partner.Offline
	case load >= partner.Capacity:
		return partner.Busy
	default:
		return partner.Available
	}
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
