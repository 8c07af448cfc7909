// Package partnerrepo persists partner aggregates with gorm.
// Covered areas are stored as a PostgreSQL text array so that read models can
// filter and tally them with ANY and unnest.
package partnerrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PartnerDTO is the row shape of the partners table.
type PartnerDTO struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name            string         `gorm:"not null"`
	Email           string         `gorm:"uniqueIndex:idx_partners_email;not null"`
	Phone           string         `gorm:"not null"`
	Status          string         `gorm:"index:idx_partners_status;not null"`
	CurrentLoad     int            `gorm:"type:smallint;not null"`
	Areas           pq.StringArray `gorm:"type:text[];not null"`
	ShiftStart      string         `gorm:"type:varchar(5);not null"`
	ShiftEnd        string         `gorm:"type:varchar(5);not null"`
	Rating          float64        `gorm:"not null"`
	CompletedOrders int            `gorm:"not null"`
	CancelledOrders int            `gorm:"not null"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
}

// TableName overrides gorm's default naming.
func (PartnerDTO) TableName() string {
	return "partners"
}

func fromDomain(p *partner.Partner) PartnerDTO {
	return PartnerDTO{
		ID:              p.ID().Bytes(),
		Name:            p.Name(),
		Email:           p.Email(),
		Phone:           p.Phone(),
		Status:          p.Status().String(),
		CurrentLoad:     p.CurrentLoad(),
		Areas:           pq.StringArray(p.Areas().Strings()),
		ShiftStart:      p.Shift().Start().String(),
		ShiftEnd:        p.Shift().End().String(),
		Rating:          p.Metrics().Rating(),
		CompletedOrders: p.Metrics().CompletedOrders(),
		CancelledOrders: p.Metrics().CancelledOrders(),
	}
}

func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := partner.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	areas, err := kernel.ParseAreaSet(dto.Areas)
	if err != nil {
		return nil, err
	}

	shift, err := kernel.ParseShiftWindow(dto.ShiftStart, dto.ShiftEnd)
	if err != nil {
		return nil, err
	}

	metrics, err := partner.NewMetrics(dto.Rating, dto.CompletedOrders, dto.CancelledOrders)
	if err != nil {
		return nil, err
	}

	return partner.RestorePartner(id, dto.Name, dto.Email, dto.Phone, status, dto.CurrentLoad, areas, shift, metrics)
}
