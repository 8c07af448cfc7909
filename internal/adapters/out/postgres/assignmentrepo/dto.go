// Package assignmentrepo appends assignment outcome records to the assignments table.
package assignmentrepo

import (
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO is the row shape of the assignments table.
// Reason holds the stable reason code, empty for successes.
type AssignmentDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID  `gorm:"type:uuid;index:idx_assignments_order_id;not null"`
	PartnerID  *uuid.UUID `gorm:"type:uuid"`
	Status     string     `gorm:"not null"`
	Reason     string     `gorm:"not null;default:''"`
	LatencyMs  int64      `gorm:"not null"`
	RecordedAt time.Time  `gorm:"index:idx_assignments_recorded_at;not null"`
}

// TableName overrides gorm's default naming.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// FromDomain maps a record to its row.
func FromDomain(a *assignment.Assignment) AssignmentDTO {
	var partnerID *uuid.UUID
	if id := a.Partner(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	return AssignmentDTO{
		ID:         a.ID().Bytes(),
		OrderID:    a.OrderID().Bytes(),
		PartnerID:  partnerID,
		Status:     string(a.Status()),
		Reason:     a.Reason().Code(),
		LatencyMs:  a.Latency().Milliseconds(),
		RecordedAt: a.Timestamp(),
	}
}

// ToDomain rebuilds a record from its row.
func ToDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
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

	status, err := assignment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	reason := assignment.ReasonNone
	if dto.Reason != "" {
		if reason, err = assignment.ParseReason(dto.Reason); err != nil {
			return nil, err
		}
	}

	latency := time.Duration(dto.LatencyMs) * time.Millisecond
	return assignment.Restore(id, orderID, partnerID, status, reason, dto.RecordedAt, latency)
}
