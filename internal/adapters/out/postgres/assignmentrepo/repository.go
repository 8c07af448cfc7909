package assignmentrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

const insertBatchSize = 200

// GormAssignmentRepository implements ports.AssignmentRepository using GORM.
// The log is append-only: there is no update or delete.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment log repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Append inserts records in batches. Appending nothing is a no-op.
func (r *GormAssignmentRepository) Append(ctx context.Context, records ...*assignment.Assignment) error {
	if len(records) == 0 {
		return nil
	}

	dtos := make([]AssignmentDTO, 0, len(records))
	for _, a := range records {
		if a == nil {
			return errors.New("cannot append a nil assignment")
		}
		dtos = append(dtos, FromDomain(a))
	}

	if err := r.db.WithContext(ctx).CreateInBatches(&dtos, insertBatchSize).Error; err != nil {
		return err
	}

	for _, a := range records {
		r.tracker.TrackAggregate(a.ID(), a)
	}
	return nil
}
