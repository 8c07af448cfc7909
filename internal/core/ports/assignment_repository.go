package ports

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"
)

// AssignmentRepository appends outcome records to the assignment log.
// Records are never updated or removed.
type AssignmentRepository interface {
	Append(ctx context.Context, records ...*assignment.Assignment) error
}
