package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/assignment"
)

// AssignmentPublisher announces committed outcomes to other services.
type AssignmentPublisher interface {
	Publish(ctx context.Context, outcomes []*assignment.Assignment) error
}

// AssignmentObserver records operational metrics for assignment runs.
type AssignmentObserver interface {
	ObserveRun(elapsed time.Duration, outcomes []*assignment.Assignment)
}
