package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetAssignmentMetricsQueryIsNotConstructed = errors.New(
	"GetAssignmentMetricsQuery must be created via NewGetAssignmentMetricsQuery constructor",
)

// GetAssignmentMetricsQuery summarizes the whole assignment log.
type GetAssignmentMetricsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAssignmentMetricsQuery() GetAssignmentMetricsQuery {
	return GetAssignmentMetricsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAssignmentMetricsQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentMetricsQueryIsNotConstructed)
}
