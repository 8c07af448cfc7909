package queries

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/assignment"

	"gorm.io/gorm"
)

// GetAssignmentMetricsQueryHandler folds the assignment log into assignment.Metrics.
type GetAssignmentMetricsQueryHandler struct {
	db *gorm.DB
}

func NewGetAssignmentMetricsQueryHandler(db *gorm.DB) GetAssignmentMetricsQueryHandler {
	return GetAssignmentMetricsQueryHandler{db: db}
}

// Handle streams every outcome through an assignment.MetricsAccumulator.
func (h GetAssignmentMetricsQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentMetricsQuery,
) (assignment.Metrics, error) {
	if err := query.Validate(); err != nil {
		return assignment.Metrics{}, err
	}

	rows, err := h.db.WithContext(ctx).Table("assignments").Select("status, reason, latency_ms").Rows()
	if err != nil {
		return assignment.Metrics{}, err
	}
	defer rows.Close()

	var acc assignment.MetricsAccumulator
	for rows.Next() {
		var (
			rawStatus, rawReason string
			latencyMs            int64
		)
		if err = rows.Scan(&rawStatus, &rawReason, &latencyMs); err != nil {
			return assignment.Metrics{}, err
		}

		status, parseErr := assignment.ParseStatus(rawStatus)
		if parseErr != nil {
			return assignment.Metrics{}, fmt.Errorf("read assignment log: %w", parseErr)
		}
		reason := assignment.ReasonNone
		if rawReason != "" {
			if reason, parseErr = assignment.ParseReason(rawReason); parseErr != nil {
				return assignment.Metrics{}, fmt.Errorf("read assignment log: %w", parseErr)
			}
		}

		acc.AddOutcome(status, reason, time.Duration(latencyMs)*time.Millisecond)
	}
	if err = rows.Err(); err != nil {
		return assignment.Metrics{}, err
	}

	return acc.Metrics(), nil
}
