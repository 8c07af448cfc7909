package queries

import (
	"context"

	"dispatch/internal/core/domain/model/partner"

	"gorm.io/gorm"
)

// GetAssignmentsQueryHandler reads the assignment log and partner availability.
type GetAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignmentsQueryHandler creates a handler for the assignment log.
func NewGetAssignmentsQueryHandler(db *gorm.DB) GetAssignmentsQueryHandler {
	return GetAssignmentsQueryHandler{db: db}
}

// Handle returns the newest records first together with partner availability counts.
func (h GetAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentsQuery,
) (GetAssignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAssignmentsQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var rows []assignmentRow
	err := db.Table("assignments AS a").
		Select(`a.id, a.order_id, COALESCE(o.number, '') AS order_number,
			a.partner_id, COALESCE(p.name, '') AS partner_name,
			a.status, a.reason, a.latency_ms, a.recorded_at`).
		Joins("LEFT JOIN orders AS o ON o.id = a.order_id").
		Joins("LEFT JOIN partners AS p ON p.id = a.partner_id").
		Order("a.recorded_at DESC, a.id").
		Limit(query.Limit()).
		Scan(&rows).Error
	if err != nil {
		return GetAssignmentsQueryResponse{}, err
	}

	records := make([]AssignmentView, 0, len(rows))
	for _, r := range rows {
		view, viewErr := r.toView()
		if viewErr != nil {
			return GetAssignmentsQueryResponse{}, viewErr
		}
		records = append(records, view)
	}

	var counts PartnerAvailability
	err = db.Raw(`
		SELECT
			COUNT(*) FILTER (WHERE status = @active AND current_load < @capacity)  AS available,
			COUNT(*) FILTER (WHERE status = @active AND current_load >= @capacity) AS busy,
			COUNT(*) FILTER (WHERE status <> @active)                              AS offline
		FROM partners
	`, map[string]any{
		"active":   partner.Active.String(),
		"capacity": partner.Capacity,
	}).Scan(&counts).Error
	if err != nil {
		return GetAssignmentsQueryResponse{}, err
	}

	return GetAssignmentsQueryResponse{Assignments: records, Partners: counts}, nil
}
