package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetAssignments handles GET /api/v1/assignments - recent records and partner availability.
func (s *Server) GetAssignments(ctx echo.Context, params servers.GetAssignmentsParams) error {
	var limit int
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewGetAssignmentsQuery(limit)
	if err != nil {
		return err
	}

	result, err := s.h.GetAssignments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := servers.AssignmentList{
		ActiveAssignments: make([]servers.Assignment, len(result.Assignments)),
		Partners: servers.AvailabilityCounts{
			Available: result.Partners.Available,
			Busy:      result.Partners.Busy,
			Offline:   result.Partners.Offline,
		},
	}
	for i, a := range result.Assignments {
		response.ActiveAssignments[i] = toAssignmentView(a)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAssignmentMetrics handles GET /api/v1/assignments/metrics.
func (s *Server) GetAssignmentMetrics(ctx echo.Context) error {
	metrics, err := s.h.GetAssignmentMetrics.Handle(ctx.Request().Context(), queries.NewGetAssignmentMetricsQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toMetrics(metrics))
}

// RunAssignment handles POST /api/v1/assignments/run - one batch over all pending orders.
// The run is committed before metrics are read, so a metrics failure only empties the summary.
func (s *Server) RunAssignment(ctx echo.Context) error {
	result, err := s.h.RunAssignment.Handle(ctx.Request().Context(), commands.NewRunAssignmentCommand())
	if err != nil {
		return err
	}

	metrics, err := s.h.GetAssignmentMetrics.Handle(ctx.Request().Context(), queries.NewGetAssignmentMetricsQuery())
	if err != nil {
		s.logger.Error("Failed to read assignment metrics after run",
			"error", err,
			"outcomes", len(result.Outcomes),
		)
		metrics = assignment.Metrics{}
	}

	response := servers.AssignmentRun{
		Assignments: make([]servers.Assignment, len(result.Outcomes)),
		Metrics:     toMetrics(metrics),
	}
	for i, a := range result.Outcomes {
		response.Assignments[i] = toAssignment(a)
	}

	return ctx.JSON(http.StatusOK, response)
}
