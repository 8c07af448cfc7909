package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetPartners handles GET /api/v1/partners - all partners with a fleet summary.
func (s *Server) GetPartners(ctx echo.Context) error {
	result, err := s.h.GetPartners.Handle(ctx.Request().Context(), queries.NewGetPartnersQuery())
	if err != nil {
		return err
	}

	response := servers.PartnerList{
		Partners: make([]servers.Partner, len(result.Partners)),
		Metrics: servers.PartnerSummary{
			TotalActive: result.Summary.TotalActive,
			AvgRating:   result.Summary.AvgRating,
			TopAreas:    result.Summary.TopAreas,
		},
	}
	if response.Metrics.TopAreas == nil {
		response.Metrics.TopAreas = []string{}
	}
	for i, p := range result.Partners {
		response.Partners[i] = toPartner(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreatePartner handles POST /api/v1/partners - registers an active partner with no load.
func (s *Server) CreatePartner(ctx echo.Context) error {
	var body servers.NewPartner
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	partnerID := kernel.NewUUID()
	cmd, err := commands.NewCreatePartnerCommand(partnerID, commands.PartnerProfileInput{
		Name:       body.Name,
		Email:      string(body.Email),
		Phone:      body.Phone,
		Areas:      areaNames(body.Areas),
		ShiftStart: body.Shift.Start,
		ShiftEnd:   body.Shift.End,
		Rating:     body.Rating,
	})
	if err != nil {
		return err
	}

	if err = s.h.CreatePartner.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithPartner(ctx, http.StatusCreated, partnerID)
}

// GetPartner handles GET /api/v1/partners/{id}.
func (s *Server) GetPartner(ctx echo.Context, id servers.ID) error {
	partnerID, err := kernel.UUIDFromString(id.String())
	if err != nil {
		return err
	}
	return s.respondWithPartner(ctx, http.StatusOK, partnerID)
}

// UpdatePartner handles PUT /api/v1/partners/{id}.
func (s *Server) UpdatePartner(ctx echo.Context, id servers.ID) error {
	var body servers.PartnerUpdate
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	partnerID, err := kernel.UUIDFromString(id.String())
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdatePartnerCommand(partnerID, commands.PartnerProfileInput{
		Name:       body.Name,
		Email:      string(body.Email),
		Phone:      body.Phone,
		Areas:      areaNames(body.Areas),
		ShiftStart: body.Shift.Start,
		ShiftEnd:   body.Shift.End,
		Rating:     body.Rating,
	}, string(body.Status))
	if err != nil {
		return err
	}

	if err = s.h.UpdatePartner.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithPartner(ctx, http.StatusOK, partnerID)
}

// DeletePartner handles DELETE /api/v1/partners/{id}.
func (s *Server) DeletePartner(ctx echo.Context, id servers.ID) error {
	partnerID, err := kernel.UUIDFromString(id.String())
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeletePartnerCommand(partnerID)
	if err != nil {
		return err
	}
	if err = s.h.DeletePartner.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondWithPartner(ctx echo.Context, status int, partnerID kernel.UUID) error {
	query, err := queries.NewGetPartnerQuery(partnerID)
	if err != nil {
		return err
	}

	view, err := s.h.GetPartner.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(status, toPartner(view))
}

func areaNames(areas []servers.Area) []string {
	names := make([]string, len(areas))
	for i, a := range areas {
		names[i] = string(a)
	}
	return names
}
