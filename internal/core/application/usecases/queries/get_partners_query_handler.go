package queries

import (
	"context"

	"dispatch/internal/core/domain/model/partner"

	"gorm.io/gorm"
)

// GetPartnersQueryHandler reads the partners table.
type GetPartnersQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnersQueryHandler creates a handler for partner listings.
func NewGetPartnersQueryHandler(db *gorm.DB) GetPartnersQueryHandler {
	return GetPartnersQueryHandler{db: db}
}

// Handle returns all partners sorted by name plus the fleet summary.
func (h GetPartnersQueryHandler) Handle(ctx context.Context, query GetPartnersQuery) (GetPartnersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPartnersQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var rows []partnerRow
	if err := db.Table("partners").Order("name, id").Find(&rows).Error; err != nil {
		return GetPartnersQueryResponse{}, err
	}

	partners := make([]PartnerView, 0, len(rows))
	for _, r := range rows {
		view, err := r.toView()
		if err != nil {
			return GetPartnersQueryResponse{}, err
		}
		partners = append(partners, view)
	}

	summary, err := h.summarize(db)
	if err != nil {
		return GetPartnersQueryResponse{}, err
	}

	return GetPartnersQueryResponse{Partners: partners, Summary: summary}, nil
}

func (h GetPartnersQueryHandler) summarize(db *gorm.DB) (PartnersSummary, error) {
	var totals struct {
		TotalActive int
		AvgRating   float64
	}
	if err := db.Raw(`
		SELECT
			COUNT(*) FILTER (WHERE status = ?) AS total_active,
			COALESCE(AVG(rating), 0)          AS avg_rating
		FROM partners
	`, partner.Active.String()).Scan(&totals).Error; err != nil {
		return PartnersSummary{}, err
	}

	topAreas := make([]string, 0, topAreasLimit)
	if err := db.Raw(`
		SELECT area
		FROM partners, unnest(areas) AS area
		GROUP BY area
		ORDER BY COUNT(*) DESC, area
		LIMIT ?
	`, topAreasLimit).Scan(&topAreas).Error; err != nil {
		return PartnersSummary{}, err
	}

	return PartnersSummary{
		TotalActive: totals.TotalActive,
		AvgRating:   totals.AvgRating,
		TopAreas:    topAreas,
	}, nil
}
