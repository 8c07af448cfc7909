package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

// topAreasLimit is how many areas the partner summary ranks.
const topAreasLimit = 3

var ErrGetPartnersQueryIsNotConstructed = errors.New(
	"GetPartnersQuery must be created via NewGetPartnersQuery constructor",
)

// GetPartnersQuery lists every partner with a fleet summary.
type GetPartnersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPartnersQuery creates a parameterless partner listing query.
func NewGetPartnersQuery() GetPartnersQuery {
	return GetPartnersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPartnersQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnersQueryIsNotConstructed)
}

// PartnersSummary describes the fleet as a whole.
type PartnersSummary struct {
	// TotalActive counts partners with status active, whatever their load.
	TotalActive int
	// AvgRating is the mean rating over all partners, 0 when there are none.
	AvgRating float64
	// TopAreas lists up to three areas by number of covering partners,
	// ties broken alphabetically.
	TopAreas []string
}

// GetPartnersQueryResponse is the partner listing with its summary.
type GetPartnersQueryResponse struct {
	Partners []PartnerView
	Summary  PartnersSummary
}
