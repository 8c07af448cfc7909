package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetPartnerQueryIsNotConstructed = errors.New(
	"GetPartnerQuery must be created via NewGetPartnerQuery constructor",
)

// GetPartnerQuery fetches a single partner by identifier.
type GetPartnerQuery struct {
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPartnerQuery creates a query for one partner.
func NewGetPartnerQuery(partnerID kernel.UUID) (GetPartnerQuery, error) {
	if err := partnerID.Validate(); err != nil {
		return GetPartnerQuery{}, err
	}
	return GetPartnerQuery{partnerID: partnerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPartnerQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerQueryIsNotConstructed)
}

// PartnerID returns the requested partner.
func (q GetPartnerQuery) PartnerID() kernel.UUID {
	return q.partnerID
}
