package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for partner aggregates.
type PartnerRepository interface {
	// Add persists a new partner.
	// Returns errs.ErrObjectAlreadyExists when the email is taken.
	Add(ctx context.Context, aggregate *partner.Partner) error

	// Update persists changes to an existing partner.
	Update(ctx context.Context, aggregate *partner.Partner) error

	// Get retrieves a partner by identifier.
	// Inside a transaction the row is locked until commit.
	Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error)

	// Delete removes a partner.
	// Returns errs.ErrObjectNotFound when no such partner exists.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllAvailable retrieves every active partner with spare capacity.
	// Inside a transaction the rows are locked until commit.
	GetAllAvailable(ctx context.Context) ([]*partner.Partner, error)
}
