package partnerrepo

import (
	"context"
	"errors"

	"dispatch/internal/adapters/out/postgres/pgerr"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPartnerRepository implements ports.PartnerRepository using GORM.
type GormPartnerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPartnerRepository creates a new GORM partner repository.
func NewGormPartnerRepository(db *gorm.DB, tracker aggregateTracker) *GormPartnerRepository {
	return &GormPartnerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new partner. A taken email is reported as errs.ErrObjectAlreadyExists.
func (r *GormPartnerRepository) Add(ctx context.Context, aggregate *partner.Partner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsError("partner email", aggregate.Email())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every mutable column, so a load dropping to zero is persisted too.
func (r *GormPartnerRepository) Update(ctx context.Context, aggregate *partner.Partner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PartnerDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		if pgerr.IsUniqueViolation(result.Error) {
			return errs.NewObjectAlreadyExistsError("partner email", aggregate.Email())
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("partner", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a partner by ID and locks the row FOR UPDATE.
// Inside a transaction the lock is held until commit, so read-modify-write
// callers serialize with assignment runs.
func (r *GormPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("partner", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a partner by ID.
func (r *GormPartnerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&PartnerDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("partner", id.String())
	}
	return nil
}

// GetAllAvailable retrieves active partners below capacity in registration order
// and locks them FOR UPDATE until the surrounding transaction ends.
func (r *GormPartnerRepository) GetAllAvailable(ctx context.Context) ([]*partner.Partner, error) {
	var dtos []PartnerDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("status = ? AND current_load < ?", partner.Active.String(), partner.Capacity).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	partners := make([]*partner.Partner, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}

	return partners, nil
}
