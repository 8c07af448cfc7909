package queries

import (
	"context"
	"errors"

	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPartnerQueryHandler reads one partner.
type GetPartnerQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnerQueryHandler creates a handler for single-partner lookups.
func NewGetPartnerQueryHandler(db *gorm.DB) GetPartnerQueryHandler {
	return GetPartnerQueryHandler{db: db}
}

// Handle returns the partner, or errs.ErrObjectNotFound.
func (h GetPartnerQueryHandler) Handle(ctx context.Context, query GetPartnerQuery) (PartnerView, error) {
	if err := query.Validate(); err != nil {
		return PartnerView{}, err
	}

	var row partnerRow
	err := h.db.WithContext(ctx).Table("partners").Where("id = ?", query.PartnerID().Bytes()).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return PartnerView{}, errs.NewObjectNotFoundError("partner", query.PartnerID().String())
	}
	if err != nil {
		return PartnerView{}, err
	}

	return row.toView()
}
