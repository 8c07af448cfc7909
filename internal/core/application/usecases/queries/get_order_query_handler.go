package queries

import (
	"context"
	"errors"

	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order, or errs.ErrObjectNotFound.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	var row orderRow
	err := h.db.WithContext(ctx).Table("orders").Where("id = ?", query.OrderID().Bytes()).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return OrderView{}, err
	}

	return row.toView()
}
