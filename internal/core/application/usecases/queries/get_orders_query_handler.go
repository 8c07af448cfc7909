package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders from the orders table.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listings.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns the matching orders, newest first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("orders")
	if len(query.statuses) > 0 {
		tx = tx.Where("status IN ?", query.statuses)
	}
	if len(query.areas) > 0 {
		tx = tx.Where("area IN ?", query.areas)
	}
	if query.day != nil {
		tx = tx.Where("created_at >= ? AND created_at < ?", *query.day, query.day.Add(24*time.Hour))
	}

	var rows []orderRow
	if err := tx.Order("created_at DESC, number").Find(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]OrderView, 0, len(rows))
	for _, r := range rows {
		view, err := r.toView()
		if err != nil {
			return nil, err
		}
		orders = append(orders, view)
	}
	return orders, nil
}
