// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read straight from the tables through gorm and return read models,
// never aggregates.
package queries

import (
	"errors"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const dateLayout = "2006-01-02"

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists orders, newest first, optionally narrowed by status,
// area and creation day. Empty filters match everything.
//
// Example:
//
//	query, err := NewGetOrdersQuery([]string{"pending"}, []string{"Downtown"}, "2025-03-14")
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	statuses []string
	areas    []string
	day      *time.Time

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery validates the filters.
//
// Parameters:
//   - statuses: order statuses such as "pending", "delivered"
//   - areas: area names, case-insensitive
//   - date: a UTC calendar day "YYYY-MM-DD", or "" for any day
func NewGetOrdersQuery(statuses, areas []string, date string) (GetOrdersQuery, error) {
	q := GetOrdersQuery{guard: guard.NewConstructorGuard()}

	var errList []error
	for _, s := range statuses {
		status, err := order.ParseStatus(s)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		q.statuses = append(q.statuses, status.String())
	}
	for _, a := range areas {
		area, err := kernel.ParseArea(a)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		q.areas = append(q.areas, area.String())
	}
	if date = strings.TrimSpace(date); date != "" {
		day, err := time.Parse(dateLayout, date)
		if err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("date", err))
		} else {
			q.day = &day
		}
	}

	if err := errors.Join(errList...); err != nil {
		return GetOrdersQuery{}, err
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}
