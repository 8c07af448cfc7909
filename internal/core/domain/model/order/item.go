package order

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is one line of an order. Prices are exact decimals.
type Item struct {
	name     string
	quantity int
	price    decimal.Decimal
}

// NewItem validates and creates an order line.
//
// Parameters:
//   - name: product name, must not be blank
//   - quantity: number of units, must be positive
//   - price: unit price, must not be negative
func NewItem(name string, quantity int, price decimal.Decimal) (Item, error) {
	var errName, errQty, errPrice error

	name = strings.TrimSpace(name)
	if name == "" {
		errName = errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		errQty = errs.NewValueIsInvalidErrorWithCause("item quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if price.IsNegative() {
		errPrice = errs.NewValueIsInvalidErrorWithCause("item price", fmt.Errorf("%s is negative", price))
	}
	if err := errors.Join(errName, errQty, errPrice); err != nil {
		return Item{}, err
	}

	return Item{name: name, quantity: quantity, price: price}, nil
}

// Name returns the product name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the number of units.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price.
func (i Item) Price() decimal.Decimal {
	return i.price
}

// Subtotal returns quantity × price.
func (i Item) Subtotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}
