package order

import (
	"errors"
	"strings"

	"dispatch/internal/pkg/errs"
)

// Customer holds the delivery contact of an order.
type Customer struct {
	name    string
	phone   string
	address string
}

// NewCustomer requires all three fields to be non-blank.
func NewCustomer(name, phone, address string) (Customer, error) {
	c := Customer{
		name:    strings.TrimSpace(name),
		phone:   strings.TrimSpace(phone),
		address: strings.TrimSpace(address),
	}

	var errName, errPhone, errAddress error
	if c.name == "" {
		errName = errs.NewValueIsRequiredError("customer name")
	}
	if c.phone == "" {
		errPhone = errs.NewValueIsRequiredError("customer phone")
	}
	if c.address == "" {
		errAddress = errs.NewValueIsRequiredError("customer address")
	}
	if err := errors.Join(errName, errPhone, errAddress); err != nil {
		return Customer{}, err
	}
	return c, nil
}

func (c Customer) Name() string    { return c.name }
func (c Customer) Phone() string   { return c.phone }
func (c Customer) Address() string { return c.address }
