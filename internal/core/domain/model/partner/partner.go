package partner

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Capacity is the maximum number of orders a partner carries at once.
const Capacity = 3

var (
	// ErrPartnerIsNotConstructed is returned when using a Partner that did not come from a constructor.
	ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner constructor")
	// ErrPartnerIsInactive is returned when handing work to an inactive partner.
	ErrPartnerIsInactive = errs.NewValueIsInvalidErrorWithCause("partner", errors.New("partner is inactive"))
	// ErrPartnerIsAtCapacity is returned when handing work to a partner that is already full.
	ErrPartnerIsAtCapacity = errs.NewValueIsInvalidErrorWithCause("partner", fmt.Errorf("partner already carries %d orders", Capacity))
	// ErrPartnerHasNoLoad is returned when completing an order for a partner carrying nothing.
	ErrPartnerHasNoLoad = errs.NewValueIsInvalidErrorWithCause("partner", errors.New("partner carries no orders"))
)

// Partner is the aggregate root for a delivery partner.
//
// Key responsibilities:
//   - Holding contact details, covered areas and the shift window
//   - Tracking the current load against Capacity
//   - Keeping performance metrics (rating, completed and cancelled counts)
//
// Business rules:
//   - 0 ≤ current load ≤ Capacity at all times
//   - A partner covers at least one area
//   - Inactive or full partners cannot take new orders
//
// Example usage:
//
//	areas, _ := kernel.NewAreaSet(kernel.Downtown, kernel.Midtown)
//	shift, _ := kernel.ParseShiftWindow("09:00", "17:00")
//	p, err := partner.NewPartner(kernel.NewUUID(), "Sam Ortiz", "sam@example.com", "+1 555 0101", areas, shift, 4.6)
type Partner struct {
	id          kernel.UUID
	name        string
	email       string
	phone       string
	status      Status
	currentLoad int
	areas       kernel.AreaSet
	shift       kernel.ShiftWindow
	metrics     Metrics

	guard guard.ConstructorGuard
}

// NewPartner creates an active partner with no load and no delivery history.
//
// Parameters:
//   - id: unique identifier
//   - name, email, phone: contact details, email must be a valid address
//   - areas: zones the partner serves, must not be empty
//   - shift: daily working window
//   - rating: starting rating in [0, 5]
//
// Returns the partner, or all validation errors joined together.
func NewPartner(
	id kernel.UUID,
	name, email, phone string,
	areas kernel.AreaSet,
	shift kernel.ShiftWindow,
	rating float64,
) (*Partner, error) {
	p := &Partner{
		status: Active,
		guard:  guard.NewConstructorGuard(),
	}

	metrics, errMetrics := NewMetrics(rating, 0, 0)
	if err := errors.Join(
		p.setID(id),
		p.setContacts(name, email, phone),
		p.setAreas(areas),
		p.setShift(shift),
		errMetrics,
	); err != nil {
		return nil, err
	}
	p.metrics = metrics

	return p, nil
}

// RestorePartner rebuilds a partner loaded from storage.
func RestorePartner(
	id kernel.UUID,
	name, email, phone string,
	status Status,
	currentLoad int,
	areas kernel.AreaSet,
	shift kernel.ShiftWindow,
	metrics Metrics,
) (*Partner, error) {
	p := &Partner{
		metrics: metrics,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setContacts(name, email, phone),
		p.setStatus(status),
		p.setLoad(currentLoad),
		p.setAreas(areas),
		p.setShift(shift),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Partner went through a constructor.
func (p *Partner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

// IsEqual compares two partners by identifier.
func (p *Partner) IsEqual(other *Partner) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Partner) ID() kernel.UUID           { return p.id }
func (p *Partner) Name() string              { return p.name }
func (p *Partner) Email() string             { return p.email }
func (p *Partner) Phone() string             { return p.phone }
func (p *Partner) Status() Status            { return p.status }
func (p *Partner) CurrentLoad() int          { return p.currentLoad }
func (p *Partner) Areas() kernel.AreaSet     { return p.areas }
func (p *Partner) Shift() kernel.ShiftWindow { return p.shift }
func (p *Partner) Metrics() Metrics          { return p.metrics }
func (p *Partner) Rating() float64           { return p.metrics.rating }

// IsActive reports whether the partner takes work at all.
func (p *Partner) IsActive() bool {
	return p.status == Active
}

// IsAvailable reports whether the partner can receive a new order: active and under Capacity.
func (p *Partner) IsAvailable() bool {
	return p.IsActive() && p.currentLoad < Capacity
}

// Covers reports whether the partner serves area.
func (p *Partner) Covers(area kernel.Area) bool {
	return p.areas.Contains(area)
}

// OnShift reports whether at falls inside the partner's shift, bounds included.
func (p *Partner) OnShift(at kernel.TimeOfDay) bool {
	return p.shift.Contains(at)
}

// Availability derives the dispatcher view: Offline when inactive, Busy when full, otherwise Available.
func (p *Partner) Availability() Availability {
	switch {
	case !p.IsActive():
		return Offline
	case p.currentLoad >= Capacity:
		return Busy
	default:
		return Available
	}
}

// TakeOrders adds n orders to the partner's load.
//
// Returns an error and leaves the load untouched if the partner is inactive, n is not
// positive, or the new load would exceed Capacity.
func (p *Partner) TakeOrders(n int) error {
	if n <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orders", fmt.Errorf("%d is not greater than 0", n))
	}
	if !p.IsActive() {
		return ErrPartnerIsInactive
	}
	if p.currentLoad+n > Capacity {
		return ErrPartnerIsAtCapacity
	}
	p.currentLoad += n
	return nil
}

// CompleteOrder releases one unit of load and counts a completed delivery.
func (p *Partner) CompleteOrder() error {
	if p.currentLoad == 0 {
		return ErrPartnerHasNoLoad
	}
	p.currentLoad--
	p.metrics.completed++
	return nil
}

// ChangeProfile replaces contact details, coverage, shift and rating in one step.
// Nothing changes if any value is invalid.
func (p *Partner) ChangeProfile(
	name, email, phone string,
	areas kernel.AreaSet,
	shift kernel.ShiftWindow,
	rating float64,
) error {
	draft := *p
	metrics, errMetrics := NewMetrics(rating, p.metrics.completed, p.metrics.cancelled)
	if err := errors.Join(
		draft.setContacts(name, email, phone),
		draft.setAreas(areas),
		draft.setShift(shift),
		errMetrics,
	); err != nil {
		return err
	}
	draft.metrics = metrics

	*p = draft
	return nil
}

// Activate lets the partner receive orders again.
func (p *Partner) Activate() {
	p.status = Active
}

// Deactivate stops new assignments. Orders already carried stay in the load.
func (p *Partner) Deactivate() {
	p.status = Inactive
}

func (p *Partner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Partner) setContacts(name, email, phone string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	var errName, errEmail, errPhone error
	if name == "" {
		errName = errs.NewValueIsRequiredError("name")
	}
	if email == "" {
		errEmail = errs.NewValueIsRequiredError("email")
	} else if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		errEmail = errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	if phone == "" {
		errPhone = errs.NewValueIsRequiredError("phone")
	}
	if err := errors.Join(errName, errEmail, errPhone); err != nil {
		return err
	}

	p.name, p.email, p.phone = name, email, phone
	return nil
}

func (p *Partner) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

func (p *Partner) setLoad(load int) error {
	if load < 0 || load > Capacity {
		return errs.NewValueIsOutOfRangeError("current load", load, 0, Capacity)
	}
	p.currentLoad = load
	return nil
}

func (p *Partner) setAreas(areas kernel.AreaSet) error {
	if areas.IsEmpty() {
		return errs.NewValueIsRequiredError("areas")
	}
	p.areas = areas
	return nil
}

func (p *Partner) setShift(shift kernel.ShiftWindow) error {
	if err := shift.Validate(); err != nil {
		return err
	}
	p.shift = shift
	return nil
}
