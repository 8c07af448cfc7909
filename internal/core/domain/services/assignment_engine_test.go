package services_test

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	orderCreated = time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	runAt        = orderCreated.Add(5 * time.Minute)
)

func newEngine() *services.AssignmentEngine {
	return services.NewAssignmentEngine(services.WithClock(func() time.Time { return runAt }))
}

func newOrder(t testing.TB, area kernel.Area, scheduledFor string) *order.Order {
	t.Helper()
	customer, err := order.NewCustomer("Ann Lee", "+1 555 0100", "12 Main St")
	require.NoError(t, err)
	item, err := order.NewItem("Pizza", 1, decimal.NewFromInt(10))
	require.NoError(t, err)
	at, err := kernel.ParseTimeOfDay(scheduledFor)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "ORD-"+kernel.NewUUID().String()[:8], customer, area, []order.Item{item}, at, orderCreated)
	require.NoError(t, err)
	return o
}

type partnerFixture struct {
	status       partner.Status
	load         int
	areas        []kernel.Area
	start, end   string
	rating       float64
}

func newPartner(t testing.TB, s partnerFixture) *partner.Partner {
	t.Helper()
	if s.status == partner.StatusUnknown {
		s.status = partner.Active
	}
	areas, err := kernel.NewAreaSet(s.areas...)
	require.NoError(t, err)
	shift, err := kernel.ParseShiftWindow(s.start, s.end)
	require.NoError(t, err)
	metrics, err := partner.NewMetrics(s.rating, 0, 0)
	require.NoError(t, err)
	p, err := partner.RestorePartner(kernel.NewUUID(), "Partner", "p@example.com", "1", s.status, s.load, areas, shift, metrics)
	require.NoError(t, err)
	return p
}

func TestAssignmentEngine_Assign(t *testing.T) {
	t.Run("should give the order to the higher rated partner when loads are equal", func(t *testing.T) {
		o := newOrder(t, kernel.Downtown, "14:00")
		p1 := newPartner(t, partnerFixture{areas: []kernel.Area{kernel.Downtown}, start: "09:00", end: "17:00", rating: 4.5})
		p2 := newPartner(t, partnerFixture{areas: []kernel.Area{kernel.Downtown}, start: "09:00", end: "17:00", rating: 4.8})

		plan, err := newEngine().Assign([]*order.Order{o}, []*partner.Partner{p1, p2})

		require.NoError(t, err)
		require.Len(t, plan.Assignments, 1)
		a := plan.Assignments[0]
		assert.Equal(t, assignment.Success, a.Status())
		assert.True(t, a.Partner().IsEqual(p2.ID()))
		assert.True(t, a.OrderID().IsEqual(o.ID()))
		assert.Equal(t, runAt, a.Timestamp())
		assert.Equal(t, 5*time.Minute, a.Latency())
		assert.Equal(t, map[kernel.UUID]int{p2.ID(): 1}, plan.LoadDeltas)
		assert.Equal(t, 1, p2.CurrentLoad()+plan.LoadDeltas[p2.ID()])
	})

	t.Run("should fail with no eligible partner when nobody covers the area", func(t *testing.T) {
		o := newOrder(t, kernel.Eastside, "14:00")
		p := newPartner(t, partnerFixture{areas: []kernel.Area{kernel.Downtown, kernel.Westside}, start: "09:00", end: "17:00", rating: 5})

		plan, err := newEngine().Assign([]*order.Order{o}, []*partner.Partner{p})

		require.NoError(t, err)
		require.Len(t, plan.Assignments, 1)
		assert.Equal(t, assignment.Failed, plan.Assignments[0].Status())
		assert.Equal(t, assignment.NoEligiblePartner, plan.Assignments[0].Reason())
		assert.Nil(t, plan.Assignments[0].Partner())
		assert.Empty(t, plan.LoadDeltas)
	})

	t.Run("should fail with no partner on shift when coverage exists outside the shift", func(t *testing.T) {
		o := newOrder(t, kernel.Midtown, "20:00")
		p := newPartner(t, partnerFixture{areas: []kernel.Area{kernel.Midtown}, start: "09:00", end: "17:00", rating: 4})

		plan, err := newEngine().Assign([]*order.Order{o}, []*partner.Partner{p})

		require.NoError(t, err)
		require.Len(t, plan.Assignments, 1)
		assert.Equal(t, assignment.NoPartnerOnShift, plan.Assignments[0].Reason())
		assert.Equal(t, "No partner available at scheduled time", plan.Assignments[0].Reason().String())
		assert.Empty(t, plan.LoadDeltas)
	})

	t.Run("should not consider a partner already at capacity", func(t *testing.T) {
		o := newOrder(t, kernel.Northside, "12:00")
		full := newPartner(t, partnerFixture{load: partner.Capacity, areas: []kernel.Area{kernel.Northside}, start: "09:00", end: "17:00", rating: 5})

		plan, err := newEngine().Assign([]*order.Order{o}, []*partner.Partner{full})

		require.NoError(t, err)
		require.Len(t, plan.Assignments, 1)
		assert.Equal(t, assignment.NoEligiblePartner, plan.Assignments[0].Reason())
		assert.Equal(t, partner.Capacity, full.CurrentLoad())
	})

	t.Run("should keep assigning to the same partner while it has room", func(t *testing.T) {
		o1 := newOrder(t, kernel.Uptown, "10:00")
		o2 := newOrder(t, kernel.Uptown, "11:00")
		p := newPartner(t, partnerFixture{areas: []kernel.Area{kernel.Uptown}, start: "09:00", end: "17:00", rating: 4})

		plan, err := newEngine().Assign([]*order.Order{o1, o2}, []*partner.Partner{p})

		require.NoError(t, err)
		require.Len(t, plan.Assignments, 2)
		assert.True(t, plan.Assignments[0].IsSuccess())
		assert.True(t, plan.Assignments[1].IsSuccess())
		assert.True(t, plan.Assignments[0].OrderID().IsEqual(o1.ID()))
		assert.True(t, plan.Assignments[1].OrderID().IsEqual(o2.ID()))
		assert.Equal(t, 2, plan.LoadDeltas[p.ID()])
		assert.Equal(t, 0, p.CurrentLoad(), "engine must not mutate its input")
		assert.Equal(t, order.Pending, o1.Status(), "engine must not mutate its input")
	})

	t.Run("should stop assigning to a partner filled earlier in the batch", func(t *testing.T) {
		orders := []*order.Order{
			newOrder(t, kernel.Southside, "10:00"),
			newOrder(t, kernel.Southside, "10:00"),
			newOrder(t, kernel.Southside, "10:00"),
		}
		p := newPartner(t, partnerFixture{load: 1, areas: []kernel.Area{kernel.Southside}, start: "09:00", end: "17:00", rating: 4})

		plan, err := newEngine().Assign(orders, []*partner.Partner{p})

		require.NoError(t, err)
		require.Len(t, plan.Assignments, 3)
		assert.True(t, plan.Assignments[0].IsSuccess())
		assert.True(t, plan.Assignments[1].IsSuccess())
		assert.Equal(t, assignment.NoEligiblePartner, plan.Assignments[2].Reason())
		assert.Equal(t, 2, plan.LoadDeltas[p.ID()])
	})

	t.Run("should keep the initial ranking for the whole batch", func(t *testing.T) {
		// a starts ahead of b on load. After a takes two orders it carries more than b,
		// but the third order still goes to a because the pool is ranked only once.
		a := newPartner(t, partnerFixture{load: 0, areas: []kernel.Area{kernel.Downtown}, start: "00:00", end: "23:59", rating: 3})
		b := newPartner(t, partnerFixture{load: 1, areas: []kernel.Area{kernel.Downtown}, start: "00:00", end: "23:59", rating: 5})
		orders := []*order.Order{
			newOrder(t, kernel.Downtown, "12:00"),
			newOrder(t, kernel.Downtown, "12:00"),
			newOrder(t, kernel.Downtown, "12:00"),
		}

		plan, err := newEngine().Assign(orders, []*partner.Partner{b, a})

		require.NoError(t, err)
		for _, out := range plan.Assignments {
			assert.True(t, out.Partner().IsEqual(a.ID()))
		}
		assert.Equal(t, 3, plan.LoadDeltas[a.ID()])
	})

	t.Run("should skip non-pending orders and inactive partners", func(t *testing.T) {
		pending := newOrder(t, kernel.Westside, "12:00")
		taken := newOrder(t, kernel.Westside, "12:00")
		require.NoError(t, taken.Assign(kernel.NewUUID(), orderCreated))
		inactive := newPartner(t, partnerFixture{status: partner.Inactive, areas: []kernel.Area{kernel.Westside}, start: "09:00", end: "17:00", rating: 5})

		plan, err := newEngine().Assign([]*order.Order{taken, pending}, []*partner.Partner{inactive})

		require.NoError(t, err)
		require.Len(t, plan.Assignments, 1)
		assert.True(t, plan.Assignments[0].OrderID().IsEqual(pending.ID()))
		assert.Equal(t, assignment.NoEligiblePartner, plan.Assignments[0].Reason())
	})

	t.Run("should treat shift bounds as inclusive", func(t *testing.T) {
		p := newPartner(t, partnerFixture{areas: []kernel.Area{kernel.Midtown}, start: "09:00", end: "17:00", rating: 4})

		plan, err := newEngine().Assign([]*order.Order{
			newOrder(t, kernel.Midtown, "09:00"),
			newOrder(t, kernel.Midtown, "17:00"),
			newOrder(t, kernel.Midtown, "17:01"),
		}, []*partner.Partner{p})

		require.NoError(t, err)
		assert.True(t, plan.Assignments[0].IsSuccess())
		assert.True(t, plan.Assignments[1].IsSuccess())
		assert.Equal(t, assignment.NoPartnerOnShift, plan.Assignments[2].Reason())
	})
}

func TestAssignmentEngine_EmptyInputs(t *testing.T) {
	plan, err := newEngine().Assign(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, plan.Assignments)
	assert.Empty(t, plan.LoadDeltas)
	assert.Empty(t, plan.Successes())
}

func TestAssignmentEngine_RejectsUnconstructedInput(t *testing.T) {
	_, err := newEngine().Assign([]*order.Order{nil}, nil)
	require.ErrorIs(t, err, services.ErrInvalidBatchInput)

	_, err = newEngine().Assign(nil, []*partner.Partner{{}})
	require.ErrorIs(t, err, services.ErrInvalidBatchInput)
	require.ErrorIs(t, err, partner.ErrPartnerIsNotConstructed)
}

func TestAssignmentEngine_UsesInjectedIDs(t *testing.T) {
	fixed := kernel.NewUUID()
	engine := services.NewAssignmentEngine(services.WithIDGenerator(func() kernel.UUID { return fixed }))

	plan, err := engine.Assign([]*order.Order{newOrder(t, kernel.Downtown, "12:00")}, nil)

	require.NoError(t, err)
	assert.True(t, plan.Assignments[0].ID().IsEqual(fixed))
}

func TestAssignmentEngine_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 42))
	areas := kernel.AllAreas()
	clock := func() string { return fmt.Sprintf("%02d:%02d", rng.IntN(24), rng.IntN(4)*15) }

	for run := range 200 {
		var partners []*partner.Partner
		for range rng.IntN(6) {
			start, end := clock(), clock()
			if end < start {
				start, end = end, start
			}
			status := partner.Active
			if rng.IntN(5) == 0 {
				status = partner.Inactive
			}
			partners = append(partners, newPartner(t, partnerFixture{
				status: status,
				load:   rng.IntN(partner.Capacity + 1),
				areas:  []kernel.Area{areas[rng.IntN(len(areas))], areas[rng.IntN(len(areas))]},
				start:  start,
				end:    end,
				rating: float64(rng.IntN(51)) / 10,
			}))
		}
		var orders []*order.Order
		for range rng.IntN(12) {
			orders = append(orders, newOrder(t, areas[rng.IntN(len(areas))], clock()))
		}

		plan, err := newEngine().Assign(orders, partners)
		require.NoError(t, err)

		byID := make(map[kernel.UUID]*partner.Partner)
		for _, p := range partners {
			byID[p.ID()] = p
		}
		ordersByID := make(map[kernel.UUID]*order.Order)
		for _, o := range orders {
			ordersByID[o.ID()] = o
		}

		require.Len(t, plan.Assignments, len(orders), "run %d: one outcome per pending order", run)
		seen := make(map[kernel.UUID]bool)
		for i, a := range plan.Assignments {
			assert.True(t, a.OrderID().IsEqual(orders[i].ID()), "run %d: outcomes follow input order", run)
			assert.False(t, seen[a.OrderID()], "run %d: order appears once", run)
			seen[a.OrderID()] = true

			if !a.IsSuccess() {
				continue
			}
			p := byID[*a.Partner()]
			o := ordersByID[a.OrderID()]
			assert.True(t, p.IsActive(), "run %d: active", run)
			assert.True(t, p.Covers(o.Area()), "run %d: area", run)
			assert.True(t, p.Shift().Start().Minutes() <= o.ScheduledFor().Minutes(), "run %d: shift start", run)
			assert.True(t, o.ScheduledFor().Minutes() <= p.Shift().End().Minutes(), "run %d: shift end", run)
		}
		for id, delta := range plan.LoadDeltas {
			assert.LessOrEqual(t, byID[id].CurrentLoad()+delta, partner.Capacity, "run %d: capacity", run)
		}
	}
}
