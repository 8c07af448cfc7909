package commands_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllPending(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockPartnerRepository struct{ mock.Mock }

func (m *MockPartnerRepository) Add(ctx context.Context, p *partner.Partner) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPartnerRepository) Update(ctx context.Context, p *partner.Partner) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPartnerRepository) GetAllAvailable(ctx context.Context) ([]*partner.Partner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partner.Partner), args.Error(1)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Append(ctx context.Context, records ...*assignment.Assignment) error {
	return m.Called(ctx, records).Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PartnerRepository() ports.PartnerRepository {
	return m.Called().Get(0).(ports.PartnerRepository)
}

func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository {
	return m.Called().Get(0).(ports.AssignmentRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockPartnerUoWFactory struct{ mock.Mock }

func (m *MockPartnerUoWFactory) Create() commands.PartnerUoW {
	return m.Called().Get(0).(commands.PartnerUoW)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, outcomes []*assignment.Assignment) error {
	return m.Called(ctx, outcomes).Error(0)
}

type MockObserver struct{ mock.Mock }

func (m *MockObserver) ObserveRun(elapsed time.Duration, outcomes []*assignment.Assignment) {
	m.Called(elapsed, outcomes)
}

type MockRunLocker struct {
	mock.Mock
	released int
}

func (m *MockRunLocker) Acquire(ctx context.Context) (func(context.Context) error, error) {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return nil, err
	}
	return func(context.Context) error {
		m.released++
		return nil
	}, nil
}

var orderCreatedAt = time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)

func pendingOrder(t *testing.T, area kernel.Area, scheduledFor string) *order.Order {
	t.Helper()
	customer, err := order.NewCustomer("Ann Lee", "+1 555 0100", "12 Main St")
	require.NoError(t, err)
	item, err := order.NewItem("Pizza", 1, decimal.NewFromInt(12))
	require.NoError(t, err)
	at, err := kernel.ParseTimeOfDay(scheduledFor)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "ORD-1001", customer, area, []order.Item{item}, at, orderCreatedAt)
	require.NoError(t, err)
	return o
}

func activePartner(t *testing.T, load int, rating float64, areas ...kernel.Area) *partner.Partner {
	t.Helper()
	set, err := kernel.NewAreaSet(areas...)
	require.NoError(t, err)
	shift, err := kernel.ParseShiftWindow("09:00", "17:00")
	require.NoError(t, err)
	metrics, err := partner.NewMetrics(rating, 10, 0)
	require.NoError(t, err)
	p, err := partner.RestorePartner(kernel.NewUUID(), "Sam Ortiz", "sam@example.com", "+1 555 0101",
		partner.Active, load, set, shift, metrics)
	require.NoError(t, err)
	return p
}
