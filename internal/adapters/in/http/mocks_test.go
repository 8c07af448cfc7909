package http

import (
	"context"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/assignment"

	"github.com/stretchr/testify/mock"
)

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockUpdateOrderStatusHandler struct{ mock.Mock }

func (m *MockUpdateOrderStatusHandler) Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockAssignOrderHandler struct{ mock.Mock }

func (m *MockAssignOrderHandler) Handle(ctx context.Context, cmd commands.AssignOrderCommand) (*assignment.Assignment, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

type MockRunAssignmentHandler struct{ mock.Mock }

func (m *MockRunAssignmentHandler) Handle(ctx context.Context, cmd commands.RunAssignmentCommand) (commands.RunAssignmentResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.RunAssignmentResult), args.Error(1)
}

type MockCreatePartnerHandler struct{ mock.Mock }

func (m *MockCreatePartnerHandler) Handle(ctx context.Context, cmd commands.CreatePartnerCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockUpdatePartnerHandler struct{ mock.Mock }

func (m *MockUpdatePartnerHandler) Handle(ctx context.Context, cmd commands.UpdatePartnerCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockDeletePartnerHandler struct{ mock.Mock }

func (m *MockDeletePartnerHandler) Handle(ctx context.Context, cmd commands.DeletePartnerCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetOrdersHandler struct{ mock.Mock }

func (m *MockGetOrdersHandler) Handle(ctx context.Context, query queries.GetOrdersQuery) ([]queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.OrderView), args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderView), args.Error(1)
}

type MockGetPartnersHandler struct{ mock.Mock }

func (m *MockGetPartnersHandler) Handle(ctx context.Context, query queries.GetPartnersQuery) (queries.GetPartnersQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetPartnersQueryResponse), args.Error(1)
}

type MockGetPartnerHandler struct{ mock.Mock }

func (m *MockGetPartnerHandler) Handle(ctx context.Context, query queries.GetPartnerQuery) (queries.PartnerView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.PartnerView), args.Error(1)
}

type MockGetAssignmentsHandler struct{ mock.Mock }

func (m *MockGetAssignmentsHandler) Handle(ctx context.Context, query queries.GetAssignmentsQuery) (queries.GetAssignmentsQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetAssignmentsQueryResponse), args.Error(1)
}

type MockGetAssignmentMetricsHandler struct{ mock.Mock }

func (m *MockGetAssignmentMetricsHandler) Handle(ctx context.Context, query queries.GetAssignmentMetricsQuery) (assignment.Metrics, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(assignment.Metrics), args.Error(1)
}
