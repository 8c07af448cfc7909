package http

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/generated/servers"
)

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	UpdateOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) error
	}
	AssignOrderHandler interface {
		Handle(ctx context.Context, cmd commands.AssignOrderCommand) (*assignment.Assignment, error)
	}
	RunAssignmentHandler interface {
		Handle(ctx context.Context, cmd commands.RunAssignmentCommand) (commands.RunAssignmentResult, error)
	}
	CreatePartnerHandler interface {
		Handle(ctx context.Context, cmd commands.CreatePartnerCommand) error
	}
	UpdatePartnerHandler interface {
		Handle(ctx context.Context, cmd commands.UpdatePartnerCommand) error
	}
	DeletePartnerHandler interface {
		Handle(ctx context.Context, cmd commands.DeletePartnerCommand) error
	}

	GetOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetOrdersQuery) ([]queries.OrderView, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}
	GetPartnersHandler interface {
		Handle(ctx context.Context, query queries.GetPartnersQuery) (queries.GetPartnersQueryResponse, error)
	}
	GetPartnerHandler interface {
		Handle(ctx context.Context, query queries.GetPartnerQuery) (queries.PartnerView, error)
	}
	GetAssignmentsHandler interface {
		Handle(ctx context.Context, query queries.GetAssignmentsQuery) (queries.GetAssignmentsQueryResponse, error)
	}
	GetAssignmentMetricsHandler interface {
		Handle(ctx context.Context, query queries.GetAssignmentMetricsQuery) (assignment.Metrics, error)
	}
)

// Handlers groups the use cases the HTTP API exposes.
type Handlers struct {
	// Command handlers
	CreateOrder       CreateOrderHandler
	UpdateOrderStatus UpdateOrderStatusHandler
	AssignOrder       AssignOrderHandler
	RunAssignment     RunAssignmentHandler
	CreatePartner     CreatePartnerHandler
	UpdatePartner     UpdatePartnerHandler
	DeletePartner     DeletePartnerHandler

	// Query handlers
	GetOrders            GetOrdersHandler
	GetOrder             GetOrderHandler
	GetPartners          GetPartnersHandler
	GetPartner           GetPartnerHandler
	GetAssignments       GetAssignmentsHandler
	GetAssignmentMetrics GetAssignmentMetricsHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
// Handlers return domain errors untouched; the error handler installed by
// NewRouter turns them into servers.Error responses.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      h,
		logger: logger.With("component", "http_server"),
	}
}
