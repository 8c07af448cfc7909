package cmd

import (
	"log/slog"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	engine     *services.AssignmentEngine
	locker     ports.RunLocker
	publisher  ports.AssignmentPublisher
	observer   ports.AssignmentObserver
	logger     *slog.Logger
}

func NewCompositionRoot(
	gormDB *gorm.DB,
	locker ports.RunLocker,
	publisher ports.AssignmentPublisher,
	observer ports.AssignmentObserver,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		engine:     services.NewAssignmentEngine(),
		locker:     locker,
		publisher:  publisher,
		observer:   observer,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.crossAggregateUoWFactory())
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.crossAggregateUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateRunAssignmentCommandHandler() commands.RunAssignmentCommandHandler {
	return commands.NewRunAssignmentCommandHandler(
		c.crossAggregateUoWFactory(),
		c.engine,
		c.locker,
		c.publisher,
		c.observer,
		c.logger,
	)
}

func (c *CompositionRoot) CreateCreatePartnerCommandHandler() commands.CreatePartnerCommandHandler {
	return commands.NewCreatePartnerCommandHandler(c.partnerUoWFactory())
}

func (c *CompositionRoot) CreateUpdatePartnerCommandHandler() commands.UpdatePartnerCommandHandler {
	return commands.NewUpdatePartnerCommandHandler(c.partnerUoWFactory())
}

func (c *CompositionRoot) CreateDeletePartnerCommandHandler() commands.DeletePartnerCommandHandler {
	return commands.NewDeletePartnerCommandHandler(c.partnerUoWFactory())
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPartnersQueryHandler() queries.GetPartnersQueryHandler {
	return queries.NewGetPartnersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPartnerQueryHandler() queries.GetPartnerQueryHandler {
	return queries.NewGetPartnerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignmentsQueryHandler() queries.GetAssignmentsQueryHandler {
	return queries.NewGetAssignmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignmentMetricsQueryHandler() queries.GetAssignmentMetricsQueryHandler {
	return queries.NewGetAssignmentMetricsQueryHandler(c.gormDB)
}

// CreateHTTPHandlers bundles every use case the HTTP API exposes.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus:    c.CreateUpdateOrderStatusCommandHandler(),
		AssignOrder:          c.CreateAssignOrderCommandHandler(),
		RunAssignment:        c.CreateRunAssignmentCommandHandler(),
		CreatePartner:        c.CreateCreatePartnerCommandHandler(),
		UpdatePartner:        c.CreateUpdatePartnerCommandHandler(),
		DeletePartner:        c.CreateDeletePartnerCommandHandler(),
		GetOrders:            c.CreateGetOrdersQueryHandler(),
		GetOrder:             c.CreateGetOrderQueryHandler(),
		GetPartners:          c.CreateGetPartnersQueryHandler(),
		GetPartner:           c.CreateGetPartnerQueryHandler(),
		GetAssignments:       c.CreateGetAssignmentsQueryHandler(),
		GetAssignmentMetrics: c.CreateGetAssignmentMetricsQueryHandler(),
	}
}

func (c *CompositionRoot) crossAggregateUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) partnerUoWFactory() commands.PartnerUoWFactory {
	return FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
