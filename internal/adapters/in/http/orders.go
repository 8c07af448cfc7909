package http

import (
	"net/http"
	"strings"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// GetOrders handles GET /api/v1/orders - lists orders with optional filters.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	var date string
	if params.Date != nil {
		date = params.Date.Format(openapi_types.DateFormat)
	}

	query, err := queries.NewGetOrdersQuery(splitList(params.Status), splitList(params.Areas), date)
	if err != nil {
		return err
	}

	orders, err := s.h.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - registers a pending order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	items := make([]commands.OrderItemInput, len(body.Items))
	for i, it := range body.Items {
		items[i] = commands.OrderItemInput{Name: it.Name, Quantity: it.Quantity, Price: decimal.NewFromFloat(it.Price)}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, commands.CreateOrderInput{
		OrderNumber:     body.OrderNumber,
		CustomerName:    body.Customer.Name,
		CustomerPhone:   body.Customer.Phone,
		CustomerAddress: body.Customer.Address,
		Area:            string(body.Area),
		Items:           items,
		ScheduledFor:    body.ScheduledFor,
	})
	if err != nil {
		return err
	}

	if err = s.h.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID)
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id servers.ID) error {
	orderID, err := kernel.UUIDFromString(id.String())
	if err != nil {
		return err
	}
	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// UpdateOrderStatus handles PUT /api/v1/orders/{id}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id servers.ID) error {
	var body servers.OrderStatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(id.String())
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, string(body.Status))
	if err != nil {
		return err
	}
	if err = s.h.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// AssignOrder handles POST /api/v1/orders/assign - manual assignment.
func (s *Server) AssignOrder(ctx echo.Context) error {
	var body servers.AssignOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	orderID, errOrder := kernel.UUIDFromString(body.OrderId.String())
	if errOrder != nil {
		return errOrder
	}
	partnerID, errPartner := kernel.UUIDFromString(body.PartnerId.String())
	if errPartner != nil {
		return errPartner
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, partnerID)
	if err != nil {
		return err
	}

	record, err := s.h.AssignOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toAssignment(record))
}

func (s *Server) respondWithOrder(ctx echo.Context, status int, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return err
	}

	view, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(status, toOrder(view))
}

// splitList turns "a, b,,c" into [a b c].
func splitList(raw *string) []string {
	if raw == nil {
		return nil
	}
	var out []string
	for _, part := range strings.Split(*raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
