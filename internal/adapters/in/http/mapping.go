package http

import (
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toOrder(v queries.OrderView) servers.Order {
	items := make([]servers.OrderItem, len(v.Items))
	for i, it := range v.Items {
		price, _ := it.Price.Float64()
		items[i] = servers.OrderItem{Name: it.Name, Quantity: it.Quantity, Price: price}
	}
	total, _ := v.TotalAmount.Float64()

	return servers.Order{
		Id:          v.ID.Bytes(),
		OrderNumber: v.Number,
		Customer: servers.Customer{
			Name:    v.CustomerName,
			Phone:   v.CustomerPhone,
			Address: v.CustomerAddress,
		},
		Area:         v.Area,
		Items:        items,
		TotalAmount:  total,
		Status:       servers.OrderStatus(v.Status),
		PartnerId:    toOptionalID(v.PartnerID),
		ScheduledFor: v.ScheduledFor,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func toPartner(v queries.PartnerView) servers.Partner {
	areas := v.Areas
	if areas == nil {
		areas = []string{}
	}
	return servers.Partner{
		Id:           v.ID.Bytes(),
		Name:         v.Name,
		Email:        v.Email,
		Phone:        v.Phone,
		Status:       servers.PartnerStatus(v.Status),
		CurrentLoad:  v.CurrentLoad,
		Areas:        areas,
		Shift:        servers.Shift{Start: v.ShiftStart, End: v.ShiftEnd},
		Availability: servers.Availability(v.Availability),
		Metrics: servers.PartnerMetrics{
			Rating:          v.Rating,
			CompletedOrders: v.CompletedOrders,
			CancelledOrders: v.CancelledOrders,
		},
	}
}

// toAssignment maps a record fresh from a command; names are not resolved.
func toAssignment(a *assignment.Assignment) servers.Assignment {
	out := servers.Assignment{
		Id:        a.ID().Bytes(),
		OrderId:   a.OrderID().Bytes(),
		PartnerId: toOptionalID(a.Partner()),
		Status:    servers.AssignmentStatus(a.Status()),
		LatencyMs: a.Latency().Milliseconds(),
		Timestamp: a.Timestamp(),
	}
	setReason(&out, a.Reason())
	return out
}

func toAssignmentView(v queries.AssignmentView) servers.Assignment {
	out := servers.Assignment{
		Id:          v.ID.Bytes(),
		OrderId:     v.OrderID.Bytes(),
		OrderNumber: optionalString(v.OrderNumber),
		PartnerId:   toOptionalID(v.PartnerID),
		PartnerName: optionalString(v.PartnerName),
		Status:      servers.AssignmentStatus(v.Status),
		LatencyMs:   v.Latency.Milliseconds(),
		Timestamp:   v.RecordedAt,
	}
	if reason, err := assignment.ParseReason(v.Reason); err == nil {
		setReason(&out, reason)
	}
	return out
}

func toMetrics(m assignment.Metrics) servers.AssignmentMetrics {
	reasons := make([]servers.FailureReason, len(m.FailureReasons))
	for i, r := range m.FailureReasons {
		reasons[i] = servers.FailureReason{Reason: r.Reason.String(), Code: r.Reason.Code(), Count: r.Count}
	}
	return servers.AssignmentMetrics{
		TotalAssigned:  m.TotalAssigned,
		Total:          m.Total,
		SuccessRate:    m.SuccessRate,
		AverageTimeMs:  m.AverageLatency.Milliseconds(),
		FailureReasons: reasons,
	}
}

func setReason(out *servers.Assignment, reason assignment.Reason) {
	if !reason.IsFailure() {
		return
	}
	text := reason.String()
	code := servers.AssignmentReasonCode(reason.Code())
	out.Reason = &text
	out.ReasonCode = &code
}

func toOptionalID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	out := id.Bytes()
	return &out
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
