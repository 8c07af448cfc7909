// Package kafka publishes assignment outcomes to Kafka.
package kafka

import (
	"time"

	"dispatch/internal/core/domain/model/assignment"
)

// OutcomeEvent is the wire form of one assignment outcome.
type OutcomeEvent struct {
	AssignmentID string    `json:"assignment_id"`
	OrderID      string    `json:"order_id"`
	PartnerID    string    `json:"partner_id,omitempty"`
	Status       string    `json:"status"`
	ReasonCode   string    `json:"reason_code,omitempty"`
	Reason       string    `json:"reason,omitempty"`
	LatencyMs    int64     `json:"latency_ms"`
	Timestamp    time.Time `json:"timestamp"`
}

func newOutcomeEvent(a *assignment.Assignment) OutcomeEvent {
	ev := OutcomeEvent{
		AssignmentID: a.ID().String(),
		OrderID:      a.OrderID().String(),
		Status:       string(a.Status()),
		ReasonCode:   a.Reason().Code(),
		Reason:       a.Reason().String(),
		LatencyMs:    a.Latency().Milliseconds(),
		Timestamp:    a.Timestamp().UTC(),
	}
	if p := a.Partner(); p != nil {
		ev.PartnerID = p.String()
	}
	return ev
}
