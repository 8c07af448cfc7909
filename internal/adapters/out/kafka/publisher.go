package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"dispatch/internal/core/domain/model/assignment"

	"github.com/IBM/sarama"
)

// Publisher sends assignment outcomes to a topic, keyed by order ID so every
// outcome of one order lands on the same partition.
//
// A nil *Publisher is valid and drops everything, which is how the service runs
// without brokers configured.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewSyncProducer connects a producer that waits for all in-sync replicas.
func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(brokers, cfg)
}

// NewPublisher wraps producer. The publisher does not own the producer.
func NewPublisher(producer sarama.SyncProducer, topic string, logger *slog.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "outcome_publisher"),
	}
}

// Publish sends outcomes as one batch.
func (p *Publisher) Publish(ctx context.Context, outcomes []*assignment.Assignment) error {
	if p == nil || len(outcomes) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msgs := make([]*sarama.ProducerMessage, 0, len(outcomes))
	for _, a := range outcomes {
		if a == nil {
			continue
		}
		payload, err := json.Marshal(newOutcomeEvent(a))
		if err != nil {
			return fmt.Errorf("encode outcome %s: %w", a.ID(), err)
		}
		msgs = append(msgs, &sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(a.OrderID().String()),
			Value: sarama.ByteEncoder(payload),
		})
	}
	if len(msgs) == 0 {
		return nil
	}

	if err := p.producer.SendMessages(msgs); err != nil {
		return fmt.Errorf("publish %d outcomes to %s: %w", len(msgs), p.topic, err)
	}

	p.logger.DebugContext(ctx, "Published assignment outcomes", "topic", p.topic, "count", len(msgs))
	return nil
}
