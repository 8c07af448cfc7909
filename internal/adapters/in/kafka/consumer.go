package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/pkg/errs"

	"github.com/IBM/sarama"
)

const retryDelay = time.Second

// OrderCreator is the command handler the consumer feeds.
type OrderCreator interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
}

// Consumer reads order-intake events through a consumer group.
//
// Malformed or invalid events and already known order numbers are logged and
// committed so they never block the partition. Any other failure stops the
// claim without committing, and the message is redelivered.
type Consumer struct {
	group   sarama.ConsumerGroup
	topic   string
	creator OrderCreator
	logger  *slog.Logger
}

// NewConsumer joins groupID on brokers. It returns nil, nil when Kafka is not
// configured, and a nil *Consumer is safe to Run and Close.
func NewConsumer(brokers []string, groupID, topic string, creator OrderCreator, logger *slog.Logger) (*Consumer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" || strings.TrimSpace(groupID) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	group, err := sarama.NewConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, err
	}

	return newConsumer(group, topic, creator, logger), nil
}

func newConsumer(group sarama.ConsumerGroup, topic string, creator OrderCreator, logger *slog.Logger) *Consumer {
	return &Consumer{
		group:   group,
		topic:   topic,
		creator: creator,
		logger:  logger.With("component", "order_intake_consumer", "topic", topic),
	}
}

// Run consumes until ctx is cancelled or the group is closed.
func (c *Consumer) Run(ctx context.Context) error {
	if c == nil {
		return nil
	}

	h := &groupHandler{c: c}
	c.logger.InfoContext(ctx, "Order intake consumer started")

	for {
		err := c.group.Consume(ctx, []string{c.topic}, h)
		switch {
		case errors.Is(err, sarama.ErrClosedConsumerGroup):
			return nil
		case ctx.Err() != nil:
			return ctx.Err()
		case err != nil:
			c.logger.ErrorContext(ctx, "Kafka consume failed, retrying", "error", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryDelay):
			}
		}
	}
}

// Close leaves the consumer group.
func (c *Consumer) Close() error {
	if c == nil {
		return nil
	}
	return c.group.Close()
}

type groupHandler struct{ c *Consumer }

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := sess.Context()
	logger := h.c.logger

	for msg := range claim.Messages() {
		var ev OrderCreatedEvent
		if err := json.Unmarshal(msg.Value, &ev); err != nil {
			logger.WarnContext(ctx, "Skipping malformed order event", "offset", msg.Offset, "error", err)
			sess.MarkMessage(msg, "")
			continue
		}

		cmd, err := ev.toCommand()
		if err != nil {
			logger.WarnContext(ctx, "Skipping invalid order event",
				"offset", msg.Offset, "order_number", ev.OrderNumber, "error", err)
			sess.MarkMessage(msg, "")
			continue
		}

		err = h.c.creator.Handle(ctx, cmd)
		switch {
		case errors.Is(err, errs.ErrObjectAlreadyExists):
			logger.InfoContext(ctx, "Order already registered, skipping", "order_number", cmd.Number())
		case err != nil:
			logger.ErrorContext(ctx, "Order intake failed, will retry", "order_number", cmd.Number(), "error", err)
			return err
		default:
			logger.InfoContext(ctx, "Order registered", "order_id", cmd.OrderID().String(), "order_number", cmd.Number())
		}

		sess.MarkMessage(msg, "")
	}
	return nil
}
