package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cinebook/internal/shared/config"
	"cinebook/pkg/logger"

	"github.com/IBM/sarama"
)

// Consumer drains the booking events topic. The current handler only
// records deliveries; ticket emails hang off this once a mailer exists.
type Consumer interface {
	Start(ctx context.Context) error
	Stop() error
}

type kafkaConsumer struct {
	consumerGroup sarama.ConsumerGroup
	topics        []string
	cancel        context.CancelFunc
}

func NewKafkaConsumer(cfg config.KafkaConfig) (Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Session.Timeout = 30 * time.Second
	saramaConfig.Consumer.Group.Heartbeat.Interval = 3 * time.Second
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = 1 * time.Second

	consumerGroup, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &kafkaConsumer{
		consumerGroup: consumerGroup,
		topics:        []string{cfg.BookingTopic},
	}, nil
}

func (c *kafkaConsumer) Start(ctx context.Context) error {
	ctx, c.cancel = context.WithCancel(ctx)

	go func() {
		for err := range c.consumerGroup.Errors() {
			logger.GetDefault().WithError(err).Error("Booking event consumer error")
		}
	}()

	go func() {
		handler := &eventHandler{}
		for {
			if err := c.consumerGroup.Consume(ctx, c.topics, handler); err != nil {
				logger.GetDefault().WithError(err).Error("Booking event consume loop failed")
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	logger.GetDefault().Info("Booking event consumer started", "topics", c.topics)
	return nil
}

func (c *kafkaConsumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	return c.consumerGroup.Close()
}

type eventHandler struct{}

func (h *eventHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *eventHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *eventHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		var event BookingEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			logger.GetDefault().WithError(err).Warn("Skipping malformed booking event",
				"partition", message.Partition,
				"offset", message.Offset,
			)
			session.MarkMessage(message, "")
			continue
		}

		logger.GetDefault().Info("Booking event received",
			"type", string(event.Type),
			"key", string(message.Key),
			"partition", message.Partition,
			"offset", message.Offset,
		)
		session.MarkMessage(message, "")
	}
	return nil
}
