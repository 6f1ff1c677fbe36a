// Package kafka publishes order events to Kafka topics.
package kafka

import (
	"context"
	"fmt"
	"log/slog"

	"marketplace/internal/pkg/errs"

	"github.com/IBM/sarama"
)

// Publisher implements ports.EventPublisher with a synchronous sarama producer:
// Publish returns only after the brokers acknowledged the message.
type Publisher struct {
	producer sarama.SyncProducer
	logger   *slog.Logger
}

// NewPublisher connects a producer to brokers. Every in-sync replica must
// acknowledge a message before Publish returns.
func NewPublisher(brokers []string, logger *slog.Logger) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, errs.NewValueIsRequiredError("kafka brokers")
	}

	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Version = sarama.V2_6_0_0

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return NewPublisherWithProducer(producer, logger), nil
}

// NewPublisherWithProducer wraps an existing producer.
func NewPublisherWithProducer(producer sarama.SyncProducer, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}

	return &Publisher{
		producer: producer,
		logger:   logger.With("component", "KafkaPublisher"),
	}
}

func (p *Publisher) Publish(ctx context.Context, topic, key string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if topic == "" {
		return errs.NewValueIsRequiredError("topic")
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.Error("Failed to send message to Kafka", "topic", topic, "key", key, "error", err)
		return fmt.Errorf("publish to %s: %w", topic, err)
	}

	p.logger.Debug("Event published to Kafka",
		"topic", topic,
		"partition", partition,
		"offset", offset,
		"key", key,
	)

	return nil
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
