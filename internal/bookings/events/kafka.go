package events

import (
	"context"
	"fmt"

	"dogbooking/pkg/config"
	"dogbooking/pkg/kafka"
	kafka_config "dogbooking/pkg/kafka/config"
	kafka_middleware "dogbooking/pkg/kafka/middleware"
	"dogbooking/pkg/middleware"
)

const source = "dogbooking"

type messagePublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	producer messagePublisher
}

// NewPublisher returns a Kafka backed publisher when events are enabled and a
// no-op publisher otherwise.
func NewPublisher(cfg *config.Config) (Publisher, error) {
	if !cfg.EventsEnabled {
		cfg.Log.Info("Domain events disabled")
		return NewNopPublisher(), nil
	}

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		return nil, err
	}
	kafkaCfg.LogConfiguration(cfg.Log.Info)

	producer, err := kafka.NewProducer(kafkaCfg, cfg.Log, cfg.EventsTopic, cfg.EventsDLQTopic)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))

	cfg.Log.Info("Domain events enabled", "topic", cfg.EventsTopic, "dlq_topic", cfg.EventsDLQTopic)
	return newKafkaPublisher(producer), nil
}

func newKafkaPublisher(producer messagePublisher) *kafkaPublisher {
	return &kafkaPublisher{producer: producer}
}

func (p *kafkaPublisher) Publish(ctx context.Context, event Event) error {
	msg, err := kafka.NewMessage().
		WithKey(event.Key).
		WithEventType(event.Type).
		WithSource(source).
		WithSchemaVersion(SchemaVersion).
		WithCorrelationID(middleware.GetRequestID(ctx)).
		WithValue(event.Payload).
		Build()
	if err != nil {
		return fmt.Errorf("failed to build %s event: %w", event.Type, err)
	}

	if err := p.producer.Publish(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}
