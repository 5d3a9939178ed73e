package events

import (
	"context"
	"fmt"

	"eduportal/pkg/logging"

	"go.uber.org/zap"
)

// Sender is the part of the Kafka producer the publisher needs.
type Sender interface {
	Send(ctx context.Context, topic, key string, message interface{}) error
}

type KafkaPublisher struct {
	sender Sender
}

func NewKafkaPublisher(sender Sender) *KafkaPublisher {
	return &KafkaPublisher{sender: sender}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	if err := p.sender.Send(ctx, event.Topic(), event.Key, event); err != nil {
		return fmt.Errorf("publish %s: %w", event.Name, err)
	}
	logging.FromContext(ctx).Debug(ctx, "event published",
		zap.String("event", event.Name),
		zap.String("topic", event.Topic()),
		zap.String("key", event.Key),
	)
	return nil
}

// NopPublisher drops every event. It is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error {
	return nil
}
