package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"eduportal/pkg/utils"

	"github.com/segmentio/kafka-go"
)

type Config struct {
	Brokers      []string
	WriteTimeout time.Duration
	MaxRetries   int
	RetryDelay   time.Duration
}

type Producer struct {
	writer     *kafka.Writer
	breaker    *utils.CircuitBreaker
	maxRetries int
	retryDelay time.Duration
}

func NewProducer(cfg Config) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("at least one kafka broker is required")
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 100 * time.Millisecond
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.LeastBytes{},
		RequiredAcks:           kafka.RequireOne,
		WriteTimeout:           cfg.WriteTimeout,
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		writer:     writer,
		breaker:    utils.NewCircuitBreaker(5, 30*time.Second),
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
	}, nil
}

// Send marshals message to JSON and writes it to topic, retrying transient
// broker errors until the circuit opens.
func (p *Producer) Send(ctx context.Context, topic, key string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: msgBytes,
		Time:  time.Now(),
	}

	_, err = utils.RetryWithCircuitBreaker(ctx, p.breaker, p.maxRetries, p.retryDelay, func() (struct{}, error) {
		return struct{}{}, p.writer.WriteMessages(ctx, msg)
	})
	if err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
