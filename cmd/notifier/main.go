package main

import (
	"context"
	"encoding/json"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"eduportal/internal/events"
	"eduportal/pkg/kafka"
	"eduportal/pkg/logger"
)

const maxLoggedValue = 256

// Fetch failures back off exponentially between these bounds.
var (
	minFetchDelay = 500 * time.Millisecond
	maxFetchDelay = 30 * time.Second
)

var errUnnamedEvent = errors.New("event name is missing")

// source is the part of kafka.Consumer the loop needs.
type source interface {
	Fetch(ctx context.Context) (kafka.Message, error)
	Commit(ctx context.Context, msg kafka.Message) error
}

func main() {
	cfg, err := loadConfig("./config/.env")
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	log, err := logger.New(cfg.LogProduction)
	if err != nil {
		panic("cannot create logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("Starting notification consumer",
		zap.Strings("topics", cfg.Topics),
		zap.Strings("brokers", cfg.Brokers),
		zap.String("group_id", cfg.GroupID),
	)

	consumer, err := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers: cfg.Brokers,
		Topics:  cfg.Topics,
		GroupID: cfg.GroupID,
	})
	if err != nil {
		log.Fatalf("Failed to create consumer: %v", err)
	}
	defer func() { _ = consumer.Close() }()

	consume(ctx, consumer, log)
}

// consume logs and commits every message until ctx is cancelled. Messages that
// do not decode are still committed so one bad record cannot stall the group.
func consume(ctx context.Context, src source, log *logger.Logger) {
	var delay time.Duration
	for {
		msg, err := src.Fetch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("Consumer shutting down")
				return
			}
			delay = nextFetchDelay(delay)
			log.Error("Failed to fetch message", zap.Error(err), zap.Duration("retry_in", delay))

			select {
			case <-ctx.Done():
				log.Info("Consumer shutting down")
				return
			case <-time.After(delay):
			}
			continue
		}
		delay = 0

		handleMessage(log, msg)

		if err := src.Commit(ctx, msg); err != nil {
			log.Error("Failed to commit message", zap.Error(err))
		}
	}
}

func nextFetchDelay(prev time.Duration) time.Duration {
	if prev <= 0 {
		return minFetchDelay
	}
	if next := prev * 2; next < maxFetchDelay {
		return next
	}
	return maxFetchDelay
}

func handleMessage(log *logger.Logger, msg kafka.Message) {
	var envelope events.Envelope
	err := json.Unmarshal(msg.Value, &envelope)
	if err == nil && envelope.Name == "" {
		err = errUnnamedEvent
	}
	if err != nil {
		log.Warn("Failed to decode event",
			zap.String("topic", msg.Topic),
			zap.ByteString("value", truncateBytes(msg.Value, maxLoggedValue)),
			zap.Error(err),
		)
		return
	}

	log.Info("Received event",
		zap.String("event", envelope.Name),
		zap.String("topic", msg.Topic),
		zap.Int("partition", msg.Partition),
		zap.Int64("offset", msg.Offset),
		zap.ByteString("key", msg.Key),
		zap.Time("occurred_at", envelope.OccurredAt),
		zap.ByteString("payload", envelope.Payload),
	)
}

func truncateBytes(data []byte, limit int) []byte {
	if len(data) <= limit {
		return data
	}
	return data[:limit]
}
