package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducerRequiresBrokers(t *testing.T) {
	_, err := NewProducer(Config{})
	assert.Error(t, err)
}

func TestNewProducerDefaults(t *testing.T) {
	p, err := NewProducer(Config{Brokers: []string{"localhost:9092"}})
	require.NoError(t, err)
	defer func() { _ = p.Close() }()

	assert.Equal(t, 3, p.maxRetries)
	assert.Equal(t, 100*time.Millisecond, p.retryDelay)
}

func TestSendRejectsUnmarshalableMessage(t *testing.T) {
	p, err := NewProducer(Config{Brokers: []string{"localhost:9092"}})
	require.NoError(t, err)
	defer func() { _ = p.Close() }()

	err = p.Send(context.Background(), "topic", "key", make(chan int))
	assert.ErrorContains(t, err, "failed to marshal message")
}

func TestNewConsumerValidation(t *testing.T) {
	_, err := NewConsumer(ConsumerConfig{Topics: []string{"t"}})
	assert.Error(t, err)

	_, err = NewConsumer(ConsumerConfig{Brokers: []string{"localhost:9092"}})
	assert.Error(t, err)
}
