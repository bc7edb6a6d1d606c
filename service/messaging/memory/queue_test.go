package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testReply struct {
	RequestID string
	Text      string
}

func TestQueue(t *testing.T) {
	config := DefaultConfig()
	config.RetryDelay = 10 * time.Millisecond // Speed up for testing
	queue := NewQueue[testReply](config)

	ctx := context.Background()
	payload := testReply{RequestID: "req-1", Text: "yes"}

	err := queue.Publish(ctx, &payload)
	assert.NoError(t, err)
	assert.Equal(t, 1, queue.Size())

	message, err := queue.Consume(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, message)
	assert.Equal(t, 0, queue.Size())

	msgData := message.T()
	assert.Equal(t, payload.RequestID, msgData.RequestID)
	assert.Equal(t, payload.Text, msgData.Text)

	err = message.Ack()
	assert.NoError(t, err)

	// double ack should error
	err = message.Ack()
	assert.Error(t, err)
}

func TestQueueRetries(t *testing.T) {
	config := DefaultConfig()
	config.MaxRetries = 1
	config.RetryDelay = 10 * time.Millisecond
	queue := NewQueue[testReply](config)

	ctx := context.Background()
	payload := testReply{RequestID: "retry", Text: "no"}

	assert.NoError(t, queue.Publish(ctx, &payload))

	message, err := queue.Consume(ctx)
	assert.NoError(t, err)
	assert.NoError(t, message.Nack(nil))

	// wait for the retry to be requeued
	time.Sleep(20 * time.Millisecond)

	message, err = queue.Consume(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, message)

	// exceeding max retries moves the message to the dead letter queue
	assert.NoError(t, message.Nack(nil))
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 0, queue.Size())
	assert.Equal(t, 1, queue.DLQSize())
}

func TestQueueContextCancellation(t *testing.T) {
	queue := NewQueue[testReply](DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	payload := testReply{RequestID: "cancelled"}
	err := queue.Publish(ctx, &payload)
	assert.Error(t, err)

	ctxWithTimeout, cancelTimeout := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancelTimeout()
	_, err = queue.Consume(ctxWithTimeout)
	assert.Error(t, err)

	// queue stays usable after cancellation
	emptyCtx := context.Background()
	assert.NoError(t, queue.Publish(emptyCtx, &payload))
	message, err := queue.Consume(emptyCtx)
	assert.NoError(t, err)
	assert.NotNil(t, message)
}
