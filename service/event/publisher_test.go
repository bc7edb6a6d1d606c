package event

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ChangJu-Ahn/conceptgate/service/messaging/memory"
)

func TestPublisherRoundTrip(t *testing.T) {
	queue := memory.NewQueue[Event[string]](memory.DefaultConfig())
	publisher := NewPublisher[string](queue)
	ctx := context.Background()

	in := NewEvent(&Context{RequestID: "r1", EventType: TypeRequestCreated}, "payload")
	assert.NoError(t, publisher.Publish(ctx, in))

	out, err := publisher.Consume(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "r1", out.Context.RequestID)
	assert.Equal(t, TypeRequestCreated, out.Context.EventType)
	assert.Equal(t, "payload", out.Data)
}

func TestListenerDispatches(t *testing.T) {
	queue := memory.NewQueue[Event[string]](memory.DefaultConfig())
	publisher := NewPublisher[string](queue)

	var mu sync.Mutex
	var seen []string
	listener := NewListener(publisher, func(e *Event[string]) {
		mu.Lock()
		seen = append(seen, e.Context.EventType)
		mu.Unlock()
	})
	listener.Start()
	defer listener.Stop()

	ctx := context.Background()
	assert.NoError(t, publisher.Publish(ctx, NewEvent(&Context{RequestID: "r1", EventType: TypeRequestCreated}, "a")))
	assert.NoError(t, publisher.Publish(ctx, NewEvent(&Context{RequestID: "r1", EventType: TypeDecisionCreated}, "b")))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) == 2
	}, time.Second, 10*time.Millisecond)
}
