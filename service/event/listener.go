package event

import (
	"context"
)

// Listener consumes events from a publisher queue and dispatches them to a
// handler on a background goroutine.
type Listener[T any] struct {
	publisher *Publisher[T]
	handler   func(*Event[T])
	cancel    context.CancelFunc
}

func NewListener[T any](publisher *Publisher[T], handler func(*Event[T])) *Listener[T] {
	return &Listener[T]{
		publisher: publisher,
		handler:   handler,
	}
}

func (l *Listener[T]) Stop() {
	if l.cancel != nil {
		l.cancel()
	}
}

func (l *Listener[T]) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	go func() {
		for {
			event, err := l.publisher.Consume(ctx)
			if err != nil {
				return
			}
			if event != nil {
				l.handler(event)
			}
		}
	}()
}
