package approval

import (
	"context"
	"fmt"
	"time"

	"github.com/ChangJu-Ahn/conceptgate/model/review"
)

// ReplyFunc produces the reviewer reply text for a pending request.
type ReplyFunc func(r *review.Request) string

// AutoDecide starts a goroutine that polls ListPending and finalizes every
// request with the reply produced by fn. It returns stop() - call it (or
// cancel ctx) to exit. Intended for unattended runs and tests.
func AutoDecide(ctx context.Context, svc *Service, fn ReplyFunc, interval time.Duration) (stop func()) {
	if interval <= 0 {
		interval = 20 * time.Millisecond
	}
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case <-ticker.C:
				reqs, _ := svc.ListPending(ctx)
				for _, r := range reqs {
					_, _ = svc.Finalize(ctx, &review.Response{Data: fn(r), OriginalRequest: r})
				}
			}
		}
	}()
	return func() { close(done) }
}

// AutoApprove automatically approves all pending requests.
func AutoApprove(ctx context.Context, svc *Service, interval time.Duration) func() {
	return AutoDecide(ctx, svc, func(*review.Request) string { return "yes" }, interval)
}

// AutoReject automatically rejects all pending requests with the given feedback.
func AutoReject(ctx context.Context, svc *Service, feedback string, interval time.Duration) func() {
	return AutoDecide(ctx, svc, func(*review.Request) string {
		if feedback == "" {
			return "no"
		}
		return "no " + feedback
	}, interval)
}

// WaitForDecision blocks until a decision for the given request id has been
// recorded, or the timeout elapses.
func WaitForDecision(ctx context.Context, svc *Service, id string, timeout time.Duration) (*review.Decision, error) {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		if decision, err := svc.Decision(ctx, id); err != nil {
			return nil, err
		} else if decision != nil {
			return decision, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline.C:
			return nil, fmt.Errorf("timed out waiting for decision %v", id)
		case <-ticker.C:
		}
	}
}
