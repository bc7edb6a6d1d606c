package approval

import (
	"github.com/ChangJu-Ahn/conceptgate/model/review"
	"github.com/ChangJu-Ahn/conceptgate/service/dao"
	"github.com/ChangJu-Ahn/conceptgate/service/event"
	"github.com/ChangJu-Ahn/conceptgate/service/messaging"
)

type Option func(*Service)

// WithRequestQueue sets the outbound human-approver channel.
func WithRequestQueue(q messaging.Queue[review.Request]) Option {
	return func(s *Service) { s.requestQueue = q }
}

// WithDecisionQueue sets the downstream routing channel.
func WithDecisionQueue(q messaging.Queue[review.Decision]) Option {
	return func(s *Service) { s.decisionQueue = q }
}

// WithEventPublisher attaches a publisher for state-transition events.
func WithEventPublisher(p *event.Publisher[interface{}]) Option {
	return func(s *Service) { s.events = p }
}

// WithPendingStore overrides the pending-request store.
func WithPendingStore(store dao.Service[string, review.Request]) Option {
	return func(s *Service) { s.pending = store }
}

// WithDecisionStore overrides the decision store.
func WithDecisionStore(store dao.Service[string, review.Decision]) Option {
	return func(s *Service) { s.decisions = store }
}

// WithContextLimit caps the analysis excerpt embedded in the reviewer context.
func WithContextLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.contextLimit = limit
		}
	}
}
