package approval

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/viant/toolbox"

	"github.com/ChangJu-Ahn/conceptgate/internal/clock"
	"github.com/ChangJu-Ahn/conceptgate/internal/idgen"
	"github.com/ChangJu-Ahn/conceptgate/model/review"
	"github.com/ChangJu-Ahn/conceptgate/service/dao"
	"github.com/ChangJu-Ahn/conceptgate/service/dao/store"
	"github.com/ChangJu-Ahn/conceptgate/service/event"
	"github.com/ChangJu-Ahn/conceptgate/service/messaging"
	qmem "github.com/ChangJu-Ahn/conceptgate/service/messaging/memory"
	"github.com/ChangJu-Ahn/conceptgate/tracing"
)

// placeholder substituted when the upstream stage delivers no analysis
const noAnalysisPlaceholder = "No analysis provided"

// DefaultContextLimit caps how much analysis text is embedded in the
// reviewer-facing context. AnalysisContent itself is never truncated.
const DefaultContextLimit = 2000

const contextTemplate = `COMPREHENSIVE CLOTHING CONCEPT ANALYSIS SUMMARY

The fashion analysis agents have completed their evaluation of this clothing concept
submission. Below is the consolidated analysis covering market potential, design merit,
and production feasibility:

%s

KEY DECISION FACTORS:
- Market alignment with current fashion trends
- Design innovation and brand fit with Zava
- Production feasibility and cost considerations
- Competitive differentiation potential
- Strategic alignment with company goals

This decision will determine whether Zava proceeds with concept development
or provides constructive feedback for future submissions.`

// Service routes approval requests to a human-response channel and pairs the
// replies back into decisions. Initiate and Finalize are invoked by the host
// workflow engine in strict alternation per submission.
type Service struct {
	requestQueue  messaging.Queue[review.Request]
	decisionQueue messaging.Queue[review.Decision]
	pending       dao.Service[string, review.Request]
	decisions     dao.Service[string, review.Decision]
	events        *event.Publisher[interface{}]
	contextLimit  int
}

func requestKey(r *review.Request) string { return r.ID }
func decisionKey(d *review.Decision) string { return d.ID }

// New creates an approval router; queues default to in-memory implementations.
func New(options ...Option) *Service {
	ret := &Service{
		pending:      store.NewMemoryStore[string, review.Request](requestKey),
		decisions:    store.NewMemoryStore[string, review.Decision](decisionKey),
		contextLimit: DefaultContextLimit,
	}
	for _, option := range options {
		option(ret)
	}
	if ret.requestQueue == nil {
		ret.requestQueue = qmem.NewQueue[review.Request](qmem.DefaultConfig())
	}
	if ret.decisionQueue == nil {
		ret.decisionQueue = qmem.NewQueue[review.Decision](qmem.DefaultConfig())
	}
	return ret
}

// RequestQueue exposes the outbound human-approver channel.
func (s *Service) RequestQueue() messaging.Queue[review.Request] { return s.requestQueue }

// DecisionQueue exposes the downstream routing channel.
func (s *Service) DecisionQueue() messaging.Queue[review.Decision] { return s.decisionQueue }

// Initiate builds an approval request from an arbitrary analysis payload and
// emits it on the outbound channel. Payload absence is tolerated via a
// placeholder, never a fault.
func (s *Service) Initiate(ctx context.Context, payload interface{}) (*review.Request, error) {
	ctx, span := tracing.StartSpan(ctx, "approval.initiate")
	var err error
	defer func() { tracing.EndSpan(span, err) }()

	analysisText := stringifyPayload(payload)
	request := &review.Request{
		ID:              idgen.New(),
		Question:        review.DefaultQuestion,
		Context:         fmt.Sprintf(contextTemplate, truncate(analysisText, s.contextLimit)),
		AnalysisContent: analysisText,
		CreatedAt:       clock.Now(),
	}
	span.WithAttributes(map[string]string{"request.id": request.ID})

	if err = s.pending.Save(ctx, request); err != nil {
		return nil, err
	}
	if err = s.requestQueue.Publish(ctx, request); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, event.TypeRequestCreated, request.ID, request)
	return request, nil
}

// Finalize normalizes a human reply into a decision and emits it downstream.
// A missing or unrecognized reply yields a rejection; classification itself
// never fails - error returns are reserved for channel faults.
func (s *Service) Finalize(ctx context.Context, response *review.Response) (*review.Decision, error) {
	ctx, span := tracing.StartSpan(ctx, "approval.finalize")
	var err error
	defer func() { tracing.EndSpan(span, err) }()

	var raw string
	var analysisContent string
	var requestID string
	if response != nil {
		data := response.Data
		if inner, ok := data.(*review.Response); ok && inner != nil {
			data = inner.Data
		}
		if data != nil {
			if text, ok := data.(string); ok {
				raw = text
			} else {
				raw = toolbox.AsString(data)
			}
		}
		if response.OriginalRequest != nil {
			analysisContent = response.OriginalRequest.AnalysisContent
			requestID = response.OriginalRequest.ID
		}
	}
	if requestID == "" {
		requestID = idgen.New()
	}
	span.WithAttributes(map[string]string{"request.id": requestID})
	s.publishEvent(ctx, event.TypeResponseReceived, requestID, raw)

	decision := &review.Decision{
		ID:              requestID,
		Approved:        review.IsApprovedToken(raw),
		Feedback:        raw,
		AnalysisContent: analysisContent,
		DecidedAt:       clock.Now(),
	}

	if err = s.decisions.Save(ctx, decision); err != nil {
		return nil, err
	}
	// one request pairs with exactly one decision
	_ = s.pending.Delete(ctx, requestID)
	if err = s.decisionQueue.Publish(ctx, decision); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, event.TypeDecisionCreated, requestID, decision)
	return decision, nil
}

// ListPending returns requests that have not been paired with a decision yet.
func (s *Service) ListPending(ctx context.Context) ([]*review.Request, error) {
	return s.pending.List(ctx)
}

// History returns all decisions recorded so far.
func (s *Service) History(ctx context.Context) ([]*review.Decision, error) {
	return s.decisions.List(ctx)
}

// Lookup returns a pending request by id, nil when unknown or already decided.
func (s *Service) Lookup(ctx context.Context, id string) (*review.Request, error) {
	if id == "" {
		return nil, errors.New("empty request id")
	}
	return s.pending.Load(ctx, id)
}

// Decision returns the recorded decision for a request id, nil when undecided.
func (s *Service) Decision(ctx context.Context, id string) (*review.Decision, error) {
	return s.decisions.Load(ctx, id)
}

func (s *Service) publishEvent(ctx context.Context, eventType, requestID string, data interface{}) {
	if s.events == nil {
		return
	}
	_ = s.events.Publish(ctx, event.NewEvent[interface{}](&event.Context{
		RequestID: requestID,
		EventType: eventType,
		Service:   Name,
	}, data))
}

func stringifyPayload(payload interface{}) string {
	if payload == nil {
		return noAnalysisPlaceholder
	}
	text, ok := payload.(string)
	if !ok {
		text = toolbox.AsString(payload)
	}
	if strings.TrimSpace(text) == "" {
		return noAnalysisPlaceholder
	}
	return text
}

func truncate(text string, limit int) string {
	if limit <= 0 || len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}
