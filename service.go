package conceptgate

import (
	"context"
	"fmt"
	"time"

	"github.com/viant/x"

	"github.com/ChangJu-Ahn/conceptgate/extension"
	"github.com/ChangJu-Ahn/conceptgate/model/review"
	"github.com/ChangJu-Ahn/conceptgate/model/types"
	"github.com/ChangJu-Ahn/conceptgate/service/approval"
	"github.com/ChangJu-Ahn/conceptgate/service/concept"
	"github.com/ChangJu-Ahn/conceptgate/service/event"
	"github.com/ChangJu-Ahn/conceptgate/service/messaging"
	"github.com/ChangJu-Ahn/conceptgate/service/messaging/memory"
	"github.com/ChangJu-Ahn/conceptgate/service/report"
)

const (
	// OutcomeApproved is returned by Review when the concept is cleared for development.
	OutcomeApproved = "APPROVED"
	// OutcomeRejected is returned by Review when the concept is declined.
	OutcomeRejected = "REJECTED"

	approvedReportPrefix = "zava_approved_concept"
	rejectedReportPrefix = "zava_concept_rejection"

	defaultMarketAnalysis     = "Strong market potential identified with growing demand in target demographic."
	defaultDesignAnalysis     = "Innovative design approach with excellent aesthetic appeal and brand alignment."
	defaultProductionAnalysis = "Feasible production requirements with reasonable cost projections."
	defaultRejectionReasons   = "The concept does not align with current strategic priorities and market positioning."

	timeoutReply = "Approval timeout - defaulting to reject"
)

// Service is the high-level façade wiring the approval gate, the outcome
// report generator and the action registry together.
type Service struct {
	config            *Config
	approvalService   *approval.Service
	reportService     *report.Service
	requestQueue      messaging.Queue[review.Request]
	decisionQueue     messaging.Queue[review.Decision]
	eventPublisher    *event.Publisher[interface{}]
	actions           *extension.Actions
	extensionTypes    []*x.Type
	extensionServices []types.Service
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	s.ensureBaseSetup()
	s.actions = extension.NewActions(s.extensionTypes...)
	s.actions.Register(s.approvalService)
	s.actions.Register(s.reportService)
	for _, service := range s.extensionServices {
		s.actions.Register(service)
	}
}

func (s *Service) ensureBaseSetup() {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.requestQueue == nil {
		s.requestQueue = memory.NewQueue[review.Request](s.queueConfig())
	}
	if s.decisionQueue == nil {
		s.decisionQueue = memory.NewQueue[review.Decision](s.queueConfig())
	}
	if s.approvalService == nil {
		options := []approval.Option{
			approval.WithRequestQueue(s.requestQueue),
			approval.WithDecisionQueue(s.decisionQueue),
		}
		if s.eventPublisher != nil {
			options = append(options, approval.WithEventPublisher(s.eventPublisher))
		}
		if s.config.Approval.ContextLimit > 0 {
			options = append(options, approval.WithContextLimit(s.config.Approval.ContextLimit))
		}
		s.approvalService = approval.New(options...)
	}
	if s.reportService == nil {
		var options []report.Option
		if s.config.Report.BaseURL != "" {
			options = append(options, report.WithBaseURL(s.config.Report.BaseURL))
		}
		s.reportService = report.New(options...)
	}
}

func (s *Service) queueConfig() memory.Config {
	config := memory.DefaultConfig()
	if s.config.Messaging.QueueBuffer > 0 {
		config.QueueBuffer = s.config.Messaging.QueueBuffer
	}
	if s.config.Messaging.MaxRetries > 0 {
		config.MaxRetries = s.config.Messaging.MaxRetries
	}
	return config
}

// Approval returns the approval gate service.
func (s *Service) Approval() *approval.Service {
	return s.approvalService
}

// Report returns the outcome report service.
func (s *Service) Report() *report.Service {
	return s.reportService
}

// Actions returns the action registry.
func (s *Service) Actions() *extension.Actions {
	return s.actions
}

func (s *Service) RegisterExtensionTypes(types ...*x.Type) {
	for i := range types {
		s.actions.Types().Register(types[i])
	}
}

func (s *Service) RegisterExtensionServices(services ...types.Service) {
	for i := range services {
		s.actions.Register(services[i])
	}
}

// ReviewInput carries a concept analysis through the full review cycle.
type ReviewInput struct {
	Analysis interface{}
	Concept  *concept.Metadata

	// Analysis sections embedded in the outcome document; sensible
	// defaults are used when left blank.
	MarketAnalysis     string
	DesignAnalysis     string
	ProductionAnalysis string

	// Timeout bounds the wait for a reviewer decision; falls back to the
	// configured approval.decisionTimeout.
	Timeout time.Duration
}

// ReviewOutput reports the result of a full review cycle.
type ReviewOutput struct {
	Outcome  string
	Decision *review.Decision
	Report   string
	Location string
}

// Review runs a concept through the full gate: it emits the approval
// request, waits for the reviewer decision, renders the matching outcome
// document and persists it. Reviewers answer via Approval().Finalize; when
// nobody answers within the timeout the submission is rejected.
func (s *Service) Review(ctx context.Context, input *ReviewInput) (*ReviewOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("review input was nil")
	}
	request, err := s.approvalService.Initiate(ctx, input.Analysis)
	if err != nil {
		return nil, err
	}
	timeout := input.Timeout
	if timeout == 0 {
		timeout = s.config.Approval.DecisionTimeout
	}
	decision, err := approval.WaitForDecision(ctx, s.approvalService, request.ID, timeout)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		// reviewer silence counts as a rejection
		decision, err = s.approvalService.Finalize(ctx, &review.Response{Data: timeoutReply, OriginalRequest: request})
		if err != nil {
			return nil, err
		}
	}

	market := orDefault(input.MarketAnalysis, defaultMarketAnalysis)
	design := orDefault(input.DesignAnalysis, defaultDesignAnalysis)
	production := orDefault(input.ProductionAnalysis, defaultProductionAnalysis)

	ret := &ReviewOutput{Decision: decision}
	if decision.IsApproved() {
		ret.Outcome = OutcomeApproved
		ret.Report = s.reportService.RenderApproved(input.Concept, market, design, production, decision.Feedback)
		ret.Location = s.reportService.Save(ctx, ret.Report, approvedReportPrefix, "Concept Approval")
	} else {
		ret.Outcome = OutcomeRejected
		ret.Report = s.reportService.RenderRejected(input.Concept, defaultRejectionReasons, decision.Feedback, "")
		ret.Location = s.reportService.Save(ctx, ret.Report, rejectedReportPrefix, "Concept Rejection")
	}
	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, event.NewEvent[interface{}](&event.Context{
			RequestID: decision.ID,
			EventType: event.TypeReportSaved,
			Service:   report.Name,
		}, ret.Location))
	}
	return ret, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// New creates a gate service
func New(options ...Option) *Service {
	ret := &Service{}
	ret.init(options)
	return ret
}
