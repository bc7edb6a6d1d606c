package report

import (
	"context"
	"reflect"
	"strings"

	"github.com/viant/x"

	"github.com/ChangJu-Ahn/conceptgate/extension"
	"github.com/ChangJu-Ahn/conceptgate/model/types"
	"github.com/ChangJu-Ahn/conceptgate/service/concept"
)

// RenderApprovedInput carries everything the approval report embeds.
type RenderApprovedInput struct {
	Concept            *concept.Metadata `json:"concept,omitempty"`
	MarketAnalysis     string            `json:"marketAnalysis,omitempty"`
	DesignAnalysis     string            `json:"designAnalysis,omitempty"`
	ProductionAnalysis string            `json:"productionAnalysis,omitempty"`
	ApprovalFeedback   string            `json:"approvalFeedback,omitempty"`
}

// RenderRejectedInput carries everything the rejection letter embeds.
type RenderRejectedInput struct {
	Concept                *concept.Metadata `json:"concept,omitempty"`
	RejectionReasons       string            `json:"rejectionReasons,omitempty"`
	ConstructiveFeedback   string            `json:"constructiveFeedback,omitempty"`
	AlternativeSuggestions string            `json:"alternativeSuggestions,omitempty"`
}

// RenderOutput returns the rendered document text.
type RenderOutput struct {
	Content string `json:"content,omitempty"`
}

// SaveInput carries a rendered document for persistence.
type SaveInput struct {
	Content string `json:"content,omitempty"`
	Prefix  string `json:"prefix,omitempty" description:"Filename prefix, e.g. zava_approved_concept"`
	Kind    string `json:"kind,omitempty" description:"Report kind used in fault messages"`
}

// SaveOutput returns the saved location, or a fault description when the
// write failed.
type SaveOutput struct {
	Location string `json:"location,omitempty"`
}

// Name returns the service name
func (s *Service) Name() string {
	return Name
}

// InitTypes registers the types this service exchanges with workflows.
func (s *Service) InitTypes(registry *extension.Types) {
	registry.Register(x.NewType(reflect.TypeOf(concept.Metadata{}), x.WithName("Metadata")))
}

// Methods returns the service methods
func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{
			Name:        "renderApproved",
			Description: "Renders the development report for an approved clothing concept.",
			Input:       reflect.TypeOf(&RenderApprovedInput{}),
			Output:      reflect.TypeOf(&RenderOutput{}),
		},
		{
			Name:        "renderRejected",
			Description: "Renders the decision-notification letter for a rejected clothing concept.",
			Input:       reflect.TypeOf(&RenderRejectedInput{}),
			Output:      reflect.TypeOf(&RenderOutput{}),
		},
		{
			Name:        "save",
			Description: "Persists a rendered document as a timestamped markdown file.",
			Input:       reflect.TypeOf(&SaveInput{}),
			Output:      reflect.TypeOf(&SaveOutput{}),
		},
	}
}

// Method returns the specified method
func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "renderapproved":
		return s.renderApproved, nil
	case "renderrejected":
		return s.renderRejected, nil
	case "save":
		return s.save, nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}

func (s *Service) renderApproved(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*RenderApprovedInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*RenderOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	output.Content = s.RenderApproved(input.Concept, input.MarketAnalysis, input.DesignAnalysis, input.ProductionAnalysis, input.ApprovalFeedback)
	return nil
}

func (s *Service) renderRejected(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*RenderRejectedInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*RenderOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	output.Content = s.RenderRejected(input.Concept, input.RejectionReasons, input.ConstructiveFeedback, input.AlternativeSuggestions)
	return nil
}

func (s *Service) save(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*SaveInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*SaveOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	output.Location = s.Save(ctx, input.Content, input.Prefix, input.Kind)
	return nil
}

var _ types.Service = (*Service)(nil)
