package approval

import (
	"context"
	"reflect"
	"strings"

	"github.com/viant/x"

	"github.com/ChangJu-Ahn/conceptgate/extension"
	"github.com/ChangJu-Ahn/conceptgate/model/review"
	"github.com/ChangJu-Ahn/conceptgate/model/types"
)

// Name of the service as used by workflows.
const Name = "approval"

// InitiateInput carries the upstream analysis payload.
type InitiateInput struct {
	Analysis interface{} `json:"analysis,omitempty" description:"Analysis payload requiring human approval"`
}

// InitiateOutput returns the approval request emitted to the reviewer channel.
type InitiateOutput struct {
	Request *review.Request `json:"request,omitempty"`
}

// FinalizeInput carries the reviewer reply. RequestID pairs the reply with
// its pending request; when empty the decision carries no analysis content.
type FinalizeInput struct {
	RequestID string `json:"requestId,omitempty" description:"Id of the pending approval request"`
	Reply     string `json:"reply,omitempty" description:"Raw reviewer reply text"`
}

// FinalizeOutput returns the routing decision.
type FinalizeOutput struct {
	Decision *review.Decision `json:"decision,omitempty"`
}

// Methods returns the service methods
func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{
			Name:        "initiate",
			Description: "Builds a human approval request from an analysis payload and emits it to the reviewer channel.",
			Input:       reflect.TypeOf(&InitiateInput{}),
			Output:      reflect.TypeOf(&InitiateOutput{}),
		},
		{
			Name:        "finalize",
			Description: "Pairs a reviewer reply with its request and produces the routing decision.",
			Input:       reflect.TypeOf(&FinalizeInput{}),
			Output:      reflect.TypeOf(&FinalizeOutput{}),
		},
	}
}

// Name returns the service name
func (s *Service) Name() string {
	return Name
}

// InitTypes registers the types this service exchanges with workflows.
func (s *Service) InitTypes(registry *extension.Types) {
	registry.Register(x.NewType(reflect.TypeOf(review.Request{}), x.WithName("Request")))
	registry.Register(x.NewType(reflect.TypeOf(review.Decision{}), x.WithName("Decision")))
}

// Method returns the specified method
func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "initiate":
		return s.initiate, nil
	case "finalize":
		return s.finalize, nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}

func (s *Service) initiate(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*InitiateInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*InitiateOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	request, err := s.Initiate(ctx, input.Analysis)
	if err != nil {
		return err
	}
	output.Request = request
	return nil
}

func (s *Service) finalize(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*FinalizeInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*FinalizeOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	response := &review.Response{Data: input.Reply}
	if input.RequestID != "" {
		if request, err := s.Lookup(ctx, input.RequestID); err == nil && request != nil {
			response.OriginalRequest = request
		}
	}
	decision, err := s.Finalize(ctx, response)
	if err != nil {
		return err
	}
	output.Decision = decision
	return nil
}

var _ types.Service = (*Service)(nil)
