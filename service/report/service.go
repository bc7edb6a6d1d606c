package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"

	"github.com/ChangJu-Ahn/conceptgate/internal/clock"
	"github.com/ChangJu-Ahn/conceptgate/service/concept"
	"github.com/ChangJu-Ahn/conceptgate/tracing"
)

// Name of the service as used by workflows.
const Name = "report"

const timestampFormat = "20060102_150405"

// Service renders outcome documents for reviewed concepts and persists them
// as timestamped markdown files.
type Service struct {
	fs      afs.Service
	baseURL string
}

type Option func(*Service)

// WithBaseURL sets the destination for saved reports; defaults to the
// current working directory.
func WithBaseURL(baseURL string) Option {
	return func(s *Service) { s.baseURL = baseURL }
}

// WithFileService overrides the file service (handy for tests).
func WithFileService(fs afs.Service) Option {
	return func(s *Service) { s.fs = fs }
}

// New creates a report service.
func New(options ...Option) *Service {
	ret := &Service{}
	for _, option := range options {
		option(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	return ret
}

// RenderApproved renders the development report for an approved concept.
func (s *Service) RenderApproved(meta *concept.Metadata, marketAnalysis, designAnalysis, productionAnalysis, approvalFeedback string) string {
	return NewApprovedDocument(meta, marketAnalysis, designAnalysis, productionAnalysis, approvalFeedback).Markdown()
}

// RenderRejected renders the decision-notification letter for a rejected concept.
func (s *Service) RenderRejected(meta *concept.Metadata, rejectionReasons, constructiveFeedback, alternativeSuggestions string) string {
	return NewRejectedDocument(meta, rejectionReasons, constructiveFeedback, alternativeSuggestions).Markdown()
}

// Save writes content to {prefix}_{timestamp}.md and returns its location.
// An I/O fault is reported as a human-readable error string on the same
// channel, never raised - callers inspect the result to tell the two apart.
func (s *Service) Save(ctx context.Context, content, prefix, kind string) string {
	ctx, span := tracing.StartSpan(ctx, "report.save")
	filename := fmt.Sprintf("%s_%s.md", prefix, clock.Now().Format(timestampFormat))
	location := filename
	if s.baseURL != "" {
		location = url.Join(s.baseURL, filename)
	}
	err := s.fs.Upload(ctx, location, file.DefaultFileOsMode, strings.NewReader(content))
	tracing.EndSpan(span, err)
	if err != nil {
		return fmt.Sprintf("Error saving %s report: %v", kind, err)
	}
	return location
}
