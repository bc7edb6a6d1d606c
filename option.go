package conceptgate

import (
	"github.com/viant/x"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/ChangJu-Ahn/conceptgate/model/review"
	"github.com/ChangJu-Ahn/conceptgate/model/types"
	"github.com/ChangJu-Ahn/conceptgate/service/approval"
	"github.com/ChangJu-Ahn/conceptgate/service/event"
	"github.com/ChangJu-Ahn/conceptgate/service/messaging"
	"github.com/ChangJu-Ahn/conceptgate/service/report"
	"github.com/ChangJu-Ahn/conceptgate/tracing"
)

type Option func(s *Service)

// WithConfig applies a loaded configuration.
func WithConfig(config *Config) Option {
	return func(s *Service) { s.config = config }
}

// WithApprovalService sets the approval service
func WithApprovalService(svc *approval.Service) Option {
	return func(s *Service) { s.approvalService = svc }
}

// WithReportService sets the report service
func WithReportService(svc *report.Service) Option {
	return func(s *Service) { s.reportService = svc }
}

// WithRequestQueue sets the queue approval requests are emitted to.
func WithRequestQueue(queue messaging.Queue[review.Request]) Option {
	return func(s *Service) { s.requestQueue = queue }
}

// WithDecisionQueue sets the queue routing decisions are published to.
func WithDecisionQueue(queue messaging.Queue[review.Decision]) Option {
	return func(s *Service) { s.decisionQueue = queue }
}

// WithEventPublisher sets the lifecycle event publisher.
func WithEventPublisher(publisher *event.Publisher[interface{}]) Option {
	return func(s *Service) { s.eventPublisher = publisher }
}

// WithExtensionTypes sets the extension types
func WithExtensionTypes(types ...*x.Type) Option {
	return func(s *Service) { s.extensionTypes = types }
}

// WithExtensionServices sets the extension services
func WithExtensionServices(services ...types.Service) Option {
	return func(s *Service) { s.extensionServices = services }
}

// WithTracing configures OpenTelemetry tracing for the service. If outputFile is empty the
// stdout exporter is used; otherwise traces are written to the supplied file path. The function is
// safe to call multiple times - the first successful initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		_ = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom SpanExporter. This enables
// integrations with exporters other than the built-in stdout exporter, for example OTLP, Jaeger or
// Zipkin. The function is safe to call multiple times - the first successful initialisation wins.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		_ = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}
