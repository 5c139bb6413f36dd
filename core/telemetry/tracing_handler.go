package telemetry

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/anoideaopen/evernote-rest"

// TracingHandler starts spans for dispatched calls and moves trace context across
// HTTP boundaries.
type TracingHandler struct {
	Tracer      trace.Tracer
	Propagators propagation.TextMapPropagator
}

// NewTracingHandler returns a handler bound to the global tracer provider and
// propagator, as installed by InstallTraceProvider.
func NewTracingHandler() *TracingHandler {
	return &TracingHandler{
		Tracer:      otel.Tracer(instrumentationName),
		Propagators: otel.GetTextMapPropagator(),
	}
}

// StartNewSpan starts new span
func (th *TracingHandler) StartNewSpan(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}

	return th.Tracer.Start(ctx, spanName, opts...)
}

// ContextFromRequest returns the request context joined with the remote trace
// context carried in its headers, if any.
func (th *TracingHandler) ContextFromRequest(r *http.Request) context.Context {
	return UnpackHeader(r.Context(), th.Propagators, r.Header)
}

// Inject writes the trace context of ctx into outbound headers.
func (th *TracingHandler) Inject(ctx context.Context, header http.Header) {
	PackToHeader(ctx, th.Propagators, header)
}

// EndSpan records err on span, if any, and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
