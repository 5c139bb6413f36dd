package telemetry

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/propagation"
)

// PackToHeader injects the trace context of ctx into header
func PackToHeader(ctx context.Context, propagator propagation.TextMapPropagator, header http.Header) {
	propagator.Inject(ctx, propagation.HeaderCarrier(header))
}

// UnpackHeader extracts the trace context carried by header into ctx
func UnpackHeader(ctx context.Context, propagator propagation.TextMapPropagator, header http.Header) context.Context {
	return propagator.Extract(ctx, propagation.HeaderCarrier(header))
}

// HeaderToMap copies the trace context keys of header into a map carrier.
func HeaderToMap(propagator propagation.TextMapPropagator, header http.Header) propagation.MapCarrier {
	carrier := propagation.MapCarrier{}
	src := propagation.HeaderCarrier(header)
	for _, k := range propagator.Fields() {
		if v := src.Get(k); v != "" {
			carrier.Set(k, v)
		}
	}

	return carrier
}
