package telemetry

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

func TestHeaderPropagation(t *testing.T) {
	propagator := propagation.TraceContext{}

	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	header := http.Header{}
	PackToHeader(ctx, propagator, header)
	require.Equal(t, "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01", header.Get("traceparent"))

	carrier := HeaderToMap(propagator, header)
	require.Equal(t, []string{"traceparent"}, carrier.Keys())

	th := &TracingHandler{Propagators: propagator}
	r := httptest.NewRequest(http.MethodPost, "/noteStore/getNote", nil)
	r.Header = header

	remote := trace.SpanContextFromContext(th.ContextFromRequest(r))
	require.True(t, remote.IsRemote())
	require.Equal(t, traceID, remote.TraceID())
}

func TestGetTLSConfig(t *testing.T) {
	_, err := getTLSConfig("%%%")
	require.Error(t, err)

	_, err = getTLSConfig(base64.StdEncoding.EncodeToString([]byte("not a pem")))
	require.ErrorIs(t, err, ErrNoCACertificates)
}

func TestInstallNoopProvider(t *testing.T) {
	shutdown, err := InstallTraceProvider(CollectorEndpoint{}, "evernote-rest")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))

	_, span := NewTracingHandler().StartNewSpan(context.Background(), "noteStore/getNote")
	require.False(t, span.SpanContext().IsValid())
	EndSpan(span, nil)
}

func TestAttributes(t *testing.T) {
	require.Equal(t, "noteStore", Store("noteStore").Value.AsString())
	require.Equal(t, "getNote", Method("getNote").Value.AsString())
	require.Equal(t, int64(404), Status(404).Value.AsInt64())
}
