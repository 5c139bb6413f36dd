package telemetry

import "go.opentelemetry.io/otel/attribute"

// Attribute keys attached to dispatch spans.
const (
	StoreKey     = attribute.Key("store")
	MethodKey    = attribute.Key("method")
	RequestIDKey = attribute.Key("request_id")
	StatusKey    = attribute.Key("http.status_code")
)

// Store names the store a call was routed to.
func Store(name string) attribute.KeyValue {
	return StoreKey.String(name)
}

// Method names the invoked store operation.
func Method(name string) attribute.KeyValue {
	return MethodKey.String(name)
}

func RequestID(id string) attribute.KeyValue {
	return RequestIDKey.String(id)
}

func Status(code int) attribute.KeyValue {
	return StatusKey.Int(code)
}
