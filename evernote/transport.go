package evernote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/anoideaopen/evernote-rest/core/logger"
	"github.com/anoideaopen/evernote-rest/core/telemetry"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

const (
	jsonrpcVersion = "2.0"
	contentType    = "application/json"

	defaultTimeout   = 30 * time.Second
	maxErrorBodySize = 4 << 10
)

// Transport carries one store call to the store at url and decodes its result
// into result.
type Transport interface {
	Call(ctx context.Context, url, method string, params map[string]any, result any) error
}

// Request is a JSON-RPC 2.0 request object.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      string          `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is a JSON-RPC 2.0 response object.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      string          `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError is a JSON-RPC 2.0 error object. Store exceptions are carried in Data.
type RPCError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// JSON-RPC error codes used by the store.
const (
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
	CodeMethodNotFound = -32601
	CodeStoreException = -32000
)

// NewRPCError packs a store exception into a JSON-RPC error object.
func NewRPCError(e *Error) *RPCError {
	data, _ := json.Marshal(e)
	return &RPCError{
		Code:    CodeStoreException,
		Message: string(e.Type),
		Data:    data,
	}
}

// err converts the error object into the error returned to callers: store
// exceptions become *Error, anything else a generic store failure.
func (e *RPCError) err() error {
	if len(e.Data) > 0 {
		var storeErr Error
		if json.Unmarshal(e.Data, &storeErr) == nil && storeErr.Type != "" {
			return &storeErr
		}
	}

	return fmt.Errorf("%w: code %d: %s", ErrUnknownStoreFailure, e.Code, e.Message)
}

// HTTPTransport speaks JSON-RPC 2.0 over HTTP POST.
type HTTPTransport struct {
	Client     *http.Client
	Propagator propagation.TextMapPropagator
	UserAgent  string
}

// NewHTTPTransport returns a transport with a bounded client timeout.
func NewHTTPTransport(userAgent string) *HTTPTransport {
	return &HTTPTransport{
		Client:    &http.Client{Timeout: defaultTimeout},
		UserAgent: userAgent,
	}
}

func (t *HTTPTransport) Call(ctx context.Context, url, method string, params map[string]any, result any) error {
	rawParams, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("encoding params of %s: %w", method, err)
	}

	rpcReq := Request{
		JSONRPC: jsonrpcVersion,
		ID:      uuid.NewString(),
		Method:  method,
		Params:  rawParams,
	}
	body, err := json.Marshal(rpcReq)
	if err != nil {
		return fmt.Errorf("encoding request of %s: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", contentType)
	if t.UserAgent != "" {
		req.Header.Set("User-Agent", t.UserAgent)
	}
	telemetry.PackToHeader(ctx, t.propagator(), req.Header)

	logger.Logger().WithFields(logrus.Fields{
		"method": method,
		"url":    url,
		"id":     rpcReq.ID,
	}).Debug("calling store")

	resp, err := t.client().Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return fmt.Errorf("%w: %s: %d %s", ErrUnexpectedStatus, method, resp.StatusCode, bytes.TrimSpace(msg))
	}

	var rpcResp Response
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedResponse, method, err)
	}
	if rpcResp.ID != rpcReq.ID {
		return fmt.Errorf("%w: sent %s, got %s", ErrResponseMismatch, rpcReq.ID, rpcResp.ID)
	}
	if rpcResp.Error != nil {
		return rpcResp.Error.err()
	}

	if result == nil || len(rpcResp.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(rpcResp.Result, result); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedResponse, method, err)
	}

	return nil
}

func (t *HTTPTransport) client() *http.Client {
	if t.Client == nil {
		return http.DefaultClient
	}
	return t.Client
}

func (t *HTTPTransport) propagator() propagation.TextMapPropagator {
	if t.Propagator == nil {
		return otel.GetTextMapPropagator()
	}
	return t.Propagator
}
