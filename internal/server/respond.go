package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/anoideaopen/evernote-rest/core/resterr"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

const contentTypeJSON = "application/json"

// ErrorBody is the JSON document sent with every failed request.
type ErrorBody struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
	RequestID string `json:"requestId,omitempty"`
}

// marshalResult encodes an operation result; nil encodes to nothing.
func marshalResult(result any) ([]byte, error) {
	switch v := result.(type) {
	case nil:
		return nil, nil
	case proto.Message:
		return protojson.Marshal(v)
	default:
		return json.Marshal(v)
	}
}

func writeResult(w http.ResponseWriter, status int, body []byte) {
	if len(body) > 0 {
		w.Header().Set("Content-Type", contentTypeJSON)
	}
	w.WriteHeader(status)
	if len(body) > 0 {
		_, _ = w.Write(body)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(w, r, resterr.Wrap(err, codes.Internal, "Cannot encode response."))
		return
	}
	writeResult(w, status, body)
}

// writeError sends err as an ErrorBody with the status derived from its code.
func writeError(w http.ResponseWriter, r *http.Request, err error) int {
	restErr := resterr.From(err)
	status := restErr.HTTPStatus()
	writeErrorBody(w, r, status, restErr.Message)

	return status
}

func writeErrorBody(w http.ResponseWriter, r *http.Request, status int, message string) {
	body := ErrorBody{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      r.URL.Path,
		RequestID: w.Header().Get(HeaderRequestID),
	}

	raw, _ := json.Marshal(body)
	writeResult(w, status, raw)
}
