package server

import (
	"errors"
	"io"
	"net/http"
	"sort"

	"github.com/anoideaopen/evernote-rest/core/resterr"
	"github.com/anoideaopen/evernote-rest/core/routing"
	"github.com/anoideaopen/evernote-rest/core/routing/mux"
	"github.com/anoideaopen/evernote-rest/core/telemetry"
	"github.com/anoideaopen/evernote-rest/evernote"
	"github.com/anoideaopen/evernote-rest/version"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/codes"
)

// contextParam is the published name of context parameters; it never appears
// in a request body.
const contextParam = "ctx"

// Operation describes one operation in the listing.
type Operation struct {
	Name       string   `json:"name"`
	Parameters []string `json:"parameters"`
	Resolved   bool     `json:"resolved"`
}

func (s *Server) invoke(w http.ResponseWriter, r *http.Request) {
	store := chi.URLParam(r, "storeName")
	method := chi.URLParam(r, "methodName")

	ctx, span := s.tracing.StartNewSpan(
		s.tracing.ContextFromRequest(r),
		store+"/"+method,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			telemetry.Store(store),
			telemetry.Method(method),
			telemetry.RequestID(RequestIDFrom(r.Context())),
		),
	)

	status, err := s.dispatch(w, r.WithContext(ctx), store, method)
	span.SetAttributes(telemetry.Status(status))
	telemetry.EndSpan(span, err)
}

func (s *Server) dispatch(w http.ResponseWriter, r *http.Request, store, method string) (int, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		code := codes.InvalidArgument
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			code = codes.ResourceExhausted
		}
		err = resterr.Wrap(err, code, "Cannot read request body for method=[%s].", method)
		return writeError(w, r, err), err
	}

	conn := ScopeFromRequest(r, s.policy).Connect(s.factory)

	result, err := s.stores.Invoke(r.Context(), store, targetOf(conn, store), method, body)
	if err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"store":      store,
			"method":     method,
			"request_id": RequestIDFrom(r.Context()),
		}).Debug("dispatch failed")
		return writeError(w, r, err), err
	}

	raw, err := marshalResult(result)
	if err != nil {
		err = resterr.Wrap(err, codes.Internal, "Cannot encode result of method=[%s].", method)
		return writeError(w, r, err), err
	}

	writeResult(w, http.StatusOK, raw)
	return http.StatusOK, nil
}

func targetOf(conn *evernote.Evernote, store string) any {
	switch store {
	case mux.NoteStore:
		return conn.NoteStoreOperations()
	case mux.UserStore:
		return conn.UserStoreOperations()
	default:
		return nil
	}
}

func (s *Server) listOperations(w http.ResponseWriter, r *http.Request) {
	store := chi.URLParam(r, "storeName")

	methods, err := s.stores.Methods(store)
	if err != nil {
		writeError(w, r, resterr.Wrap(err, codes.NotFound, "Cannot find store=[%s].", store))
		return
	}

	writeJSON(w, r, http.StatusOK, Operations(methods))
}

// Operations lists methods sorted by name, leaving out context parameters.
func Operations(methods map[routing.Function]routing.Method) []Operation {
	ops := make([]Operation, 0, len(methods))
	for _, m := range methods {
		params := make([]string, 0, len(m.ParamNames))
		for _, name := range m.ParamNames {
			if name != contextParam {
				params = append(params, name)
			}
		}
		ops = append(ops, Operation{
			Name:       m.Function,
			Parameters: params,
			Resolved:   m.Resolved,
		})
	}

	sort.Slice(ops, func(i, j int) bool {
		return ops[i].Name < ops[j].Name
	})

	return ops
}

func (s *Server) version(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, version.Get())
}
