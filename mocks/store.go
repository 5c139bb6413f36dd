package mocks

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/anoideaopen/evernote-rest/evernote"
	"github.com/go-chi/chi/v5"
	"github.com/puzpuzpuz/xsync/v3"
)

// Store names of the fake backend.
const (
	UserStore = "user"
	NoteStore = "note"

	DefaultShard = "s1"
)

const (
	userStorePath = "/edam/user"
	noteStorePath = "/edam/note"
)

// Handler serves one store operation. Returning an *evernote.Error reports a
// store exception.
type Handler func(params map[string]json.RawMessage) (any, error)

// Call is a store call received by the fake backend.
type Call struct {
	Store  string
	Shard  string
	Method string
	Params map[string]json.RawMessage
	Header http.Header
}

// Token returns the access token the call carried, if any.
func (c Call) Token() string {
	var token string
	if raw, ok := c.Params["authenticationToken"]; ok {
		_ = json.Unmarshal(raw, &token)
	}
	return token
}

// StoreServer is a fake note store and user store speaking JSON-RPC 2.0.
type StoreServer struct {
	server   *httptest.Server
	handlers *xsync.MapOf[string, Handler]

	mu    sync.Mutex
	calls []Call
}

// NewStoreServer starts a fake backend that is closed with the test. The user
// store answers getNoteStoreUrl with the note store of DefaultShard.
func NewStoreServer(t testing.TB) *StoreServer {
	s := &StoreServer{
		handlers: xsync.NewMapOf[string, Handler](),
	}

	r := chi.NewRouter()
	r.Post(userStorePath, s.serve(UserStore))
	r.Post(noteStorePath+"/{shard}", s.serve(NoteStore))

	s.server = httptest.NewServer(r)
	t.Cleanup(s.server.Close)

	s.Handle(UserStore, "getNoteStoreUrl", Result(s.NoteStoreURL(DefaultShard)))

	return s
}

func (s *StoreServer) URL() string {
	return s.server.URL
}

func (s *StoreServer) UserStoreURL() string {
	return s.server.URL + userStorePath
}

func (s *StoreServer) NoteStoreURL(shard string) string {
	return s.server.URL + noteStorePath + "/" + shard
}

// Handle installs h for method of store, replacing any earlier handler.
func (s *StoreServer) Handle(store, method string, h Handler) {
	s.handlers.Store(store+"."+method, h)
}

// Calls returns the calls received so far, oldest first.
func (s *StoreServer) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Call(nil), s.calls...)
}

// LastCall returns the most recent call.
func (s *StoreServer) LastCall() (Call, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.calls) == 0 {
		return Call{}, false
	}
	return s.calls[len(s.calls)-1], true
}

// Result returns a handler answering with v.
func Result(v any) Handler {
	return func(map[string]json.RawMessage) (any, error) {
		return v, nil
	}
}

// Fail returns a handler raising err.
func Fail(err error) Handler {
	return func(map[string]json.RawMessage) (any, error) {
		return nil, err
	}
}

// Echo returns a handler answering with the named parameter as received.
func Echo(param string) Handler {
	return func(params map[string]json.RawMessage) (any, error) {
		return params[param], nil
	}
}

func (s *StoreServer) serve(store string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req evernote.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var params map[string]json.RawMessage
		if len(req.Params) > 0 {
			if err := json.Unmarshal(req.Params, &params); err != nil {
				writeResponse(w, evernote.Response{
					JSONRPC: req.JSONRPC,
					ID:      req.ID,
					Error:   &evernote.RPCError{Code: evernote.CodeInvalidParams, Message: err.Error()},
				})
				return
			}
		}

		s.mu.Lock()
		s.calls = append(s.calls, Call{
			Store:  store,
			Shard:  chi.URLParam(r, "shard"),
			Method: req.Method,
			Params: params,
			Header: r.Header.Clone(),
		})
		s.mu.Unlock()

		resp := evernote.Response{JSONRPC: req.JSONRPC, ID: req.ID}

		h, ok := s.handlers.Load(store + "." + req.Method)
		if !ok {
			resp.Error = &evernote.RPCError{
				Code:    evernote.CodeMethodNotFound,
				Message: fmt.Sprintf("method %s not found on %s store", req.Method, store),
			}
			writeResponse(w, resp)
			return
		}

		result, err := h(params)
		if err != nil {
			var storeErr *evernote.Error
			if errors.As(err, &storeErr) {
				resp.Error = evernote.NewRPCError(storeErr)
			} else {
				resp.Error = &evernote.RPCError{Code: evernote.CodeInternalError, Message: err.Error()}
			}
			writeResponse(w, resp)
			return
		}

		raw, err := json.Marshal(result)
		if err != nil {
			resp.Error = &evernote.RPCError{Code: evernote.CodeInternalError, Message: err.Error()}
		} else {
			resp.Result = raw
		}
		writeResponse(w, resp)
	}
}

func writeResponse(w http.ResponseWriter, resp evernote.Response) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
