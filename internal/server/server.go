// Package server exposes the store operations over HTTP. A request
// POST /{storeName}/{methodName} carries a JSON object of named parameters; the
// server opens an Evernote connection for the caller and dispatches the call to
// the store client through the reflection router.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/anoideaopen/evernote-rest/core/config"
	"github.com/anoideaopen/evernote-rest/core/logger"
	"github.com/anoideaopen/evernote-rest/core/resterr"
	"github.com/anoideaopen/evernote-rest/core/routing/mux"
	"github.com/anoideaopen/evernote-rest/core/routing/reflect"
	"github.com/anoideaopen/evernote-rest/core/telemetry"
	"github.com/anoideaopen/evernote-rest/evernote"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
)

const (
	storePattern = "/{storeName:noteStore|userStore}"
	idleTimeout  = 60 * time.Second
	maxBodySize  = 32 << 20
)

// NewStoreRouter builds the routers of both stores from a prototype connection.
func NewStoreRouter(factory *evernote.ConnectionFactory) (*mux.Router, error) {
	prototype := factory.Evernote("")

	noteStore, err := reflect.NewRouter(prototype.NoteStoreOperations())
	if err != nil {
		return nil, err
	}
	userStore, err := reflect.NewRouter(prototype.UserStoreOperations())
	if err != nil {
		return nil, err
	}

	return mux.NewRouter(
		mux.Route{Store: mux.NoteStore, Router: noteStore},
		mux.Route{Store: mux.UserStore, Router: userStore},
	)
}

// Server is the HTTP front of the store clients.
type Server struct {
	cfg        *config.C
	factory    *evernote.ConnectionFactory
	stores     *mux.Router
	policy     TokenPolicy
	tracing    *telemetry.TracingHandler
	log        logrus.FieldLogger
	handler    http.Handler
	httpServer *http.Server
}

// New creates a server for cfg that opens connections with factory.
func New(cfg *config.C, factory *evernote.ConnectionFactory) (*Server, error) {
	stores, err := NewStoreRouter(factory)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:     cfg,
		factory: factory,
		stores:  stores,
		policy: TokenPolicy{
			Token:                     cfg.AccessToken,
			AlwaysUseTokenFromConfig:  cfg.AlwaysUseTokenFromConfig,
			FallbackToTokenFromConfig: cfg.FallbackToTokenFromConfig,
		},
		tracing: telemetry.NewTracingHandler(),
		log:     logger.Logger().WithField("component", "server"),
	}

	r := chi.NewRouter()
	r.Use(requestID, accessLog(s.log), middleware.Recoverer)
	r.NotFound(s.notFound)
	r.MethodNotAllowed(s.methodNotAllowed)

	r.Get("/version", s.version)
	r.Get(storePattern, s.listOperations)
	r.Post(storePattern+"/{methodName}", s.invoke)

	s.handler = cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{HeaderRequestID},
	}).Handler(r)

	s.httpServer = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           s,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}

	return s, nil
}

// ServeHTTP is the server http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Start listens on the configured address and serves until Shutdown.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return err
	}

	return s.Serve(listener)
}

// Serve serves on listener until Shutdown.
func (s *Server) Serve(listener net.Listener) error {
	s.log.WithField("addr", listener.Addr().String()).Info("listening")
	if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Shutdown stops accepting requests and waits for running ones until ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Warn("shutting down listener")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, resterr.New(codes.NotFound, "No route for %s %s.", r.Method, r.URL.Path))
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeErrorBody(w, r, http.StatusMethodNotAllowed, fmt.Sprintf("Method %s is not supported for %s.", r.Method, r.URL.Path))
}
