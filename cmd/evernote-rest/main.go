package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/anoideaopen/evernote-rest/core/config"
	"github.com/anoideaopen/evernote-rest/core/logger"
	"github.com/anoideaopen/evernote-rest/core/routing/mux"
	"github.com/anoideaopen/evernote-rest/core/telemetry"
	"github.com/anoideaopen/evernote-rest/evernote"
	"github.com/anoideaopen/evernote-rest/internal/server"
	"github.com/anoideaopen/evernote-rest/version"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

type serveCmd struct{}

type envCmd struct {
	ShowSecrets bool `arg:"--show-secrets" help:"print the consumer secret and access token in the clear"`
}

type methodsCmd struct {
	Store string `arg:"positional" help:"noteStore or userStore, all stores when omitted"`
}

type args struct {
	Serve      *serveCmd   `arg:"subcommand:serve" help:"run the REST server (default)"`
	Env        *envCmd     `arg:"subcommand:env" help:"print the current configuration in .env form"`
	Methods    *methodsCmd `arg:"subcommand:methods" help:"print the operations served for each store"`
	ConfigHelp bool        `arg:"--config-help" help:"describe the environment variables and exit"`
}

func (args) Description() string {
	return "JSON over HTTP façade for the Evernote note store and user store"
}

func (args) Version() string {
	return "evernote-rest " + version.Version()
}

func main() {
	var a args
	arg.MustParse(&a)

	log := logger.Logger()

	cfg, err := config.New()
	if err != nil {
		log.WithError(err).Fatal("loading configuration")
	}

	switch {
	case a.ConfigHelp:
		config.PrintHelp(cfg, os.Stdout)
	case a.Env != nil:
		config.PrintEnv(cfg, os.Stdout, a.Env.ShowSecrets)
	case a.Methods != nil:
		if err = printMethods(os.Stdout, cfg, a.Methods.Store); err != nil {
			log.WithError(err).Fatal("listing operations")
		}
	default:
		if err = serve(cfg); err != nil {
			log.WithError(err).Fatal("serving")
		}
	}
}

func newFactory(cfg *config.C) *evernote.ConnectionFactory {
	return evernote.NewConnectionFactory(cfg.ConsumerKey, cfg.ConsumerSecret, cfg.Environment)
}

func serve(cfg *config.C) error {
	if err := logger.Configure(cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.Logger()

	shutdownTracing, err := telemetry.InstallTraceProvider(telemetry.CollectorEndpoint{
		Endpoint:      cfg.OTLPEndpoint,
		CACertsBase64: cfg.OTLPCACerts,
	}, cfg.AppName)
	if err != nil {
		return fmt.Errorf("installing trace provider: %w", err)
	}

	factory := newFactory(cfg)
	log.WithFields(logrus.Fields{
		"app":          cfg.AppName,
		"version":      version.Version(),
		"environment":  factory.Service(),
		"consumer_key": factory.ConsumerKey(),
		"addr":         cfg.Addr(),
		"tracing":      cfg.OTLPEndpoint != "",
	}).Info("starting")

	s, err := server.New(cfg, factory)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(s.Start)
	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return s.Shutdown(shutdownCtx)
	})
	err = g.Wait()

	flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if flushErr := shutdownTracing(flushCtx); flushErr != nil {
		log.WithError(flushErr).Warn("flushing traces")
	}

	return err
}

// printMethods writes the operation table of store, or of every store.
func printMethods(w io.Writer, cfg *config.C, store string) error {
	stores, err := server.NewStoreRouter(newFactory(cfg))
	if err != nil {
		return err
	}

	names := stores.Stores()
	if store != "" {
		if !stores.Has(store) {
			return fmt.Errorf("%w: %s", mux.ErrUnsupportedStore, store)
		}
		names = []string{store}
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range names {
		methods, err := stores.Methods(name)
		if err != nil {
			return err
		}

		for _, op := range server.Operations(methods) {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t(%s)\n", name, op.Name, strings.Join(op.Parameters, ", "))
		}
	}

	return tw.Flush()
}
