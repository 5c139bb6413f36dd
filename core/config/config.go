// Package config provides a go-simpler.org/env configuration table for the
// service and helpers for working with the .env file that may override it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/anoideaopen/evernote-rest/evernote"
	"github.com/subosito/gotenv"
	"go-simpler.org/env"
)

const (
	sliceSep    = ","
	envFileName = ".env"
)

var (
	ErrAccessTokenEmpty = errors.New("'EVERNOTE_ACCESS_TOKEN' is empty but the configured token is required")
	ErrPortOutOfRange   = errors.New("'EVERNOTE_REST_PORT' is out of range")
	ErrNoCORSOrigins    = errors.New("'EVERNOTE_REST_CORS_ORIGINS' is empty")
)

// C is the configuration of the service. Values are read from the environment;
// a .env file found in the configuration directory overrides it.
type C struct {
	AppName           string        `env:"EVERNOTE_REST_APP_NAME" default:"evernote-rest" usage:"application name, also names the configuration directory and the trace service"`
	Config            string        `env:"EVERNOTE_REST_CONFIG_DIR" usage:"location of the '.env' configuration file, KEY=value<newline>... style"`
	Listen            string        `env:"EVERNOTE_REST_LISTEN" default:"0.0.0.0" usage:"network listen address"`
	Port              int           `env:"EVERNOTE_REST_PORT" default:"8080" usage:"port to listen on"`
	LogLevel          string        `env:"EVERNOTE_REST_LOG_LEVEL" default:"info" usage:"log level: panic fatal error warn info debug trace"`
	LogFormat         string        `env:"EVERNOTE_REST_LOG_FORMAT" default:"text" usage:"log format: text json"`
	CORSOrigins       []string      `env:"EVERNOTE_REST_CORS_ORIGINS" default:"*" usage:"comma separated origins allowed to call the service"`
	ReadHeaderTimeout time.Duration `env:"EVERNOTE_REST_READ_HEADER_TIMEOUT" default:"10s" usage:"time allowed to read request headers"`
	OTLPEndpoint      string        `env:"EVERNOTE_REST_OTLP_ENDPOINT" usage:"host:port of an OTLP/HTTP trace collector, tracing is off when empty"`
	OTLPCACerts       string        `env:"EVERNOTE_REST_OTLP_CA_CERTS" usage:"base64 encoded PEM bundle trusted for the collector, plain HTTP when empty"`

	ConsumerKey               string           `env:"EVERNOTE_CONSUMER_KEY" usage:"consumer key of the registered Evernote application"`
	ConsumerSecret            string           `env:"EVERNOTE_CONSUMER_SECRET" secret:"true" usage:"consumer secret of the registered Evernote application"`
	AccessToken               string           `env:"EVERNOTE_ACCESS_TOKEN" secret:"true" usage:"access token used by the token policies below"`
	AlwaysUseTokenFromConfig  bool             `env:"EVERNOTE_ALWAYS_USE_TOKEN_FROM_CONFIG" default:"false" usage:"ignore request headers and always use EVERNOTE_ACCESS_TOKEN"`
	FallbackToTokenFromConfig bool             `env:"EVERNOTE_FALLBACK_TO_TOKEN_FROM_CONFIG" default:"false" usage:"use EVERNOTE_ACCESS_TOKEN when a request carries no token"`
	Environment               evernote.Service `env:"EVERNOTE_ENVIRONMENT" default:"SANDBOX" usage:"Evernote environment: SANDBOX PRODUCTION"`
}

// New creates a new config.C from the process environment.
func New() (*C, error) {
	return Load(osSource{})
}

// Load reads the configuration from src, then from the .env file of the
// configuration directory, whose values take precedence.
func Load(src env.Source) (cfg *C, err error) {
	cfg = &C{}
	if err = env.Load(cfg, &env.Options{SliceSep: sliceSep, Source: src}); err != nil {
		return nil, err
	}
	if cfg.Config == "" {
		cfg.Config = filepath.Join(xdg.ConfigHome, cfg.AppName)
	}

	envPath := cfg.EnvFile()
	if _, statErr := os.Stat(envPath); statErr == nil {
		var dotenv gotenv.Env
		if dotenv, err = gotenv.Read(envPath); err != nil {
			return nil, fmt.Errorf("reading %s: %w", envPath, err)
		}

		configDir := cfg.Config
		cfg = &C{}
		if err = env.Load(cfg, &env.Options{SliceSep: sliceSep, Source: layered{dotenv, src}}); err != nil {
			return nil, fmt.Errorf("loading %s: %w", envPath, err)
		}
		if cfg.Config == "" {
			cfg.Config = configDir
		}
	}

	return cfg, nil
}

// EnvFile returns the path of the .env file.
func (c *C) EnvFile() string {
	return filepath.Join(c.Config, envFileName)
}

// Addr returns the address the server listens on.
func (c *C) Addr() string {
	return fmt.Sprintf("%s:%d", c.Listen, c.Port)
}

// Validate checks the values that cannot be checked by type alone.
func (c *C) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrPortOutOfRange, c.Port)
	}
	if len(c.CORSOrigins) == 0 {
		return ErrNoCORSOrigins
	}
	if c.AlwaysUseTokenFromConfig && c.AccessToken == "" {
		return ErrAccessTokenEmpty
	}

	return nil
}

type osSource struct{}

func (osSource) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapSource serves variables from a map.
type MapSource map[string]string

func (m MapSource) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// layered looks a key up in the .env file first.
type layered struct {
	dotenv gotenv.Env
	next   env.Source
}

func (l layered) LookupEnv(key string) (string, bool) {
	if v, ok := l.dotenv[key]; ok {
		return v, true
	}
	return l.next.LookupEnv(key)
}
