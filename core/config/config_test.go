package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/anoideaopen/evernote-rest/evernote"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load(MapSource{"EVERNOTE_REST_CONFIG_DIR": t.TempDir()})
	require.NoError(t, err)

	require.Equal(t, "evernote-rest", cfg.AppName)
	require.Equal(t, "0.0.0.0:8080", cfg.Addr())
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"*"}, cfg.CORSOrigins)
	require.Equal(t, 10*time.Second, cfg.ReadHeaderTimeout)
	require.Equal(t, evernote.Sandbox, cfg.Environment)
	require.False(t, cfg.AlwaysUseTokenFromConfig)
	require.NoError(t, cfg.Validate())
}

func TestEnvironment(t *testing.T) {
	cfg, err := Load(MapSource{
		"EVERNOTE_REST_CONFIG_DIR":               t.TempDir(),
		"EVERNOTE_REST_PORT":                     "9090",
		"EVERNOTE_REST_CORS_ORIGINS":             "https://a.example,https://b.example",
		"EVERNOTE_ENVIRONMENT":                   "production",
		"EVERNOTE_ACCESS_TOKEN":                  "S=s1:U=1",
		"EVERNOTE_FALLBACK_TO_TOKEN_FROM_CONFIG": "true",
	})
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	require.Equal(t, evernote.Production, cfg.Environment)
	require.True(t, cfg.FallbackToTokenFromConfig)

	_, err = Load(MapSource{"EVERNOTE_ENVIRONMENT": "staging"})
	require.Error(t, err)
}

func TestEnvFileOverridesEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(
		"EVERNOTE_REST_PORT=7070\nEVERNOTE_REST_LOG_FORMAT=json\n",
	), 0o600))

	cfg, err := Load(MapSource{
		"EVERNOTE_REST_CONFIG_DIR": dir,
		"EVERNOTE_REST_PORT":       "9090",
		"EVERNOTE_REST_LOG_LEVEL":  "debug",
	})
	require.NoError(t, err)

	require.Equal(t, 7070, cfg.Port)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "debug", cfg.LogLevel, "keys missing from .env keep their environment value")
	require.Equal(t, dir, cfg.Config)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*C)
		wantErr error
	}{
		{name: "port", mutate: func(c *C) { c.Port = 70000 }, wantErr: ErrPortOutOfRange},
		{name: "cors", mutate: func(c *C) { c.CORSOrigins = nil }, wantErr: ErrNoCORSOrigins},
		{name: "token", mutate: func(c *C) { c.AlwaysUseTokenFromConfig = true }, wantErr: ErrAccessTokenEmpty},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(MapSource{"EVERNOTE_REST_CONFIG_DIR": t.TempDir()})
			require.NoError(t, err)

			tc.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), tc.wantErr)
		})
	}
}

func TestPrintEnv(t *testing.T) {
	cfg, err := Load(MapSource{
		"EVERNOTE_REST_CONFIG_DIR":   "/etc/evernote-rest",
		"EVERNOTE_REST_CORS_ORIGINS": "https://a.example,https://b.example",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	PrintEnv(cfg, &buf, false)

	out := buf.String()
	require.Contains(t, out, "EVERNOTE_ENVIRONMENT=SANDBOX\n")
	require.Contains(t, out, "EVERNOTE_REST_CONFIG_DIR=/etc/evernote-rest\n")
	require.Contains(t, out, "EVERNOTE_REST_CORS_ORIGINS=https://a.example,https://b.example\n")
	require.Contains(t, out, "EVERNOTE_REST_READ_HEADER_TIMEOUT=10s\n")
	require.Contains(t, out, "EVERNOTE_ACCESS_TOKEN=\n")

	buf.Reset()
	PrintHelp(cfg, &buf)
	require.Contains(t, buf.String(), "EVERNOTE_CONSUMER_KEY")
	require.Contains(t, buf.String(), "/etc/evernote-rest/.env")
}

func TestPrintEnvSecrets(t *testing.T) {
	cfg, err := Load(MapSource{
		"EVERNOTE_REST_CONFIG_DIR": t.TempDir(),
		"EVERNOTE_CONSUMER_KEY":    "key-1",
		"EVERNOTE_CONSUMER_SECRET": "s3cret",
		"EVERNOTE_ACCESS_TOKEN":    "S=s1:U=1:E=1:C=1:P=1:A=app:V=2:H=abc",
	})
	require.NoError(t, err)

	testCases := []struct {
		name     string
		reveal   bool
		contains []string
		hidden   []string
	}{
		{
			name:   "redacted by default",
			reveal: false,
			contains: []string{
				"EVERNOTE_CONSUMER_KEY=key-1\n",
				"# EVERNOTE_CONSUMER_SECRET=<redacted>\n",
				"# EVERNOTE_ACCESS_TOKEN=<redacted>\n",
			},
			hidden: []string{"s3cret", "H=abc"},
		},
		{
			name:   "revealed on request",
			reveal: true,
			contains: []string{
				"EVERNOTE_CONSUMER_SECRET=s3cret\n",
				"EVERNOTE_ACCESS_TOKEN=S=s1:U=1:E=1:C=1:P=1:A=app:V=2:H=abc\n",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			PrintEnv(cfg, &buf, tc.reveal)

			out := buf.String()
			for _, s := range tc.contains {
				require.Contains(t, out, s)
			}
			for _, s := range tc.hidden {
				require.NotContains(t, out, s)
			}
		})
	}
}
