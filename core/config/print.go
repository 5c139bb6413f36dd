package config

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/anoideaopen/evernote-rest/version"
	"go-simpler.org/env"
)

// KV is a key/value pair. Secret marks values that carry credentials.
type KV struct {
	Key, Value string
	Secret     bool
}

// KVSlice is a collection of key/value pairs.
type KVSlice []KV

func (kv KVSlice) Len() int           { return len(kv) }
func (kv KVSlice) Less(i, j int) bool { return kv[i].Key < kv[j].Key }
func (kv KVSlice) Swap(i, j int)      { kv[i], kv[j] = kv[j], kv[i] }

// EnvKV turns a struct with `env` keys into environment variable key/value
// pairs. Fields tagged `secret:"true"` are marked Secret. cfg must not be a
// pointer.
func EnvKV(cfg any) (m KVSlice) {
	t := reflect.TypeOf(cfg)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		k := field.Tag.Get("env")
		if k == "" {
			continue
		}

		var val string
		switch v := reflect.ValueOf(cfg).Field(i).Interface().(type) {
		case string:
			val = v
		case int, bool, time.Duration:
			val = fmt.Sprint(v)
		case []string:
			val = strings.Join(v, sliceSep)
		case fmt.Stringer:
			val = v.String()
		}
		m = append(m, KV{Key: k, Value: val, Secret: field.Tag.Get("secret") == "true"})
	}
	return
}

// PrintEnv renders the key/values of a config.C to a provided io.Writer, in a
// form that can be saved as the .env file. Unless reveal is set, non-empty
// secrets are written as comments so the saved file leaves them to the
// environment.
func PrintEnv(cfg *C, printer io.Writer, reveal bool) {
	kvs := EnvKV(*cfg)
	sort.Sort(kvs)
	for _, v := range kvs {
		if v.Secret && v.Value != "" && !reveal {
			_, _ = fmt.Fprintf(printer, "# %s=%s\n", v.Key, redacted)
			continue
		}
		_, _ = fmt.Fprintf(printer, "%s=%s\n", v.Key, v.Value)
	}
}

const redacted = "<redacted>"

// PrintHelp outputs a help text listing the configuration options and default
// values to a provided io.Writer.
func PrintHelp(cfg *C, printer io.Writer) {
	_, _ = fmt.Fprintf(printer, "%s %s\n\n", cfg.AppName, version.Version())
	_, _ = fmt.Fprintf(printer, "Environment variables that configure %s:\n\n", cfg.AppName)

	env.Usage(cfg, printer, &env.Options{SliceSep: sliceSep})

	_, _ = fmt.Fprintf(
		printer,
		"\n.env file found at the path %s will be loaded and overrides the environment.\n"+
			"use the command 'env' to print the current configuration:\n\n\t%s env > %s\n",
		cfg.EnvFile(),
		os.Args[0],
		cfg.EnvFile(),
	)
}
