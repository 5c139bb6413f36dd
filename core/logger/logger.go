package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	FormatText = "text"
	FormatJSON = "json"

	defaultLevel = logrus.InfoLevel
)

var (
	lg   *logrus.Logger
	once sync.Once
)

// Logger returns the process logger
func Logger() *logrus.Logger {
	once.Do(func() {
		lg = logrus.New()
		lg.SetOutput(os.Stderr)
		lg.SetLevel(defaultLevel)
		lg.SetFormatter(defaultFormatter())
	})
	return lg
}

// Configure sets the level and the output format (text or json) of the process
// logger.
func Configure(levelStr, format string) error {
	l := Logger()

	if levelStr == "" {
		levelStr = defaultLevel.String()
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return err
	}
	l.SetLevel(level)

	switch strings.ToLower(format) {
	case "", FormatText:
		l.SetFormatter(defaultFormatter())
	case FormatJSON:
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	return nil
}

// SetOutput redirects the process logger.
func SetOutput(w io.Writer) {
	Logger().SetOutput(w)
}

func defaultFormatter() logrus.Formatter {
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000 MST",
	}
}
