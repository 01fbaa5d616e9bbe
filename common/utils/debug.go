package utils

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	loggerMu sync.RWMutex
	root     = newRootLogger(os.Stdout)
)

func newRootLogger(w io.Writer) zerolog.Logger {
	ctx := zerolog.New(w).With().Timestamp()

	if hostname, err := os.Hostname(); err == nil {
		ctx = ctx.Dict("context", zerolog.Dict().Str("hostname", hostname))
	}

	return ctx.Logger()
}

// SetOutput redirects every logger created afterwards.
func SetOutput(w io.Writer) {
	loggerMu.Lock()
	root = newRootLogger(w)
	loggerMu.Unlock()
}

// SetLevel parses a zerolog level name ("debug", "info", ...); unknown names
// leave the level unchanged.
func SetLevel(level string) {
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
}

// Logger returns a logger tagged with the given service name.
func Logger(service string) zerolog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()

	return root.With().Str("service", service).Logger()
}

func Debug(service string, message string) {
	l := Logger(service)
	l.Info().Msg(message)
}
