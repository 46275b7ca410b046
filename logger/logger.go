// Package logger provides the single zerolog logger instance the rest of
// the module writes structured events through. The level is read once from
// R1CS_LOG_LEVEL (trace|debug|info|warn|error|disabled), defaulting to info.
package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	once sync.Once
	log  zerolog.Logger
)

// Logger returns the shared logger, initializing it from R1CS_LOG_LEVEL on
// first use.
func Logger() zerolog.Logger {
	once.Do(func() {
		level := zerolog.InfoLevel
		if s := os.Getenv("R1CS_LOG_LEVEL"); s != "" {
			if parsed, err := zerolog.ParseLevel(s); err == nil {
				level = parsed
			}
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().
			Timestamp().
			Logger()
	})
	return log
}

// SetLogger overrides the shared logger, for tests that want to capture or
// silence output.
func SetLogger(l zerolog.Logger) {
	once.Do(func() {})
	log = l
}
