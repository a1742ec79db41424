// Package logging provides leveled printf-style logging for tubecfg,
// backed by zerolog's console writer.
package logging

import (
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
	level int
	mu    sync.Mutex
)

// SetLevel sets the debug verbosity. Debug messages above the level are dropped.
func SetLevel(l int) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// E logs an error message.
func E(format string, args ...any) {
	logger.Error().Msgf(format, args...)
}

// W logs a warning message.
func W(format string, args ...any) {
	logger.Warn().Msgf(format, args...)
}

// I logs an informational message.
func I(format string, args ...any) {
	logger.Info().Msgf(format, args...)
}

// S logs a success message.
func S(format string, args ...any) {
	logger.Info().Str("status", "success").Msgf(format, args...)
}

// D logs a debug message at the given verbosity level.
func D(l int, format string, args ...any) {
	mu.Lock()
	lvl := level
	mu.Unlock()
	if l > lvl {
		return
	}
	logger.Debug().Msgf(format, args...)
}

// P prints a plain line to stdout, for user-facing output that should not
// carry log decoration.
func P(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format+"\n", args...)
}
