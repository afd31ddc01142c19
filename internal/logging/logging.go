// Package logging builds the kernel's zerolog loggers: a root logger
// configured once at process start, and a per-engine child logger for
// each of the four consensus engines so every log line carries its
// engine without repeating it at every call site.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Format selects the root logger's output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Config configures the root logger. It is populated from the
// viper-backed operational config, never from a CLI flag set.
type Config struct {
	Level  string
	Format Format
}

// New builds a root zerolog.Logger per cfg. An unrecognized level
// falls back to info rather than failing process start, since a typo
// in an operator's config file should degrade, not crash, a
// consensus-critical process.
func New(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}

	var w io.Writer = os.Stderr
	if cfg.Format == FormatText {
		w = consoleWriter(os.Stderr)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func consoleWriter(out io.Writer) *zerolog.ConsoleWriter {
	return &zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		FormatLevel: func(i interface{}) string {
			if s, ok := i.(string); ok {
				return strings.ToUpper(s)
			}
			return "????"
		},
	}
}

// Engine names used as the "engine" field on every child logger,
// matching the four module identifiers in the kernel (participation,
// header, admission, tokenomics).
const (
	EngineParticipation = "participation"
	EngineHeader        = "header"
	EngineAdmission     = "admission"
	EngineTokenomics    = "tokenomics"
)

// For returns a child logger tagged with engine.
func For(root zerolog.Logger, engine string) zerolog.Logger {
	return root.With().Str("engine", engine).Logger()
}
