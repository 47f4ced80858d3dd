package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup routes the global logger through a console writer on out and sets
// the global level. It returns the configured logger.
func Setup(out io.Writer, debug bool) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Debug().Msg("debug logging enabled")
	}
	return log.Logger
}

// Component returns a child of the global logger tagged with a component name.
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// Loggable is implemented by sims that accept a logger.
type Loggable interface {
	SetLogger(zerolog.Logger)
}

// Attach hands a component logger to target if it accepts one.
func Attach(target any, name string) bool {
	l, ok := target.(Loggable)
	if !ok {
		return false
	}
	l.SetLogger(Component(name))
	return true
}
