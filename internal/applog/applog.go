package applog

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// scopeFieldName defines the key for the "scope" field in structured logs.
const scopeFieldName = "scope"

// NewLogger creates a zerolog.Logger writing human-readable lines to out.
// Debug events are dropped unless debug is set.
func NewLogger(out io.Writer, debug bool) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		PartsOrder: []string{
			zerolog.LevelFieldName,
			zerolog.TimestampFieldName,
			scopeFieldName,
			zerolog.MessageFieldName,
		},
		// Render the scope as [SCOPE] in front of the message.
		FormatPrepare: func(m map[string]any) error {
			if v, ok := m[scopeFieldName].(string); ok && v != "" {
				m[scopeFieldName] = fmt.Sprintf("[%s]", v)
			} else {
				m[scopeFieldName] = ""
			}
			return nil
		},
		FieldsExclude: []string{scopeFieldName},
		NoColor:       true,
	}

	logger := zerolog.New(consoleWriter)
	if debug {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	return logger.With().Timestamp().Logger()
}

// WithScope returns a sub-logger tagged with the component name.
func WithScope(logger zerolog.Logger, scope string) zerolog.Logger {
	return logger.With().Str(scopeFieldName, scope).Logger()
}
