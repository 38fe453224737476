package observability

import (
	"context"
	"os"

	"github.com/rs/zerolog"
)

// global logger, JSON to stdout.
var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

func Logger() *zerolog.Logger {
	return &logger
}

// SetLevel adjusts the global log level (e.g. debug in local mode).
func SetLevel(level zerolog.Level) {
	logger = logger.Level(level)
}

// WithRequestID stores a request_id in the context so handlers and services
// share one correlated logger.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	l := logger.With().Str("request_id", requestID).Logger()
	return l.WithContext(ctx)
}

// LoggerFromContext returns the request-scoped logger, or the global one
// when the context carries none.
func LoggerFromContext(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		return &logger
	}
	return l
}
