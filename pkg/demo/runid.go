package demo

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/notifier/pkg/logger"
)

type runIDKey struct{}

// WithRunID tags ctx with the identifier of one demonstration run.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the run identifier, or "" if none is set.
func RunIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

// LogExtractor adds run_id to every log record emitted with a tagged context.
var LogExtractor = logger.ValueExtractor(runIDKey{}, func(id string) slog.Attr {
	return logger.RunID(id)
})
