package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// ctxKey is unexported so only this package can attach loggers.
type ctxKey struct{}

// WithLogger returns a child context carrying logger. Work that fans out
// under the context (runner workers, the fix pipeline) retrieves it with
// FromContext instead of threading a logger parameter through every layer.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger attached to ctx. It never returns nil:
// a missing or nil logger falls back to the package default.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(ctxKey{}).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}
