package commands

import (
	"context"
	"time"

	"github.com/goliatone/go-cookbook/internal/logging"
	"github.com/goliatone/go-cookbook/pkg/interfaces"
)

// DefaultCommandTimeout is how long a cookbook command may run when its
// handler was built without WithTimeout. Opening the composer involves at
// most one thread search and one comment listing.
const DefaultCommandTimeout = 30 * time.Second

// EnsureContext substitutes context.Background for a nil ctx.
func EnsureContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

// boundedContext limits ctx to timeout. A caller deadline that is already
// sooner, such as the HTTP request's, is left in charge; a non-positive
// timeout leaves ctx unbounded.
func boundedContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx = EnsureContext(ctx)
	if timeout <= 0 {
		return ctx, func() {}
	}
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) <= timeout {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// EnsureLogger returns logger, or the no-op logger for handlers wired
// without a provider.
func EnsureLogger(logger interfaces.Logger) interfaces.Logger {
	if logger == nil {
		return logging.NoOp()
	}
	return logger
}
