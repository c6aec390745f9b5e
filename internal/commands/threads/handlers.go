package threadscmd

import (
	"context"
	"errors"

	"github.com/goliatone/go-cookbook/internal/commands"
	"github.com/goliatone/go-cookbook/internal/threads"
	"github.com/goliatone/go-cookbook/pkg/interfaces"
)

const openComposerOperation = "threads.open_composer"

// ErrNavigatorMissing is returned when neither the context nor the handler
// carries a navigator.
var ErrNavigatorMissing = errors.New("threads command: navigator is not configured")

// Composer builds composer targets. *threads.Resolver satisfies it.
type Composer interface {
	ComposerURL(ref threads.Ref, title string, threadID *int) (string, error)
}

type navigatorKey struct{}

// WithNavigator scopes a navigator to ctx. Per-request adapters (HTTP
// redirects) use it so one handler can serve every request.
func WithNavigator(ctx context.Context, nav interfaces.Navigator) context.Context {
	return context.WithValue(commands.EnsureContext(ctx), navigatorKey{}, nav)
}

func navigatorFrom(ctx context.Context, fallback interfaces.Navigator) interfaces.Navigator {
	if nav, ok := ctx.Value(navigatorKey{}).(interfaces.Navigator); ok && nav != nil {
		return nav
	}
	return fallback
}

// OpenComposerHandler resolves the composer target and hands it to a
// navigator. Navigation is fire-and-forget; the handler does not wait for
// the reader to post anything.
type OpenComposerHandler struct {
	inner *commands.Handler[OpenComposerCommand]
}

// NewOpenComposerHandler binds the handler to composer. nav is the default
// navigator and may be nil when every call supplies one through WithNavigator.
func NewOpenComposerHandler(composer Composer, nav interfaces.Navigator, logger interfaces.Logger, opts ...commands.HandlerOption[OpenComposerCommand]) *OpenComposerHandler {
	if composer == nil {
		panic("threads command: composer cannot be nil")
	}
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg OpenComposerCommand) error {
		target, err := composer.ComposerURL(threads.Ref{
			Owner:     msg.Owner,
			Store:     msg.Store,
			ContentID: msg.ContentID,
		}, msg.Title, msg.ThreadID)
		if err != nil {
			return err
		}

		navigator := navigatorFrom(ctx, nav)
		if navigator == nil {
			return ErrNavigatorMissing
		}
		if err := navigator.Navigate(ctx, target); err != nil {
			return err
		}
		baseLogger.Debug("threads.command.open_composer.navigated", "target", target)
		return nil
	}

	handlerOpts := []commands.HandlerOption[OpenComposerCommand]{
		commands.WithLogger[OpenComposerCommand](baseLogger),
		commands.WithOperation[OpenComposerCommand](openComposerOperation),
		commands.WithMessageFields(func(msg OpenComposerCommand) map[string]any {
			fields := map[string]any{
				"owner":      msg.Owner,
				"store":      msg.Store,
				"content_id": msg.ContentID,
			}
			if msg.ThreadID != nil {
				fields["thread_id"] = *msg.ThreadID
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &OpenComposerHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[OpenComposerCommand].
func (h *OpenComposerHandler) Execute(ctx context.Context, msg OpenComposerCommand) error {
	return h.inner.Execute(ctx, msg)
}
