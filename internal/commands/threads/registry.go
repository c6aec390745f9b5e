package threadscmd

import (
	"errors"

	"github.com/goliatone/go-cookbook/internal/commands"
	"github.com/goliatone/go-cookbook/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring
// command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the handlers produced by RegisterThreadCommands.
type HandlerSet struct {
	OpenComposer *OpenComposerHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	navigator        interfaces.Navigator
	openComposerOpts []commands.HandlerOption[OpenComposerCommand]
}

// WithDefaultNavigator sets the navigator used when the context carries none.
func WithDefaultNavigator(nav interfaces.Navigator) Option {
	return func(cfg *options) {
		cfg.navigator = nav
	}
}

// WithOpenComposerOptions forwards options to the OpenComposerHandler constructor.
func WithOpenComposerOptions(opts ...commands.HandlerOption[OpenComposerCommand]) Option {
	return func(cfg *options) {
		cfg.openComposerOpts = append(cfg.openComposerOpts, opts...)
	}
}

// RegisterThreadCommands builds the thread command handlers and registers them
// with reg when it is non-nil.
func RegisterThreadCommands(reg CommandRegistry, composer Composer, provider interfaces.LoggerProvider, opts ...Option) (*HandlerSet, error) {
	if composer == nil {
		return nil, errors.New("threads command registration: composer is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "threads")
	openComposer := NewOpenComposerHandler(composer, cfg.navigator, logger, cfg.openComposerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(openComposer); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{OpenComposer: openComposer}, nil
}
