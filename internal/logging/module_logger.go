package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-cookbook/pkg/interfaces"
)

const (
	rootModule     = "cookbook"
	recipesModule  = "cookbook.recipes"
	threadsModule  = "cookbook.threads"
	githubModule   = "cookbook.github"
	httpModule     = "cookbook.http"
	markdownModule = "cookbook.markdown"
)

const (
	fieldRecipeID = "recipe_id"
	fieldOwner    = "owner"
	fieldStore    = "store"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// RecipesLogger returns the logger namespace reserved for recipe ingestion.
func RecipesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, recipesModule)
}

// ThreadsLogger returns the logger namespace reserved for discussion threads.
func ThreadsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, threadsModule)
}

// GitHubLogger returns the logger namespace reserved for the remote client.
func GitHubLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, githubModule)
}

// HTTPLogger returns the logger namespace reserved for the site HTTP adapter.
func HTTPLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, httpModule)
}

// MarkdownLogger returns the logger namespace reserved for markdown rendering.
func MarkdownLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markdownModule)
}

// WithRecipeContext enriches the logger with the recipe identity and the
// repository it lives in. Empty values are ignored.
func WithRecipeContext(logger interfaces.Logger, owner, store, recipeID string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(owner); trimmed != "" {
		fields[fieldOwner] = trimmed
	}
	if trimmed := strings.TrimSpace(store); trimmed != "" {
		fields[fieldStore] = trimmed
	}
	if trimmed := strings.TrimSpace(recipeID); trimmed != "" {
		fields[fieldRecipeID] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
