package threadscmd_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-cookbook/internal/commands/fixtures"
	threadscmd "github.com/goliatone/go-cookbook/internal/commands/threads"
	"github.com/goliatone/go-cookbook/internal/routes"
	"github.com/goliatone/go-cookbook/internal/threads"
	"github.com/goliatone/go-cookbook/pkg/interfaces"
)

type recordingNavigator struct {
	mu      sync.Mutex
	targets []string
	err     error
}

func (n *recordingNavigator) Navigate(_ context.Context, target string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.targets = append(n.targets, target)
	return n.err
}

func (n *recordingNavigator) last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.targets) == 0 {
		return ""
	}
	return n.targets[len(n.targets)-1]
}

type noTracker struct{}

func (noTracker) SearchIssues(context.Context, string) ([]interfaces.TrackerItem, error) {
	return nil, nil
}

func (noTracker) ListComments(context.Context, string, string, int) ([]interfaces.TrackerComment, error) {
	return nil, nil
}

func newResolver() *threads.Resolver {
	r := routes.New(routes.DefaultConfig(routes.Bases{
		API:  "https://api.github.com",
		Raw:  "https://raw.githubusercontent.com",
		Web:  "https://github.com",
		Site: "/",
	}))
	return threads.NewResolver(noTracker{}, r, threads.DefaultConfig())
}

func intPtr(v int) *int { return &v }

func TestOpenComposerNavigatesToReplyBox(t *testing.T) {
	nav := &recordingNavigator{}
	handler := threadscmd.NewOpenComposerHandler(newResolver(), nav, nil)

	err := handler.Execute(context.Background(), threadscmd.OpenComposerCommand{
		Owner: "octo", Store: "kitchen", ContentID: "pancakes", ThreadID: intPtr(7),
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got, want := nav.last(), "https://github.com/octo/kitchen/issues/7#new_comment_field"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestOpenComposerNavigatesToNewThreadForm(t *testing.T) {
	nav := &recordingNavigator{}
	handler := threadscmd.NewOpenComposerHandler(newResolver(), nil, nil)

	ctx := threadscmd.WithNavigator(context.Background(), nav)
	err := handler.Execute(ctx, threadscmd.OpenComposerCommand{
		Owner: "octo", Store: "kitchen", ContentID: "pancakes", Title: "Pancakes",
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	target := nav.last()
	if !strings.HasPrefix(target, "https://github.com/octo/kitchen/issues/new?") {
		t.Fatalf("unexpected target %q", target)
	}
	if !strings.Contains(target, "labels=recipe-comment") {
		t.Fatalf("expected label in target, got %q", target)
	}
}

func TestOpenComposerRejectsInvalidMessages(t *testing.T) {
	nav := &recordingNavigator{}
	handler := threadscmd.NewOpenComposerHandler(newResolver(), nav, nil)

	cases := map[string]threadscmd.OpenComposerCommand{
		"missing owner":    {Store: "kitchen", ContentID: "pancakes"},
		"blank content id": {Owner: "octo", Store: "kitchen", ContentID: "  "},
		"zero thread":      {Owner: "octo", Store: "kitchen", ContentID: "pancakes", ThreadID: intPtr(0)},
	}
	for name, msg := range cases {
		t.Run(name, func(t *testing.T) {
			err := handler.Execute(context.Background(), msg)
			if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
	if len(nav.targets) != 0 {
		t.Fatalf("expected no navigation, got %v", nav.targets)
	}
}

func TestOpenComposerWithoutNavigator(t *testing.T) {
	handler := threadscmd.NewOpenComposerHandler(newResolver(), nil, nil)

	err := handler.Execute(context.Background(), threadscmd.OpenComposerCommand{
		Owner: "octo", Store: "kitchen", ContentID: "pancakes",
	})
	if !errors.Is(err, threadscmd.ErrNavigatorMissing) {
		t.Fatalf("expected ErrNavigatorMissing, got %v", err)
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestOpenComposerPropagatesNavigationFailure(t *testing.T) {
	navErr := errors.New("popup blocked")
	handler := threadscmd.NewOpenComposerHandler(newResolver(), &recordingNavigator{err: navErr}, nil)

	err := handler.Execute(context.Background(), threadscmd.OpenComposerCommand{
		Owner: "octo", Store: "kitchen", ContentID: "pancakes",
	})
	if !errors.Is(err, navErr) {
		t.Fatalf("expected navigation error in chain, got %v", err)
	}
}

func TestRegisterThreadCommands(t *testing.T) {
	reg := fixtures.NewRecordingRegistry()
	set, err := threadscmd.RegisterThreadCommands(reg, newResolver(), nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if set.OpenComposer == nil {
		t.Fatal("expected open composer handler")
	}
	if len(reg.Handlers) != 1 || reg.Handlers[0] != any(set.OpenComposer) {
		t.Fatalf("expected the open composer handler to be registered, got %v", reg.Handlers)
	}

	failing := fixtures.NewRecordingRegistry()
	failing.Err = errors.New("duplicate handler")
	if _, err := threadscmd.RegisterThreadCommands(failing, newResolver(), nil); !errors.Is(err, failing.Err) {
		t.Fatalf("expected registry error, got %v", err)
	}

	if _, err := threadscmd.RegisterThreadCommands(nil, nil, nil); err == nil {
		t.Fatal("expected error for nil composer")
	}
}

func TestOpenComposerThroughDispatcher(t *testing.T) {
	nav := &recordingNavigator{}
	handler := threadscmd.NewOpenComposerHandler(newResolver(), nav, nil)

	sub := dispatcher.SubscribeCommand(handler, runner.WithMaxRetries(0))
	t.Cleanup(sub.Unsubscribe)

	err := dispatcher.Dispatch(context.Background(), threadscmd.OpenComposerCommand{
		Owner: "octo", Store: "kitchen", ContentID: "pancakes", ThreadID: intPtr(12),
	})
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if got, want := nav.last(), "https://github.com/octo/kitchen/issues/12#new_comment_field"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}
