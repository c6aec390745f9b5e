package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

type pingMessage struct {
	Name string
}

func (pingMessage) Type() string { return "cookbook.test.ping" }

func (m pingMessage) Validate() error {
	if m.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func TestHandlerExecuteSuccess(t *testing.T) {
	called := false
	h := NewHandler[pingMessage](func(ctx context.Context, msg pingMessage) error {
		called = true
		return nil
	})

	if err := h.Execute(context.Background(), pingMessage{Name: "ok"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !called {
		t.Fatal("expected handler to be invoked")
	}
}

func TestHandlerValidationShortCircuitsExecution(t *testing.T) {
	called := false
	h := NewHandler[pingMessage](func(ctx context.Context, msg pingMessage) error {
		called = true
		return nil
	})

	err := h.Execute(context.Background(), pingMessage{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if called {
		t.Fatal("expected handler not to run when validation fails")
	}
}

func TestHandlerContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	var status TelemetryStatus
	h := NewHandler[pingMessage](func(ctx context.Context, msg pingMessage) error {
		called = true
		return nil
	}, WithTelemetry[pingMessage](func(_ context.Context, _ pingMessage, info TelemetryInfo) {
		status = info.Status
	}))

	err := h.Execute(ctx, pingMessage{Name: "ok"})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	if called {
		t.Fatal("expected handler not to run when context is cancelled")
	}
	if status != TelemetryStatusContextError {
		t.Fatalf("expected context_error telemetry, got %q", status)
	}
}

func TestHandlerWrapsExecutionError(t *testing.T) {
	h := NewHandler[pingMessage](func(ctx context.Context, msg pingMessage) error {
		return errors.New("boom")
	})

	err := h.Execute(context.Background(), pingMessage{Name: "ok"})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestHandlerKeepsCategorisedErrors(t *testing.T) {
	domainErr := goerrors.Wrap(errors.New("upstream"), goerrors.CategoryExternal, "lookup failed")
	h := NewHandler[pingMessage](func(ctx context.Context, msg pingMessage) error {
		return domainErr
	})

	err := h.Execute(context.Background(), pingMessage{Name: "ok"})
	if !goerrors.IsCategory(err, goerrors.CategoryExternal) {
		t.Fatalf("expected external category to survive, got %v", err)
	}
}

func TestHandlerHonoursTimeoutOption(t *testing.T) {
	h := NewHandler[pingMessage](func(ctx context.Context, msg pingMessage) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(200 * time.Millisecond):
			return nil
		}
	}, WithTimeout[pingMessage](10*time.Millisecond))

	err := h.Execute(context.Background(), pingMessage{Name: "ok"})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category for timeout, got %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded in chain, got %v", err)
	}
}

func TestHandlerTelemetryReceivesMessageFields(t *testing.T) {
	var info TelemetryInfo
	h := NewHandler[pingMessage](func(ctx context.Context, msg pingMessage) error {
		return nil
	},
		WithOperation[pingMessage]("ping"),
		WithMessageFields[pingMessage](func(msg pingMessage) map[string]any {
			return map[string]any{"name": msg.Name}
		}),
		WithTelemetry[pingMessage](func(_ context.Context, _ pingMessage, got TelemetryInfo) {
			info = got
		}),
	)

	if err := h.Execute(context.Background(), pingMessage{Name: "pong"}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if info.Status != TelemetryStatusSuccess {
		t.Fatalf("expected success status, got %q", info.Status)
	}
	if info.Command != "cookbook.test.ping" || info.Operation != "ping" {
		t.Fatalf("unexpected telemetry identity: %+v", info)
	}
	if info.Fields["name"] != "pong" || info.Fields["command"] != "cookbook.test.ping" {
		t.Fatalf("unexpected telemetry fields: %+v", info.Fields)
	}
}
