package gologger

import (
	"context"
	"maps"
	"testing"

	glog "github.com/goliatone/go-logger/glog"
)

func TestNewProviderRejectsUnknownFormat(t *testing.T) {
	if _, err := NewProvider(Config{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewProviderBuildsNamedLoggers(t *testing.T) {
	p, err := NewProvider(Config{Level: "warning", Format: "console", Focus: []string{" cookbook.recipes ", ""}})
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	logger := p.GetLogger("cookbook.recipes")
	if logger == nil {
		t.Fatal("expected logger")
	}
	logger.WithFields(map[string]any{"recipe_id": "pancakes"}).Debug("adapter.ready")
}

func TestNilProviderReturnsNoOp(t *testing.T) {
	var p *Provider
	p.GetLogger("anything").Info("dropped")
}

func TestAdapterDelegates(t *testing.T) {
	stub := &stubLogger{}
	logger := adapt(stub)

	logger.Trace("t")
	logger.Info("i")
	logger.Error("e")

	fields := map[string]any{"recipe_id": "pancakes"}
	logger.WithFields(fields)
	fields["recipe_id"] = "waffles"

	ctx := context.WithValue(context.Background(), struct{}{}, "v")
	logger.WithContext(ctx)

	if got := len(stub.calls); got != 3 {
		t.Fatalf("expected 3 calls, got %d", got)
	}
	if len(stub.fields) != 1 || stub.fields[0]["recipe_id"] != "pancakes" {
		t.Fatalf("expected cloned fields, got %v", stub.fields)
	}
	if len(stub.contexts) != 1 || stub.contexts[0] != ctx {
		t.Fatalf("expected context propagation")
	}
}

type stubLogger struct {
	calls    []string
	fields   []map[string]any
	contexts []context.Context
}

var (
	_ glog.Logger       = (*stubLogger)(nil)
	_ glog.FieldsLogger = (*stubLogger)(nil)
)

func (s *stubLogger) Trace(string, ...any) { s.calls = append(s.calls, "trace") }
func (s *stubLogger) Debug(string, ...any) { s.calls = append(s.calls, "debug") }
func (s *stubLogger) Info(string, ...any)  { s.calls = append(s.calls, "info") }
func (s *stubLogger) Warn(string, ...any)  { s.calls = append(s.calls, "warn") }
func (s *stubLogger) Error(string, ...any) { s.calls = append(s.calls, "error") }
func (s *stubLogger) Fatal(string, ...any) { s.calls = append(s.calls, "fatal") }

func (s *stubLogger) WithContext(ctx context.Context) glog.Logger {
	s.contexts = append(s.contexts, ctx)
	return s
}

func (s *stubLogger) WithFields(fields map[string]any) glog.Logger {
	s.fields = append(s.fields, maps.Clone(fields))
	return s
}
