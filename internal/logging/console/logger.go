// Package console provides a dependency-free logfmt style logger used by the
// cookbook CLI when no structured backend is configured.
package console

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-cookbook/internal/logging"
	"github.com/goliatone/go-cookbook/pkg/interfaces"
)

// Level is the severity attached to an entry.
type Level uint8

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "INFO"
}

// ParseLevel maps a configuration value such as "warn" onto a Level. Unknown
// values resolve to LevelInfo and false.
func ParseLevel(value string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "trace":
		return LevelTrace, true
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	case "fatal":
		return LevelFatal, true
	}
	return LevelInfo, false
}

// Options configures the provider. Zero values write DEBUG and above to stdout.
type Options struct {
	Writer io.Writer
	Now    func() time.Time
	// Level is parsed with ParseLevel; empty means debug.
	Level string
	// Quiet raises the threshold to LevelWarn regardless of Level.
	Quiet bool
}

type sink struct {
	mu    sync.Mutex
	out   io.Writer
	now   func() time.Time
	floor Level
}

func (s *sink) write(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// best effort
	_, _ = io.WriteString(s.out, line)
}

// Provider hands out console loggers sharing one writer.
type Provider struct {
	sink *sink
}

// NewProvider builds a console provider from opts.
func NewProvider(opts Options) *Provider {
	s := &sink{out: opts.Writer, now: opts.Now, floor: LevelDebug}
	if s.out == nil {
		s.out = os.Stdout
	}
	if s.now == nil {
		s.now = time.Now
	}
	if level, ok := ParseLevel(opts.Level); ok {
		s.floor = level
	}
	if opts.Quiet && s.floor < LevelWarn {
		s.floor = LevelWarn
	}
	return &Provider{sink: s}
}

var _ interfaces.LoggerProvider = (*Provider)(nil)

// GetLogger returns a logger tagged with name.
func (p *Provider) GetLogger(name string) interfaces.Logger {
	return &logger{sink: p.sink, fields: map[string]any{"logger": name}}
}

type logger struct {
	sink   *sink
	fields map[string]any
	ctx    context.Context
}

var (
	_ interfaces.Logger       = (*logger)(nil)
	_ interfaces.FieldsLogger = (*logger)(nil)
)

func (l *logger) Trace(msg string, args ...any) { l.emit(LevelTrace, msg, args) }
func (l *logger) Debug(msg string, args ...any) { l.emit(LevelDebug, msg, args) }
func (l *logger) Info(msg string, args ...any)  { l.emit(LevelInfo, msg, args) }
func (l *logger) Warn(msg string, args ...any)  { l.emit(LevelWarn, msg, args) }
func (l *logger) Error(msg string, args ...any) { l.emit(LevelError, msg, args) }
func (l *logger) Fatal(msg string, args ...any) { l.emit(LevelFatal, msg, args) }

func (l *logger) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}
	next := maps.Clone(l.fields)
	if next == nil {
		next = map[string]any{}
	}
	maps.Copy(next, fields)
	return &logger{sink: l.sink, fields: next, ctx: l.ctx}
}

func (l *logger) WithContext(ctx context.Context) interfaces.Logger {
	return &logger{sink: l.sink, fields: l.fields, ctx: ctx}
}

func (l *logger) emit(level Level, msg string, args []any) {
	if l.sink == nil || level < l.sink.floor {
		return
	}
	fields := maps.Clone(l.fields)
	if fields == nil {
		fields = map[string]any{}
	}
	maps.Copy(fields, logging.ContextFields(l.ctx))
	pairFields(fields, args)

	l.sink.write(render(l.sink.now().UTC(), level, msg, fields))
}

// pairFields folds key/value args into dst. Values without a string key are
// stored positionally as arg_N so nothing is dropped.
func pairFields(dst map[string]any, args []any) {
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if i+1 >= len(args) {
			dst["arg_"+strconv.Itoa(i)] = args[i]
			return
		}
		if !ok || key == "" {
			dst["arg_"+strconv.Itoa(i)] = args[i+1]
			continue
		}
		dst[key] = args[i+1]
	}
}

func render(ts time.Time, level Level, msg string, fields map[string]any) string {
	var b strings.Builder
	b.WriteString(ts.Format(time.RFC3339Nano))
	b.WriteByte(' ')
	b.WriteString(level.String())
	b.WriteByte(' ')
	b.WriteString(msg)
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(formatValue(fields[key]))
	}
	b.WriteByte('\n')
	return b.String()
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return quote(v)
	case time.Time:
		return v.UTC().Format(time.RFC3339Nano)
	case error:
		return quote(v.Error())
	case fmt.Stringer:
		return quote(v.String())
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return quote(fmt.Sprint(v))
	}
}

func quote(value string) string {
	if value == "" {
		return `""`
	}
	if strings.ContainsFunc(value, func(r rune) bool { return r <= ' ' || r == '=' || r == '"' }) {
		return strconv.Quote(value)
	}
	return value
}
