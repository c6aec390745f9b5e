package commands

import (
	"context"
	"testing"

	"github.com/goliatone/go-cookbook/pkg/interfaces"
)

type fieldsLogger struct {
	fields map[string]any
}

func (l *fieldsLogger) Trace(string, ...any) {}
func (l *fieldsLogger) Debug(string, ...any) {}
func (l *fieldsLogger) Info(string, ...any)  {}
func (l *fieldsLogger) Warn(string, ...any)  {}
func (l *fieldsLogger) Error(string, ...any) {}
func (l *fieldsLogger) Fatal(string, ...any) {}

func (l *fieldsLogger) WithFields(fields map[string]any) interfaces.Logger {
	if l.fields == nil {
		l.fields = map[string]any{}
	}
	for key, value := range fields {
		l.fields[key] = value
	}
	return l
}

func (l *fieldsLogger) WithContext(context.Context) interfaces.Logger { return l }

type namedProvider struct {
	names  []string
	logger *fieldsLogger
}

func (p *namedProvider) GetLogger(name string) interfaces.Logger {
	p.names = append(p.names, name)
	return p.logger
}

func TestCommandLoggerNamesGroup(t *testing.T) {
	cases := map[string]string{
		"threads":   "threads",
		" Threads ": "threads",
		"":          defaultGroup,
	}
	for input, group := range cases {
		provider := &namedProvider{logger: &fieldsLogger{}}
		CommandLogger(provider, input)

		if len(provider.names) != 1 || provider.names[0] != "cookbook.commands."+group {
			t.Fatalf("%q: unexpected logger names %v", input, provider.names)
		}
		fields := provider.logger.fields
		if fields["command_group"] != group || fields["component"] != "command" || fields["module"] != "cookbook.commands."+group {
			t.Fatalf("%q: unexpected fields %v", input, fields)
		}
	}
}
