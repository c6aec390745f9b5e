package commands

import (
	"strings"

	"github.com/goliatone/go-cookbook/internal/logging"
	"github.com/goliatone/go-cookbook/pkg/interfaces"
)

const (
	commandModuleRoot = "cookbook.commands"
	defaultGroup      = "site"
)

// CommandLogger returns the logger for one group of cookbook commands,
// named cookbook.commands.<group> (cookbook.commands.threads for the
// composer). Entries carry the group so reader actions can be told apart
// from ingestion logs.
func CommandLogger(provider interfaces.LoggerProvider, group string) interfaces.Logger {
	group = strings.ToLower(strings.TrimSpace(group))
	if group == "" {
		group = defaultGroup
	}
	return logging.WithFields(
		logging.ModuleLogger(provider, commandModuleRoot+"."+group),
		map[string]any{"component": "command", "command_group": group},
	)
}
