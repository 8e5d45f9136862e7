package command

import (
	"strings"

	"github.com/c360studio/semworld/world"
)

// HelpHandler lists the commands registered in a registry.
type HelpHandler struct {
	Registry *Registry
}

// Config returns the registration data.
func (HelpHandler) Config() Config {
	return Config{
		Name:        "help",
		Aliases:     []string{"?", "commands"},
		Description: "List available commands",
	}
}

// Execute renders one line per registered handler with its aliases and
// description.
func (h HelpHandler) Execute(m *world.Model, actor world.ID, args []string) Result {
	var sb strings.Builder
	sb.WriteString("Available commands:")
	for _, handler := range h.Registry.Handlers() {
		cfg := handler.Config()
		sb.WriteString("\n  " + cfg.Name)
		if len(cfg.Aliases) > 0 {
			sb.WriteString(" (" + strings.Join(cfg.Aliases, ", ") + ")")
		}
		if cfg.Description != "" {
			sb.WriteString(" - " + cfg.Description)
		}
	}
	return Success("%s", sb.String())
}
