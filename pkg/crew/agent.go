package crew

import (
	"strings"

	"github.com/crosscheck-ai/crosscheck/pkg/provider"
	"github.com/crosscheck-ai/crosscheck/pkg/tool"
)

type Tool = tool.Tool

type Agent struct {
	Name string

	Role      string
	Goal      string
	Backstory string

	Completer   provider.Completer
	Temperature *float32

	Tools []Tool
}

func (a *Agent) prompt() string {
	var parts []string

	if a.Role != "" {
		parts = append(parts, "You are "+a.Role+".")
	}

	if a.Backstory != "" {
		parts = append(parts, a.Backstory)
	}

	if a.Goal != "" {
		parts = append(parts, "Your personal goal is: "+a.Goal)
	}

	return strings.Join(parts, "\n\n")
}
