package tool

import (
	"context"
)

// Tool is a capability an agent can use during a task. Run always returns a
// textual result: failures are reported as data (an "Error ..." string), never
// as an error value, because agents consume tool output as prompt text.
type Tool interface {
	Name() string
	Description() string

	Run(ctx context.Context, inputs map[string]string) string
}
