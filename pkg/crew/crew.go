package crew

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/crosscheck-ai/crosscheck/pkg/provider"
)

// Crew runs its tasks sequentially. Each task sees the outputs of the tasks
// before it, so extraction feeds analysis feeds reporting.
type Crew struct {
	tasks []Task

	logger *slog.Logger
}

type Option func(*Crew)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Crew) {
		c.logger = logger
	}
}

func New(tasks []Task, options ...Option) (*Crew, error) {
	c := &Crew{
		tasks: tasks,
	}

	for _, option := range options {
		option(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	for _, task := range tasks {
		if task.Agent == nil {
			return nil, fmt.Errorf("task %q has no agent", task.Name)
		}

		if task.Agent.Completer == nil {
			return nil, fmt.Errorf("agent %q has no completer", task.Agent.Name)
		}
	}

	return c, nil
}

// Result carries the per-task outputs and the output of the last task.
type Result struct {
	Outputs map[string]string

	Final string
}

func (c *Crew) Kickoff(ctx context.Context, inputs map[string]string) (*Result, error) {
	result := &Result{
		Outputs: make(map[string]string, len(c.tasks)),
	}

	var history []string

	for _, task := range c.tasks {
		c.logger.Info("running task", "task", task.Name, "agent", task.Agent.Name)

		output, err := c.runTask(ctx, task, inputs, history)

		if err != nil {
			return nil, fmt.Errorf("task %q: %w", task.Name, err)
		}

		result.Outputs[task.Name] = output
		result.Final = output

		history = append(history, output)
	}

	return result, nil
}

func (c *Crew) runTask(ctx context.Context, task Task, inputs map[string]string, history []string) (string, error) {
	agent := task.Agent

	var user strings.Builder

	user.WriteString(interpolate(task.Description, inputs))

	for _, t := range agent.Tools {
		c.logger.Info("running tool", "task", task.Name, "tool", t.Name())

		output := t.Run(ctx, inputs)

		user.WriteString("\n\n## Result of " + t.Name() + "\n\n")
		user.WriteString(output)
	}

	if len(history) > 0 {
		user.WriteString("\n\n## Context from previous tasks\n\n")
		user.WriteString(strings.Join(history, "\n\n---\n\n"))
	}

	if task.ExpectedOutput != "" {
		user.WriteString("\n\n## Expected output\n\n")
		user.WriteString(interpolate(task.ExpectedOutput, inputs))
	}

	messages := []provider.Message{
		provider.SystemMessage(agent.prompt()),
		provider.UserMessage(user.String()),
	}

	options := &provider.CompleteOptions{
		Temperature: agent.Temperature,
	}

	completion, err := agent.Completer.Complete(ctx, messages, options)

	if err != nil {
		return "", err
	}

	return completion.Message.Content, nil
}

// interpolate fills {placeholder} markers in task text from the run inputs.
func interpolate(text string, inputs map[string]string) string {
	for key, value := range inputs {
		text = strings.ReplaceAll(text, "{"+key+"}", value)
	}

	return text
}
