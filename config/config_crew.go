package config

import (
	"errors"
	"log/slog"

	"github.com/crosscheck-ai/crosscheck/pkg/crew"
)

type agentConfig struct {
	Role      string `yaml:"role"`
	Goal      string `yaml:"goal"`
	Backstory string `yaml:"backstory"`

	Model       string   `yaml:"model"`
	Temperature *float32 `yaml:"temperature"`

	Tools []string `yaml:"tools"`
}

type taskConfig struct {
	Name string `yaml:"name"`

	Description    string `yaml:"description"`
	ExpectedOutput string `yaml:"expected_output"`

	Agent string `yaml:"agent"`
}

// HasCrew reports whether the configuration defines an agent pipeline.
func (cfg *Config) HasCrew() bool {
	return len(cfg.file.Tasks) > 0
}

// BuildCrew assembles the sequential pipeline from the configured agents and
// tasks. Task order in the file is execution order.
func (cfg *Config) BuildCrew(logger *slog.Logger) (*crew.Crew, error) {
	agents := map[string]*crew.Agent{}

	for name, config := range cfg.file.Agents {
		completer, err := cfg.Completer(config.Model)

		if err != nil {
			return nil, err
		}

		agent := &crew.Agent{
			Name: name,

			Role:      config.Role,
			Goal:      config.Goal,
			Backstory: config.Backstory,

			Completer:   completer,
			Temperature: config.Temperature,
		}

		for _, name := range config.Tools {
			t, err := cfg.Tool(name)

			if err != nil {
				return nil, err
			}

			agent.Tools = append(agent.Tools, t)
		}

		agents[name] = agent
	}

	var tasks []crew.Task

	for _, config := range cfg.file.Tasks {
		agent, ok := agents[config.Agent]

		if !ok {
			return nil, errors.New("unknown agent: " + config.Agent)
		}

		tasks = append(tasks, crew.Task{
			Name: config.Name,

			Description:    config.Description,
			ExpectedOutput: config.ExpectedOutput,

			Agent: agent,
		})
	}

	return crew.New(tasks, crew.WithLogger(logger))
}
