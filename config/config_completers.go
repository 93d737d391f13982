package config

import (
	"errors"
	"strings"

	"github.com/crosscheck-ai/crosscheck/pkg/otel"
	"github.com/crosscheck-ai/crosscheck/pkg/provider"
	"github.com/crosscheck-ai/crosscheck/pkg/provider/anthropic"
	"github.com/crosscheck-ai/crosscheck/pkg/provider/openai"
	"github.com/crosscheck-ai/crosscheck/pkg/provider/roundrobin"
)

type completerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`
	Model string `yaml:"model"`

	// Routes names other completers; used by the roundrobin type.
	Routes []string `yaml:"routes"`
}

func (cfg *Config) registerCompleters(f *configFile) error {
	// Round-robin groups reference other completers, so they register last.
	for id, config := range f.Completers {
		if strings.EqualFold(config.Type, "roundrobin") {
			continue
		}

		completer, err := createCompleter(id, config)

		if err != nil {
			return err
		}

		cfg.RegisterCompleter(id, otel.NewCompleter(config.Type, id, completer))
	}

	for id, config := range f.Completers {
		if !strings.EqualFold(config.Type, "roundrobin") {
			continue
		}

		var completers []provider.Completer

		for _, route := range config.Routes {
			completer, err := cfg.Completer(route)

			if err != nil {
				return err
			}

			completers = append(completers, completer)
		}

		completer, err := roundrobin.NewCompleter(completers...)

		if err != nil {
			return err
		}

		cfg.RegisterCompleter(id, completer)
	}

	return nil
}

func createCompleter(id string, config completerConfig) (provider.Completer, error) {
	model := config.Model

	if model == "" {
		model = id
	}

	switch strings.ToLower(config.Type) {
	case "openai":
		return openai.NewCompleter(config.URL, model, openai.WithToken(config.Token))

	case "anthropic":
		return anthropic.NewCompleter(config.URL, model, anthropic.WithToken(config.Token))

	default:
		return nil, errors.New("invalid completer type: " + config.Type)
	}
}
