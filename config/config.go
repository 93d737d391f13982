package config

import (
	"errors"
	"os"

	"github.com/crosscheck-ai/crosscheck/pkg/mailer"
	"github.com/crosscheck-ai/crosscheck/pkg/provider"
	"github.com/crosscheck-ai/crosscheck/pkg/tool"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string
	Token   string

	completers map[string]provider.Completer
	tools      map[string]tool.Tool

	mailer *mailer.Mailer

	file *configFile
}

type configFile struct {
	Server serverConfig `yaml:"server"`

	AWS  awsConfig  `yaml:"aws"`
	Mail mailConfig `yaml:"mail"`

	Completers map[string]completerConfig `yaml:"completers"`

	Agents map[string]agentConfig `yaml:"agents"`
	Tasks  []taskConfig           `yaml:"tasks"`
}

type serverConfig struct {
	Address string `yaml:"address"`
	Token   string `yaml:"token"`
}

type awsConfig struct {
	Region string `yaml:"region"`
	Bucket string `yaml:"bucket"`
}

type mailConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	Username string `yaml:"username"`
	Password string `yaml:"password"`

	From string `yaml:"from"`
}

func FromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	var file configFile

	// Secrets reference the environment as ${VAR}.
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &file); err != nil {
		return nil, err
	}

	cfg := &Config{
		Address: file.Server.Address,
		Token:   file.Server.Token,

		completers: map[string]provider.Completer{},
		tools:      map[string]tool.Tool{},

		file: &file,
	}

	if cfg.Address == "" {
		cfg.Address = ":8080"
	}

	if err := cfg.registerCompleters(&file); err != nil {
		return nil, err
	}

	if err := cfg.registerTools(&file); err != nil {
		return nil, err
	}

	if err := cfg.registerMailer(&file); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) RegisterCompleter(id string, completer provider.Completer) {
	cfg.completers[id] = completer
}

func (cfg *Config) Completer(id string) (provider.Completer, error) {
	if completer, ok := cfg.completers[id]; ok {
		return completer, nil
	}

	return nil, errors.New("unknown completer: " + id)
}

func (cfg *Config) RegisterTool(t tool.Tool) {
	cfg.tools[t.Name()] = t
}

func (cfg *Config) Tool(name string) (tool.Tool, error) {
	if t, ok := cfg.tools[name]; ok {
		return t, nil
	}

	return nil, errors.New("unknown tool: " + name)
}

// Mailer returns the configured mailer, or nil when mail delivery is not
// configured.
func (cfg *Config) Mailer() *mailer.Mailer {
	return cfg.mailer
}

func (cfg *Config) registerMailer(f *configFile) error {
	if f.Mail.Host == "" {
		return nil
	}

	m, err := mailer.New(f.Mail.Host, f.Mail.Port, f.Mail.From,
		mailer.WithCredentials(f.Mail.Username, f.Mail.Password),
	)

	if err != nil {
		return err
	}

	cfg.mailer = m

	return nil
}
