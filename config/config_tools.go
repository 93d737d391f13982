package config

import (
	"context"

	"github.com/crosscheck-ai/crosscheck/pkg/analyzer"
	"github.com/crosscheck-ai/crosscheck/pkg/otel"
)

func (cfg *Config) registerTools(f *configFile) error {
	options := []analyzer.Option{}

	if f.AWS.Region != "" {
		options = append(options, analyzer.WithRegion(f.AWS.Region))
	}

	if f.AWS.Bucket != "" {
		options = append(options, analyzer.WithBucket(f.AWS.Bucket))
	}

	a, err := analyzer.New(context.Background(), options...)

	if err != nil {
		return err
	}

	cfg.RegisterTool(otel.NewTool(a))

	return nil
}
