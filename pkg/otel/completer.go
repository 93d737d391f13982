package otel

import (
	"context"

	"github.com/crosscheck-ai/crosscheck/pkg/provider"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	providerType string
	model        string

	completer provider.Completer
}

func NewCompleter(providerType, model string, completer provider.Completer) provider.Completer {
	return &Completer{
		providerType: providerType,
		model:        model,

		completer: completer,
	}
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	ctx, span := otel.Tracer("crosscheck").Start(ctx, "completion")
	defer span.End()

	span.SetAttributes(
		attribute.String("provider", c.providerType),
		attribute.String("model", c.model),
	)

	completion, err := c.completer.Complete(ctx, messages, options)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	if completion.Usage != nil {
		span.SetAttributes(
			attribute.Int("tokens.input", completion.Usage.InputTokens),
			attribute.Int("tokens.output", completion.Usage.OutputTokens),
		)
	}

	return completion, nil
}
