package otel

import (
	"context"

	"github.com/crosscheck-ai/crosscheck/pkg/tool"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var _ tool.Tool = (*Tool)(nil)

type Tool struct {
	tool tool.Tool
}

func NewTool(t tool.Tool) tool.Tool {
	return &Tool{
		tool: t,
	}
}

func (t *Tool) Name() string {
	return t.tool.Name()
}

func (t *Tool) Description() string {
	return t.tool.Description()
}

func (t *Tool) Run(ctx context.Context, inputs map[string]string) string {
	ctx, span := otel.Tracer("crosscheck").Start(ctx, "tool "+t.tool.Name())
	defer span.End()

	span.SetAttributes(attribute.String("tool", t.tool.Name()))

	return t.tool.Run(ctx, inputs)
}
