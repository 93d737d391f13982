package openai

import (
	"context"
	"errors"

	"github.com/crosscheck-ai/crosscheck/pkg/provider"

	"github.com/openai/openai-go/v3"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Config
	client openai.Client
}

func NewCompleter(url, model string, options ...Option) (*Completer, error) {
	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Completer{
		Config: cfg,
		client: openai.NewClient(cfg.Options()...),
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	req := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),

		Messages: convertMessages(messages),
	}

	if options.Temperature != nil {
		req.Temperature = openai.Float(float64(*options.Temperature))
	}

	if options.MaxTokens != nil {
		req.MaxCompletionTokens = openai.Int(int64(*options.MaxTokens))
	}

	completion, err := c.client.Chat.Completions.New(ctx, req)

	if err != nil {
		return nil, err
	}

	if len(completion.Choices) == 0 {
		return nil, errors.New("no completion choices returned")
	}

	choice := completion.Choices[0]

	return &provider.Completion{
		ID: completion.ID,

		Model: c.model,

		Message: &provider.Message{
			Role:    provider.MessageRoleAssistant,
			Content: choice.Message.Content,
		},

		Usage: &provider.Usage{
			InputTokens:  int(completion.Usage.PromptTokens),
			OutputTokens: int(completion.Usage.CompletionTokens),
		},
	}, nil
}

func convertMessages(messages []provider.Message) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))

	for _, m := range messages {
		switch m.Role {
		case provider.MessageRoleSystem:
			result = append(result, openai.SystemMessage(m.Content))

		case provider.MessageRoleAssistant:
			result = append(result, openai.AssistantMessage(m.Content))

		default:
			result = append(result, openai.UserMessage(m.Content))
		}
	}

	return result
}
