package provider

import (
	"context"
)

type Completer interface {
	Complete(ctx context.Context, messages []Message, options *CompleteOptions) (*Completion, error)
}

type Message struct {
	Role MessageRole

	Content string
}

func SystemMessage(text string) Message {
	return Message{
		Role: MessageRoleSystem,

		Content: text,
	}
}

func UserMessage(text string) Message {
	return Message{
		Role: MessageRoleUser,

		Content: text,
	}
}

func AssistantMessage(text string) Message {
	return Message{
		Role: MessageRoleAssistant,

		Content: text,
	}
}

type MessageRole string

const (
	MessageRoleSystem    MessageRole = "system"
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

type CompleteOptions struct {
	MaxTokens   *int
	Temperature *float32
}

type Completion struct {
	ID string

	Model string

	Message *Message

	Usage *Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
}
