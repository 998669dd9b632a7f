package llm

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"portfolio-chat-backend/internal/types"
)

// ErrEmptyCompletion is returned when the provider answers without
// usable text; callers treat it like any other upstream failure.
var ErrEmptyCompletion = errors.New("completion returned no content")

// Generation parameters are fixed for every request.
const (
	maxTokens        = 500
	temperature      = 0.7
	presencePenalty  = 0.1
	frequencyPenalty = 0.1
)

type Client struct {
	api   *openai.Client
	model string
}

func NewClient(apiKey, model string) *Client {
	return &Client{api: openai.NewClient(apiKey), model: model}
}

// Complete makes exactly one chat-completion attempt and returns the
// trimmed reply text. The system instruction is always the first
// message in the sequence. The caller owns the deadline on ctx.
func (c *Client) Complete(ctx context.Context, system string, msgs []types.Message) (string, error) {
	converted := make([]openai.ChatCompletionMessage, 0, len(msgs)+1)
	converted = append(converted, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: system,
	})
	for _, m := range msgs {
		converted = append(converted, openai.ChatCompletionMessage{
			Role:    roleString(m.Role),
			Content: m.Content,
		})
	}
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:            c.model,
		Messages:         converted,
		MaxTokens:        maxTokens,
		Temperature:      temperature,
		PresencePenalty:  presencePenalty,
		FrequencyPenalty: frequencyPenalty,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}

func roleString(r types.Role) string {
	if r == types.RoleAssistant {
		return openai.ChatMessageRoleAssistant
	}
	return openai.ChatMessageRoleUser
}
