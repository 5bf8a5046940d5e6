// Package llm wraps the chat completion capability used to synthesize
// grounded answers.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// ErrEmptyCompletion is returned when the model produces no content.
var ErrEmptyCompletion = errors.New("model returned empty completion")

// Generator produces a completion for a system/user message pair.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// ChatGenerator calls an OpenAI-compatible chat model through eino.
type ChatGenerator struct {
	chatModel model.ToolCallingChatModel
	timeout   time.Duration
}

// NewChatGenerator builds the chat model client. The API key is required; a
// missing key is reported here so startup logs carry a clear configuration
// error instead of every request failing the same way. Every completion call
// is bounded by timeout; a hung provider degrades instead of pinning the
// request.
func NewChatGenerator(ctx context.Context, apiKey, baseURL, modelName string, timeout time.Duration) (*ChatGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("generation API key not configured")
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	temperature := float32(0.2)
	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:      apiKey,
		Model:       modelName,
		BaseURL:     baseURL,
		Temperature: &temperature,
		Timeout:     timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("create chat model: %w", err)
	}
	return &ChatGenerator{chatModel: cm, timeout: timeout}, nil
}

func (g *ChatGenerator) Generate(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	messages := []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(user),
	}
	resp, err := g.chatModel.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	content := strings.TrimSpace(resp.Content)
	if content == "" {
		return "", ErrEmptyCompletion
	}
	return content, nil
}
