// Package llm adapts the external completion provider behind a small
// gateway. Any OpenAI-compatible endpoint works; the reference deployment
// targets Groq.
package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/fermm870-del/prompt-system-pro/pkg/models"
)

// Options configures a Gateway.
type Options struct {
	BaseURL     string
	APIKey      string
	Temperature float64
	MaxTokens   int
	// Timeout bounds each provider call. The provider is the only unbounded
	// external dependency, so every call runs under context.WithTimeout.
	Timeout time.Duration
}

// Gateway turns a role-tagged message sequence into generated text. It holds
// no state between calls and performs no retries: a failed call surfaces
// immediately.
type Gateway struct {
	llm  llms.Model
	opts Options
}

// New creates a Gateway against an OpenAI-compatible endpoint.
func New(opts Options) (*Gateway, error) {
	client, err := openai.New(
		openai.WithToken(opts.APIKey),
		openai.WithBaseURL(opts.BaseURL),
	)
	if err != nil {
		return nil, fmt.Errorf("creating completion client: %w", err)
	}
	return &Gateway{llm: client, opts: opts}, nil
}

// Complete sends the message sequence to the provider and returns the single
// completion text. The model is chosen per call; temperature and token limit
// are fixed at construction.
func (g *Gateway) Complete(ctx context.Context, messages []models.Message, model string) (string, error) {
	content := make([]llms.MessageContent, 0, len(messages))
	for _, m := range messages {
		content = append(content, llms.TextParts(messageType(m.Role), m.Content))
	}

	ctx, cancel := context.WithTimeout(ctx, g.opts.Timeout)
	defer cancel()

	resp, err := g.llm.GenerateContent(ctx, content,
		llms.WithModel(model),
		llms.WithTemperature(g.opts.Temperature),
		llms.WithMaxTokens(g.opts.MaxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("completion call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion provider returned no choices")
	}
	return resp.Choices[0].Content, nil
}

func messageType(role string) llms.ChatMessageType {
	switch role {
	case models.RoleSystem:
		return llms.ChatMessageTypeSystem
	case models.RoleAssistant:
		return llms.ChatMessageTypeAI
	case models.RoleUser:
		return llms.ChatMessageTypeHuman
	default:
		return llms.ChatMessageTypeGeneric
	}
}
