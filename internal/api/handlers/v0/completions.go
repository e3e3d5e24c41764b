package v0

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/fermm870-del/prompt-system-pro/internal/service"
	"github.com/fermm870-del/prompt-system-pro/internal/store"
	"github.com/fermm870-del/prompt-system-pro/pkg/models"
	"github.com/fermm870-del/prompt-system-pro/pkg/types"
)

// GenerateRequest is the body for one-shot generation.
type GenerateRequest struct {
	PromptID    string `json:"promptId,omitempty" doc:"Stored prompt to inject as the system message; silently ignored when unresolvable" example:"backend/nodejs-api"`
	UserRequest string `json:"userRequest,omitempty" doc:"The user's request text"`
	Model       string `json:"model,omitempty" doc:"Model override; defaults to the configured model"`
}

// GenerateInput wraps the request body.
type GenerateInput struct {
	Body GenerateRequest `body:""`
}

// GenerateBody carries the completion back to the caller verbatim.
type GenerateBody struct {
	Success    bool   `json:"success" example:"true"`
	Response   string `json:"response" doc:"Completion text"`
	Model      string `json:"model" doc:"Model that produced the completion"`
	PromptUsed string `json:"promptUsed" doc:"Prompt id used, or 'default'" example:"default"`
}

// ChatRequest is the body for one chat turn. The caller owns the transcript
// and resends it whole on every turn.
type ChatRequest struct {
	Messages []models.Message `json:"messages,omitempty" doc:"Full transcript so far, oldest first"`
	PromptID string           `json:"promptId,omitempty" doc:"Stored prompt to prepend as a system message; silently ignored when unresolvable"`
}

// ChatInput wraps the request body.
type ChatInput struct {
	Body ChatRequest `body:""`
}

// ChatBody carries only the completion text; the caller appends it to its
// own transcript copy.
type ChatBody struct {
	Response string `json:"response" doc:"Completion text"`
}

// RegisterCompletionEndpoints registers POST {prefix}/generate and
// POST {prefix}/chat.
func RegisterCompletionEndpoints(api huma.API, pathPrefix string, svc service.PromptService) {
	tags := []string{"completions"}

	huma.Register(api, huma.Operation{
		OperationID: "generate",
		Method:      http.MethodPost,
		Path:        pathPrefix + "/generate",
		Summary:     "One-shot generation",
		Description: "Compose a system + user message pair and return the provider's completion. No retries, no output post-processing.",
		Tags:        tags,
	}, func(ctx context.Context, input *GenerateInput) (*types.Response[GenerateBody], error) {
		result, err := svc.Generate(ctx, input.Body.PromptID, input.Body.UserRequest, input.Body.Model)
		if err != nil {
			if errors.Is(err, store.ErrInvalidInput) {
				return nil, huma.Error400BadRequest(err.Error())
			}
			return nil, huma.Error500InternalServerError("Generation failed", err)
		}
		return &types.Response[GenerateBody]{
			Body: GenerateBody{
				Success:    true,
				Response:   result.Response,
				Model:      result.Model,
				PromptUsed: result.PromptUsed,
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "chat",
		Method:      http.MethodPost,
		Path:        pathPrefix + "/chat",
		Summary:     "Chat turn",
		Description: "Run one turn over the caller-supplied transcript, optionally prepending a stored prompt as the system message.",
		Tags:        tags,
	}, func(ctx context.Context, input *ChatInput) (*types.Response[ChatBody], error) {
		response, err := svc.Chat(ctx, input.Body.Messages, input.Body.PromptID)
		if err != nil {
			return nil, huma.Error500InternalServerError("Chat completion failed", err)
		}
		return &types.Response[ChatBody]{Body: ChatBody{Response: response}}, nil
	})
}
