package v0

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/fermm870-del/prompt-system-pro/internal/service"
	"github.com/fermm870-del/prompt-system-pro/pkg/models"
	"github.com/fermm870-del/prompt-system-pro/pkg/types"
)

// PromptPathInput identifies one prompt by its path segments.
type PromptPathInput struct {
	Category string `path:"category" doc:"Category name" example:"backend"`
	Name     string `path:"name" doc:"Prompt name" example:"nodejs-api"`
}

// CreatePromptRequest is the body for creating or overwriting a prompt.
// Field presence is checked by the service so a missing field reports 400,
// not a schema validation error.
type CreatePromptRequest struct {
	Category string `json:"category,omitempty" doc:"Category to store the prompt under" example:"backend"`
	Name     string `json:"name,omitempty" doc:"Prompt name, sanitized on write" example:"My API Prompt"`
	Content  string `json:"content,omitempty" doc:"Template text"`
}

// CreatePromptInput wraps the request body.
type CreatePromptInput struct {
	Body CreatePromptRequest `body:""`
}

// CreatePromptBody acknowledges a write with the resulting id.
type CreatePromptBody struct {
	Success bool   `json:"success" example:"true"`
	ID      string `json:"id" doc:"Composite id of the stored prompt" example:"backend/my-api-prompt"`
}

// RegisterPromptsEndpoints registers the prompt CRUD endpoints under pathPrefix.
func RegisterPromptsEndpoints(api huma.API, pathPrefix string, svc service.PromptService) {
	tags := []string{"prompts"}

	// List categories with their prompts
	huma.Register(api, huma.Operation{
		OperationID: "list-prompts",
		Method:      http.MethodGet,
		Path:        pathPrefix + "/prompts",
		Summary:     "List prompt categories",
		Description: "Get every category with its prompt summaries. Unreadable storage yields an empty list.",
		Tags:        tags,
	}, func(ctx context.Context, _ *struct{}) (*types.Response[[]models.Category], error) {
		return &types.Response[[]models.Category]{Body: svc.ListCategories(ctx)}, nil
	})

	// Get one prompt with content
	huma.Register(api, huma.Operation{
		OperationID: "get-prompt",
		Method:      http.MethodGet,
		Path:        pathPrefix + "/prompts/{category}/{name}",
		Summary:     "Get prompt",
		Description: "Get a single prompt including its full content",
		Tags:        tags,
	}, func(ctx context.Context, input *PromptPathInput) (*types.Response[models.Prompt], error) {
		prompt, err := svc.GetPrompt(ctx, input.Category, input.Name)
		if err != nil {
			return nil, mapStoreError(err, "Prompt not found")
		}
		return &types.Response[models.Prompt]{Body: *prompt}, nil
	})

	// Create or overwrite a prompt
	huma.Register(api, huma.Operation{
		OperationID: "create-prompt",
		Method:      http.MethodPost,
		Path:        pathPrefix + "/prompts",
		Summary:     "Create prompt",
		Description: "Write a prompt, creating its category if needed. An existing prompt at the same path is overwritten.",
		Tags:        tags,
	}, func(ctx context.Context, input *CreatePromptInput) (*types.Response[CreatePromptBody], error) {
		id, err := svc.CreatePrompt(ctx, input.Body.Category, input.Body.Name, input.Body.Content)
		if err != nil {
			return nil, mapStoreError(err, "Prompt not found")
		}
		return &types.Response[CreatePromptBody]{
			Body: CreatePromptBody{Success: true, ID: id},
		}, nil
	})

	// Delete a prompt
	huma.Register(api, huma.Operation{
		OperationID: "delete-prompt",
		Method:      http.MethodDelete,
		Path:        pathPrefix + "/prompts/{category}/{name}",
		Summary:     "Delete prompt",
		Description: "Remove a single prompt. The category directory stays, even when empty.",
		Tags:        tags,
	}, func(ctx context.Context, input *PromptPathInput) (*types.Response[types.EmptyResponse], error) {
		if err := svc.DeletePrompt(ctx, input.Category, input.Name); err != nil {
			return nil, mapStoreError(err, "Prompt not found")
		}
		return &types.Response[types.EmptyResponse]{
			Body: types.EmptyResponse{Success: true},
		}, nil
	})
}
