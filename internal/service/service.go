// Package service composes the prompt store and the completion gateway
// behind the interface the API handlers consume.
package service

import (
	"context"

	"github.com/fermm870-del/prompt-system-pro/pkg/models"
)

// PromptService defines the operations exposed over the REST surface.
type PromptService interface {
	// ListCategories returns every category with its prompt summaries.
	// Fails soft: an unreadable store yields an empty slice.
	ListCategories(ctx context.Context) []models.Category
	// GetPrompt returns a prompt with its full content.
	GetPrompt(ctx context.Context, category, name string) (*models.Prompt, error)
	// CreatePrompt writes a prompt, overwriting any existing file, and
	// returns the resulting composite id.
	CreatePrompt(ctx context.Context, category, name, content string) (string, error)
	// DeletePrompt removes a single prompt.
	DeletePrompt(ctx context.Context, category, name string) error
	// Search scans the whole store for a case-insensitive substring match.
	Search(ctx context.Context, query string) []models.SearchResult
	// Generate runs a one-shot completion: stored prompt (or the default
	// system message) plus the user request. An empty model selects the
	// configured default.
	Generate(ctx context.Context, promptID, userRequest, model string) (*models.GenerationResult, error)
	// Chat runs one turn over a caller-owned transcript, optionally
	// prepending a stored prompt as the system message.
	Chat(ctx context.Context, transcript []models.Message, promptID string) (string, error)
}

// CompletionGateway is the external capability that turns a role-tagged
// message sequence into generated text.
type CompletionGateway interface {
	Complete(ctx context.Context, messages []models.Message, model string) (string, error)
}
