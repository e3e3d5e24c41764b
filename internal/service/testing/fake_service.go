// Package testing provides test utilities for the prompt service.
package testing

import (
	"context"

	"github.com/fermm870-del/prompt-system-pro/internal/store"
	"github.com/fermm870-del/prompt-system-pro/pkg/models"
)

// FakeService is a configurable fake implementation of service.PromptService
// for handler tests. It supports data-driven setup via struct fields and
// function hooks for custom behavior.
type FakeService struct {
	// Data fields for simple data-driven tests
	Categories []models.Category
	Prompts    map[string]*models.Prompt // keyed by "category/name"
	Results    []models.SearchResult

	// Function hooks (take precedence over data fields when set)
	ListCategoriesFn func(ctx context.Context) []models.Category
	GetPromptFn      func(ctx context.Context, category, name string) (*models.Prompt, error)
	CreatePromptFn   func(ctx context.Context, category, name, content string) (string, error)
	DeletePromptFn   func(ctx context.Context, category, name string) error
	SearchFn         func(ctx context.Context, query string) []models.SearchResult
	GenerateFn       func(ctx context.Context, promptID, userRequest, model string) (*models.GenerationResult, error)
	ChatFn           func(ctx context.Context, transcript []models.Message, promptID string) (string, error)
}

// NewFakeService creates a FakeService with initialized maps.
func NewFakeService() *FakeService {
	return &FakeService{Prompts: make(map[string]*models.Prompt)}
}

func (f *FakeService) ListCategories(ctx context.Context) []models.Category {
	if f.ListCategoriesFn != nil {
		return f.ListCategoriesFn(ctx)
	}
	if f.Categories == nil {
		return []models.Category{}
	}
	return f.Categories
}

func (f *FakeService) GetPrompt(ctx context.Context, category, name string) (*models.Prompt, error) {
	if f.GetPromptFn != nil {
		return f.GetPromptFn(ctx, category, name)
	}
	p, ok := f.Prompts[category+"/"+name]
	if !ok {
		return nil, store.ErrNotFound
	}
	return p, nil
}

func (f *FakeService) CreatePrompt(ctx context.Context, category, name, content string) (string, error) {
	if f.CreatePromptFn != nil {
		return f.CreatePromptFn(ctx, category, name, content)
	}
	if category == "" || name == "" || content == "" {
		return "", store.ErrInvalidInput
	}
	id := store.Sanitize(category) + "/" + store.Sanitize(name)
	f.Prompts[id] = &models.Prompt{
		ID:       id,
		Category: store.Sanitize(category),
		Name:     store.Sanitize(name),
		Content:  content,
	}
	return id, nil
}

func (f *FakeService) DeletePrompt(ctx context.Context, category, name string) error {
	if f.DeletePromptFn != nil {
		return f.DeletePromptFn(ctx, category, name)
	}
	id := category + "/" + name
	if _, ok := f.Prompts[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.Prompts, id)
	return nil
}

func (f *FakeService) Search(ctx context.Context, query string) []models.SearchResult {
	if f.SearchFn != nil {
		return f.SearchFn(ctx, query)
	}
	if query == "" || f.Results == nil {
		return []models.SearchResult{}
	}
	return f.Results
}

func (f *FakeService) Generate(ctx context.Context, promptID, userRequest, model string) (*models.GenerationResult, error) {
	if f.GenerateFn != nil {
		return f.GenerateFn(ctx, promptID, userRequest, model)
	}
	if userRequest == "" {
		return nil, store.ErrInvalidInput
	}
	return &models.GenerationResult{Response: "ok", Model: model, PromptUsed: "default"}, nil
}

func (f *FakeService) Chat(ctx context.Context, transcript []models.Message, promptID string) (string, error) {
	if f.ChatFn != nil {
		return f.ChatFn(ctx, transcript, promptID)
	}
	return "ok", nil
}
