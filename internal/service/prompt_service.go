package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fermm870-del/prompt-system-pro/internal/store"
	"github.com/fermm870-del/prompt-system-pro/internal/telemetry"
	"github.com/fermm870-del/prompt-system-pro/pkg/models"
)

// DefaultPromptMarker is reported as promptUsed when no stored prompt was
// injected into a generation call.
const DefaultPromptMarker = "default"

// defaultSystemMessage matches the reference deployment's fallback system
// prompt.
const defaultSystemMessage = "Você é um assistente de programação especialista."

// Service is the production PromptService backed by the filesystem store and
// a completion gateway.
type Service struct {
	store        *store.Store
	gateway      CompletionGateway
	metrics      *telemetry.Metrics
	logger       *zap.Logger
	defaultModel string
}

// NewService wires the store and gateway together. defaultModel is used
// whenever a call does not name one.
func NewService(st *store.Store, gw CompletionGateway, metrics *telemetry.Metrics, logger *zap.Logger, defaultModel string) *Service {
	return &Service{
		store:        st,
		gateway:      gw,
		metrics:      metrics,
		logger:       logger,
		defaultModel: defaultModel,
	}
}

func (s *Service) ListCategories(_ context.Context) []models.Category {
	return s.store.ListCategories()
}

func (s *Service) GetPrompt(_ context.Context, category, name string) (*models.Prompt, error) {
	return s.store.GetPrompt(category, name)
}

func (s *Service) CreatePrompt(_ context.Context, category, name, content string) (string, error) {
	return s.store.CreatePrompt(category, name, content)
}

func (s *Service) DeletePrompt(_ context.Context, category, name string) error {
	return s.store.DeletePrompt(category, name)
}

func (s *Service) Search(_ context.Context, query string) []models.SearchResult {
	return s.store.Search(query)
}

// systemPrompt resolves promptID to stored content, falling back to the
// default system message. A malformed or nonexistent id is treated the same
// as an absent one; only the fallback is reported.
func (s *Service) systemPrompt(promptID string) (content, used string) {
	if promptID == "" {
		return defaultSystemMessage, DefaultPromptMarker
	}
	prompt, err := s.store.Resolve(promptID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Warn("failed to resolve prompt, using default",
				zap.String("prompt_id", promptID), zap.Error(err))
		}
		return defaultSystemMessage, DefaultPromptMarker
	}
	return prompt.Content, promptID
}

func (s *Service) Generate(ctx context.Context, promptID, userRequest, model string) (*models.GenerationResult, error) {
	if userRequest == "" {
		return nil, fmt.Errorf("%w: userRequest is required", store.ErrInvalidInput)
	}
	if model == "" {
		model = s.defaultModel
	}

	system, used := s.systemPrompt(promptID)
	messages := []models.Message{
		{Role: models.RoleSystem, Content: system},
		{Role: models.RoleUser, Content: userRequest},
	}

	response, err := s.complete(ctx, messages, model)
	if err != nil {
		return nil, err
	}
	return &models.GenerationResult{
		Response:   response,
		Model:      model,
		PromptUsed: used,
	}, nil
}

// Chat runs one turn. The server holds no transcript state, so the caller
// resends full history every turn; if a stored prompt resolves it is
// prepended as a system message ahead of the whole transcript, without
// deduplicating any system message the caller already included.
func (s *Service) Chat(ctx context.Context, transcript []models.Message, promptID string) (string, error) {
	messages := transcript
	if promptID != "" {
		if prompt, err := s.store.Resolve(promptID); err == nil {
			messages = append([]models.Message{{Role: models.RoleSystem, Content: prompt.Content}}, transcript...)
		} else if !errors.Is(err, store.ErrNotFound) {
			s.logger.Warn("failed to resolve prompt, sending transcript as-is",
				zap.String("prompt_id", promptID), zap.Error(err))
		}
	}
	return s.complete(ctx, messages, s.defaultModel)
}

func (s *Service) complete(ctx context.Context, messages []models.Message, model string) (string, error) {
	start := time.Now()
	response, err := s.gateway.Complete(ctx, messages, model)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	s.metrics.CompletionSeconds.WithLabelValues(model, outcome).Observe(time.Since(start).Seconds())
	if err != nil {
		s.logger.Error("completion provider call failed", zap.String("model", model), zap.Error(err))
		return "", err
	}
	return response, nil
}
