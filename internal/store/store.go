// Package store implements the filesystem-backed prompt store. Each category
// is a directory under the store root and each prompt is one markdown file
// whose stem is the prompt name.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/fermm870-del/prompt-system-pro/pkg/models"
)

const promptExt = ".md"

// Store owns the on-disk category/prompt hierarchy. The root is fixed at
// construction; there is no locking, concurrent writes to the same path race
// with last-writer-wins semantics.
type Store struct {
	root   string
	logger *zap.Logger
}

// New creates a Store rooted at dir. The directory is created on Bootstrap,
// not here.
func New(dir string, logger *zap.Logger) *Store {
	return &Store{root: dir, logger: logger}
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}

// promptPath resolves the file path for a category/name pair. Both segments
// must already be sanitized identifiers; anything else cannot name a stored
// prompt and reports ErrNotFound without touching the filesystem.
func (s *Store) promptPath(category, name string) (string, error) {
	if !validSegment(category) || !validSegment(name) {
		return "", ErrNotFound
	}
	path := filepath.Join(s.root, category, name+promptExt)
	if rel, err := filepath.Rel(s.root, path); err != nil || strings.HasPrefix(rel, "..") {
		return "", ErrNotFound
	}
	return path, nil
}

// ListCategories enumerates every category directory and its prompt files.
// Order follows filesystem enumeration. Empty categories are included with
// count 0. Fails soft: any filesystem error is logged and an empty slice is
// returned, since listing is a read-only availability-first path.
func (s *Store) ListCategories() []models.Category {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		s.logger.Warn("failed to read store root", zap.String("root", s.root), zap.Error(err))
		return []models.Category{}
	}

	categories := make([]models.Category, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		cat := entry.Name()
		prompts := s.listPrompts(cat)
		categories = append(categories, models.Category{
			Name:    cat,
			Count:   len(prompts),
			Prompts: prompts,
		})
	}
	return categories
}

func (s *Store) listPrompts(category string) []models.Prompt {
	files, err := os.ReadDir(filepath.Join(s.root, category))
	if err != nil {
		s.logger.Warn("failed to read category", zap.String("category", category), zap.Error(err))
		return []models.Prompt{}
	}

	prompts := make([]models.Prompt, 0, len(files))
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), promptExt) {
			continue
		}
		name := strings.TrimSuffix(f.Name(), promptExt)
		prompts = append(prompts, models.Prompt{
			ID:       category + "/" + name,
			Name:     name,
			Category: category,
		})
	}
	return prompts
}

// GetPrompt reads a prompt whole. Returns ErrNotFound if no file exists at
// the resolved path.
func (s *Store) GetPrompt(category, name string) (*models.Prompt, error) {
	path, err := s.promptPath(category, name)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: reading %s/%s: %v", ErrStorage, category, name, err)
	}
	return &models.Prompt{
		ID:       category + "/" + name,
		Category: category,
		Name:     name,
		Content:  string(content),
	}, nil
}

// CreatePrompt sanitizes both segments, creates the category directory if
// needed and writes the file, overwriting unconditionally. Last writer wins;
// there is no conflict detection. Returns the resulting composite id.
func (s *Store) CreatePrompt(category, name, content string) (string, error) {
	if category == "" || name == "" || content == "" {
		return "", fmt.Errorf("%w: category, name and content are required", ErrInvalidInput)
	}

	safeCategory := Sanitize(category)
	safeName := Sanitize(name)
	if safeCategory == "" || safeName == "" {
		return "", fmt.Errorf("%w: category and name must contain at least one character", ErrInvalidInput)
	}

	dir := filepath.Join(s.root, safeCategory)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: creating category %s: %v", ErrStorage, safeCategory, err)
	}
	if err := os.WriteFile(filepath.Join(dir, safeName+promptExt), []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("%w: writing %s/%s: %v", ErrStorage, safeCategory, safeName, err)
	}
	return safeCategory + "/" + safeName, nil
}

// DeletePrompt removes a single prompt file. The category directory is left
// in place even when it becomes empty. Returns ErrNotFound if the target
// does not exist.
func (s *Store) DeletePrompt(category, name string) error {
	path, err := s.promptPath(category, name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: deleting %s/%s: %v", ErrStorage, category, name, err)
	}
	return nil
}

// Resolve looks up a prompt by its composite "category/name" id. A malformed
// or nonexistent id yields ErrNotFound; callers that treat the prompt as
// optional fall back on that.
func (s *Store) Resolve(promptID string) (*models.Prompt, error) {
	category, name, ok := strings.Cut(promptID, "/")
	if !ok {
		return nil, ErrNotFound
	}
	return s.GetPrompt(category, name)
}
