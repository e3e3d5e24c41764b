package store

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/fermm870-del/prompt-system-pro/pkg/models"
)

const previewLen = 150

// Search performs a case-insensitive substring match against the category
// name, file name and full content of every stored prompt. The whole tree is
// scanned per query; there is no index. An empty query returns no results
// rather than listing everything. Like ListCategories, any filesystem error
// degrades to fewer (or zero) results instead of failing the call.
func (s *Store) Search(query string) []models.SearchResult {
	results := []models.SearchResult{}
	if query == "" {
		return results
	}
	needle := strings.ToLower(query)

	entries, err := os.ReadDir(s.root)
	if err != nil {
		s.logger.Warn("failed to read store root", zap.String("root", s.root), zap.Error(err))
		return results
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		cat := entry.Name()
		files, err := os.ReadDir(filepath.Join(s.root, cat))
		if err != nil {
			s.logger.Warn("failed to read category", zap.String("category", cat), zap.Error(err))
			continue
		}
		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), promptExt) {
				continue
			}
			content, err := os.ReadFile(filepath.Join(s.root, cat, f.Name()))
			if err != nil {
				s.logger.Warn("failed to read prompt", zap.String("file", f.Name()), zap.Error(err))
				continue
			}
			haystack := strings.ToLower(cat + " " + f.Name() + " " + string(content))
			if !strings.Contains(haystack, needle) {
				continue
			}
			name := strings.TrimSuffix(f.Name(), promptExt)
			results = append(results, models.SearchResult{
				ID:       cat + "/" + name,
				Category: cat,
				Name:     name,
				Preview:  preview(string(content)),
			})
		}
	}
	return results
}

// preview returns the first 150 characters of content followed by an
// ellipsis marker, regardless of where the match occurred.
func preview(content string) string {
	runes := []rune(content)
	if len(runes) > previewLen {
		runes = runes[:previewLen]
	}
	return string(runes) + "..."
}
