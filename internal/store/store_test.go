package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(t.TempDir(), zap.NewNop())
}

func TestCreateGetRoundTrip(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreatePrompt("backend", "Test API", "Use REST conventions.")
	require.NoError(t, err)
	assert.Equal(t, "backend/test-api", id)

	prompt, err := s.GetPrompt("backend", "test-api")
	require.NoError(t, err)
	assert.Equal(t, "Use REST conventions.", prompt.Content)
	assert.Equal(t, "backend/test-api", prompt.ID)
	assert.Equal(t, "backend", prompt.Category)
	assert.Equal(t, "test-api", prompt.Name)
}

func TestCreateOverwritesUnconditionally(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreatePrompt("backend", "api", "first")
	require.NoError(t, err)
	_, err = s.CreatePrompt("backend", "api", "second")
	require.NoError(t, err)

	prompt, err := s.GetPrompt("backend", "api")
	require.NoError(t, err)
	assert.Equal(t, "second", prompt.Content)
}

func TestCreateSanitizesBothSegments(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreatePrompt("My Category", "My Name!", "body")
	require.NoError(t, err)
	assert.Equal(t, "my-category/my-name-", id)

	prompt, err := s.GetPrompt("my-category", "my-name-")
	require.NoError(t, err)
	assert.Equal(t, "body", prompt.Content)
}

func TestCreateRejectsMissingFields(t *testing.T) {
	s := newTestStore(t)

	cases := []struct{ category, name, content string }{
		{"", "name", "content"},
		{"cat", "", "content"},
		{"cat", "name", ""},
	}
	for _, tc := range cases {
		_, err := s.CreatePrompt(tc.category, tc.name, tc.content)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}

	// No write may have happened.
	entries, err := os.ReadDir(s.Root())
	if err == nil {
		assert.Empty(t, entries)
	}
}

func TestGetPromptNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetPrompt("backend", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteThenGet(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreatePrompt("backend", "api", "body")
	require.NoError(t, err)

	require.NoError(t, s.DeletePrompt("backend", "api"))

	_, err = s.GetPrompt("backend", "api")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again reports NotFound.
	assert.ErrorIs(t, s.DeletePrompt("backend", "api"), ErrNotFound)

	// The category directory survives as an empty category.
	info, statErr := os.Stat(filepath.Join(s.Root(), "backend"))
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())
}

func TestTraversalCannotEscapeRoot(t *testing.T) {
	s := newTestStore(t)

	outside := filepath.Join(filepath.Dir(s.Root()), "outside.md")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0o644))

	_, err := s.GetPrompt("..", "outside")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.DeletePrompt("..", "outside"), ErrNotFound)
	_, statErr := os.Stat(outside)
	assert.NoError(t, statErr, "file outside the root must be untouched")

	_, err = s.Resolve("../outside")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListCategories(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreatePrompt("backend", "api", "body")
	require.NoError(t, err)
	_, err = s.CreatePrompt("backend", "db", "body")
	require.NoError(t, err)
	_, err = s.CreatePrompt("frontend", "react", "body")
	require.NoError(t, err)

	// An empty category directory is listed with count 0.
	require.NoError(t, os.MkdirAll(filepath.Join(s.Root(), "empty"), 0o755))

	categories := s.ListCategories()
	require.Len(t, categories, 3)

	byName := map[string]int{}
	for _, c := range categories {
		byName[c.Name] = c.Count
		assert.Len(t, c.Prompts, c.Count)
	}
	assert.Equal(t, map[string]int{"backend": 2, "frontend": 1, "empty": 0}, byName)
}

func TestListCategoriesSoftFailsOnMissingRoot(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "does-not-exist"), zap.NewNop())

	categories := s.ListCategories()
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
}

func TestListIgnoresForeignFiles(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreatePrompt("backend", "api", "body")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(s.Root(), "stray.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(s.Root(), "backend", "notes.txt"), []byte("x"), 0o644))

	categories := s.ListCategories()
	require.Len(t, categories, 1)
	assert.Equal(t, 1, categories[0].Count)
}

func TestResolve(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreatePrompt("security", "auth-patterns", "# AUTH")
	require.NoError(t, err)

	prompt, err := s.Resolve("security/auth-patterns")
	require.NoError(t, err)
	assert.Equal(t, "# AUTH", prompt.Content)

	_, err = s.Resolve("no-slash")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Resolve("security/missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
