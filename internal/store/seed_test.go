package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBootstrapWritesDefaults(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "prompts"), zap.NewNop())
	require.NoError(t, s.Bootstrap())

	wantIDs := []string{
		"frontend/react-pro",
		"backend/nodejs-api",
		"security/auth-patterns",
		"database/postgres-pro",
		"devops/docker-pro",
	}
	for _, id := range wantIDs {
		prompt, err := s.Resolve(id)
		require.NoError(t, err, "default prompt %s should exist", id)
		assert.NotEmpty(t, prompt.Content)
	}

	categories := s.ListCategories()
	assert.Len(t, categories, 5)
	for _, c := range categories {
		assert.Equal(t, 1, c.Count)
	}
}

func TestBootstrapIsIdempotent(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "prompts"), zap.NewNop())
	require.NoError(t, s.Bootstrap())

	// Customize one default, delete another.
	_, err := s.CreatePrompt("backend", "nodejs-api", "customized")
	require.NoError(t, err)
	require.NoError(t, s.DeletePrompt("devops", "docker-pro"))

	require.NoError(t, s.Bootstrap())

	// The customized prompt survives untouched.
	prompt, err := s.GetPrompt("backend", "nodejs-api")
	require.NoError(t, err)
	assert.Equal(t, "customized", prompt.Content)

	// The deleted default is restored, since its path is free again.
	_, err = s.GetPrompt("devops", "docker-pro")
	assert.NoError(t, err)
}

func TestBootstrapCreatesMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "a", "b", "prompts")
	s := New(root, zap.NewNop())
	require.NoError(t, s.Bootstrap())

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
