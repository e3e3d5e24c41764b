package store

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

//go:embed seeddata
var builtinSeedFS embed.FS

// Bootstrap ensures the store root exists and writes each built-in default
// prompt only when no file already occupies its path. Running it again is a
// no-op: a prompt the user has customized (or deleted and recreated) is never
// overwritten.
func (s *Store) Bootstrap() error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("creating store root %s: %w", s.root, err)
	}

	seeded := 0
	err := fs.WalkDir(builtinSeedFS, "seeddata", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel("seeddata", path)
		if err != nil {
			return err
		}
		target := filepath.Join(s.root, rel)

		if _, err := os.Stat(target); err == nil {
			return nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", target, err)
		}

		content, err := builtinSeedFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading embedded seed %s: %w", path, err)
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("creating category for %s: %w", rel, err)
		}
		if err := os.WriteFile(target, content, 0o644); err != nil {
			return fmt.Errorf("writing default prompt %s: %w", rel, err)
		}
		seeded++
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("prompt store ready",
		zap.String("root", s.root),
		zap.Int("defaults_written", seeded))
	return nil
}
