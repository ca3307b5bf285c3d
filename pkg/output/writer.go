// Package output persists compiled scripts under the output root, one
// subdirectory per dialect, and removes stale generated scripts before
// regeneration.
package output

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/portenv/pkg/dialect"
	"github.com/arthur-debert/portenv/pkg/errors"
	"github.com/arthur-debert/portenv/pkg/logging"
)

// Writer writes activation scripts below a single output root
type Writer struct {
	root   string
	logger zerolog.Logger
}

// NewWriter creates a Writer rooted at the given output directory
func NewWriter(root string) *Writer {
	return &Writer{
		root:   root,
		logger: logging.GetLogger("output"),
	}
}

// ScriptPath returns the output path for a profile's script under one
// dialect: <root>/<dialect subdir>/env_<profile><extension>
func (w *Writer) ScriptPath(profileName string, d dialect.Dialect) string {
	return filepath.Join(w.root, d.Subdir(), d.ScriptFileName(profileName))
}

// Clean removes previously generated scripts under the output root so a
// regeneration never leaves dropped profiles behind. Only files whose
// name carries the script prefix and whose first line contains the
// generated marker are deleted; hand-authored files survive.
func (w *Writer) Clean() error {
	for _, d := range dialect.All() {
		dir := filepath.Join(w.root, d.Subdir())
		files, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return errors.Wrapf(err, errors.ErrOutputWriteFailed, "failed to scan output directory %s", dir)
		}
		for _, entry := range files {
			if entry.IsDir() || !strings.HasPrefix(entry.Name(), dialect.ScriptPrefix) {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			generated, err := hasGeneratedMarker(path)
			if err != nil {
				return errors.Wrapf(err, errors.ErrOutputWriteFailed, "failed to inspect %s", path)
			}
			if !generated {
				continue
			}
			if err := os.Remove(path); err != nil {
				return errors.Wrapf(err, errors.ErrOutputWriteFailed, "failed to remove stale script %s", path)
			}
			w.logger.Debug().Str("path", path).Msg("Removed stale script")
		}
	}
	return nil
}

// Write persists one compiled script, creating the dialect subdirectory
// on first use. It returns the path written.
func (w *Writer) Write(profileName string, d dialect.Dialect, content string) (string, error) {
	path := w.ScriptPath(profileName, d)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrOutputWriteFailed, "failed to create output directory %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrOutputWriteFailed, "failed to write %s", path)
	}

	w.logger.Debug().
		Str("path", path).
		Str("dialect", d.String()).
		Msg("Script written")

	return path, nil
}

// hasGeneratedMarker reads only the file's first line
func hasGeneratedMarker(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return false, scanner.Err()
	}
	return strings.Contains(scanner.Text(), dialect.GeneratedMarker), nil
}
