package working_dir

import (
	"os"
	"path/filepath"

	"sam-audio-server/src/lib/cerr"

	"github.com/apex/log"
)

type WorkingDir struct {
	root string
}

func NewWorkingDir(root string) (WorkingDir, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return WorkingDir{}, cerr.Field("root", root).Wrap(err).Error("Failed to generate absolute path for working directory")
	}

	if err := os.MkdirAll(filepath.Join(absRoot, "tmp"), 0o700); err != nil {
		return WorkingDir{}, cerr.Field("root", absRoot).Wrap(err).Error("Failed to create working directory")
	}

	return WorkingDir{
		root: absRoot,
	}, nil
}

func (w WorkingDir) Root() string {
	return w.root
}

func (w WorkingDir) TempDir() string {
	return filepath.Join(w.root, "tmp")
}

// Sweep removes whatever a previous process left in the temp dir.
// Only call it at startup, before any request can own an artifact.
func (w WorkingDir) Sweep() (int, error) {
	entries, err := os.ReadDir(w.TempDir())
	if err != nil {
		return 0, cerr.Field("temp_dir", w.TempDir()).Wrap(err).Error("Failed to read temp dir")
	}

	removed := 0
	for _, entry := range entries {
		entryPath := filepath.Join(w.TempDir(), entry.Name())
		if err := os.RemoveAll(entryPath); err != nil {
			log.WithField("path", entryPath).Error("Failed to remove stale temp entry")
			continue
		}

		removed++
	}

	return removed, nil
}
