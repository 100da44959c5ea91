package artifact

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"sam-audio-server/src/lib/cerr"
	"sam-audio-server/src/lib/working_dir"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

const (
	artifactSuffix = ".wav"
	partialPrefix  = "."
	partialSuffix  = ".part"
)

var _ error = ResourceError{}

// ResourceError reports that an artifact could not be materialized or read.
// Its message is safe to show to callers: it never names the path.
type ResourceError struct {
	Message string
	Cause   error
}

func (r ResourceError) Error() string {
	return r.Message
}

func (r ResourceError) Unwrap() error {
	return r.Cause
}

type Artifact struct {
	path     string
	size     int64
	released bool
	mu       sync.Mutex
}

func (a *Artifact) Path() string {
	return a.path
}

func (a *Artifact) Size() int64 {
	return a.size
}

func (a *Artifact) ReadAll() ([]byte, error) {
	a.mu.Lock()
	released := a.released
	a.mu.Unlock()

	if released {
		return nil, ResourceError{Message: "audio artifact was already released"}
	}

	contents, err := os.ReadFile(a.path)
	if err != nil {
		return nil, ResourceError{
			Message: "failed to read audio artifact",
			Cause:   cerr.Field("path", a.path).Wrap(err).Error("Failed to read artifact file"),
		}
	}

	return contents, nil
}

type Store struct {
	workingDir working_dir.WorkingDir
}

func NewStore(workingDir working_dir.WorkingDir) Store {
	return Store{
		workingDir: workingDir,
	}
}

func (s Store) Dir() string {
	return s.workingDir.TempDir()
}

// Acquire persists data as a new artifact.
func (s Store) Acquire(data []byte) (*Artifact, error) {
	return s.AcquireWith(func(w io.WriteSeeker) error {
		_, err := w.Write(data)
		return err
	})
}

// AcquireWith lets write fill a new artifact. The file only becomes visible
// under its final name once write has returned and the file is closed.
func (s Store) AcquireWith(write func(w io.WriteSeeker) error) (*Artifact, error) {
	name := uuid.NewString()
	finalPath := filepath.Join(s.Dir(), name+artifactSuffix)
	partialPath := filepath.Join(s.Dir(), partialPrefix+name+artifactSuffix+partialSuffix)

	logger := log.WithField("artifact", name)

	file, err := os.OpenFile(partialPath, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0o600)
	if err != nil {
		return nil, ResourceError{
			Message: "failed to create audio artifact",
			Cause:   cerr.Field("path", partialPath).Wrap(err).Error("Failed to open partial artifact"),
		}
	}

	abandon := func() {
		_ = file.Close()
		if err := os.Remove(partialPath); err != nil && !os.IsNotExist(err) {
			logger.WithError(err).Error("Failed to remove partial artifact")
		}
	}

	if err := write(file); err != nil {
		abandon()
		return nil, ResourceError{
			Message: fmt.Sprintf("failed to write audio artifact: %s", redact(err.Error(), partialPath)),
			Cause:   cerr.Field("path", partialPath).Wrap(err).Error("Failed to write artifact contents"),
		}
	}

	info, err := file.Stat()
	if err != nil {
		abandon()
		return nil, ResourceError{
			Message: "failed to inspect audio artifact",
			Cause:   cerr.Wrap(err).Error("Failed to stat partial artifact"),
		}
	}

	if err := file.Close(); err != nil {
		abandon()
		return nil, ResourceError{
			Message: "failed to flush audio artifact",
			Cause:   cerr.Wrap(err).Error("Failed to close partial artifact"),
		}
	}

	if err := os.Rename(partialPath, finalPath); err != nil {
		abandon()
		return nil, ResourceError{
			Message: "failed to publish audio artifact",
			Cause:   cerr.Field("path", finalPath).Wrap(err).Error("Failed to rename partial artifact"),
		}
	}

	logger.WithField("size", humanize.Bytes(uint64(info.Size()))).Debug("Acquired artifact")

	return &Artifact{
		path: finalPath,
		size: info.Size(),
	}, nil
}

// Release removes the artifact. Releasing nil or an already released
// artifact does nothing.
func (s Store) Release(a *Artifact) {
	if a == nil {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.released {
		return
	}

	a.released = true

	if err := os.Remove(a.path); err != nil && !os.IsNotExist(err) {
		cerr.Log(cerr.Field("path", a.path).Wrap(err).Error("Failed to release artifact"))
		return
	}

	log.WithField("artifact", filepath.Base(a.path)).Debug("Released artifact")
}

func redact(message string, paths ...string) string {
	for _, path := range paths {
		if path == "" {
			continue
		}
		message = strings.ReplaceAll(message, path, "<artifact>")
	}

	return message
}
