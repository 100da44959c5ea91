package dummy

import (
	"context"
	"sync"

	"sam-audio-server/src/application/cloud_storage/entity"
)

var _ entity.FileStore = &FileStore{}

func NewDummyFileStore() *FileStore {
	return &FileStore{
		Unavailable: false,
		State:       make(map[string][]byte),
	}
}

type FileStore struct {
	Unavailable bool
	State       map[string][]byte

	mu sync.Mutex
}

func (t *FileStore) GetFile(_ context.Context, url string) ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.Unavailable {
		return nil, NetworkFailure
	}

	content, ok := t.State[url]
	if !ok {
		return nil, NotFound
	}

	return append([]byte{}, content...), nil
}

func (t *FileStore) WriteFile(_ context.Context, url string, fileContent []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.Unavailable {
		return NetworkFailure
	}

	t.State[url] = append([]byte{}, fileContent...)

	return nil
}
