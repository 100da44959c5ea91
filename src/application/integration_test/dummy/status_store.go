package dummy

import (
	"context"
	"sync"

	"sam-audio-server/src/application/jobs/status"
)

var _ status.Store = &StatusStore{}

func NewDummyStatusStore() *StatusStore {
	return &StatusStore{
		State: make(map[string][]status.Record),
	}
}

// StatusStore keeps every record it is given, newest last.
type StatusStore struct {
	Unavailable bool
	State       map[string][]status.Record

	mu sync.Mutex
}

func (s *StatusStore) SetStatus(_ context.Context, record status.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Unavailable {
		return NetworkFailure
	}

	s.State[record.JobID] = append(s.State[record.JobID], record)
	return nil
}

func (s *StatusStore) GetStatus(_ context.Context, jobID string) (status.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Unavailable {
		return status.Record{}, NetworkFailure
	}

	records := s.State[jobID]
	if len(records) == 0 {
		return status.Record{}, status.ErrNotFound
	}

	return records[len(records)-1], nil
}
