package status

import (
	"context"
	"time"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

type State string

const (
	Processing State = "processing"
	Completed  State = "completed"
	Failed     State = "failed"
)

// Record is the last known state of one queued separation job.
type Record struct {
	JobID      string    `json:"job_id"`
	State      State     `json:"state"`
	Track      string    `json:"track,omitempty"`
	SourceURL  string    `json:"source_url,omitempty"`
	DestURL    string    `json:"dest_url,omitempty"`
	SampleRate int       `json:"sample_rate,omitempty"`
	Error      string    `json:"error,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

//counterfeiter:generate . Store
type Store interface {
	SetStatus(ctx context.Context, record Record) error
	GetStatus(ctx context.Context, jobID string) (Record, error)
}

var _ Store = NopStore{}

// NopStore is used when no job table is configured.
type NopStore struct{}

func (NopStore) SetStatus(_ context.Context, _ Record) error {
	return nil
}

func (NopStore) GetStatus(_ context.Context, _ string) (Record, error) {
	return Record{}, ErrNotFound
}
