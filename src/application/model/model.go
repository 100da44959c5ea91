// Package model describes the separation model as the rest of the service
// sees it. Nothing here knows how inference happens; implementations live in
// subpackages.
package model

import (
	"context"

	"sam-audio-server/src/application/audio"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

const (
	CPUDevice  = "cpu"
	CUDADevice = "cuda"
	AutoDevice = "auto"
)

type Options struct {
	PredictSpans        bool
	RerankingCandidates int
}

func DefaultOptions() Options {
	return Options{
		PredictSpans:        false,
		RerankingCandidates: 1,
	}
}

// Batch is a single preprocessed (audio, description) pair.
type Batch struct {
	AudioPath   string
	Description string
	Device      string
}

// To returns a copy of the batch placed on device.
func (b Batch) To(device string) Batch {
	b.Device = device
	return b
}

// Tracks hold separated audio in host memory.
type Tracks struct {
	Target   audio.Samples
	Residual audio.Samples
}

//counterfeiter:generate . Loader
type Loader interface {
	Load(ctx context.Context, identifier string) (Model, Preprocessor, error)
}

//counterfeiter:generate . Preprocessor
type Preprocessor interface {
	Process(ctx context.Context, audioPath string, description string) (Batch, error)
	SampleRate() int
}

//counterfeiter:generate . Model
type Model interface {
	Device() string
	// Separate runs inference only; implementations must not track gradients
	// or keep any per-call configuration around afterwards.
	Separate(ctx context.Context, batch Batch, options Options) (Tracks, error)
}
