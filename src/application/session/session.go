package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"sam-audio-server/src/application/artifact"
	"sam-audio-server/src/application/audio"
	"sam-audio-server/src/application/model"
	"sam-audio-server/src/lib/cerr"

	"github.com/apex/log"
)

type State string

const (
	Uninitialized State = "uninitialized"
	Ready         State = "ready"
	Unavailable   State = "unavailable"
)

var ErrModelUnavailable = errors.New("model not loaded")

var _ error = InferenceError{}

// InferenceError means the model was reachable but could not produce a result.
type InferenceError struct {
	Message string
	Cause   error
}

func (i InferenceError) Error() string {
	return i.Message
}

func (i InferenceError) Unwrap() error {
	return i.Cause
}

type Config struct {
	ModelID          string
	DeviceHint       string
	InferenceTimeout time.Duration
}

type Result struct {
	Target     audio.Samples
	Residual   audio.Samples
	SampleRate int
}

// Session owns the loaded model for the lifetime of the process. The state is
// decided once by Load and never changes afterwards.
type Session struct {
	state      State
	cause      string
	modelID    string
	device     string
	sampleRate int
	timeout    time.Duration

	model        model.Model
	preprocessor model.Preprocessor

	// inference holds the one critical section every Separate call goes through
	inference sync.Mutex
}

// Load makes the single load attempt for the process. It never fails: a
// model that cannot be loaded yields an Unavailable session.
func Load(ctx context.Context, loader model.Loader, config Config) *Session {
	s := &Session{
		state:   Uninitialized,
		modelID: config.ModelID,
		device:  fallbackDevice(config.DeviceHint),
		timeout: config.InferenceTimeout,
	}

	logger := log.WithFields(log.Fields{
		"modelID":    config.ModelID,
		"deviceHint": config.DeviceHint,
	})

	logger.Info("Loading separation model")
	if err := s.load(ctx, loader); err != nil {
		s.state = Unavailable
		s.cause = err.Error()
		cerr.Log(cerr.Field("model_id", config.ModelID).Wrap(err).Error("Separation model failed to load"))
		logger.Warn("Model failed to load, separate requests will fail until the process is restarted")
		return s
	}

	s.state = Ready
	logger.WithFields(log.Fields{
		"device":     s.device,
		"sampleRate": s.sampleRate,
	}).Info("Model loaded successfully")

	return s
}

func (s *Session) load(ctx context.Context, loader model.Loader) (err error) {
	if loader == nil {
		return cerr.Error("No separation model backend is available")
	}

	defer func() {
		if r := recover(); r != nil {
			err = cerr.Field("panic", fmt.Sprint(r)).Error("Model loader panicked")
		}
	}()

	loadedModel, preprocessor, err := loader.Load(ctx, s.modelID)
	if err != nil {
		return err
	}

	if loadedModel == nil || preprocessor == nil {
		return cerr.Error("Model loader returned an incomplete model")
	}

	if preprocessor.SampleRate() <= 0 {
		return cerr.Field("sample_rate", preprocessor.SampleRate()).Error("Model reported a non-positive sample rate")
	}

	s.model = loadedModel
	s.preprocessor = preprocessor
	s.sampleRate = preprocessor.SampleRate()
	if device := loadedModel.Device(); device != "" {
		s.device = device
	}

	return nil
}

func (s *Session) State() State {
	if s == nil {
		return Uninitialized
	}

	return s.state
}

func (s *Session) Loaded() bool {
	return s.State() == Ready
}

func (s *Session) Device() string {
	if s == nil {
		return model.CPUDevice
	}

	return s.device
}

func (s *Session) SampleRate() int {
	if s == nil {
		return 0
	}

	return s.sampleRate
}

// Cause explains why the session is unavailable. It is empty when Ready.
func (s *Session) Cause() string {
	if s == nil {
		return ""
	}

	return s.cause
}

func (s *Session) Separate(ctx context.Context, input *artifact.Artifact, description string, options model.Options) (result Result, err error) {
	if !s.Loaded() {
		return Result{}, cerr.Field("state", s.State()).Wrap(ErrModelUnavailable).Error("Model session is not ready")
	}

	if input == nil {
		return Result{}, InferenceError{Message: "no audio was provided to the model"}
	}

	s.inference.Lock()
	defer s.inference.Unlock()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			result = Result{}
			err = InferenceError{
				Message: fmt.Sprintf("model crashed during inference: %v", r),
				Cause:   cerr.Field("panic", fmt.Sprint(r)).Error("Model panicked"),
			}
		}
	}()

	batch, err := s.preprocessor.Process(ctx, input.Path(), description)
	if err != nil {
		return Result{}, s.inferenceError(ctx, "failed to preprocess audio", err)
	}

	tracks, err := s.model.Separate(ctx, batch.To(s.device), options)
	if err != nil {
		return Result{}, s.inferenceError(ctx, "failed to separate audio", err)
	}

	return Result{
		Target:     tracks.Target,
		Residual:   tracks.Residual,
		SampleRate: s.sampleRate,
	}, nil
}

func (s *Session) inferenceError(ctx context.Context, step string, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return InferenceError{
			Message: fmt.Sprintf("inference timed out after %s", s.timeout),
			Cause:   err,
		}
	}

	return InferenceError{
		Message: fmt.Sprintf("%s: %s", step, err.Error()),
		Cause:   err,
	}
}

func fallbackDevice(hint string) string {
	switch strings.ToLower(strings.TrimSpace(hint)) {
	case "", model.AutoDevice:
		return model.CPUDevice
	default:
		return hint
	}
}
