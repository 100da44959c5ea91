package separation

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"sam-audio-server/src/application/artifact"
	"sam-audio-server/src/application/audio"
	"sam-audio-server/src/application/model"
	"sam-audio-server/src/application/session"
	"sam-audio-server/src/lib/cerr"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

type Track string

const (
	TargetTrack   Track = "target"
	ResidualTrack Track = "residual"
)

func ParseTrack(value string) (Track, error) {
	switch Track(strings.ToLower(strings.TrimSpace(value))) {
	case "", TargetTrack:
		return TargetTrack, nil
	case ResidualTrack:
		return ResidualTrack, nil
	default:
		return "", cerr.Field("track", value).Error("Unknown track requested")
	}
}

var _ ModelSession = (*session.Session)(nil)

//counterfeiter:generate . ModelSession
type ModelSession interface {
	Loaded() bool
	Separate(ctx context.Context, input *artifact.Artifact, description string, options model.Options) (session.Result, error)
}

type Request struct {
	AudioData           string `json:"audio_data"`
	Description         string `json:"description"`
	PredictSpans        *bool  `json:"predict_spans,omitempty"`
	RerankingCandidates *int   `json:"reranking_candidates,omitempty"`
}

type Response struct {
	StatusCode int    `json:"-"`
	Success    bool   `json:"success"`
	AudioData  string `json:"audio_data,omitempty"`
	SampleRate int    `json:"sample_rate,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Output is a separated track encoded as a complete WAV byte stream.
type Output struct {
	Audio      []byte
	SampleRate int
}

func FailureResponse(failure Failure) Response {
	return Response{
		StatusCode: failure.StatusCode(),
		Success:    false,
		Error:      failure.Message,
	}
}

func NewPipeline(modelSession ModelSession, store artifact.Store, codec audio.Codec) Pipeline {
	return Pipeline{
		session: modelSession,
		store:   store,
		codec:   codec,
	}
}

type Pipeline struct {
	session ModelSession
	store   artifact.Store
	codec   audio.Codec
}

func (p Pipeline) SeparateTarget(ctx context.Context, request Request) Response {
	options, err := requestOptions(request)
	if err != nil {
		return p.respond(ctx, request, model.Options{}, TargetTrack, err)
	}

	return p.respond(ctx, request, options, TargetTrack, nil)
}

// SeparateResidual ignores predict_spans and reranking_candidates and always
// separates with the default options.
func (p Pipeline) SeparateResidual(ctx context.Context, request Request) Response {
	return p.respond(ctx, request, model.DefaultOptions(), ResidualTrack, nil)
}

func (p Pipeline) respond(ctx context.Context, request Request, options model.Options, track Track, optionsErr error) (response Response) {
	logger := log.WithFields(log.Fields{
		"track":        track,
		"predictSpans": options.PredictSpans,
		"reranking":    options.RerankingCandidates,
	})

	defer func() {
		if r := recover(); r != nil {
			failure := Classify(cerr.Field("panic", fmt.Sprint(r)).Error("Separation request panicked"))
			cerr.Log(failure.Cause)
			response = FailureResponse(failure)
		}
	}()

	if !p.session.Loaded() {
		logger.Error("Separation requested while the model is not loaded")
		return FailureResponse(Classify(session.ErrModelUnavailable))
	}

	if err := validate(request); err != nil {
		return FailureResponse(Classify(err))
	}

	if optionsErr != nil {
		return FailureResponse(Classify(optionsErr))
	}

	audioBytes, err := base64.StdEncoding.DecodeString(request.AudioData)
	if err != nil {
		return FailureResponse(validationFailure("audio_data is not valid base64"))
	}

	logger.WithField("size", humanize.Bytes(uint64(len(audioBytes)))).Info("Separating audio")
	output, err := p.Run(ctx, audioBytes, request.Description, options, track)
	if err != nil {
		failure := Classify(err)
		cerr.Log(cerr.Field("kind", failure.Kind).Wrap(err).Error("Separation request failed"))
		return FailureResponse(failure)
	}

	logger.Info("Separation request succeeded")
	return Response{
		StatusCode: http.StatusOK,
		Success:    true,
		AudioData:  base64.StdEncoding.EncodeToString(output.Audio),
		SampleRate: output.SampleRate,
	}
}

// Run is the shared separation core: it materializes audioBytes, separates
// them and encodes the selected track. Every artifact it acquires is released
// before it returns.
func (p Pipeline) Run(ctx context.Context, audioBytes []byte, description string, options model.Options, track Track) (output Output, err error) {
	var input, encoded *artifact.Artifact

	defer func() {
		if r := recover(); r != nil {
			output = Output{}
			err = cerr.Field("panic", fmt.Sprint(r)).Error("Separation panicked")
		}

		if err != nil {
			err = Classify(err, append(redactedPaths(input, encoded), p.store.Dir())...)
		}

		p.store.Release(encoded)
		p.store.Release(input)
	}()

	input, err = p.store.Acquire(audioBytes)
	if err != nil {
		return Output{}, err
	}

	result, err := p.session.Separate(ctx, input, description, options)
	if err != nil {
		return Output{}, err
	}

	samples, err := selectTrack(result, track)
	if err != nil {
		return Output{}, err
	}

	encoded, err = p.store.AcquireWith(func(w io.WriteSeeker) error {
		return p.codec.Encode(w, samples, result.SampleRate)
	})
	if err != nil {
		return Output{}, err
	}

	contents, err := encoded.ReadAll()
	if err != nil {
		return Output{}, err
	}

	return Output{
		Audio:      contents,
		SampleRate: result.SampleRate,
	}, nil
}

func validate(request Request) error {
	if request.AudioData == "" {
		return validationFailure("audio_data is required")
	}

	if request.Description == "" {
		return validationFailure("description is required")
	}

	return nil
}

func requestOptions(request Request) (model.Options, error) {
	options := model.DefaultOptions()

	if request.PredictSpans != nil {
		options.PredictSpans = *request.PredictSpans
	}

	if request.RerankingCandidates != nil {
		if *request.RerankingCandidates < 1 {
			return model.Options{}, validationFailure("reranking_candidates must be a positive integer")
		}
		options.RerankingCandidates = *request.RerankingCandidates
	}

	return options, nil
}

func selectTrack(result session.Result, track Track) (audio.Samples, error) {
	switch track {
	case TargetTrack:
		return result.Target, nil
	case ResidualTrack:
		return result.Residual, nil
	default:
		return audio.Samples{}, cerr.Field("track", track).Error("Unknown track requested")
	}
}

func redactedPaths(artifacts ...*artifact.Artifact) []string {
	paths := []string{}
	for _, a := range artifacts {
		if a != nil {
			paths = append(paths, a.Path())
		}
	}

	return paths
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
