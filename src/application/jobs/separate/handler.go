package separate

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"sam-audio-server/src/application/cloud_storage/entity"
	"sam-audio-server/src/application/jobs/status"
	"sam-audio-server/src/application/model"
	"sam-audio-server/src/application/publish"
	"sam-audio-server/src/application/separation"
	"sam-audio-server/src/application/worker"
	"sam-audio-server/src/lib/cerr"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/streadway/amqp"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

var _ worker.MessageHandler = JobHandler{}

const (
	JobType       string = "separate_audio"
	CompletedType string = "separation_completed"
	FailedType    string = "separation_failed"
)

type JobParams struct {
	JobID               string `json:"job_id"`
	SourceURL           string `json:"source_url"`
	DestURL             string `json:"dest_url"`
	Description         string `json:"description"`
	Track               string `json:"track,omitempty"`
	PredictSpans        *bool  `json:"predict_spans,omitempty"`
	RerankingCandidates *int   `json:"reranking_candidates,omitempty"`
}

type ResultParams struct {
	JobID      string `json:"job_id"`
	Track      string `json:"track,omitempty"`
	DestURL    string `json:"dest_url,omitempty"`
	SampleRate int    `json:"sample_rate,omitempty"`
	Error      string `json:"error,omitempty"`
}

// CreateJobMessage fills in a job id when params has none.
func CreateJobMessage(params JobParams) (amqp.Publishing, error) {
	if params.JobID == "" {
		params.JobID = uuid.NewString()
	}

	return publish.NewJSONMessage(JobType, params)
}

//counterfeiter:generate . Separator
type Separator interface {
	Run(ctx context.Context, audioBytes []byte, description string, options model.Options, track separation.Track) (separation.Output, error)
}

func NewJobHandler(fileStore entity.FileStore, separator Separator, resultPublisher publish.Publisher) JobHandler {
	return JobHandler{
		fileStore:       fileStore,
		separator:       separator,
		resultPublisher: resultPublisher,
		statusStore:     status.NopStore{},
	}
}

type JobHandler struct {
	fileStore       entity.FileStore
	separator       Separator
	resultPublisher publish.Publisher
	statusStore     status.Store
}

// WithStatusStore records every state change of a job in statusStore.
func (j JobHandler) WithStatusStore(statusStore status.Store) JobHandler {
	if statusStore == nil {
		statusStore = status.NopStore{}
	}

	j.statusStore = statusStore
	return j
}

func (JobHandler) JobType() string {
	return JobType
}

func (j JobHandler) HandleMessage(ctx context.Context, message []byte) error {
	params := JobParams{}
	if err := json.Unmarshal(message, &params); err != nil {
		return cerr.Wrap(err).Error("Failed to unmarshal message JSON")
	}

	if params.JobID == "" {
		params.JobID = uuid.NewString()
	}

	errctx := cerr.Fields(cerr.F{
		"job_id":     params.JobID,
		"source_url": params.SourceURL,
		"dest_url":   params.DestURL,
	})

	j.recordStatus(ctx, status.Record{
		JobID:     params.JobID,
		State:     status.Processing,
		Track:     params.Track,
		SourceURL: params.SourceURL,
		DestURL:   params.DestURL,
	})

	result, err := j.separate(ctx, params)
	if err != nil {
		j.recordStatus(ctx, status.Record{
			JobID:     params.JobID,
			State:     status.Failed,
			Track:     params.Track,
			SourceURL: params.SourceURL,
			DestURL:   params.DestURL,
			Error:     failureMessage(err),
		})

		if publishErr := j.publishResult(FailedType, ResultParams{
			JobID: params.JobID,
			Track: params.Track,
			Error: failureMessage(err),
		}); publishErr != nil {
			cerr.Log(errctx.Wrap(publishErr).Error("Failed to publish the failure result"))
		}

		return errctx.Wrap(err).Error("Failed to run the separation job")
	}

	j.recordStatus(ctx, status.Record{
		JobID:      params.JobID,
		State:      status.Completed,
		Track:      result.Track,
		SourceURL:  params.SourceURL,
		DestURL:    result.DestURL,
		SampleRate: result.SampleRate,
	})

	if err := j.publishResult(CompletedType, result); err != nil {
		return errctx.Wrap(err).Error("Failed to publish the completion result")
	}

	return nil
}

func (j JobHandler) separate(ctx context.Context, params JobParams) (ResultParams, error) {
	track, options, err := validate(params)
	if err != nil {
		return ResultParams{}, err
	}

	logger := log.WithFields(log.Fields{
		"job_id": params.JobID,
		"track":  track,
	})

	logger.Info("Fetching source audio")
	audioBytes, err := j.fileStore.GetFile(ctx, params.SourceURL)
	if err != nil {
		return ResultParams{}, cerr.Wrap(err).Error("Failed to fetch the source audio")
	}

	logger.WithField("size", humanize.Bytes(uint64(len(audioBytes)))).Info("Separating source audio")
	output, err := j.separator.Run(ctx, audioBytes, params.Description, options, track)
	if err != nil {
		return ResultParams{}, err
	}

	logger.Info("Uploading separated audio")
	if err := j.fileStore.WriteFile(ctx, params.DestURL, output.Audio); err != nil {
		return ResultParams{}, cerr.Wrap(err).Error("Failed to upload the separated audio")
	}

	return ResultParams{
		JobID:      params.JobID,
		Track:      string(track),
		DestURL:    params.DestURL,
		SampleRate: output.SampleRate,
	}, nil
}

// validate applies the same rules as the HTTP endpoints: the residual track
// always separates with the default options.
func validate(params JobParams) (separation.Track, model.Options, error) {
	if strings.TrimSpace(params.SourceURL) == "" {
		return "", model.Options{}, validationError("source_url is required")
	}

	if strings.TrimSpace(params.DestURL) == "" {
		return "", model.Options{}, validationError("dest_url is required")
	}

	if params.Description == "" {
		return "", model.Options{}, validationError("description is required")
	}

	track, err := separation.ParseTrack(params.Track)
	if err != nil {
		return "", model.Options{}, validationError("track must be target or residual")
	}

	options := model.DefaultOptions()
	if track == separation.ResidualTrack {
		return track, options, nil
	}

	if params.PredictSpans != nil {
		options.PredictSpans = *params.PredictSpans
	}

	if params.RerankingCandidates != nil {
		if *params.RerankingCandidates < 1 {
			return "", model.Options{}, validationError("reranking_candidates must be a positive integer")
		}
		options.RerankingCandidates = *params.RerankingCandidates
	}

	return track, options, nil
}

// recordStatus only logs failures, the job carries on.
func (j JobHandler) recordStatus(ctx context.Context, record status.Record) {
	record.UpdatedAt = time.Now().UTC()
	if err := j.statusStore.SetStatus(ctx, record); err != nil {
		cerr.Log(cerr.Fields(cerr.F{
			"job_id": record.JobID,
			"state":  record.State,
		}).Wrap(err).Error("Failed to record job status"))
	}
}

func validationError(message string) error {
	return separation.Failure{
		Kind:    separation.ValidationFailure,
		Message: message,
	}
}

func failureMessage(err error) string {
	var failure separation.Failure
	if errors.As(err, &failure) {
		return failure.Message
	}

	return err.Error()
}

func (j JobHandler) publishResult(resultType string, result ResultParams) error {
	message, err := publish.NewJSONMessage(resultType, result)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"job_id":      result.JobID,
		"result_type": resultType,
	}).Info("Publishing job result")

	return j.resultPublisher.Publish(message)
}
