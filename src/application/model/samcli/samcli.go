// Package samcli runs the separation model out of process through the
// sam-audio command line tool.
//
// The tool is expected to understand two subcommands:
//
//	sam-audio info --model <id> --device <auto|cpu|cuda>
//	sam-audio separate --model <id> --device <dev> --input <wav> --description <text>
//	    --output-dir <dir> --reranking-candidates <n> [--predict-spans] --inference-mode
//
// info prints a JSON object {"device": "...", "sample_rate": n} as its last
// line of output. separate writes target.wav and residual.wav into the output
// directory.
package samcli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"sam-audio-server/src/application/audio"
	"sam-audio-server/src/application/executor"
	"sam-audio-server/src/application/model"
	"sam-audio-server/src/lib/cerr"
	"sam-audio-server/src/lib/working_dir"

	"github.com/apex/log"
)

var _ model.Loader = Loader{}
var _ model.Preprocessor = Preprocessor{}
var _ model.Model = SeparationModel{}

const (
	TargetFileName   = "target.wav"
	ResidualFileName = "residual.wav"

	maxOutputInError = 512
)

type Info struct {
	Device     string `json:"device"`
	SampleRate int    `json:"sample_rate"`
}

func NewLoader(binPath string, deviceHint string, workingDir working_dir.WorkingDir, executor executor.Executor, codec audio.Codec) Loader {
	if deviceHint == "" {
		deviceHint = model.AutoDevice
	}

	return Loader{
		binPath:    binPath,
		deviceHint: deviceHint,
		workingDir: workingDir,
		executor:   executor,
		codec:      codec,
	}
}

type Loader struct {
	binPath    string
	deviceHint string
	workingDir working_dir.WorkingDir
	executor   executor.Executor
	codec      audio.Codec
}

func (l Loader) Load(ctx context.Context, identifier string) (model.Model, model.Preprocessor, error) {
	errctx := cerr.Fields(cerr.F{
		"bin_path":    l.binPath,
		"model_id":    identifier,
		"device_hint": l.deviceHint,
	})

	logger := log.WithFields(log.Fields{
		"binPath": l.binPath,
		"modelID": identifier,
	})

	logger.Info("Querying separator for model info")
	cmd := l.executor.CommandContext(ctx, l.binPath, "info", "--model", identifier, "--device", l.deviceHint)
	cmd.SetDir(l.workingDir.Root())

	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, nil, errctx.Wrap(err).Error(fmt.Sprintf("Separator could not load the model - output: %s", tail(output)))
	}

	info, err := parseInfo(output)
	if err != nil {
		return nil, nil, errctx.Wrap(err).Error("Separator returned unusable model info")
	}

	logger.WithFields(log.Fields{
		"device":     info.Device,
		"sampleRate": info.SampleRate,
	}).Info("Separator reported model info")

	separationModel := SeparationModel{
		binPath:    l.binPath,
		modelID:    identifier,
		device:     info.Device,
		sampleRate: info.SampleRate,
		workingDir: l.workingDir,
		executor:   l.executor,
		codec:      l.codec,
	}

	return separationModel, Preprocessor{sampleRate: info.SampleRate}, nil
}

func parseInfo(output []byte) (Info, error) {
	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	lastLine := strings.TrimSpace(lines[len(lines)-1])
	if lastLine == "" {
		return Info{}, cerr.Error("Separator printed no model info")
	}

	var info Info
	if err := json.Unmarshal([]byte(lastLine), &info); err != nil {
		return Info{}, cerr.Field("line", lastLine).Wrap(err).Error("Failed to unmarshal model info")
	}

	if info.SampleRate <= 0 {
		return Info{}, cerr.Field("info", info).Error("Model reported a non-positive sample rate")
	}

	if info.Device == "" {
		info.Device = model.CPUDevice
	}

	return info, nil
}

// Preprocessor checks the inputs the separator needs. The tool does its own
// feature extraction, so the batch only carries references.
type Preprocessor struct {
	sampleRate int
}

func (p Preprocessor) SampleRate() int {
	return p.sampleRate
}

func (p Preprocessor) Process(_ context.Context, audioPath string, description string) (model.Batch, error) {
	info, err := os.Stat(audioPath)
	if err != nil {
		return model.Batch{}, cerr.Wrap(err).Error("Audio input is not readable")
	}

	if info.Size() == 0 {
		return model.Batch{}, cerr.Error("Audio input is empty")
	}

	if strings.TrimSpace(description) == "" {
		return model.Batch{}, cerr.Error("Description is empty")
	}

	return model.Batch{
		AudioPath:   audioPath,
		Description: description,
	}, nil
}

type SeparationModel struct {
	binPath    string
	modelID    string
	device     string
	sampleRate int
	workingDir working_dir.WorkingDir
	executor   executor.Executor
	codec      audio.Codec
}

func (s SeparationModel) Device() string {
	return s.device
}

func (s SeparationModel) Separate(ctx context.Context, batch model.Batch, options model.Options) (model.Tracks, error) {
	errctx := cerr.Fields(cerr.F{
		"model_id": s.modelID,
		"device":   batch.Device,
	})

	stemsDir, removeStemsDir, err := s.createTempDir("stems")
	if err != nil {
		return model.Tracks{}, errctx.Wrap(err).Error("Failed to create directory for separated tracks")
	}

	defer removeStemsDir()

	// separation is a lengthy process, if we want to halt now is the time
	if ctx.Err() != nil {
		return model.Tracks{}, errctx.Wrap(ctx.Err()).Error("Context cancelled before separation could happen")
	}

	if err := s.runSeparator(ctx, batch, options, stemsDir); err != nil {
		return model.Tracks{}, errctx.Wrap(err).Error("Failed to execute separator")
	}

	target, err := s.readTrack(stemsDir, TargetFileName)
	if err != nil {
		return model.Tracks{}, errctx.Wrap(err).Error("Failed to read target track")
	}

	residual, err := s.readTrack(stemsDir, ResidualFileName)
	if err != nil {
		return model.Tracks{}, errctx.Wrap(err).Error("Failed to read residual track")
	}

	return model.Tracks{
		Target:   target,
		Residual: residual,
	}, nil
}

func (s SeparationModel) runSeparator(ctx context.Context, batch model.Batch, options model.Options, outputDir string) error {
	device := batch.Device
	if device == "" {
		device = s.device
	}

	rerankingCandidates := options.RerankingCandidates
	if rerankingCandidates < 1 {
		rerankingCandidates = 1
	}

	args := []string{
		"separate",
		"--model", s.modelID,
		"--device", device,
		"--input", batch.AudioPath,
		"--description", batch.Description,
		"--output-dir", outputDir,
		"--reranking-candidates", strconv.Itoa(rerankingCandidates),
	}

	if options.PredictSpans {
		args = append(args, "--predict-spans")
	}

	args = append(args, "--inference-mode")

	logger := log.WithFields(log.Fields{
		"device":              device,
		"predictSpans":        options.PredictSpans,
		"rerankingCandidates": rerankingCandidates,
	})

	logger.Info("Running separator command")
	cmd := s.executor.CommandContext(ctx, s.binPath, args...)
	cmd.SetDir(s.workingDir.Root())

	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return cerr.Wrap(ctx.Err()).Error("Separator was interrupted")
		}

		return cerr.Wrap(err).Error(fmt.Sprintf("Error occurred while running separator - output: %s", tail(output)))
	}

	logger.Debug(string(output))
	logger.Info("Finished separator command")

	return nil
}

func (s SeparationModel) readTrack(dir string, fileName string) (audio.Samples, error) {
	samples, sampleRate, err := audio.DecodeFile(s.codec, filepath.Join(dir, fileName))
	if err != nil {
		return audio.Samples{}, cerr.Field("file_name", fileName).Wrap(err).Error("Failed to decode separator output")
	}

	// tracks are re-encoded at the model rate
	if sampleRate != s.sampleRate {
		return audio.Samples{}, cerr.Fields(cerr.F{
			"file_name":         fileName,
			"sample_rate":       sampleRate,
			"model_sample_rate": s.sampleRate,
		}).Error(fmt.Sprintf("Separator wrote %d Hz audio but the model runs at %d Hz", sampleRate, s.sampleRate))
	}

	return samples, nil
}

func (s SeparationModel) createTempDir(prefix string) (string, func(), error) {
	tempDir, err := os.MkdirTemp(s.workingDir.TempDir(), fmt.Sprintf("%s-*", prefix))
	if err != nil {
		return "", nil, cerr.Wrap(err).Error("Failed to create a temporary directory")
	}

	removeTempDirFn := func() {
		err := os.RemoveAll(tempDir)
		if err != nil {
			log.WithField("tempDir", tempDir).Error("Failed to remove temp dir")
		}
	}

	return tempDir, removeTempDirFn, nil
}

func tail(output []byte) string {
	trimmed := strings.TrimSpace(string(output))
	if len(trimmed) <= maxOutputInError {
		return trimmed
	}

	return "..." + trimmed[len(trimmed)-maxOutputInError:]
}
