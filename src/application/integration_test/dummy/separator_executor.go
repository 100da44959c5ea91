package dummy

import (
	"context"
	"encoding/json"
	"path/filepath"
	"sync"

	"sam-audio-server/src/application/audio"
	"sam-audio-server/src/application/executor"
	"sam-audio-server/src/application/model/samcli"
)

var _ executor.Executor = &SeparatorExecutor{}

func NewDummySeparatorExecutor() *SeparatorExecutor {
	return &SeparatorExecutor{
		Unavailable: false,
		Device:      "cpu",
		SampleRate:  16000,
	}
}

// SeparatorExecutor pretends to be the sam-audio tool. The target track is
// the input untouched and the residual is the input with every sample negated.
type SeparatorExecutor struct {
	Unavailable bool
	Device      string
	SampleRate  int

	mu    sync.Mutex
	calls [][]string
}

type SeparatorCommand struct {
	ctx         context.Context
	unavailable bool
	device      string
	sampleRate  int
	Args        []string
}

func (s *SeparatorExecutor) CommandContext(ctx context.Context, _ string, arg ...string) executor.Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, append([]string{}, arg...))

	return SeparatorCommand{
		ctx:         ctx,
		unavailable: s.Unavailable,
		device:      s.Device,
		sampleRate:  s.SampleRate,
		Args:        arg,
	}
}

func (s *SeparatorExecutor) Calls() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]string{}, s.calls...)
}

func (s *SeparatorExecutor) CallsTo(subcommand string) [][]string {
	matching := [][]string{}
	for _, call := range s.Calls() {
		if len(call) > 0 && call[0] == subcommand {
			matching = append(matching, call)
		}
	}
	return matching
}

func (s SeparatorCommand) SetDir(_ string) {}

func (s SeparatorCommand) CombinedOutput() ([]byte, error) {
	if s.ctx != nil && s.ctx.Err() != nil {
		return nil, s.ctx.Err()
	}

	if len(s.Args) == 0 {
		return nil, UnexpectedInput
	}

	switch s.Args[0] {
	case "info":
		return s.info()
	case "separate":
		return s.separate()
	default:
		return nil, UnexpectedInput
	}
}

func (s SeparatorCommand) info() ([]byte, error) {
	if s.unavailable {
		return []byte("401 Client Error: access to model is restricted"), NetworkFailure
	}

	info, err := json.Marshal(samcli.Info{
		Device:     s.device,
		SampleRate: s.sampleRate,
	})
	if err != nil {
		return nil, err
	}

	return append([]byte("Fetching 3 files\n"), info...), nil
}

func (s SeparatorCommand) separate() ([]byte, error) {
	sourcePath, err := getOptionValue(s.Args, "--input")
	if err != nil {
		return nil, err
	}

	destinationDir, err := getOptionValue(s.Args, "--output-dir")
	if err != nil {
		return nil, err
	}

	if _, err := getOptionValue(s.Args, "--description"); err != nil {
		return nil, err
	}

	if s.unavailable {
		return []byte("RuntimeError: CUDA out of memory"), ProcessCrashed
	}

	codec := audio.WAVCodec{}
	samples, sampleRate, err := audio.DecodeFile(codec, sourcePath)
	if err != nil {
		return []byte("could not decode input"), err
	}

	residual := audio.Samples{
		Data:     make([]int, len(samples.Data)),
		Channels: samples.Channels,
		BitDepth: samples.BitDepth,
	}
	for i, sample := range samples.Data {
		residual.Data[i] = -sample
	}

	if err := audio.EncodeFile(codec, filepath.Join(destinationDir, samcli.TargetFileName), samples, sampleRate); err != nil {
		return nil, err
	}

	if err := audio.EncodeFile(codec, filepath.Join(destinationDir, samcli.ResidualFileName), residual, sampleRate); err != nil {
		return nil, err
	}

	return []byte("Success"), nil
}

func getOptionValue(args []string, key string) (string, error) {
	for i, arg := range args {
		if arg == key && i+1 < len(args) {
			return args[i+1], nil
		}
	}

	return "", UnexpectedInput
}

func HasFlag(args []string, flag string) bool {
	for _, arg := range args {
		if arg == flag {
			return true
		}
	}

	return false
}

func OptionValue(args []string, key string) string {
	value, _ := getOptionValue(args, key)
	return value
}
