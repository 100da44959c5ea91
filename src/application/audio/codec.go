package audio

import (
	"io"
	"os"

	"sam-audio-server/src/lib/cerr"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

var _ Codec = WAVCodec{}

const pcmAudioFormat = 1

type Codec interface {
	Encode(w io.WriteSeeker, samples Samples, sampleRate int) error
	Decode(r io.ReadSeeker) (Samples, int, error)
}

type WAVCodec struct{}

func (WAVCodec) Encode(w io.WriteSeeker, samples Samples, sampleRate int) error {
	errctx := cerr.Fields(cerr.F{
		"sample_rate": sampleRate,
		"channels":    samples.Channels,
		"bit_depth":   samples.BitDepth,
	})

	if sampleRate <= 0 {
		return errctx.Error("Sample rate must be positive")
	}

	if samples.Channels <= 0 {
		return errctx.Error("Samples must have at least one channel")
	}

	bitDepth := samples.BitDepth
	if bitDepth == 0 {
		bitDepth = DefaultBitDepth
	}

	encoder := wav.NewEncoder(w, sampleRate, bitDepth, samples.Channels, pcmAudioFormat)
	buffer := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: samples.Channels,
			SampleRate:  sampleRate,
		},
		Data:           samples.Data,
		SourceBitDepth: bitDepth,
	}

	if err := encoder.Write(buffer); err != nil {
		return errctx.Wrap(err).Error("Failed to write PCM data")
	}

	if err := encoder.Close(); err != nil {
		return errctx.Wrap(err).Error("Failed to finalize WAV header")
	}

	return nil
}

func (WAVCodec) Decode(r io.ReadSeeker) (Samples, int, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return Samples{}, 0, cerr.Error("Audio is not a valid WAV file")
	}

	buffer, err := decoder.FullPCMBuffer()
	if err != nil {
		return Samples{}, 0, cerr.Wrap(err).Error("Failed to read PCM data")
	}

	samples := Samples{
		Data:     buffer.Data,
		Channels: int(decoder.NumChans),
		BitDepth: int(decoder.BitDepth),
	}

	return samples, int(decoder.SampleRate), nil
}

func DecodeFile(codec Codec, path string) (Samples, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return Samples{}, 0, cerr.Wrap(err).Error("Failed to open audio file")
	}

	defer file.Close()

	return codec.Decode(file)
}

func EncodeFile(codec Codec, path string, samples Samples, sampleRate int) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return cerr.Wrap(err).Error("Failed to create audio file")
	}

	defer func() {
		closeErr := file.Close()
		if err == nil && closeErr != nil {
			err = cerr.Wrap(closeErr).Error("Failed to close audio file")
		}
	}()

	return codec.Encode(file, samples, sampleRate)
}
