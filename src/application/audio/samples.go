package audio

// Samples is interleaved integer PCM held in host memory.
type Samples struct {
	Data     []int
	Channels int
	BitDepth int
}

const DefaultBitDepth = 16

func Silence(frames int, channels int) Samples {
	return Samples{
		Data:     make([]int, frames*channels),
		Channels: channels,
		BitDepth: DefaultBitDepth,
	}
}

func (s Samples) Frames() int {
	if s.Channels == 0 {
		return 0
	}

	return len(s.Data) / s.Channels
}

func (s Samples) IsEmpty() bool {
	return len(s.Data) == 0
}
