package easel

// SoundBuffer holds interleaved float samples in the canonical
// -1..1 range. It is the exchange format between sound streams and
// audio processing code.
type SoundBuffer struct {
	samples    []float32
	channels   int
	sampleRate int
}

// NewSoundBuffer allocates a buffer of numFrames frames.
func NewSoundBuffer(numFrames, channels, sampleRate int) *SoundBuffer {
	if channels < 1 {
		channels = 1
	}
	return &SoundBuffer{
		samples:    make([]float32, numFrames*channels),
		channels:   channels,
		sampleRate: sampleRate,
	}
}

// NumFrames returns the frame count.
func (b *SoundBuffer) NumFrames() int {
	if b.channels == 0 {
		return 0
	}
	return len(b.samples) / b.channels
}

// NumChannels returns the channel count.
func (b *SoundBuffer) NumChannels() int { return b.channels }

// SampleRate returns the sample rate in Hz.
func (b *SoundBuffer) SampleRate() int { return b.sampleRate }

// Samples returns the interleaved sample data.
func (b *SoundBuffer) Samples() []float32 { return b.samples }

// Sample returns one sample. Out-of-range access returns 0.
func (b *SoundBuffer) Sample(frame, channel int) float32 {
	i := frame*b.channels + channel
	if i < 0 || i >= len(b.samples) {
		return 0
	}
	return b.samples[i]
}

// SetSample stores one sample. Out-of-range access is ignored.
func (b *SoundBuffer) SetSample(frame, channel int, v float32) {
	i := frame*b.channels + channel
	if i < 0 || i >= len(b.samples) {
		return
	}
	b.samples[i] = v
}

// SoundInput receives captured audio. The buffer is only valid for the
// duration of the call.
type SoundInput interface {
	AudioIn(buffer *SoundBuffer)
}

// SoundOutput fills buffers for playback. The implementation writes
// into the buffer it is handed.
type SoundOutput interface {
	AudioOut(buffer *SoundBuffer)
}
