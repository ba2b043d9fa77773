// Package audio adapts WAV files to the mono float32 PCM contract the
// modulator and demodulator use (§6 "Audio contract"): sequences of
// float32 samples normalised to [-1, +1] at a single sample rate,
// multiple channels mixed down by averaging rather than discarded.
package audio

import (
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const wavPCMFormat = 1
const wavBitDepth = 16

// Buffer is mono float32 PCM at SampleRateHz.
type Buffer struct {
	Samples      []float32
	SampleRateHz int
}

// ReadWAV decodes r as a WAV file and mixes it down to mono float32,
// averaging channels rather than keeping only the first (§6).
func ReadWAV(r io.Reader) (Buffer, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return Buffer{}, fmt.Errorf("audio: not a valid WAV file")
	}

	intBuf, err := dec.FullPCMBuffer()
	if err != nil {
		return Buffer{}, fmt.Errorf("audio: reading PCM data: %w", err)
	}
	fb := intBuf.AsFloatBuffer()
	channels := fb.Format.NumChannels
	if channels < 1 {
		return Buffer{}, fmt.Errorf("audio: invalid channel count %d", channels)
	}

	// AsFloatBuffer keeps the integer PCM values; scale them to [-1, +1].
	scale := math.Ldexp(1, intBuf.SourceBitDepth-1)
	mono := mixToMono(fb.Data, channels)
	samples := make([]float32, len(mono))
	for i, v := range mono {
		samples[i] = float32(v / scale)
	}

	return Buffer{Samples: samples, SampleRateHz: fb.Format.SampleRate}, nil
}

// WriteWAV encodes b as a 16-bit mono PCM WAV file to w.
func WriteWAV(w io.WriteSeeker, b Buffer) error {
	data := make([]int, len(b.Samples))
	const scale = 32767
	for i, s := range b.Samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		data[i] = int(s * scale)
	}

	enc := wav.NewEncoder(w, b.SampleRateHz, wavBitDepth, 1, wavPCMFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: b.SampleRateHz},
		Data:           data,
		SourceBitDepth: wavBitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("audio: writing PCM data: %w", err)
	}
	return enc.Close()
}

// mixToMono averages each frame's channels into a single sample,
// rather than taking one channel and discarding the rest (§6 requires
// averaging, unlike the teacher's codec/pcm.StereoToMono which keeps
// only the left channel).
func mixToMono(data []float64, channels int) []float64 {
	if channels == 1 {
		return data
	}
	n := len(data) / channels
	mono := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for c := 0; c < channels; c++ {
			sum += data[i*channels+c]
		}
		mono[i] = sum / float64(channels)
	}
	return mono
}
