package audio

import "fmt"

// Resample downsamples b to rateHz by averaging each group of
// consecutive input samples, adapted from the teacher's
// codec/pcm.Resample decimate-and-average integer-PCM routine to the
// float32 mono domain. As in the teacher's version, only downsampling
// is supported and b's rate must be an integer multiple of rateHz.
func Resample(b Buffer, rateHz int) (Buffer, error) {
	if b.SampleRateHz == rateHz {
		return b, nil
	}
	if b.SampleRateHz <= 0 || rateHz <= 0 {
		return Buffer{}, fmt.Errorf("audio: invalid sample rate (from %d, to %d)", b.SampleRateHz, rateHz)
	}
	if b.SampleRateHz%rateHz != 0 {
		return Buffer{}, fmt.Errorf("audio: %d Hz is not an integer multiple of %d Hz", b.SampleRateHz, rateHz)
	}

	ratio := b.SampleRateHz / rateHz
	n := len(b.Samples) / ratio
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		var sum float32
		for j := 0; j < ratio; j++ {
			sum += b.Samples[i*ratio+j]
		}
		out[i] = sum / float32(ratio)
	}

	return Buffer{Samples: out, SampleRateHz: rateHz}, nil
}
