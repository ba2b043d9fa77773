package demod

import (
	"math"
	"math/rand"
	"testing"
)

func TestBuildSpectrogramDimensions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const fs = 12000.0
	const nfft = 512
	const nstep = 128
	samples := make([]float32, 4000)
	for i := range samples {
		samples[i] = float32(rng.NormFloat64())
	}

	wf := BuildSpectrogram(samples, fs, nfft, nstep)
	wantBins := nfft/2 + 1
	wantFrames := (len(samples)-nfft)/nstep + 1
	if wf.NumBins != wantBins {
		t.Errorf("NumBins = %d, want %d", wf.NumBins, wantBins)
	}
	if wf.NumTimes != wantFrames {
		t.Errorf("NumTimes = %d, want %d", wf.NumTimes, wantFrames)
	}
	if wf.BinHz != fs/nfft {
		t.Errorf("BinHz = %v, want %v", wf.BinHz, fs/nfft)
	}
	if wf.StepS != nstep/fs {
		t.Errorf("StepS = %v, want %v", wf.StepS, nstep/fs)
	}
}

func TestBuildSpectrogramColumnsAreStandardised(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	const fs = 12000.0
	const nfft = 256
	const nstep = 64
	samples := make([]float32, 6000)
	for i := range samples {
		samples[i] = float32(rng.NormFloat64())
	}

	wf := BuildSpectrogram(samples, fs, nfft, nstep)
	for f := 0; f < wf.NumBins; f++ {
		var sum, sumSq float64
		for t := 0; t < wf.NumTimes; t++ {
			v := wf.Mag[t][f]
			sum += v
			sumSq += v * v
		}
		n := float64(wf.NumTimes)
		mean := sum / n
		variance := sumSq/n - mean*mean
		if math.Abs(mean) > 1e-6 {
			t.Errorf("bin %d: mean = %v, want ~0", f, mean)
		}
		if math.Abs(variance-1) > 1e-6 {
			t.Errorf("bin %d: variance = %v, want ~1", f, variance)
		}
	}
}

func TestBuildSpectrogramPooledMatchesUnpooled(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	samples := make([]float32, 3000)
	for i := range samples {
		samples[i] = float32(rng.NormFloat64())
	}

	want := BuildSpectrogram(samples, 12000, 512, 128)
	pool := NewBufferPool()
	got := BuildSpectrogramPooled(samples, 12000, 512, 128, pool)

	if got.NumBins != want.NumBins || got.NumTimes != want.NumTimes {
		t.Fatalf("dimensions differ: got %dx%d, want %dx%d", got.NumTimes, got.NumBins, want.NumTimes, want.NumBins)
	}
	for ti := range want.Mag {
		for fi := range want.Mag[ti] {
			if math.Abs(got.Mag[ti][fi]-want.Mag[ti][fi]) > 1e-9 {
				t.Fatalf("Mag[%d][%d] = %v, want %v", ti, fi, got.Mag[ti][fi], want.Mag[ti][fi])
			}
		}
	}
}
