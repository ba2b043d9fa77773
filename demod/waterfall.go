// Package demod implements the demodulator / search engine (§4.5):
// spectrogram construction, Costas-sync search, soft-symbol extraction,
// and the candidate decode pipeline.
package demod

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
	"gonum.org/v1/gonum/stat"
)

// Waterfall is the normalised log-power spectrogram (§3 "Waterfall").
type Waterfall struct {
	Mag      [][]float64 // Mag[t][f], zero-mean/unit-variance per frequency column
	BinHz    float64
	StepS    float64
	NumBins  int
	NumTimes int
}

// BuildSpectrogram computes a real-input FFT spectrogram with Hann
// windowing, hop NSTEP, then standardises each frequency bin's power
// series to zero mean and unit variance across time (§4.5).
func BuildSpectrogram(samples []float32, fsHz float64, nfft, nstep int) *Waterfall {
	return BuildSpectrogramPooled(samples, fsHz, nfft, nstep, nil)
}

// BuildSpectrogramPooled is BuildSpectrogram, but draws its per-frame
// and per-column scratch buffers from pool when non-nil, avoiding
// allocation churn across repeated decode calls (§5). The returned
// Waterfall owns freshly allocated storage regardless; only the
// intermediate scratch space is pooled.
func BuildSpectrogramPooled(samples []float32, fsHz float64, nfft, nstep int, pool *BufferPool) *Waterfall {
	win := window.Hann(nfft)
	numBins := nfft/2 + 1
	numFrames := 0
	if len(samples) >= nfft {
		numFrames = (len(samples)-nfft)/nstep + 1
	}

	power := make([][]float64, numFrames)
	var frame []float64
	if pool != nil {
		frame = pool.GetFrame(nfft)
		defer pool.PutFrame(frame)
	} else {
		frame = make([]float64, nfft)
	}
	for t := 0; t < numFrames; t++ {
		start := t * nstep
		for i := 0; i < nfft; i++ {
			frame[i] = float64(samples[start+i]) * win[i]
		}
		spec := fft.FFTReal(frame)
		row := make([]float64, numBins)
		for f := 0; f < numBins; f++ {
			re, im := real(spec[f]), imag(spec[f])
			row[f] = re*re + im*im
		}
		power[t] = row
	}

	mag := make([][]float64, numFrames)
	for t := range mag {
		mag[t] = make([]float64, numBins)
	}
	var col []float64
	if pool != nil {
		col = pool.GetRow(numFrames)
		defer pool.PutRow(col)
	} else {
		col = make([]float64, numFrames)
	}
	for f := 0; f < numBins; f++ {
		for t := 0; t < numFrames; t++ {
			col[t] = math.Log10(power[t][f] + 1e-6)
		}
		mean, std := stat.PopMeanStdDev(col, nil)
		if std == 0 {
			std = 1
		}
		for t := 0; t < numFrames; t++ {
			mag[t][f] = (col[t] - mean) / std
		}
	}

	return &Waterfall{
		Mag:      mag,
		BinHz:    fsHz / float64(nfft),
		StepS:    float64(nstep) / fsHz,
		NumBins:  numBins,
		NumTimes: numFrames,
	}
}
