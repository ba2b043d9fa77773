package audio

import (
	"errors"
	"fmt"
	"math"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

// BandPass is a windowed-sinc FIR band-pass filter, adapted from the
// teacher's codec/pcm.SelectiveFrequencyFilter to operate directly on
// normalised float32 PCM rather than byte-encoded S16_LE samples —
// this module never leaves the float32 domain once audio is read in
// (§6). Restricting the demodulator's search band to the Costas/GFSK
// tone range before spectrogram construction improves sync SNR.
type BandPass struct {
	coeffs []float64
	taps   int
}

// NewBandPass builds a band-pass filter passing [fcLower, fcUpper] Hz
// at sampleRateHz, using a length-taps windowed-sinc design (the same
// construction as codec/pcm.newLoHiFilter, convolving a low-pass and a
// high-pass response together).
func NewBandPass(fcLower, fcUpper float64, sampleRateHz int, taps int) (*BandPass, error) {
	if taps <= 0 {
		return nil, errors.New("audio: filter length must be positive")
	}
	nyquist := float64(sampleRateHz) / 2
	if fcLower <= 0 || fcLower >= nyquist || fcUpper <= 0 || fcUpper >= nyquist || fcLower >= fcUpper {
		return nil, fmt.Errorf("audio: invalid band [%v, %v] Hz for a %d Hz sample rate", fcLower, fcUpper, sampleRateHz)
	}

	hp, err := sincFilter(fcLower, sampleRateHz, taps, true)
	if err != nil {
		return nil, fmt.Errorf("audio: building high-pass stage: %w", err)
	}
	lp, err := sincFilter(fcUpper, sampleRateHz, taps, false)
	if err != nil {
		return nil, fmt.Errorf("audio: building low-pass stage: %w", err)
	}

	coeffs, err := fastConvolve(hp, lp)
	if err != nil {
		return nil, fmt.Errorf("audio: convolving filter stages: %w", err)
	}
	return &BandPass{coeffs: coeffs, taps: taps}, nil
}

// Apply band-pass filters samples, returning a slice the length of
// the linear convolution (len(samples)+2*taps: the combined filter has
// 2*taps+1 coefficients).
func (f *BandPass) Apply(samples []float32) ([]float32, error) {
	in := make([]float64, len(samples))
	for i, s := range samples {
		in[i] = float64(s)
	}
	out, err := fastConvolve(in, f.coeffs)
	if err != nil {
		return nil, fmt.Errorf("audio: applying band-pass filter: %w", err)
	}
	result := make([]float32, len(out))
	for i, v := range out {
		result[i] = float32(v)
	}
	return result, nil
}

// sincFilter builds a windowed-sinc low-pass (high=false) or high-pass
// (high=true) response at cutoff Hz, matching codec/pcm.newLoHiFilter.
func sincFilter(cutoffHz float64, sampleRateHz, taps int, high bool) ([]float64, error) {
	fd := cutoffHz / float64(sampleRateHz)
	factor1, factor2 := 1.0, 2*fd
	if high {
		factor1, factor2 = -1.0, 1-2*fd
	}

	size := taps + 1
	coeffs := make([]float64, size)
	b := 2 * math.Pi * fd
	win := window.FlatTop(size)
	for n := 0; n < taps/2; n++ {
		c := float64(n) - float64(taps)/2
		y := math.Sin(c*b) / (math.Pi * c)
		coeffs[n] = factor1 * y * win[n]
		coeffs[size-1-n] = coeffs[n]
	}
	coeffs[taps/2] = factor2 * win[taps/2]
	return coeffs, nil
}

// fastConvolve computes the linear convolution of x and h via
// zero-padded FFT multiplication, as in codec/pcm.fastConvolve.
func fastConvolve(x, h []float64) ([]float64, error) {
	if len(x) == 0 || len(h) == 0 {
		return nil, errors.New("audio: convolution requires non-empty inputs")
	}

	convLen := len(x) + len(h) - 1
	padLen := int(math.Pow(2, math.Ceil(math.Log2(float64(convLen)))))

	xp := make([]float64, padLen)
	copy(xp, x)
	hp := make([]float64, padLen)
	copy(hp, h)

	xFFT, hFFT := fft.FFTReal(xp), fft.FFTReal(hp)
	yFFT := make([]complex128, padLen)
	for i := range xFFT {
		yFFT[i] = xFFT[i] * hFFT[i]
	}

	iy := fft.IFFT(yFFT)
	y := make([]float64, convLen)
	for i := range y {
		y[i] = real(iy[i])
	}
	return y, nil
}
