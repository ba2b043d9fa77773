package modulate

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Params bundles the per-mode GFSK synthesis constants (§3, §4.4).
type Params struct {
	SymbolPeriod float64 // Tsym, seconds
	BT           float64 // Gaussian pulse BT product
}

// FT8Params are FT8's GFSK synthesis parameters.
var FT8Params = Params{SymbolPeriod: 0.160, BT: 2.0}

// FT4Params are FT4's GFSK synthesis parameters.
var FT4Params = Params{SymbolPeriod: 48.0 / 1000.0, BT: 1.0}

const modulationIndex = 1.0 // h

// SynthesizeGFSK renders a Gaussian-shaped FSK baseband waveform from a
// tone sequence (§4.4). f0Hz is the frequency of tone 0; fsHz is the
// output sample rate. Samples are float32 in [-1, 1].
func SynthesizeGFSK(tones []int, f0Hz float64, p Params, fsHz float64) []float32 {
	nspsym := int(math.Round(fsHz * p.SymbolPeriod))
	if nspsym < 1 {
		nspsym = 1
	}
	ns := len(tones)

	pulse := gaussianPulse(nspsym, p.BT)

	dphiLen := (ns + 2) * nspsym
	dphi := make([]float64, dphiLen)
	baseline := 2 * math.Pi * f0Hz / fsHz
	floats.AddConst(baseline, dphi)

	dphiPeak := 2 * math.Pi * modulationIndex / float64(nspsym)

	// Extended symbol sequence: duplicate the first and last real
	// symbols into the leading and trailing pulse windows so the
	// Gaussian pulse is well-formed at the boundaries. ext[i] starts at
	// offset (i-1)*nspsym, so real symbol j starts at j*nspsym.
	ext := make([]int, ns+2)
	ext[0] = tones[0]
	copy(ext[1:ns+1], tones)
	ext[ns+1] = tones[ns-1]

	for i, tone := range ext {
		amp := dphiPeak * float64(tone)
		base := (i - 1) * nspsym
		for k, pv := range pulse {
			idx := base + k
			if idx < 0 || idx >= dphiLen {
				continue
			}
			dphi[idx] += amp * pv
		}
	}

	nout := ns * nspsym
	samples := make([]float32, nout)
	phase := 0.0
	for k := 0; k < nout; k++ {
		phase += dphi[k+nspsym]
		phase = wrapPhase(phase)
		samples[k] = float32(math.Sin(phase))
	}

	applyRaisedCosineEnvelope(samples, nspsym/8)
	return samples
}

// gaussianPulse builds the length-3*nspsym Gaussian frequency pulse
// p(t) = (erf(K*BT*(t+0.5)) - erf(K*BT*(t-0.5)))/2 for t in [-1.5,1.5]
// symbol periods, K = pi*sqrt(2/ln2) (§4.4).
func gaussianPulse(nspsym int, bt float64) []float64 {
	k := math.Pi * math.Sqrt(2/math.Ln2)
	n := 3 * nspsym
	pulse := make([]float64, n)
	for i := 0; i < n; i++ {
		// t spans [-1.5, 1.5) symbol periods across the n samples.
		t := -1.5 + (float64(i)+0.5)/float64(nspsym)
		pulse[i] = (math.Erf(k*bt*(t+0.5)) - math.Erf(k*bt*(t-0.5))) / 2
	}
	return pulse
}

func wrapPhase(phase float64) float64 {
	for phase > math.Pi {
		phase -= 2 * math.Pi
	}
	for phase < -math.Pi {
		phase += 2 * math.Pi
	}
	return phase
}

func applyRaisedCosineEnvelope(samples []float32, rampLen int) {
	if rampLen < 1 || 2*rampLen > len(samples) {
		return
	}
	for i := 0; i < rampLen; i++ {
		w := 0.5 * (1 - math.Cos(math.Pi*float64(i)/float64(rampLen)))
		samples[i] *= float32(w)
		samples[len(samples)-1-i] *= float32(w)
	}
}
