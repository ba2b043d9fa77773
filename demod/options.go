package demod

import (
	"fmt"

	"github.com/ausocean/utils/logging"
)

// Mode selects the FT8 or FT4 protocol variant.
type Mode int

const (
	ModeFT8 Mode = iota
	ModeFT4
)

func (m Mode) String() string {
	if m == ModeFT4 {
		return "FT4"
	}
	return "FT8"
}

// Options configures a decode run. A zero Options is invalid; call
// Validate to fill in defaults, mirroring the validated Config pattern
// used elsewhere in this module.
type Options struct {
	Mode Mode

	SampleRateHz float64 // input sample rate
	NFFT         int     // FFT length
	NSTEP        int     // hop size, samples

	FreqLoHz float64 // lower edge of the search band
	FreqHiHz float64 // upper edge of the search band

	SyncThreshold  float64 // minimum Costas-sync score to keep a candidate
	MaxCandidates  int     // candidates kept per decode call
	MaxLDPCIters   int     // LDPC decoder iteration cap
	SoftScale      float64 // soft-symbol LLR tuning constant (§9, open question (b))
	Logger         logging.Logger
}

const (
	defaultNFFT          = 2048
	defaultNSTEP         = 512
	defaultFreqLoHz      = 50
	defaultFreqHiHz      = 2500
	defaultSyncThreshold = 2.5
	defaultMaxCandidates = 32
	defaultSoftScale     = 8.0
)

// Validate fills in defaults for unset fields and rejects values that
// can never produce a usable decode (mirrors the revid Config.Validate
// default-and-check pattern).
func (o *Options) Validate() error {
	if o.SampleRateHz <= 0 {
		return fmt.Errorf("demod: SampleRateHz must be positive, got %v", o.SampleRateHz)
	}
	if o.NFFT <= 0 {
		o.logDefault("NFFT", defaultNFFT)
		o.NFFT = defaultNFFT
	}
	if o.NSTEP <= 0 {
		o.logDefault("NSTEP", defaultNSTEP)
		o.NSTEP = defaultNSTEP
	}
	if o.FreqHiHz <= o.FreqLoHz {
		o.logDefault("FreqLoHz/FreqHiHz", fmt.Sprintf("%v-%v", defaultFreqLoHz, defaultFreqHiHz))
		o.FreqLoHz, o.FreqHiHz = defaultFreqLoHz, defaultFreqHiHz
	}
	if o.SyncThreshold <= 0 {
		o.logDefault("SyncThreshold", defaultSyncThreshold)
		o.SyncThreshold = defaultSyncThreshold
	}
	if o.MaxCandidates <= 0 {
		o.logDefault("MaxCandidates", defaultMaxCandidates)
		o.MaxCandidates = defaultMaxCandidates
	}
	if o.MaxLDPCIters <= 0 {
		o.MaxLDPCIters = 20
	}
	if o.SoftScale <= 0 {
		o.logDefault("SoftScale", defaultSoftScale)
		o.SoftScale = defaultSoftScale
	}
	return nil
}

func (o *Options) logDefault(name string, def interface{}) {
	if o.Logger != nil {
		o.Logger.Info(name+" bad or unset, defaulting", name, def)
	}
}

func (m Mode) symbolPeriod() float64 {
	if m == ModeFT4 {
		return 48.0 / 1000.0
	}
	return 0.160
}

func (m Mode) numSymbols() int {
	if m == ModeFT4 {
		return 105
	}
	return 79
}

func (m Mode) numTones() int {
	if m == ModeFT4 {
		return 4
	}
	return 8
}

func (m Mode) bitsPerSymbol() int {
	if m == ModeFT4 {
		return 2
	}
	return 3
}
