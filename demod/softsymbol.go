package demod

import (
	"math"

	"github.com/ausocean/ft8/modulate"
)

// dataSymbolPositions returns, in ascending order, the symbol indices
// that carry codeword data (i.e. excluding Costas/ramp positions),
// mirroring modulate.EncodeFT8/EncodeFT4's symbol layout.
func dataSymbolPositions(mode Mode) []int {
	ns := mode.numSymbols()
	reserved := make(map[int]bool, ns)

	if mode == ModeFT4 {
		reserved[0] = true
		reserved[104] = true
		_, offsets := costasPattern(mode)
		for _, off := range offsets {
			for k := 0; k < 4; k++ {
				reserved[off+k] = true
			}
		}
	} else {
		_, offsets := costasPattern(mode)
		for _, off := range offsets {
			for k := 0; k < 7; k++ {
				reserved[off+k] = true
			}
		}
	}

	var out []int
	for sym := 0; sym < ns; sym++ {
		if !reserved[sym] {
			out = append(out, sym)
		}
	}
	return out
}

// ExtractLLRs computes the 174 channel LLRs for a candidate's symbol
// timing/frequency from the waterfall, via log-sum-exp over tone
// magnitudes accounting for the Gray map (§4.5 "Soft-symbol
// extraction").
func ExtractLLRs(wf *Waterfall, cand Candidate, mode Mode, opts *Options) []float64 {
	symFrac := mode.symbolPeriod() / wf.StepS
	toneSpacingHz := 1.0 / mode.symbolPeriod()
	toneBinSpacing := int(math.Round(toneSpacingHz / wf.BinHz))
	if toneBinSpacing < 1 {
		toneBinSpacing = 1
	}
	numTones := mode.numTones()
	bitsPerSym := mode.bitsPerSymbol()

	ungray := invertGray(mode)

	positions := dataSymbolPositions(mode)
	llrs := make([]float64, 0, len(positions)*bitsPerSym)

	mag := make([]float64, numTones)
	for _, sym := range positions {
		timeIdx := cand.TimeBin + int(math.Round(float64(sym)*symFrac))
		for tone := 0; tone < numTones; tone++ {
			freqBin := cand.FreqBin + tone*toneBinSpacing
			if timeIdx >= 0 && timeIdx < wf.NumTimes && freqBin >= 0 && freqBin < wf.NumBins {
				mag[tone] = wf.Mag[timeIdx][freqBin] * opts.SoftScale
			} else {
				mag[tone] = 0
			}
		}

		for bitPos := 0; bitPos < bitsPerSym; bitPos++ {
			var zeroMags, oneMags []float64
			for tone := 0; tone < numTones; tone++ {
				pattern := ungray[tone]
				bit := (pattern >> (bitsPerSym - 1 - bitPos)) & 1
				if bit == 0 {
					zeroMags = append(zeroMags, mag[tone])
				} else {
					oneMags = append(oneMags, mag[tone])
				}
			}
			llrs = append(llrs, logSumExp(zeroMags)-logSumExp(oneMags))
		}
	}
	return llrs
}

func invertGray(mode Mode) []int {
	if mode == ModeFT4 {
		return append([]int(nil), modulate.UnGray4...)
	}
	return append([]int(nil), modulate.UnGray8...)
}

func logSumExp(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	max := vals[0]
	for _, v := range vals[1:] {
		if v > max {
			max = v
		}
	}
	var sum float64
	for _, v := range vals {
		sum += math.Exp(v - max)
	}
	return max + math.Log(sum)
}
