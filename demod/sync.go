package demod

import (
	"math"
	"sort"

	"github.com/ausocean/ft8/modulate"
)

// costasPattern returns the Costas tone sequence and the symbol
// offsets at which each block starts, for the given mode.
func costasPattern(mode Mode) (blocks [][]int, offsets []int) {
	if mode == ModeFT4 {
		blocks = make([][]int, len(modulate.FT4Costas))
		for i, q := range modulate.FT4Costas {
			blocks[i] = append([]int(nil), q[:]...)
		}
		return blocks, append([]int(nil), modulate.FT4CostasOffsets[:]...)
	}
	return [][]int{append([]int(nil), modulate.FT8Costas[:]...)}, append([]int(nil), modulate.FT8CostasOffsets[:]...)
}

// SearchCostas scores every (timeBin, freqBin) grid point in the
// configured band for Costas-sync alignment, keeps points above
// opts.SyncThreshold, and non-maximum-suppresses over a +/-1 symbol,
// +/-1 bin neighbourhood (§4.5 "Sync search").
func SearchCostas(wf *Waterfall, mode Mode, opts *Options) []Candidate {
	blocks, offsets := costasPattern(mode)
	symFrac := mode.symbolPeriod() / wf.StepS
	toneSpacingHz := 1.0 / mode.symbolPeriod()
	toneBinSpacing := int(math.Round(toneSpacingHz / wf.BinHz))
	if toneBinSpacing < 1 {
		toneBinSpacing = 1
	}
	numTones := mode.numTones()

	freqLoBin := int(math.Round(opts.FreqLoHz / wf.BinHz))
	freqHiBin := int(math.Round(opts.FreqHiHz / wf.BinHz))

	// Frames from t0 to the last Costas symbol, used to bound t0 so
	// every block stays in range.
	lastBlockEnd := 0
	for bi, off := range offsets {
		end := off + len(blocks[bi%len(blocks)])
		if end > lastBlockEnd {
			lastBlockEnd = end
		}
	}
	span := int(math.Round(float64(lastBlockEnd-1) * symFrac))

	var raw []Candidate
	for t0 := 0; t0+span < wf.NumTimes; t0++ {
		for f0 := freqLoBin; f0+(numTones-1)*toneBinSpacing <= freqHiBin && f0 >= 0 && f0+(numTones-1)*toneBinSpacing < wf.NumBins; f0++ {
			score := costasScore(wf, blocks, offsets, symFrac, toneBinSpacing, numTones, t0, f0)
			if score >= opts.SyncThreshold {
				raw = append(raw, Candidate{TimeBin: t0, FreqBin: f0, SyncScore: score, State: CoarseSynced})
			}
		}
	}

	sort.Slice(raw, func(i, j int) bool { return raw[i].SyncScore > raw[j].SyncScore })

	symStep := int(math.Round(symFrac))
	if symStep < 1 {
		symStep = 1
	}
	var kept []Candidate
	for _, cand := range raw {
		suppressed := false
		for _, k := range kept {
			if abs(cand.TimeBin-k.TimeBin) <= symStep && abs(cand.FreqBin-k.FreqBin) <= 1 {
				suppressed = true
				break
			}
		}
		if suppressed {
			continue
		}
		kept = append(kept, cand)
		if len(kept) >= opts.MaxCandidates {
			break
		}
	}
	return kept
}

// costasScore accumulates on-tone magnitude across every Costas block
// and subtracts the mean off-tone magnitude at the same time slot, to
// reject wideband interferers (§4.5).
func costasScore(wf *Waterfall, blocks [][]int, offsets []int, symFrac float64, toneBinSpacing, numTones, t0, f0 int) float64 {
	var score float64
	var n int
	for bi, off := range offsets {
		pattern := blocks[bi%len(blocks)]
		for k, tone := range pattern {
			timeIdx := t0 + int(math.Round(float64(off+k)*symFrac))
			if timeIdx >= wf.NumTimes {
				continue
			}
			onFreq := f0 + tone*toneBinSpacing
			var offSum float64
			var offCount int
			for other := 0; other < numTones; other++ {
				if other == tone {
					continue
				}
				fb := f0 + other*toneBinSpacing
				if fb >= 0 && fb < wf.NumBins {
					offSum += wf.Mag[timeIdx][fb]
					offCount++
				}
			}
			var offMean float64
			if offCount > 0 {
				offMean = offSum / float64(offCount)
			}
			if onFreq >= 0 && onFreq < wf.NumBins {
				score += wf.Mag[timeIdx][onFreq] - offMean
				n++
			}
		}
	}
	if n == 0 {
		return 0
	}
	return score / float64(n)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
