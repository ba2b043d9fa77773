package demod

import (
	"math"

	"github.com/pkg/errors"

	"github.com/ausocean/ft8/bitpack"
	"github.com/ausocean/ft8/callsign"
	"github.com/ausocean/ft8/ldpc"
	"github.com/ausocean/ft8/message"
	"github.com/ausocean/ft8/modulate"
)

// Decode builds a spectrogram from samples and runs the full §4.5
// pipeline: Costas sync search, soft-symbol extraction, LDPC decode,
// CRC check, and message unpack. Only Decoded candidates are returned;
// per-candidate failures (LdpcFail, CrcFail, unpack errors) drop that
// candidate without aborting the rest (§7).
func Decode(samples []float32, tbl *callsign.Table, opts Options) ([]Candidate, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "demod: invalid options")
	}

	wf := BuildSpectrogram(samples, opts.SampleRateHz, opts.NFFT, opts.NSTEP)
	coarse := SearchCostas(wf, opts.Mode, &opts)

	var decoded []Candidate
	for _, cand := range coarse {
		cand.State = SoftMetricsReady
		llrs := ExtractLLRs(wf, cand, opts.Mode, &opts)

		c, errs := ldpc.Decode(llrs, opts.MaxLDPCIters)
		cand.LdpcErr = errs
		if errs != 0 {
			cand.State = LdpcFail
			continue
		}
		cand.State = LdpcOk

		var w bitpack.PayloadWithCrc
		copy(w[:], c[:])
		if !ldpc.CheckCRC(w) {
			cand.State = CrcFail
			continue
		}
		cand.State = CrcOk

		var p bitpack.Payload
		copy(p[:], w[:])
		if opts.Mode == ModeFT4 {
			p = modulate.XorFT4Mask(p)
		}

		m, err := message.Unpack(p, tbl)
		if err != nil {
			cand.State = Rejected
			continue
		}

		cand.Message = m
		cand.SNRDb = estimateSNR(wf, cand, opts.Mode)
		cand.State = Decoded
		decoded = append(decoded, cand)
	}
	return decoded, nil
}

// estimateSNR computes 10*log10(signal/noise) from the on-tone vs
// neighbouring-bin magnitudes of the candidate's sync symbols,
// clamped to [-24, +24] dB (§4.5 "Pipeline").
func estimateSNR(wf *Waterfall, cand Candidate, mode Mode) float64 {
	symFrac := mode.symbolPeriod() / wf.StepS
	toneSpacingHz := 1.0 / mode.symbolPeriod()
	toneBinSpacing := int(math.Round(toneSpacingHz / wf.BinHz))
	if toneBinSpacing < 1 {
		toneBinSpacing = 1
	}
	numTones := mode.numTones()
	blocks, offsets := costasPattern(mode)

	var sigSum, noiseSum float64
	var sigN, noiseN int
	for bi, off := range offsets {
		for k, tone := range blocks[bi%len(blocks)] {
			timeIdx := cand.TimeBin + int(math.Round(float64(off+k)*symFrac))
			if timeIdx < 0 || timeIdx >= wf.NumTimes {
				continue
			}
			fb := cand.FreqBin + tone*toneBinSpacing
			if fb >= 0 && fb < wf.NumBins {
				sigSum += wf.Mag[timeIdx][fb]
				sigN++
			}
			for _, side := range []int{-2 * toneBinSpacing, (numTones + 1) * toneBinSpacing} {
				fb := cand.FreqBin + side
				if fb >= 0 && fb < wf.NumBins {
					noiseSum += wf.Mag[timeIdx][fb]
					noiseN++
				}
			}
		}
	}
	if sigN == 0 || noiseN == 0 {
		return 0
	}
	sigPower := sigSum / float64(sigN)
	noisePower := noiseSum / float64(noiseN)
	if noisePower <= 0 {
		noisePower = 1e-6
	}
	if sigPower <= 0 {
		sigPower = 1e-6
	}
	snr := 10 * math.Log10(sigPower/noisePower)
	if snr > 24 {
		return 24
	}
	if snr < -24 {
		return -24
	}
	return snr
}
