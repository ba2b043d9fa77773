package demod

import "testing"

func TestExtractLLRsSignMatchesLitTone(t *testing.T) {
	const toneBinSpacing = 5
	numBins, numTimes := 200, 700
	wf := &Waterfall{
		Mag:      make([][]float64, numTimes),
		BinHz:    1.25, // (1/0.16)/toneBinSpacing
		StepS:    0.02, // so symFrac = Tsym/StepS = 8, exact
		NumBins:  numBins,
		NumTimes: numTimes,
	}
	for i := range wf.Mag {
		wf.Mag[i] = make([]float64, numBins)
	}

	positions := dataSymbolPositions(ModeFT8)
	if len(positions) == 0 {
		t.Fatal("dataSymbolPositions(ModeFT8) is empty")
	}
	sym := positions[0]
	timeIdx := sym * 8 // symFrac == 8 exactly, no rounding
	tone := 7          // UnGray8[7] == 7 (0b111): all-ones pattern
	wf.Mag[timeIdx][tone*toneBinSpacing] = 5.0

	cand := Candidate{TimeBin: 0, FreqBin: 0}
	opts := &Options{SoftScale: 1}
	llrs := ExtractLLRs(wf, cand, ModeFT8, opts)

	wantLen := len(positions) * 3
	if len(llrs) != wantLen {
		t.Fatalf("len(llrs) = %d, want %d", len(llrs), wantLen)
	}
	for bit := 0; bit < 3; bit++ {
		if llrs[bit] >= 0 {
			t.Errorf("llrs[%d] = %v, want negative (all-ones tone lit)", bit, llrs[bit])
		}
	}
}

func TestExtractLLRsZeroOnSilentWaterfall(t *testing.T) {
	numBins, numTimes := 200, 700
	wf := &Waterfall{
		Mag:      make([][]float64, numTimes),
		BinHz:    1.25,
		StepS:    0.02,
		NumBins:  numBins,
		NumTimes: numTimes,
	}
	for i := range wf.Mag {
		wf.Mag[i] = make([]float64, numBins)
	}
	cand := Candidate{TimeBin: 0, FreqBin: 0}
	opts := &Options{SoftScale: 1}
	llrs := ExtractLLRs(wf, cand, ModeFT8, opts)
	for i, v := range llrs {
		if v != 0 {
			t.Errorf("llrs[%d] = %v, want 0 on a silent waterfall", i, v)
		}
	}
}
