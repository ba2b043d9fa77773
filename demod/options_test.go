package demod

import "testing"

func TestValidateDefaults(t *testing.T) {
	o := Options{Mode: ModeFT8, SampleRateHz: 12000}
	if err := o.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if o.NFFT != defaultNFFT {
		t.Errorf("NFFT = %d, want %d", o.NFFT, defaultNFFT)
	}
	if o.NSTEP != defaultNSTEP {
		t.Errorf("NSTEP = %d, want %d", o.NSTEP, defaultNSTEP)
	}
	if o.FreqLoHz != defaultFreqLoHz || o.FreqHiHz != defaultFreqHiHz {
		t.Errorf("freq band = %v-%v, want %v-%v", o.FreqLoHz, o.FreqHiHz, defaultFreqLoHz, defaultFreqHiHz)
	}
	if o.SyncThreshold != defaultSyncThreshold {
		t.Errorf("SyncThreshold = %v, want %v", o.SyncThreshold, defaultSyncThreshold)
	}
	if o.MaxCandidates != defaultMaxCandidates {
		t.Errorf("MaxCandidates = %d, want %d", o.MaxCandidates, defaultMaxCandidates)
	}
	if o.MaxLDPCIters != 20 {
		t.Errorf("MaxLDPCIters = %d, want 20", o.MaxLDPCIters)
	}
	if o.SoftScale != defaultSoftScale {
		t.Errorf("SoftScale = %v, want %v", o.SoftScale, defaultSoftScale)
	}
}

func TestValidateRejectsBadSampleRate(t *testing.T) {
	o := Options{Mode: ModeFT8}
	if err := o.Validate(); err == nil {
		t.Fatal("Validate did not reject a zero SampleRateHz")
	}
}

func TestValidatePreservesExplicitValues(t *testing.T) {
	o := Options{Mode: ModeFT4, SampleRateHz: 12000, NFFT: 4096, NSTEP: 256, SyncThreshold: 1.0}
	if err := o.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if o.NFFT != 4096 || o.NSTEP != 256 || o.SyncThreshold != 1.0 {
		t.Error("Validate overwrote explicitly set fields")
	}
}

func TestModeHelpers(t *testing.T) {
	if ModeFT8.numSymbols() != 79 || ModeFT4.numSymbols() != 105 {
		t.Error("numSymbols mismatch")
	}
	if ModeFT8.numTones() != 8 || ModeFT4.numTones() != 4 {
		t.Error("numTones mismatch")
	}
	if ModeFT8.bitsPerSymbol() != 3 || ModeFT4.bitsPerSymbol() != 2 {
		t.Error("bitsPerSymbol mismatch")
	}
	if ModeFT8.String() != "FT8" || ModeFT4.String() != "FT4" {
		t.Error("String mismatch")
	}
}
