package audio

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"
)

// writeSeeker is a memory-backed io.WriteSeeker, adapted from the
// teacher's exp/flac writeSeeker for driving the WAV encoder in tests
// without touching the filesystem.
type writeSeeker struct {
	buf []byte
	pos int
}

func (ws *writeSeeker) Bytes() []byte { return ws.buf }

func (ws *writeSeeker) Write(p []byte) (int, error) {
	minCap := ws.pos + len(p)
	if minCap > cap(ws.buf) {
		buf2 := make([]byte, len(ws.buf), minCap+len(p))
		copy(buf2, ws.buf)
		ws.buf = buf2
	}
	if minCap > len(ws.buf) {
		ws.buf = ws.buf[:minCap]
	}
	copy(ws.buf[ws.pos:], p)
	ws.pos += len(p)
	return len(p), nil
}

func (ws *writeSeeker) Seek(offset int64, whence int) (int64, error) {
	newPos, offs := 0, int(offset)
	switch whence {
	case io.SeekStart:
		newPos = offs
	case io.SeekCurrent:
		newPos = ws.pos + offs
	case io.SeekEnd:
		newPos = len(ws.buf) + offs
	}
	if newPos < 0 {
		return 0, errors.New("negative result pos")
	}
	ws.pos = newPos
	return int64(newPos), nil
}

func TestWriteReadWAVRoundTrip(t *testing.T) {
	in := Buffer{
		Samples:      []float32{0, 0.5, -0.5, 1, -1, 0.25},
		SampleRateHz: 12000,
	}

	ws := &writeSeeker{}
	if err := WriteWAV(ws, in); err != nil {
		t.Fatalf("WriteWAV: %v", err)
	}

	out, err := ReadWAV(bytes.NewReader(ws.Bytes()))
	if err != nil {
		t.Fatalf("ReadWAV: %v", err)
	}

	if out.SampleRateHz != in.SampleRateHz {
		t.Errorf("SampleRateHz = %d, want %d", out.SampleRateHz, in.SampleRateHz)
	}
	if len(out.Samples) != len(in.Samples) {
		t.Fatalf("len(Samples) = %d, want %d", len(out.Samples), len(in.Samples))
	}
	const tolerance = 1.0 / 32767 * 2 // two 16-bit quantisation steps
	for i := range in.Samples {
		if math.Abs(float64(out.Samples[i]-in.Samples[i])) > tolerance {
			t.Errorf("sample %d = %v, want ~%v", i, out.Samples[i], in.Samples[i])
		}
	}
}

func TestMixToMonoAveragesChannels(t *testing.T) {
	// Two interleaved stereo frames: (1, -1) and (0.5, 0.5).
	stereo := []float64{1, -1, 0.5, 0.5}
	mono := mixToMono(stereo, 2)
	want := []float64{0, 0.5}
	if len(mono) != len(want) {
		t.Fatalf("len(mono) = %d, want %d", len(mono), len(want))
	}
	for i := range want {
		if mono[i] != want[i] {
			t.Errorf("mono[%d] = %v, want %v", i, mono[i], want[i])
		}
	}
}

func TestMixToMonoPassesThroughAlreadyMono(t *testing.T) {
	mono := []float64{1, 2, 3}
	got := mixToMono(mono, 1)
	for i := range mono {
		if got[i] != mono[i] {
			t.Errorf("mixToMono altered single-channel data at %d: got %v, want %v", i, got[i], mono[i])
		}
	}
}

func TestResampleDecimatesByAveraging(t *testing.T) {
	samples := make([]float32, 48)
	for i := range samples {
		samples[i] = float32(i)
	}
	b := Buffer{Samples: samples, SampleRateHz: 48000}

	out, err := Resample(b, 8000)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}
	if out.SampleRateHz != 8000 {
		t.Errorf("SampleRateHz = %d, want 8000", out.SampleRateHz)
	}
	wantLen := 48 / 6
	if len(out.Samples) != wantLen {
		t.Fatalf("len(Samples) = %d, want %d", len(out.Samples), wantLen)
	}
	// First group of 6 input samples {0..5} averages to 2.5.
	if out.Samples[0] != 2.5 {
		t.Errorf("Samples[0] = %v, want 2.5", out.Samples[0])
	}
}

func TestResampleNoopAtSameRate(t *testing.T) {
	b := Buffer{Samples: []float32{1, 2, 3}, SampleRateHz: 12000}
	out, err := Resample(b, 12000)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}
	if &out.Samples[0] != &b.Samples[0] {
		t.Error("Resample at the same rate should return the input buffer unchanged")
	}
}

func TestResampleRejectsNonDivisorRate(t *testing.T) {
	b := Buffer{Samples: make([]float32, 48000), SampleRateHz: 48000}
	if _, err := Resample(b, 7000); err == nil {
		t.Fatal("Resample did not reject a non-integer-multiple target rate")
	}
}
