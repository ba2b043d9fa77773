package demod_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/ausocean/ft8/audio"
	"github.com/ausocean/ft8/callsign"
	"github.com/ausocean/ft8/demod"
	"github.com/ausocean/ft8/message"
	"github.com/ausocean/ft8/modulate"
)

// memSeeker adapts a growable byte buffer to io.WriteSeeker, for
// feeding audio.WriteWAV without touching the filesystem.
type memSeeker struct {
	buf []byte
	pos int
}

func (m *memSeeker) Write(p []byte) (int, error) {
	end := m.pos + len(p)
	if end > len(m.buf) {
		grown := make([]byte, end)
		copy(grown, m.buf)
		m.buf = grown
	}
	copy(m.buf[m.pos:end], p)
	m.pos = end
	return len(p), nil
}

func (m *memSeeker) Seek(offset int64, whence int) (int64, error) {
	var base int
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = m.pos
	case io.SeekEnd:
		base = len(m.buf)
	}
	m.pos = base + int(offset)
	return int64(m.pos), nil
}

// TestFullPipelineFT8NoiselessRoundTrip drives a Standard message
// through the full encode-to-decode chain on a clean signal (§8
// scenario 5): message.Pack, modulate.EncodeFT8, GFSK synthesis, a WAV
// round trip through the audio package, spectrogram construction, and
// demod.Decode, checking the recovered message matches what went in.
func TestFullPipelineFT8NoiselessRoundTrip(t *testing.T) {
	const (
		fsHz  = 12000.0
		nfft  = 1920 // BinHz = fsHz/nfft = 6.25, exactly the FT8 tone spacing.
		nstep = 480  // StepS = nstep/fsHz = 0.04s; Tsym/StepS = 4 exactly.
		f0Hz  = 1500.0
	)

	sent := message.Parse("CQ VK2ABC QF22")
	if sent.Kind != message.KindStandard {
		t.Fatalf("Parse = %s, want Standard", sent.Kind)
	}

	payload, err := message.Pack(sent, nil)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}

	tones, err := modulate.EncodeFT8(payload)
	if err != nil {
		t.Fatalf("EncodeFT8: %v", err)
	}

	samples := modulate.SynthesizeGFSK(tones[:], f0Hz, modulate.FT8Params, fsHz)

	var ms memSeeker
	if err := audio.WriteWAV(&ms, audio.Buffer{Samples: samples, SampleRateHz: fsHz}); err != nil {
		t.Fatalf("WriteWAV: %v", err)
	}

	buf, err := audio.ReadWAV(bytes.NewReader(ms.buf))
	if err != nil {
		t.Fatalf("ReadWAV: %v", err)
	}

	opts := demod.Options{
		Mode:         demod.ModeFT8,
		SampleRateHz: float64(buf.SampleRateHz),
		NFFT:         nfft,
		NSTEP:        nstep,
	}

	tbl := callsign.NewTable()
	candidates, err := demod.Decode(buf.Samples, tbl, opts)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(candidates) == 0 {
		t.Fatal("Decode found no candidates on a clean, noiseless signal")
	}

	var found bool
	for _, c := range candidates {
		if c.Message.Kind == message.KindStandard && c.Message.CallTo == sent.CallTo && c.Message.CallDe == sent.CallDe {
			found = true
		}
	}
	if !found {
		t.Errorf("decoded candidates did not include the transmitted message %q %q; got %+v", sent.CallTo, sent.CallDe, candidates)
	}
}
