// Package ft8dec decodes FT8 or FT4 transmissions from a WAV file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/ft8/audio"
	"github.com/ausocean/ft8/callsign"
	"github.com/ausocean/ft8/demod"
	"github.com/ausocean/ft8/message"
	"github.com/ausocean/utils/logging"
)

const (
	logPath      = "ft8dec.log"
	logMaxSize   = 10 // MB
	logMaxBackup = 5
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = false
)

func main() {
	in := flag.String("in", "", "input WAV file path")
	mode := flag.String("mode", "ft8", "protocol mode: ft8 or ft4")
	loHz := flag.Float64("lo", 50, "lower edge of the search band, Hz")
	hiHz := flag.Float64("hi", 2500, "upper edge of the search band, Hz")
	band := flag.Bool("bandpass", false, "pre-filter the audio to [lo,hi] before decoding")
	flag.Parse()

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	log := logging.New(logVerbosity, io.MultiWriter(fileLog, os.Stderr), logSuppress)

	if *in == "" {
		log.Fatal("no -in provided, check usage")
	}

	f, err := os.Open(*in)
	if err != nil {
		log.Fatal("failed to open input file", "error", err)
	}
	defer f.Close()

	buf, err := audio.ReadWAV(f)
	if err != nil {
		log.Fatal("failed to read WAV file", "error", err)
	}
	log.Debug("read audio", "samples", len(buf.Samples), "rate", buf.SampleRateHz)

	samples := buf.Samples
	if *band {
		bp, err := audio.NewBandPass(*loHz, *hiHz, buf.SampleRateHz, 400)
		if err != nil {
			log.Fatal("failed to build band-pass filter", "error", err)
		}
		samples, err = bp.Apply(samples)
		if err != nil {
			log.Fatal("failed to apply band-pass filter", "error", err)
		}
		log.Debug("filtered audio", "lo", *loHz, "hi", *hiHz)
	}

	opts := demod.Options{
		Mode:         decodeMode(*mode),
		SampleRateHz: float64(buf.SampleRateHz),
		FreqLoHz:     *loHz,
		FreqHiHz:     *hiHz,
		Logger:       log,
	}

	tbl := callsign.NewTable()
	candidates, err := demod.Decode(samples, tbl, opts)
	if err != nil {
		log.Fatal("decode failed", "error", err)
	}
	log.Info("decode finished", "candidates", len(candidates))

	for _, c := range candidates {
		fmt.Printf("%6.1f dB  %s\n", c.SNRDb, formatMessage(c.Message))
	}
}

func decodeMode(s string) demod.Mode {
	if s == "ft4" {
		return demod.ModeFT4
	}
	return demod.ModeFT8
}

// formatMessage renders a decoded message as text: Standard and FreeText
// messages in the grammar Parse accepts, Telemetry as space-separated hex
// bytes, and other kinds as a bracketed placeholder.
func formatMessage(m message.Message) string {
	switch m.Kind {
	case message.KindStandard:
		if m.Extra.Kind == message.ExtraNone {
			return fmt.Sprintf("%s %s", m.CallTo, m.CallDe)
		}
		return fmt.Sprintf("%s %s %s", m.CallTo, m.CallDe, m.Extra.String())
	case message.KindFreeText:
		return m.Text
	case message.KindTelemetry:
		return fmt.Sprintf("% X", m.Telemetry[:])
	case message.KindNonStandard:
		return fmt.Sprintf("<non-standard i3=%d>", m.I3)
	default:
		return "<invalid>"
	}
}
