// Package ft8watch watches a directory for WAV files dropped by a
// capture process and decodes each fixed-duration FT8 or FT4 slot as
// it completes.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/ft8/audio"
	"github.com/ausocean/ft8/callsign"
	"github.com/ausocean/ft8/demod"
	"github.com/ausocean/ft8/filter"
	"github.com/ausocean/ft8/message"
	"github.com/ausocean/utils/logging"
)

const (
	logPath      = "ft8watch.log"
	logMaxSize   = 10 // MB
	logMaxBackup = 5
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = false
)

// ft8SlotSeconds and ft4SlotSeconds are the fixed transmission slot
// lengths a capture process chunks audio into.
const (
	ft8SlotSeconds = 15.0
	ft4SlotSeconds = 7.5
)

func main() {
	dir := flag.String("dir", ".", "directory to watch for new WAV files")
	mode := flag.String("mode", "ft8", "protocol mode: ft8 or ft4")
	loHz := flag.Float64("lo", 50, "lower edge of the search band, Hz")
	hiHz := flag.Float64("hi", 2500, "upper edge of the search band, Hz")
	flag.Parse()

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	log := logging.New(logVerbosity, io.MultiWriter(fileLog, os.Stderr), logSuppress)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatal("failed to create watcher", "error", err)
	}
	defer watcher.Close()

	if err := watcher.Add(*dir); err != nil {
		log.Fatal("failed to watch directory", "error", err, "dir", *dir)
	}
	log.Info("watching for WAV files", "dir", *dir, "mode", *mode)

	d := &decoder{
		mode: decodeMode(*mode),
		loHz: *loHz,
		hiHz: *hiHz,
		tbl:  callsign.NewTable(),
		log:  log,
	}

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			if filepath.Ext(ev.Name) != ".wav" {
				continue
			}
			d.handleFile(ev.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Error("watcher error", "error", err)
		}
	}
}

// decoder streams each incoming WAV file's samples through a
// SlotAccumulator sized to the configured mode, decoding and logging
// every complete slot as it fills.
type decoder struct {
	mode demod.Mode
	loHz float64
	hiHz float64
	tbl  *callsign.Table
	log  logging.Logger
}

func (d *decoder) handleFile(path string) {
	f, err := os.Open(path)
	if err != nil {
		d.log.Error("failed to open file", "path", path, "error", err)
		return
	}
	defer f.Close()

	buf, err := audio.ReadWAV(f)
	if err != nil {
		d.log.Error("failed to read WAV file", "path", path, "error", err)
		return
	}
	d.log.Debug("read audio", "path", path, "samples", len(buf.Samples), "rate", buf.SampleRateHz)

	slotSeconds := ft8SlotSeconds
	if d.mode == demod.ModeFT4 {
		slotSeconds = ft4SlotSeconds
	}

	acc := filter.NewSlotAccumulator(buf.SampleRateHz, slotSeconds, func(slot []float32) {
		d.decodeSlot(path, buf.SampleRateHz, slot)
	})
	if _, err := acc.Write(buf.Samples); err != nil {
		d.log.Error("failed to accumulate samples", "path", path, "error", err)
	}
	if acc.Pending() > 0 {
		d.log.Debug("trailing partial slot discarded", "path", path, "samples", acc.Pending())
	}
}

func (d *decoder) decodeSlot(path string, sampleRateHz int, slot []float32) {
	opts := demod.Options{
		Mode:         d.mode,
		SampleRateHz: float64(sampleRateHz),
		FreqLoHz:     d.loHz,
		FreqHiHz:     d.hiHz,
		Logger:       d.log,
	}
	candidates, err := demod.Decode(slot, d.tbl, opts)
	if err != nil {
		d.log.Error("decode failed", "path", path, "error", err)
		return
	}
	for _, c := range candidates {
		fmt.Printf("%s  %6.1f dB  %s\n", path, c.SNRDb, formatMessage(c.Message))
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
