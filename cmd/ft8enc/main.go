// Package ft8enc encodes a text message into an FT8 or FT4 audio
// transmission and writes it to a WAV file.
package main

import (
	"flag"
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/ft8/audio"
	"github.com/ausocean/ft8/bitpack"
	"github.com/ausocean/ft8/callsign"
	"github.com/ausocean/ft8/message"
	"github.com/ausocean/ft8/modulate"
	"github.com/ausocean/utils/logging"
)

const (
	logPath      = "ft8enc.log"
	logMaxSize   = 10 // MB
	logMaxBackup = 5
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = false
)

func main() {
	text := flag.String("text", "", "message text to encode, e.g. \"CQ VK2ABC QF22\"")
	mode := flag.String("mode", "ft8", "protocol mode: ft8 or ft4")
	f0 := flag.Float64("freq", 1500, "audio frequency of tone 0, Hz")
	rate := flag.Float64("rate", 12000, "output sample rate, Hz")
	out := flag.String("out", "out.wav", "output WAV file path")
	flag.Parse()

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	log := logging.New(logVerbosity, io.MultiWriter(fileLog, os.Stderr), logSuppress)

	if *text == "" {
		log.Fatal("no -text provided, check usage")
	}

	m := message.Parse(*text)
	if m.Kind == message.KindInvalid {
		log.Fatal("message did not parse into any known form", "text", *text)
	}
	log.Debug("parsed message", "kind", m.Kind.String())

	payload, err := message.Pack(m, callsign.NewTable())
	if err != nil {
		log.Fatal("failed to pack message", "error", err)
	}

	tones, params, err := encodeTones(*mode, payload)
	if err != nil {
		log.Fatal("failed to encode tones", "error", err)
	}
	log.Info("encoded tones", "mode", *mode, "numTones", len(tones))

	samples := modulate.SynthesizeGFSK(tones, *f0, params, *rate)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal("failed to create output file", "error", err)
	}
	defer f.Close()

	err = audio.WriteWAV(f, audio.Buffer{Samples: samples, SampleRateHz: int(*rate)})
	if err != nil {
		log.Fatal("failed to write WAV file", "error", err)
	}
	seconds := float64(len(samples)) / *rate
	log.Info("wrote transmission", "path", *out, "seconds", seconds)
}

func encodeTones(mode string, payload bitpack.Payload) ([]int, modulate.Params, error) {
	switch mode {
	case "ft4":
		tones, err := modulate.EncodeFT4(payload)
		if err != nil {
			return nil, modulate.Params{}, err
		}
		return tones[:], modulate.FT4Params, nil
	default:
		tones, err := modulate.EncodeFT8(payload)
		if err != nil {
			return nil, modulate.Params{}, err
		}
		return tones[:], modulate.FT8Params, nil
	}
}
