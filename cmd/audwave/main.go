// SPDX-License-Identifier: EPL-2.0

// Command audwave draws the waveform of an audio file into an image.
//
//	audwave [flags] <input.{wav|aiff|flac|ogg|mp3}> <output.{png|jpg|gif|bmp|tiff}>
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ik5/audwave"
	"github.com/ik5/audwave/waveform"
)

// energyColor marks the RMS band when -energy is set.
var energyColor = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

// exit codes
const (
	exitOK = iota
	exitFailure
	exitUsage
)

type options struct {
	width    int
	height   int
	strategy string
	cheat    bool
	palette  string
	energy   bool
	format   string
	verbose  bool
	in, out  string
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var o options

	fs := flag.NewFlagSet("audwave", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&o.width, "width", 1800, "image width in pixels")
	fs.IntVar(&o.height, "height", 280, "image height in pixels")
	fs.StringVar(&o.strategy, "strategy", "precise", "reduction strategy: precise or approximate")
	fs.BoolVar(&o.cheat, "cheat", false, "shorthand for -strategy approximate")
	fs.StringVar(&o.palette, "palette", "default", "colors: default (black on white) or mask (transparent waveform)")
	fs.BoolVar(&o.energy, "energy", false, "overlay the RMS band of every column")
	fs.StringVar(&o.format, "format", "", "output image format, defaults to the output extension")
	fs.BoolVar(&o.verbose, "verbose", false, "log debug details")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: audwave [flags] <input> <output>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return o, fmt.Errorf("expected 2 arguments, got %d", fs.NArg())
	}
	o.in, o.out = fs.Arg(0), fs.Arg(1)

	return o, nil
}

func (o options) config() (audwave.Config, error) {
	cfg := audwave.DefaultConfig(o.width, o.height)
	cfg.Format = o.format

	strategy, err := waveform.ParseStrategy(o.strategy)
	if err != nil {
		return cfg, err
	}
	if o.cheat {
		strategy = waveform.Approximate
	}
	cfg.Strategy = strategy

	switch strings.ToLower(o.palette) {
	case "", "default":
		cfg.Palette = waveform.DefaultPalette
	case "mask":
		cfg.Palette = waveform.MaskPalette
	default:
		return cfg, fmt.Errorf("%w: unknown palette %q", audwave.ErrInvalidConfiguration, o.palette)
	}
	if o.energy {
		cfg.Palette.Energy = energyColor
	}

	return cfg, cfg.Validate()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func run(o options, logger *zap.Logger) error {
	cfg, err := o.config()
	if err != nil {
		return err
	}

	logger = logger.With(zap.String("input", o.in), zap.String("output", o.out))
	logger.Debug("rendering",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Stringer("strategy", cfg.Strategy),
		zap.String("palette", o.palette),
	)

	start := time.Now()
	r := audwave.NewRenderer()
	r.Hooks = audwave.Hooks{
		Decoded: func(_ string, track audwave.Track) {
			logger.Debug("decoded",
				zap.Int("samples", len(track.Samples)),
				zap.Int("sample_rate", track.SampleRate),
				zap.Duration("duration", track.Duration()),
				zap.Duration("elapsed", time.Since(start)),
			)
		},
		Written: func(_, format string) {
			logger.Info("waveform written",
				zap.String("format", format),
				zap.Duration("elapsed", time.Since(start)),
			)
		},
	}

	return r.Draw(o.in, o.out, cfg)
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stderr))
}

func realMain(args []string, stderr io.Writer) int {
	o, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logger, err := newLogger(o.verbose)
	if err != nil {
		fmt.Fprintln(stderr, "logger:", err)
		return exitFailure
	}
	defer func() { _ = logger.Sync() }()

	if err := run(o, logger); err != nil {
		logger.Error("render failed", zap.Error(err))
		if errors.Is(err, audwave.ErrInvalidConfiguration) {
			return exitUsage
		}
		return exitFailure
	}
	return exitOK
}
