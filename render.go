// SPDX-License-Identifier: EPL-2.0

package audwave

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/encoder"
	"github.com/ik5/audwave/formats/aiff"
	"github.com/ik5/audwave/formats/flac"
	"github.com/ik5/audwave/formats/mp3"
	"github.com/ik5/audwave/formats/vorbis"
	"github.com/ik5/audwave/formats/wav"
	"github.com/ik5/audwave/waveform"
)

// Track is decoded audio folded to mono.
type Track struct {
	Samples    []float32
	SampleRate int
}

// Duration of the track, zero when the sample rate is unknown.
func (t Track) Duration() time.Duration {
	if t.SampleRate <= 0 {
		return 0
	}
	return time.Duration(len(t.Samples)) * time.Second / time.Duration(t.SampleRate)
}

// Hooks are called by Renderer.Draw between its stages. Nil hooks are skipped.
type Hooks struct {
	// Decoded runs once the input has been decoded to mono.
	Decoded func(in string, track Track)
	// Written runs after the image has been moved into place.
	Written func(out, format string)
}

// Renderer ties the decoders and encoders to the waveform pipeline.
// A Renderer may be shared by concurrent renders.
type Renderer struct {
	Decoders *audio.Registry
	Encoders *encoder.Registry
	Hooks    Hooks
}

// NewRenderer returns a Renderer with every built-in decoder and encoder.
func NewRenderer() *Renderer {
	return &Renderer{
		Decoders: DefaultDecoders(),
		Encoders: encoder.NewDefaultRegistry(),
	}
}

// DefaultDecoders registers the built-in audio formats. When a file's
// extension is unknown they are tried in this order.
func DefaultDecoders() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(wav.Decoder{}, "wav", "wave")
	reg.Register(aiff.Decoder{}, "aiff", "aif", "aifc")
	reg.Register(flac.Decoder{}, "flac")
	reg.Register(vorbis.Decoder{}, "ogg", "oga")
	// go-mp3 hunts for a frame sync anywhere in the input, so it goes last.
	reg.Register(mp3.Decoder{}, "mp3")
	return reg
}

// DecodeFile reads path and decodes it to mono samples.
func (r *Renderer) DecodeFile(path string) (Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Track{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	src, err := r.Decoders.DecodeBytes(data, filepath.Ext(path))
	if err != nil {
		return Track{}, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	track, err := ReadTrack(src)
	if err != nil {
		return Track{}, fmt.Errorf("%s: %w", path, err)
	}
	return track, nil
}

// ReadTrack drains src, averaging its channels, and closes it.
func ReadTrack(src audio.Source) (Track, error) {
	mono := audio.NewMonoMixer(src)
	defer mono.Close()

	samples, err := audio.ReadAll(mono, 0)
	if err != nil {
		return Track{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return Track{Samples: samples, SampleRate: src.SampleRate()}, nil
}

// RenderSamples reduces mono samples and rasterizes them per cfg.
func RenderSamples(samples []float32, cfg Config) (*image.NRGBA, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	summaries, err := waveform.Reduce(samples, cfg.Width, cfg.Strategy)
	if err != nil {
		return nil, err
	}
	return waveform.Rasterize(summaries, cfg.Width, cfg.Height, cfg.Palette)
}

// Render draws the waveform of src. src is closed.
func (r *Renderer) Render(src audio.Source, cfg Config) (*image.NRGBA, error) {
	if err := cfg.Validate(); err != nil {
		src.Close()
		return nil, err
	}

	track, err := ReadTrack(src)
	if err != nil {
		return nil, err
	}
	return RenderSamples(track.Samples, cfg)
}

// Draw renders the audio file in to the image file out. Nothing is written
// unless every stage succeeds, and a failed write leaves no partial file.
func (r *Renderer) Draw(in, out string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Reject an unusable output format before spending time on decoding.
	_, format, err := r.Encoders.Resolve(out, cfg.Format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}

	track, err := r.DecodeFile(in)
	if err != nil {
		return err
	}
	if r.Hooks.Decoded != nil {
		r.Hooks.Decoded(in, track)
	}

	img, err := RenderSamples(track.Samples, cfg)
	if err != nil {
		return err
	}

	if err := r.Encoders.WriteFile(out, format, img); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncode, out, err)
	}
	if r.Hooks.Written != nil {
		r.Hooks.Written(out, format)
	}
	return nil
}

var defaultRenderer = NewRenderer()

// Draw renders the waveform of the audio file in into the image file out,
// width by height pixels, black on white. cheat selects the approximate
// reduction, which is faster on long files.
func Draw(in, out string, width, height int, cheat bool) error {
	cfg := DefaultConfig(width, height)
	if cheat {
		cfg.Strategy = waveform.Approximate
	}
	return defaultRenderer.Draw(in, out, cfg)
}

// DrawWithConfig is Draw with full control over the render.
func DrawWithConfig(in, out string, cfg Config) error {
	return defaultRenderer.Draw(in, out, cfg)
}
