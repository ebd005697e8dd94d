// SPDX-License-Identifier: EPL-2.0

package encoder

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Encoder writes an image in one file format.
type Encoder interface {
	Encode(w io.Writer, img image.Image) error
}

// EncoderFunc adapts a plain function to Encoder.
type EncoderFunc func(w io.Writer, img image.Image) error

func (f EncoderFunc) Encode(w io.Writer, img image.Image) error { return f(w, img) }

// Registry maps format names to encoders.
type Registry struct {
	codecs map[string]Encoder
	mtx    *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Encoder),
		mtx:    &sync.Mutex{},
	}
}

// NewDefaultRegistry returns a registry with png, jpeg, gif, bmp and tiff.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	pngEnc := &png.Encoder{CompressionLevel: png.BestCompression}
	r.Register(EncoderFunc(pngEnc.Encode), "png")

	r.Register(EncoderFunc(func(w io.Writer, img image.Image) error {
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	}), "jpeg", "jpg")

	r.Register(EncoderFunc(func(w io.Writer, img image.Image) error {
		return gif.Encode(w, img, nil)
	}), "gif")

	r.Register(EncoderFunc(bmp.Encode), "bmp")

	r.Register(EncoderFunc(func(w io.Writer, img image.Image) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	}), "tiff", "tif")

	return r
}

// Register adds e under each of the given format names.
func (r *Registry) Register(e Encoder, formats ...string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, f := range formats {
		r.codecs[normalizeFormat(f)] = e
	}
}

func (r *Registry) Get(format string) (Encoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e, ok := r.codecs[normalizeFormat(format)]
	return e, ok
}

// FormatFromPath returns the lower-cased extension of path without its dot.
func FormatFromPath(path string) string {
	return normalizeFormat(filepath.Ext(path))
}

func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), "."))
}
