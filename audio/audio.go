// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"strings"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)
	// BufSize is the read size the source prefers, in samples.
	BufSize() int
	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format names (usually file extensions such as "wav" or
// "ogg") to decoders and remembers the order decoders were added in.
type Registry struct {
	// codecs maps a format name to its decoder's index in order.
	codecs map[string]int
	order  []Decoder
	mtx    *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]int),
		mtx:    &sync.Mutex{},
	}
}

// Register adds d under each of the given format names. Names are matched
// case-insensitively and a leading dot is ignored, so ".WAV" and "wav" are
// the same key.
func (r *Registry) Register(d Decoder, formats ...string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, f := range formats {
		r.codecs[normalizeFormat(f)] = len(r.order)
	}
	r.order = append(r.order, d)
}

func (r *Registry) Get(format string) (Decoder, bool) {
	d, _, ok := r.lookup(format)
	return d, ok
}

func (r *Registry) lookup(format string) (Decoder, int, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	i, ok := r.codecs[normalizeFormat(format)]
	if !ok {
		return nil, -1, false
	}
	return r.order[i], i, true
}

// Decoders returns every registered decoder in registration order.
func (r *Registry) Decoders() []Decoder {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	out := make([]Decoder, len(r.order))
	copy(out, r.order)
	return out
}

func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), "."))
}
