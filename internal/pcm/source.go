// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts go-audio integer decoders to audio.Source.
package pcm

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audwave/utils"
)

// Reader is the part of the go-audio wav and aiff decoders used here.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Layout8 says how a container stores 8-bit samples. The go-audio decoders
// hand out the raw byte (0..255) for both WAV and AIFF.
type Layout8 int

const (
	// Unsigned8 samples are offset by 128, as in WAV.
	Unsigned8 Layout8 = iota
	// Signed8 samples are two's complement bytes, as in AIFF.
	Signed8
)

// Source converts the integer PCM frames of a Reader into float32 samples.
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	bitDepth   int
	layout8    Layout8
	intBuf     *goaudio.IntBuffer
}

// NewSource wraps dec. layout8 only matters when bitDepth is 8.
func NewSource(dec Reader, sampleRate, channels, bitDepth int, layout8 Layout8) *Source {
	return &Source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
		layout8:    layout8,
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }
func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.dec.Format(),
			SourceBitDepth: s.bitDepth,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("reading pcm: %w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	for i := range n {
		dst[i] = utils.PCMToFloat32(s.sample(s.intBuf.Data[i]), s.bitDepth)
	}

	// A short read means the decoder ran out of data.
	if n < len(dst) || err == io.EOF {
		return n, io.EOF
	}

	return n, nil
}

// sample turns a decoded integer into a signed value of s.bitDepth bits.
func (s *Source) sample(v int) int {
	if s.bitDepth != 8 {
		return v
	}
	if s.layout8 == Signed8 {
		return int(int8(v))
	}
	return v - 128
}
