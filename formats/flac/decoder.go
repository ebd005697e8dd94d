// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/utils"
)

// frameParser is the part of flac.Stream used here, to allow testing.
type frameParser interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

type source struct {
	stream     frameParser
	sampleRate int
	channels   int
	bitDepth   int

	// Interleaved samples of the current frame not handed out yet.
	pending []float32
	eof     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 / s.channels * s.channels }

func (s *source) Close() error {
	if err := s.stream.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// nextFrame decodes one FLAC frame into s.pending.
func (s *source) nextFrame() error {
	f, err := s.stream.ParseNext()
	if err != nil {
		if errors.Is(err, io.EOF) {
			s.eof = true
			return io.EOF
		}
		return fmt.Errorf("decoding flac frame: %w", err)
	}

	if len(f.Subframes) != s.channels {
		return fmt.Errorf("decoding flac frame: %d subframes for %d channels", len(f.Subframes), s.channels)
	}

	blockSize := len(f.Subframes[0].Samples)
	s.pending = s.pending[:0]
	for i := range blockSize {
		for _, sub := range f.Subframes {
			s.pending = append(s.pending, utils.PCMToFloat32(int(sub.Samples[i]), s.bitDepth))
		}
	}

	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	whole := len(dst) / s.channels * s.channels
	if whole == 0 {
		return 0, nil
	}

	written := 0
	for written < whole {
		if len(s.pending) == 0 {
			if s.eof {
				break
			}
			if err := s.nextFrame(); err != nil {
				if err == io.EOF {
					break
				}
				return written, err
			}
			continue
		}

		n := copy(dst[written:whole], s.pending)
		s.pending = s.pending[n:]
		written += n
	}

	if written == 0 && s.eof {
		return 0, io.EOF
	}
	return written, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}
	if stream.Info == nil || stream.Info.NChannels == 0 {
		return nil, ErrNotFlacFile
	}

	bitDepth := int(stream.Info.BitsPerSample)
	if bitDepth < 4 || bitDepth > 32 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	return &source{
		stream:     stream,
		sampleRate: int(stream.Info.SampleRate),
		channels:   int(stream.Info.NChannels),
		bitDepth:   bitDepth,
	}, nil
}
