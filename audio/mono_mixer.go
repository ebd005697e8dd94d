// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer folds a multi-channel Source into one channel by averaging the
// channels of every frame.
type MonoMixer struct {
	src Source
	tmp []float32
	// partial holds the samples of a frame the source split across reads.
	partial []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src:     src,
		tmp:     make([]float32, 4096),
		partial: make([]float32, 0, max(src.Channels(), 1)),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return max(m.src.BufSize()/max(m.src.Channels(), 1), 1) }
func (m *MonoMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples fills dst with mono frames. n counts frames.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels <= 1 {
		return m.src.ReadSamples(dst)
	}

	samplesNeeded := len(dst) * channels
	if cap(m.tmp) < samplesNeeded {
		m.tmp = make([]float32, max(samplesNeeded, 8192))
	}
	m.tmp = m.tmp[:samplesNeeded]

	held := copy(m.tmp, m.partial)
	m.partial = m.partial[:0]

	n, err := m.src.ReadSamples(m.tmp[held:])
	n += held

	frames := n / channels
	if rest := n - frames*channels; rest > 0 && err == nil {
		m.partial = append(m.partial, m.tmp[frames*channels:n]...)
	}
	if frames == 0 {
		return 0, err
	}

	inv := float32(1.0) / float32(channels)

	switch channels {
	case 2:
		for f := range frames {
			idx := f << 1
			dst[f] = (m.tmp[idx] + m.tmp[idx+1]) * 0.5
		}
	default:
		for f := range frames {
			sum := float32(0)
			base := f * channels
			for c := range channels {
				sum += m.tmp[base+c]
			}
			dst[f] = sum * inv
		}
	}

	return frames, err
}
