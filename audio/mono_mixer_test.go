// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"testing"

	"github.com/ik5/audwave/internal/audiotest"
)

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 1, 100, 0.5)
	mixer := NewMonoMixer(src)

	buf := make([]float32, 10)
	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 10 {
		t.Errorf("ReadSamples() n = %d, want 10", n)
	}
	for i := range n {
		if buf[i] != 0.5 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestMonoMixer_Averages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		value    func(channel int) float32
		want     float32
	}{
		{
			name:     "stereo",
			channels: 2,
			value: func(c int) float32 {
				if c == 0 {
					return 0.4
				}
				return 0.6
			},
			want: 0.5,
		},
		{
			name:     "quad",
			channels: 4,
			value:    func(c int) float32 { return float32(c) / 10 },
			want:     0.15,
		},
		{
			name:     "opposite phase cancels",
			channels: 2,
			value: func(c int) float32 {
				if c == 0 {
					return 1
				}
				return -1
			},
			want: 0,
		},
		{
			name:     "six channels",
			channels: 6,
			value:    func(c int) float32 { return float32(c) * 0.1 },
			want:     0.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewMockSource(8000, tt.channels, 100, func(_ int, c int) float32 {
				return tt.value(c)
			})
			mixer := NewMonoMixer(src)

			if mixer.Channels() != 1 {
				t.Errorf("MonoMixer.Channels() = %d, want 1", mixer.Channels())
			}

			buf := make([]float32, 10)
			n, err := mixer.ReadSamples(buf)
			if err != nil {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			if n != 10 {
				t.Fatalf("ReadSamples() n = %d, want 10", n)
			}
			for i := range n {
				if math.Abs(float64(buf[i]-tt.want)) > 0.001 {
					t.Errorf("buf[%d] = %v, want %v", i, buf[i], tt.want)
				}
			}
		})
	}
}

func TestMonoMixer_EOF(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 5))

	buf := make([]float32, 10)
	n, err := mixer.ReadSamples(buf)
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
	if n != 5 {
		t.Errorf("ReadSamples() n = %d, want 5", n)
	}

	n, err = mixer.ReadSamples(buf)
	if err != io.EOF || n != 0 {
		t.Errorf("second ReadSamples() = %d, %v, want 0, io.EOF", n, err)
	}
}

// chunkedSource hands out interleaved samples a few values at a time,
// splitting frames across reads.
type chunkedSource struct {
	samples  []float32
	chunk    int
	channels int
}

func (c *chunkedSource) SampleRate() int { return 8000 }
func (c *chunkedSource) Channels() int   { return c.channels }
func (c *chunkedSource) BufSize() int    { return 64 }
func (c *chunkedSource) Close() error    { return nil }

func (c *chunkedSource) ReadSamples(dst []float32) (int, error) {
	if len(c.samples) == 0 {
		return 0, io.EOF
	}
	n := copy(dst[:min(len(dst), c.chunk)], c.samples)
	c.samples = c.samples[n:]
	return n, nil
}

func TestMonoMixer_SplitFramesKeepAlignment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		chunk    int
	}{
		{name: "stereo in threes", channels: 2, chunk: 3},
		{name: "stereo one by one", channels: 2, chunk: 1},
		{name: "three channels in fives", channels: 3, chunk: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Frame f carries the value f on every channel, so its mean is f.
			const frames = 10
			samples := make([]float32, 0, frames*tt.channels)
			for f := range frames {
				for range tt.channels {
					samples = append(samples, float32(f))
				}
			}

			mixer := NewMonoMixer(&chunkedSource{samples: samples, chunk: tt.chunk, channels: tt.channels})
			got, err := ReadAll(mixer, 4)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if len(got) != frames {
				t.Fatalf("got %d frames, want %d: %v", len(got), frames, got)
			}
			for f := range frames {
				if got[f] != float32(f) {
					t.Errorf("frame %d = %v, want %v", f, got[f], float32(f))
				}
			}
		})
	}
}

func TestMonoMixer_EmptyBuffer(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 100))

	n, err := mixer.ReadSamples(nil)
	if err != nil || n != 0 {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
}

func TestMonoMixer_Metadata(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(44100, 2, 100)
	mixer := NewMonoMixer(src)

	if mixer.SampleRate() != 44100 {
		t.Errorf("MonoMixer.SampleRate() = %d, want 44100", mixer.SampleRate())
	}
	// Frames, not interleaved samples.
	if mixer.BufSize() != src.BufSize()/2 {
		t.Errorf("MonoMixer.BufSize() = %d, want %d", mixer.BufSize(), src.BufSize()/2)
	}
	if err := mixer.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if !src.Closed() {
		t.Error("Close() did not close the wrapped source")
	}
}

func TestMonoMixer_LargeBuffer(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewSineSource(8000, 2, 8000, 440.0))

	samples, err := ReadAll(mixer, 16384)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(samples) != 8000 {
		t.Errorf("got %d frames, want 8000", len(samples))
	}
}

func BenchmarkMonoMixer_StereoToMono(b *testing.B) {
	src := audiotest.NewSineSource(8000, 2, 100000, 440.0)
	mixer := NewMonoMixer(src)
	buf := make([]float32, 4096)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		src.Reset()
		for {
			_, err := mixer.ReadSamples(buf)
			if err == io.EOF {
				break
			}
		}
	}
}

func TestMonoMixer_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	src := audiotest.NewSineSource(8000, 2, 100000, 440.0)
	mixer := NewMonoMixer(src)
	buf := make([]float32, 4096)

	_, _ = mixer.ReadSamples(buf)

	allocs := testing.AllocsPerRun(100, func() {
		src.Reset()
		_, _ = mixer.ReadSamples(buf)
	})

	if allocs > 0 {
		t.Errorf("MonoMixer.ReadSamples() allocated %v times, want 0", allocs)
	}
}
