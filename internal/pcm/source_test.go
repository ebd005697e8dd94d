// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockReader serves a fixed slice of integer samples.
type mockReader struct {
	data   []int
	offset int
	err    error
}

func (m *mockReader) Format() *goaudio.Format {
	return &goaudio.Format{NumChannels: 1, SampleRate: 8000}
}

func (m *mockReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	n := copy(buf.Data, m.data[m.offset:])
	m.offset += n
	return n, nil
}

func TestSource_Converts16Bit(t *testing.T) {
	t.Parallel()

	src := NewSource(&mockReader{data: []int{0, 16384, -32768, 8192}}, 8000, 1, 16, Signed8)

	buf := make([]float32, 4)
	n, err := src.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}

	want := []float32{0, 0.5, -1, 0.25}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}

	n, err = src.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = %d, %v, want 0, io.EOF", n, err)
	}
}

func TestSource_ShortReadIsEOF(t *testing.T) {
	t.Parallel()

	src := NewSource(&mockReader{data: []int{100, 200}}, 8000, 1, 16, Signed8)

	n, err := src.ReadSamples(make([]float32, 10))
	if n != 2 {
		t.Errorf("ReadSamples() n = %d, want 2", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
}

func TestSource_Unsigned8Bit(t *testing.T) {
	t.Parallel()

	src := NewSource(&mockReader{data: []int{128, 0, 192}}, 8000, 1, 8, Unsigned8)

	buf := make([]float32, 3)
	if _, err := src.ReadSamples(buf); err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	want := []float32{0, -1, 0.5}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestSource_Signed8Bit(t *testing.T) {
	t.Parallel()

	// Raw bytes as the decoder returns them: 0xC0, 0x40, 0x80, 0x00.
	src := NewSource(&mockReader{data: []int{192, 64, 128, 0}}, 8000, 1, 8, Signed8)

	buf := make([]float32, 4)
	if _, err := src.ReadSamples(buf); err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	want := []float32{-0.5, 0.5, -1, 0}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestSource_Signed24Bit(t *testing.T) {
	t.Parallel()

	src := NewSource(&mockReader{data: []int{-8388608, 4194304}}, 48000, 1, 24, Unsigned8)

	buf := make([]float32, 2)
	if _, err := src.ReadSamples(buf); err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if buf[0] != -1 || buf[1] != 0.5 {
		t.Errorf("buf = %v, want [-1 0.5]", buf)
	}
}

func TestSource_PropagatesErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := NewSource(&mockReader{err: boom}, 8000, 1, 16, Signed8)

	_, err := src.ReadSamples(make([]float32, 4))
	if !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want wrapped boom", err)
	}
}

func TestSource_EmptyDst(t *testing.T) {
	t.Parallel()

	src := NewSource(&mockReader{data: []int{1}}, 8000, 1, 16, Signed8)

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096 before the first read", src.BufSize())
	}
}
