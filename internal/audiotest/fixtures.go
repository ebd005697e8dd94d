// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/audwave/utils"
)

// intBuffer converts interleaved float samples into a go-audio buffer.
func intBuffer(sampleRate, channels, bitDepth int, samples []float32) *goaudio.IntBuffer {
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = utils.Float32ToPCM(s, bitDepth)
	}
	return &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
}

// WriteWAV writes interleaved samples as a 16-bit PCM WAV file.
func WriteWAV(path string, sampleRate, channels int, samples []float32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating wav fixture: %w", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	if err := enc.Write(intBuffer(sampleRate, channels, 16, samples)); err != nil {
		return fmt.Errorf("writing wav fixture: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing wav fixture: %w", err)
	}

	return f.Close()
}

// WriteAIFF writes interleaved samples as a 16-bit PCM AIFF file.
func WriteAIFF(path string, sampleRate, channels int, samples []float32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating aiff fixture: %w", err)
	}
	defer f.Close()

	enc := aiff.NewEncoder(f, sampleRate, 16, channels)
	if err := enc.Write(intBuffer(sampleRate, channels, 16, samples)); err != nil {
		return fmt.Errorf("writing aiff fixture: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing aiff fixture: %w", err)
	}

	return f.Close()
}

// WAVFile writes samples to name inside a fresh test directory and
// returns the path.
func WAVFile(tb testing.TB, name string, sampleRate, channels int, samples []float32) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)
	if err := WriteWAV(path, sampleRate, channels, samples); err != nil {
		tb.Fatalf("WriteWAV() error = %v", err)
	}
	return path
}

// AIFFFile is WAVFile for AIFF.
func AIFFFile(tb testing.TB, name string, sampleRate, channels int, samples []float32) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)
	if err := WriteAIFF(path, sampleRate, channels, samples); err != nil {
		tb.Fatalf("WriteAIFF() error = %v", err)
	}
	return path
}

// Sine returns n mono samples of a sine wave with the given period in samples.
func Sine(n int, period float64, amplitude float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = amplitude * float32(sinTurn(float64(i)/period))
	}
	return out
}
