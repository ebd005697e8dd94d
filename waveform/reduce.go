// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"math"
	"strings"
)

// Strategy selects how the samples of a column window are summarized.
type Strategy int

const (
	// Precise scans every sample of every window.
	Precise Strategy = iota
	// Approximate inspects at most ApproximatePoints evenly strided samples
	// per window.
	Approximate
)

// ApproximatePoints is the per-window sample budget of Approximate.
const ApproximatePoints = 500

func (s Strategy) String() string {
	switch s {
	case Precise:
		return "precise"
	case Approximate:
		return "approximate"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a strategy name to its Strategy. "cheat" is accepted
// as an alias of "approximate".
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "precise":
		return Precise, nil
	case "approximate", "cheat":
		return Approximate, nil
	default:
		return Precise, fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfiguration, name)
	}
}

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	return s == Precise || s == Approximate
}

// step returns the distance between inspected samples in a window of n samples.
func (s Strategy) step(n int) int {
	if s != Approximate || n <= ApproximatePoints {
		return 1
	}
	return (n + ApproximatePoints - 1) / ApproximatePoints
}

// Summary is the amplitude envelope of the samples mapped to one pixel column.
// Min <= Max always holds. A column without samples is the zero Summary.
type Summary struct {
	Min float32
	Max float32
	RMS float32
}

// Reduce splits samples into columns contiguous windows and summarizes each.
//
// When there are at least as many samples as columns every window holds
// len(samples)/columns samples and the last window also takes the
// remainder, so each sample is counted exactly once. With fewer samples
// than columns, sample j lands in column j*columns/len(samples) and the
// columns in between stay silent.
//
// The result always has exactly columns entries.
func Reduce(samples []float32, columns int, strategy Strategy) ([]Summary, error) {
	if columns <= 0 {
		return nil, fmt.Errorf("%w: column count %d must be positive", ErrInvalidConfiguration, columns)
	}
	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: unknown strategy %v", ErrInvalidConfiguration, strategy)
	}

	out := make([]Summary, columns)
	n := len(samples)
	if n == 0 {
		return out, nil
	}

	if n < columns {
		for j, v := range samples {
			out[j*columns/n] = Summary{Min: v, Max: v, RMS: float32(math.Abs(float64(v)))}
		}
		return out, nil
	}

	size := n / columns
	for i := range columns {
		start := i * size
		end := start + size
		if i == columns-1 {
			end = n
		}
		out[i] = summarize(samples[start:end], strategy.step(end-start))
	}

	return out, nil
}

// summarize computes the envelope of every step-th sample of a non-empty window.
func summarize(window []float32, step int) Summary {
	lo, hi := window[0], window[0]
	var sum float64
	count := 0

	for i := 0; i < len(window); i += step {
		v := window[i]
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
		sum += float64(v) * float64(v)
		count++
	}

	return Summary{
		Min: lo,
		Max: hi,
		RMS: float32(math.Sqrt(sum / float64(count))),
	}
}
