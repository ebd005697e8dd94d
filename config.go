// SPDX-License-Identifier: EPL-2.0

package audwave

import (
	"fmt"

	"github.com/ik5/audwave/waveform"
)

// Config describes one render. The zero Palette draws black on white.
type Config struct {
	Width    int
	Height   int
	Strategy waveform.Strategy
	Palette  waveform.Palette
	// Format names the output image format. Empty means use the output
	// file's extension.
	Format string
}

// DefaultConfig returns a precise, black on white render of the given size.
func DefaultConfig(width, height int) Config {
	return Config{
		Width:    width,
		Height:   height,
		Strategy: waveform.Precise,
		Palette:  waveform.DefaultPalette,
	}
}

// Validate reports the first invalid field as ErrInvalidConfiguration.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("%w: width %d must be positive", ErrInvalidConfiguration, c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("%w: height %d must be positive", ErrInvalidConfiguration, c.Height)
	}
	if !c.Strategy.Valid() {
		return fmt.Errorf("%w: unknown strategy %v", ErrInvalidConfiguration, c.Strategy)
	}
	return nil
}
