// SPDX-License-Identifier: EPL-2.0

package audwave

import (
	"errors"

	"github.com/ik5/audwave/waveform"
)

var (
	// ErrInvalidConfiguration reports a bad width, height or strategy.
	ErrInvalidConfiguration = waveform.ErrInvalidConfiguration
	// ErrDecode wraps any failure to read or decode the input audio.
	ErrDecode = errors.New("decode failed")
	// ErrEncode wraps any failure to encode or write the output image.
	ErrEncode = errors.New("encode failed")
)
