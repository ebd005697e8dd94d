// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	// ErrUnsupportedFormat is returned when no registered decoder accepts the input.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)
