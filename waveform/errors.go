// SPDX-License-Identifier: EPL-2.0

package waveform

import "errors"

var (
	// ErrInvalidConfiguration is returned for non-positive dimensions, a
	// summary count that does not match the width, or an unknown strategy.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
