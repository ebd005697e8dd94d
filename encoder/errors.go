// SPDX-License-Identifier: EPL-2.0

package encoder

import "errors"

var (
	// ErrUnsupportedFormat is returned when no encoder is registered for a format.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrNoFormat is returned when the output path has no extension and no
	// format was given.
	ErrNoFormat = errors.New("cannot infer image format")
)
