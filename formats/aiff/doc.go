// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to parse the file and
// delivers signed PCM at 8, 16, 24 or 32 bits as float32 samples in
// [-1.0, 1.0]:
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // ErrNotAiffFile, ErrUnsupportedBitDepth, ...
//	}
//
// go-audio requires an io.ReadSeeker; other readers are buffered in memory.
package aiff
