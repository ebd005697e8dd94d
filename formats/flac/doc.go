// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC streams with github.com/mewkiz/flac.
//
// Frames are decoded lazily as samples are read. Each subframe is
// interleaved into float32 samples scaled by the stream's bit depth.
package flac
