// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams with github.com/jfreymuth/oggvorbis.
//
// Samples come out of the decoder as float32 already, interleaved by
// channel, and are passed through without conversion.
package vorbis
