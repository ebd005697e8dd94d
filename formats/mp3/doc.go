// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio with
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always emits interleaved 16-bit stereo, so the returned
// audio.Source reports two channels even for mono files; both channels
// then carry the same signal.
package mp3
