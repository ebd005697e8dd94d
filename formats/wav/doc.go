// SPDX-License-Identifier: EPL-2.0

// Package wav decodes RIFF/WAVE files into an audio.Source.
//
// Chunk parsing is done by github.com/go-audio/wav, so files with extra
// chunks (LIST, fact, cue) are accepted. Integer PCM at 8, 16, 24 and 32
// bits is supported, mono or multi-channel, at any sample rate.
//
//	src, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not RIFF/WAVE
//	}
//
// The go-audio decoder needs to seek. Readers that cannot seek are
// buffered in memory first.
package wav
