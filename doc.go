// SPDX-License-Identifier: EPL-2.0

// Package audwave draws the waveform of an audio file into an image file.
//
// # Quick Start
//
//	err := audwave.Draw("speech.wav", "speech.png", 1800, 280, false)
//
// The picture is width columns by height rows. Every column shows the range
// between the quietest and the loudest sample of its slice of the track,
// with the center row standing for silence. Multi-channel audio is averaged
// down to mono first.
//
// Passing cheat=true switches to the approximate reduction, which looks at
// a bounded number of samples per column and is much faster on long tracks.
//
// # Formats
//
// Input is chosen by file extension and falls back to trying every decoder
// when the extension is missing or wrong:
//   - WAV (PCM 8/16/24/32-bit) via formats/wav
//   - AIFF (PCM 8/16/24/32-bit) via formats/aiff
//   - FLAC via formats/flac
//   - Ogg Vorbis via formats/vorbis
//   - MP3 via formats/mp3
//
// Output is chosen by the extension of the output path, or by Config.Format:
// png, jpeg, gif, bmp and tiff are built in. See the encoder package.
//
// # Configuration
//
// DrawWithConfig takes a Config for control over the reduction strategy,
// the colors and the output format:
//
//	cfg := audwave.DefaultConfig(1800, 280)
//	cfg.Palette = waveform.MaskPalette
//	err := audwave.DrawWithConfig("in.mp3", "mask.png", cfg)
//
// A Renderer exposes the individual stages and lets callers register their
// own decoders and encoders.
//
// # Errors
//
// Failures are reported as ErrInvalidConfiguration, ErrDecode or ErrEncode,
// wrapped with the offending path and the underlying cause. The output file
// is only replaced once the whole image has been encoded.
package audwave
