// SPDX-License-Identifier: EPL-2.0

// Package audio holds the decoded-audio plumbing shared by every format.
//
// # Source Interface
//
// A Source streams interleaved float32 samples in [-1, 1]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Decoders in the formats packages produce Sources, and MonoMixer wraps one
// to average its channels down to mono:
//
//	mono := audio.NewMonoMixer(src)
//	samples, err := audio.ReadAll(mono, 0)
//
// # Format Registry
//
// A Registry maps format names to decoders. DecodeBytes picks the decoder by
// name and falls back to trying each registered decoder in the order they
// were added, which covers files with a missing or misleading extension:
//
//	registry := audio.NewRegistry()
//	registry.Register(wav.Decoder{}, "wav", "wave")
//	registry.Register(mp3.Decoder{}, "mp3")
//	src, err := registry.DecodeBytes(data, filepath.Ext(path))
//
// A Registry is safe for concurrent use.
package audio
