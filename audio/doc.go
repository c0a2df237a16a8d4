// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives the waveanim pipeline is
// built from.
//
// The Source interface is the foundation:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders and processors implement it, so they chain:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	mono := audio.NewMonoMixer(src)
//	samples, _ := audio.ReadAll(mono, 4096)
//
// # Resampling
//
// Resampler changes the sample rate of any Source using cubic
// (Catmull-Rom) interpolation, with a simple one-pole low-pass applied when
// downsampling:
//
//	res := audio.NewResampler(source, 22050)
//
// # Channel Mixing
//
// MonoMixer converts multi-channel audio to mono by averaging the channels
// of each frame. Mono input passes through unchanged.
//
// # In-Memory Sources
//
// BufferSource wraps an already-collected mono sample buffer as a Source,
// which is how the pipeline feeds a loaded clip back through the Resampler.
// ReadAll is the inverse: it drains a mono Source into one buffer.
//
// # Format Registry
//
// Registry maps format keys to Decoders and Encoders:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	reg.RegisterEncoder("wav", wav.Encoder{})
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0]; 0.0 is silence. Streams report
// io.EOF when exhausted, possibly alongside a final batch of samples.
package audio
