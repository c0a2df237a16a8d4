// SPDX-License-Identifier: EPL-2.0

// Package waveanim is a batch audio pipeline: it loads an audio file,
// downmixes it to mono with samples normalized to [-1, 1], resamples it to a
// target rate, writes it back out in the source container format, and renders
// a waveform animation of the result as an animated GIF.
//
// # Pipeline
//
// The high-level entry point is Process, which loads and resamples in one
// call:
//
//	clip, err := waveanim.Process("sample_data/mmmm.wav", waveanim.DefaultTargetRate)
//	if err != nil {
//	    // handle
//	}
//
//	audioOut, gifOut := waveanim.OutputPaths("sample_data/mmmm.wav")
//	err = waveanim.Save(clip, audioOut)
//	err = waveanim.WriteWaveformGIF(clip, gifOut)
//
// Each stage is also available on its own: Load decodes a file into a Clip,
// Clip.Resample converts the sample rate, Save re-encodes, and the anim
// subpackage renders the animation.
//
// # Supported Formats
//
// Decoding:
//   - WAV via formats/wav (go-audio/wav)
//   - AIFF via formats/aiff (go-audio/aiff)
//   - MP3 via formats/mp3 (hajimehoshi/go-mp3)
//   - Ogg Vorbis via formats/vorbis (jfreymuth/oggvorbis)
//
// Encoding is mono 16-bit PCM and is available for WAV and AIFF. Saving a
// clip that was decoded from a format without an encoder fails with
// ErrEncoderNotFound.
//
// # Output Naming
//
// Output paths are derived from the input path: the basename is prefixed
// with "v2_" and both artifacts are placed under the sample_data directory.
// An input of sample_data/mmmm.mov produces sample_data/v2_mmmm.mov and
// sample_data/v2_mmmm.gif.
//
// # Custom Pipelines
//
// For more control, the audio subpackage exposes the streaming building
// blocks (Source, Resampler, MonoMixer, BufferSource) the pipeline is built
// from; see that package's documentation.
package waveanim
