// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files for the waveanim pipeline, wrapping
// github.com/hajimehoshi/go-mp3.
//
// The decoder exposes the stream as an audio.Source with samples
// normalized to [-1, 1]. go-mp3 always produces 2-channel output, so the
// pipeline's MonoMixer downmixes it. There is no MP3 encoder; clips decoded
// from MP3 cannot be saved back to their source container.
//
// Registers with the pipeline's format registry under the "mp3" key.
package mp3
