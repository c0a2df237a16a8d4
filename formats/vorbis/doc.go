// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files for the waveanim pipeline,
// wrapping github.com/jfreymuth/oggvorbis.
//
// The decoder exposes the stream as an audio.Source; oggvorbis already
// produces float32 samples in [-1, 1], so no scaling is applied. There is
// no Vorbis encoder; clips decoded from Ogg cannot be saved back to their
// source container.
//
// Registers with the pipeline's format registry under the "ogg" key.
package vorbis
