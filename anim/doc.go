// SPDX-License-Identifier: EPL-2.0

// Package anim renders waveform animations of mono sample buffers.
//
// Waveform splits a fixed display window (5 seconds by default) into a
// fixed number of frames (100 by default) and draws, for each frame, the
// slice of the waveform that plays during that frame as an
// amplitude-vs-time line chart. The frames are assembled into an animated
// GIF whose frame rate is frames/window:
//
//	w := anim.NewWaveform(clip.Samples, clip.Rate)
//	err := w.RenderGIF(out)
//
// Audio shorter than the window is handled by clamping frame slices to the
// buffer end; trailing frames then show only the axes. The amplitude axis
// spans 110% of the buffer's observed min/max, falling back to [-1, 1] for
// flat input.
//
// Chart drawing uses github.com/fogleman/gg; GIF assembly uses the standard
// library's image/gif.
package anim
