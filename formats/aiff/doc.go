// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes and encodes AIFF files for the waveanim pipeline,
// wrapping github.com/go-audio/aiff.
//
// Decoding is restricted to 16-bit PCM; other bit depths fail with
// ErrOnlyPCM16bitSupported. Samples are exposed through audio.Source
// normalized to [-1, 1]. Encoding always produces mono 16-bit PCM.
//
// Both sides register with the pipeline's format registry under the "aiff"
// and "aif" keys.
package aiff
