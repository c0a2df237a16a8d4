// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes WAV files for the waveanim pipeline.
//
// Decoding wraps github.com/go-audio/wav and exposes the stream as an
// audio.Source with samples normalized to [-1, 1] according to the source
// bit depth (8, 16, 24 or 32 bit PCM):
//
//	f, _ := os.Open("input.wav")
//	src, err := wav.Decoder{}.Decode(f)
//
// The decoder needs random access to walk the RIFF chunks; readers that do
// not implement io.ReadSeeker are buffered into memory first.
//
// Encoding always produces mono 16-bit PCM:
//
//	out, _ := os.Create("output.wav")
//	err := wav.Encoder{}.Encode(out, 22050, samples)
//
// Both sides register with the pipeline's format registry under the "wav"
// key.
package wav
