// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
)

// Encoder writes mono 16-bit PCM AIFF files via go-audio/aiff.
type Encoder struct{}

// Encode writes samples as a mono 16-bit PCM AIFF at sampleRate.
// w must support seeking so the chunk sizes can be patched on Close.
func (Encoder) Encode(w io.WriteSeeker, sampleRate int, samples []int16) error {
	enc := aiff.NewEncoder(w, sampleRate, 16, 1)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
		Data:           make([]int, len(samples)),
	}
	for i, s := range samples {
		buf.Data[i] = int(s)
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing aiff data: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing aiff: %w", err)
	}

	return nil
}
