// SPDX-License-Identifier: EPL-2.0

package waveanim

import (
	"fmt"

	"waveanim/audio"
)

// DefaultTargetRate is the sample rate clips are resampled to when the
// caller has no other requirement.
const DefaultTargetRate = 22050

// ContainerInfo describes the container a clip was decoded from. It is kept
// only so Save can emit output in a matching format.
type ContainerInfo struct {
	Format     string // registry key, e.g. "wav"
	Channels   int    // channel count of the source stream
	BitDepth   int    // bit depth of the source stream
	SampleRate int    // sample rate of the source stream
}

// Clip is a decoded piece of audio: mono samples normalized to [-1, 1]
// paired with the sample rate they are valid at. Samples and Rate always
// change together; duration is their ratio.
type Clip struct {
	Samples []float32
	Rate    int
	Info    ContainerInfo
}

// Duration reports the clip length in seconds.
func (c *Clip) Duration() float64 {
	if c.Rate == 0 {
		return 0
	}
	return float64(len(c.Samples)) / float64(c.Rate)
}

// Resample converts the clip to targetRate. If the clip is already at the
// target rate it is returned as is. Otherwise a new clip is returned; the
// receiver is left untouched and callers must use the returned clip.
func (c *Clip) Resample(targetRate int) (*Clip, error) {
	if targetRate <= 0 {
		return nil, fmt.Errorf("invalid target sample rate %d", targetRate)
	}
	if targetRate == c.Rate {
		return c, nil
	}

	res := audio.NewResampler(audio.NewBufferSource(c.Samples, c.Rate), targetRate)
	samples, err := audio.ReadAll(res, 4096)
	if err != nil {
		return nil, fmt.Errorf("resampling %d -> %d Hz: %w", c.Rate, targetRate, err)
	}

	return &Clip{
		Samples: samples,
		Rate:    targetRate,
		Info:    c.Info,
	}, nil
}
