// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// BufferSource adapts an in-memory mono sample buffer to the Source
// interface so already-collected audio can be fed back through streaming
// processors such as Resampler. The buffer is not copied; callers must not
// mutate it while reading.
type BufferSource struct {
	samples    []float32
	sampleRate int
	pos        int
}

func NewBufferSource(samples []float32, sampleRate int) *BufferSource {
	return &BufferSource{
		samples:    samples,
		sampleRate: sampleRate,
	}
}

func (b *BufferSource) SampleRate() int { return b.sampleRate }
func (b *BufferSource) Channels() int   { return 1 }
func (b *BufferSource) BufSize() int    { return 4096 }
func (b *BufferSource) Close() error    { return nil }

func (b *BufferSource) ReadSamples(dst []float32) (int, error) {
	if b.pos >= len(b.samples) {
		return 0, io.EOF
	}

	n := copy(dst, b.samples[b.pos:])
	b.pos += n

	if b.pos >= len(b.samples) {
		return n, io.EOF
	}
	return n, nil
}

// ReadAll drains src into a single mono sample buffer. src must already be
// mono (wrap multi-channel sources in a MonoMixer first). bufSize is the
// read chunk size in samples; 4096 is a good default.
func ReadAll(src Source, bufSize int) ([]float32, error) {
	// Pre-size for a couple of seconds at the source rate; grows as needed.
	out := make([]float32, 0, src.SampleRate()*2)
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
