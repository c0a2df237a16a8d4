// SPDX-License-Identifier: EPL-2.0

package waveanim

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"waveanim/audio"
	"waveanim/formats/aiff"
	"waveanim/formats/mp3"
	"waveanim/formats/vorbis"
	"waveanim/formats/wav"
)

// readBufSize is the chunk size used when draining decoder pipelines.
// 4096 samples is ~186ms of mono audio at 22.05kHz.
const readBufSize = 4096

var registry = defaultRegistry()

func defaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	reg.RegisterEncoder("wav", wav.Encoder{})
	reg.RegisterEncoder("aiff", aiff.Encoder{})
	reg.RegisterEncoder("aif", aiff.Encoder{})
	return reg
}

// formatKey derives the registry key from a path: the extension, lowered,
// without the dot.
func formatKey(path string) string {
	ext := filepath.Ext(path)
	if len(ext) > 0 {
		ext = ext[1:]
	}
	return strings.ToLower(ext)
}

// Load decodes the file at path into a mono, normalized Clip at the source
// sample rate. The clip records the source container so Save can re-encode
// in a matching format.
//
// A missing file fails with ErrAudioNotFound, an extension with no
// registered decoder with ErrUnknownFormat, and any decoder failure with
// ErrDecode.
func Load(path string) (*Clip, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAudioNotFound, path)
	}

	format := formatKey(path)
	dec, ok := registry.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer src.Close()

	info := ContainerInfo{
		Format:     format,
		Channels:   src.Channels(),
		BitDepth:   16,
		SampleRate: src.SampleRate(),
	}

	samples, err := audio.ReadAll(audio.NewMonoMixer(src), readBufSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return &Clip{
		Samples: samples,
		Rate:    info.SampleRate,
		Info:    info,
	}, nil
}

// Process runs the front half of the pipeline: Load followed by Resample to
// targetRate.
func Process(path string, targetRate int) (*Clip, error) {
	clip, err := Load(path)
	if err != nil {
		return nil, err
	}

	return clip.Resample(targetRate)
}
