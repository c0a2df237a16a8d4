// SPDX-License-Identifier: EPL-2.0

package waveanim

import (
	"errors"
	"image/gif"
	"math"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// writeWavFile writes an interleaved 16-bit PCM WAV for tests.
func writeWavFile(t *testing.T, path string, sampleRate, channels int, pcm []int) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	defer f.Close()

	enc := gowav.NewEncoder(f, sampleRate, 16, channels, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		SourceBitDepth: 16,
		Data:           pcm,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("writing wav: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("closing wav: %v", err)
	}
}

func sinePCM(rate, frames, channels int) []int {
	pcm := make([]int, frames*channels)
	for i := 0; i < frames; i++ {
		v := int(16000 * math.Sin(2*math.Pi*440*float64(i)/float64(rate)))
		for c := 0; c < channels; c++ {
			pcm[i*channels+c] = v
		}
	}
	return pcm
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.wav"))
	if err == nil {
		t.Fatal("Load() succeeded on missing file")
	}
	if !errors.Is(err, ErrAudioNotFound) {
		t.Errorf("Load() error = %v, want ErrAudioNotFound", err)
	}
	if errors.Is(err, ErrDecode) {
		t.Error("missing file must not surface as a decode error")
	}
}

func TestLoad_UnknownFormat(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "clip.xyz")
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Load() error = %v, want ErrUnknownFormat", err)
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.wav")
	if err := os.WriteFile(path, []byte("RIFFgarbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrDecode) {
		t.Errorf("Load() error = %v, want ErrDecode", err)
	}
}

func TestLoad_MonoWav(t *testing.T) {
	t.Parallel()

	const rate = 22050
	const frames = rate // 1 second
	path := filepath.Join(t.TempDir(), "mono.wav")
	writeWavFile(t, path, rate, 1, sinePCM(rate, frames, 1))

	clip, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if clip.Rate != rate {
		t.Errorf("Rate = %d, want %d", clip.Rate, rate)
	}
	if len(clip.Samples) != frames {
		t.Errorf("len(Samples) = %d, want %d", len(clip.Samples), frames)
	}
	if math.Abs(clip.Duration()-1.0) > 0.001 {
		t.Errorf("Duration() = %v, want 1.0", clip.Duration())
	}
	if clip.Info.Format != "wav" {
		t.Errorf("Info.Format = %q, want \"wav\"", clip.Info.Format)
	}
	if clip.Info.Channels != 1 {
		t.Errorf("Info.Channels = %d, want 1", clip.Info.Channels)
	}
}

func TestLoad_StereoDownmix(t *testing.T) {
	t.Parallel()

	const rate = 8000
	const frames = 4000 // half a second
	path := filepath.Join(t.TempDir(), "stereo.wav")
	writeWavFile(t, path, rate, 2, sinePCM(rate, frames, 2))

	clip, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Buffer is mono regardless of the source channel count
	if len(clip.Samples) != frames {
		t.Errorf("len(Samples) = %d, want %d", len(clip.Samples), frames)
	}
	if clip.Info.Channels != 2 {
		t.Errorf("Info.Channels = %d, want 2 (source layout)", clip.Info.Channels)
	}
	if math.Abs(clip.Duration()-0.5) > 0.001 {
		t.Errorf("Duration() = %v, want 0.5", clip.Duration())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	const rate = 22050
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.wav")
	writeWavFile(t, inPath, rate, 1, sinePCM(rate, rate, 1))

	clip, err := Process(inPath, rate) // same rate, no resampling
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	outPath := filepath.Join(dir, "out.wav")
	if err := Save(clip, outPath); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reloaded, err := Load(outPath)
	if err != nil {
		t.Fatalf("Load() of saved file error = %v", err)
	}

	if reloaded.Rate != clip.Rate {
		t.Errorf("reloaded Rate = %d, want %d", reloaded.Rate, clip.Rate)
	}
	if reloaded.Info.Format != clip.Info.Format {
		t.Errorf("reloaded format = %q, want %q", reloaded.Info.Format, clip.Info.Format)
	}

	// Duration must survive within one sample
	diff := len(reloaded.Samples) - len(clip.Samples)
	if diff < -1 || diff > 1 {
		t.Errorf("reloaded %d samples, want %d ±1", len(reloaded.Samples), len(clip.Samples))
	}
}

func TestProcess_Resamples(t *testing.T) {
	t.Parallel()

	const srcRate = 44100
	path := filepath.Join(t.TempDir(), "hi.wav")
	writeWavFile(t, path, srcRate, 1, sinePCM(srcRate, srcRate, 1))

	clip, err := Process(path, DefaultTargetRate)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if clip.Rate != DefaultTargetRate {
		t.Errorf("Rate = %d, want %d", clip.Rate, DefaultTargetRate)
	}
	if math.Abs(clip.Duration()-1.0) > 0.01 {
		t.Errorf("Duration() = %v, want ~1.0", clip.Duration())
	}
}

func TestSave_NoEncoder(t *testing.T) {
	t.Parallel()

	clip := &Clip{
		Samples: make([]float32, 100),
		Rate:    22050,
		Info:    ContainerInfo{Format: "mp3", Channels: 2, BitDepth: 16, SampleRate: 44100},
	}

	err := Save(clip, filepath.Join(t.TempDir(), "out.mp3"))
	if !errors.Is(err, ErrEncoderNotFound) {
		t.Errorf("Save() error = %v, want ErrEncoderNotFound", err)
	}
}

func TestSave_MissingOutputDir(t *testing.T) {
	t.Parallel()

	clip := sineClip(22050, 1000)

	err := Save(clip, filepath.Join(t.TempDir(), "no-such-dir", "out.wav"))
	if err == nil {
		t.Error("Save() into a missing directory succeeded, want error")
	}
}

func TestWriteWaveformGIF(t *testing.T) {
	t.Parallel()

	clip := sineClip(22050, 22050) // 1 second, shorter than the 5s window

	path := filepath.Join(t.TempDir(), "wave.gif")
	if err := WriteWaveformGIF(clip, path); err != nil {
		t.Fatalf("WriteWaveformGIF() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening gif: %v", err)
	}
	defer f.Close()

	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("decoding gif: %v", err)
	}
	if len(g.Image) != 100 {
		t.Errorf("gif has %d frames, want 100", len(g.Image))
	}
}
