package waveanim

import (
	"path/filepath"
	"strings"
)

const (
	// OutputDir is where both output artifacts are placed.
	OutputDir = "sample_data"

	// outputPrefix tags processed files so they sit next to their source.
	outputPrefix = "v2_"
)

// OutputPaths derives the audio and GIF output paths from the input path.
// The audio output keeps the input extension; the GIF output replaces it.
//
//	sample_data/mmmm.mov -> sample_data/v2_mmmm.mov, sample_data/v2_mmmm.gif
func OutputPaths(inputPath string) (audioOut, gifOut string) {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	audioOut = filepath.Join(OutputDir, outputPrefix+base+ext)
	gifOut = filepath.Join(OutputDir, outputPrefix+base+".gif")
	return audioOut, gifOut
}
