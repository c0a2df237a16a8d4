// SPDX-License-Identifier: EPL-2.0

package waveanim

import (
	"fmt"
	"os"

	"waveanim/anim"
)

// WriteWaveformGIF renders the clip's waveform animation with the default
// renderer settings (5-second window, 100 frames) and writes it to path.
// An existing file at path is overwritten.
func WriteWaveformGIF(clip *Clip, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	w := anim.NewWaveform(clip.Samples, clip.Rate)
	if err := w.RenderGIF(f); err != nil {
		f.Close()
		return fmt.Errorf("rendering %s: %w", path, err)
	}

	return f.Close()
}
