// SPDX-License-Identifier: EPL-2.0

package waveanim

import (
	"fmt"
	"os"

	"waveanim/utils"
)

// Save de-normalizes the clip back to 16-bit PCM and encodes it at path
// using the encoder registered for the clip's source container format.
//
// The output directory must already exist; an existing file at path is
// overwritten. Clips decoded from a format without an encoder fail with
// ErrEncoderNotFound.
func Save(clip *Clip, path string) error {
	enc, ok := registry.GetEncoder(clip.Info.Format)
	if !ok {
		return fmt.Errorf("%w: %q", ErrEncoderNotFound, clip.Info.Format)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	pcm := utils.Float32SliceToInt16(clip.Samples)
	if err := enc.Encode(f, clip.Rate, pcm); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	return f.Close()
}
