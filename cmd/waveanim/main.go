// Processes a hard-coded audio file: loads it, resamples it to the default
// target rate, writes it back out in the source container format, and
// renders a waveform animation GIF next to it.
package main

import (
	"fmt"

	"waveanim"
)

const (
	inputPath  = "sample_data/mmmm.wav"
	targetRate = waveanim.DefaultTargetRate
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error processing audio: %v\n", err)
	}
}

func run() error {
	clip, err := waveanim.Process(inputPath, targetRate)
	if err != nil {
		return err
	}

	audioOut, gifOut := waveanim.OutputPaths(inputPath)

	if err := waveanim.Save(clip, audioOut); err != nil {
		return err
	}

	if err := waveanim.WriteWaveformGIF(clip, gifOut); err != nil {
		return err
	}

	fmt.Printf("Audio loaded successfully, sample rate: %d, duration: %.2f seconds\n",
		clip.Rate, clip.Duration())
	fmt.Printf("Processed audio saved to: %s\n", audioOut)
	fmt.Printf("Waveform GIF saved to: %s\n", gifOut)

	return nil
}
