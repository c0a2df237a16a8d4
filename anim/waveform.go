// SPDX-License-Identifier: EPL-2.0

package anim

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"math"

	"github.com/fogleman/gg"

	"waveanim/utils"
)

const (
	// DefaultWindow is the animated time span in seconds.
	DefaultWindow = 5.0
	// DefaultFrames is the number of frames the window is split into.
	DefaultFrames = 100

	// Canvas size, 10x4 inches at 100 dpi.
	DefaultWidth  = 1000
	DefaultHeight = 400
)

// Plot margins inside the canvas, in pixels.
const (
	marginLeft   = 70
	marginRight  = 25
	marginTop    = 45
	marginBottom = 55
)

// framePalette keeps GIF quantization cheap: the chart only uses white,
// black, grid grey and the waveform blue, plus a few midtones for the
// antialiased line edges.
var framePalette = color.Palette{
	color.White,
	color.Black,
	color.RGBA{96, 96, 96, 255},
	color.RGBA{160, 160, 160, 255},
	color.RGBA{217, 217, 217, 255},
	color.RGBA{31, 119, 180, 255},
	color.RGBA{106, 164, 203, 255},
	color.RGBA{180, 210, 230, 255},
}

// Waveform renders an amplitude-vs-time animation of a mono sample buffer.
// Each frame draws the forward-advancing slice of the waveform that plays
// during that frame; the x-axis stays fixed at [0, Window] seconds and the
// y-axis at 110% of the buffer's observed min/max.
type Waveform struct {
	Samples []float32
	Rate    int

	Window float64 // display window in seconds
	Frames int
	Width  int
	Height int
}

// NewWaveform returns a renderer for samples at rate with the default
// window, frame count and canvas size.
func NewWaveform(samples []float32, rate int) *Waveform {
	return &Waveform{
		Samples: samples,
		Rate:    rate,
		Window:  DefaultWindow,
		Frames:  DefaultFrames,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
	}
}

// RenderGIF renders the animation and encodes it as an animated GIF into
// out. The frame rate is Frames/Window. Audio shorter than the window
// yields trailing frames with clamped (possibly empty) slices; that is not
// an error.
func (w *Waveform) RenderGIF(out io.Writer) error {
	if w.Rate <= 0 {
		return fmt.Errorf("invalid sample rate %d", w.Rate)
	}
	if w.Frames <= 0 || w.Window <= 0 {
		return fmt.Errorf("invalid animation geometry: %d frames over %gs", w.Frames, w.Window)
	}

	frameDur := w.Window / float64(w.Frames)
	samplesPerFrame := int(float64(w.Rate) * frameDur)

	ymin, ymax := amplitudeRange(w.Samples)

	g := &gif.GIF{LoopCount: 0}
	// GIF delays are in hundredths of a second
	delay := int(math.Round(frameDur * 100))

	for frame := 0; frame < w.Frames; frame++ {
		start := frame * samplesPerFrame
		end := (frame + 1) * samplesPerFrame

		// Clamp slices past the buffer end; empty frames draw axes only
		if end > len(w.Samples) {
			end = len(w.Samples)
		}
		if start > end {
			start = end
		}

		img := w.renderFrame(start, end, ymin, ymax)

		pal := image.NewPaletted(img.Bounds(), framePalette)
		draw.Draw(pal, img.Bounds(), img, img.Bounds().Min, draw.Src)

		g.Image = append(g.Image, pal)
		g.Delay = append(g.Delay, delay)
	}

	if err := gif.EncodeAll(out, g); err != nil {
		return fmt.Errorf("encoding gif: %w", err)
	}
	return nil
}

// amplitudeRange scales the observed min/max by 110%. A flat buffer
// (silence, DC, or empty) has no usable range and falls back to [-1, 1].
func amplitudeRange(samples []float32) (ymin, ymax float64) {
	min, max := utils.MinMax(samples)
	ymin = float64(min) * 1.1
	ymax = float64(max) * 1.1

	if ymax-ymin < 1e-9 {
		return -1, 1
	}
	return ymin, ymax
}

func (w *Waveform) renderFrame(start, end int, ymin, ymax float64) image.Image {
	dc := gg.NewContext(w.Width, w.Height)

	plotW := float64(w.Width - marginLeft - marginRight)
	plotH := float64(w.Height - marginTop - marginBottom)

	// Background
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Plot frame
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawRectangle(marginLeft, marginTop, plotW, plotH)
	dc.Stroke()

	// Title and axis labels
	dc.DrawStringAnchored("Audio Waveform Animation", float64(w.Width)/2, marginTop/2, 0.5, 0.5)
	dc.DrawStringAnchored("Time (s)", marginLeft+plotW/2, float64(w.Height)-15, 0.5, 0.5)
	dc.Push()
	dc.RotateAbout(-math.Pi/2, 18, marginTop+plotH/2)
	dc.DrawStringAnchored("Amplitude", 18, marginTop+plotH/2, 0.5, 0.5)
	dc.Pop()

	w.drawTicks(dc, plotW, plotH, ymin, ymax)

	// Zero-amplitude baseline
	if ymin < 0 && ymax > 0 {
		zeroY := marginTop + (1-(0-ymin)/(ymax-ymin))*plotH
		dc.SetRGB(0.85, 0.85, 0.85)
		dc.DrawLine(marginLeft, zeroY, marginLeft+plotW, zeroY)
		dc.Stroke()
	}

	// Waveform slice for this frame
	if end > start {
		dc.SetRGB(0.12, 0.47, 0.71)
		dc.SetLineWidth(1.2)

		for i := start; i < end; i++ {
			t := float64(i) / float64(w.Rate)
			x := marginLeft + (t/w.Window)*plotW
			v := float64(w.Samples[i])
			y := marginTop + (1-(v-ymin)/(ymax-ymin))*plotH

			if i == start {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}

		if end-start == 1 {
			// A one-sample slice has no line to stroke
			t := float64(start) / float64(w.Rate)
			x := marginLeft + (t/w.Window)*plotW
			v := float64(w.Samples[start])
			y := marginTop + (1-(v-ymin)/(ymax-ymin))*plotH
			dc.DrawPoint(x, y, 1.2)
			dc.Fill()
		} else {
			dc.Stroke()
		}
	}

	return dc.Image()
}

func (w *Waveform) drawTicks(dc *gg.Context, plotW, plotH, ymin, ymax float64) {
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)

	// One x tick per second across the window
	for t := 0.0; t <= w.Window+1e-9; t++ {
		x := marginLeft + (t/w.Window)*plotW
		dc.DrawLine(x, marginTop+plotH, x, marginTop+plotH+5)
		dc.Stroke()
		dc.DrawStringAnchored(fmt.Sprintf("%g", t), x, marginTop+plotH+16, 0.5, 0.5)
	}

	// y ticks at the extremes and zero
	yticks := []float64{ymin, 0, ymax}
	if ymin >= 0 || ymax <= 0 {
		yticks = []float64{ymin, ymax}
	}
	for _, v := range yticks {
		y := marginTop + (1-(v-ymin)/(ymax-ymin))*plotH
		dc.DrawLine(marginLeft-5, y, marginLeft, y)
		dc.Stroke()
		dc.DrawStringAnchored(fmt.Sprintf("%.2f", v), marginLeft-10, y, 1, 0.5)
	}
}
