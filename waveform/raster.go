// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Palette holds the colors used by Rasterize.
type Palette struct {
	Background color.Color
	Foreground color.Color
	// Energy, when set, paints the RMS band of each column over the peak span.
	Energy color.Color
}

var (
	// DefaultPalette draws a black waveform on white.
	DefaultPalette = Palette{
		Background: color.White,
		Foreground: color.Black,
	}

	// MaskPalette cuts a transparent waveform out of an opaque white canvas,
	// so the image can be laid over any backdrop.
	MaskPalette = Palette{
		Background: color.White,
		Foreground: color.Transparent,
	}
)

// Row maps an amplitude in [-1, 1] to a pixel row of an image height rows
// tall. Zero lands on height/2, 1 on the top row and -1 on the bottom row.
// Each half is linear. Out of range input is clamped.
func Row(amplitude float32, height int) int {
	a := float64(amplitude)
	switch {
	case math.IsNaN(a):
		a = 0
	case a > 1:
		a = 1
	case a < -1:
		a = -1
	}

	center := height / 2
	var row float64
	if a >= 0 {
		row = float64(center) * (1 - a)
	} else {
		row = float64(center) - a*float64(height-1-center)
	}

	return min(max(int(math.Round(row)), 0), height-1)
}

// Rasterize draws one vertical span per summary onto a new width x height
// image. Column x covers the rows from Row(Max) down to Row(Min); a column
// whose rows coincide still gets a single pixel.
func Rasterize(summaries []Summary, width, height int, palette Palette) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d must be positive", ErrInvalidConfiguration, width, height)
	}
	if len(summaries) != width {
		return nil, fmt.Errorf("%w: %d summaries for %d columns", ErrInvalidConfiguration, len(summaries), width)
	}

	bg := toNRGBA(palette.Background, DefaultPalette.Background)
	fg := toNRGBA(palette.Foreground, DefaultPalette.Foreground)

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = bg.R
		img.Pix[i+1] = bg.G
		img.Pix[i+2] = bg.B
		img.Pix[i+3] = bg.A
	}

	for x, s := range summaries {
		top, bottom := Row(s.Max, height), Row(s.Min, height)
		if top > bottom {
			top, bottom = bottom, top
		}
		fillColumn(img, x, top, bottom, fg)

		if palette.Energy == nil {
			continue
		}
		et := max(Row(s.RMS, height), top)
		eb := min(Row(-s.RMS, height), bottom)
		if et <= eb {
			fillColumn(img, x, et, eb, toNRGBA(palette.Energy, fg))
		}
	}

	return img, nil
}

func fillColumn(img *image.NRGBA, x, top, bottom int, c color.NRGBA) {
	for y := top; y <= bottom; y++ {
		img.SetNRGBA(x, y, c)
	}
}

func toNRGBA(c, fallback color.Color) color.NRGBA {
	if c == nil {
		c = fallback
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
