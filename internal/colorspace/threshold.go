// Copyright (C) 2020 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package colorspace holds the aberration-reduction preprocessing the
// decomposer applies before clustering: saturation/lightness thresholding
// and hue smoothing. Generalized from the teacher's internal/ops/hsl
// package, which does all of its color-space math through
// github.com/lucasb-eyer/go-colorful.
package colorspace

import (
	"github.com/mlnoga/doccolor/internal/docimage"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultSaturationThreshold is the default value for ThreshSaturation, on
// a 0-255 scale.
const DefaultSaturationThreshold = 10

// DefaultLightnessThreshold is the default value for ThreshLightness, on a
// 0-255 scale.
const DefaultLightnessThreshold = 50

func rgbToColorful(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func colorfulToRGB(c colorful.Color) (uint8, uint8, uint8) {
	c = c.Clamped()
	return uint8(c.R*255 + 0.5), uint8(c.G*255 + 0.5), uint8(c.B*255 + 0.5)
}

// ThreshSaturation zeroes the saturation of every pixel whose HSV
// saturation, rescaled to 0-255, is at or below t. Pixels above the
// threshold are left untouched.
func ThreshSaturation(img *docimage.Image, t uint8) *docimage.Image {
	out := img.Clone()
	threshold := float64(t) / 255
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			r, g, b := out.At(x, y)
			h, s, v := rgbToColorful(r, g, b).Hsv()
			if s <= threshold {
				s = 0
			}
			nr, ng, nb := colorfulToRGB(colorful.Hsv(h, s, v))
			out.Set(x, y, nr, ng, nb)
		}
	}
	return out
}

// ThreshLightness zeroes the lightness of every pixel whose HSL lightness,
// rescaled to 0-255, is at or below t.
func ThreshLightness(img *docimage.Image, t uint8) *docimage.Image {
	out := img.Clone()
	threshold := float64(t) / 255
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			r, g, b := out.At(x, y)
			h, s, l := rgbToColorful(r, g, b).Hsl()
			if l <= threshold {
				l = 0
			}
			nr, ng, nb := colorfulToRGB(colorful.Hsl(h, s, l))
			out.Set(x, y, nr, ng, nb)
		}
	}
	return out
}
