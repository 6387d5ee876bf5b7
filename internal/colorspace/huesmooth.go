package colorspace

import (
	"github.com/mlnoga/doccolor/internal/docimage"
	"github.com/mlnoga/doccolor/internal/kernel"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultHueSmoothKernel is the default k for SmoothHue.
const DefaultHueSmoothKernel = 5

// SmoothHue reduces hue noise near edges without losing lightness detail:
// it blurs a copy of img with a k×k Gaussian, then replaces each pixel's
// hue channel (in HLS space) with the hue of the corresponding blurred
// pixel, keeping the original's saturation and lightness.
func SmoothHue(img *docimage.Image, k int) *docimage.Image {
	blurred := gaussianBlurRGB(img, k)
	out := img.Clone()
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			br, bg, bb := blurred.At(x, y)
			bh, _, _ := rgbToColorful(br, bg, bb).Hsl()

			r, g, b := out.At(x, y)
			_, s, l := rgbToColorful(r, g, b).Hsl()

			nr, ng, nb := colorfulToRGB(colorful.Hsl(bh, s, l))
			out.Set(x, y, nr, ng, nb)
		}
	}
	return out
}

// gaussianBlurRGB applies a separable k×k Gaussian blur to every channel,
// clamping at the image border. No pack library exposes a plain spatial
// image blur independent of a specific color model, so this is hand-rolled
// on top of the shared kernel package.
func gaussianBlurRGB(img *docimage.Image, k int) *docimage.Image {
	weights := kernel.Gaussian1D(k)
	half := len(weights) / 2

	tmp := docimage.New(img.Width, img.Height)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			var sr, sg, sb float64
			for i, w := range weights {
				sx := x + i - half
				if sx < 0 {
					sx = 0
				} else if sx >= img.Width {
					sx = img.Width - 1
				}
				r, g, b := img.At(sx, y)
				sr += float64(r) * w
				sg += float64(g) * w
				sb += float64(b) * w
			}
			tmp.Set(x, y, clampByte(sr), clampByte(sg), clampByte(sb))
		}
	}

	out := docimage.New(img.Width, img.Height)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			var sr, sg, sb float64
			for i, w := range weights {
				sy := y + i - half
				if sy < 0 {
					sy = 0
				} else if sy >= img.Height {
					sy = img.Height - 1
				}
				r, g, b := tmp.At(x, sy)
				sr += float64(r) * w
				sg += float64(g) * w
				sb += float64(b) * w
			}
			out.Set(x, y, clampByte(sr), clampByte(sg), clampByte(sb))
		}
	}
	return out
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
