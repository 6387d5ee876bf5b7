package docimage

import (
	"image"

	"golang.org/x/image/draw"
)

// Scale resizes img to the given dimensions using bilinear interpolation,
// the resampling the raster Lab-plane plot uses to anti-alias a
// supersampled render down to its final output size.
func Scale(img *Image, width, height int) *Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), img.ToStdImage(), img.ToStdImage().Bounds(), draw.Over, nil)
	return FromStdImage(dst)
}
