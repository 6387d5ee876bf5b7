// Package docimage provides the pixel-grid abstraction the decomposition
// pipeline operates on: a flat array of 8-bit RGB triples plus dimensions,
// in the spirit of the teacher's fits.Image (dimensions plus a flat Data
// slice) but sized for 3-channel 8-bit document scans instead of 1-channel
// float32 astronomical frames.
package docimage

import (
	"image"
	"image/color"
)

// Image is a row-major grid of 8-bit RGB pixels.
type Image struct {
	Width, Height int
	Pix           []uint8 // len == Width*Height*3, row-major, R,G,B per pixel
}

// New allocates an image of the given dimensions, filled with black.
func New(width, height int) *Image {
	return &Image{Width: width, Height: height, Pix: make([]uint8, width*height*3)}
}

// NewWhite allocates an image of the given dimensions, filled with white.
func NewWhite(width, height int) *Image {
	img := New(width, height)
	img.FillWhite()
	return img
}

// FillWhite sets every pixel to (255,255,255).
func (img *Image) FillWhite() {
	for i := range img.Pix {
		img.Pix[i] = 255
	}
}

func (img *Image) offset(x, y int) int {
	return (y*img.Width + x) * 3
}

// At returns the RGB triple at (x,y). No bounds checking, matching the
// teacher's flat-array pixel access style.
func (img *Image) At(x, y int) (r, g, b uint8) {
	o := img.offset(x, y)
	return img.Pix[o], img.Pix[o+1], img.Pix[o+2]
}

// Set writes the RGB triple at (x,y).
func (img *Image) Set(x, y int, r, g, b uint8) {
	o := img.offset(x, y)
	img.Pix[o], img.Pix[o+1], img.Pix[o+2] = r, g, b
}

// Clone returns an independent deep copy.
func (img *Image) Clone() *Image {
	out := &Image{Width: img.Width, Height: img.Height, Pix: make([]uint8, len(img.Pix))}
	copy(out.Pix, img.Pix)
	return out
}

// Pixels returns the total pixel count, Width*Height.
func (img *Image) Pixels() int {
	return img.Width * img.Height
}

// ToStdImage adapts to the standard library image.Image interface, e.g. for
// encoding with image/png -- the out-of-scope, external-collaborator path
// named in spec.md §1.
func (img *Image) ToStdImage() image.Image {
	return &stdAdapter{img}
}

type stdAdapter struct{ img *Image }

func (a *stdAdapter) ColorModel() color.Model { return color.RGBAModel }
func (a *stdAdapter) Bounds() image.Rectangle {
	return image.Rect(0, 0, a.img.Width, a.img.Height)
}
func (a *stdAdapter) At(x, y int) color.Color {
	r, g, b := a.img.At(x, y)
	return color.RGBA{r, g, b, 255}
}

// FromStdImage copies pixel data out of a standard library image.Image.
func FromStdImage(src image.Image) *Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			out.Set(x, y, uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}
	return out
}

// Mask is a single-channel binary image: 255 where a pixel belongs to a
// layer, 0 elsewhere.
type Mask struct {
	Width, Height int
	Pix           []uint8
}

// NewMask allocates an all-zero mask of the given dimensions.
func NewMask(width, height int) *Mask {
	return &Mask{Width: width, Height: height, Pix: make([]uint8, width*height)}
}

func (m *Mask) At(x, y int) uint8 {
	return m.Pix[y*m.Width+x]
}

func (m *Mask) Set(x, y int, v uint8) {
	m.Pix[y*m.Width+x] = v
}

// CountNonZero returns the number of pixels with a non-zero value.
func (m *Mask) CountNonZero() int {
	n := 0
	for _, v := range m.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}

// ToStdImage adapts to the standard library's grayscale image type.
func (m *Mask) ToStdImage() image.Image {
	return &image.Gray{Pix: m.Pix, Stride: m.Width, Rect: image.Rect(0, 0, m.Width, m.Height)}
}

// MaskFromStdImage copies a grayscale standard-library image into a Mask,
// thresholding at the midpoint so antialiased ground-truth masks still
// binarize the way spec.md's 255/0 contract requires.
func MaskFromStdImage(src image.Image) *Mask {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := NewMask(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gr, _, _, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			v := uint8(0)
			if gr>>8 >= 128 {
				v = 255
			}
			out.Set(x, y, v)
		}
	}
	return out
}
