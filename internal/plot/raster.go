package plot

import (
	"image"
	"image/color"

	"github.com/mlnoga/doccolor/internal/colorcount"
	"github.com/mlnoga/doccolor/internal/docimage"

	"golang.org/x/image/draw"
)

// plotSize and plotCenter give the raster Lab-plane plot a 1505x1505
// backdrop with the origin at its center, matching the +752 offset the
// original implementation's chromatic-plane view uses.
const (
	plotSize   = 1505
	plotCenter = plotSize / 2
	dotSize    = 3

	// superSample renders the backdrop at a multiple of the final
	// resolution, then lets docimage.Scale's bilinear downsampling
	// anti-alias the dot edges rather than leaving them hard-edged squares.
	superSample = 2
)

// Plot2DLab rasterizes the (alpha,beta) chromatic plane: one square dot per
// distinct color in counts, placed at (alpha+752, beta+752) and filled with
// that color's own RGB value.
func Plot2DLab(counts map[colorcount.RGB]int, colorToAlpha, colorToBeta map[colorcount.RGB]int) *docimage.Image {
	hiRes := plotSize * superSample
	hiCenter := hiRes / 2
	hiDot := dotSize * superSample

	backdrop := image.NewRGBA(image.Rect(0, 0, hiRes, hiRes))
	draw.Draw(backdrop, backdrop.Bounds(), image.White, image.Point{}, draw.Src)

	for _, c := range colorcount.SortedKeys(counts) {
		alpha, ok := colorToAlpha[c]
		if !ok {
			continue // achromatic/white, not plotted on the chromatic plane
		}
		beta := colorToBeta[c]
		x, y := alpha*superSample+hiCenter, beta*superSample+hiCenter

		half := hiDot / 2
		dot := image.Rect(x-half, y-half, x+half+1, y+half+1).Intersect(backdrop.Bounds())
		if dot.Empty() {
			continue
		}
		src := &image.Uniform{C: color.RGBA{c.R, c.G, c.B, 255}}
		draw.Draw(backdrop, dot, src, image.Point{}, draw.Src)
	}

	return docimage.Scale(docimage.FromStdImage(backdrop), plotSize, plotSize)
}
