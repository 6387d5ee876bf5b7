// Package layer splits a document image into per-cluster layers and binary
// masks, per spec.md §4.7.
package layer

import (
	"github.com/mlnoga/doccolor/internal/colorcount"
	"github.com/mlnoga/doccolor/internal/docimage"
	"github.com/mlnoga/doccolor/internal/workpool"
)

// Build partitions src into per-cluster layers and binary masks. Cluster 0
// is the achromatic/gray layer; clusters 1..N come from phiToCluster. Each
// pixel's cluster is classified from its processed color (the colorToPhi
// lookup expects processed's post-preprocessing colors), but the layer
// keeps src's own pixel value -- per spec.md §4.7, so color correction
// applied to processed does not leak into the output layers. Masks are the
// corresponding binary membership maps, sized off src/processed, which must
// share dimensions.
func Build(src, processed *docimage.Image, colorToPhi map[colorcount.RGB]int, phiToCluster [360]int) ([]*docimage.Image, []*docimage.Mask) {
	numClusters := 1
	for _, c := range phiToCluster {
		if c+1 > numClusters {
			numClusters = c + 1
		}
	}

	layers := make([]*docimage.Image, numClusters)
	masks := make([]*docimage.Mask, numClusters)
	for i := range layers {
		layers[i] = docimage.NewWhite(src.Width, src.Height)
		masks[i] = docimage.NewMask(src.Width, src.Height)
	}

	// Row bands are disjoint, so concurrent writers never touch the same
	// (cluster, x, y) triple -- safe without a mutex.
	workpool.RunRows(src.Height, func(startRow, endRow int) {
		for y := startRow; y < endRow; y++ {
			for x := 0; x < src.Width; x++ {
				pr, pg, pb := processed.At(x, y)
				cluster := clusterFor(pr, pg, pb, colorToPhi, phiToCluster)
				sr, sg, sb := src.At(x, y)
				layers[cluster].Set(x, y, sr, sg, sb)
				masks[cluster].Set(x, y, 255)
			}
		}
	})
	return layers, masks
}

func clusterFor(r, g, b uint8, colorToPhi map[colorcount.RGB]int, phiToCluster [360]int) int {
	c := colorcount.RGB{R: r, G: g, B: b}
	if c.IsGray() {
		return 0
	}
	phi, ok := colorToPhi[c]
	if !ok || phi < 0 {
		return 0
	}
	return phiToCluster[phi]
}

// Merge reconstructs a single image from per-cluster layers and masks. It
// exists to verify cluster assignment partitions every pixel exactly once:
// each output pixel comes from the one layer whose mask is set there.
func Merge(layers []*docimage.Image, masks []*docimage.Mask) *docimage.Image {
	if len(layers) == 0 {
		return nil
	}
	w, h := layers[0].Width, layers[0].Height
	out := docimage.NewWhite(w, h)
	for i, l := range layers {
		m := masks[i]
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if m.At(x, y) != 0 {
					r, g, b := l.At(x, y)
					out.Set(x, y, r, g, b)
				}
			}
		}
	}
	return out
}
