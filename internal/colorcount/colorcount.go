// Package colorcount builds the color -> pixel-count map that seeds the
// φ-histogram, per spec.md §4.3.
package colorcount

import (
	"sort"
	"sync"

	"github.com/mlnoga/doccolor/internal/docimage"
	"github.com/mlnoga/doccolor/internal/workpool"
)

// RGB is a hashable 8-bit color key.
type RGB struct {
	R, G, B uint8
}

// Compute iterates every pixel of img and returns the map color -> count.
// The per-row-band loop runs on workpool, matching spec.md §5's allowance
// to parallelize per-pixel stages as long as stage ordering at the
// orchestrator level stays sequential.
func Compute(img *docimage.Image) map[RGB]int {
	var mu sync.Mutex
	counts := make(map[RGB]int)

	workpool.RunRows(img.Height, func(startRow, endRow int) {
		local := make(map[RGB]int)
		for y := startRow; y < endRow; y++ {
			for x := 0; x < img.Width; x++ {
				r, g, b := img.At(x, y)
				local[RGB{r, g, b}]++
			}
		}
		mu.Lock()
		for k, v := range local {
			counts[k] += v
		}
		mu.Unlock()
	})
	return counts
}

// SortedKeys returns the keys of counts in ascending lexicographic order of
// (R,G,B), the deterministic iteration order spec.md §4.3 requires for
// downstream accumulation.
func SortedKeys(counts map[RGB]int) []RGB {
	keys := make([]RGB, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.R != b.R {
			return a.R < b.R
		}
		if a.G != b.G {
			return a.G < b.G
		}
		return a.B < b.B
	})
	return keys
}

// IsGray reports whether a color lies on the achromatic axis, R=G=B.
func (c RGB) IsGray() bool {
	return c.R == c.G && c.G == c.B
}
