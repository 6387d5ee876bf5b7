// Package plot renders the decomposer's intermediate and final results as
// TikZ/pgfplots source (for inclusion in LaTeX reports) and as raster
// images, per spec.md §4's visualization surfaces plus the 3D scatter and
// 2D chromatic-plane views supplemented from the original implementation.
package plot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mlnoga/doccolor/internal/colorcount"

	"github.com/valyala/fastrand"
)

// maxScatterColors caps how many distinct colors Plot3DRGB plots, matching
// the original tool's scatter sampling limit.
const maxScatterColors = 5000

// bins is the φ-histogram's resolution, matching internal/phihist and
// internal/cluster.
const bins = 360

// DefaultYaw and DefaultPitch are the original tool's default 3D view
// angles, in degrees.
const (
	DefaultYaw   = 135.0
	DefaultPitch = 35.25
)

// Plot3DRGB renders a pgfplots 3D scatter of the image's distinct colors in
// RGB space, each point colored by its own RGB value. When more than
// maxScatterColors distinct colors are present, a seeded random subset is
// plotted instead of the full set, keeping output size bounded.
func Plot3DRGB(counts map[colorcount.RGB]int, seed uint64, yaw, pitch float64) string {
	colors := sampleColors(counts, seed, maxScatterColors)

	var b strings.Builder
	fmt.Fprintf(&b, "\\begin{tikzpicture}\n\\begin{axis}[\n")
	fmt.Fprintf(&b, "  view={%g}{%g}, xlabel=R, ylabel=G, zlabel=B,\n", yaw, pitch)
	fmt.Fprintf(&b, "  xmin=0, xmax=255, ymin=0, ymax=255, zmin=0, zmax=255,\n")
	fmt.Fprintf(&b, "]\n\\addplot3[only marks, scatter, mark=*, mark size=1pt,\n")
	fmt.Fprintf(&b, "  scatter/use mapped color={draw=mapped color, fill=mapped color},\n")
	fmt.Fprintf(&b, "  visualization depends on={\\thisrow{rgb} \\as \\pointrgb}, scatter/@pre marker code/.append style={color=\\pointrgb}]\n")
	fmt.Fprintf(&b, "table[meta=rgb] {\n x y z rgb\n")
	for _, c := range colors {
		fmt.Fprintf(&b, " %d %d %d {rgb,255:red,%d;green,%d;blue,%d}\n", c.R, c.G, c.B, c.R, c.G, c.B)
	}
	fmt.Fprintf(&b, "};\n\\end{axis}\n\\end{tikzpicture}\n")
	return b.String()
}

// sampleColors returns the sorted distinct colors of counts, or a random
// subset of size limit when there are more than limit of them.
func sampleColors(counts map[colorcount.RGB]int, seed uint64, limit int) []colorcount.RGB {
	keys := colorcount.SortedKeys(counts)
	if len(keys) <= limit {
		return keys
	}

	next := uint32nFor(seed)
	// Partial Fisher-Yates: shuffle only the prefix we keep.
	for i := 0; i < limit; i++ {
		j := i + int(next(uint32(len(keys)-i)))
		keys[i], keys[j] = keys[j], keys[i]
	}
	selected := append([]colorcount.RGB{}, keys[:limit]...)
	sort.Slice(selected, func(i, j int) bool {
		a, b := selected[i], selected[j]
		if a.R != b.R {
			return a.R < b.R
		}
		if a.G != b.G {
			return a.G < b.G
		}
		return a.B < b.B
	})
	return selected
}

// Plot1DPhi renders a pgfplots line plot comparing the raw weighted
// φ-histogram against its circularly-smoothed counterpart, with a strip of
// markers along the x-axis colored by the mean RGB of the colors landing
// in each φ bin. The two histogram curves are drawn in fixed colors (gray
// and blue), not per-bin colors.
func Plot1DPhi(raw [360]float64, smoothed [360]int, counts map[colorcount.RGB]int, colorToPhi map[colorcount.RGB]int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\\begin{tikzpicture}\n\\begin{axis}[xlabel={$\\varphi$ (degrees)}, ylabel=count, xmin=0, xmax=359]\n")
	fmt.Fprintf(&b, "\\addplot+[no marks, thin, gray] table {\n")
	for phi, v := range raw {
		fmt.Fprintf(&b, " %d %g\n", phi, v)
	}
	fmt.Fprintf(&b, "};\n\\addplot+[no marks, thick, blue] table {\n")
	for phi, v := range smoothed {
		fmt.Fprintf(&b, " %d %d\n", phi, v)
	}
	fmt.Fprintf(&b, "};\n\\legend{raw,smoothed}\n")
	writeMeanRGBStrip(&b, computePhiToMeanRgb(counts, colorToPhi))
	fmt.Fprintf(&b, "\\end{axis}\n\\end{tikzpicture}\n")
	return b.String()
}

// Plot1DClusters renders the smoothed φ-histogram as a single blue line
// plot with vertical markers at
// every accepted peak, colored by that peak's cluster's mean RGB, and
// dashed markers at every cluster boundary.
func Plot1DClusters(smoothed [360]int, peaks, boundaries []int, counts map[colorcount.RGB]int, colorToPhi map[colorcount.RGB]int, phiToCluster [bins]int) string {
	clusterToMeanRgb := computeClusterToMeanRgb(counts, colorToPhi, phiToCluster)

	var b strings.Builder
	fmt.Fprintf(&b, "\\begin{tikzpicture}\n\\begin{axis}[xlabel={$\\varphi$ (degrees)}, ylabel=count, xmin=0, xmax=359]\n")
	fmt.Fprintf(&b, "\\addplot+[no marks, thick, blue] table {\n")
	for phi, v := range smoothed {
		fmt.Fprintf(&b, " %d %d\n", phi, v)
	}
	fmt.Fprintf(&b, "};\n")
	for _, p := range peaks {
		color := "red"
		if c, ok := clusterToMeanRgb[phiToCluster[p]]; ok {
			color = fmt.Sprintf("{rgb,255:red,%d;green,%d;blue,%d}", c.R, c.G, c.B)
		}
		fmt.Fprintf(&b, "\\draw[%s, thick] (axis cs:%d,0) -- (axis cs:%d,%d);\n", color, p, p, smoothed[p])
	}
	for _, bnd := range boundaries {
		fmt.Fprintf(&b, "\\draw[dashed, gray] (axis cs:%d,0) -- (axis cs:%d,%d);\n", bnd, bnd, maxInt(smoothed[:]))
	}
	fmt.Fprintf(&b, "\\end{axis}\n\\end{tikzpicture}\n")
	return b.String()
}

// writeMeanRGBStrip emits a row of colored markers along y=0, one per φ bin
// present in phiToMeanRgb, using the same scatter/mapped-color idiom as
// Plot3DRGB's per-point coloring.
func writeMeanRGBStrip(b *strings.Builder, phiToMeanRgb map[int]colorcount.RGB) {
	if len(phiToMeanRgb) == 0 {
		return
	}
	phis := make([]int, 0, len(phiToMeanRgb))
	for phi := range phiToMeanRgb {
		phis = append(phis, phi)
	}
	sort.Ints(phis)

	fmt.Fprintf(b, "\\addplot+[only marks, mark=square*, mark size=1.5pt, scatter,\n")
	fmt.Fprintf(b, "  scatter/use mapped color={draw=mapped color, fill=mapped color},\n")
	fmt.Fprintf(b, "  visualization depends on={\\thisrow{rgb} \\as \\pointrgb}, scatter/@pre marker code/.append style={color=\\pointrgb}]\n")
	fmt.Fprintf(b, "table[meta=rgb] {\n x y rgb\n")
	for _, phi := range phis {
		c := phiToMeanRgb[phi]
		fmt.Fprintf(b, " %d 0 {rgb,255:red,%d;green,%d;blue,%d}\n", phi, c.R, c.G, c.B)
	}
	fmt.Fprintf(b, "};\n")
}

// rgbSum accumulates a pixel-count-weighted RGB total for mean-color
// computation.
type rgbSum struct{ r, g, b, n int }

func (a *rgbSum) add(c colorcount.RGB, n int) {
	a.r += int(c.R) * n
	a.g += int(c.G) * n
	a.b += int(c.B) * n
	a.n += n
}

func (a *rgbSum) mean() colorcount.RGB {
	return colorcount.RGB{R: uint8(a.r / a.n), G: uint8(a.g / a.n), B: uint8(a.b / a.n)}
}

// computePhiToMeanRgb averages, weighted by pixel count, the RGB value of
// every color landing in each φ bin -- used purely to color the 1-D plots'
// bars/markers by the mean RGB of their contributing colors.
func computePhiToMeanRgb(counts map[colorcount.RGB]int, colorToPhi map[colorcount.RGB]int) map[int]colorcount.RGB {
	sums := make(map[int]*rgbSum)
	for _, c := range colorcount.SortedKeys(counts) {
		phi, ok := colorToPhi[c]
		if !ok || phi < 0 {
			continue
		}
		a := sums[phi]
		if a == nil {
			a = &rgbSum{}
			sums[phi] = a
		}
		a.add(c, counts[c])
	}
	return meansFromSums(sums)
}

// computeClusterToMeanRgb is the same averaging, routed through the
// φ -> cluster lookup table instead of φ directly.
func computeClusterToMeanRgb(counts map[colorcount.RGB]int, colorToPhi map[colorcount.RGB]int, phiToCluster [bins]int) map[int]colorcount.RGB {
	sums := make(map[int]*rgbSum)
	for _, c := range colorcount.SortedKeys(counts) {
		phi, ok := colorToPhi[c]
		if !ok || phi < 0 {
			continue
		}
		cluster := phiToCluster[phi]
		a := sums[cluster]
		if a == nil {
			a = &rgbSum{}
			sums[cluster] = a
		}
		a.add(c, counts[c])
	}
	return meansFromSums(sums)
}

func meansFromSums(sums map[int]*rgbSum) map[int]colorcount.RGB {
	out := make(map[int]colorcount.RGB, len(sums))
	for key, a := range sums {
		out[key] = a.mean()
	}
	return out
}

// uint32nFor returns a generator of pseudorandom values in [0,n). A zero
// seed means the caller doesn't need reproducibility, so it defers to a
// plain fastrand.RNG{} the way the rest of this codebase uses it elsewhere;
// fastrand exposes no public way to seed an instance to a caller-chosen
// value, so a non-zero seed instead drives a small xorshift32 generator
// seeded directly from it, for reproducible sampling.
func uint32nFor(seed uint64) func(n uint32) uint32 {
	if seed == 0 {
		rng := fastrand.RNG{}
		return rng.Uint32n
	}
	x := uint32(seed)
	if x == 0 {
		x = 1
	}
	return func(n uint32) uint32 {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		return x % n
	}
}

func maxInt(s []int) int {
	m := 0
	for _, v := range s {
		if v > m {
			m = v
		}
	}
	return m
}
