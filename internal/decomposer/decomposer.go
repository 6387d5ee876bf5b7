// Package decomposer orchestrates the full document color-decomposition
// pipeline described in spec.md §2/§4.9: preprocessing, color counting,
// φ-histogram construction, peak detection, cluster boundary derivation and
// layer/mask compositing, run once in strict dependency order and exposed
// through read-only accessors.
package decomposer

import (
	"fmt"

	"github.com/mlnoga/doccolor/internal/cluster"
	"github.com/mlnoga/doccolor/internal/colorcount"
	"github.com/mlnoga/doccolor/internal/colorspace"
	"github.com/mlnoga/doccolor/internal/docimage"
	"github.com/mlnoga/doccolor/internal/layer"
	"github.com/mlnoga/doccolor/internal/peaks"
	"github.com/mlnoga/doccolor/internal/phihist"
	"github.com/mlnoga/doccolor/internal/plot"
	"github.com/mlnoga/doccolor/internal/quality"
)

// DefaultTolerance is the Gaussian kernel size for φ-histogram smoothing.
const DefaultTolerance = 35

// Options configures a Decomposer. Build it with the With* functions below
// rather than setting fields directly; the zero value is not meaningful.
type Options struct {
	Tolerance           int
	Preprocess          bool
	SaturationThreshold uint8
	LightnessThreshold  uint8
	HueSmoothKernel     int
	Seed                uint64
}

// Option mutates an Options value being built up by New.
type Option func(*Options)

// WithTolerance sets the φ-histogram Gaussian smoothing kernel size. Must be
// odd and positive; checked by New.
func WithTolerance(t int) Option {
	return func(o *Options) { o.Tolerance = t }
}

// WithoutPreprocess disables saturation/lightness thresholding and hue
// smoothing, running peak detection on the raw source colors.
func WithoutPreprocess() Option {
	return func(o *Options) { o.Preprocess = false }
}

// WithSaturationThreshold overrides colorspace.DefaultSaturationThreshold.
func WithSaturationThreshold(t uint8) Option {
	return func(o *Options) { o.SaturationThreshold = t }
}

// WithLightnessThreshold overrides colorspace.DefaultLightnessThreshold.
func WithLightnessThreshold(t uint8) Option {
	return func(o *Options) { o.LightnessThreshold = t }
}

// WithHueSmoothKernel overrides colorspace.DefaultHueSmoothKernel.
func WithHueSmoothKernel(k int) Option {
	return func(o *Options) { o.HueSmoothKernel = k }
}

// WithSeed fixes the RNG seed used to subsample colors for the 3D RGB plot.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

func defaultOptions() Options {
	return Options{
		Tolerance:           DefaultTolerance,
		Preprocess:          true,
		SaturationThreshold: colorspace.DefaultSaturationThreshold,
		LightnessThreshold:  colorspace.DefaultLightnessThreshold,
		HueSmoothKernel:     colorspace.DefaultHueSmoothKernel,
		Seed:                1,
	}
}

// Decomposer holds the immutable result of running the pipeline once. All
// accessors are read-only; there is no incremental re-run.
type Decomposer struct {
	opts      Options
	src       *docimage.Image
	processed *docimage.Image
	counts    map[colorcount.RGB]int
	hist      *phihist.Result
	peaks     []int
	clusters  *cluster.Result
	layers    []*docimage.Image
	masks     []*docimage.Mask
}

// New runs the full pipeline over src -- preprocess, count colors, build
// the φ-histogram, find peaks, derive cluster boundaries, composite layers
// and masks -- in that strict order, and returns the finished result.
func New(src *docimage.Image, opts ...Option) (*Decomposer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := phihist.ValidateTolerance(o.Tolerance); err != nil {
		return nil, err
	}

	d := &Decomposer{opts: o, src: src}

	d.processed = src
	if o.Preprocess {
		d.processed = colorspace.ThreshSaturation(d.processed, o.SaturationThreshold)
		d.processed = colorspace.ThreshLightness(d.processed, o.LightnessThreshold)
		d.processed = colorspace.SmoothHue(d.processed, o.HueSmoothKernel)
	}

	d.counts = colorcount.Compute(d.processed)

	hist, err := phihist.Build(d.counts, o.Tolerance)
	if err != nil {
		return nil, err
	}
	d.hist = hist

	maxHeight := 0
	for _, v := range hist.Smoothed {
		if v > maxHeight {
			maxHeight = v
		}
	}
	minHeight := int(float64(maxHeight)*0.01 + 0.5)
	d.peaks = peaks.Find(hist.Smoothed, minHeight)

	d.clusters = cluster.Build(d.peaks)
	d.layers, d.masks = layer.Build(d.src, d.processed, hist.ColorToPhi, d.clusters.PhiToCluster)

	return d, nil
}

// Layers returns the per-cluster images: white everywhere except for the
// source pixels belonging to that cluster. Index 0 is the achromatic/gray
// layer.
func (d *Decomposer) Layers() []*docimage.Image { return d.layers }

// Masks returns the binary per-cluster membership masks, in the same order
// as Layers.
func (d *Decomposer) Masks() []*docimage.Mask { return d.masks }

// Peaks returns the accepted φ peak positions, ascending.
func (d *Decomposer) Peaks() []int { return d.peaks }

// ClusterBoundaries returns the circular midpoints between adjacent peaks
// that separate chromatic clusters.
func (d *Decomposer) ClusterBoundaries() []int { return d.clusters.Boundaries }

// NumClusters returns len(Layers()), the total cluster count including the
// achromatic layer.
func (d *Decomposer) NumClusters() int { return len(d.layers) }

// Quality scores the predicted masks against ground truth using panoptic
// quality (spec.md §4.8). truth must use the same pixel dimensions as the
// source image; cluster index alignment between predicted and ground-truth
// masks is not assumed -- PQ's greedy IoU matching handles that. Predicted
// masks with no set pixel (e.g. the achromatic mask of an image without gray
// pixels) are not scored, so they do not count as false positives.
func (d *Decomposer) Quality(truth []*docimage.Mask) float64 {
	var predicted []*docimage.Mask
	for _, m := range d.masks {
		if m.CountNonZero() > 0 {
			predicted = append(predicted, m)
		}
	}
	return quality.PQ(predicted, truth)
}

// Plot3DRGB renders a TikZ scatter of sampled source colors in RGB space.
func (d *Decomposer) Plot3DRGB(yaw, pitch float64) string {
	return plot.Plot3DRGB(d.counts, d.opts.Seed, yaw, pitch)
}

// Plot1DPhi renders the raw and smoothed φ-histograms as TikZ line plots,
// with an axis strip of markers colored by each bin's mean RGB; the curves
// themselves are drawn in fixed colors.
func (d *Decomposer) Plot1DPhi() string {
	return plot.Plot1DPhi(d.hist.Hist, d.hist.Smoothed, d.counts, d.hist.ColorToPhi)
}

// Plot1DClusters renders the smoothed φ-histogram as a TikZ line plot
// annotated with peak markers (colored by cluster mean RGB) and
// cluster-boundary markers.
func (d *Decomposer) Plot1DClusters() string {
	return plot.Plot1DClusters(d.hist.Smoothed, d.peaks, d.clusters.Boundaries, d.counts, d.hist.ColorToPhi, d.clusters.PhiToCluster)
}

// Plot2DLab rasterizes the (α,β) chromatic plane, one dot per distinct
// color, sized and positioned per spec.md's supplemented 3D-plot geometry.
func (d *Decomposer) Plot2DLab() *docimage.Image {
	return plot.Plot2DLab(d.counts, d.hist.ColorToAlpha, d.hist.ColorToBeta)
}

// String summarizes the decomposition for logging.
func (d *Decomposer) String() string {
	return fmt.Sprintf("%d clusters, %d distinct colors, %d peaks", d.NumClusters(), len(d.counts), len(d.peaks))
}
