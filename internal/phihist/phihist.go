// Package phihist builds and smooths the circular φ-histogram described in
// spec.md §3/§4.4: a 360-bin weighted histogram of chromatic hue angles,
// Gaussian-blurred with wraparound at the 0/360 boundary.
package phihist

import (
	"errors"

	"github.com/mlnoga/doccolor/internal/colorcount"
	"github.com/mlnoga/doccolor/internal/kernel"
	"github.com/mlnoga/doccolor/internal/lab"

	"gonum.org/v1/gonum/floats"
)

const bins = 360

// ErrInvalidTolerance is returned when tolerance is not an odd positive int.
var ErrInvalidTolerance = errors.New("phihist: tolerance must be odd and positive")

// ValidateTolerance checks spec.md §4.9/§7's configuration contract.
func ValidateTolerance(tolerance int) error {
	if tolerance <= 0 || tolerance%2 == 0 {
		return ErrInvalidTolerance
	}
	return nil
}

// Result bundles the histogram builder's outputs.
type Result struct {
	Hist         [bins]float64
	Smoothed     [bins]int
	ColorToPhi   map[colorcount.RGB]int
	ColorToAlpha map[colorcount.RGB]int // alpha coordinate, for plotting
	ColorToBeta  map[colorcount.RGB]int // beta coordinate, for plotting
}

// Build projects every color in counts to a φ angle, accumulates the raw
// histogram weighted by pixel count, and returns both the raw and
// circularly-smoothed histograms alongside the color -> φ map spec.md §3
// calls color_to_phi.
func Build(counts map[colorcount.RGB]int, tolerance int) (*Result, error) {
	if err := ValidateTolerance(tolerance); err != nil {
		return nil, err
	}

	res := &Result{
		ColorToPhi:   make(map[colorcount.RGB]int, len(counts)),
		ColorToAlpha: make(map[colorcount.RGB]int, len(counts)),
		ColorToBeta:  make(map[colorcount.RGB]int, len(counts)),
	}

	for _, c := range colorcount.SortedKeys(counts) {
		n := counts[c]
		if c.IsGray() {
			res.ColorToPhi[c] = -1
			continue
		}
		alpha, beta, _, isWhite := lab.Project(c.R, c.G, c.B)
		if isWhite {
			res.ColorToPhi[c] = -1
			continue
		}
		phi := lab.Phi(alpha, beta)
		res.ColorToPhi[c] = phi
		res.ColorToAlpha[c] = alpha
		res.ColorToBeta[c] = beta
		res.Hist[phi] += float64(n)
	}

	smoothed := smoothCircular(res.Hist[:], tolerance)
	for i, v := range smoothed {
		res.Smoothed[i] = int(v + 0.5)
	}
	return res, nil
}

// smoothCircular convolves hist (length 360) with a Gaussian kernel of the
// given odd size, wrapping indices at the circle boundary. A non-circular
// blur biases peaks near 0/359, the exact historical bug spec.md §9 flags
// as incorrect -- the wraparound here is the documented fix.
func smoothCircular(hist []float64, tolerance int) []float64 {
	weights := kernel.Gaussian1D(tolerance)
	half := len(weights) / 2
	n := len(hist)

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		var acc float64
		terms := make([]float64, len(weights))
		for k, w := range weights {
			j := ((i + k - half) % n + n) % n
			terms[k] = hist[j] * w
		}
		acc = floats.Sum(terms)
		out[i] = acc
	}
	return out
}
