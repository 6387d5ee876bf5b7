// Package kernel builds normalized 1-D Gaussian kernels shared by the
// hue-smoothing blur in colorspace and the circular φ-histogram blur in
// phihist, so both stages agree on what "Gaussian smoothing with an odd
// kernel size" means.
package kernel

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Gaussian1D returns a normalized Gaussian kernel of the given odd size.
// The standard deviation is derived from size the way most image libraries
// default it: sigma = 0.3*((size-1)*0.5-1)+0.8, matching OpenCV's
// getGaussianKernel default, since spec.md's tolerance parameter is
// expressed purely as a kernel size rather than an explicit sigma.
func Gaussian1D(size int) []float64 {
	if size < 1 {
		size = 1
	}
	if size%2 == 0 {
		size++
	}
	sigma := 0.3*((float64(size)-1)*0.5-1) + 0.8
	half := size / 2
	k := make([]float64, size)
	for i := 0; i < size; i++ {
		x := float64(i - half)
		k[i] = math.Exp(-(x * x) / (2 * sigma * sigma))
	}
	sum := floats.Sum(k)
	floats.Scale(1/sum, k)
	return k
}
