package kernel

import (
	"math"
	"testing"
)

func TestGaussian1DNormalizes(t *testing.T) {
	for _, size := range []int{1, 3, 5, 15} {
		k := Gaussian1D(size)
		if len(k) != size {
			t.Fatalf("Gaussian1D(%d): len=%d, want %d", size, len(k), size)
		}
		var sum float64
		for _, v := range k {
			sum += v
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("Gaussian1D(%d): sum=%g, want 1", size, sum)
		}
	}
}

func TestGaussian1DSymmetric(t *testing.T) {
	k := Gaussian1D(9)
	for i := 0; i < len(k)/2; i++ {
		j := len(k) - 1 - i
		if math.Abs(k[i]-k[j]) > 1e-12 {
			t.Errorf("Gaussian1D(9)[%d]=%g != [%d]=%g, want symmetric", i, k[i], j, k[j])
		}
	}
}

func TestGaussian1DRoundsUpEvenSize(t *testing.T) {
	k := Gaussian1D(4)
	if len(k) != 5 {
		t.Fatalf("Gaussian1D(4): len=%d, want 5 (rounded up to odd)", len(k))
	}
}

func TestGaussian1DPeaksAtCenter(t *testing.T) {
	k := Gaussian1D(7)
	center := len(k) / 2
	for i, v := range k {
		if i != center && v > k[center] {
			t.Errorf("Gaussian1D(7)[%d]=%g > center[%d]=%g, want center to be the maximum", i, v, center, k[center])
		}
	}
}
