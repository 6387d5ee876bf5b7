// Package lab implements the central ("Lab-like") projection of a device
// RGB point through the white point onto the chromatic plane, per spec.md
// §3-§4.2. No pack library (go-colorful, soypat/colorspace) exposes this
// specific construction -- they implement CIELAB/OKLAB, which are distinct
// color spaces -- so this is hand-derived directly from the projection and
// rotation matrix in the specification.
package lab

import "math"

// invSqrt3 is 1/sqrt(3), each component of n = (1,1,1)/sqrt(3), the
// diagonal unit normal used by the projection through the white point
// w = (1,1,1).
var invSqrt3 = 1 / math.Sqrt(3)

// rotation is the orthonormal matrix M from spec.md §3, mapping the
// projected point into (α, β, L) coordinates.
var rotation = [3][3]float64{
	{-1 / math.Sqrt2, 1 / math.Sqrt2, 0},
	{1 / math.Sqrt(6), 1 / math.Sqrt(6), -2 / math.Sqrt(6)},
	{invSqrt3, invSqrt3, invSqrt3},
}

// Project maps an 8-bit RGB triple to rounded, 255-scaled (alpha, beta, l)
// coordinates. White (255,255,255) is the projection's singularity and is
// represented by the sentinel (0,0,0) with isWhite=true.
func Project(r, g, b uint8) (alpha, beta, l int, isWhite bool) {
	p := [3]float64{float64(r) / 255, float64(g) / 255, float64(b) / 255}
	if p[0] == 1 && p[1] == 1 && p[2] == 1 {
		return 0, 0, 0, true
	}

	w := [3]float64{1, 1, 1}
	var diff [3]float64
	for i := range diff {
		diff[i] = p[i] - w[i]
	}

	// n . w and n . (p - w), with n the diagonal unit normal.
	nDotW := invSqrt3 * (w[0] + w[1] + w[2])
	nDotDiff := invSqrt3 * (diff[0] + diff[1] + diff[2])

	scale := -nDotW / nDotDiff

	var projected [3]float64
	for i := range projected {
		projected[i] = w[i] + scale*diff[i]
	}

	var rotated [3]float64
	for i := 0; i < 3; i++ {
		rotated[i] = rotation[i][0]*projected[0] + rotation[i][1]*projected[1] + rotation[i][2]*projected[2]
	}

	alpha = round(rotated[0] * 255)
	beta = round(rotated[1] * 255)
	l = round(rotated[2] * 255)
	return alpha, beta, l, false
}

// Phi computes the circular hue angle for a chromatic (alpha, beta) pair,
// per spec.md §3: atan2(-beta, alpha) in degrees, wrapped into [0,360).
// Callers are responsible for routing gray pixels (R=G=B) to the phi=-1
// sentinel before reaching here.
func Phi(alpha, beta int) int {
	deg := math.Atan2(-float64(beta), float64(alpha)) * 180 / math.Pi
	phi := round(deg+360) % 360
	if phi < 0 {
		phi += 360
	}
	return phi
}

func round(x float64) int {
	if x >= 0 {
		return int(x + 0.5)
	}
	return -int(-x + 0.5)
}
