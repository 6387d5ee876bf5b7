// Package cluster derives chromatic cluster boundaries from accepted φ
// peaks and maps every φ bin to a cluster index, per spec.md §4.6.
package cluster

const bins = 360

// Result bundles the cluster boundaries and the resulting phi -> cluster
// lookup table.
type Result struct {
	// Boundaries holds the circular midpoints between adjacent peaks, sorted
	// ascending, for reporting/plotting purposes.
	Boundaries []int
	// PhiToCluster maps every phi bin in [0,360) to a cluster index. Index 0
	// is reserved by callers for achromatic/gray (phi=-1); this table never
	// produces 0.
	PhiToCluster [bins]int
}

// Build computes cluster boundaries as the circular midpoints between
// consecutive accepted peaks (closing the circle via peaks[0]+360), then
// assigns every phi bin to the cluster of the gap it falls in. With fewer
// than two peaks there are no boundaries to derive, and every chromatic bin
// falls into the single default cluster 1.
func Build(peaks []int) *Result {
	res := &Result{}
	for i := range res.PhiToCluster {
		res.PhiToCluster[i] = 1
	}
	if len(peaks) < 2 {
		return res
	}

	n := len(peaks)
	extended := make([]int, n+1)
	copy(extended, peaks)
	extended[n] = peaks[0] + bins

	boundaries := make([]int, n)
	for i := 0; i < n; i++ {
		boundaries[i] = ((extended[i] + extended[i+1]) / 2) % bins
	}
	sortInts(boundaries)

	// Fill each gap between consecutive sorted boundaries with its own
	// cluster index, starting at 1 so the n gaps exactly cover clusters
	// 1..n with no unused index in between.
	res.Boundaries = append([]int{}, boundaries...)
	for i := 0; i < n; i++ {
		start := boundaries[i]
		end := boundaries[(i+1)%n]
		fillCircular(res.PhiToCluster[:], start, end, i+1)
	}
	return res
}

// fillCircular sets table[start], table[start+1], ..., up to but excluding
// end, wrapping around the 0/360 boundary when end <= start.
func fillCircular(table []int, start, end, cluster int) {
	n := len(table)
	for i := start; i != end; i = (i + 1) % n {
		table[i] = cluster
	}
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		v := s[i]
		j := i - 1
		for j >= 0 && s[j] > v {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = v
	}
}
