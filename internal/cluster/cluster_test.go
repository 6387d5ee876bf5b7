package cluster

import "testing"

func TestBuildNoPeaksDefaultsToClusterOne(t *testing.T) {
	res := Build(nil)
	for i, c := range res.PhiToCluster {
		if c != 1 {
			t.Fatalf("PhiToCluster[%d] = %d, want 1", i, c)
		}
	}
	if res.Boundaries != nil {
		t.Errorf("Boundaries = %v, want nil", res.Boundaries)
	}
}

func TestBuildOnePeakDefaultsToClusterOne(t *testing.T) {
	res := Build([]int{42})
	for i, c := range res.PhiToCluster {
		if c != 1 {
			t.Fatalf("PhiToCluster[%d] = %d, want 1", i, c)
		}
	}
}

func TestBuildTwoPeaksSplitsCircleInHalf(t *testing.T) {
	res := Build([]int{0, 180})
	if len(res.Boundaries) != 2 {
		t.Fatalf("Boundaries = %v, want 2 entries", res.Boundaries)
	}
	// Every bin must get a cluster, and clusters start at 1.
	seen := map[int]bool{}
	for _, c := range res.PhiToCluster {
		if c < 1 {
			t.Fatalf("PhiToCluster contains %d, want >= 1", c)
		}
		seen[c] = true
	}
	if len(seen) != 2 {
		t.Errorf("distinct clusters = %d, want 2", len(seen))
	}
	// The bin at each peak must belong to its own cluster's region, and the
	// two peaks must land in different clusters.
	if res.PhiToCluster[0] == res.PhiToCluster[180] {
		t.Errorf("peaks 0 and 180 share a cluster: %d", res.PhiToCluster[0])
	}
}

func TestBuildBoundariesAreMidpoints(t *testing.T) {
	res := Build([]int{10, 90})
	want := map[int]bool{50: true, (90 + 370) / 2 % 360: true}
	for _, b := range res.Boundaries {
		if !want[b] {
			t.Errorf("unexpected boundary %d, want one of %v", b, want)
		}
	}
}
