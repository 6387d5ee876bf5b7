package plot

import (
	"strings"
	"testing"

	"github.com/mlnoga/doccolor/internal/colorcount"
)

func TestPlot3DRGBEmitsOneRowPerColor(t *testing.T) {
	counts := map[colorcount.RGB]int{
		{255, 0, 0}: 3,
		{0, 255, 0}: 1,
	}
	out := Plot3DRGB(counts, 1, DefaultYaw, DefaultPitch)
	if !strings.Contains(out, "\\begin{axis}") {
		t.Errorf("Plot3DRGB output missing axis environment")
	}
	if got := strings.Count(out, "{rgb,255:red,"); got != 2 {
		t.Errorf("Plot3DRGB emitted %d color rows, want 2", got)
	}
}

func TestPlot3DRGBCapsAtMaxScatterColors(t *testing.T) {
	counts := make(map[colorcount.RGB]int, maxScatterColors+500)
	for i := 0; i < maxScatterColors+500; i++ {
		counts[colorcount.RGB{R: uint8(i % 256), G: uint8(i / 256), B: 1}] = 1
	}
	out := Plot3DRGB(counts, 7, DefaultYaw, DefaultPitch)
	if got := strings.Count(out, "{rgb,255:red,"); got != maxScatterColors {
		t.Errorf("Plot3DRGB emitted %d color rows, want %d (capped)", got, maxScatterColors)
	}
}

func TestPlot1DPhiEmitsBothSeries(t *testing.T) {
	var raw [360]float64
	var smoothed [360]int
	raw[10] = 5
	smoothed[10] = 4
	counts := map[colorcount.RGB]int{{200, 0, 0}: 4}
	colorToPhi := map[colorcount.RGB]int{{200, 0, 0}: 10}

	out := Plot1DPhi(raw, smoothed, counts, colorToPhi)
	if !strings.Contains(out, "\\legend{raw,smoothed}") {
		t.Errorf("Plot1DPhi output missing legend")
	}
	if !strings.Contains(out, " 10 0 {rgb,255:red,200;green,0;blue,0}") {
		t.Errorf("Plot1DPhi output missing mean-RGB marker for bin 10:\n%s", out)
	}
}

func TestPlot1DPhiOmitsStripWhenNoChromaticColors(t *testing.T) {
	var raw [360]float64
	var smoothed [360]int
	out := Plot1DPhi(raw, smoothed, nil, nil)
	if strings.Contains(out, "mark=square*") {
		t.Errorf("Plot1DPhi should omit the mean-RGB strip when no color lands in any bin")
	}
}

func TestPlot1DClustersMarksPeaksAndBoundaries(t *testing.T) {
	var smoothed [360]int
	var phiToCluster [360]int
	smoothed[90] = 10
	phiToCluster[90] = 1
	counts := map[colorcount.RGB]int{{10, 200, 10}: 3}
	colorToPhi := map[colorcount.RGB]int{{10, 200, 10}: 90}

	out := Plot1DClusters(smoothed, []int{90}, []int{45, 225}, counts, colorToPhi, phiToCluster)
	if strings.Count(out, "\\draw[{rgb,255:red,10;green,200;blue,10}") != 1 {
		t.Errorf("Plot1DClusters should draw exactly one cluster-colored peak marker:\n%s", out)
	}
	if strings.Count(out, "\\draw[dashed") != 2 {
		t.Errorf("Plot1DClusters should draw exactly two boundary markers")
	}
}
