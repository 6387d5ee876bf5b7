package quality

import (
	"testing"

	"github.com/mlnoga/doccolor/internal/docimage"
)

func rectMask(w, h, x0, y0, x1, y1 int) *docimage.Mask {
	m := docimage.NewMask(w, h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			m.Set(x, y, 255)
		}
	}
	return m
}

func TestIoUIdenticalMasksIsOne(t *testing.T) {
	a := rectMask(4, 4, 0, 0, 2, 2)
	b := rectMask(4, 4, 0, 0, 2, 2)
	if got := IoU(a, b); got != 1 {
		t.Errorf("IoU(identical) = %g, want 1", got)
	}
}

func TestIoUDisjointMasksIsZero(t *testing.T) {
	a := rectMask(4, 4, 0, 0, 2, 2)
	b := rectMask(4, 4, 2, 2, 4, 4)
	if got := IoU(a, b); got != 0 {
		t.Errorf("IoU(disjoint) = %g, want 0", got)
	}
}

func TestIoUEmptyMasksIsZero(t *testing.T) {
	a := docimage.NewMask(4, 4)
	b := docimage.NewMask(4, 4)
	if got := IoU(a, b); got != 0 {
		t.Errorf("IoU(empty,empty) = %g, want 0", got)
	}
}

func TestPQPerfectMatch(t *testing.T) {
	a := rectMask(4, 4, 0, 0, 2, 4)
	b := rectMask(4, 4, 2, 0, 4, 4)
	predicted := []*docimage.Mask{a, b}
	truth := []*docimage.Mask{rectMask(4, 4, 0, 0, 2, 4), rectMask(4, 4, 2, 0, 4, 4)}
	if got := PQ(predicted, truth); got != 1 {
		t.Errorf("PQ(perfect match) = %g, want 1", got)
	}
}

func TestPQEmptyBothIsZero(t *testing.T) {
	if got := PQ(nil, nil); got != 0 {
		t.Errorf("PQ(nil,nil) = %g, want 0", got)
	}
}

func TestPQPenalizesFalsePositivesAndNegatives(t *testing.T) {
	predicted := []*docimage.Mask{
		rectMask(4, 4, 0, 0, 2, 4),
		rectMask(4, 4, 2, 0, 3, 4), // unmatched false positive
	}
	truth := []*docimage.Mask{
		rectMask(4, 4, 0, 0, 2, 4),
		rectMask(4, 4, 3, 0, 4, 4), // unmatched false negative
	}
	got := PQ(predicted, truth)
	if got <= 0 || got >= 1 {
		t.Errorf("PQ(with FP/FN) = %g, want strictly between 0 and 1", got)
	}
}

func TestPQWeighsFalseNegativesByHalf(t *testing.T) {
	// 1 true positive (IoU 1) plus 2 unmatched ground-truth masks (false
	// negatives): PQ = 1 / (1 + 0.5*2) = 0.5, not 1/3.
	predicted := []*docimage.Mask{rectMask(8, 8, 0, 0, 2, 2)}
	truth := []*docimage.Mask{
		rectMask(8, 8, 0, 0, 2, 2),
		rectMask(8, 8, 4, 4, 6, 6),
		rectMask(8, 8, 6, 6, 8, 8),
	}
	if got := PQ(predicted, truth); got != 0.5 {
		t.Errorf("PQ(1 TP, 2 FN) = %g, want 0.5", got)
	}
}

func TestPQBelowThresholdDoesNotMatch(t *testing.T) {
	// Only a quarter overlap: IoU = 1/7 < 0.5, should not count as a match.
	predicted := []*docimage.Mask{rectMask(4, 4, 0, 0, 2, 2)}
	truth := []*docimage.Mask{rectMask(4, 4, 1, 1, 3, 3)}
	got := PQ(predicted, truth)
	if got != 0 {
		t.Errorf("PQ(below threshold) = %g, want 0", got)
	}
}
