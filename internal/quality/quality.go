// Package quality implements the panoptic-quality metric used to score a
// predicted set of cluster masks against ground truth, per spec.md §4.8.
package quality

import (
	"github.com/mlnoga/doccolor/internal/docimage"

	"gonum.org/v1/gonum/stat"
)

// IoU returns the intersection-over-union of two same-sized masks, treating
// a pixel as set when its value is non-zero. Two empty masks have IoU 0.
func IoU(a, b *docimage.Mask) float64 {
	var intersection, union int
	for i := range a.Pix {
		av := a.Pix[i] != 0
		bv := b.Pix[i] != 0
		if av && bv {
			intersection++
		}
		if av || bv {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// matchThreshold is the IoU a predicted/ground-truth pair must clear to
// count as a true positive, per spec.md §4.8.
const matchThreshold = 0.5

// PQ computes panoptic quality: greedily matches each predicted mask to the
// unmatched ground-truth mask with highest IoU, keeping the pair only if
// IoU >= matchThreshold. PQ is the sum of matched IoUs divided by matches
// plus a half-weighted penalty for false positives and false negatives,
// i.e.
//
//	PQ = (sum of matched IoUs) / (matches + 0.5*(unmatched predicted + unmatched truth))
//
// Two empty mask sets score 0.
func PQ(predicted, truth []*docimage.Mask) float64 {
	if len(predicted) == 0 && len(truth) == 0 {
		return 0
	}

	usedTruth := make([]bool, len(truth))
	var matchedIoUs []float64
	matchedTruth := 0

	for _, p := range predicted {
		bestIoU := 0.0
		bestIdx := -1
		for ti, t := range truth {
			if usedTruth[ti] {
				continue
			}
			iou := IoU(p, t)
			if iou > bestIoU {
				bestIoU = iou
				bestIdx = ti
			}
		}
		if bestIdx >= 0 && bestIoU >= matchThreshold {
			usedTruth[bestIdx] = true
			matchedIoUs = append(matchedIoUs, bestIoU)
			matchedTruth++
		}
	}

	falsePositives := len(predicted) - matchedTruth
	falseNegatives := len(truth) - matchedTruth
	denom := float64(matchedTruth) + 0.5*float64(falsePositives+falseNegatives)
	if denom == 0 || len(matchedIoUs) == 0 {
		return 0
	}
	sumIoU := stat.Mean(matchedIoUs, nil) * float64(len(matchedIoUs))
	return sumIoU / denom
}
