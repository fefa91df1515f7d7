package chart

import (
	"math"
	"sort"

	"github.com/siherrmann/populationDashboard/model"
)

// Summarize computes the box summary of values. Quartiles interpolate
// linearly between closest ranks, fences are the most extreme values within
// 1.5 IQR of the quartiles. It returns nil for no values.
func Summarize(values []float64) *model.BoxSummary {
	if len(values) == 0 {
		return nil
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	summary := &model.BoxSummary{
		Count:  len(sorted),
		Min:    sorted[0],
		Q1:     Quantile(sorted, 0.25),
		Median: Quantile(sorted, 0.5),
		Q3:     Quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}

	iqr := summary.Q3 - summary.Q1
	lowerLimit := summary.Q1 - 1.5*iqr
	upperLimit := summary.Q3 + 1.5*iqr
	summary.LowerFence = summary.Q1
	summary.UpperFence = summary.Q3
	sum := 0.0
	for _, v := range sorted {
		sum += v
		if v >= lowerLimit && v < summary.LowerFence {
			summary.LowerFence = v
		}
		if v <= upperLimit && v > summary.UpperFence {
			summary.UpperFence = v
		}
	}
	summary.Mean = sum / float64(len(sorted))

	return summary
}

// Quantile returns the p-quantile of sorted values using linear interpolation.
// sorted must be ascending and non-empty.
func Quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}

	position := p * float64(len(sorted)-1)
	lower := int(math.Floor(position))
	upper := int(math.Ceil(position))
	if lower == upper {
		return sorted[lower]
	}
	fraction := position - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*fraction
}
