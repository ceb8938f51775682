package regress

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// PercentileRank sorts values ascending and walks the running sum until it
// strictly exceeds the given percentage of the total mass. It returns the
// value at which the threshold was crossed and the 1-based count of sorted
// elements consumed to cross it.
//
// When nothing crosses the threshold — empty input, or a threshold at or
// above the total sum — ok is false and the other results are zero.
func PercentileRank(values []float64, percentile float64) (value float64, rank int, ok bool) {
	if len(values) == 0 {
		return 0, 0, false
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	threshold := floats.Sum(sorted) * percentile / 100

	var running float64
	for i, v := range sorted {
		running += v
		if running > threshold {
			return v, i + 1, true
		}
	}
	return 0, 0, false
}

// MedianRank is PercentileRank at the 50th percentile: the first sorted
// value at which the running sum exceeds half the total.
func MedianRank(values []float64) (value float64, rank int, ok bool) {
	return PercentileRank(values, 50)
}
