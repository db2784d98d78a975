// Package stats provides the distribution statistics behind rate
// aggregation: interpolated percentiles, Tukey-fence outlier trimming,
// and weight-aware mean, median and histogram mode.
package stats

import "sort"

// Percentile returns the linearly interpolated p-th percentile of sorted,
// which must already be in ascending order. p <= 0 returns the first
// element and p >= 100 the last. An empty slice returns 0 ("no data").
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}
	k := float64(len(sorted)-1) * (p / 100.0)
	f := int(k)
	c := f + 1
	if c > len(sorted)-1 {
		c = len(sorted) - 1
	}
	if f == c {
		return sorted[f]
	}
	return sorted[f]*(float64(c)-k) + sorted[c]*(k-float64(f))
}

// Fences returns the Tukey outlier fences [Q1-1.5*IQR, Q3+1.5*IQR] for
// values. ok is false when the IQR is not positive; zero-width fences
// would wrongly discard everything but the quartile value itself, so no
// trimming should happen in that case.
func Fences(values []float64) (lower, upper float64, ok bool) {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	q1 := Percentile(sorted, 25)
	q3 := Percentile(sorted, 75)
	iqr := q3 - q1
	if iqr <= 0 {
		return 0, 0, false
	}
	return q1 - 1.5*iqr, q3 + 1.5*iqr, true
}

// MinTrimPopulation is the smallest population that distribution-level
// trimming applies to. Quartiles of fewer than four observations are too
// coarse for the fences to mean anything.
const MinTrimPopulation = 4

// TrimByIQR returns the items whose rate lies inside the Tukey fences
// computed over the whole input. The rate function extracts the value to
// fence on, so records travel with their rates instead of being re-paired
// afterwards. A degenerate distribution (IQR <= 0) is returned unchanged.
func TrimByIQR[T any](items []T, rate func(T) float64) []T {
	rates := make([]float64, len(items))
	for i, it := range items {
		rates[i] = rate(it)
	}

	lower, upper, ok := Fences(rates)
	if !ok {
		return items
	}

	kept := make([]T, 0, len(items))
	for i, it := range items {
		if rates[i] >= lower && rates[i] <= upper {
			kept = append(kept, it)
		}
	}
	return kept
}

// WeightedMean returns sum(v*w)/sum(w). A nil weights slice means the
// plain arithmetic mean. Empty input or a non-positive total weight
// returns 0.
func WeightedMean(values, weights []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	if weights == nil {
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		return sum / float64(len(values))
	}

	var sum, totalW float64
	for i, v := range values {
		sum += v * weights[i]
		totalW += weights[i]
	}
	if totalW <= 0 {
		return 0
	}
	return sum / totalW
}

// WeightedMedian returns the value at which the cumulative weight first
// reaches half of the total weight, after sorting by value. It snaps to an
// observed value and never interpolates. A nil weights slice falls back to
// the classic median, which for an even count averages the two central
// values.
func WeightedMedian(values, weights []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	if weights == nil {
		sorted := make([]float64, len(values))
		copy(sorted, values)
		sort.Float64s(sorted)
		mid := len(sorted) / 2
		if len(sorted)%2 == 1 {
			return sorted[mid]
		}
		return (sorted[mid-1] + sorted[mid]) / 2.0
	}

	type pair struct {
		value  float64
		weight float64
	}
	pairs := make([]pair, len(values))
	for i, v := range values {
		pairs[i] = pair{value: v, weight: weights[i]}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].value < pairs[j].value })

	var totalW float64
	for _, p := range pairs {
		totalW += p.weight
	}
	if totalW <= 0 {
		return 0
	}

	target := totalW / 2.0
	var acc float64
	for _, p := range pairs {
		acc += p.weight
		if acc >= target {
			return p.value
		}
	}
	return pairs[len(pairs)-1].value
}

// HistogramMode bins values into bins equal-width buckets over [min, max]
// and returns the midpoint of the heaviest bucket. A nil weights slice
// counts each value as 1. The exact maximum lands in the last bucket, and
// ties break toward the lowest bucket. A constant distribution returns its
// single value.
func HistogramMode(values, weights []float64, bins int) float64 {
	if len(values) == 0 || bins <= 0 {
		return 0
	}

	vmin, vmax := values[0], values[0]
	for _, v := range values[1:] {
		if v < vmin {
			vmin = v
		}
		if v > vmax {
			vmax = v
		}
	}
	if vmin == vmax {
		return vmin
	}

	width := (vmax - vmin) / float64(bins)
	counts := make([]float64, bins)
	for i, v := range values {
		idx := int((v - vmin) / width)
		if idx >= bins {
			idx = bins - 1
		}
		if weights != nil {
			counts[idx] += weights[i]
		} else {
			counts[idx]++
		}
	}

	maxIdx := 0
	for i, c := range counts {
		if c > counts[maxIdx] {
			maxIdx = i
		}
	}
	return vmin + (float64(maxIdx)+0.5)*width
}
