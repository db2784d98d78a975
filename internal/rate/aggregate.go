package rate

import "kanarate/internal/stats"

// Result is an episode- or show-level aggregate. Rate is 0, not an error,
// when no speaking time survived.
type Result struct {
	TotalUnits   int
	TotalMinutes float64
	Rate         float64
}

// Aggregate combines lines into a single rate: total units over total
// non-overlapping minutes. With trim set, lines whose rate falls outside
// the Tukey fences of this population are dropped first; the fences are
// computed fresh for every call, never shared. The same computation serves
// one episode or a whole show's surviving lines: interval union makes
// double-counting of overlapping spans impossible however the candidate
// set was assembled.
func Aggregate(lines []Line, trim bool) Result {
	if trim && len(lines) > 0 {
		lines = stats.TrimByIQR(lines, func(l Line) float64 { return l.Rate })
	}
	if len(lines) == 0 {
		return Result{}
	}

	totalUnits := 0
	spans := make([]Interval, len(lines))
	for i, l := range lines {
		totalUnits += l.Count
		spans[i] = l.Interval
	}

	minutes := float64(TotalMS(MergeIntervals(spans))) / 1000.0 / 60.0
	res := Result{TotalUnits: totalUnits, TotalMinutes: minutes}
	if minutes > 0 {
		res.Rate = float64(totalUnits) / minutes
	}
	return res
}
