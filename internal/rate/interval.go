// Package rate is the articulation-rate engine: it turns timed subtitle
// cues into per-line observations and aggregates them into episode- and
// show-level rates over non-overlapping speaking time.
package rate

import "sort"

// Interval is one timing span in absolute milliseconds, start <= end.
type Interval struct {
	StartMS int64
	EndMS   int64
}

// DurationMS returns the span length in milliseconds.
func (iv Interval) DurationMS() int64 {
	return iv.EndMS - iv.StartMS
}

// MergeIntervals collapses spans into the minimal sorted set of
// non-overlapping spans covering the same time. Spans touching exactly at
// a boundary merge: adjacent subtitle lines must not introduce zero-length
// gaps that depress total speaking time. The operation is idempotent and
// an empty input yields an empty result.
func MergeIntervals(spans []Interval) []Interval {
	if len(spans) == 0 {
		return nil
	}

	sorted := make([]Interval, len(spans))
	copy(sorted, spans)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].StartMS < sorted[j].StartMS })

	merged := make([]Interval, 0, len(sorted))
	cur := sorted[0]
	for _, s := range sorted[1:] {
		if s.StartMS <= cur.EndMS {
			if s.EndMS > cur.EndMS {
				cur.EndMS = s.EndMS
			}
			continue
		}
		merged = append(merged, cur)
		cur = s
	}
	return append(merged, cur)
}

// TotalMS returns the summed duration of spans. Meaningful as speaking
// time only after MergeIntervals.
func TotalMS(spans []Interval) int64 {
	var total int64
	for _, s := range spans {
		total += s.DurationMS()
	}
	return total
}
