package rate

import (
	"reflect"
	"testing"
)

func TestMergeIntervals(t *testing.T) {
	tests := []struct {
		name  string
		spans []Interval
		want  []Interval
	}{
		{"empty", nil, nil},
		{"single", []Interval{{0, 1000}}, []Interval{{0, 1000}}},
		{
			"overlapping pair",
			[]Interval{{0, 1000}, {500, 1500}},
			[]Interval{{0, 1500}},
		},
		{
			"touching spans merge",
			[]Interval{{0, 1000}, {1000, 2000}},
			[]Interval{{0, 2000}},
		},
		{
			"gap preserved",
			[]Interval{{0, 1000}, {1500, 2000}},
			[]Interval{{0, 1000}, {1500, 2000}},
		},
		{
			"unsorted input",
			[]Interval{{3000, 4000}, {0, 1000}, {500, 2000}},
			[]Interval{{0, 2000}, {3000, 4000}},
		},
		{
			"contained span",
			[]Interval{{0, 5000}, {1000, 2000}},
			[]Interval{{0, 5000}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeIntervals(tt.spans)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MergeIntervals(%v) = %v, want %v", tt.spans, got, tt.want)
			}
		})
	}
}

func TestMergeIntervalsIdempotent(t *testing.T) {
	spans := []Interval{{3000, 4000}, {0, 1000}, {500, 2000}, {2000, 2500}}
	once := MergeIntervals(spans)
	twice := MergeIntervals(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("merge not idempotent: %v then %v", once, twice)
	}
}

func TestMergeIntervalsCoverage(t *testing.T) {
	// Merged duration never exceeds the raw sum; equal only when nothing
	// overlapped or touched.
	overlapping := []Interval{{0, 1000}, {500, 1500}, {4000, 5000}}
	if merged, raw := TotalMS(MergeIntervals(overlapping)), TotalMS(overlapping); merged >= raw {
		t.Errorf("merged %dms not below raw %dms despite overlap", merged, raw)
	}

	disjoint := []Interval{{0, 1000}, {2000, 3000}}
	if merged, raw := TotalMS(MergeIntervals(disjoint)), TotalMS(disjoint); merged != raw {
		t.Errorf("merged %dms != raw %dms for disjoint spans", merged, raw)
	}
}
