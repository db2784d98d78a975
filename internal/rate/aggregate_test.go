package rate

import (
	"math"
	"testing"
)

func TestAggregateOverlap(t *testing.T) {
	// Two overlapping lines of 5 units each: merged speaking time is
	// 1500ms = 0.025 min, so the rate is 10/0.025 = 400, not the 300 a
	// naive duration sum would give.
	lines := []Line{
		{Interval: Interval{0, 1000}, Count: 5, Rate: 300, Weight: 1},
		{Interval: Interval{500, 1500}, Count: 5, Rate: 300, Weight: 1},
	}

	res := Aggregate(lines, false)
	if res.TotalUnits != 10 {
		t.Errorf("TotalUnits = %d, want 10", res.TotalUnits)
	}
	if math.Abs(res.TotalMinutes-0.025) > 1e-9 {
		t.Errorf("TotalMinutes = %v, want 0.025", res.TotalMinutes)
	}
	if math.Abs(res.Rate-400) > 1e-9 {
		t.Errorf("Rate = %v, want 400", res.Rate)
	}
}

func TestAggregateEmpty(t *testing.T) {
	res := Aggregate(nil, false)
	if res != (Result{}) {
		t.Errorf("Aggregate(nil) = %+v, want zero result", res)
	}
	res = Aggregate(nil, true)
	if res != (Result{}) {
		t.Errorf("Aggregate(nil, trim) = %+v, want zero result", res)
	}
}

func TestAggregateTrim(t *testing.T) {
	// One second per line; rates equal counts times 60. The 100-count line
	// is far outside the fences of the others and must not contribute.
	lines := []Line{
		{Interval: Interval{0, 1000}, Count: 10, Rate: 600, Weight: 1},
		{Interval: Interval{2000, 3000}, Count: 12, Rate: 720, Weight: 1},
		{Interval: Interval{4000, 5000}, Count: 11, Rate: 660, Weight: 1},
		{Interval: Interval{6000, 7000}, Count: 100, Rate: 6000, Weight: 1},
	}

	trimmed := Aggregate(lines, true)
	if trimmed.TotalUnits != 33 {
		t.Errorf("trimmed TotalUnits = %d, want 33", trimmed.TotalUnits)
	}
	if math.Abs(trimmed.TotalMinutes-0.05) > 1e-9 {
		t.Errorf("trimmed TotalMinutes = %v, want 0.05", trimmed.TotalMinutes)
	}

	kept := Aggregate(lines, false)
	if kept.TotalUnits != 133 {
		t.Errorf("untrimmed TotalUnits = %d, want 133", kept.TotalUnits)
	}
}

func TestAggregateTrimConstantRates(t *testing.T) {
	// IQR of a constant distribution is zero: everything must be kept.
	lines := []Line{
		{Interval: Interval{0, 1000}, Count: 5, Rate: 300, Weight: 1},
		{Interval: Interval{2000, 3000}, Count: 5, Rate: 300, Weight: 1},
		{Interval: Interval{4000, 5000}, Count: 5, Rate: 300, Weight: 1},
	}
	res := Aggregate(lines, true)
	if res.TotalUnits != 15 {
		t.Errorf("TotalUnits = %d, want 15", res.TotalUnits)
	}
}
