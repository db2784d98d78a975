package stats

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty", nil, 50, 0},
		{"zero is min", []float64{3, 7, 9}, 0, 3},
		{"negative clamps to min", []float64{3, 7, 9}, -5, 3},
		{"hundred is max", []float64{3, 7, 9}, 100, 9},
		{"above hundred clamps to max", []float64{3, 7, 9}, 150, 9},
		{"single element", []float64{42}, 75, 42},
		{"exact rank", []float64{1, 2, 3, 4, 5}, 50, 3},
		{"interpolated", []float64{10, 20}, 50, 15},
		{"quartile interpolation", []float64{10, 11, 12, 100}, 25, 10.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if !almostEqual(got, tt.want) {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestFencesDegenerate(t *testing.T) {
	// All-equal values have IQR 0 and must not produce fences.
	if _, _, ok := Fences([]float64{5, 5, 5, 5}); ok {
		t.Error("Fences on a constant distribution reported ok = true")
	}
	if _, _, ok := Fences(nil); ok {
		t.Error("Fences on empty input reported ok = true")
	}
}

func TestTrimByIQR(t *testing.T) {
	t.Run("removes outlier", func(t *testing.T) {
		rates := []float64{10, 12, 11, 100}
		kept := TrimByIQR(rates, func(v float64) float64 { return v })
		if len(kept) != 3 {
			t.Fatalf("kept %d values, want 3: %v", len(kept), kept)
		}
		for _, v := range kept {
			if v == 100 {
				t.Errorf("outlier 100 survived trimming: %v", kept)
			}
		}
	})

	t.Run("constant distribution kept whole", func(t *testing.T) {
		rates := []float64{7, 7, 7, 7, 7}
		kept := TrimByIQR(rates, func(v float64) float64 { return v })
		if len(kept) != len(rates) {
			t.Errorf("kept %d of %d equal values", len(kept), len(rates))
		}
	})

	t.Run("payload travels with rate", func(t *testing.T) {
		type obs struct {
			rate   float64
			weight float64
		}
		items := []obs{{10, 1.5}, {12, 2.0}, {11, 0.5}, {100, 3.0}}
		kept := TrimByIQR(items, func(o obs) float64 { return o.rate })
		if len(kept) != 3 {
			t.Fatalf("kept %d items, want 3", len(kept))
		}
		weights := 0.0
		for _, o := range kept {
			weights += o.weight
		}
		if !almostEqual(weights, 4.0) {
			t.Errorf("surviving weights sum to %v, want 4.0", weights)
		}
	})
}

func TestWeightedMean(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		weights []float64
		want    float64
	}{
		{"empty", nil, nil, 0},
		{"nil weights is arithmetic mean", []float64{2, 4, 6}, nil, 4},
		{"uniform weights match mean", []float64{2, 4, 6}, []float64{1, 1, 1}, 4},
		{"weights shift the mean", []float64{0, 10}, []float64{1, 3}, 7.5},
		{"zero total weight", []float64{1, 2}, []float64{0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeightedMean(tt.values, tt.weights)
			if !almostEqual(got, tt.want) {
				t.Errorf("WeightedMean(%v, %v) = %v, want %v", tt.values, tt.weights, got, tt.want)
			}
		})
	}
}

func TestWeightedMedian(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		weights []float64
		want    float64
	}{
		{"empty", nil, nil, 0},
		{"odd unweighted", []float64{3, 1, 2}, nil, 2},
		{"even unweighted interpolates", []float64{1, 2, 3, 4}, nil, 2.5},
		{"odd uniform weights match classic", []float64{3, 1, 2}, []float64{1, 1, 1}, 2},
		{"weighted never interpolates", []float64{1, 2, 3, 4}, []float64{1, 1, 1, 1}, 2},
		{"heavy tail pulls median", []float64{1, 2, 3}, []float64{1, 1, 10}, 3},
		{"trimmed scenario", []float64{10, 11, 12}, []float64{1, 1, 1}, 11},
		{"zero total weight", []float64{1, 2}, []float64{0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeightedMedian(tt.values, tt.weights)
			if !almostEqual(got, tt.want) {
				t.Errorf("WeightedMedian(%v, %v) = %v, want %v", tt.values, tt.weights, got, tt.want)
			}
		})
	}
}

func TestHistogramMode(t *testing.T) {
	t.Run("heaviest bin wins", func(t *testing.T) {
		// Values 0..10, cluster at 9-10. With 10 bins over [0,10] the last
		// bin (width 1, midpoint 9.5) collects 9, 9.5 and the exact max.
		values := []float64{0, 2, 4, 9, 9.5, 10}
		got := HistogramMode(values, nil, 10)
		if !almostEqual(got, 9.5) {
			t.Errorf("HistogramMode = %v, want 9.5", got)
		}
	})

	t.Run("weights decide the winner", func(t *testing.T) {
		// Unweighted, the low bin has two values and wins; a heavy weight
		// on the single high value flips it.
		values := []float64{0, 0.1, 10}
		unweighted := HistogramMode(values, nil, 10)
		if unweighted > 1 {
			t.Errorf("unweighted mode = %v, want low-bin midpoint", unweighted)
		}
		weighted := HistogramMode(values, []float64{1, 1, 5}, 10)
		if weighted < 9 {
			t.Errorf("weighted mode = %v, want high-bin midpoint", weighted)
		}
	})

	t.Run("tie breaks to lowest bin", func(t *testing.T) {
		// One value in the first bin, one in the last: equal counts, the
		// first bin's midpoint wins.
		got := HistogramMode([]float64{0, 10}, nil, 10)
		if !almostEqual(got, 0.5) {
			t.Errorf("HistogramMode = %v, want 0.5", got)
		}
	})

	t.Run("constant distribution", func(t *testing.T) {
		got := HistogramMode([]float64{3, 3, 3}, nil, 20)
		if !almostEqual(got, 3) {
			t.Errorf("HistogramMode = %v, want 3", got)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if got := HistogramMode(nil, nil, 20); got != 0 {
			t.Errorf("HistogramMode(nil) = %v, want 0", got)
		}
	})
}
