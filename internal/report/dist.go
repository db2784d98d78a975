package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"kanarate/internal/stats"
)

// Distribution is the per-show payload handed to an external plotter:
// the raw observations plus the summary statistics drawn over them.
type Distribution struct {
	Show         string    `json:"show"`
	Unit         string    `json:"unit"`
	Granularity  string    `json:"granularity"`
	TimeWeighted bool      `json:"time_weighted"`
	Bins         int       `json:"bins"`
	Values       []float64 `json:"values"`
	Weights      []float64 `json:"weights,omitempty"`
	Mean         float64   `json:"mean"`
	Median       float64   `json:"median"`
	Mode         float64   `json:"mode"`
}

// NewDistribution computes the summary statistics for values. A nil
// weights slice produces the unweighted forms.
func NewDistribution(show, unit, granularity string, values, weights []float64, bins int) Distribution {
	return Distribution{
		Show:         show,
		Unit:         unit,
		Granularity:  granularity,
		TimeWeighted: weights != nil,
		Bins:         bins,
		Values:       values,
		Weights:      weights,
		Mean:         stats.WeightedMean(values, weights),
		Median:       stats.WeightedMedian(values, weights),
		Mode:         stats.HistogramMode(values, weights, bins),
	}
}

// FileName returns the payload filename for the show, preserving Unicode
// (including CJK) and replacing only path-unsafe runes.
func (d Distribution) FileName() string {
	suffix := ""
	if d.TimeWeighted {
		suffix = "_timeweighted"
	}
	return fmt.Sprintf("%s_%s_%s%s.json", SafeName(d.Show), d.Unit, d.Granularity, suffix)
}

// Write writes the payload as indented JSON into dir, creating it as
// needed, and returns the written path.
func (d Distribution) Write(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode distribution: %w", err)
	}

	path := filepath.Join(dir, d.FileName())
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("failed to write distribution: %w", err)
	}
	return path, nil
}

// SafeName replaces path-unsafe runes in a show name with underscores.
func SafeName(name string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		switch r {
		case '/', ':', 0:
			return '_'
		}
		return r
	}, name))
}
