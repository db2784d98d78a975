// Package scan drives per-show analysis: it walks a show's episode files
// through parsing, line extraction and aggregation, and assembles the
// table rows and distribution payloads the commands report.
package scan

import (
	"kanarate/internal/corpus"
	"kanarate/internal/rate"
	"kanarate/internal/report"
	"kanarate/internal/stats"
	"kanarate/internal/subtitle"
)

// Granularity selects what one distribution observation is.
type Granularity string

const (
	GranularityEpisode Granularity = "episode"
	GranularityLine    Granularity = "line"
)

// RowResult is the outcome of scanning one show for the rates table.
type RowResult struct {
	Row      report.ShowRow
	Episodes int  // subtitle files scanned
	Failed   int  // files that failed to parse and contributed nothing
	OK       bool // false when no valid speaking time was found
}

// Progress is called after each episode file, with failed set when the
// file could not be parsed. A nil Progress is fine.
type Progress func(file string, failed bool)

// CollectRow computes the table row for one show: per-episode aggregates
// summed into show totals, plus the duration-weighted median of the
// show's line rates. Episode aggregates and the show-wide line population
// are trimmed independently, each with fences over its own population.
// A file that fails to parse contributes nothing and does not abort the
// show.
func CollectRow(show corpus.Show, unit rate.Unit, r rate.Reader, trim bool, progress Progress) RowResult {
	files, err := show.EpisodeFiles()
	if err != nil {
		return RowResult{Row: report.ShowRow{Name: show.Name}, Failed: 1}
	}

	res := RowResult{Row: report.ShowRow{Name: show.Name}, Episodes: len(files)}
	var lines []rate.Line
	for _, file := range files {
		cues, err := subtitle.ParseFile(file)
		if progress != nil {
			progress(file, err != nil)
		}
		if err != nil {
			res.Failed++
			continue
		}
		episodeLines := rate.ExtractLines(cues, unit, r)

		agg := rate.Aggregate(episodeLines, trim)
		res.Row.Units += agg.TotalUnits
		res.Row.Minutes += agg.TotalMinutes

		// The line-median population keeps every extracted line; its own
		// trim below uses fences independent of the episode ones.
		lines = append(lines, episodeLines...)
	}

	if res.Row.Minutes <= 0 {
		return res
	}
	res.Row.Rate = float64(res.Row.Units) / res.Row.Minutes

	if trim && len(lines) >= stats.MinTrimPopulation {
		lines = stats.TrimByIQR(lines, func(l rate.Line) float64 { return l.Rate })
	}
	values := make([]float64, len(lines))
	weights := make([]float64, len(lines))
	for i, l := range lines {
		values[i] = l.Rate
		weights[i] = l.Weight
	}
	res.Row.LineMedian = stats.WeightedMedian(values, weights)
	res.OK = true
	return res
}

// DistResult is the outcome of scanning one show for a distribution.
type DistResult struct {
	Values   []float64
	Weights  []float64 // nil unless duration weighting was requested
	Episodes int
	Failed   int
	OK       bool
}

// CollectDistribution gathers one show's rate observations at the given
// granularity. Episode granularity yields one trimmed aggregate rate per
// file; line granularity yields every line rate, trimmed across the whole
// show when requested and the population is large enough. Weights are
// line durations in seconds and only returned for line granularity with
// weighting requested.
func CollectDistribution(show corpus.Show, unit rate.Unit, r rate.Reader, g Granularity, trim, weightByDuration bool, progress Progress) DistResult {
	files, err := show.EpisodeFiles()
	if err != nil {
		return DistResult{Failed: 1}
	}

	res := DistResult{Episodes: len(files)}
	var lines []rate.Line
	for _, file := range files {
		cues, err := subtitle.ParseFile(file)
		if progress != nil {
			progress(file, err != nil)
		}
		if err != nil {
			res.Failed++
			continue
		}
		episodeLines := rate.ExtractLines(cues, unit, r)

		if g == GranularityEpisode {
			if agg := rate.Aggregate(episodeLines, trim); agg.Rate > 0 {
				res.Values = append(res.Values, agg.Rate)
			}
			continue
		}
		lines = append(lines, episodeLines...)
	}

	if g == GranularityLine {
		if trim && len(lines) >= stats.MinTrimPopulation {
			lines = stats.TrimByIQR(lines, func(l rate.Line) float64 { return l.Rate })
		}
		res.Values = make([]float64, len(lines))
		for i, l := range lines {
			res.Values[i] = l.Rate
		}
		if weightByDuration {
			res.Weights = make([]float64, len(lines))
			for i, l := range lines {
				res.Weights[i] = l.Weight
			}
		}
	}

	res.OK = len(res.Values) > 0
	return res
}
