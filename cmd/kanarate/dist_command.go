package main

import (
	"fmt"

	"kanarate/internal/rate"
	"kanarate/internal/report"
	"kanarate/internal/scan"
)

// DistCmd writes one distribution payload per show: the rate observations
// at the chosen granularity plus their weighted mean, median and
// histogram mode, as JSON for an external plotter.
type DistCmd struct {
	Root             string `help:"Root directory to scan for subtitle folders" type:"path" default:"${default_root}"`
	Unit             string `help:"Rate unit to compute" enum:"mora,kana,syllable" default:"${default_unit}"`
	Granularity      string `help:"Distribution granularity" enum:"episode,line" default:"line"`
	WeightByDuration bool   `help:"Weight per-line histograms by subtitle duration (line granularity only)"`
	TrimOutliers     bool   `help:"Trim outliers using IQR fences before computing distributions"`
	IncludeBackup    bool   `help:"Include backup subtitle folders"`
	Bins             int    `help:"Histogram bin count" default:"${default_bins}"`
	Out              string `help:"Output directory for per-show payloads" type:"path" default:"${default_out}"`
}

// Run executes the dist command
func (cmd *DistCmd) Run(g *globals) error {
	shows, err := collectShows(cmd.Root, cmd.IncludeBackup, g)
	if err != nil {
		return err
	}
	if len(shows) == 0 {
		fmt.Println("No subtitle folders found.")
		return nil
	}

	reader, err := newReader()
	if err != nil {
		return err
	}

	unit := rate.Unit(cmd.Unit)
	granularity := scan.Granularity(cmd.Granularity)
	weight := cmd.WeightByDuration && granularity == scan.GranularityLine

	written := 0
	for _, show := range shows {
		res := scan.CollectDistribution(show, unit, reader, granularity, cmd.TrimOutliers, weight, nil)
		if !res.OK {
			continue
		}

		d := report.NewDistribution(show.Name, cmd.Unit, cmd.Granularity, res.Values, res.Weights, cmd.Bins)
		path, err := d.Write(cmd.Out)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		written++
	}

	if written == 0 {
		fmt.Println("No valid subtitle entries found.")
	}
	return nil
}
