package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"kanarate/internal/corpus"
	"kanarate/internal/rate"
	"kanarate/internal/report"
	"kanarate/internal/scan"
	"kanarate/internal/ui"
)

// RatesCmd prints one table row per show, sorted by rate ascending.
// Outliers are trimmed with IQR fences unless --include-outliers is set,
// matching the engine's default stance that a handful of flash-cut lines
// should not drag a show's tempo.
type RatesCmd struct {
	Root            string `help:"Root directory to scan for subtitle folders" type:"path" default:"${default_root}"`
	Unit            string `help:"Rate unit to compute" enum:"mora,kana,syllable" default:"${default_unit}"`
	IncludeOutliers bool   `help:"Keep per-line rate outliers"`
	IncludeBackup   bool   `help:"Include backup subtitle folders"`
	Plain           bool   `help:"Plain output without the interactive scan view"`
}

// Run executes the rates command
func (cmd *RatesCmd) Run(g *globals) error {
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
	trim := !cmd.IncludeOutliers

	var rows []report.ShowRow
	if useTUI(cmd.Plain) {
		rows, err = cmd.runTUI(shows, unit, reader, trim)
		if err != nil {
			return err
		}
	} else {
		for _, show := range shows {
			if res := scan.CollectRow(show, unit, reader, trim, nil); res.OK {
				rows = append(rows, res.Row)
			}
		}
	}

	if len(rows) == 0 {
		fmt.Println("No valid subtitle entries found.")
		return nil
	}

	report.SortByRate(rows)
	fmt.Println(report.RenderTable(rows, unit.Label()))
	return nil
}

// runTUI scans the shows behind the Bubbletea progress view and returns
// the completed rows from the final model.
func (cmd *RatesCmd) runTUI(shows []corpus.Show, unit rate.Unit, reader rate.Reader, trim bool) ([]report.ShowRow, error) {
	names := make([]string, len(shows))
	for i, show := range shows {
		names[i] = show.Name
	}

	m := ui.NewModel(names)
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Scan in the background; the model accumulates results from the
	// messages so nothing is shared with this goroutine.
	go func() {
		for i, show := range shows {
			m.ProgressChan <- ui.ShowStartMsg{ShowIndex: i, ShowName: show.Name}

			res := scan.CollectRow(show, unit, reader, trim, func(file string, failed bool) {
				m.ProgressChan <- ui.EpisodeDoneMsg{ShowIndex: i, File: file, Failed: failed}
			})

			m.ProgressChan <- ui.ShowDoneMsg{
				ShowIndex: i,
				Row:       res.Row,
				Episodes:  res.Episodes,
				Failed:    res.Failed,
				Skipped:   !res.OK,
			}
		}
		m.ProgressChan <- ui.AllDoneMsg{}
	}()

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run scan view: %w", err)
	}

	model, ok := final.(ui.Model)
	if !ok {
		return nil, fmt.Errorf("unexpected final model type %T", final)
	}
	return model.Rows(), nil
}
