// Package report renders show-level results as terminal tables and
// distribution payloads for external plotting.
package report

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ShowRow is one reportable show: totals, aggregate rate, and the
// duration-weighted median of its line rates.
type ShowRow struct {
	Name       string
	Units      int
	Minutes    float64
	Rate       float64
	LineMedian float64
}

// SortByRate orders rows by aggregate rate ascending, slowest speech
// first.
func SortByRate(rows []ShowRow) {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Rate < rows[j].Rate })
}

// RenderTable renders rows with the unit-specific count header. Numeric
// columns are right-aligned.
func RenderTable(rows []ShowRow, unitLabel string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{"DIR", unitLabel, "MIN", "RATE", "LINE_MEDIAN_TW"})
	for _, row := range rows {
		tw.AppendRow(table.Row{
			row.Name,
			row.Units,
			fmt.Sprintf("%.2f", row.Minutes),
			fmt.Sprintf("%.2f", row.Rate),
			fmt.Sprintf("%.2f", row.LineMedian),
		})
	}

	configs := make([]table.ColumnConfig, 0, 4)
	for col := 2; col <= 5; col++ {
		configs = append(configs, table.ColumnConfig{
			Number:      col,
			Align:       text.AlignRight,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}
