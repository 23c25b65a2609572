// Package report renders circuit size summaries as text tables.
package report

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/circuits/circuit"
)

// Circuits renders the limit largest circuits of res, with each circuit's
// share of all points. limit <= 0 lists every circuit.
func Circuits(res *circuit.BoundedResult, limit int) string {
	total := 0
	for _, s := range res.Sizes {
		total += s
	}
	if limit <= 0 || limit > len(res.Sizes) {
		limit = len(res.Sizes)
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Size", "Share"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	for i, s := range res.Sizes[:limit] {
		t.AppendRow(table.Row{i + 1, s, share(s, total)})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d circuits", res.Circuits), fmt.Sprintf("%d points", total)})

	return t.Render()
}

func share(part, total int) string {
	if total == 0 {
		return "-"
	}

	return fmt.Sprintf("%.1f%%", 100*float64(part)/float64(total))
}
