package display

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/lumafold/srcsetgen/internal/pipeline"
)

// RenderSummaryTable builds the per-image result table shown after a batch.
func RenderSummaryTable(results []pipeline.ImageResult) string {
	if len(results) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Image", "Native px", "Generated", "Skipped"})

	for _, r := range results {
		tw.AppendRow(table.Row{
			r.Name,
			strconv.Itoa(r.NativeWidth),
			strconv.Itoa(r.Generated),
			strconv.Itoa(r.Skipped),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
