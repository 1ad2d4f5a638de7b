package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"rowgroup/internal/annotate"
)

func renderSummary(w io.Writer, s annotate.Summary) {
	rows := [][]string{
		{"Rows", strconv.Itoa(s.Rows)},
		{"Groups", strconv.Itoa(s.Clusters)},
		{"Largest group", strconv.Itoa(s.LargestCluster)},
		{"Rows without keys", strconv.Itoa(s.RowsWithoutKeys)},
		{"Merges", strconv.Itoa(s.Merges)},
		{"Distinct keys", strconv.Itoa(s.Keys)},
	}
	fmt.Fprintln(w, renderTable([]string{"Metric", "Value"}, rows, isTerminal(w)))
}

func renderTable(headers []string, rows [][]string, rounded bool) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	if rounded {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i == columns-1 {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
