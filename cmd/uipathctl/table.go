package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

const (
	columnWidth     = 40
	textColumnWidth = 72
)

// textColumns carry free-form Orchestrator content and wrap on word boundaries.
var textColumns = map[string]bool{
	"Data":        true,
	"Description": true,
	"Error":       true,
	"Message":     true,
	"Value":       true,
}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	if len(headers) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(tableRow(headers, len(headers)))
	for _, row := range rows {
		tw.AppendRow(tableRow(row, len(headers)))
	}

	configs := make([]table.ColumnConfig, len(headers))
	for i, header := range headers {
		configs[i] = columnConfig(i, header, aligns)
	}
	tw.SetColumnConfigs(configs)
	return tw.Render()
}

// tableRow pads short rows and drops cells beyond the header count.
func tableRow(cells []string, columns int) table.Row {
	row := make(table.Row, columns)
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		} else {
			row[i] = ""
		}
	}
	return row
}

func columnConfig(idx int, header string, aligns []columnAlignment) table.ColumnConfig {
	cfg := table.ColumnConfig{
		Number:      idx + 1,
		Align:       text.AlignLeft,
		AlignHeader: text.AlignLeft,
		WidthMax:    columnWidth,
	}
	if idx < len(aligns) && aligns[idx] == alignRight {
		cfg.Align = text.AlignRight
	}
	if textColumns[header] {
		cfg.WidthMax = textColumnWidth
		cfg.WidthMaxEnforcer = text.WrapSoft
	}
	return cfg
}
