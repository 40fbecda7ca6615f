package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"jellyname/internal/renamer"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
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

// renderSummary lists every file that matched a tag followed by the totals.
// Unchanged files are counted but not listed.
func renderSummary(summary renamer.Summary) string {
	rows := make([][]string, 0, len(summary.Outcomes))
	for _, outcome := range summary.Outcomes {
		if outcome.Status == renamer.StatusUnchanged {
			continue
		}
		detail := ""
		if outcome.Err != nil {
			detail = renamer.FailureReason(outcome.Err)
		}
		rows = append(rows, []string{
			string(outcome.Status),
			outcome.Plan.SourceName,
			outcome.Plan.DestinationName,
			detail,
		})
	}

	var b strings.Builder
	if len(rows) > 0 {
		b.WriteString(renderTable(
			[]string{"Status", "From", "To", "Detail"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
		))
		b.WriteString("\n")
	}
	b.WriteString(renderTable(
		[]string{"Matched", "Renamed", "Declined", "Unchanged", "Planned", "Failed", "Skipped"},
		[][]string{{
			fmt.Sprint(summary.Matched),
			fmt.Sprint(summary.Renamed),
			fmt.Sprint(summary.Declined),
			fmt.Sprint(summary.Unchanged),
			fmt.Sprint(summary.Planned),
			fmt.Sprint(summary.Failed),
			fmt.Sprint(summary.Skipped),
		}},
		[]columnAlignment{alignRight, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight},
	))
	b.WriteString("\n")
	return b.String()
}
