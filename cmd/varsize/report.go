package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/arloliu/leb128/measure"
)

func renderReport(out io.Writer, report *measure.Report) {
	codec := report.Compression.String()

	table := tablewriter.NewWriter(out)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{
		"Set", "Width", "Values", "Raw", "LEB128", "LEB128/Raw", "Bytes/Value",
		"lesqlite", "Group Varint", "Raw+" + codec, "LEB128+" + codec,
	})

	for _, r := range report.Rows {
		table.Append(reportRow(r.Set, r.Width.String(), r, r))
	}

	// Signed rows have raw bytes only; the footer ratios cover encoded rows.
	table.SetFooter(reportRow("total", "", report.Total(), report.EncodedTotal()))
	table.Render()
}

// reportRow formats the sizes of r and the ratio columns of ratios.
func reportRow(set, width string, r, ratios measure.Row) []string {
	return []string{
		set,
		width,
		fmt.Sprintf("%d", r.Count),
		humanize.Bytes(uint64(r.RawBytes)),
		sizeOrDash(r.LEB128Bytes),
		ratioOrDash(ratios.LEB128Ratio()),
		ratioOrDash(ratios.BytesPerValue()),
		sizeOrDash(r.LesqliteBytes),
		sizeOrDash(r.GroupVarintBytes),
		humanize.Bytes(uint64(r.RawCompressedBytes)),
		sizeOrDash(int(r.LEB128CompressedBytes)),
	}
}

func sizeOrDash(n int) string {
	if n == 0 {
		return "-"
	}

	return humanize.Bytes(uint64(n))
}

func ratioOrDash(v float64) string {
	if v == 0 {
		return "-"
	}

	return fmt.Sprintf("%.3f", v)
}
