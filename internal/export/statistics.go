package export

import (
	"fmt"
	"time"

	"github.com/ramonehamilton/lotto-companion/internal/analysis"
	"github.com/ramonehamilton/lotto-companion/internal/lottery"
)

// TableExportRow represents one row of a statistic table for CSV export.
// Values holds the row cells joined with semicolons, most recent draw first.
type TableExportRow struct {
	Row    int    `csv:"row" json:"row"`
	Values string `csv:"values" json:"values"`
}

// DistributionExportRow represents a single value/count pair for CSV export.
type DistributionExportRow struct {
	Value int `csv:"value" json:"value"`
	Count int `csv:"count" json:"count"`
}

// StatisticsExportJSON represents the full analysis output in JSON format.
type StatisticsExportJSON struct {
	Distances     lottery.DrawTable       `json:"distances,omitempty"`
	Weights       lottery.DrawTable       `json:"weights,omitempty"`
	Distribution  []DistributionExportRow `json:"distribution,omitempty"`
	WeightsWindow int                     `json:"weights_window,omitempty"`
	ExportedAt    string                  `json:"exported_at"`
}

// ExportTable exports a statistic table (distances or weights) to the
// specified format.
func ExportTable(table lottery.DrawTable, opts Options) error {
	if len(table) == 0 {
		return fmt.Errorf("no table data to export")
	}

	rows := make([]TableExportRow, len(table))
	for i, row := range table {
		rows[i] = TableExportRow{Row: i + 1, Values: joinRow(row)}
	}
	return NewExporter(opts).Export(rows)
}

// ExportDistribution exports a value distribution, keys ascending.
func ExportDistribution(dist analysis.Distribution, opts Options) error {
	if len(dist) == 0 {
		return fmt.Errorf("no distribution data to export")
	}

	keys := dist.SortedKeys()
	rows := make([]DistributionExportRow, len(keys))
	for i, k := range keys {
		rows[i] = DistributionExportRow{Value: k, Count: dist[k]}
	}

	exporter := NewExporter(opts)
	if opts.Format == FormatJSON {
		return exporter.Export(StatisticsExportJSON{
			Distribution: rows,
			ExportedAt:   time.Now().UTC().Format(time.RFC3339),
		})
	}
	return exporter.Export(rows)
}

func joinRow(row []int) string {
	out := ""
	for i, v := range row {
		if i > 0 {
			out += ";"
		}
		out += fmt.Sprintf("%d", v)
	}
	return out
}
