package export

import (
	"context"
	"fmt"
	"time"

	"github.com/ramonehamilton/lotto-companion/internal/storage/models"
	"github.com/ramonehamilton/lotto-companion/internal/storage/repository"
)

// CombinationExportRow represents a single generated combination for CSV export.
type CombinationExportRow struct {
	OrderIndex int64  `csv:"order_index" json:"order_index"`
	Strategy   string `csv:"strategy" json:"strategy"`
	Numbers    string `csv:"numbers" json:"numbers"`
	Stars      string `csv:"stars" json:"stars"`
	CreatedAt  string `csv:"created_at" json:"created_at"`
}

// CombinationsExportJSON represents the complete combination list in JSON format.
type CombinationsExportJSON struct {
	Combinations []CombinationExportRow `json:"combinations"`
	Total        int                    `json:"total"`
	ExportedAt   string                 `json:"exported_at"`
}

// ExportCombinations exports all stored combinations to the specified format.
func ExportCombinations(ctx context.Context, repo repository.CombinationRepository, opts Options) error {
	combinations, err := repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load combinations: %w", err)
	}
	if len(combinations) == 0 {
		return fmt.Errorf("no combinations to export")
	}

	rows := make([]CombinationExportRow, len(combinations))
	for i, c := range combinations {
		rows[i] = CombinationExportRow{
			OrderIndex: c.OrderIndex,
			Strategy:   c.Strategy,
			Numbers:    models.JoinInts(c.Numbers),
			Stars:      models.JoinInts(c.Stars),
			CreatedAt:  c.CreatedAt.Format(models.TimestampLayout),
		}
	}

	exporter := NewExporter(opts)
	if opts.Format == FormatJSON {
		return exporter.Export(CombinationsExportJSON{
			Combinations: rows,
			Total:        len(rows),
			ExportedAt:   time.Now().UTC().Format(time.RFC3339),
		})
	}
	return exporter.Export(rows)
}
