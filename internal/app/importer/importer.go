// Package importer loads reference catalog rows from CSV exports into the
// catalog service. Column headers are matched heuristically so exports from
// different spreadsheet templates can be ingested without preprocessing.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/chiyonofujikam/roadmap-manager-v2/internal/service/catalog"
)

// mergeService is the slice of the catalog service the importer needs.
type mergeService interface {
	MergeItems(ctx context.Context, input catalog.MergeItemsInput) (*catalog.MergeResult, error)
}

// Result holds import statistics.
type Result struct {
	RowsRead int
	Added    int
	Skipped  int
}

// Run reads a CSV file, resolves its columns, and merges the extracted rows
// into the named catalog. The caller's context must carry admin credentials.
func Run(ctx context.Context, svc mergeService, log *slog.Logger, path, catalogName string, dedupe bool) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	headers, rows, err := readCSV(f)
	if err != nil {
		return Result{}, fmt.Errorf("read csv %s: %w", path, err)
	}

	mapping := catalog.MapColumns(headers)
	if !mapping.Found() {
		return Result{}, fmt.Errorf("no recognizable columns in %s (headers: %v)", path, headers)
	}

	items := catalog.ExtractItems(mapping, rows)
	result := Result{RowsRead: len(rows)}
	if len(items) == 0 {
		log.InfoContext(ctx, "no usable rows", slog.String("path", path))
		return result, nil
	}

	merged, err := svc.MergeItems(ctx, catalog.MergeItemsInput{
		CatalogName: catalogName,
		Items:       items,
		Dedupe:      dedupe,
	})
	if err != nil {
		return result, fmt.Errorf("merge items: %w", err)
	}

	result.Added = merged.Added
	result.Skipped = merged.Skipped
	log.InfoContext(ctx, "import finished",
		slog.String("catalog", catalogName),
		slog.Int("rows", result.RowsRead),
		slog.Int("added", result.Added),
		slog.Int("skipped", result.Skipped),
	)
	return result, nil
}

// readCSV returns the header row and the remaining data rows. Records with
// uneven field counts are tolerated.
func readCSV(r io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, nil, err
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, record)
	}
	return headers, rows, nil
}
