// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one export: read the sheet, transform every row,
// write the catalog. The first error aborts the run; nothing is written
// when reading fails.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/catalog-export/internal/export"
	"github.com/pdiddy/catalog-export/internal/sheet"
	"github.com/pdiddy/catalog-export/internal/transform"
	"github.com/pdiddy/catalog-export/pkg/types"
)

// Result summarizes an export run.
type Result struct {
	// Products is the number of records written.
	Products int
	// WidthAsText counts records whose width could not be read as a number.
	WidthAsText int
	// Unnamed counts records with no product name (and so an empty slug).
	Unnamed int
}

// HasWarnings reports whether any record needs the operator's attention.
func (r Result) HasWarnings() bool {
	return r.WidthAsText > 0 || r.Unnamed > 0
}

// Run exports the sheet described by cfg. Warnings and the final summary
// are printed to w.
func Run(ctx context.Context, reader sheet.Reader, cfg types.ExportConfig, w io.Writer) (Result, error) {
	cfg = cfg.WithDefaults()

	format, err := export.ParseFormat(string(cfg.Format))
	if err != nil {
		return Result{}, err
	}

	rows, err := reader.ReadRows(ctx, cfg.Input, cfg.Sheet)
	if err != nil {
		return Result{}, err
	}

	records := transform.TransformAll(rows)
	result := inspect(records, w)

	if err := export.WriteFile(ctx, cfg.Output, format, records); err != nil {
		return result, err
	}
	result.Products = len(records)

	fmt.Fprintf(w, "exported %d products to %s\n", result.Products, cfg.Output)
	if format == types.FormatSQLite {
		if err := verifyStored(ctx, cfg.Output, result.Products, w); err != nil {
			return result, err
		}
	}
	if result.HasWarnings() {
		fmt.Fprintf(w, "warnings: %d width(s) kept as text, %d product(s) without a name\n",
			result.WidthAsText, result.Unnamed)
	}
	return result, nil
}

// inspect counts records the operator may want to fix in the sheet and
// prints one line per occurrence.
func inspect(records []types.ProductRecord, w io.Writer) Result {
	var result Result
	for _, r := range records {
		if r.Name.IsNull() {
			result.Unnamed++
			fmt.Fprintf(w, "warning: product %d has no name\n", r.ID)
		}
		if s, ok := r.Width.AsText(); ok {
			result.WidthAsText++
			fmt.Fprintf(w, "warning: product %d width %q is not numeric\n", r.ID, s)
		}
	}
	return result
}

// verifyStored reopens the database at path and checks that it holds want
// products.
func verifyStored(ctx context.Context, path string, want int, w io.Writer) error {
	store, err := export.OpenStore(path)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Count(ctx)
	if err != nil {
		return err
	}
	if n != want {
		return fmt.Errorf("database %s holds %d products, expected %d", path, n, want)
	}
	fmt.Fprintf(w, "stored %d products in %s\n", n, path)
	return nil
}
