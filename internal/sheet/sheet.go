// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sheet reads product rows from a spreadsheet workbook.
// The first row of the sheet is the header; columns are located by their
// catalog names, so column order in the workbook does not matter.
package sheet

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/catalog-export/pkg/types"
)

// Catalog column names as they appear in the header row.
const (
	ColName        = "Полное наименование"
	ColType        = "Тип"
	ColAxis        = "Ось"
	ColBrand       = "Бренд"
	ColModel       = "Модель"
	ColWidth       = "Ширина профиля"
	ColHeight      = "Высота профиля"
	ColDiameter    = "Диаметр"
	ColLoadIndex   = "Индекс нагрузки / скорости"
	ColPrice       = "Цена"
	ColDescription = "Описание"
	ColSEO         = "SEO"
	ColImages      = "Изображения"
)

// ErrMissingColumns is returned when the header row lacks catalog columns.
var ErrMissingColumns = errors.New("missing catalog columns")

// column binds a header name to the RawRow field it fills.
type column struct {
	name string
	cell func(*types.RawRow) *types.Cell
}

var columns = []column{
	{ColName, func(r *types.RawRow) *types.Cell { return &r.Name }},
	{ColType, func(r *types.RawRow) *types.Cell { return &r.Type }},
	{ColAxis, func(r *types.RawRow) *types.Cell { return &r.Axis }},
	{ColBrand, func(r *types.RawRow) *types.Cell { return &r.Brand }},
	{ColModel, func(r *types.RawRow) *types.Cell { return &r.Model }},
	{ColWidth, func(r *types.RawRow) *types.Cell { return &r.Width }},
	{ColHeight, func(r *types.RawRow) *types.Cell { return &r.Height }},
	{ColDiameter, func(r *types.RawRow) *types.Cell { return &r.Diameter }},
	{ColLoadIndex, func(r *types.RawRow) *types.Cell { return &r.LoadIndex }},
	{ColPrice, func(r *types.RawRow) *types.Cell { return &r.Price }},
	{ColDescription, func(r *types.RawRow) *types.Cell { return &r.Description }},
	{ColSEO, func(r *types.RawRow) *types.Cell { return &r.SEO }},
	{ColImages, func(r *types.RawRow) *types.Cell { return &r.Images }},
}

// ColumnNames returns the catalog column names in record order.
func ColumnNames() []string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.name
	}
	return names
}

// Reader yields the product rows of one sheet.
type Reader interface {
	// ReadRows returns every data row of the named sheet in sheet order.
	ReadRows(ctx context.Context, path, sheet string) ([]types.RawRow, error)
}

// ExcelReader reads .xlsx workbooks.
type ExcelReader struct{}

// NewExcelReader returns a Reader backed by excelize.
func NewExcelReader() *ExcelReader {
	return &ExcelReader{}
}

// ReadRows opens the workbook at path and decodes the named sheet. Rows
// with no value in any column are skipped, so the returned rows are the
// data rows only.
func (e *ExcelReader) ReadRows(ctx context.Context, path, sheet string) ([]types.RawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet %q not found in %s (available: %s)",
			sheet, path, strings.Join(f.GetSheetList(), ", "))
	}

	grid, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(grid) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row: %w", sheet, ErrMissingColumns)
	}

	index, err := headerIndex(grid[0])
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}

	rows := make([]types.RawRow, 0, len(grid)-1)
	for r, values := range grid[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if isBlank(values) {
			continue
		}
		var row types.RawRow
		for ci, col := range columns {
			c := index[ci]
			if c >= len(values) || values[c] == "" {
				continue
			}
			// Header is sheet row 1, so data row r sits at sheet row r+2.
			cellName, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, fmt.Errorf("addressing row %d column %q: %w", r+2, col.name, err)
			}
			kind, err := f.GetCellType(sheet, cellName)
			if err != nil {
				return nil, fmt.Errorf("reading cell %s: %w", cellName, err)
			}
			*col.cell(&row) = classify(kind, values[c])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// isBlank reports whether every cell of a sheet row is empty.
func isBlank(values []string) bool {
	for _, v := range values {
		if v != "" {
			return false
		}
	}
	return true
}

// headerIndex maps each catalog column (by position in columns) to its
// index in the header row. Every missing column is reported at once.
func headerIndex(header []string) ([]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}

	index := make([]int, len(columns))
	var missing []string
	for i, col := range columns {
		p, ok := pos[col.name]
		if !ok {
			missing = append(missing, strconv.Quote(col.name))
			continue
		}
		index[i] = p
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return index, nil
}

// classify converts a raw cell value to a Cell. String-typed cells stay
// text; untyped and numeric cells become numbers when their raw value
// parses as one.
func classify(kind excelize.CellType, raw string) types.Cell {
	switch kind {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return types.TextCell(raw)
	case excelize.CellTypeBool:
		if raw == "1" {
			return types.TextCell("TRUE")
		}
		return types.TextCell("FALSE")
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
		return types.NumberCell(raw)
	}
	return types.TextCell(raw)
}
