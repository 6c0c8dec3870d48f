// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transform maps raw sheet rows to catalog product records.
// Every function here is pure: the same row and position always produce
// the same record.
package transform

import (
	"github.com/pdiddy/catalog-export/pkg/types"
)

// Transform builds the product record for row at the given 1-based position.
// It never fails: malformed cells degrade to text or null.
func Transform(row types.RawRow, position int) types.ProductRecord {
	width := NormalizeWidth(row.Width)
	height := NormalizeNull(row.Height)
	diameter := NormalizeNull(row.Diameter)
	loadIndex := NormalizeNull(row.LoadIndex)
	category := NormalizeNull(row.Type)
	subcategory := NormalizeNull(row.Axis)

	return types.ProductRecord{
		ID:          position,
		Name:        NormalizeNull(row.Name),
		Slug:        GenerateSlug(row.Name.String()),
		Category:    category,
		Subcategory: subcategory,
		Brand:       NormalizeNull(row.Brand),
		Model:       NormalizeNull(row.Model),
		Width:       width,
		Height:      height,
		Diameter:    diameter,
		LoadIndex:   loadIndex,
		Price:       NormalizeNull(row.Price),
		Description: NormalizeNull(row.Description),
		SEOKeywords: NormalizeNull(row.SEO),
		Images:      ExtractImageURLs(row.Images),
		Specs: types.Specs{
			Width:     width,
			Height:    height,
			Diameter:  diameter,
			LoadIndex: loadIndex,
			Type:      category,
			Axis:      subcategory,
		},
	}
}

// TransformAll transforms rows in order, numbering them from 1.
func TransformAll(rows []types.RawRow) []types.ProductRecord {
	records := make([]types.ProductRecord, len(rows))
	for i, row := range rows {
		records[i] = Transform(row, i+1)
	}
	return records
}

// NormalizeNull converts the sheet's empty-cell marker to Null and passes
// every other cell through unchanged.
func NormalizeNull(c types.Cell) types.Value {
	return c.Value()
}
