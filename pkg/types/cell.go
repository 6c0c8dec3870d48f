// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"math"
	"strconv"
	"strings"
)

// CellKind identifies what a spreadsheet cell holds.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// Cell is one value at a row/column intersection of the source sheet.
// Number cells keep their source text so integer and float values stay
// distinguishable.
type Cell struct {
	Kind CellKind
	Raw  string
}

// EmptyCell returns a cell holding no data.
func EmptyCell() Cell { return Cell{Kind: CellEmpty} }

// TextCell returns a text cell.
func TextCell(s string) Cell { return Cell{Kind: CellText, Raw: s} }

// NumberCell returns a numeric cell from its source text.
func NumberCell(raw string) Cell { return Cell{Kind: CellNumber, Raw: raw} }

// IsEmpty reports whether the cell holds no data.
func (c Cell) IsEmpty() bool { return c.Kind == CellEmpty }

// String returns the cell's text representation, or "" for an empty cell.
func (c Cell) String() string {
	if c.Kind == CellEmpty {
		return ""
	}
	return c.Raw
}

// Value converts the cell to an output value. Empty cells become Null,
// text is kept as is, numbers become Int when they parse as an integer
// and Float otherwise.
func (c Cell) Value() Value {
	switch c.Kind {
	case CellText:
		return Text(c.Raw)
	case CellNumber:
		raw := strings.TrimSpace(c.Raw)
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return Int(n)
		}
		if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return Float(f)
		}
		return Text(c.Raw)
	default:
		return Null()
	}
}
