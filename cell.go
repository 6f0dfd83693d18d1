package batchfmt

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// CellFormatter converts one column value into its display string. Table
// rendering (width measurement and row emission) goes through this seam, so
// callers can swap in their own value display rules.
type CellFormatter interface {
	FormatCell(col arrow.Array, row int) (string, error)
}

// ValueFormatter is the default CellFormatter. It renders nulls as Null and
// everything else with the array's own string representation.
type ValueFormatter struct {
	// Null is the display text for null cells.
	Null string
}

var defaultCells CellFormatter = ValueFormatter{}

// FormatCell implements CellFormatter.
func (v ValueFormatter) FormatCell(col arrow.Array, row int) (string, error) {
	if col.IsNull(row) {
		return v.Null, nil
	}
	return col.ValueStr(row), nil
}

// jsonCellValue extracts a JSON-encodable Go value for one cell. Common
// scalar arrays map to native Go types; anything else falls back to the
// array's string representation.
func jsonCellValue(col arrow.Array, row int) any {
	if col.IsNull(row) {
		return nil
	}
	switch c := col.(type) {
	case *array.Boolean:
		return c.Value(row)
	case *array.Int8:
		return c.Value(row)
	case *array.Int16:
		return c.Value(row)
	case *array.Int32:
		return c.Value(row)
	case *array.Int64:
		return c.Value(row)
	case *array.Uint8:
		return c.Value(row)
	case *array.Uint16:
		return c.Value(row)
	case *array.Uint32:
		return c.Value(row)
	case *array.Uint64:
		return c.Value(row)
	case *array.Float32:
		return c.Value(row)
	case *array.Float64:
		return c.Value(row)
	case *array.String:
		return c.Value(row)
	case *array.LargeString:
		return c.Value(row)
	default:
		return col.ValueStr(row)
	}
}
