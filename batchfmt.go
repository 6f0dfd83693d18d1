package batchfmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidMaxRows    = errors.New("invalid max rows")
	ErrCellFormat        = errors.New("cell format")
	ErrLayout            = errors.New("table layout invariant violated")
)

// Format represents an output format.
type Format string

const (
	CSV       Format = "csv"
	TSV       Format = "tsv"
	Table     Format = "table"
	JSON      Format = "json"
	NDJSON    Format = "ndjson"
	Automatic Format = "automatic"
)

var formats = []Format{CSV, TSV, Table, JSON, NDJSON, Automatic}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// MaxRows bounds the number of data rows a Table render may display before
// the output is truncated with ellipsis rows. Zero is meaningful: it
// suppresses all table output for non-empty input.
type MaxRows int

// Unlimited disables row truncation.
const Unlimited MaxRows = -1

// String returns "unlimited" or the decimal limit.
func (m MaxRows) String() string {
	if m < 0 {
		return "unlimited"
	}
	return strconv.Itoa(int(m))
}

// ParseMaxRows parses "unlimited" (case-insensitive) or a non-negative
// integer.
func ParseMaxRows(s string) (MaxRows, error) {
	if strings.EqualFold(s, "unlimited") {
		return Unlimited, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMaxRows, s)
	}
	return MaxRows(n), nil
}

// Write renders batches to w in the given format. Batches with no rows are
// dropped first; if nothing remains, Table with a non-empty schema renders
// an empty table (header block and bottom border) and every other format
// renders nothing. The header flag applies to CSV, TSV, and Automatic only.
// All batches must share schema.
func Write(w io.Writer, f Format, schema *arrow.Schema, batches []arrow.RecordBatch, maxRows MaxRows, withHeader bool) error {
	var nonEmpty []arrow.RecordBatch
	for _, b := range batches {
		if b.NumRows() > 0 {
			nonEmpty = append(nonEmpty, b)
		}
	}
	if len(nonEmpty) == 0 {
		return writeEmpty(w, f, schema)
	}

	switch f {
	case CSV, Automatic:
		return writeSeparated(w, schema, nonEmpty, ',', withHeader)
	case TSV:
		return writeSeparated(w, schema, nonEmpty, '\t', withHeader)
	case Table:
		if maxRows == 0 {
			return nil
		}
		return writeTable(w, schema, nonEmpty, maxRows)
	case JSON:
		return writeJSON(w, schema, nonEmpty, jsonArray)
	case NDJSON:
		return writeJSON(w, schema, nonEmpty, jsonLines)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// writeEmpty handles the no-rows case. Only Table has a visible empty
// representation, and only when the schema has fields to head the columns.
func writeEmpty(w io.Writer, f Format, schema *arrow.Schema) error {
	if f != Table || schema.NumFields() == 0 {
		return nil
	}
	lines, _, err := formatTable(schema, nil, defaultCells)
	if err != nil {
		return err
	}
	return writeLines(w, lines)
}

// Marshal renders batches and returns the bytes.
func Marshal(f Format, schema *arrow.Schema, batches []arrow.RecordBatch, maxRows MaxRows, withHeader bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, schema, batches, maxRows, withHeader); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
