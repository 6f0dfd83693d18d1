// Package batchfmt renders Apache Arrow record batches in multiple output
// formats.
//
// Supported formats are CSV, TSV, Table, JSON, NDJSON, and Automatic
// (which renders as CSV). The central entry points are [Write] and
// [Marshal], which accept a [Format], a schema, and a slice of record
// batches sharing that schema. Batches are rendered in arrival order and
// never mutated.
//
// # Format Selection
//
// Use [ParseFormat] to convert a CLI flag string into a [Format]; matching
// is case-insensitive:
//
//	f, err := batchfmt.ParseFormat(flagValue)
//	batchfmt.Write(os.Stdout, f, schema, batches, batchfmt.Unlimited, true)
//
// # Tables
//
// Table output is plain ASCII with one space of padding around each
// left-justified cell:
//
//	+---+---+
//	| a | b |
//	+---+---+
//	| 1 | 2 |
//	+---+---+
//
// A finite [MaxRows] bounds the data rows displayed. When rows are cut,
// the table ends with three ellipsis rows of single-dot cells before the
// bottom border, so the border stays balanced. A limit of zero suppresses
// all table output for non-empty input.
//
// # Streaming
//
// [Streamer] prints table output incrementally. It buffers batches until a
// preview row limit is reached, commits column widths computed over that
// preview, and prints every later batch immediately with the committed
// widths. Widths are never recomputed after commitment; later batches with
// wider cells print misaligned but structurally valid rows. Call
// [Streamer.Close] when input ends so short result sets are flushed and
// the bottom border is printed.
//
// # Cell Display
//
// Table rendering converts cells to strings through the [CellFormatter]
// seam; [ValueFormatter] is the default. CSV and TSV encoding (including
// quoting and escaping) is handled by the Arrow CSV writer. JSON object
// keys always follow schema field order.
//
// # Empty Input
//
// Batches with zero rows are dropped before rendering. If nothing remains,
// Table with a non-empty schema renders the header block and bottom
// border; every other format, and Table with a field-less schema, renders
// nothing.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrInvalidMaxRows] — malformed row limit string
//   - [ErrCellFormat] — a cell value could not be converted for display
//   - [ErrLayout] — internal table layout invariant breached
//
// Every failure is terminal for the current render; output may be
// partially written and there is no retry or rollback.
package batchfmt
