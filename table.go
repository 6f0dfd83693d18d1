package batchfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/mattn/go-runewidth"
)

// ellipsisRows is the number of dotted rows appended to a truncated table.
const ellipsisRows = 3

func writeTable(w io.Writer, schema *arrow.Schema, batches []arrow.RecordBatch, maxRows MaxRows) error {
	if maxRows < 0 {
		lines, _, err := formatTable(schema, batches, defaultCells)
		if err != nil {
			return err
		}
		return writeLines(w, lines)
	}

	kept, truncated := truncateBatches(batches, int(maxRows))
	if truncated {
		defer kept[len(kept)-1].Release()
	}
	lines, widths, err := formatTable(schema, kept, defaultCells)
	if err != nil {
		return err
	}
	if truncated {
		lines, err = elideTail(lines, widths, int(maxRows))
		if err != nil {
			return err
		}
	}
	return writeLines(w, lines)
}

// truncateBatches walks batches in order and keeps at most limit rows. The
// batch that would overflow the limit is sliced to the remaining capacity
// and ends the walk. The second return reports whether anything was cut;
// when true, the last kept batch is a new slice the caller must Release.
func truncateBatches(batches []arrow.RecordBatch, limit int) ([]arrow.RecordBatch, bool) {
	var kept []arrow.RecordBatch
	rows := 0
	for _, b := range batches {
		if rows+int(b.NumRows()) > limit {
			kept = append(kept, b.NewSlice(0, int64(limit-rows)))
			return kept, true
		}
		kept = append(kept, b)
		rows += int(b.NumRows())
	}
	return kept, false
}

// elideTail rewrites the tail of a fully rendered table: the last data rows
// stay, followed by three ellipsis rows and the original bottom border. The
// rendered table must hold at least maxRows data lines plus the four border
// and header lines; anything less means the slicing step miscounted.
func elideTail(lines []string, widths []int, maxRows int) ([]string, error) {
	if len(lines) < maxRows+4 {
		return nil, fmt.Errorf("%w: %d lines rendered, need %d", ErrLayout, len(lines), maxRows+4)
	}
	bottom := lines[len(lines)-1]
	dots := make([]string, len(widths))
	for i := range dots {
		dots[i] = "."
	}
	out := make([]string, 0, maxRows+4+ellipsisRows)
	out = append(out, lines[:maxRows+3]...)
	for range ellipsisRows {
		out = append(out, rowLine(dots, widths))
	}
	return append(out, bottom), nil
}

// formatTable renders the complete table for a batch set: header block,
// every row of every batch in order, and one final border. It returns the
// lines together with the column widths used to lay them out.
func formatTable(schema *arrow.Schema, batches []arrow.RecordBatch, cells CellFormatter) ([]string, []int, error) {
	widths, err := columnWidths(schema, batches, cells)
	if err != nil {
		return nil, nil, err
	}

	header := make([]string, schema.NumFields())
	for i := range header {
		header[i] = schema.Field(i).Name
	}

	border := borderLine(widths)
	lines := []string{border, rowLine(header, widths), border}
	for _, b := range batches {
		for row := 0; row < int(b.NumRows()); row++ {
			text := make([]string, schema.NumFields())
			for i := range text {
				s, err := cells.FormatCell(b.Column(i), row)
				if err != nil {
					return nil, nil, err
				}
				text[i] = s
			}
			lines = append(lines, rowLine(text, widths))
		}
	}
	return append(lines, border), widths, nil
}

// columnWidths measures every column of the given batches. Width i is the
// display width of field i's name or of its widest cell, whichever is
// larger.
func columnWidths(schema *arrow.Schema, batches []arrow.RecordBatch, cells CellFormatter) ([]int, error) {
	widths := make([]int, schema.NumFields())
	for i := range widths {
		widths[i] = runewidth.StringWidth(schema.Field(i).Name)
	}
	for _, b := range batches {
		for row := 0; row < int(b.NumRows()); row++ {
			for i := range widths {
				s, err := cells.FormatCell(b.Column(i), row)
				if err != nil {
					return nil, err
				}
				if w := runewidth.StringWidth(s); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	return widths, nil
}

// borderLine draws a horizontal border: each column spans its width plus
// one space of padding on each side, and adjacent columns share one "+".
func borderLine(widths []int) string {
	var sb strings.Builder
	sb.WriteString("+")
	for _, w := range widths {
		sb.WriteString(strings.Repeat("-", w+2))
		sb.WriteString("+")
	}
	return sb.String()
}

// rowLine draws one header or data line with cells left-justified to their
// column widths.
func rowLine(cells []string, widths []int) string {
	padded := make([]string, len(widths))
	for i, w := range widths {
		padded[i] = padCell(cells[i], w)
	}
	return "| " + strings.Join(padded, " | ") + " |"
}

func padCell(s string, width int) string {
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
