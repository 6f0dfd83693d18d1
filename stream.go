package batchfmt

import (
	"io"

	"github.com/apache/arrow-go/v18/arrow"
)

// Streamer renders table output incrementally without holding the whole
// result set. Batches are buffered until previewLimit rows have been seen,
// column widths are computed once over that preview, and everything after
// the commit is printed immediately with those widths. Widths are never
// recomputed: a later batch with wider cells prints misaligned but
// well-formed rows, the accepted cost of bounded-memory streaming.
//
// A Streamer is single-session and not safe for concurrent use. Call Close
// when input ends so a short result set (never reaching the preview limit)
// is still flushed and the bottom border printed.
type Streamer struct {
	// Cells overrides the cell formatter. Nil means ValueFormatter{}.
	Cells CellFormatter

	w            io.Writer
	schema       *arrow.Schema
	preview      []arrow.RecordBatch
	previewRows  int
	previewLimit int
	widths       []int
	headerOut    bool
	closed       bool
}

// NewStreamer returns a Streamer writing table output to w.
func NewStreamer(w io.Writer, schema *arrow.Schema, previewLimit int) *Streamer {
	return &Streamer{w: w, schema: schema, previewLimit: previewLimit}
}

// Write processes one batch. While collecting, the batch is retained in the
// preview buffer; the buffer is flushed in arrival order as soon as its row
// count reaches the preview limit.
func (s *Streamer) Write(b arrow.RecordBatch) error {
	if s.widths == nil {
		b.Retain()
		s.preview = append(s.preview, b)
		s.previewRows += int(b.NumRows())
		if s.previewRows >= s.previewLimit {
			return s.commit()
		}
		return nil
	}
	if !s.headerOut {
		if err := s.writeHeader(); err != nil {
			return err
		}
	}
	return s.writeBatch(b)
}

// Close flushes a preview buffer that never reached the limit, computing
// widths from exactly the buffered rows, then prints the bottom border.
func (s *Streamer) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	var err error
	if s.widths == nil && len(s.preview) > 0 {
		err = s.commit()
	}
	s.releasePreview()
	if err != nil {
		return err
	}
	if !s.headerOut {
		return nil
	}
	_, err = io.WriteString(s.w, borderLine(s.widths)+"\n")
	return err
}

// commit transitions from collecting to committed: measure the preview,
// print the header block, and drain the buffer through the committed
// widths.
func (s *Streamer) commit() error {
	widths, err := columnWidths(s.schema, s.preview, s.cells())
	if err != nil {
		return err
	}
	s.widths = widths
	if err := s.writeHeader(); err != nil {
		return err
	}
	for _, b := range s.preview {
		if err := s.writeBatch(b); err != nil {
			return err
		}
	}
	s.releasePreview()
	return nil
}

func (s *Streamer) writeHeader() error {
	header := make([]string, s.schema.NumFields())
	for i := range header {
		header[i] = s.schema.Field(i).Name
	}
	border := borderLine(s.widths)
	lines := []string{border, rowLine(header, s.widths), border}
	if err := writeLines(s.w, lines); err != nil {
		return err
	}
	s.headerOut = true
	return nil
}

func (s *Streamer) writeBatch(b arrow.RecordBatch) error {
	cells := s.cells()
	for row := 0; row < int(b.NumRows()); row++ {
		text := make([]string, s.schema.NumFields())
		for i := range text {
			v, err := cells.FormatCell(b.Column(i), row)
			if err != nil {
				return err
			}
			text[i] = v
		}
		if _, err := io.WriteString(s.w, rowLine(text, s.widths)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (s *Streamer) cells() CellFormatter {
	if s.Cells != nil {
		return s.Cells
	}
	return defaultCells
}

func (s *Streamer) releasePreview() {
	for _, b := range s.preview {
		b.Release()
	}
	s.preview = nil
	s.previewRows = 0
}
