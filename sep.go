package batchfmt

import (
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/csv"
)

// writeSeparated renders batches as delimiter-separated text, one data row
// per line. The header line carries the schema field names and is written
// first iff withHeader. Field quoting and escaping follow the Arrow CSV
// writer's rules for the delimiter in use. Output is partial on failure.
func writeSeparated(w io.Writer, schema *arrow.Schema, batches []arrow.RecordBatch, delimiter rune, withHeader bool) error {
	cw := csv.NewWriter(w, schema,
		csv.WithComma(delimiter),
		csv.WithHeader(withHeader),
	)
	for _, b := range batches {
		if err := cw.Write(b); err != nil {
			return err
		}
	}
	if err := cw.Flush(); err != nil {
		return err
	}
	return cw.Error()
}
