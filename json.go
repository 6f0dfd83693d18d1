package batchfmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/apache/arrow-go/v18/arrow"
)

// jsonFraming selects how row objects are framed: wrapped in one array with
// a trailing newline, or one object per line with no enclosing brackets.
type jsonFraming int

const (
	jsonArray jsonFraming = iota
	jsonLines
)

func writeJSON(w io.Writer, schema *arrow.Schema, batches []arrow.RecordBatch, framing jsonFraming) error {
	if framing == jsonArray {
		if _, err := io.WriteString(w, "["); err != nil {
			return err
		}
	}
	first := true
	for _, b := range batches {
		for row := 0; row < int(b.NumRows()); row++ {
			obj, err := rowObject(schema, b, row)
			if err != nil {
				return err
			}
			if framing == jsonArray && !first {
				if _, err := io.WriteString(w, ","); err != nil {
					return err
				}
			}
			first = false
			if _, err := w.Write(obj); err != nil {
				return err
			}
			if framing == jsonLines {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
		}
	}
	if framing == jsonArray {
		if _, err := io.WriteString(w, "]\n"); err != nil {
			return err
		}
	}
	return nil
}

// rowObject encodes one row as a JSON object. Keys are emitted manually so
// object key order always matches schema field order.
func rowObject(schema *arrow.Schema, b arrow.RecordBatch, row int) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i := 0; i < schema.NumFields(); i++ {
		if i > 0 {
			buf.WriteString(",")
		}
		key, err := json.Marshal(schema.Field(i).Name)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrCellFormat, schema.Field(i).Name, err)
		}
		val, err := json.Marshal(jsonCellValue(b.Column(i), row))
		if err != nil {
			return nil, fmt.Errorf("%w: field %q row %d: %v", ErrCellFormat, schema.Field(i).Name, row, err)
		}
		buf.Write(key)
		buf.WriteString(":")
		buf.Write(val)
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}
