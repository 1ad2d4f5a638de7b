package table

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Writer writes rows as CSV. The header line is taken from the first row and
// written just before it.
type Writer struct {
	csv           *csv.Writer
	headerWritten bool
	rows          int
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// Write emits row, preceded by its headers on the first call.
func (w *Writer) Write(row Row) error {
	if !w.headerWritten {
		if err := w.csv.Write(row.headers); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		w.headerWritten = true
	}
	if err := w.csv.Write(row.values); err != nil {
		return fmt.Errorf("write row %d: %w", w.rows+1, err)
	}
	w.rows++
	return nil
}

// Rows reports how many data rows have been written.
func (w *Writer) Rows() int {
	return w.rows
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
