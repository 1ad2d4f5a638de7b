package testsupport

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"rowgroup/internal/table"
)

// WriteCSV writes headers and records to path using standard CSV quoting and
// returns path.
func WriteCSV(t testing.TB, path string, headers []string, records ...[]string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(headers); err != nil {
		t.Fatalf("write header %s: %v", path, err)
	}
	if err := w.WriteAll(records); err != nil {
		t.Fatalf("write records %s: %v", path, err)
	}
	return path
}

// NewTable builds an in-memory table with the given headers.
func NewTable(headers []string, records ...[]string) *table.Table {
	tbl := &table.Table{Headers: headers}
	for _, record := range records {
		tbl.Rows = append(tbl.Rows, table.NewRow(headers, record))
	}
	return tbl
}
