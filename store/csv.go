package store

import (
	"os"

	"github.com/jszwec/csvutil"
)

// writeCSV marshals a slice of csv-tagged records to a file. Header names
// come from the struct tags; no index column is emitted. An empty slice
// still produces a file with the header row.
func writeCSV[T any](path string, rows []T) error {
	if rows == nil {
		rows = []T{}
	}
	data, err := csvutil.Marshal(rows)
	if err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	return nil
}
