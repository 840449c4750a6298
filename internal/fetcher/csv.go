package fetcher

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// ReadCSV reads a CSV file and returns all rows as string slices. Ragged
// rows are allowed; every value stays a string so ZIP leading zeros survive.
func ReadCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "csv: open file")
	}
	defer f.Close() //nolint:errcheck

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "csv: read file")
	}
	return rows, nil
}

// ReadRows reads a spreadsheet, dispatching on the file extension
// (.csv or .xlsx).
func ReadRows(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(path)
	case ".xlsx":
		return ReadXLSX(path, XLSXOptions{})
	default:
		return nil, eris.Errorf("fetcher: unsupported file extension %q", filepath.Ext(path))
	}
}

// FirstColumn returns the trimmed, non-empty values of the first column,
// skipping the given number of leading rows.
func FirstColumn(rows [][]string, skip int) []string {
	var out []string
	for i, row := range rows {
		if i < skip || len(row) == 0 {
			continue
		}
		v := strings.TrimSpace(row[0])
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
