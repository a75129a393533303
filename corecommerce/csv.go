package corecommerce

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"cctools/internal/types"
)

// ReadCSVFile reads an export file into rows keyed by column name, the
// equivalent of csv.DictReader. Export rows are sometimes ragged; short rows
// are padded with empty strings and extra cells are dropped.
func ReadCSVFile(path string) ([]types.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV reads export CSV data from a reader. The result is never nil, even
// for an empty export, so callers can tell loaded-but-empty from not loaded.
func ReadCSV(r io.Reader) ([]types.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // exports are ragged

	rows := []types.Row{}

	header, err := reader.Read()
	if err == io.EOF {
		return rows, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	header = DedupeHeader(header)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		row := make(types.Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// DedupeHeader repairs the duplicated column names in the product option
// export. The second occurrence of a name gets a " [2]" suffix, the third
// " [3]" and so on, assigned left to right. Generated names count as seen,
// so a header that already carries suffixes next to a fresh duplicate never
// collides, and already-repaired headers pass through unchanged.
func DedupeHeader(header []string) []string {
	seen := make(map[string]int, len(header))
	result := make([]string, len(header))
	for i, name := range header {
		seen[name]++
		if seen[name] == 1 {
			result[i] = name
			continue
		}
		candidate := fmt.Sprintf("%s [%d]", name, seen[name])
		for seen[candidate] > 0 {
			seen[name]++
			candidate = fmt.Sprintf("%s [%d]", name, seen[name])
		}
		seen[candidate]++
		result[i] = candidate
	}
	return result
}
