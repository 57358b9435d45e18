// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

// DetectFormat maps a file extension to an input format. "-" and unknown
// extensions fall back to csv.
func DetectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	default:
		return FormatCSV
	}
}

// ReadPoints parses numeric rows from r. Row length is not checked here;
// the traversal reports ragged input.
func ReadPoints(r io.Reader, format string, header bool) ([][]float64, error) {
	switch format {
	case FormatCSV:
		return readCSV(r, header)
	case FormatJSON:
		return readJSON(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func readCSV(r io.Reader, header bool) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1

	var (
		rows [][]float64
		line int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadInput, err)
		}
		line++
		if header && line == 1 {
			continue
		}

		row := make([]float64, len(rec))
		for j, field := range rec {
			if row[j], err = strconv.ParseFloat(strings.TrimSpace(field), 64); err != nil {
				return nil, fmt.Errorf("%w: record %d, field %d: %w", ErrBadInput, line, j+1, err)
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func readJSON(r io.Reader) ([][]float64, error) {
	var rows [][]float64
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadInput, err)
	}

	return rows, nil
}
