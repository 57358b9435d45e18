// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/farthest/traversal"
)

// selection is the JSON shape of an index result.
type selection struct {
	Indices  []int  `json:"indices"`
	Start    int    `json:"start"`
	Mode     string `json:"mode"`
	Strategy string `json:"strategy"`
}

// WriteIndices writes the selected indices in acceptance order: one per line
// for csv, a single object for json.
func WriteIndices(w io.Writer, res traversal.Result, format string) error {
	switch format {
	case FormatCSV:
		for _, i := range res.Indices {
			if _, err := fmt.Fprintln(w, i); err != nil {
				return err
			}
		}

		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		return enc.Encode(selection{
			Indices:  res.Indices,
			Start:    res.Start,
			Mode:     res.Mode.String(),
			Strategy: res.Strategy.String(),
		})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteRows writes the selected input rows in their original order.
func WriteRows(w io.Writer, rows [][]float64, res traversal.Result, format string) error {
	picked := make([][]float64, 0, res.Len())
	it := res.Bitmap().Iterator()
	for it.HasNext() {
		picked = append(picked, rows[it.Next()])
	}

	switch format {
	case FormatCSV:
		cw := csv.NewWriter(w)
		for _, row := range picked {
			rec := make([]string, len(row))
			for j, v := range row {
				rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		cw.Flush()

		return cw.Error()
	case FormatJSON:
		return json.NewEncoder(w).Encode(picked)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
