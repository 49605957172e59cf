package capsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
)

var csvHeader = []string{"Year", "Team", "Total_Cap", "Cap_Space", "Active", "Reserves", "Dead"}

// Export writes the cleaned records as a CSV at `path`, creating the
// destination directory if needed. Output is deterministic: identical
// input produces byte-identical files, and re-running overwrites.
func Export(records []TeamCapRecord, path string) error {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err = w.Write(csvHeader)
	if err != nil {
		return err
	}
	for _, r := range records {
		err = w.Write([]string{
			strconv.Itoa(r.Year),
			r.Team,
			formatAmount(r.TotalCap),
			formatAmount(r.CapSpace),
			formatAmount(r.Active),
			formatAmount(r.Reserves),
			formatAmount(r.Dead),
		})
		if err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0644)
}

// NaN (an unparseable source cell) serializes as an empty cell.
func formatAmount(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
