package capsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Summary describes an exported dataset at a glance; the per-year counts
// flag seasons with missing or incomplete data.
type Summary struct {
	Rows    int
	MinYear int
	MaxYear int
	PerYear map[int]int
}

func Summarize(records []TeamCapRecord) Summary {
	s := Summary{PerYear: map[int]int{}}
	for _, r := range records {
		if s.Rows == 0 || r.Year < s.MinYear {
			s.MinYear = r.Year
		}
		if s.Rows == 0 || r.Year > s.MaxYear {
			s.MaxYear = r.Year
		}
		s.Rows++
		s.PerYear[r.Year]++
	}
	return s
}

// Render prints the summary as a table and logs the headline counts.
func (s Summary) Render(out io.Writer) {
	slog.Info(
		"dataset summary",
		"rows", s.Rows,
		"min_year", s.MinYear,
		"max_year", s.MaxYear,
	)

	years := make([]int, 0, len(s.PerYear))
	for year := range s.PerYear {
		years = append(years, year)
	}
	sort.Ints(years)

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Year", "Teams"})
	for _, year := range years {
		t.AppendRow(table.Row{year, s.PerYear[year]})
	}
	t.AppendFooter(table.Row{"Total", s.Rows})
	t.Render()
}

// ReadDataset reads back a CSV written by Export. Empty numeric cells
// come back as NaN.
func ReadDataset(path string) ([]TeamCapRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty dataset", path)
	}

	var records []TeamCapRecord
	for _, row := range rows[1:] {
		if len(row) != len(csvHeader) {
			return nil, fmt.Errorf("%s: expected %d columns, got %d", path, len(csvHeader), len(row))
		}
		year, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("%s: bad year %q: %w", path, row[0], err)
		}
		records = append(records, TeamCapRecord{
			Year:     year,
			Team:     row[1],
			TotalCap: readAmount(row[2]),
			CapSpace: readAmount(row[3]),
			Active:   readAmount(row[4]),
			Reserves: readAmount(row[5]),
			Dead:     readAmount(row[6]),
		})
	}
	return records, nil
}

func readAmount(cell string) float64 {
	if cell == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
