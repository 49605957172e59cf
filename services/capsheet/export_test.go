package capsheet

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"capscrape/lib/scrapers/espncap"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestExportRoundtrip(t *testing.T) {
	records := []TeamCapRecord{
		{Year: 2023, Team: "SF", TotalCap: 227893333, CapSpace: -5000000, Active: 180500000, Reserves: 12000000, Dead: 20651904},
		{Year: 2023, Team: "KC", TotalCap: 225151885, CapSpace: math.NaN(), Active: 179000000.5, Reserves: 0, Dead: 12081186},
	}

	path := filepath.Join(t.TempDir(), "data", "team_cap.csv")
	require.NoError(t, Export(records, path))

	readBack, err := ReadDataset(path)
	require.NoError(t, err)

	diff := cmp.Diff(records, readBack, cmpopts.EquateNaNs())
	require.Empty(t, diff)
}

func TestExportHeaderAndCells(t *testing.T) {
	records := []TeamCapRecord{
		{Year: 2016, Team: "NO", TotalCap: 155000000, CapSpace: math.NaN(), Active: 140000000, Reserves: 5000000, Dead: 30500000.25},
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, Export(records, path))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(contents)), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "Year,Team,Total_Cap,Cap_Space,Active,Reserves,Dead", lines[0])
	// NaN serializes as an empty cell, fractions survive
	require.Equal(t, "2016,NO,155000000,,140000000,5000000,30500000.25", lines[1])
}

func TestExportIdempotent(t *testing.T) {
	records, err := Clean([]espncap.YearTable{fixtureYearTable(2023)})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "idempotent.csv")
	require.NoError(t, Export(records, path))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, Export(records, path))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestExportExistingDirectory(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Export(nil, filepath.Join(dir, "a.csv")))
	require.NoError(t, Export(nil, filepath.Join(dir, "b.csv")))
}

func TestSummarize(t *testing.T) {
	records := []TeamCapRecord{
		{Year: 2016, Team: "NO"},
		{Year: 2016, Team: "SF"},
		{Year: 2018, Team: "KC"},
	}

	s := Summarize(records)
	require.Equal(t, 3, s.Rows)
	require.Equal(t, 2016, s.MinYear)
	require.Equal(t, 2018, s.MaxYear)
	require.Equal(t, map[int]int{2016: 2, 2018: 1}, s.PerYear)

	var out strings.Builder
	s.Render(&out)
	require.Contains(t, out.String(), "2016")
	require.Contains(t, out.String(), "2018")
}
