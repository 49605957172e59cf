package capsheet

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"capscrape/lib/currency"
	"capscrape/lib/htmltable"
	"capscrape/lib/scrapers/espncap"
	"capscrape/lib/textutil"
)

const teamHeader = "Team"

// source header (after whitespace normalization) for each numeric field
const (
	totalCapHeader = "Total Cap Allocations"
	capSpaceHeader = "Cap Space All"
	activeHeader   = "Active 53-Man"
	reservesHeader = "Reserves IR/PUP/NFI/SUSP"
	deadHeader     = "Dead Cap"
)

var requiredHeaders = []string{
	teamHeader,
	totalCapHeader,
	capSpaceHeader,
	activeHeader,
	reservesHeader,
	deadHeader,
}

// SchemaError means the site's table layout no longer carries the
// expected columns. It is fatal: proceeding would silently corrupt
// every year's data.
type SchemaError struct {
	Year    int
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf(
		"cap table for %d is missing expected columns: %s",
		e.Year, strings.Join(e.Missing, ", "),
	)
}

// footer rows the site appends to every season's table
var aggregateLabels = map[string]bool{
	"Totals":   true,
	"Averages": true,
}

var teamCodeRegex = regexp.MustCompile(`^[A-Z]{2,3}`)

// Clean concatenates the scraped year tables in ascending year order and
// normalizes them into TeamCapRecords: headers are flattened and mapped
// against the expected schema, aggregate footer rows are dropped, the
// five dollar columns are parsed ("$" and "," stripped, sign kept), and
// the short team code is pulled off the front of the team name.
func Clean(tables []espncap.YearTable) ([]TeamCapRecord, error) {
	ordered := make([]espncap.YearTable, len(tables))
	copy(ordered, tables)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Year < ordered[j].Year
	})

	var records []TeamCapRecord
	for _, yt := range ordered {
		cols, err := columnIndex(yt)
		if err != nil {
			return nil, err
		}

		for _, row := range yt.Table.Rows {
			team := strings.TrimSpace(row[cols[teamHeader]])
			if aggregateLabels[team] {
				continue
			}

			code := teamCodeRegex.FindString(team)
			if code == "" {
				slog.Debug("dropping row without a team code", "year", yt.Year, "team", team)
				continue
			}

			record := TeamCapRecord{Year: yt.Year, Team: code}
			record.TotalCap = parseCell(yt.Year, team, totalCapHeader, row[cols[totalCapHeader]])
			record.CapSpace = parseCell(yt.Year, team, capSpaceHeader, row[cols[capSpaceHeader]])
			record.Active = parseCell(yt.Year, team, activeHeader, row[cols[activeHeader]])
			record.Reserves = parseCell(yt.Year, team, reservesHeader, row[cols[reservesHeader]])
			record.Dead = parseCell(yt.Year, team, deadHeader, row[cols[deadHeader]])
			records = append(records, record)
		}
	}

	return records, nil
}

// columnIndex maps every required header to its position in the scraped
// table, checking the schema contract per year.
func columnIndex(yt espncap.YearTable) (map[string]int, error) {
	normalized := htmltable.Table{
		Headers: make([]string, len(yt.Table.Headers)),
	}
	for i, h := range yt.Table.Headers {
		normalized.Headers[i] = textutil.NormalizeHeader(h)
	}

	cols := make(map[string]int, len(requiredHeaders))
	var missing []string
	for _, want := range requiredHeaders {
		idx := normalized.Column(want)
		if idx < 0 {
			missing = append(missing, want)
			continue
		}
		cols[want] = idx
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Year: yt.Year, Missing: missing}
	}
	return cols, nil
}

// a cell that fails to parse becomes NaN and the row is kept
func parseCell(year int, team, column, value string) float64 {
	parsed, ok := currency.ParseAmount(value)
	if !ok {
		slog.Debug(
			"unparseable dollar cell",
			"year", year, "team", team, "column", column, "value", value,
		)
	}
	return parsed
}
