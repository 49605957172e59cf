package capsheet

import (
	"fmt"
	"strings"

	"capscrape/lib/htmltable"
	"capscrape/lib/scrapers/espncap"
)

// the 32 franchise codes the cap site uses
var fixtureTeams = []string{
	"ARI", "ATL", "BAL", "BUF", "CAR", "CHI", "CIN", "CLE",
	"DAL", "DEN", "DET", "GB", "HOU", "IND", "JAX", "KC",
	"LAC", "LAR", "LV", "MIA", "MIN", "NE", "NO", "NYG",
	"NYJ", "PHI", "PIT", "SEA", "SF", "TB", "TEN", "WSH",
}

var fixtureHeaders = []string{
	"RK",
	"Team",
	"Total Cap\nAllocations",
	"Cap Space\nAll",
	"Active\n53-Man",
	"Reserves\nIR/PUP/NFI/SUSP",
	"Dead\nCap",
}

func fixtureRow(rank int, team string) []string {
	return []string{
		fmt.Sprintf("%d", rank),
		team + " Football Club",
		fmt.Sprintf("$%d,%03d,000", 220+rank, rank),
		fmt.Sprintf("$%d,000,000", 30-rank%20),
		"$180,500,000",
		"$12,000,000",
		fmt.Sprintf("$%d,250,500", rank),
	}
}

// fixtureYearTable builds a raw scraped table with all 32 teams plus the
// "Totals" and "Averages" footer rows the site appends.
func fixtureYearTable(year int) espncap.YearTable {
	var rows [][]string
	for i, code := range fixtureTeams {
		rows = append(rows, fixtureRow(i+1, code))
	}
	rows = append(rows, []string{"", "Totals", "$7,250,000,000", "$500,000,000", "$5,776,000,000", "$384,000,000", "$528,000,000"})
	rows = append(rows, []string{"", "Averages", "$226,562,500", "$15,625,000", "$180,500,000", "$12,000,000", "$16,500,000"})

	return espncap.YearTable{
		Year: year,
		Table: htmltable.Table{
			Headers: append([]string(nil), fixtureHeaders...),
			Rows:    rows,
		},
	}
}

// fixtureCapPage renders the same table as an HTML page for the scrape
// scenarios.
func fixtureCapPage(year int) string {
	yt := fixtureYearTable(year)

	var b strings.Builder
	b.WriteString("<html><body><table>\n<thead><tr>")
	for _, h := range yt.Table.Headers {
		fmt.Fprintf(&b, "<th>%s</th>", h)
	}
	b.WriteString("</tr></thead>\n<tbody>\n")
	for _, row := range yt.Table.Rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			fmt.Fprintf(&b, "<td>%s</td>", cell)
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody></table></body></html>")
	return b.String()
}
