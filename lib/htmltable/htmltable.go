package htmltable

import (
	"errors"

	"github.com/PuerkitoBio/goquery"
)

var ErrNoTable = errors.New("no table element in document")

// Table is a rectangular record set scraped from an HTML <table>: every
// row has exactly len(Headers) cells. Cell text is kept raw, whitespace
// included, so callers decide how to normalize it.
type Table struct {
	Headers []string
	Rows    [][]string
}

// First extracts the first <table> element in the document. Headers come
// from the first <thead> row, or from the table's first row when there
// is no <thead>. Ragged body rows are padded with empty strings or
// truncated to the header width.
func First(doc *goquery.Document) (Table, error) {
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return Table{}, ErrNoTable
	}

	headerRow := table.Find("thead tr").First()
	bodyRows := table.Find("tbody tr")
	if headerRow.Length() == 0 {
		all := table.Find("tr")
		if all.Length() == 0 {
			return Table{}, nil
		}
		headerRow = all.First()
		bodyRows = all.Slice(1, goquery.ToEnd)
	}

	var headers []string
	headerRow.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		headers = append(headers, cell.Text())
	})

	var rows [][]string
	bodyRows.Each(func(_ int, tr *goquery.Selection) {
		row := make([]string, 0, len(headers))
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			row = append(row, cell.Text())
		})
		for len(row) < len(headers) {
			row = append(row, "")
		}
		rows = append(rows, row[:len(headers)])
	})

	return Table{Headers: headers, Rows: rows}, nil
}

// Column returns the index of the given header, or -1.
func (t Table) Column(header string) int {
	for i, h := range t.Headers {
		if h == header {
			return i
		}
	}
	return -1
}
