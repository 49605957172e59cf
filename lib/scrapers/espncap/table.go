package espncap

import (
	"context"
	"fmt"

	"capscrape/lib/htmltable"

	"go.opentelemetry.io/otel/codes"
)

// YearTable is the unmodified cap table scraped for one season. Cell
// values are raw strings straight out of the page; headers may still
// contain embedded line breaks.
type YearTable struct {
	Year  int
	Table htmltable.Table
}

// ScrapeYear fetches one season's page and materializes its primary
// table. A page without a table element reports htmltable.ErrNoTable
// through the same channel as a fetch failure.
func (c *Client) ScrapeYear(ctx context.Context, year int) (YearTable, error) {
	ctx, span := tracer.Start(ctx, "ScrapeYear")
	defer span.End()

	doc, err := c.FetchYear(ctx, year)
	if err != nil {
		span.SetStatus(codes.Error, "fetch failed")
		return YearTable{}, err
	}

	table, err := htmltable.First(doc)
	if err != nil {
		span.SetStatus(codes.Error, "no table on page")
		return YearTable{}, fmt.Errorf("cap page for %d: %w", year, err)
	}

	return YearTable{Year: year, Table: table}, nil
}
