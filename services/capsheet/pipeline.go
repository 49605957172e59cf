package capsheet

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"capscrape/lib/scrapers/espncap"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/time/rate"
)

type ScrapeOptions struct {
	// inclusive season range
	StartYear int
	EndYear   int
	// minimum time between successive page requests. the site must not
	// be hammered, so the limiter is waited on before every request
	// regardless of how the previous year turned out.
	Interval time.Duration
}

// Scrape walks the season range in order, one request at a time, and
// returns the raw table of every year that fetched and parsed. A failed
// year is logged and skipped; it never aborts the batch. The only error
// returned is context cancellation.
func Scrape(ctx context.Context, client *espncap.Client, opts ScrapeOptions) ([]espncap.YearTable, error) {
	ctx, span := tracer.Start(ctx, "Scrape")
	defer span.End()
	span.SetAttributes(
		attribute.Int("start_year", opts.StartYear),
		attribute.Int("end_year", opts.EndYear),
	)

	limiter := rate.NewLimiter(rate.Every(opts.Interval), 1)

	var tables []espncap.YearTable
	for year := opts.StartYear; year <= opts.EndYear; year++ {
		err := limiter.Wait(ctx)
		if err != nil {
			return tables, err
		}

		table, err := client.ScrapeYear(ctx, year)
		if err != nil {
			slog.WarnContext(ctx, fmt.Sprintf("Scraping %d ... Failed", year), "err", err)
			continue
		}

		slog.InfoContext(ctx, fmt.Sprintf("Scraping %d ... Success!", year), "rows", len(table.Table.Rows))
		tables = append(tables, table)
	}

	return tables, nil
}
