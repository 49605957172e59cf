// Package capsheet turns scraped per-season salary cap tables into a
// flat numeric dataset: scrape -> clean -> export.
package capsheet

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("capscrape.services.capsheet")

// TeamCapRecord is one team's cap sheet for one season. The four cap
// figures are full dollars; CapSpace goes negative for teams over the
// cap. Unparseable cells surface as NaN.
type TeamCapRecord struct {
	Year     int
	Team     string
	TotalCap float64
	CapSpace float64
	Active   float64
	Reserves float64
	Dead     float64
}
