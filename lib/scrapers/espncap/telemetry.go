package espncap

import (
	"capscrape/lib/restyutil"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("capscrape.lib.scrapers.espncap")

func (c *Client) SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyutil.InstrumentClient(c.Http, out)
}
