package espncap

import (
	"bytes"
	"context"
	"fmt"
	"net/http/cookiejar"
	"time"

	"capscrape/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const DefaultBaseUrl = "https://www.espn.com"

// Client scrapes the public per-season NFL salary cap tables.
type Client struct {
	Http *resty.Client
}

type ClientOptions struct {
	// defaults to DefaultBaseUrl
	BaseUrl string
}

func NewClient(opts ClientOptions) (*Client, error) {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}

	client := resty.New()
	client.SetBaseURL(baseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	// the site serves automated clients an empty shell page, so present
	// a plain browser identity
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/espncap/http")

	return &Client{Http: client}, nil
}

// FetchYear issues a single GET for one season's cap page. It does not
// retry and does not cache; a transport error or non-2xx status is
// returned to the caller, which decides whether the year is skipped.
func (c *Client) FetchYear(ctx context.Context, year int) (*goquery.Document, error) {
	ctx, span := tracer.Start(ctx, "FetchYear")
	defer span.End()
	span.SetAttributes(attribute.Int("year", year))

	res, err := c.Http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/nfl/cap/_/year/%d", year))
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch cap page")
		return nil, fmt.Errorf("fetch cap page for %d: %w", year, err)
	}
	if res.IsError() {
		err := fmt.Errorf("fetch cap page for %d: status %s", year, res.Status())
		span.RecordError(err)
		span.SetStatus(codes.Error, "error status")
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, fmt.Errorf("parse cap page for %d: %w", year, err)
	}
	return doc, nil
}
