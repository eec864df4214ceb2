// Package dms is the HTTP client for the dealer management system. Every
// call is paced by a shared limiter and carries the caller's cookie header.
package dms

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/you-humble/ge-sync/internal/model"
	"github.com/you-humble/ge-sync/platform/logger"
)

const (
	dateLayout   = "01/02/2006"
	maxBodyBytes = 32 << 20
	previewBytes = 200
)

type ArtifactSink interface {
	Save(ctx context.Context, a model.Artifact) error
}

type Paths struct {
	OrderSearch     string
	OrderJSON       string
	Inbound         string
	ReceivingReport string
	ASISLoads       string
	ASISLoadDetail  string
	InventoryReport string
}

type client struct {
	http    *http.Client
	base    *url.URL
	limiter *rate.Limiter
	paths   Paths
	sink    ArtifactSink
}

// NewClient builds a client rooted at baseURL. sink may be nil.
func NewClient(
	httpClient *http.Client,
	baseURL string,
	rps float64,
	paths Paths,
	sink ArtifactSink,
) (*client, error) {
	const op = "dms.NewClient"

	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%s: base url %q: %w", op, baseURL, model.ErrValidation)
	}

	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}

	return &client{
		http:    httpClient,
		base:    base,
		limiter: rate.NewLimiter(limit, 1),
		paths:   paths,
		sink:    sink,
	}, nil
}

type response struct {
	body        []byte
	contentType string
}

// URL resolves path against the base URL with the given query.
func (c *client) URL(path string, q url.Values) string {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	u.RawQuery = q.Encode()
	return u.String()
}

func (c *client) do(
	ctx context.Context,
	method, path, cookie string,
	q, form url.Values,
	kind, key string,
) (*response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.URL(path, q), body)
	if err != nil {
		return nil, err
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}

	logger.Debug(ctx, "dms request",
		logger.String("method", method),
		logger.String("path", path),
		logger.Int("status", resp.StatusCode),
		logger.Int("bytes", len(b)),
		logger.Duration("took", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: http status %d for %s: %s",
			model.ErrUpstreamStatus, resp.StatusCode, path, Preview(b))
	}

	out := &response{body: b, contentType: resp.Header.Get("Content-Type")}
	c.archive(ctx, kind, key, out)

	return out, nil
}

func (c *client) archive(ctx context.Context, kind, key string, r *response) {
	if c.sink == nil {
		return
	}
	runID, flow := runFromContext(ctx)
	err := c.sink.Save(ctx, model.Artifact{
		RunID:       runID,
		Flow:        flow,
		Kind:        kind,
		Key:         key,
		ContentType: r.contentType,
		Body:        r.body,
		FetchedAt:   time.Now().UTC(),
	})
	if err != nil {
		logger.Warn(ctx, "artifact save failed",
			logger.String("kind", kind),
			logger.String("key", key),
			logger.ErrorF(err),
		)
	}
}

func rangeQuery(loc string, from, to time.Time) url.Values {
	return url.Values{
		"location":  {loc},
		"startDate": {from.Format(dateLayout)},
		"endDate":   {to.Format(dateLayout)},
	}
}

// OrderJSON returns the raw order data for a date range. The body may be
// empty; the upstream does that for valid queries.
func (c *client) OrderJSON(ctx context.Context, cookie, loc string, from, to time.Time) ([]byte, error) {
	const op = "dms.client.OrderJSON"

	q := rangeQuery(loc, from, to)
	q.Set("format", "json")

	r, err := c.do(ctx, http.MethodGet, c.paths.OrderJSON, cookie, q, nil, "order-json", q.Get("startDate")+"-"+q.Get("endDate"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r.body, nil
}

func (c *client) OrderJSONByCSO(ctx context.Context, cookie, loc, cso string) ([]byte, error) {
	const op = "dms.client.OrderJSONByCSO"

	q := url.Values{"location": {loc}, "cso": {cso}, "format": {"json"}}

	r, err := c.do(ctx, http.MethodGet, c.paths.OrderJSON, cookie, q, nil, "order-json-cso", cso)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r.body, nil
}

func (c *client) OrderSearchHTML(ctx context.Context, cookie, loc string, from, to time.Time) (string, error) {
	const op = "dms.client.OrderSearchHTML"

	form := rangeQuery(loc, from, to)
	form.Set("hCmd", "SEARCH")

	r, err := c.do(ctx, http.MethodPost, c.paths.OrderSearch, cookie, nil, form, "order-search", form.Get("startDate")+"-"+form.Get("endDate"))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(r.body), nil
}

// OrderSearchURL is the GET form of the search page, used by the browser.
func (c *client) OrderSearchURL(loc string, from, to time.Time) string {
	q := rangeQuery(loc, from, to)
	q.Set("hCmd", "SEARCH")
	return c.URL(c.paths.OrderSearch, q)
}

func (c *client) InboundListing(ctx context.Context, cookie, loc string, from, to time.Time) (string, error) {
	const op = "dms.client.InboundListing"

	q := rangeQuery(loc, from, to)

	r, err := c.do(ctx, http.MethodGet, c.paths.Inbound, cookie, q, nil, "inbound-listing", loc)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(r.body), nil
}

// ReceivingReport posts form and requires a non-empty PDF back.
func (c *client) ReceivingReport(ctx context.Context, cookie string, form url.Values) ([]byte, error) {
	const op = "dms.client.ReceivingReport"

	shipment := form.Get("selShipmentNumVal")

	r, err := c.do(ctx, http.MethodPost, c.paths.ReceivingReport, cookie, nil, form, "receiving-report", shipment)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !isPDF(r.contentType) {
		return nil, fmt.Errorf("%s: %w: content-type %q for %s: %s",
			op, model.ErrNotPDF, r.contentType, shipment, Preview(r.body))
	}
	if len(r.body) == 0 {
		return nil, fmt.Errorf("%s: %w: report for %s", op, model.ErrEmptyBody, shipment)
	}

	return r.body, nil
}

func (c *client) ASISLoads(ctx context.Context, cookie, loc string) (string, error) {
	const op = "dms.client.ASISLoads"

	q := url.Values{"location": {loc}}

	r, err := c.do(ctx, http.MethodGet, c.paths.ASISLoads, cookie, q, nil, "asis-loads", loc)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(r.body), nil
}

func (c *client) ASISLoadDetail(ctx context.Context, cookie, loc, load string) (string, error) {
	const op = "dms.client.ASISLoadDetail"

	q := url.Values{"location": {loc}, "load": {load}}

	r, err := c.do(ctx, http.MethodGet, c.paths.ASISLoadDetail, cookie, q, nil, "asis-load", load)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(r.body), nil
}

func (c *client) InventoryReport(ctx context.Context, cookie, loc string, invType model.InventoryType) (string, error) {
	const op = "dms.client.InventoryReport"

	q := url.Values{"location": {loc}, "invType": {string(invType)}}

	r, err := c.do(ctx, http.MethodGet, c.paths.InventoryReport, cookie, q, nil, "inventory-report", string(invType))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(r.body), nil
}

func isPDF(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/pdf" || mt == "application/x-pdf"
}

// Preview returns a short single-line prefix of b for error messages.
func Preview(b []byte) string {
	if len(b) > previewBytes {
		b = b[:previewBytes]
	}
	return strings.Join(strings.Fields(string(bytes.ToValidUTF8(b, nil))), " ")
}
