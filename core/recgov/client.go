package recgov

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const (
	opMonthly = "monthly"
	opDaily   = "daily"

	// maxErrorBody caps how much of a failed response is kept in the error.
	maxErrorBody = 512
)

// Client defines the availability queries the poller depends on.
type Client interface {
	// FetchMonthly returns the monthly summary for the facility.
	FetchMonthly(ctx context.Context, facilityID, year int, month time.Month) (*MonthlyAvailability, error)
	// FetchDaily returns the daily detail records for a yyyy-MM-dd date.
	// The slice is never empty when err is nil.
	FetchDaily(ctx context.Context, facilityID int, date string) ([]DailyAvailability, error)
}

// NewClient creates an HTTP client for the availability API based on the configuration.
func NewClient(cfg Config) (Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", cfg.BaseURL)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: missing host", cfg.BaseURL)
	}

	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   16,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	bucket := cfg.InventoryBucket
	if bucket == "" {
		bucket = "FIT"
	}

	return &httpClient{
		http: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
		base:      base,
		bucket:    bucket,
		userAgent: cfg.UserAgent,
	}, nil
}

type httpClient struct {
	http      *http.Client
	base      *url.URL
	bucket    string
	userAgent string
}

func (c *httpClient) FetchMonthly(ctx context.Context, facilityID, year int, month time.Month) (*MonthlyAvailability, error) {
	q := url.Values{}
	q.Set("inventoryBucket", c.bucket)
	q.Set("year", strconv.Itoa(year))
	q.Set("month", fmt.Sprintf("%02d", int(month)))
	endpoint := c.endpoint(fmt.Sprintf("/api/timedentry/availability/facility/%d/monthlyAvailabilitySummaryView", facilityID), q)

	var out MonthlyAvailability
	if err := c.getJSON(ctx, opMonthly, endpoint, &out); err != nil {
		return nil, err
	}
	if out.Dates == nil {
		return nil, &RemoteError{Op: opMonthly, URL: endpoint, Err: ErrEmptyBody}
	}
	return &out, nil
}

func (c *httpClient) FetchDaily(ctx context.Context, facilityID int, date string) ([]DailyAvailability, error) {
	q := url.Values{}
	q.Set("date", date)
	endpoint := c.endpoint(fmt.Sprintf("/api/timedentry/availability/facility/%d", facilityID), q)

	var out []DailyAvailability
	if err := c.getJSON(ctx, opDaily, endpoint, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, &RemoteError{Op: opDaily, URL: endpoint, Err: ErrEmptyBody}
	}
	return out, nil
}

func (c *httpClient) endpoint(path string, q url.Values) string {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	u.RawQuery = q.Encode()
	return u.String()
}

// getJSON performs a GET and decodes a 2xx body into out.
// Every failure is returned as a *RemoteError.
func (c *httpClient) getJSON(ctx context.Context, op, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &RemoteError{Op: op, URL: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &RemoteError{Op: op, URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &RemoteError{
			Op:         op,
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %q: %s", resp.Status, strings.TrimSpace(string(snippet))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			err = ErrEmptyBody
		}
		return &RemoteError{Op: op, URL: endpoint, StatusCode: resp.StatusCode, Err: err}
	}
	return nil
}
