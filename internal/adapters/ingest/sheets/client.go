// Package sheets fetches published dataset sheets as CSV over HTTP
package sheets

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	perr "griddesk/internal/platform/errors"
	"griddesk/internal/platform/logger"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultUA        = "griddesk-sync"
	defaultMaxRetry  = 3
	defaultRetryBase = 500 * time.Millisecond
)

// Options configures the Client
type Options struct {
	// BaseURL is the published sheet root; dataset CSVs live at
	// {BaseURL}/{name}.csv
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Retry config for transient upstream responses
	MaxRetries int
	RetryBase  time.Duration
}

// Client is a minimal CSV sheet client with bounded retries
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	sleep func(time.Duration)
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		log:   *logger.Named("sheets"),
		sleep: time.Sleep,
	}
}

// open issues the GET for a dataset and hands back the body stream
// retries transient statuses with linear backoff before giving up
func (c *Client) open(ctx context.Context, name string) (io.ReadCloser, error) {
	if c.opts.BaseURL == "" {
		return nil, perr.Unavailablef("sheets base url not configured")
	}
	u := c.opts.BaseURL + "/" + url.PathEscape(name) + ".csv"

	attempts := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "sheets new request failed")
		}
		req.Header.Set("User-Agent", c.opts.UserAgent)
		req.Header.Set("Accept", "text/csv")

		resp, err := c.http.Do(req)
		if err != nil {
			attempts++
			if attempts > c.opts.MaxRetries {
				return nil, perr.Wrapf(err, perr.ErrorCodeUpstream, "sheets fetch %s failed", name)
			}
			c.log.Warn().Str("dataset", name).Int("attempt", attempts).Err(err).Msg("sheets fetch retry")
			c.sleep(c.opts.RetryBase * time.Duration(attempts))
			continue
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return resp.Body, nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			_ = resp.Body.Close()
			attempts++
			if attempts > c.opts.MaxRetries {
				return nil, perr.Upstreamf("sheets fetch %s: status %d", name, resp.StatusCode)
			}
			c.log.Warn().Str("dataset", name).Int("status", resp.StatusCode).Int("attempt", attempts).
				Msg("sheets fetch retry")
			c.sleep(c.opts.RetryBase * time.Duration(attempts))
		default:
			_ = resp.Body.Close()
			return nil, perr.Upstreamf("sheets fetch %s: status %d", name, resp.StatusCode)
		}
	}
}
