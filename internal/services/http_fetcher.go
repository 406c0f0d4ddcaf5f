package services

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gocolly/colly/v2"

	"exportdesk/internal/infrastructure/errors"
	"exportdesk/internal/infrastructure/logging"
	"exportdesk/internal/types"
)

// HTTPFetcher performs single GET requests on behalf of the frontend,
// which cannot make cross-origin calls itself
type HTTPFetcher struct {
	collector *colly.Collector
	logger    logging.Logger
}

// NewHTTPFetcher creates a fetcher. Every call is independent: no cookie jar,
// no visited-URL memory, no robots.txt, no body size limit.
func NewHTTPFetcher(userAgent string, logger logging.Logger) *HTTPFetcher {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}

	c := colly.NewCollector(
		colly.UserAgent(userAgent),
		colly.AllowURLRevisit(),
		colly.IgnoreRobotsTxt(),
		// Status codes are checked in fetch, colly would reject 203-299 otherwise
		colly.ParseHTTPErrorResponse(),
		colly.MaxBodySize(0),
	)
	c.DisableCookies()

	return &HTTPFetcher{
		collector: c,
		logger:    logger,
	}
}

// Fetch issues a GET for url and returns the response body
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*types.FetchResult, error) {
	return f.fetch(ctx, "fetch", url, "")
}

// FetchWithCookies is Fetch with a caller-supplied Cookie header
func (f *HTTPFetcher) FetchWithCookies(ctx context.Context, url string, cookie string) (*types.FetchResult, error) {
	return f.fetch(ctx, "fetch_with_cookies", url, cookie)
}

func (f *HTTPFetcher) fetch(ctx context.Context, command, url, cookie string) (*types.FetchResult, error) {
	start := time.Now()

	if url == "" {
		err := errors.HandleValidationError(command, "url", "must not be empty")
		logging.LogCommandError(f.logger, err, command, nil)
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// A clone per call keeps callbacks from leaking between concurrent requests
	c := f.collector.Clone()
	c.Context = ctx

	var (
		headersSeen atomic.Bool
		result      *types.FetchResult
		statusErr   error
	)

	c.OnResponseHeaders(func(r *colly.Response) {
		headersSeen.Store(true)
	})

	c.OnResponse(func(r *colly.Response) {
		if r.StatusCode < 200 || r.StatusCode > 299 {
			statusErr = errors.HandleStatusError(command, url, r.StatusCode)
			return
		}
		result = &types.FetchResult{
			Body:       string(r.Body),
			StatusCode: r.StatusCode,
			Status:     http.StatusText(r.StatusCode),
		}
	})

	hdr := http.Header{}
	hdr.Set("Content-Type", "application/json")
	if cookie != "" {
		hdr.Set("Cookie", cookie)
	}

	f.logger.Debug("Sending request", "command", command, "url", url, "with_cookie", cookie != "")

	if err := c.Request(http.MethodGet, url, nil, nil, hdr); err != nil {
		var cmdErr error
		if headersSeen.Load() {
			cmdErr = errors.HandleReadError(command, url, err)
		} else {
			cmdErr = errors.HandleRequestError(command, url, err)
		}
		logging.LogCommandError(f.logger, cmdErr, command, nil)
		return nil, cmdErr
	}

	if statusErr != nil {
		logging.LogCommandError(f.logger, statusErr, command, nil)
		return nil, statusErr
	}

	if result == nil {
		// colly only skips OnResponse when the request was aborted
		cmdErr := errors.HandleReadError(command, url, context.Canceled)
		logging.LogCommandError(f.logger, cmdErr, command, nil)
		return nil, cmdErr
	}

	logging.LogCommandOperation(f.logger, command, time.Since(start), map[string]interface{}{
		"url":    url,
		"status": result.StatusCode,
		"bytes":  len(result.Body),
	})
	return result, nil
}
