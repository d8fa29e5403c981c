package slotsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/BruksfildServices01/barber-slot-loader/internal/config"
	"github.com/BruksfildServices01/barber-slot-loader/internal/domain/slots"
	"github.com/BruksfildServices01/barber-slot-loader/internal/httperr"
	"github.com/BruksfildServices01/barber-slot-loader/internal/requestid"
)

const (
	SlotsPath = "/slots"

	// cap on bodies we read; a day of slots is tiny
	maxBodyBytes = 1 << 20
)

// Client fetches available slots from GET {baseURL}/slots.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.SlotsBaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:          10,
				MaxIdleConnsPerHost:   5,
				IdleConnTimeout:       60 * time.Second,
				ResponseHeaderTimeout: cfg.Timeout,
			},
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
	}
}

// NewWithHTTPClient is used when the caller owns the transport (tests, proxies).
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: hc,
		limiter:    rate.NewLimiter(rate.Inf, 0),
	}
}

// Fetch issues one request for q. It does not retry. The request id on ctx
// (or a fresh one) is sent as X-Request-ID and quoted in errors.
func (c *Client) Fetch(ctx context.Context, q slots.Query) ([]slots.Slot, error) {
	ctx, reqID := requestid.Ensure(ctx)
	url := c.baseURL + SlotsPath + "?" + q.Values().Encode()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter (%s): %v: %w", url, err, httperr.ErrBusiness(httperr.CodeLoadFailed))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %v: %w", err, httperr.ErrBusiness(httperr.CodeLoadFailed))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestid.Header, reqID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("request context (GET %s): %v: %w", url, ctxErr, httperr.ErrBusiness(httperr.CodeLoadFailed))
		}
		return nil, fmt.Errorf("execute request (GET %s): %v: %w", url, err, httperr.ErrBusiness(httperr.CodeLoadFailed))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body (GET %s): %v: %w", url, err, httperr.ErrBusiness(httperr.CodeLoadFailed))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("status %d for GET %s [request %s]%s: %w",
			resp.StatusCode, url, reqID, describeError(body), httperr.ErrBusiness(httperr.CodeUnexpectedStatus))
	}

	list, err := slots.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("GET %s [request %s]: %w", url, reqID, err)
	}
	return list, nil
}

func describeError(body []byte) string {
	var he httperr.HTTPError
	if err := json.Unmarshal(body, &he); err != nil || he.Code == "" {
		return ""
	}
	return " (" + he.String() + ")"
}
