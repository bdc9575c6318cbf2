// Package coingecko fetches market data from the CoinGecko API through the
// persisted response cache, with retries and rate-limit fallback.
package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/bnema/onramp/internal/application/port"
	"github.com/bnema/onramp/internal/domain/entity"
	"github.com/bnema/onramp/internal/logging"
)

const (
	DefaultMaxRetries = 3
	DefaultBaseDelay  = time.Second
	DefaultTimeout    = 10 * time.Second

	// Backoff never grows past this, whatever the attempt count.
	MaxBackoff = 5 * time.Minute

	// Largest response body accepted (coin detail with tickers is the biggest).
	maxBodySize = 16 * 1024 * 1024
)

// ResponseStore is the cache the client reads and fills.
type ResponseStore interface {
	port.ResponseCache
	Set(ctx context.Context, key string, data json.RawMessage)
}

// CooldownGuard tracks rate-limit responses.
type CooldownGuard interface {
	IsCoolingDown() bool
	RecordHit()
}

// Client implements port.MarketFetcher.
type Client struct {
	client *http.Client
	store  ResponseStore
	guard  CooldownGuard

	userAgent           string
	maxRetries          int
	baseDelay           time.Duration
	fallbackOnRateLimit bool
	singleFlight        bool

	group singleflight.Group
	sleep func(ctx context.Context, d time.Duration) error
	now   func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.client.Timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithRetry sets the attempt count and the first backoff delay.
func WithRetry(maxRetries int, baseDelay time.Duration) Option {
	return func(c *Client) {
		if maxRetries > 0 {
			c.maxRetries = maxRetries
		}
		if baseDelay >= 0 {
			c.baseDelay = baseDelay
		}
	}
}

// WithRateLimitFallback controls whether a 429 falls back to an expired cache entry.
func WithRateLimitFallback(enabled bool) Option {
	return func(c *Client) {
		c.fallbackOnRateLimit = enabled
	}
}

// WithSingleFlight controls whether concurrent fetches of one URL share a request.
func WithSingleFlight(enabled bool) Option {
	return func(c *Client) {
		c.singleFlight = enabled
	}
}

// NewClient returns a client backed by store and guard.
func NewClient(store ResponseStore, guard CooldownGuard, opts ...Option) *Client {
	c := &Client{
		client:              &http.Client{Timeout: DefaultTimeout},
		store:               store,
		guard:               guard,
		userAgent:           "onramp/dev",
		maxRetries:          DefaultMaxRetries,
		baseDelay:           DefaultBaseDelay,
		fallbackOnRateLimit: true,
		singleFlight:        true,
		sleep:               waitForBackoff,
		now:                 time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch returns the body for url. A fresh cache entry is served without a
// request; during a rate-limit cooldown any cached entry is. Otherwise the URL
// is requested up to maxRetries times with exponential backoff.
func (c *Client) Fetch(ctx context.Context, url string) (*port.FetchResponse, error) {
	ctx = logging.WithURL(logging.WithComponent(ctx, "coingecko"), url)
	log := logging.FromContext(ctx)

	coolingDown := c.guard.IsCoolingDown()
	if resp, ok := c.fromCache(url, coolingDown); ok {
		log.Debug().Str("source", string(resp.Source)).Bool("cooling_down", coolingDown).Msg("served from cache")
		return resp, nil
	}

	if !c.singleFlight {
		return c.fetchWithRetry(ctx, url)
	}

	// the shared sequence outlives any single caller; each ctx only bounds its own wait
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(url, func() (any, error) {
		return c.fetchWithRetry(shared, url)
	})
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, ctx.Err())
	case res := <-ch:
		if res.Shared {
			log.Trace().Msg("shared in-flight fetch")
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*port.FetchResponse), nil
	}
}

func (c *Client) fromCache(url string, allowExpired bool) (*port.FetchResponse, bool) {
	entry, fresh, ok := c.store.Lookup(url)
	if !ok || (!fresh && !allowExpired) {
		return nil, false
	}
	source := entity.SourceCache
	if !fresh {
		source = entity.SourceStaleCache
	}
	return &port.FetchResponse{Body: entry.Data, Source: source, StoredAt: entry.Timestamp}, true
}

func (c *Client) fetchWithRetry(ctx context.Context, url string) (*port.FetchResponse, error) {
	log := logging.FromContext(ctx)

	var lastErr error
	for attempt := range c.maxRetries {
		body, err := c.get(ctx, url)
		if err == nil {
			c.store.Set(ctx, url, body)
			return &port.FetchResponse{Body: body, Source: entity.SourceNetwork, StoredAt: c.now()}, nil
		}
		lastErr = err

		if IsRateLimited(err) {
			c.guard.RecordHit()
		}
		if c.fallbackOnRateLimit && c.guard.IsCoolingDown() {
			if resp, ok := c.fromCache(url, true); ok {
				log.Warn().Err(err).Msg("rate limited, serving cached response")
				return resp, nil
			}
		}

		log.Warn().Err(err).Int("attempt", attempt+1).Int("max_attempts", c.maxRetries).Msg("fetch attempt failed")

		if attempt < c.maxRetries-1 {
			if err := c.sleep(ctx, c.backoff(attempt)); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
			}
		}
	}
	return nil, fmt.Errorf("%w: %w", ErrFetchFailed, lastErr)
}

// backoff returns baseDelay * 2^attempt, capped at MaxBackoff.
func (c *Client) backoff(attempt int) time.Duration {
	d := min(c.baseDelay, MaxBackoff)
	for range attempt {
		if d >= MaxBackoff/2 {
			return MaxBackoff
		}
		d *= 2
	}
	return d
}

func (c *Client) get(ctx context.Context, url string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	var body json.RawMessage
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	return body, nil
}

func waitForBackoff(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
