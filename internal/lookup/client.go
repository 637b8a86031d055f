package lookup

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/philologus/philologus-desktop/internal/model"
)

// Client defaults
const (
	DefaultEndpoint      = "https://philolog.us/query"
	DefaultLexicon       = "lsj"
	DefaultTimeout       = 10 * time.Second
	DefaultRatePerSecond = 8
	DefaultBurst         = 4

	// Bodies larger than this are truncated and will fail to decode
	MaxBodyBytes = 4 << 20

	userAgent = "philologus-desktop"
)

// Options configures a Client. Zero values fall back to the defaults.
type Options struct {
	Endpoint      string
	Lexicon       string
	Timeout       time.Duration
	RatePerSecond float64
	Burst         int
	HTTPClient    *http.Client
	Logger        *zap.Logger
}

// Client is the HTTP implementation of Searcher
type Client struct {
	mu       sync.RWMutex
	endpoint string
	lexicon  string
	timeout  time.Duration

	limiter    *rate.Limiter
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new lookup client
func NewClient(opts Options) *Client {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.Lexicon == "" {
		opts.Lexicon = DefaultLexicon
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.RatePerSecond <= 0 {
		opts.RatePerSecond = DefaultRatePerSecond
	}
	if opts.Burst <= 0 {
		opts.Burst = DefaultBurst
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &Client{
		endpoint:   opts.Endpoint,
		lexicon:    opts.Lexicon,
		timeout:    opts.Timeout,
		limiter:    rate.NewLimiter(rate.Limit(opts.RatePerSecond), opts.Burst),
		httpClient: opts.HTTPClient,
		logger:     opts.Logger.Named("lookup"),
	}
}

// SetEndpoint changes the query endpoint for subsequent lookups
func (c *Client) SetEndpoint(endpoint string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.endpoint = endpoint
}

// SetLexicon changes the lexicon selector for subsequent lookups
func (c *Client) SetLexicon(lexicon string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lexicon = lexicon
}

// SetTimeout changes the per-request timeout for subsequent lookups
func (c *Client) SetTimeout(timeout time.Duration) {
	if timeout <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timeout = timeout
}

// Endpoint returns the current query endpoint
func (c *Client) Endpoint() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.endpoint
}

// Lexicon returns the current lexicon selector
func (c *Client) Lexicon() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lexicon
}

// Lookup sends one search request and blocks until it completes, fails or ctx is done
func (c *Client) Lookup(ctx context.Context, query string) (model.ResultSet, error) {
	requestID := uuid.NewString()
	log := c.logger.With(zap.String("request_id", requestID), zap.String("query", query))
	start := time.Now()

	reqURL, err := BuildURL(c.Endpoint(), c.Lexicon(), query)
	if err != nil {
		log.Error("failed to build lookup URL", zap.Error(err))
		return nil, &NetworkError{URL: c.Endpoint(), Err: err}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		log.Debug("lookup dropped while waiting for rate limiter", zap.Error(err))
		return nil, &NetworkError{URL: reqURL, Err: err}
	}

	c.mu.RLock()
	timeout := c.timeout
	c.mu.RUnlock()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create lookup request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if IsCanceled(err) {
			log.Debug("lookup cancelled", zap.Duration("elapsed", time.Since(start)))
		} else {
			log.Warn("lookup request failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		}
		return nil, &NetworkError{URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		log.Warn("lookup returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.Duration("elapsed", time.Since(start)))
		return nil, &HTTPStatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		log.Warn("failed to read lookup response", zap.Error(err))
		return nil, &NetworkError{URL: reqURL, Err: err}
	}

	results, err := ParseResults(body)
	if err != nil {
		log.Warn("failed to decode lookup response", zap.Error(err), zap.Int("bytes", len(body)))
		return nil, err
	}

	log.Debug("lookup completed",
		zap.Int("results", results.Len()),
		zap.Duration("elapsed", time.Since(start)))
	return results, nil
}
