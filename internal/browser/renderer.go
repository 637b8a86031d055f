package browser

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// Rendering defaults
const (
	DefaultTimeout = 30 * time.Second
	DefaultWidth   = 1024
	DefaultHeight  = 768
)

// Size is the viewport size in CSS pixels
type Size struct {
	Width  int
	Height int
}

// Renderer renders a page to a PNG image
type Renderer interface {
	Render(ctx context.Context, pageURL string, size Size) ([]byte, error)
}

// Options configures a ChromeRenderer
type Options struct {
	// ExecPath overrides Chrome discovery
	ExecPath string
	Timeout  time.Duration
	Logger   *zap.Logger
}

// ChromeRenderer renders pages with a headless Chrome instance per call
type ChromeRenderer struct {
	execPath string
	timeout  time.Duration
	logger   *zap.Logger
}

// NewChromeRenderer creates a new headless Chrome renderer
func NewChromeRenderer(opts Options) *ChromeRenderer {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &ChromeRenderer{
		execPath: opts.ExecPath,
		timeout:  opts.Timeout,
		logger:   opts.Logger.Named("browser"),
	}
}

// Render navigates to pageURL and captures the viewport as PNG
func (r *ChromeRenderer) Render(ctx context.Context, pageURL string, size Size) ([]byte, error) {
	if err := ValidateURL(pageURL); err != nil {
		return nil, err
	}
	size = size.normalized()

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.WindowSize(size.Width, size.Height),
	)
	if r.execPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(r.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	taskCtx, cancelTask := chromedp.NewContext(allocCtx)
	defer cancelTask()

	taskCtx, cancelTimeout := context.WithTimeout(taskCtx, r.timeout)
	defer cancelTimeout()

	start := time.Now()
	var buf []byte
	err := chromedp.Run(taskCtx,
		chromedp.EmulateViewport(int64(size.Width), int64(size.Height)),
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body"),
		chromedp.CaptureScreenshot(&buf),
	)
	if err != nil {
		r.logger.Warn("page render failed", zap.String("url", pageURL), zap.Error(err))
		return nil, fmt.Errorf("failed to render %s: %w", pageURL, err)
	}

	r.logger.Debug("page rendered",
		zap.String("url", pageURL),
		zap.Int("bytes", len(buf)),
		zap.Duration("elapsed", time.Since(start)))
	return buf, nil
}

// ValidateURL checks that pageURL is an absolute http(s) address
func ValidateURL(pageURL string) error {
	u, err := url.Parse(pageURL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", pageURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid URL %q: must start with http:// or https://", pageURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid URL %q: missing host", pageURL)
	}
	return nil
}

func (s Size) normalized() Size {
	if s.Width <= 0 {
		s.Width = DefaultWidth
	}
	if s.Height <= 0 {
		s.Height = DefaultHeight
	}
	return s
}
