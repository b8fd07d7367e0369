package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jdelcourt/marque/internal/logger"
)

// Source tags where a resolved preview image came from.
type Source int

const (
	// SourceMetadata means the page's social-preview image was found
	// through the metadata-extraction endpoint.
	SourceMetadata Source = iota
	// SourceScreenshot means a rendered snapshot of the page was used.
	SourceScreenshot
	// SourcePlaceholder means both lookups failed and a synthetic
	// image keyed by the page's domain was used instead.
	SourcePlaceholder
)

func (s Source) String() string {
	switch s {
	case SourceMetadata:
		return "metadata"
	case SourceScreenshot:
		return "screenshot"
	default:
		return "placeholder"
	}
}

// Result is the outcome of a preview-image resolution. It always
// carries a usable image URL; Source tells the caller whether it is a
// real lookup result or the placeholder fallback.
type Result struct {
	ImageURL string
	Source   Source
}

// Config holds the external endpoints used for enrichment. Both
// endpoints are untrusted and independently failure-tolerant.
type Config struct {
	MetadataEndpoint   string        // ex: https://api.microlink.io
	ScreenshotEndpoint string        // ex: https://api.apiflash.com/v1/urltoimage
	ScreenshotKey      string        // empty disables the screenshot stage
	Timeout            time.Duration // per-stage HTTP timeout
}

// Resolver produces a preview image for a URL through an ordered
// fallback chain: metadata lookup, screenshot rendering, synthetic
// placeholder. Resolve never fails; exhausting the chain still yields
// the placeholder, which performs no I/O.
type Resolver struct {
	cfg    Config
	client *http.Client
	logger logger.Logger
}

const maxResponseBytes = 1 << 20

func NewResolver(cfg Config, log logger.Logger) *Resolver {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Resolver{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: log,
	}
}

// Resolve runs the fallback chain for target, which must already be a
// normalized absolute URL. Errors at any stage are swallowed and the
// chain moves on.
func (r *Resolver) Resolve(ctx context.Context, target string) Result {
	if img, err := r.fromMetadata(ctx, target); err == nil {
		return Result{ImageURL: img, Source: SourceMetadata}
	} else {
		r.logger.Debug("metadata lookup failed",
			logger.String("url", target),
			logger.Error(err))
	}

	if img, err := r.fromScreenshot(ctx, target); err == nil {
		return Result{ImageURL: img, Source: SourceScreenshot}
	} else {
		r.logger.Debug("screenshot lookup failed",
			logger.String("url", target),
			logger.Error(err))
	}

	return Result{ImageURL: Placeholder(target), Source: SourcePlaceholder}
}

// metadataResponse mirrors the relevant part of the extraction
// endpoint's body: {"data": {"image": {"url": "..."}}}.
type metadataResponse struct {
	Data struct {
		Image struct {
			URL string `json:"url"`
		} `json:"image"`
	} `json:"data"`
}

func (r *Resolver) fromMetadata(ctx context.Context, target string) (string, error) {
	reqURL := fmt.Sprintf("%s?url=%s", r.cfg.MetadataEndpoint, url.QueryEscape(target))

	body, err := r.fetch(ctx, reqURL)
	if err != nil {
		return "", err
	}

	var parsed metadataResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("malformed metadata response: %w", err)
	}
	if parsed.Data.Image.URL == "" {
		return "", fmt.Errorf("no preview image in metadata response")
	}
	return parsed.Data.Image.URL, nil
}

// screenshotResponse mirrors the rendering endpoint's body: {"url": "..."}.
type screenshotResponse struct {
	URL string `json:"url"`
}

func (r *Resolver) fromScreenshot(ctx context.Context, target string) (string, error) {
	if r.cfg.ScreenshotKey == "" {
		return "", fmt.Errorf("screenshot stage disabled: no access key configured")
	}

	params := url.Values{}
	params.Set("access_key", r.cfg.ScreenshotKey)
	params.Set("url", target)
	params.Set("format", "jpeg")
	params.Set("width", "1200")
	params.Set("height", "630")
	params.Set("response_type", "json")
	reqURL := r.cfg.ScreenshotEndpoint + "?" + params.Encode()

	body, err := r.fetch(ctx, reqURL)
	if err != nil {
		return "", err
	}

	var parsed screenshotResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("malformed screenshot response: %w", err)
	}
	if parsed.URL == "" {
		return "", fmt.Errorf("no image url in screenshot response")
	}
	return parsed.URL, nil
}

func (r *Resolver) fetch(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

// Placeholder synthesizes a generic preview-image URL keyed by the
// page's domain. A leading "www." is stripped and the first label is
// used as a topical keyword. Pure: it performs no I/O and cannot fail.
func Placeholder(target string) string {
	u, err := url.Parse(target)
	if err != nil || u.Hostname() == "" {
		return "https://source.unsplash.com/1200x630/?website,technology"
	}

	domain := strings.TrimPrefix(u.Hostname(), "www.")
	keyword := domain
	if idx := strings.Index(domain, "."); idx > 0 {
		keyword = domain[:idx]
	}
	if keyword == "" {
		return "https://source.unsplash.com/1200x630/?website,technology"
	}
	return fmt.Sprintf("https://source.unsplash.com/1200x630/?%s,website", keyword)
}
