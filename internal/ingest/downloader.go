package ingest

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DownloadTimeout bounds a single history download.
	DownloadTimeout = 2 * time.Minute

	// downloadDelay spaces out repeated downloads; the upstream file
	// changes at most twice a week.
	downloadDelay = 30 * time.Second
)

// Downloader fetches the raw history file over HTTP, decompressing
// gzip payloads transparently.
type Downloader struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

// NewDownloader creates a downloader with a default client. Pass nil to
// use the default HTTP client.
func NewDownloader(client *http.Client) *Downloader {
	if client == nil {
		client = &http.Client{Timeout: DownloadTimeout}
	}
	return &Downloader{
		httpClient:  client,
		rateLimiter: rate.NewLimiter(rate.Every(downloadDelay), 1),
	}
}

// Fetch downloads the history file and returns its decompressed contents.
func (d *Downloader) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := d.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download history: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download history: unexpected status %s", resp.Status)
	}

	var body io.Reader = resp.Body
	if isGzip(resp, url) {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		defer func() { _ = gz.Close() }()
		body = gz
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read history body: %w", err)
	}
	return data, nil
}

// FetchToFile downloads the history file to the given path, creating
// parent directories as needed.
func (d *Downloader) FetchToFile(ctx context.Context, url, path string) error {
	data, err := d.Fetch(ctx, url)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write history file: %w", err)
	}
	return nil
}

func isGzip(resp *http.Response, url string) bool {
	if strings.Contains(resp.Header.Get("Content-Type"), "gzip") {
		return true
	}
	return strings.HasSuffix(url, ".gz")
}
