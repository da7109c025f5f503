package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/lantern-launcher/lantern/internal/log"
	"github.com/lantern-launcher/lantern/internal/progress"
)

// Fetcher downloads a URL to a local file path.
type Fetcher struct {
	client *http.Client
	logger log.Logger
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithClient overrides the HTTP client.
func WithClient(c *http.Client) FetcherOption {
	return func(f *Fetcher) { f.client = c }
}

// WithLogger sets the fetcher's logger.
func WithLogger(l log.Logger) FetcherOption {
	return func(f *Fetcher) { f.logger = l }
}

// NewFetcher creates a Fetcher with hardened defaults.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client: NewClient(DefaultOptions()),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads rawURL to destPath. The body is streamed to a
// temporary file next to destPath and renamed into place only after
// the transfer completes, so destPath is never a half-written file.
func (f *Fetcher) Fetch(ctx context.Context, rawURL, destPath string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid download URL: %w", err)
	}
	if err := CheckURL(u); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept-Encoding", "identity")

	f.logger.Debug("fetching archive", "url", rawURL, "dest", destPath)

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status downloading %s: %s", rawURL, resp.Status)
	}

	tmpPath := destPath + ".part"
	out, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create download file: %w", err)
	}

	var dst io.Writer = out
	var pw *progress.Writer
	if progress.ShouldShow() && resp.ContentLength > 0 {
		pw = progress.NewWriter(out, resp.ContentLength, os.Stdout)
		dst = pw
	}

	_, copyErr := io.Copy(dst, resp.Body)
	if pw != nil {
		pw.Finish()
	}
	closeErr := out.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write download file: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close download file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move download into place: %w", err)
	}
	return nil
}
