package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// FetchError wraps any failure to retrieve the remote source video:
// network errors, timeouts, and non-success status codes.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetching %s: unexpected status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Downloader retrieves remote videos with a hard per-request timeout.
type Downloader struct {
	httpClient *http.Client
}

// NewDownloader creates a downloader whose requests are bounded by timeout.
func NewDownloader(timeout time.Duration) *Downloader {
	return &Downloader{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// DownloadToFile fetches url and writes the body to dest, returning the
// number of bytes written. On any failure dest is removed, so callers never
// see a partial download.
func (d *Downloader) DownloadToFile(ctx context.Context, url, dest string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, &FetchError{URL: url, Err: err}
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return 0, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, &FetchError{URL: url, Status: resp.StatusCode}
	}

	f, err := os.Create(dest)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", dest, err)
	}

	n, err := io.Copy(f, resp.Body)
	if err != nil {
		f.Close()
		os.Remove(dest)
		return 0, &FetchError{URL: url, Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(dest)
		return 0, fmt.Errorf("writing %s: %w", dest, err)
	}
	return n, nil
}
