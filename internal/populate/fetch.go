package populate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/vk/mapvendor/internal/ctxlog"
)

// fetcher wraps the shared HTTP client used by all fetch jobs.
type fetcher struct {
	client    *http.Client
	userAgent string
}

func newFetcher(timeout time.Duration, userAgent string) *fetcher {
	return &fetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// fetch executes a single job. The destination file is only created after
// the full response body has been read, so a network or status failure
// never leaves a partial file behind.
func (f *fetcher) fetch(ctx context.Context, cacheDir string, job Job, force bool) Result {
	logger := ctxlog.FromContext(ctx)

	if job.Filename == "" {
		return Result{Job: job, Status: StatusFailed,
			Err: fmt.Errorf("no usable filename in URL %s", job.URL)}
	}
	dest := filepath.Join(cacheDir, job.Filename)

	if !force {
		if info, err := os.Stat(dest); err == nil && info.Mode().IsRegular() {
			logger.Debug("Asset already cached, skipping.", "file", job.Filename)
			return Result{Job: job, Status: StatusSkipped}
		}
	}

	body, err := f.get(ctx, job.URL)
	if err != nil {
		logger.Debug("Fetch failed.", "url", job.URL, "error", err)
		return Result{Job: job, Status: StatusFailed, Err: err}
	}

	if err := os.WriteFile(dest, body, 0o644); err != nil {
		return Result{Job: job, Status: StatusFailed,
			Err: fmt.Errorf("writing %s: %w", dest, err)}
	}
	logger.Debug("Asset downloaded.", "file", job.Filename, "bytes", len(body))
	return Result{Job: job, Status: StatusDownloaded, Bytes: int64(len(body))}
}

// get performs the HTTP GET and returns the full body. Any non-2xx status
// is an error.
func (f *fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "*/*")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}
