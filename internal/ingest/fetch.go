package ingest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tn-election-atlas/internal/model"
)

// fetch parameters: bounded attempts with a flat backoff. Each retry
// refetches from scratch, which is safe because both loads are
// idempotent reads.
const (
	fetchAttempts = 3
	fetchBackoff  = 2 * time.Second
	fetchTimeout  = 60 * time.Second
)

// ResultsURL fetches and parses a results CSV over HTTP.
func ResultsURL(ctx context.Context, url string) ([]model.ElectionRecord, error) {
	body, err := fetchWithRetry(ctx, url)
	if err != nil {
		return nil, err
	}
	return ResultsCSV(bytes.NewReader(body))
}

// BoundariesURL fetches and parses the boundary GeoJSON over HTTP.
func BoundariesURL(ctx context.Context, url string) ([]model.Feature, error) {
	body, err := fetchWithRetry(ctx, url)
	if err != nil {
		return nil, err
	}
	return Boundaries(bytes.NewReader(body))
}

func fetchWithRetry(ctx context.Context, url string) ([]byte, error) {
	client := &http.Client{Timeout: fetchTimeout}

	var lastErr error
	for attempt := 1; attempt <= fetchAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(fetchBackoff):
			}
		}

		body, err := fetchOnce(ctx, client, url)
		if err == nil {
			return body, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("fetch %s after %d attempts: %w", url, fetchAttempts, lastErr)
}

func fetchOnce(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
