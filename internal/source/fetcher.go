// Package source loads the marketing dataset the dashboard views read.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"mkt-dashboard/internal/models"
)

// Fetcher returns one marketing document per call. Implementations never
// retry; callers decide what a failure means for their view.
type Fetcher interface {
	Fetch(ctx context.Context) (*models.MarketingData, error)
}

// HTTPClient is satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func NewHTTPClient(timeout time.Duration) HTTPClient {
	return &http.Client{Timeout: timeout}
}

// errBodyLimit caps how much of an error response ends up in the message.
const errBodyLimit = 512

type HTTPFetcher struct {
	client HTTPClient
	url    string
}

func NewHTTPFetcher(client HTTPClient, url string) *HTTPFetcher {
	return &HTTPFetcher{client: client, url: url}
}

func (f *HTTPFetcher) Fetch(ctx context.Context) (*models.MarketingData, error) {
	if f.url == "" {
		return nil, errors.New("marketing data url not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch marketing data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, errBodyLimit))
		return nil, fmt.Errorf("fetch marketing data: status %d: %s", resp.StatusCode, string(b))
	}

	return Decode(resp.Body)
}

type FileFetcher struct {
	path string
}

func NewFileFetcher(path string) *FileFetcher {
	return &FileFetcher{path: path}
}

func (f *FileFetcher) Fetch(ctx context.Context) (*models.MarketingData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("open marketing data: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode reads one MarketingData document. Numeric fields are lenient; only
// a document that is not JSON at all is an error.
func Decode(r io.Reader) (*models.MarketingData, error) {
	var data models.MarketingData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode marketing data: %w", err)
	}
	return &data, nil
}
