package tab2pro

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Fetcher retrieves the raw HTML of a page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Compile-time interface checks.
var (
	_ Fetcher = (*httpFetcher)(nil)
	_ Fetcher = (*rodFetcher)(nil)
)

// defaultFetchTimeout is used when no timeout is specified.
const defaultFetchTimeout = 15 * time.Second

// Browser-like request headers. Some tab sites (Ultimate Guitar in
// particular) return 403 to clients that don't look like a browser.
var fetchHeaders = map[string]string{
	"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/120.0.0.0 Safari/537.36",
	"Accept": "text/html,application/xhtml+xml,application/xml;q=0.9," +
		"image/webp,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.9",
	"Accept-Encoding": "gzip",
	"Referer":         "https://www.google.com/",
}

// httpFetcher fetches pages over plain HTTP with browser-like headers.
type httpFetcher struct {
	client *http.Client
}

func newHTTPFetcher(client *http.Client, timeout time.Duration) *httpFetcher {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &httpFetcher{client: client}
}

// Fetch GETs the page and returns its body as a string. Redirects are
// followed by the underlying client. Non-200 responses and transport
// failures are reported as *FetchError.
func (f *httpFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: fmt.Errorf("creating request: %w", err)}
	}
	for k, v := range fetchHeaders {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	var reader io.Reader = resp.Body
	// Accept-Encoding is set explicitly, so the transport does not
	// decompress for us.
	if strings.Contains(resp.Header.Get("Content-Encoding"), "gzip") {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return "", &FetchError{URL: url, Err: fmt.Errorf("gzip reader: %w", err)}
		}
		defer gz.Close()
		reader = gz
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", &FetchError{URL: url, Err: fmt.Errorf("reading body: %w", err)}
	}

	return string(body), nil
}
