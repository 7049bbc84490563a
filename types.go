package tab2pro

import (
	"net/http"
	"time"
)

// Input contains conversion parameters for one page.
type Input struct {
	URL string // tab page URL (required)

	// Version selects among multiple transcription versions on sites that
	// host several per song (1-indexed). Zero means the first version.
	Version int

	// UseBrowser fetches the page through headless Chrome instead of plain
	// HTTP. Use it for sites that 403 non-browser clients.
	UseBrowser bool
}

// validate checks that required fields are present and valid.
func (in Input) validate() error {
	if in.URL == "" {
		return ErrEmptyURL
	}
	if in.Version < 0 {
		return ErrInvalidVersion
	}
	return nil
}

// Result holds the outcome of a conversion: the canonical Song and its
// ChordPro rendering.
type Result struct {
	Song     *Song
	ChordPro string
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout    time.Duration
	browser    bool
	httpClient *http.Client
}

// WithTimeout sets the per-fetch timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("tab2pro: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithBrowser makes every fetch go through headless Chrome, regardless of
// Input.UseBrowser.
func WithBrowser() Option {
	return func(s *Service) {
		s.cfg.browser = true
	}
}

// WithHTTPClient replaces the default HTTP client used for plain fetches.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		s.cfg.httpClient = client
	}
}

// WithFetcher replaces the fetcher entirely (e.g., by tests). It takes
// precedence over UseBrowser and WithBrowser.
func WithFetcher(f Fetcher) Option {
	return func(s *Service) {
		s.fetcher = f
	}
}
