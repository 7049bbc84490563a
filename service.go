package tab2pro

import (
	"context"
	"fmt"
	"sync"
)

// Service orchestrates the tab-to-ChordPro pipeline: adapter selection,
// page fetch, extraction, and rendering.
type Service struct {
	cfg     serviceConfig
	fetcher Fetcher

	mu      sync.Mutex
	browser *rodFetcher // created lazily on first browser fetch
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithBrowser).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{timeout: defaultFetchTimeout},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create the HTTP fetcher if not injected (e.g., by tests)
	if s.fetcher == nil {
		s.fetcher = newHTTPFetcher(s.cfg.httpClient, s.cfg.timeout)
	}

	return s
}

// Convert fetches the page at input.URL, extracts the song, and renders it
// to ChordPro. The context is used for cancellation and timeout.
func (s *Service) Convert(ctx context.Context, input Input) (*Result, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	adapter, err := adapterFor(input.URL, input.Version)
	if err != nil {
		return nil, err
	}

	pageHTML, err := s.fetch(ctx, input)
	if err != nil {
		return nil, err
	}

	song, err := adapter.Extract(pageHTML, input.URL)
	if err != nil {
		return nil, fmt.Errorf("extracting song: %w", err)
	}

	return &Result{
		Song:     song,
		ChordPro: RenderChordPro(song),
	}, nil
}

// fetch picks the fetcher for this input. An injected fetcher (WithFetcher)
// always wins; otherwise headless Chrome is used when requested.
func (s *Service) fetch(ctx context.Context, input Input) (string, error) {
	if _, injected := s.fetcher.(*httpFetcher); !injected {
		return s.fetcher.Fetch(ctx, input.URL)
	}
	if input.UseBrowser || s.cfg.browser {
		return s.browserFetcher().Fetch(ctx, input.URL)
	}
	return s.fetcher.Fetch(ctx, input.URL)
}

// browserFetcher lazily creates the rod fetcher so that Chrome is only
// launched when a browser fetch is actually requested.
func (s *Service) browserFetcher() *rodFetcher {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.browser == nil {
		s.browser = newRodFetcher(s.cfg.timeout)
	}
	return s.browser
}

// Close releases resources (the headless Chrome browser, if one was
// launched).
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.browser != nil {
		err := s.browser.Close()
		s.browser = nil
		return err
	}
	return nil
}
