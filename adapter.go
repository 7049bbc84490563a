package tab2pro

import "fmt"

// SiteAdapter extracts a canonical Song from one site's pages. By the time
// Extract returns, all chords are embedded inline within Line.Content using
// bracket notation ([D], [Am7], ...).
type SiteAdapter interface {
	// CanHandle reports whether this adapter recognizes the URL.
	CanHandle(url string) bool

	// Extract parses fetched HTML into a Song. Returns *ParseError when
	// the expected content cannot be found on the page.
	Extract(html, url string) (*Song, error)
}

// Compile-time interface checks.
var (
	_ SiteAdapter = (*UltimateGuitarAdapter)(nil)
	_ SiteAdapter = (*RukindAdapter)(nil)
	_ SiteAdapter = (*DylanchordsAdapter)(nil)
)

// adapterFor returns the adapter for url. version selects among multiple
// transcription versions on sites that host several per song (1-indexed).
func adapterFor(url string, version int) (SiteAdapter, error) {
	adapters := []SiteAdapter{
		&UltimateGuitarAdapter{},
		&RukindAdapter{},
		&DylanchordsAdapter{Version: version},
	}
	for _, a := range adapters {
		if a.CanHandle(url) {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedSite, url)
}
