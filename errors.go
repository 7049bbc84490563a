package tab2pro

import (
	"errors"
	"fmt"
)

// Sentinel errors for library operations.
var (
	ErrEmptyURL        = errors.New("url cannot be empty")
	ErrInvalidVersion  = errors.New("song version must be 1 or greater")
	ErrUnsupportedSite = errors.New("no adapter found for URL")

	// Browser fetch errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
)

// FetchError reports an HTTP-level failure retrieving a page. StatusCode is
// zero when the request never produced a response (network error).
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("HTTP %d fetching %s", e.StatusCode, e.URL)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports that expected content could not be extracted from a
// page that was fetched successfully.
type ParseError struct {
	URL    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error for %s: %s", e.URL, e.Reason)
}
