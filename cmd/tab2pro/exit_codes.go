package main

import (
	"errors"
	"os"

	tab2pro "github.com/ianchesal/tab2pro"
	"github.com/ianchesal/tab2pro/internal/config"
	"github.com/ianchesal/tab2pro/internal/hints"
)

// Exit codes for the tab2pro CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error (including partial batch failure)
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitFetch   = 4 // HTTP/transport failure fetching the page
	ExitParse   = 5 // Page fetched but expected content not found
	ExitBrowser = 6 // Headless browser errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is/As to check wrapped errors, so callers must wrap with
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 6)
	if errors.Is(err, tab2pro.ErrBrowserConnect) ||
		errors.Is(err, tab2pro.ErrPageCreate) ||
		errors.Is(err, tab2pro.ErrPageLoad) {
		return ExitBrowser
	}

	// Transport errors (exit 4)
	var fetchErr *tab2pro.FetchError
	if errors.As(err, &fetchErr) {
		return ExitFetch
	}

	// Content-not-found errors (exit 5)
	var parseErr *tab2pro.ParseError
	if errors.As(err, &parseErr) {
		return ExitParse
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadSongbook) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, tab2pro.ErrEmptyURL) ||
		errors.Is(err, tab2pro.ErrInvalidVersion) ||
		errors.Is(err, tab2pro.ErrUnsupportedSite) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, ErrInvalidArgs) ||
		errors.Is(err, ErrBatchWithURL) ||
		errors.Is(err, ErrBatchWithOutput) ||
		errors.Is(err, ErrBatchWithStdout) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrEmptySongbook) {
		return ExitUsage
	}

	return ExitGeneral
}

// errorWithHints renders err with an actionable hint suffix when one
// applies.
func errorWithHints(err error) string {
	msg := err.Error()

	var fetchErr *tab2pro.FetchError
	if errors.As(err, &fetchErr) {
		return msg + hints.ForFetchDenied(fetchErr.StatusCode)
	}
	if errors.Is(err, tab2pro.ErrBrowserConnect) {
		return msg + hints.ForBrowserConnect()
	}
	if errors.Is(err, tab2pro.ErrUnsupportedSite) {
		return msg + hints.ForUnsupportedSite()
	}
	if errors.Is(err, tab2pro.ErrPageLoad) {
		return msg + hints.ForTimeout()
	}

	return msg
}
