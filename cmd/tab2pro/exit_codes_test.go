package main

import (
	"fmt"
	"os"
	"strings"
	"testing"

	tab2pro "github.com/ianchesal/tab2pro"
	"github.com/ianchesal/tab2pro/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"browser connect", fmt.Errorf("x: %w", tab2pro.ErrBrowserConnect), ExitBrowser},
		{"page load", tab2pro.ErrPageLoad, ExitBrowser},
		{"fetch error", &tab2pro.FetchError{URL: "u", StatusCode: 403}, ExitFetch},
		{"parse error", fmt.Errorf("extracting song: %w", &tab2pro.ParseError{URL: "u", Reason: "r"}), ExitParse},
		{"file not found", fmt.Errorf("x: %w", os.ErrNotExist), ExitIO},
		{"songbook read", ErrReadSongbook, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"empty url", tab2pro.ErrEmptyURL, ExitUsage},
		{"unsupported site", fmt.Errorf("x: %w", tab2pro.ErrUnsupportedSite), ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"invalid args", ErrInvalidArgs, ExitUsage},
		{"empty songbook", ErrEmptySongbook, ExitUsage},
		{"unknown error", fmt.Errorf("something else"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestErrorWithHints(t *testing.T) {
	t.Parallel()

	denied := &tab2pro.FetchError{URL: "u", StatusCode: 403}
	if msg := errorWithHints(denied); !strings.Contains(msg, "--browser") {
		t.Errorf("errorWithHints(403) = %q, want --browser hint", msg)
	}

	ok := &tab2pro.FetchError{URL: "u", StatusCode: 500}
	if msg := errorWithHints(ok); strings.Contains(msg, "hint:") {
		t.Errorf("errorWithHints(500) = %q, want no hint", msg)
	}

	unsupported := fmt.Errorf("x: %w", tab2pro.ErrUnsupportedSite)
	if msg := errorWithHints(unsupported); !strings.Contains(msg, "supported sites") {
		t.Errorf("errorWithHints(unsupported) = %q, want site list", msg)
	}

	slow := fmt.Errorf("x: %w", tab2pro.ErrPageLoad)
	if msg := errorWithHints(slow); !strings.Contains(msg, "--timeout") {
		t.Errorf("errorWithHints(page load) = %q, want --timeout hint", msg)
	}

	plain := fmt.Errorf("boom")
	if msg := errorWithHints(plain); msg != "boom" {
		t.Errorf("errorWithHints(plain) = %q, want %q", msg, "boom")
	}
}
