package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tab2pro "github.com/ianchesal/tab2pro"
)

func writeSongbook(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "songbook.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSongbook(t *testing.T) {
	t.Parallel()

	path := writeSongbook(t, `
songs:
  - url: https://tabs.ultimate-guitar.com/tab/the-band/the-weight-chords-47822
  - url: https://dylanchords.com/20_infidels/jokerman/
    version: 2
    output: jokerman-v2.cho
`)

	book, err := loadSongbook(path)
	if err != nil {
		t.Fatalf("loadSongbook: %v", err)
	}

	if len(book.Songs) != 2 {
		t.Fatalf("got %d songs, want 2", len(book.Songs))
	}
	if book.Songs[0].Version != 0 || book.Songs[0].Output != "" {
		t.Errorf("first entry = %+v, want zero version and output", book.Songs[0])
	}
	if book.Songs[1].Version != 2 || book.Songs[1].Output != "jokerman-v2.cho" {
		t.Errorf("second entry = %+v", book.Songs[1])
	}
}

func TestLoadSongbookErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := loadSongbook(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrReadSongbook) {
			t.Errorf("error = %v, want ErrReadSongbook", err)
		}
	})

	t.Run("empty songbook", func(t *testing.T) {
		t.Parallel()
		path := writeSongbook(t, "songs: []\n")
		_, err := loadSongbook(path)
		if !errors.Is(err, ErrEmptySongbook) {
			t.Errorf("error = %v, want ErrEmptySongbook", err)
		}
	})

	t.Run("entry without url", func(t *testing.T) {
		t.Parallel()
		path := writeSongbook(t, "songs:\n  - version: 2\n")
		_, err := loadSongbook(path)
		if !errors.Is(err, ErrReadSongbook) {
			t.Errorf("error = %v, want ErrReadSongbook", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()
		path := writeSongbook(t, "songs:\n  - url: https://x\n    bogus: 1\n")
		_, err := loadSongbook(path)
		if !errors.Is(err, ErrReadSongbook) {
			t.Errorf("error = %v, want ErrReadSongbook", err)
		}
	})
}

// fakeConverter satisfies Converter without any network or browser work.
type fakeConverter struct {
	err   error
	calls []tab2pro.Input
}

func (f *fakeConverter) Convert(_ context.Context, input tab2pro.Input) (*tab2pro.Result, error) {
	f.calls = append(f.calls, input)
	if f.err != nil {
		return nil, f.err
	}
	song := &tab2pro.Song{Title: "The Weight", Artist: "The Band"}
	return &tab2pro.Result{Song: song, ChordPro: tab2pro.RenderChordPro(song)}, nil
}

func TestConvertEntry(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	st := &settings{outputDir: dir}
	fake := &fakeConverter{}

	result := convertEntry(context.Background(), fake, SongEntry{URL: "https://x"}, st)
	if result.Err != nil {
		t.Fatalf("convertEntry error: %v", result.Err)
	}

	want := filepath.Join(dir, "the-band-the-weight.cho")
	if result.OutputPath != want {
		t.Errorf("OutputPath = %q, want %q", result.OutputPath, want)
	}

	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "{title: The Weight}") {
		t.Errorf("output content = %q", data)
	}

	// Zero version in the songbook means version 1
	if len(fake.calls) != 1 || fake.calls[0].Version != 1 {
		t.Errorf("Convert calls = %+v, want single call with version 1", fake.calls)
	}
}

func TestConvertEntryExplicitOutput(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "custom.cho")
	st := &settings{}
	fake := &fakeConverter{}

	result := convertEntry(context.Background(), fake, SongEntry{URL: "https://x", Version: 3, Output: out}, st)
	if result.Err != nil {
		t.Fatalf("convertEntry error: %v", result.Err)
	}
	if result.OutputPath != out {
		t.Errorf("OutputPath = %q, want %q", result.OutputPath, out)
	}
	if fake.calls[0].Version != 3 {
		t.Errorf("Version = %d, want 3", fake.calls[0].Version)
	}
}

func TestConvertEntryError(t *testing.T) {
	t.Parallel()

	fake := &fakeConverter{err: fmt.Errorf("boom")}
	result := convertEntry(context.Background(), fake, SongEntry{URL: "https://x"}, &settings{})

	if result.Err == nil {
		t.Error("convertEntry did not propagate the error")
	}
	if result.OutputPath != "" {
		t.Errorf("OutputPath = %q, want empty on failure", result.OutputPath)
	}
}

func TestPrintResults(t *testing.T) {
	t.Parallel()

	results := []batchResult{
		{URL: "https://a", OutputPath: "a.cho"},
		{URL: "https://b", Err: fmt.Errorf("fetch failed")},
		{URL: "https://c", OutputPath: "c.cho"},
	}

	var stdout, stderr strings.Builder
	env := &Environment{Stdout: &stdout, Stderr: &stderr}

	failed := printResults(results, false, false, env)
	if failed != 1 {
		t.Errorf("failed = %d, want 1", failed)
	}

	if !strings.Contains(stderr.String(), "FAILED https://b") {
		t.Errorf("stderr = %q, want FAILED line", stderr.String())
	}
	if !strings.Contains(stdout.String(), "Created a.cho") || !strings.Contains(stdout.String(), "Created c.cho") {
		t.Errorf("stdout = %q, want Created lines", stdout.String())
	}
	if !strings.Contains(stdout.String(), "2 succeeded, 1 failed") {
		t.Errorf("stdout = %q, want summary line", stdout.String())
	}
}

func TestPrintResultsQuiet(t *testing.T) {
	t.Parallel()

	results := []batchResult{
		{URL: "https://a", OutputPath: "a.cho"},
		{URL: "https://b", Err: fmt.Errorf("boom")},
	}

	var stdout, stderr strings.Builder
	env := &Environment{Stdout: &stdout, Stderr: &stderr}

	failed := printResults(results, true, false, env)
	if failed != 1 {
		t.Errorf("failed = %d, want 1", failed)
	}
	if stdout.String() != "" {
		t.Errorf("stdout = %q, want empty in quiet mode", stdout.String())
	}
	if !strings.Contains(stderr.String(), "FAILED") {
		t.Error("quiet mode must still report failures to stderr")
	}
}
