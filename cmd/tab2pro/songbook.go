package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	tab2pro "github.com/ianchesal/tab2pro"
	"github.com/ianchesal/tab2pro/internal/fileutil"
	"github.com/ianchesal/tab2pro/internal/yamlutil"
)

// Sentinel errors for batch operations.
var (
	ErrReadSongbook  = errors.New("failed to read songbook file")
	ErrEmptySongbook = errors.New("songbook contains no songs")
)

// Songbook is the YAML batch input: a list of tab pages to convert.
type Songbook struct {
	Songs []SongEntry `yaml:"songs"`
}

// SongEntry is one song in a songbook.
type SongEntry struct {
	URL     string `yaml:"url"`
	Version int    `yaml:"version"` // 0 = first version
	Output  string `yaml:"output"`  // empty = <artist>-<title>.cho in the output dir
}

// batchResult holds the outcome of one batch conversion.
type batchResult struct {
	URL        string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// loadSongbook reads and parses a songbook YAML file.
func loadSongbook(path string) (*Songbook, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- songbook path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadSongbook, err)
	}

	var book Songbook
	if err := yamlutil.UnmarshalStrict(data, &book); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadSongbook, err)
	}

	if len(book.Songs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySongbook, path)
	}

	for i, entry := range book.Songs {
		if entry.URL == "" {
			return nil, fmt.Errorf("%w: songs[%d] has no url", ErrReadSongbook, i)
		}
	}

	return &book, nil
}

// runBatch converts every song in the songbook concurrently.
func runBatch(ctx context.Context, flags *cliFlags, st *settings, env *Environment) error {
	book, err := loadSongbook(flags.batch)
	if err != nil {
		return err
	}

	poolSize := st.workers
	if poolSize == 0 {
		poolSize = tab2pro.DefaultPoolSize()
	}
	if flags.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d\n", poolSize)
	}

	pool := tab2pro.NewServicePool(poolSize, serviceOptions(st)...)
	defer pool.Close()

	results := convertBatch(ctx, pool, book.Songs, st)
	failed := printResults(results, flags.quiet, flags.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%d of %d conversions failed", failed, len(results))
	}
	return nil
}

// convertBatch processes songs concurrently using the service pool.
func convertBatch(ctx context.Context, pool *tab2pro.ServicePool, entries []SongEntry, st *settings) []batchResult {
	if len(entries) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(entries) {
		concurrency = len(entries)
	}

	results := make([]batchResult, len(entries))
	var wg sync.WaitGroup
	jobs := make(chan int, len(entries))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			svc := pool.Acquire()
			defer pool.Release(svc)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = batchResult{URL: entries[idx].URL, Err: ctx.Err()}
					continue
				}
				results[idx] = convertEntry(ctx, svc, entries[idx], st)
			}
		}()
	}

	for i := range entries {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertEntry converts a single songbook entry and writes its output.
func convertEntry(ctx context.Context, svc Converter, entry SongEntry, st *settings) batchResult {
	start := time.Now()
	result := batchResult{URL: entry.URL}

	version := entry.Version
	if version == 0 {
		version = 1
	}

	converted, err := svc.Convert(ctx, tab2pro.Input{
		URL:        entry.URL,
		Version:    version,
		UseBrowser: st.browser,
	})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	outPath := entry.Output
	if outPath == "" {
		outPath = filepath.Join(st.outputDir, fileutil.SongFilename(converted.Song.Artist, converted.Song.Title))
	}

	if err := writeChordPro(outPath, converted.ChordPro); err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	result.OutputPath = outPath
	result.Duration = time.Since(start)
	return result
}

// printResults reports each conversion's outcome and returns the failure
// count.
func printResults(results []batchResult, quiet, verbose bool, env *Environment) int {
	failed := 0

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.URL, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.URL, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", len(results)-failed, failed)
	}

	return failed
}
