package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for flag validation.
var (
	ErrInvalidArgs        = errors.New("expected exactly one URL (or --batch FILE)")
	ErrBatchWithURL       = errors.New("--batch cannot be combined with a URL argument")
	ErrBatchWithOutput    = errors.New("--batch cannot be combined with -o/--output (set output per song in the songbook)")
	ErrBatchWithStdout    = errors.New("--batch cannot be combined with --stdout")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

const usageText = `Usage: tab2pro [flags] URL
       tab2pro [flags] --batch songbook.yaml

Convert a chord tab page to ChordPro format.

Supported sites:
  - tabs.ultimate-guitar.com
  - rukind.com
  - dylanchords.com

Flags:
`

// cliFlags holds all parsed command-line flags.
type cliFlags struct {
	output      string        // -o/--output: output file path
	outputDir   string        // --output-dir: directory for default-named output
	stdout      bool          // --stdout: print to stdout instead of writing a file
	browser     bool          // --browser: fetch through headless Chrome
	songVersion int           // --version: pick version N on multi-version sites
	batch       string        // --batch: songbook YAML for batch conversion
	workers     int           // --workers: parallel workers for batch mode
	timeout     time.Duration // --timeout: per-fetch timeout
	config      string        // --config: config file name or path
	quiet       bool
	verbose     bool
	appVersion  bool // --app-version: print build version and exit
}

// parseFlags parses args (including the program name at args[0]) and
// returns the flags, the remaining positional arguments, and any parse or
// validation error.
func parseFlags(args []string) (*cliFlags, []string, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("tab2pro", flag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
		fmt.Fprint(os.Stderr, fs.FlagUsages())
	}

	fs.StringVarP(&flags.output, "output", "o", "", "output file path (default: <artist>-<title>.cho)")
	fs.StringVar(&flags.outputDir, "output-dir", "", "directory for default-named output files")
	fs.BoolVar(&flags.stdout, "stdout", false, "print to stdout instead of writing a file")
	fs.BoolVar(&flags.browser, "browser", false, "use a headless browser (fallback for 403s)")
	fs.IntVar(&flags.songVersion, "version", 1, "for sites with multiple song versions, pick version N")
	fs.StringVar(&flags.batch, "batch", "", "convert every song in a YAML songbook file")
	fs.IntVar(&flags.workers, "workers", 0, "parallel workers for batch mode (0 = auto)")
	fs.DurationVar(&flags.timeout, "timeout", 0, "per-fetch timeout (0 = default)")
	fs.StringVar(&flags.config, "config", "", "config file name or path")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress non-error output")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output")
	fs.BoolVar(&flags.appVersion, "app-version", false, "print the tab2pro version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	positional := fs.Args()
	if flags.appVersion {
		return flags, positional, nil
	}

	if err := validateFlags(flags, positional); err != nil {
		return nil, nil, err
	}

	return flags, positional, nil
}

// validateFlags checks flag combinations that parse cleanly but make no
// sense together.
func validateFlags(flags *cliFlags, positional []string) error {
	if flags.batch != "" {
		switch {
		case len(positional) > 0:
			return ErrBatchWithURL
		case flags.output != "":
			return ErrBatchWithOutput
		case flags.stdout:
			return ErrBatchWithStdout
		}
	} else if len(positional) != 1 {
		return ErrInvalidArgs
	}

	if flags.workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkerCount, flags.workers)
	}
	if flags.songVersion < 1 {
		return fmt.Errorf("invalid --version: %d (must be 1 or greater)", flags.songVersion)
	}

	return nil
}
