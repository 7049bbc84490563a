package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tab2pro "github.com/ianchesal/tab2pro"
	"github.com/ianchesal/tab2pro/internal/config"
	"github.com/ianchesal/tab2pro/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrWriteOutput = errors.New("failed to write output file")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input tab2pro.Input) (*tab2pro.Result, error)
}

// Compile-time interface implementation check.
var _ Converter = (*tab2pro.Service)(nil)

// settings holds the effective configuration after merging config file,
// environment, and flags (flags win, then environment, then file).
type settings struct {
	outputDir string
	stdout    bool
	browser   bool
	timeout   time.Duration
	workers   int
}

// run dispatches to single-URL or batch conversion.
func run(ctx context.Context, args []string, flags *cliFlags, env *Environment) error {
	st, err := resolveSettings(flags, loadEnvConfig())
	if err != nil {
		return err
	}

	if flags.batch != "" {
		return runBatch(ctx, flags, st, env)
	}
	return runSingle(ctx, args[0], flags, st, env)
}

// runSingle converts one URL.
func runSingle(ctx context.Context, url string, flags *cliFlags, st *settings, env *Environment) error {
	svc := tab2pro.New(serviceOptions(st)...)
	defer svc.Close()

	if flags.verbose {
		fmt.Fprintf(env.Stderr, "Fetching %s\n", url)
	}

	result, err := svc.Convert(ctx, tab2pro.Input{
		URL:        url,
		Version:    flags.songVersion,
		UseBrowser: st.browser,
	})
	if err != nil {
		return err
	}

	if st.stdout {
		fmt.Fprint(env.Stdout, result.ChordPro)
		return nil
	}

	outPath := flags.output
	if outPath == "" {
		outPath = filepath.Join(st.outputDir, fileutil.SongFilename(result.Song.Artist, result.Song.Title))
	}

	if err := writeChordPro(outPath, result.ChordPro); err != nil {
		return err
	}

	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", outPath)
	}
	return nil
}

// writeChordPro writes content to path, creating parent directories.
func writeChordPro(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := fileutil.EnsureDir(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}
	// #nosec G306 -- ChordPro files are meant to be readable
	if err := os.WriteFile(path, []byte(content), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// serviceOptions translates settings into library options.
func serviceOptions(st *settings) []tab2pro.Option {
	var opts []tab2pro.Option
	if st.timeout > 0 {
		opts = append(opts, tab2pro.WithTimeout(st.timeout))
	}
	return opts
}

// resolveSettings merges the config file, TAB2PRO_* environment variables,
// and command-line flags, in increasing order of precedence.
func resolveSettings(flags *cliFlags, envCfg *envConfig) (*settings, error) {
	cfg, err := resolveConfig(flags.config, envCfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	st := &settings{
		outputDir: cfg.Output.DefaultDir,
		stdout:    cfg.Output.Stdout,
		browser:   cfg.Fetch.Browser,
		timeout:   cfg.Fetch.Timeout(),
		workers:   cfg.Workers,
	}

	// Environment overrides
	if envCfg.OutputDir != "" {
		st.outputDir = envCfg.OutputDir
	}
	if envCfg.TimeoutSeconds > 0 {
		st.timeout = time.Duration(envCfg.TimeoutSeconds) * time.Second
	}
	if envCfg.Workers > 0 {
		st.workers = envCfg.Workers
	}
	if envCfg.Browser {
		st.browser = true
	}

	// Flag overrides
	if flags.outputDir != "" {
		st.outputDir = flags.outputDir
	}
	if flags.timeout > 0 {
		st.timeout = flags.timeout
	}
	if flags.workers > 0 {
		st.workers = flags.workers
	}
	if flags.stdout {
		st.stdout = true
	}
	if flags.browser {
		st.browser = true
	}

	return st, nil
}

// resolveConfig loads the config file. An explicitly requested config
// (flag or environment) must exist; otherwise a missing default config is
// not an error.
func resolveConfig(flagPath, envPath string) (*config.Config, error) {
	switch {
	case flagPath != "":
		return config.LoadConfig(flagPath)
	case envPath != "":
		return config.LoadConfig(envPath)
	}

	cfg, err := config.LoadConfig("config")
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return config.DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}
