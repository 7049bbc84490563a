package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Environment bundles the CLI's output streams for testability.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
}

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath     string // TAB2PRO_CONFIG: config file path
	OutputDir      string // TAB2PRO_OUTPUT_DIR: default output directory
	TimeoutSeconds int    // TAB2PRO_TIMEOUT: per-fetch timeout in seconds
	Workers        int    // TAB2PRO_WORKERS: parallel workers
	Browser        bool   // TAB2PRO_BROWSER: fetch through headless Chrome
}

// knownEnvVars lists valid TAB2PRO_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"TAB2PRO_CONFIG":     true,
	"TAB2PRO_OUTPUT_DIR": true,
	"TAB2PRO_TIMEOUT":    true,
	"TAB2PRO_WORKERS":    true,
	"TAB2PRO_BROWSER":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized TAB2PRO_* values.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath:     os.Getenv("TAB2PRO_CONFIG"),
		OutputDir:      os.Getenv("TAB2PRO_OUTPUT_DIR"),
		TimeoutSeconds: envInt("TAB2PRO_TIMEOUT"),
		Workers:        envInt("TAB2PRO_WORKERS"),
		Browser:        envBool("TAB2PRO_BROWSER"),
	}
}

// envInt parses an integer environment variable; invalid or missing
// values yield zero.
func envInt(name string) int {
	v := os.Getenv(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// envBool treats "1", "true", and "yes" (case-insensitive) as true.
func envBool(name string) bool {
	switch strings.ToLower(os.Getenv(name)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// warnUnknownEnvVars prints a warning for TAB2PRO_-prefixed variables that
// tab2pro does not recognize, to catch typos like TAB2PRO_TIMOUT.
func warnUnknownEnvVars(stderr io.Writer) {
	for _, entry := range os.Environ() {
		name, _, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(name, "TAB2PRO_") {
			continue
		}
		if !knownEnvVars[name] {
			fmt.Fprintf(stderr, "warning: unknown environment variable %s (ignored)\n", name)
		}
	}
}
