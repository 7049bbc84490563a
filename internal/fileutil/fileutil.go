// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"strings"
	"unicode"
)

// chordProExtension is the conventional ChordPro file extension.
const chordProExtension = ".cho"

// SongFilename builds the default output filename for a song:
// "<artist>-<title>.cho", lowercased and slugged. Empty parts are dropped;
// a song with no usable artist or title becomes "song.cho".
//
// Examples:
//   - ("The Band", "The Weight") -> "the-band-the-weight.cho"
//   - ("", "Dark Star")          -> "dark-star.cho"
//   - ("", "")                   -> "song.cho"
func SongFilename(artist, title string) string {
	var parts []string
	if s := Slugify(artist); s != "" {
		parts = append(parts, s)
	}
	if s := Slugify(title); s != "" {
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		return "song" + chordProExtension
	}
	return strings.Join(parts, "-") + chordProExtension
}

// Slugify lowercases s and replaces every run of non-alphanumeric
// characters with a single hyphen. Leading and trailing hyphens are
// stripped.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteRune('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsURL returns true if the string looks like a URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// EnsureDir creates dir (and parents) if it does not exist.
func EnsureDir(dir string, perm os.FileMode) error {
	if dir == "" {
		return nil
	}
	return os.MkdirAll(dir, perm)
}
