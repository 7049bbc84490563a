package tab2pro

import (
	"regexp"
	"unicode/utf8"
)

// ChordOffset is one chord occurrence on a chord line: the chord name and
// the column (in characters) of its opening bracket or first letter in the
// original, unmodified line.
type ChordOffset struct {
	Offset int
	Name   string
}

var nonSpaceRunRE = regexp.MustCompile(`\S+`)

// ExtractChords returns the (column, name) pairs from a chord line, left to
// right in ascending offset order. The offsets are what MergeChordLyric
// uses to position each chord inside the lyric.
//
// Only meaningful for lines classified LineChord; on other input the
// results are defensive and callers should ignore them.
func ExtractChords(line string, style NotationStyle) []ChordOffset {
	var chords []ChordOffset

	if style == StyleBracketed {
		for _, m := range bracketedChordTokenRE.FindAllStringSubmatchIndex(line, -1) {
			chords = append(chords, ChordOffset{
				Offset: utf8.RuneCountInString(line[:m[0]]),
				Name:   line[m[2]:m[3]],
			})
		}
		return chords
	}

	// unbracketed: each non-whitespace run that is a valid chord name.
	// Runs that aren't chord-shaped are silently skipped.
	for _, m := range nonSpaceRunRE.FindAllStringIndex(line, -1) {
		token := line[m[0]:m[1]]
		if !IsChordName(token) {
			continue
		}
		chords = append(chords, ChordOffset{
			Offset: utf8.RuneCountInString(line[:m[0]]),
			Name:   token,
		})
	}
	return chords
}
