package tab2pro

import (
	"regexp"
	"strings"
)

// LineType is the classification of a single line of raw tab text.
type LineType int

// The five line categories. Every line classifies into exactly one of
// these; LineLyric is the fallback for anything unrecognized, so
// classification is total.
const (
	LineBlank   LineType = iota // empty or whitespace only
	LineSection                 // section header: [Verse 1], Chorus:
	LineChord                   // chord-only line: [D]  [G]  [Am7]  or  D  G  Am7
	LineTab                     // ASCII guitar tab line: e|--0--1--
	LineLyric                   // everything else
)

// String returns the category name, for test output and debugging.
func (t LineType) String() string {
	switch t {
	case LineBlank:
		return "BLANK"
	case LineSection:
		return "SECTION"
	case LineChord:
		return "CHORD"
	case LineTab:
		return "TAB"
	case LineLyric:
		return "LYRIC"
	}
	return "UNKNOWN"
}

// Valid chord name without brackets.
// Handles:
//
//	Standard:          A, Am, Am7, Amaj7, Asus4, G/B, C#m7
//	Lowercase bass:    D/a, C/b, D/f#   (Dylanchords style)
//	Standalone bass:   /b, /a, /f#      (Dylanchords continuation chords)
var chordNameRE = regexp.MustCompile(
	`^(?:` +
		`[A-G][#b]?(?:m(?:aj)?|aug|dim|sus|add)?\d*(?:/[A-Ga-g][#b]?)?` +
		`|` +
		`/[A-Ga-g][#b]?` + // standalone slash-bass token, e.g. /b, /f#
		`)$`,
)

// A bracketed chord token: [D], [Am7], [G/B]
// (brackets whose content matches a chord name).
var bracketedChordTokenRE = regexp.MustCompile(
	`\[([A-G][#b]?` +
		`(?:m(?:aj)?|aug|dim|sus|add)?` +
		`\d*` +
		`(?:/[A-G][#b]?)?)\]`,
)

// Any [token] group regardless of content.
var anyBracketRE = regexp.MustCompile(`\[([^\]]+)\]`)

// A line that is exactly one [token] group.
var soleBracketRE = regexp.MustCompile(`^\[([^\]]+)\]$`)

// Known section-header keywords (case-insensitive).
var sectionKeywordsRE = regexp.MustCompile(
	`(?i)^(?:Verse|Chorus|Bridge|Intro|Outro|Solo|Interlude|Instrumental|` +
		`Pre-?Chorus|Tag|Coda|Refrain|Hook)(?:\s+\d+)?$`,
)

// ASCII guitar tab line. Two formats appear in the wild:
//
//	Standard:  e|---0---1---  (string name + pipe + fret chars)
//	Rukind:    E---------2--  (string name + dashes, no leading pipe)
var tabLineRE = regexp.MustCompile(`^[eEBGDAd](?:\|[-\d]|--)`)

// Tab notation legend line: "(^) Slide Up  (\) Slide Down  (h) Hammer On".
// These appear on many tab sites as a key to the notation symbols used.
var tabLegendRE = regexp.MustCompile(`\([\\^hpb]\)\s+\w`)

// IsChordName reports whether s is a valid bare chord name, e.g. "Am7",
// "G/B", or a standalone slash-bass token like "/f#".
func IsChordName(s string) bool {
	return chordNameRE.MatchString(s)
}

// ClassifyLine classifies a single line of raw tab text.
//
// Tab detection runs before the style-specific checks because ASCII tab
// lines can otherwise be mistaken for chord or lyric lines. Ambiguous or
// unrecognized shapes fall back to LineLyric: misclassifying a lyric as a
// chord or section line damages output far more than leaving the odd chord
// line unmerged.
func ClassifyLine(line string, style NotationStyle) LineType {
	stripped := strings.TrimSpace(line)
	if stripped == "" {
		return LineBlank
	}
	if tabLineRE.MatchString(stripped) || tabLegendRE.MatchString(stripped) {
		return LineTab
	}
	if style == StyleBracketed {
		return classifyBracketed(stripped)
	}
	return classifyUnbracketed(stripped)
}

func classifyBracketed(line string) LineType {
	matches := anyBracketRE.FindAllStringSubmatch(line, -1)
	remainder := strings.TrimSpace(anyBracketRE.ReplaceAllString(line, ""))

	if len(matches) == 0 {
		return LineLyric
	}

	if remainder != "" {
		// Non-bracket text alongside bracket tokens: lyric with inline
		// chords, or plain lyric. Either way it's content, not a chord line.
		return LineLyric
	}

	// Entire line is [token] groups.
	if len(matches) == 1 && !IsChordName(matches[0][1]) {
		// Single non-chord bracket: section header like [Verse 1], [Chorus]
		return LineSection
	}

	allChords := true
	for _, m := range matches {
		if !IsChordName(m[1]) {
			allChords = false
			break
		}
	}
	if allChords {
		return LineChord
	}

	// Shouldn't normally occur; treat as lyric to be safe
	return LineLyric
}

func classifyUnbracketed(line string) LineType {
	// Handle [Label] style sections that appear even in unbracketed content
	if m := soleBracketRE.FindStringSubmatch(line); m != nil && !IsChordName(m[1]) {
		return LineSection
	}

	// Plain section keyword: "Verse 1", "Chorus:", "Bridge"
	candidate := strings.TrimSpace(strings.TrimRight(line, ":"))
	if sectionKeywordsRE.MatchString(candidate) {
		return LineSection
	}

	// All whitespace-separated tokens are chord names: chord line
	tokens := strings.Fields(line)
	if len(tokens) > 0 {
		allChords := true
		for _, t := range tokens {
			if !IsChordName(t) {
				allChords = false
				break
			}
		}
		if allChords {
			return LineChord
		}
	}

	return LineLyric
}
