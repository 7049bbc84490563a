package tab2pro

import "strings"

// ParseSections parses raw tab text into an ordered list of Sections. This
// is the shared core pipeline used by every site adapter; by the time it
// returns, every Line has its chords embedded inline in bracket notation.
//
// The walk over the lines is a small state machine with one lookahead:
//
//  1. Classify each line (ClassifyLine).
//  2. SECTION lines close the current section (if it has content) and open
//     a new one labelled with the cleaned heading text. A heading whose
//     section never gains a line is discarded.
//  3. A CHORD line immediately followed by a LYRIC line is merged into one
//     inline Line and both are consumed. A CHORD line followed by anything
//     else (another chord line, a section, blank, end of input) becomes a
//     chord-only Line: "[D] [G] [A]".
//  4. LYRIC lines with no preceding chord line are emitted verbatim.
//  5. BLANK and TAB lines are skipped.
//
// Malformed or sparse input never fails; the result is simply as much
// structure as the heuristics can recover. Text that yields no content at
// all produces an empty slice.
func ParseSections(text string, style NotationStyle) []Section {
	lines := splitLines(text)

	var sections []Section
	current := Section{}

	i := 0
	for i < len(lines) {
		switch ClassifyLine(lines[i], style) {
		case LineBlank, LineTab:
			i++

		case LineSection:
			if len(current.Lines) > 0 {
				sections = append(sections, current)
			}
			current = Section{Label: sectionLabel(lines[i])}
			i++

		case LineChord:
			if i+1 < len(lines) && ClassifyLine(lines[i+1], style) == LineLyric {
				merged := MergeChordLyric(lines[i], lines[i+1], style)
				current.Lines = append(current.Lines, Line{Content: merged})
				i += 2
				continue
			}
			// Chord-only passage (instrumental / intro riff with no lyric)
			var names []string
			for _, c := range ExtractChords(lines[i], style) {
				names = append(names, "["+c.Name+"]")
			}
			current.Lines = append(current.Lines, Line{Content: strings.Join(names, " ")})
			i++

		default: // LineLyric — lyric with no preceding chord line
			current.Lines = append(current.Lines, Line{Content: lines[i]})
			i++
		}
	}

	if len(current.Lines) > 0 {
		sections = append(sections, current)
	}

	return sections
}

// sectionLabel returns the human-readable label from a SECTION line.
// Handles "[Verse 1]", "Chorus:", and bare "Bridge" formats.
func sectionLabel(line string) string {
	stripped := strings.TrimSpace(line)
	if m := soleBracketRE.FindStringSubmatch(stripped); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(strings.TrimRight(stripped, ":"))
}

// splitLines splits on \n after normalizing \r\n and bare \r, mirroring
// how the source pages deliver their text.
func splitLines(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return strings.Split(normalized, "\n")
}
