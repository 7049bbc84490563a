package tab2pro

import (
	"fmt"
	"strings"
)

// Section labels whose directives ChordPro has standardised, keyed by the
// lowercased first word of the label.
var structuredDirectives = map[string][2]string{
	"verse":  {"start_of_verse", "end_of_verse"},
	"chorus": {"start_of_chorus", "end_of_chorus"},
	"bridge": {"start_of_bridge", "end_of_bridge"},
}

// RenderChordPro renders a Song to ChordPro (.cho) text.
//
// Verse, chorus, and bridge sections are wrapped in their standard
// directive pairs (verse keeps its full label, e.g. "Verse 2"). Labels with
// no standard directive (Intro, Outro, Solo, ...) are emitted as a
// {comment: ...} annotation. Unlabelled sections emit bare lines.
//
// The returned string ends with a single newline and uses Unix line endings
// throughout.
func RenderChordPro(song *Song) string {
	var b strings.Builder

	writeDirective(&b, "title", song.Title)
	writeDirective(&b, "artist", song.Artist)
	if song.Key != "" {
		writeDirective(&b, "key", song.Key)
	}
	if song.Capo != 0 {
		writeDirective(&b, "capo", fmt.Sprintf("%d", song.Capo))
	}
	if song.Tuning != "" {
		writeDirective(&b, "tuning", song.Tuning)
	}

	for _, section := range song.Sections {
		b.WriteString("\n") // blank line before every section
		renderSection(&b, section)
	}

	return b.String()
}

func writeDirective(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "{%s: %s}\n", name, value)
}

func renderSection(b *strings.Builder, section Section) {
	fields := strings.Fields(section.Label)
	if len(fields) == 0 {
		// Unlabelled (or whitespace-only label) — emit content lines with
		// no wrapper
		writeLines(b, section.Lines)
		return
	}

	first := strings.ToLower(fields[0])
	if dirs, ok := structuredDirectives[first]; ok {
		// Include the full label for verse (e.g. "Verse 1"), bare directive
		// for chorus/bridge
		if first == "verse" {
			fmt.Fprintf(b, "{%s: %s}\n", dirs[0], section.Label)
		} else {
			fmt.Fprintf(b, "{%s}\n", dirs[0])
		}
		writeLines(b, section.Lines)
		fmt.Fprintf(b, "{%s}\n", dirs[1])
		return
	}

	// Everything else (Intro, Outro, Solo, ...) exists in ChordPro as a
	// comment annotation only.
	writeDirective(b, "comment", section.Label)
	writeLines(b, section.Lines)
}

func writeLines(b *strings.Builder, lines []Line) {
	for _, line := range lines {
		b.WriteString(line.Content)
		b.WriteString("\n")
	}
}
