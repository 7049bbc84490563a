package tab2pro

// MergeChordLyric merges a chord line and the lyric line that follows it
// into a single line with chords embedded inline.
//
// Each chord is inserted at the column offset it occupied in chordLine,
// shifted right by the total length of markers already inserted. If a
// chord's offset exceeds the current length of the (growing) result, the
// chord is appended to the end rather than silently dropped.
//
// Example (bracketed style):
//
//	chordLine = "      [D]              [G]                 [D]"
//	lyricLine = "I pulled into Nazareth, was feelin' about half past dead"
//	result    = "I [D]pulled into Nazareth, was feelin' about [G]half past [D]dead"
//
// A chord line with no extractable chords returns lyricLine unchanged.
func MergeChordLyric(chordLine, lyricLine string, style NotationStyle) string {
	chords := ExtractChords(chordLine, style)
	if len(chords) == 0 {
		return lyricLine
	}

	// Work in runes so offsets count characters, not bytes; lyric text may
	// be non-ASCII and must come through untouched.
	result := []rune(lyricLine)
	inserted := 0 // total characters inserted so far (adjusts all future offsets)

	for _, c := range chords {
		marker := []rune("[" + c.Name + "]")
		pos := c.Offset + inserted
		if pos > len(result) {
			pos = len(result)
		}

		spliced := make([]rune, 0, len(result)+len(marker))
		spliced = append(spliced, result[:pos]...)
		spliced = append(spliced, marker...)
		spliced = append(spliced, result[pos:]...)
		result = spliced

		inserted += len(marker)
	}

	return string(result)
}
