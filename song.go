package tab2pro

// NotationStyle selects how chords are written in the source text.
type NotationStyle string

// Supported notation styles.
const (
	// StyleBracketed covers sources whose chords are already delimited,
	// e.g. [D], [Am7], [G/B] (Ultimate Guitar).
	StyleBracketed NotationStyle = "bracketed"

	// StyleUnbracketed covers sources whose chords are bare tokens
	// positioned by whitespace alignment above the lyric (Rukind,
	// Dylanchords).
	StyleUnbracketed NotationStyle = "unbracketed"
)

// Line is a single line of finished content: either a lyric with zero or
// more chord markers embedded inline, or a chord-only line rendered as
// space-joined markers.
//
// Example: "I [D]pulled into Nazareth, was feelin' about [G]half past [D]dead"
type Line struct {
	Content string
}

// Section is a labelled group of lines (verse, chorus, bridge, ...).
// An empty Label means an unlabelled passage.
type Section struct {
	Label string
	Lines []Line
}

// Song is the canonical, site-agnostic representation of a transcription.
type Song struct {
	Title     string
	Artist    string
	Sections  []Section
	Key       string // e.g. "G", empty if unknown
	Capo      int    // fret number, 0 if none
	Tuning    string // e.g. "Drop D", "DADGAD", empty if standard
	SourceURL string
}
