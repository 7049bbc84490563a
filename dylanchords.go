package tab2pro

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DylanchordsAdapter handles dylanchords.com Bob Dylan chord pages.
//
// URL pattern: dylanchords.com/<album-slug>/<song-slug>
//
// The page body is a Drupal field (div.field-name-body) holding
// <pre class="verse"> chord/lyric blocks, with <h2> headings separating
// multiple transcription versions and <p> paragraphs carrying capo/tuning
// notes. <pre class="chordcharts"> blocks (chord definition tables) are
// skipped. Chord notation is unbracketed, space-aligned above lyrics, with
// lowercase slash basses (C/b, D/f#) and standalone continuation chords
// (/b) supported by the shared chord grammar.
//
// Version selects which transcription to extract (1-indexed; zero means
// the first).
type DylanchordsAdapter struct {
	Version int
}

var (
	dcCapoRE   = regexp.MustCompile(`[Cc]apo\s+(\d+)`)
	dcTuningRE = regexp.MustCompile(
		`(?i)\b(Drop [A-G]|Open [A-G]|DADGAD|DGDGBD|half.?step(?:s)? (?:down|up)|[A-G]{6})\b`,
	)
)

// dcVersion is one transcription version: the <pre class="verse"> blocks
// and <p> paragraphs between two <h2> headings.
type dcVersion struct {
	label      string
	verses     []string
	paragraphs []string
}

// CanHandle reports whether url is a dylanchords.com page.
func (a *DylanchordsAdapter) CanHandle(url string) bool {
	return strings.Contains(url, "dylanchords.com/")
}

// Extract parses a dylanchords page into a Song.
func (a *DylanchordsAdapter) Extract(pageHTML, url string) (*Song, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil, &ParseError{URL: url, Reason: "invalid HTML: " + err.Error()}
	}

	title := strings.TrimSpace(doc.Find("h1").First().Text())
	if title == "" {
		title = titleFromSlug(url)
	}

	content := doc.Find("div.field-name-body").First()
	if content.Length() == 0 {
		content = doc.Find("div.field-items").First()
	}
	if content.Length() == 0 {
		return nil, &ParseError{URL: url, Reason: "could not find Drupal content area (field-name-body)"}
	}

	versions := dcSplitVersions(content)
	if len(versions) == 0 {
		return nil, &ParseError{URL: url, Reason: "no chord content found on page"}
	}

	want := a.Version
	if want == 0 {
		want = 1
	}
	if want < 1 || want > len(versions) {
		return nil, &ParseError{
			URL:    url,
			Reason: fmt.Sprintf("version %d requested but page has %d version(s)", want, len(versions)),
		}
	}

	ver := versions[want-1]

	var sections []Section
	for _, verseText := range ver.verses {
		sections = append(sections, ParseSections(verseText, StyleUnbracketed)...)
	}

	return &Song{
		Title:     title,
		Artist:    "Bob Dylan",
		Sections:  sections,
		Capo:      dcExtractCapo(ver.paragraphs),
		Tuning:    dcExtractTuning(ver.paragraphs),
		SourceURL: url,
	}, nil
}

// dcSplitVersions groups the content area into version blocks separated by
// <h2> headings. Returns an empty slice if no verse content is found.
func dcSplitVersions(content *goquery.Selection) []dcVersion {
	// Drill down to the innermost content div if present
	inner := content.Find("div.field-item").First()
	if inner.Length() == 0 {
		inner = content
	}

	var versions []dcVersion
	current := dcVersion{}

	inner.Find("h2, pre, p").Each(func(_ int, s *goquery.Selection) {
		switch goquery.NodeName(s) {
		case "h2":
			if len(current.verses) > 0 {
				versions = append(versions, current)
			}
			current = dcVersion{label: strings.Join(strings.Fields(s.Text()), " ")}

		case "pre":
			if s.HasClass("verse") {
				current.verses = append(current.verses, s.Text())
			}
			// "chordcharts" blocks are intentionally skipped

		case "p":
			if text := strings.TrimSpace(s.Text()); text != "" {
				current.paragraphs = append(current.paragraphs, text)
			}
		}
	})

	// Flush final version
	if len(current.verses) > 0 {
		versions = append(versions, current)
	}

	return versions
}

// dcExtractCapo returns the capo fret number from paragraph text, e.g.
// "Capo 7th fret". Zero means no capo.
func dcExtractCapo(paragraphs []string) int {
	for _, p := range paragraphs {
		if m := dcCapoRE.FindStringSubmatch(p); m != nil {
			n, err := strconv.Atoi(m[1])
			if err == nil {
				return n
			}
		}
	}
	return 0
}

// dcExtractTuning returns a non-standard tuning name from paragraph text,
// if present.
func dcExtractTuning(paragraphs []string) string {
	for _, p := range paragraphs {
		if m := dcTuningRE.FindStringSubmatch(p); m != nil {
			return m[1]
		}
	}
	return ""
}

// titleFromSlug derives a song title from the URL slug as a last-resort
// fallback.
func titleFromSlug(url string) string {
	slug := strings.TrimRight(url, "/")
	if i := strings.LastIndex(slug, "/"); i >= 0 {
		slug = slug[i+1:]
	}
	slug = strings.ReplaceAll(slug, "_", " ")
	slug = strings.ReplaceAll(slug, "-", " ")

	words := strings.Fields(slug)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
