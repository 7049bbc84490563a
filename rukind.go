package tab2pro

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// RukindAdapter handles rukind.com Grateful Dead tab pages.
//
// URL pattern: rukind.com/gdpedia/titles/tab/<song-slug>
//
// The tab content lives in <div id="tab">, as heading/pre pairs: h1/h2/h3
// headings carry the section label ("Intro", "Verse", ...) and each <pre>
// holds unbracketed, space-aligned chord/lyric text. ASCII guitar tab
// blocks inside the <pre> content are detected and skipped by the shared
// parsing pipeline.
type RukindAdapter struct{}

// CanHandle reports whether url is a rukind tab page.
func (a *RukindAdapter) CanHandle(url string) bool {
	return strings.Contains(url, "rukind.com/gdpedia/titles/tab/")
}

// Extract parses a rukind page into a Song.
func (a *RukindAdapter) Extract(pageHTML, url string) (*Song, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil, &ParseError{URL: url, Reason: "invalid HTML: " + err.Error()}
	}

	// Song title from the first <h1> in the outer page. Section headings
	// inside #tab are also <h1> but come later in the tree.
	title := strings.TrimSpace(doc.Find("h1").First().Text())
	if title == "" {
		title = titleFromSlug(url)
	}

	tabDiv := doc.Find("div#tab").First()
	if tabDiv.Length() == 0 {
		return nil, &ParseError{URL: url, Reason: "could not find <div id='tab'>"}
	}

	sections := rukindSections(tabDiv)
	if len(sections) == 0 {
		return nil, &ParseError{URL: url, Reason: "no chord content found inside #tab"}
	}

	return &Song{
		Title:     title,
		Artist:    "Grateful Dead",
		Sections:  sections,
		SourceURL: url,
	}, nil
}

// rukindSections walks the tab div's headings and <pre> blocks in document
// order. Headings set the pending section label; each <pre> block is
// parsed and the pending label is attached to the first section it yields.
// Blocks that produce no lines (all-tab content) are dropped.
func rukindSections(tabDiv *goquery.Selection) []Section {
	var sections []Section
	pendingLabel := ""

	tabDiv.Find("h1, h2, h3, pre").Each(func(_ int, s *goquery.Selection) {
		name := goquery.NodeName(s)
		if name == "h1" || name == "h2" || name == "h3" {
			pendingLabel = strings.TrimSpace(s.Text())
			return
		}

		parsed := ParseSections(rukindPreText(s), StyleUnbracketed)
		if len(parsed) == 0 {
			return
		}

		if pendingLabel != "" {
			parsed[0].Label = pendingLabel
			pendingLabel = ""
		}

		sections = append(sections, parsed...)
	})

	return sections
}

// rukindPreText extracts chord/lyric text from a <pre> block, ignoring
// embedded HTML. Rukind embeds navigation links (<h7><a>), metadata
// (<em>), and <br> tags inside <pre>; only the direct text-node children
// are the actual tab text, with <br> standing in for newlines.
func rukindPreText(pre *goquery.Selection) string {
	var b strings.Builder
	pre.Contents().Each(func(_ int, child *goquery.Selection) {
		node := child.Get(0)
		switch {
		case node.Type == html.TextNode:
			b.WriteString(node.Data)
		case node.Type == html.ElementNode && node.Data == "br":
			b.WriteString("\n")
		}
		// All other tags (<em>, <h7>, <a>, ...) are intentionally skipped
	})
	return b.String()
}
