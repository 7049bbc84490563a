package tab2pro

import (
	"encoding/json"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// UltimateGuitarAdapter handles tabs.ultimate-guitar.com chord pages.
//
// Two page formats are supported (UG has migrated away from Next.js):
//
// New format (current): the tab data is a blob of HTML-entity-encoded JSON
// in <div class="js-store" data-content="...">, under store.page.data.
//
// Legacy format (kept as fallback): <script id="__NEXT_DATA__"> JSON, under
// props.pageProps.data.
//
// The tab text uses [ch]D[/ch] notation (stripped to [D]) and may wrap
// chord+lyric pairs in [tab]...[/tab] tags (also stripped). Chord lines use
// the bracketed style.
type UltimateGuitarAdapter struct{}

var (
	ugChTagRE  = regexp.MustCompile(`\[ch\]([^\[]*)\[/ch\]`)
	ugTabTagRE = regexp.MustCompile(`\[/?tab\]`)
)

// ugTab holds the metadata fields UG exposes. The new format puts metadata
// under "tab" and content under "tab_view"; the legacy format puts
// everything under "tab_view".
type ugTab struct {
	SongName     string     `json:"song_name"`
	ArtistName   string     `json:"artist_name"`
	Capo         ugFlexInt  `json:"capo"`
	TonalityName string     `json:"tonality_name"`
	WikiTab      *ugWikiTab `json:"wiki_tab"`
}

type ugWikiTab struct {
	Content string `json:"content"`
}

type ugPageData struct {
	Tab     *ugTab `json:"tab"`
	TabView *ugTab `json:"tab_view"`
}

// ugFlexInt tolerates UG serving capo as a number, a numeric string, or
// null, depending on page vintage.
type ugFlexInt int

func (f *ugFlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		*f = 0
		return nil
	}
	*f = ugFlexInt(n)
	return nil
}

// CanHandle reports whether url is an Ultimate Guitar tab page.
func (a *UltimateGuitarAdapter) CanHandle(url string) bool {
	return strings.Contains(url, "tabs.ultimate-guitar.com/tab/")
}

// Extract parses a UG page into a Song.
func (a *UltimateGuitarAdapter) Extract(pageHTML, url string) (*Song, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil, &ParseError{URL: url, Reason: "invalid HTML: " + err.Error()}
	}

	data, err := ugExtractPageData(doc, url)
	if err != nil {
		return nil, err
	}

	// Metadata lives in data.tab (new) or data.tab_view (legacy).
	meta := data.Tab
	if meta == nil {
		meta = data.TabView
	}
	if meta == nil {
		meta = &ugTab{}
	}

	capo := int(meta.Capo)
	key := meta.TonalityName
	if data.TabView != nil {
		if capo == 0 {
			capo = int(data.TabView.Capo)
		}
		if key == "" {
			key = data.TabView.TonalityName
		}
	}

	// Tab content is always in tab_view.wiki_tab.content
	var content string
	if data.TabView != nil && data.TabView.WikiTab != nil {
		content = data.TabView.WikiTab.Content
	}
	if content == "" {
		return nil, &ParseError{URL: url, Reason: "wiki_tab.content is empty or missing"}
	}

	content = ugStripTags(content)
	sections := ParseSections(content, StyleBracketed)

	return &Song{
		Title:     meta.SongName,
		Artist:    meta.ArtistName,
		Sections:  sections,
		Key:       key,
		Capo:      capo,
		SourceURL: url,
	}, nil
}

// ugExtractPageData returns the page.data object from whichever JSON
// container is present: the current js-store format first, then the legacy
// __NEXT_DATA__ format.
func ugExtractPageData(doc *goquery.Document, url string) (*ugPageData, error) {
	// Current format: <div class="js-store" data-content="...">
	if raw, ok := doc.Find("div.js-store").Attr("data-content"); ok && raw != "" {
		var store struct {
			Store struct {
				Page struct {
					Data ugPageData `json:"data"`
				} `json:"page"`
			} `json:"store"`
		}
		if err := json.Unmarshal([]byte(html.UnescapeString(raw)), &store); err == nil {
			if store.Store.Page.Data.Tab != nil || store.Store.Page.Data.TabView != nil {
				data := store.Store.Page.Data
				return &data, nil
			}
		}
		// fall through to legacy
	}

	// Legacy format: <script id="__NEXT_DATA__">
	if raw := doc.Find(`script#__NEXT_DATA__`).Text(); raw != "" {
		var next struct {
			Props struct {
				PageProps struct {
					Data ugPageData `json:"data"`
				} `json:"pageProps"`
			} `json:"props"`
		}
		if err := json.Unmarshal([]byte(raw), &next); err == nil {
			if next.Props.PageProps.Data.Tab != nil || next.Props.PageProps.Data.TabView != nil {
				data := next.Props.PageProps.Data
				return &data, nil
			}
		}
	}

	return nil, &ParseError{URL: url, Reason: "could not find tab data (tried js-store and __NEXT_DATA__)"}
}

// ugStripTags strips UG-specific markup from tab content:
// [ch]D[/ch] becomes [D]; [tab] and [/tab] are removed.
func ugStripTags(text string) string {
	text = ugChTagRE.ReplaceAllString(text, "[$1]")
	return ugTabTagRE.ReplaceAllString(text, "")
}
