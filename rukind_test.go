package tab2pro

import (
	"errors"
	"strings"
	"testing"
)

const rukindFixturePage = `<html><body>
<h1>Dark Star</h1>
<div id="tab">
<h3>Intro</h3>
<pre>A  G
E------2--
A  G</pre>
<h3>Verse</h3>
<pre>A          G
Dark star crashes<br/>pouring its light into ashes<em>(1968)</em>
</pre>
</div>
</body></html>`

func TestRukindCanHandle(t *testing.T) {
	t.Parallel()

	a := &RukindAdapter{}
	if !a.CanHandle("https://rukind.com/gdpedia/titles/tab/dark-star") {
		t.Error("CanHandle(rukind tab URL) = false, want true")
	}
	if a.CanHandle("https://rukind.com/forum/thread/123") {
		t.Error("CanHandle(rukind forum URL) = true, want false")
	}
}

func TestRukindExtract(t *testing.T) {
	t.Parallel()

	a := &RukindAdapter{}
	song, err := a.Extract(rukindFixturePage, "https://rukind.com/gdpedia/titles/tab/dark-star")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	if song.Title != "Dark Star" {
		t.Errorf("Title = %q", song.Title)
	}
	if song.Artist != "Grateful Dead" {
		t.Errorf("Artist = %q", song.Artist)
	}

	if len(song.Sections) != 2 {
		t.Fatalf("got %d sections, want 2: %+v", len(song.Sections), song.Sections)
	}

	intro := song.Sections[0]
	if intro.Label != "Intro" {
		t.Errorf("first label = %q, want %q", intro.Label, "Intro")
	}
	if len(intro.Lines) != 2 || intro.Lines[0].Content != "[A] [G]" || intro.Lines[1].Content != "[A] [G]" {
		t.Errorf("intro lines = %+v (tab line should be skipped)", intro.Lines)
	}

	verse := song.Sections[1]
	if verse.Label != "Verse" {
		t.Errorf("second label = %q, want %q", verse.Label, "Verse")
	}
	if got, want := verse.Lines[0].Content, "[A]Dark star c[G]rashes"; got != want {
		t.Errorf("merged line = %q, want %q", got, want)
	}
	if got, want := verse.Lines[1].Content, "pouring its light into ashes"; got != want {
		t.Errorf("lyric after <br> = %q, want %q (embedded <em> should be dropped)", got, want)
	}
}

func TestRukindExtractMissingTabDiv(t *testing.T) {
	t.Parallel()

	a := &RukindAdapter{}
	_, err := a.Extract(`<html><body><h1>Dark Star</h1><p>no tab</p></body></html>`, "https://rukind.com/gdpedia/titles/tab/dark-star")

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Extract error = %v, want *ParseError", err)
	}
	if !strings.Contains(perr.Reason, "div id='tab'") {
		t.Errorf("reason = %q", perr.Reason)
	}
}

func TestRukindExtractTabOnlyContent(t *testing.T) {
	t.Parallel()

	page := `<html><body><h1>Song</h1><div id="tab"><pre>e|--0--1--
B|--3--1--</pre></div></body></html>`

	a := &RukindAdapter{}
	_, err := a.Extract(page, "https://rukind.com/gdpedia/titles/tab/song")

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Extract error = %v, want *ParseError", err)
	}
	if !strings.Contains(perr.Reason, "no chord content") {
		t.Errorf("reason = %q", perr.Reason)
	}
}

func TestRukindUnlabelledPre(t *testing.T) {
	t.Parallel()

	page := `<html><body><h1>Song</h1><div id="tab"><pre>A  D
Hello friend</pre></div></body></html>`

	a := &RukindAdapter{}
	song, err := a.Extract(page, "https://rukind.com/gdpedia/titles/tab/song")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	if len(song.Sections) != 1 || song.Sections[0].Label != "" {
		t.Errorf("sections = %+v, want one unlabelled section", song.Sections)
	}
}
