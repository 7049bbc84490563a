// Package tab2pro converts chord-over-lyric guitar transcriptions scraped
// from tab websites into ChordPro format.
//
// # Quick Start
//
// Create a service, convert a URL, and close when done:
//
//	svc := tab2pro.New()
//	defer svc.Close()
//
//	result, err := svc.Convert(ctx, tab2pro.Input{
//	    URL: "https://tabs.ultimate-guitar.com/tab/the-band/the-weight-chords-61592",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("the-weight.cho", []byte(result.ChordPro), 0644)
//
// The result contains both the rendered ChordPro text (result.ChordPro) and
// the canonical Song model (result.Song) for callers that want to do their
// own rendering.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Adapter selection by URL (Ultimate Guitar, Rukind, Dylanchords)
//  2. Page fetch (plain HTTP with browser-like headers, or headless Chrome
//     via go-rod when Input.UseBrowser is set)
//  3. Site-specific extraction of the raw tab text and song metadata
//  4. Text parsing: line classification, chord/lyric merging, section
//     grouping (ParseSections)
//  5. ChordPro rendering (RenderChordPro)
//
// Stages 4 and 5 are pure functions and are exported for callers that
// already have raw tab text:
//
//	sections := tab2pro.ParseSections(rawText, tab2pro.StyleUnbracketed)
//
// # Notation Styles
//
// Two chord notation styles appear in the wild. StyleBracketed covers sites
// where chords are already delimited ([D], [Am7]); StyleUnbracketed covers
// sites where bare chord tokens sit on their own line, positioned by
// whitespace alignment above the lyric. Output always uses bracketed inline
// notation regardless of the input style.
//
// # Browser Requirements
//
// Plain HTTP works for most pages. Sites that reject non-browser clients
// can be fetched through headless Chrome instead; the go-rod library
// automatically downloads a managed Chromium instance on first run.
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package tab2pro
