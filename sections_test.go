package tab2pro

import (
	"reflect"
	"testing"
)

func TestParseSectionsBracketed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []Section
	}{
		{
			name: "chord lyric pair under heading",
			text: "[Verse 1]\n   [D]    [G]\nI pulled into Nazareth\n",
			want: []Section{
				{Label: "Verse 1", Lines: []Line{
					{Content: "I p[D]ulled i[G]nto Nazareth"},
				}},
			},
		},
		{
			name: "chord-only passage",
			text: "[Intro]\n[D]  [G]  [A]\n",
			want: []Section{
				{Label: "Intro", Lines: []Line{
					{Content: "[D] [G] [A]"},
				}},
			},
		},
		{
			name: "lyric before any heading",
			text: "Just a lyric line\n",
			want: []Section{
				{Label: "", Lines: []Line{
					{Content: "Just a lyric line"},
				}},
			},
		},
		{
			name: "whitespace-only heading yields unlabelled section",
			text: "[   ]\nTake a load off Fanny\n",
			want: []Section{
				{Label: "", Lines: []Line{
					{Content: "Take a load off Fanny"},
				}},
			},
		},
		{
			name: "label-only section discarded",
			text: "[Verse 1]\n[Chorus]\nTake a load off Fanny\n",
			want: []Section{
				{Label: "Chorus", Lines: []Line{
					{Content: "Take a load off Fanny"},
				}},
			},
		},
		{
			name: "consecutive chord lines stay chord-only",
			text: "[Solo]\n[D]  [G]\n[A]  [D]\n",
			want: []Section{
				{Label: "Solo", Lines: []Line{
					{Content: "[D] [G]"},
					{Content: "[A] [D]"},
				}},
			},
		},
		{
			name: "blank lines skipped within section",
			text: "[Verse 1]\n\nFirst line\n\nSecond line\n",
			want: []Section{
				{Label: "Verse 1", Lines: []Line{
					{Content: "First line"},
					{Content: "Second line"},
				}},
			},
		},
		{
			name: "crlf input",
			text: "[Verse 1]\r\nHello there\r\n",
			want: []Section{
				{Label: "Verse 1", Lines: []Line{
					{Content: "Hello there"},
				}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ParseSections(tt.text, StyleBracketed)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSections(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseSectionsUnbracketed(t *testing.T) {
	t.Parallel()

	text := "Verse 1\nG      C\nDark star crashes\n\nChorus:\nShall we go\n"
	want := []Section{
		{Label: "Verse 1", Lines: []Line{
			{Content: "[G]Dark st[C]ar crashes"},
		}},
		{Label: "Chorus", Lines: []Line{
			{Content: "Shall we go"},
		}},
	}

	got := ParseSections(text, StyleUnbracketed)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseSections = %+v, want %+v", got, want)
	}
}

func TestParseSectionsSkipsTab(t *testing.T) {
	t.Parallel()

	tabOnly := "e|--0--1--2--|\nB|--3--1--0--|\nG|--0--0--0--|\n"
	if got := ParseSections(tabOnly, StyleBracketed); len(got) != 0 {
		t.Errorf("ParseSections(tab only) = %+v, want empty", got)
	}

	mixed := "[Verse 1]\ne|--0--1--2--|\nActual lyric\n"
	want := []Section{
		{Label: "Verse 1", Lines: []Line{
			{Content: "Actual lyric"},
		}},
	}
	if got := ParseSections(mixed, StyleBracketed); !reflect.DeepEqual(got, want) {
		t.Errorf("ParseSections(mixed tab) = %+v, want %+v", got, want)
	}
}

func TestParseSectionsEmptyInput(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "\n\n\n", "   \n\t\n"} {
		if got := ParseSections(text, StyleBracketed); len(got) != 0 {
			t.Errorf("ParseSections(%q) = %+v, want empty", text, got)
		}
	}
}

func TestParseSectionsChordAtEndOfInput(t *testing.T) {
	t.Parallel()

	got := ParseSections("[Outro]\n[D]  [G]", StyleBracketed)
	want := []Section{
		{Label: "Outro", Lines: []Line{
			{Content: "[D] [G]"},
		}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseSections = %+v, want %+v", got, want)
	}
}

func TestSectionLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want string
	}{
		{"[Verse 1]", "Verse 1"},
		{"[Intro riff]", "Intro riff"},
		{"[ Bridge ]", "Bridge"},
		{"[   ]", ""},
		{"Chorus:", "Chorus"},
		{"  Bridge  ", "Bridge"},
		{"Verse 2", "Verse 2"},
	}

	for _, tt := range tests {
		if got := sectionLabel(tt.line); got != tt.want {
			t.Errorf("sectionLabel(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}
