package cascade

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/papapumpkin/folio/internal/scramble"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		width int
		want  []scramble.Span
	}{
		{"fits", "hello", 10, []scramble.Span{{Start: 0, End: 5}}},
		{"disabled", "hello world", 0, []scramble.Span{{Start: 0, End: 11}}},
		{"empty", "", 5, []scramble.Span{{Start: 0, End: 0}}},
		{"break at space", "hello world", 5, []scramble.Span{{Start: 0, End: 5}, {Start: 6, End: 11}}},
		{"break before word", "aa bb cc", 6, []scramble.Span{{Start: 0, End: 5}, {Start: 6, End: 8}}},
		{"hard split", "abcdefghij", 4, []scramble.Span{{Start: 0, End: 4}, {Start: 4, End: 8}, {Start: 8, End: 10}}},
		{"wide runes", "日本語", 4, []scramble.Span{{Start: 0, End: 2}, {Start: 2, End: 3}}},
		{"rune wider than width", "日本", 1, []scramble.Span{{Start: 0, End: 1}, {Start: 1, End: 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Wrap(tt.text, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("Wrap(%q, %d) = %v, want %v", tt.text, tt.width, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Wrap(%q, %d) = %v, want %v", tt.text, tt.width, got, tt.want)
				}
			}
		})
	}
}

func TestWrap_CoversAllWords(t *testing.T) {
	t.Parallel()

	text := "Building intelligent systems that operate at the intersection of machine learning and critical infrastructure."
	runes := []rune(text)
	for width := 3; width <= 60; width++ {
		var words []string
		for _, s := range Wrap(text, width) {
			row := string(runes[s.Start:s.End])
			if w := runewidth.StringWidth(row); w > width {
				t.Fatalf("width %d: row %q is %d cells", width, row, w)
			}
			words = append(words, strings.Fields(row)...)
		}
		if got := strings.Join(words, ""); got != strings.Join(strings.Fields(text), "") {
			t.Fatalf("width %d: rows lost text: %q", width, got)
		}
	}
}

func TestRows(t *testing.T) {
	t.Parallel()

	f := Frame{Lines: []FrameLine{
		{Kind: KindThick, Text: "===", Display: "===", Opacity: 1},
		{Kind: KindBlank, Opacity: 1},
		{Kind: KindPlain, Text: "hello world", Display: "hello world", Opacity: 1},
		{Kind: KindPreview, Text: "one two three four five six", Display: "one two three four five six", Opacity: 1},
		{Kind: KindThin, Text: "---", Display: "---", Opacity: 0.5},
	}}

	rows := f.Rows(10, 2)
	want := []Row{
		{Kind: KindThick, Text: "══════════", Opacity: 1},
		{Kind: KindBlank, Opacity: 1},
		{Kind: KindPlain, Text: "hello", Opacity: 1},
		{Kind: KindPlain, Text: "world", Opacity: 1},
		{Kind: KindPreview, Text: "one two", Opacity: 1},
		{Kind: KindPreview, Text: "three fou…", Opacity: 1},
		{Kind: KindThin, Text: "──────────", Opacity: 0.5},
	}
	if len(rows) != len(want) {
		t.Fatalf("Rows() = %d rows %+v, want %d", len(rows), rows, len(want))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, rows[i], want[i])
		}
	}
}

func TestRows_ScrambledFrameWrapsLikeText(t *testing.T) {
	t.Parallel()

	f := Frame{Lines: []FrameLine{
		{Kind: KindPlain, Text: "hello world", Display: "█▓▒lo ░╔╗ld", Opacity: 1},
	}}
	rows := f.Rows(5, 2)
	if len(rows) != 2 || rows[0].Text != "█▓▒lo" || rows[1].Text != "░╔╗ld" {
		t.Errorf("Rows() = %+v", rows)
	}
}

func TestRows_PreviewEllipsisFitsWidth(t *testing.T) {
	t.Parallel()

	f := Frame{Lines: []FrameLine{
		{Kind: KindPreview, Text: "aaaaa bbbbb ccccc", Display: "aaaaa bbbbb ccccc", Opacity: 1},
	}}
	rows := f.Rows(5, 1)
	if len(rows) != 1 {
		t.Fatalf("Rows() = %+v, want one clipped row", rows)
	}
	if w := runewidth.StringWidth(rows[0].Text); w > 5 || !strings.HasSuffix(rows[0].Text, Ellipsis) {
		t.Errorf("clipped row = %q (%d cells)", rows[0].Text, w)
	}
}
