package cascade

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/papapumpkin/folio/internal/scramble"
)

// Ellipsis marks a clipped preview block.
const Ellipsis = "…"

// Row is one terminal row of a wrapped frame.
type Row struct {
	Kind      Kind
	Text      string
	Opacity   float64
	Glitching bool
}

// Wrap breaks text into rune spans no wider than width cells, breaking at
// whitespace where possible. Spans index the true text so that scrambled
// frames of the same length wrap at identical points. A width of zero or
// less disables wrapping.
func Wrap(text string, width int) []scramble.Span {
	runes := []rune(text)
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return []scramble.Span{{Start: 0, End: len(runes)}}
	}

	var spans []scramble.Span
	start := 0
	for start < len(runes) {
		end, cells, brk := start, 0, -1
		for end < len(runes) {
			w := runewidth.RuneWidth(runes[end])
			if cells+w > width {
				break
			}
			if unicode.IsSpace(runes[end]) {
				brk = end
			}
			cells += w
			end++
		}

		switch {
		case end == len(runes):
			spans = append(spans, scramble.Span{Start: start, End: end})
			return spans
		case unicode.IsSpace(runes[end]):
			spans = append(spans, scramble.Span{Start: start, End: end})
			start = end
		case brk > start:
			spans = append(spans, scramble.Span{Start: start, End: brk})
			start = brk
		default:
			// No break point: split the word, always consuming one rune.
			end = max(end, start+1)
			spans = append(spans, scramble.Span{Start: start, End: end})
			start = end
			continue
		}
		for start < len(runes) && unicode.IsSpace(runes[start]) {
			start++
		}
	}
	return spans
}

// Rows lays the frame out at width cells. Separators become full-width rules,
// and preview blocks are clipped to previewLines rows with an ellipsis.
func (f Frame) Rows(width, previewLines int) []Row {
	var rows []Row
	for _, l := range f.Lines {
		switch l.Kind {
		case KindBlank:
			rows = append(rows, Row{Kind: l.Kind, Opacity: 1})
		case KindThick, KindThin:
			rows = append(rows, Row{Kind: l.Kind, Text: rule(l.Kind, width), Opacity: l.Opacity})
		default:
			rows = append(rows, wrapLine(l, width, previewLines)...)
		}
	}
	return rows
}

func wrapLine(l FrameLine, width, previewLines int) []Row {
	display := []rune(l.Display)
	spans := Wrap(l.Text, width)
	clipped := false
	if l.Kind == KindPreview && previewLines > 0 && len(spans) > previewLines {
		spans = spans[:previewLines]
		clipped = true
	}

	rows := make([]Row, 0, len(spans))
	for _, s := range spans {
		end := min(s.End, len(display))
		start := min(s.Start, end)
		rows = append(rows, Row{
			Kind:      l.Kind,
			Text:      strings.TrimRight(string(display[start:end]), " "),
			Opacity:   l.Opacity,
			Glitching: l.Glitching,
		})
	}
	if clipped {
		last := &rows[len(rows)-1]
		last.Text = clip(last.Text+Ellipsis, width)
	}
	return rows
}

func clip(s string, width int) string {
	if width <= 0 {
		return s
	}
	return truncate.StringWithTail(s, uint(width), Ellipsis)
}

// rule returns a separator drawn across width cells.
func rule(k Kind, width int) string {
	if width <= 0 {
		width = 3
	}
	glyph := "─"
	if k == KindThick {
		glyph = "═"
	}
	return strings.Repeat(glyph, width)
}
