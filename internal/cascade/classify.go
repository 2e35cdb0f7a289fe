// Package cascade composes a page of lines into a staggered reveal: each line
// starts after its own delay, separators fade in, preview blocks scramble and
// clip, and once every line settles an idle scheduler glitches one random word
// at a time.
package cascade

import (
	"strings"

	"github.com/papapumpkin/folio/internal/markup"
)

// Kind classifies a display line.
type Kind int

const (
	KindBlank   Kind = iota // empty after trimming
	KindThick               // === rule
	KindThin                // --- rule
	KindPreview             // {{preview:...}} block
	KindPlain               // everything else
)

// String returns the lowercase kind name used in the HTTP API.
func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindThick:
		return "thick"
	case KindThin:
		return "thin"
	case KindPreview:
		return "preview"
	case KindPlain:
		return "plain"
	default:
		return "unknown"
	}
}

// Line is a classified line of page text. For preview blocks Text is the
// inner preview text with the marker removed.
type Line struct {
	Kind Kind
	Text string
}

// Classify returns the kind of a raw line and the text to animate.
func Classify(raw string) Line {
	switch {
	case markup.IsBlank(raw):
		return Line{Kind: KindBlank}
	case markup.IsThickSeparator(raw):
		return Line{Kind: KindThick, Text: strings.TrimSpace(raw)}
	case markup.IsThinSeparator(raw):
		return Line{Kind: KindThin, Text: strings.TrimSpace(raw)}
	}
	if inner, ok := markup.PreviewText(raw); ok {
		return Line{Kind: KindPreview, Text: inner}
	}
	return Line{Kind: KindPlain, Text: raw}
}

// Split classifies every line of page text.
func Split(text string) []Line {
	if text == "" {
		return nil
	}
	raw := strings.Split(text, "\n")
	lines := make([]Line, len(raw))
	for i, r := range raw {
		lines[i] = Classify(r)
	}
	return lines
}
