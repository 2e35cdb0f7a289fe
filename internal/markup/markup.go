// Package markup defines the line grammar shared by content normalization,
// the writing index, and the cascade renderer. Every predicate operates on a
// single line and is a pure function of its text.
package markup

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// PreviewOpen and PreviewClose delimit a preview block marker.
const (
	PreviewOpen  = "{{preview:"
	PreviewClose = "}}"
)

// BackGlyph starts a "back" navigation line.
const BackGlyph = '←'

// bulletGlyphs are the leading runes that mark a bullet line.
const bulletGlyphs = "◦•►▸▪"

var (
	reDate     = regexp.MustCompile(`^\d{4}\.\d{2}\.\d{2}$`)
	reNumbered = regexp.MustCompile(`^\d+\.`)
	rePreview  = regexp.MustCompile(`^\{\{preview:(.+)\}\}$`)
)

// IsBlank reports whether the line contains only whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// IsThickSeparator reports whether the trimmed line starts with three or more
// '=' runes, or is a run of three or more '═' box-drawing runes.
func IsThickSeparator(line string) bool {
	t := strings.TrimSpace(line)
	return strings.HasPrefix(t, "===") || isRunOf(t, '═')
}

// IsThinSeparator reports whether the trimmed line starts with three or more
// '-' runes, or is a run of three or more '─' box-drawing runes.
func IsThinSeparator(line string) bool {
	t := strings.TrimSpace(line)
	return strings.HasPrefix(t, "---") || isRunOf(t, '─')
}

// IsSeparator reports whether the line is a thick or thin separator.
func IsSeparator(line string) bool {
	return IsThickSeparator(line) || IsThinSeparator(line)
}

// PreviewText returns the inner text of a {{preview:...}} marker line.
func PreviewText(line string) (string, bool) {
	m := rePreview.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Preview wraps text in a preview marker.
func Preview(text string) string {
	return PreviewOpen + text + PreviewClose
}

// IsBullet reports whether the trimmed line starts with a bullet glyph.
func IsBullet(line string) bool {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(line))
	return r != utf8.RuneError && strings.ContainsRune(bulletGlyphs, r)
}

// IsBack reports whether the trimmed line starts with the back glyph.
func IsBack(line string) bool {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(line))
	return r == BackGlyph
}

// IsNumbered reports whether the trimmed line starts with digits and a period.
func IsNumbered(line string) bool {
	return reNumbered.MatchString(strings.TrimSpace(line))
}

// IsDate reports whether the trimmed line is exactly a YYYY.MM.DD date.
func IsDate(line string) bool {
	return reDate.MatchString(strings.TrimSpace(line))
}

// IsIndented reports whether the raw line begins with two spaces.
func IsIndented(line string) bool {
	return strings.HasPrefix(line, "  ")
}

// IsStructural reports whether the line keeps its own line break during
// normalization instead of flowing into a paragraph.
func IsStructural(line string) bool {
	if IsBlank(line) || IsSeparator(line) {
		return true
	}
	if _, ok := PreviewText(line); ok {
		return true
	}
	return IsBullet(line) || IsNumbered(line) || IsBack(line) || IsDate(line) || IsIndented(line)
}

func isRunOf(s string, r rune) bool {
	if utf8.RuneCountInString(s) < 3 {
		return false
	}
	for _, c := range s {
		if c != r {
			return false
		}
	}
	return true
}
