// Package writing generates the text of the writing index page: a numbered
// listing of every catalog post with its date, title, and first paragraph.
package writing

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/papapumpkin/folio/internal/catalog"
	"github.com/papapumpkin/folio/internal/markup"
)

// Header opens the index page.
const Header = "WRITING\n==="

// titleIndent aligns the title under the date column of "[NNN]  ".
const titleIndent = "       "

// minTitleLen is the shortest all-caps line treated as a heading.
const minTitleLen = 4

// FormatDate converts a YYYY-MM-DD date into the YYYY.MM.DD display form.
// Any other input is returned unchanged.
func FormatDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return strings.Join(parts, ".")
}

// ExtractPreview returns the first paragraph of normalized post text. It
// skips separators, bullets, dates, markers, and all-caps heading lines, and
// joins consecutive content lines with single spaces until a blank line ends
// the paragraph. It returns "" when the text has no paragraph.
func ExtractPreview(text string) string {
	var parts []string
	for _, line := range strings.Split(text, "\n") {
		t := strings.TrimSpace(line)
		if t == "" {
			if len(parts) > 0 {
				break
			}
			continue
		}
		if skipForPreview(t) {
			continue
		}
		parts = append(parts, t)
	}
	return strings.Join(parts, " ")
}

func skipForPreview(t string) bool {
	if markup.IsSeparator(t) || markup.IsBullet(t) || markup.IsBack(t) || markup.IsDate(t) {
		return true
	}
	if _, ok := markup.PreviewText(t); ok {
		return true
	}
	if strings.HasPrefix(t, "[") || strings.HasPrefix(t, "]") {
		return true
	}
	return isHeading(t)
}

// isHeading reports whether t is an all-caps title line such as
// "THE CASE FOR BORING INFRASTRUCTURE".
func isHeading(t string) bool {
	if utf8.RuneCountInString(t) < minTitleLen {
		return false
	}
	letters := 0
	for _, r := range t {
		switch {
		case unicode.IsSpace(r):
		case unicode.IsUpper(r):
			letters++
		default:
			return false
		}
	}
	return letters > 0
}

// Entry renders one index entry for the post at zero-based position i.
func Entry(i int, p catalog.Post) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n\n[%03d]  %s\n%s%s", i+1, FormatDate(p.Date), titleIndent, p.Title)
	if preview := ExtractPreview(p.Text); preview != "" {
		b.WriteString("\n\n")
		b.WriteString(markup.Preview(preview))
	}
	b.WriteString("\n\n---")
	return b.String()
}

// Generate builds the index text for every post in catalog order.
func Generate(cat *catalog.Catalog) string {
	var b strings.Builder
	b.WriteString(Header)
	for i, p := range cat.Posts() {
		b.WriteString(Entry(i, p))
	}
	return b.String()
}
