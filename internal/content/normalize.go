package content

import (
	"strings"

	"github.com/papapumpkin/folio/internal/markup"
)

// Normalize collapses consecutive paragraph lines into single logical lines
// joined by one space, so long paragraphs can re-wrap at any width. Blank
// lines, separators, preview markers, bullets, numbered and dated lines, back
// links, and indented lines are structural: they are kept verbatim, one per
// output line, and end any paragraph in progress.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	out := make([]string, 0, len(lines))
	var para strings.Builder

	flush := func() {
		if para.Len() > 0 {
			out = append(out, para.String())
			para.Reset()
		}
	}

	for _, line := range lines {
		if markup.IsStructural(line) {
			flush()
			out = append(out, line)
			continue
		}
		if para.Len() == 0 {
			para.WriteString(strings.TrimRight(line, " \t"))
			continue
		}
		para.WriteByte(' ')
		para.WriteString(strings.TrimSpace(line))
	}
	flush()

	return strings.Join(out, "\n")
}
