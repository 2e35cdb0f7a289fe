// Package ui prints human-facing CLI output: banners, the post listing, and
// content validation results. Output goes to stderr unless a writer is given.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/papapumpkin/folio/internal/ansi"
	"github.com/papapumpkin/folio/internal/catalog"
	"github.com/papapumpkin/folio/internal/content"
	"github.com/papapumpkin/folio/internal/writing"
)

// previewWidth is the wrap width for previews in the post listing.
const previewWidth = 72

// Printer writes ANSI-colored status lines.
type Printer struct {
	w io.Writer
}

// New returns a Printer writing to stderr.
func New() *Printer {
	return &Printer{w: os.Stderr}
}

// NewWriter returns a Printer writing to w.
func NewWriter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Banner prints the site name in a box with its tagline below.
func (p *Printer) Banner(name string, tagline []string) {
	bar := strings.Repeat("═", len([]rune(name))+4)
	fmt.Fprintln(p.w, ansi.Bold+ansi.Cyan+"  ╔"+bar+"╗"+ansi.Reset)
	fmt.Fprintln(p.w, ansi.Bold+ansi.Cyan+"  ║  "+ansi.Reset+ansi.Bold+name+ansi.Cyan+"  ║"+ansi.Reset)
	fmt.Fprintln(p.w, ansi.Bold+ansi.Cyan+"  ╚"+bar+"╝"+ansi.Reset)
	for _, line := range tagline {
		fmt.Fprintln(p.w, ansi.Dim+"  "+line+ansi.Reset)
	}
	fmt.Fprintln(p.w)
}

// Posts lists every post in catalog order with its index, date, slug, and a
// wrapped preview.
func (p *Printer) Posts(cat *catalog.Catalog) {
	posts := cat.Posts()
	if len(posts) == 0 {
		fmt.Fprintln(p.w, ansi.Dim+"(no posts)"+ansi.Reset)
		return
	}
	for i, post := range posts {
		fmt.Fprintf(p.w, ansi.Bold+"[%03d]"+ansi.Reset+"  %s  "+ansi.Cyan+"%s"+ansi.Reset+" "+ansi.Dim+"(%s)"+ansi.Reset+"\n",
			i+1, writing.FormatDate(post.Date), post.Title, post.Slug)
		if preview := writing.ExtractPreview(post.Text); preview != "" {
			for _, line := range strings.Split(wordwrap.String(preview, previewWidth), "\n") {
				fmt.Fprintln(p.w, ansi.Dim+"       "+line+ansi.Reset)
			}
		}
	}
}

// ValidateResult reports the outcome of a content load.
func (p *Printer) ValidateResult(posts int, issues []content.Issue) {
	if len(issues) == 0 {
		fmt.Fprintf(p.w, ansi.Green+ansi.Bold+"✓ content ok"+ansi.Reset+" (%d post(s), no issues)\n", posts)
		return
	}
	fmt.Fprintf(p.w, ansi.Yellow+ansi.Bold+"⚠ %d issue(s)"+ansi.Reset+" across %d post(s):\n", len(issues), posts)
	for i := range issues {
		fmt.Fprintf(p.w, "  "+ansi.Yellow+"• "+ansi.Reset+"%-22s %s\n", issues[i].Category, issues[i].Error())
	}
}

// Serving announces the listen address.
func (p *Printer) Serving(addr string) {
	fmt.Fprintf(p.w, ansi.Green+"▶ serving"+ansi.Reset+" content API on %s\n", addr)
}

// Reloaded reports a content reload.
func (p *Printer) Reloaded(posts int) {
	fmt.Fprintf(p.w, ansi.Cyan+"↻ reloaded"+ansi.Reset+ansi.Dim+" (%d post(s))"+ansi.Reset+"\n", posts)
}

// Error prints a red error line.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.w, ansi.Red+ansi.Bold+"error: "+ansi.Reset+"%s\n", msg)
}

// Info prints a dim informational line.
func (p *Printer) Info(msg string) {
	fmt.Fprintf(p.w, ansi.Dim+"%s"+ansi.Reset+"\n", msg)
}
