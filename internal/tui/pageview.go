package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/folio/internal/cascade"
	"github.com/papapumpkin/folio/internal/site"
)

// statusView renders the stream indicator above the page.
func (m AppModel) statusView() string {
	label := "STREAM ACTIVE"
	if m.status != "" {
		label = m.status
	}
	line := styleStatusDot.Render("●") + " " + styleStatusLabel.Render(label)
	rule := styleStatusRule.Render(strings.Repeat("─", m.Viewport.Width))
	return line + "\n" + rule
}

// render lays the current frame out into the viewport. On the writing page
// the selected entry is marked and kept in view.
func (m *AppModel) render() {
	width := max(m.Viewport.Width-1, 1)
	label := ""
	if m.Page == site.PageWriting {
		label = fmt.Sprintf("[%03d]", m.Cursor+1)
	}

	var out []string
	selTop, selBottom := -1, -1
	selecting := false
	for _, l := range m.frame.Lines {
		if label != "" {
			switch {
			case strings.HasPrefix(l.Text, label):
				selecting = true
				selTop = len(out)
			case l.Kind == cascade.KindThin:
				selecting = false
			}
		}
		rows := cascade.Frame{Lines: []cascade.FrameLine{l}}.Rows(width, m.opts.Cascade.PreviewLines)
		for _, r := range rows {
			prefix := " "
			text := styleRow(r)
			if selecting {
				prefix = styleSelectionIndicator.Render(selectionIndicator)
				if r.Kind == cascade.KindPlain && !r.Glitching {
					text = styleSelected.Render(r.Text)
				}
				selBottom = len(out)
			}
			out = append(out, prefix+text)
		}
	}

	m.Viewport.SetContent(strings.Join(out, "\n"))
	if selTop >= 0 {
		m.scrollTo(selTop, selBottom)
	}
}

// scrollTo adjusts the viewport so rows top..bottom are visible.
func (m *AppModel) scrollTo(top, bottom int) {
	h := m.Viewport.Height
	switch {
	case top < m.Viewport.YOffset:
		m.Viewport.SetYOffset(top)
	case bottom >= m.Viewport.YOffset+h:
		m.Viewport.SetYOffset(max(bottom-h+1, top))
	}
}

func styleRow(r cascade.Row) string {
	if r.Opacity <= 0 || r.Text == "" {
		return ""
	}
	var style lipgloss.Style
	switch {
	case r.Kind == cascade.KindThick || r.Kind == cascade.KindThin:
		style = styleRule
		if r.Opacity < 1 {
			style = styleRuleFading
		}
	case r.Glitching:
		style = styleGlitch
	case r.Kind == cascade.KindPreview:
		style = stylePreview
	default:
		style = stylePlain
	}
	return style.Render(r.Text)
}
