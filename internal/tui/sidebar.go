package tui

import (
	"strings"

	"github.com/papapumpkin/folio/internal/site"
)

// Sidebar renders the site identity, navigation, and links.
type Sidebar struct {
	Name    string
	Tagline []string
	Links   []string
	Active  site.Page
	Height  int
}

// View renders the sidebar at SidebarWidth.
func (s Sidebar) View() string {
	inner := SidebarWidth - 3 // border plus horizontal padding

	var b strings.Builder
	b.WriteString(styleSiteName.Render(clipCells(s.Name, inner)))
	b.WriteByte('\n')
	for _, line := range s.Tagline {
		b.WriteString(styleTagline.Render(clipCells(line, inner)))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	active := s.Active
	if active == site.PagePost {
		active = site.PageWriting
	}
	for _, p := range site.NavPages {
		if p == active {
			b.WriteString(styleNavActive.Render(navMarker + p.Title()))
		} else {
			b.WriteString(styleNavNormal.Render(strings.Repeat(" ", len(navMarker)) + p.Title()))
		}
		b.WriteByte('\n')
	}

	if len(s.Links) > 0 {
		b.WriteByte('\n')
		for _, l := range s.Links {
			b.WriteString(styleLink.Render(clipCells(l, inner)))
			b.WriteByte('\n')
		}
	}

	style := styleSidebar.Width(SidebarWidth - 1)
	if s.Height > 0 {
		style = style.Height(s.Height)
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}
