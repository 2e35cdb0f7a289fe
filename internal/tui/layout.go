package tui

import "github.com/muesli/reflow/truncate"

// Minimum terminal dimensions for usable rendering.
const (
	MinWidth  = 40
	MinHeight = 10
)

// Layout breakpoints for adaptive rendering.
const (
	// CompactWidth hides footer descriptions and the sidebar.
	CompactWidth = 72
	// SidebarWidth is the fixed width of the navigation sidebar, border included.
	SidebarWidth = 26
)

// Fixed chrome heights around the page viewport.
const (
	statusHeight = 2 // status line plus its rule
	footerHeight = 2 // top border plus hint line
)

// mainWidth returns the page viewport width for a terminal width.
func mainWidth(width int) int {
	if width < CompactWidth {
		return max(width-2, 1)
	}
	return max(width-SidebarWidth-2, 1)
}

// mainHeight returns the page viewport height for a terminal height.
func mainHeight(height int) int {
	return max(height-statusHeight-footerHeight, 1)
}

// clipCells truncates s to width terminal cells with an ellipsis.
func clipCells(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return truncate.StringWithTail(s, uint(width), "…")
}
