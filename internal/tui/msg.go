package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/folio/internal/catalog"
)

// frameMsg drives the page cascade. Ticks carry the epoch of the page that
// scheduled them; a tick from an older epoch is dropped.
type frameMsg struct {
	epoch int
	at    time.Time
}

// MsgReload is sent when content changes on disk and a new catalog has been
// loaded. The current page is remounted against it.
type MsgReload struct {
	Catalog *catalog.Catalog
}

// MsgReloadFailed is sent when a content reload fails. The previous catalog
// stays in place.
type MsgReloadFailed struct {
	Err error
}

// frameCmd schedules the next frame for epoch after d.
func frameCmd(epoch int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg{epoch: epoch, at: t}
	})
}
