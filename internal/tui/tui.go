// Package tui is the full-screen terminal front end: a sidebar for
// navigation and a viewport playing each page's cascade animation.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/folio/internal/site"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram creates a BubbleTea program on the alternate screen.
func NewProgram(s *site.Site, opts Options, progOpts ...tea.ProgramOption) *Program {
	allOpts := []tea.ProgramOption{tea.WithAltScreen()}
	allOpts = append(allOpts, progOpts...)
	return tea.NewProgram(NewAppModel(s, opts), allOpts...)
}

// Run runs p, blocking until it exits.
func Run(p *Program) error {
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
