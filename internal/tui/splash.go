package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/folio/internal/scramble"
)

// SplashConfig controls the boot splash.
type SplashConfig struct {
	Name     string
	Tagline  []string
	FPS      int
	Stagger  time.Duration // between successive lines
	Duration time.Duration // per-line decode time
	Hold     time.Duration // after the last line resolves
}

// DefaultSplashConfig returns the standard boot splash timing.
func DefaultSplashConfig(name string, tagline []string) SplashConfig {
	return SplashConfig{
		Name:     name,
		Tagline:  tagline,
		FPS:      30,
		Stagger:  150 * time.Millisecond,
		Duration: 900 * time.Millisecond,
		Hold:     600 * time.Millisecond,
	}
}

// SplashModel implements tea.Model for a boot screen that scramble-decodes
// the site name and tagline. Any key skips it.
type SplashModel struct {
	cfg     SplashConfig
	reveals []*scramble.Reveal
	frames  []string
	doneAt  time.Time
	done    bool
	width   int
	height  int
}

// splashTickMsg drives the animation frame clock.
type splashTickMsg time.Time

// NewSplash creates a SplashModel mounted at now.
func NewSplash(cfg SplashConfig, rng scramble.Rand, now time.Time) *SplashModel {
	if cfg.FPS <= 0 {
		cfg.FPS = 30
	}
	lines := append([]string{cfg.Name}, cfg.Tagline...)
	s := &SplashModel{cfg: cfg, frames: make([]string, len(lines))}
	for i, l := range lines {
		r := scramble.NewReveal(l, time.Duration(i)*cfg.Stagger, cfg.Duration, rng)
		r.Mount(now)
		s.reveals = append(s.reveals, r)
	}
	s.advance(now)
	return s
}

// Init starts the animation tick.
func (s *SplashModel) Init() tea.Cmd { return s.tick() }

// Done reports whether the splash has finished or been skipped.
func (s *SplashModel) Done() bool { return s.done }

// Title returns the current frame of the site name.
func (s *SplashModel) Title() string { return s.frames[0] }

func (s *SplashModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(s.cfg.FPS), func(t time.Time) tea.Msg {
		return splashTickMsg(t)
	})
}

// Update handles tick, size, and key messages.
func (s *SplashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width, s.height = msg.Width, msg.Height
	case tea.KeyMsg:
		s.skip()
	case splashTickMsg:
		if s.done {
			return s, nil
		}
		s.advance(time.Time(msg))
		if s.done {
			return s, nil
		}
		return s, s.tick()
	}
	return s, nil
}

// advance ticks every line to now and marks the splash done after the hold.
func (s *SplashModel) advance(now time.Time) {
	all := true
	for i, r := range s.reveals {
		s.frames[i] = r.Tick(now)
		all = all && r.Done()
	}
	if !all {
		return
	}
	if s.doneAt.IsZero() {
		s.doneAt = now
	}
	if !now.Before(s.doneAt.Add(s.cfg.Hold)) {
		s.done = true
	}
}

func (s *SplashModel) skip() {
	for i, r := range s.reveals {
		r.Cancel()
		s.frames[i] = r.Text()
	}
	s.done = true
}

// View renders the current frame centered in the terminal.
func (s *SplashModel) View() string {
	var b strings.Builder
	b.WriteString(styleSiteName.Render(s.frames[0]))
	for _, f := range s.frames[1:] {
		b.WriteByte('\n')
		b.WriteString(styleTagline.Render(f))
	}
	if s.width <= 0 || s.height <= 0 {
		return b.String()
	}
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, b.String())
}
