package tui

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/folio/internal/cascade"
	"github.com/papapumpkin/folio/internal/scramble"
	"github.com/papapumpkin/folio/internal/site"
)

// Options configures the TUI.
type Options struct {
	Name    string
	Tagline []string
	Links   []string
	Cascade cascade.Options
	FPS     int
	Splash  bool
	Rand    scramble.Rand    // nil seeds from the clock
	Now     func() time.Time // nil uses time.Now
}

// AppModel is the root BubbleTea model: a navigation sidebar, the animated
// page viewport, and a footer of key hints.
type AppModel struct {
	Site     *site.Site
	Keys     KeyMap
	Sidebar  Sidebar
	Viewport viewport.Model
	Splash   *SplashModel
	Width    int
	Height   int

	Page      site.Page
	PostIndex int // post shown when Page is PagePost
	Cursor    int // selected writing entry

	opts   Options
	rng    scramble.Rand
	now    func() time.Time
	epoch  int
	anim   *cascade.Page
	frame  cascade.Frame
	status string
}

// NewAppModel creates a root model showing the about page.
func NewAppModel(s *site.Site, opts Options) AppModel {
	if opts.FPS <= 0 {
		opts.FPS = cascade.DefaultFPS
	}
	if opts.Cascade.Validate() != nil {
		opts.Cascade = cascade.DefaultOptions()
	}
	m := AppModel{
		Site: s,
		Keys: DefaultKeyMap(),
		Sidebar: Sidebar{
			Name:    opts.Name,
			Tagline: opts.Tagline,
			Links:   opts.Links,
		},
		Viewport: viewport.New(80, 20),
		opts:     opts,
		rng:      opts.Rand,
		now:      opts.Now,
	}
	if m.rng == nil {
		seed := uint64(time.Now().UnixNano())
		m.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if m.now == nil {
		m.now = time.Now
	}
	if opts.Splash {
		m.Splash = NewSplash(DefaultSplashConfig(opts.Name, opts.Tagline), m.rng, m.now())
	}
	m.mount(site.PageAbout, 0)
	return m
}

// Epoch returns the current animation epoch. Every navigation increments it.
func (m AppModel) Epoch() int { return m.epoch }

// Animation returns the mounted page animation.
func (m AppModel) Animation() *cascade.Page { return m.anim }

// Init starts the splash or the first page's frame clock.
func (m AppModel) Init() tea.Cmd {
	if m.Splash != nil && !m.Splash.Done() {
		return m.Splash.Init()
	}
	return frameCmd(m.epoch, 0)
}

// Update handles all messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.Viewport.Width = mainWidth(msg.Width)
		m.Viewport.Height = mainHeight(msg.Height)
		m.Sidebar.Height = max(msg.Height-footerHeight, 1)
		if m.Splash != nil {
			m.Splash.Update(msg)
		}
		m.render()
		return m, nil

	case splashTickMsg:
		return m.updateSplash(msg)

	case tea.KeyMsg:
		if m.Splash != nil && !m.Splash.Done() {
			if key.Matches(msg, m.Keys.Quit) {
				return m.quit()
			}
			return m.updateSplash(msg)
		}
		return m.handleKey(msg)

	case frameMsg:
		return m.handleFrame(msg)

	case MsgReload:
		m.Site.Swap(msg.Catalog)
		m.status = ""
		m.Cursor = min(m.Cursor, max(m.Site.Catalog().Len()-1, 0))
		return m, m.navigate(m.Page, m.PostIndex)

	case MsgReloadFailed:
		m.status = "RELOAD FAILED"
		return m, nil
	}
	return m, nil
}

// updateSplash forwards msg to the splash and starts the page once it ends.
func (m AppModel) updateSplash(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.Splash == nil || m.Splash.Done() {
		return m, nil
	}
	_, cmd := m.Splash.Update(msg)
	if !m.Splash.Done() {
		return m, cmd
	}
	return m, m.navigate(m.Page, m.PostIndex)
}

func (m AppModel) handleFrame(msg frameMsg) (tea.Model, tea.Cmd) {
	if msg.epoch != m.epoch || m.anim == nil {
		return m, nil
	}
	at := msg.at
	if at.IsZero() {
		at = m.now()
	}
	m.frame = m.anim.Tick(at)
	m.render()

	wait := time.Second / time.Duration(m.opts.FPS)
	if m.anim.Settled(at) {
		wait = max(m.anim.NextEvent().Sub(at), wait)
	}
	return m, frameCmd(m.epoch, wait)
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m.quit()
	case key.Matches(msg, m.Keys.Next):
		return m, m.navigate(m.cycle(1), 0)
	case key.Matches(msg, m.Keys.Prev):
		return m, m.navigate(m.cycle(-1), 0)
	case key.Matches(msg, m.Keys.About):
		return m, m.navigate(site.PageAbout, 0)
	case key.Matches(msg, m.Keys.Writing):
		return m, m.navigate(site.PageWriting, 0)
	case key.Matches(msg, m.Keys.Now):
		return m, m.navigate(site.PageNow, 0)
	case key.Matches(msg, m.Keys.Replay):
		return m, m.navigate(m.Page, m.PostIndex)
	case key.Matches(msg, m.Keys.PageUp):
		m.Viewport.HalfViewUp()
	case key.Matches(msg, m.Keys.PageDown):
		m.Viewport.HalfViewDown()
	case m.Page == site.PageWriting && key.Matches(msg, m.Keys.Up):
		m.moveCursor(-1)
	case m.Page == site.PageWriting && key.Matches(msg, m.Keys.Down):
		m.moveCursor(1)
	case m.Page == site.PageWriting && key.Matches(msg, m.Keys.Enter):
		if m.Site.Catalog().Len() > 0 {
			return m, m.navigate(site.PagePost, m.Cursor)
		}
	case m.Page == site.PagePost && key.Matches(msg, m.Keys.Back):
		return m, m.navigate(site.PageWriting, 0)
	}
	return m, nil
}

func (m AppModel) quit() (tea.Model, tea.Cmd) {
	if m.anim != nil {
		m.anim.Cancel()
	}
	return m, tea.Quit
}

// cycle returns the sidebar page dir steps away from the current one.
func (m AppModel) cycle(dir int) site.Page {
	cur := m.Page
	if cur == site.PagePost {
		cur = site.PageWriting
	}
	n := len(site.NavPages)
	for i, p := range site.NavPages {
		if p == cur {
			return site.NavPages[((i+dir)%n+n)%n]
		}
	}
	return site.PageAbout
}

func (m *AppModel) moveCursor(delta int) {
	n := m.Site.Catalog().Len()
	if n == 0 {
		return
	}
	m.Cursor = min(max(m.Cursor+delta, 0), n-1)
	m.render()
}

// navigate cancels the current page, bumps the epoch, and mounts page.
func (m *AppModel) navigate(page site.Page, index int) tea.Cmd {
	m.mount(page, index)
	m.Viewport.GotoTop()
	return frameCmd(m.epoch, 0)
}

func (m *AppModel) mount(page site.Page, index int) {
	if m.anim != nil {
		m.anim.Cancel()
	}
	m.epoch++
	m.Page, m.PostIndex = page, index
	m.Sidebar.Active = page
	m.anim = cascade.NewPage(m.Site.Text(page, index), m.opts.Cascade, m.rng, m.now())
	m.frame = cascade.Frame{}
	m.render()
}

// View renders the full TUI layout.
func (m AppModel) View() string {
	if m.Splash != nil && !m.Splash.Done() {
		return m.Splash.View()
	}
	if m.Width == 0 {
		return ""
	}
	if m.Width < MinWidth || m.Height < MinHeight {
		return styleStatusLabel.Render("terminal too small")
	}

	main := lipgloss.JoinVertical(lipgloss.Left, m.statusView(), m.Viewport.View())
	body := lipgloss.NewStyle().PaddingLeft(1).Render(main)
	if m.Width >= CompactWidth {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.Sidebar.View(), body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.footer().View())
}

func (m AppModel) footer() Footer {
	var bindings []key.Binding
	switch m.Page {
	case site.PageWriting:
		bindings = WritingFooterBindings(m.Keys)
	case site.PagePost:
		bindings = PostFooterBindings(m.Keys)
	default:
		bindings = PageFooterBindings(m.Keys)
	}
	return Footer{Width: m.Width, Bindings: bindings}
}
