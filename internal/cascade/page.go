package cascade

import (
	"time"
	"unicode"

	"github.com/papapumpkin/folio/internal/scramble"
)

// FrameLine is one line of a rendered frame.
type FrameLine struct {
	Kind      Kind
	Text      string  // true text
	Display   string  // text to draw this frame
	Opacity   float64 // separator fade, 1 for other kinds once started
	Glitching bool
}

// Frame is a full page snapshot at one instant.
type Frame struct {
	Lines []FrameLine
}

// Page animates one mounted page. It owns a reveal per animated line and the
// idle glitch scheduler. A Page is not safe for concurrent use; drivers poll
// Tick from a single goroutine.
type Page struct {
	opts    Options
	rng     scramble.Rand
	lines   []Line
	reveals []*scramble.Reveal // nil for blank and separator lines

	mountedAt time.Time
	idleAt    time.Time
	nextPick  time.Time

	target      int
	targetUntil time.Time
	glitched    int // last line given a glitch, which may still be running
	glitchEpoch int

	cancelled bool
	last      Frame
}

// NewPage mounts text at now. Invalid options are replaced by defaults.
func NewPage(text string, opts Options, rng scramble.Rand, now time.Time) *Page {
	if opts.Validate() != nil {
		opts = DefaultOptions()
	}
	lines := Split(text)
	p := &Page{
		opts:      opts,
		rng:       rng,
		lines:     lines,
		reveals:   make([]*scramble.Reveal, len(lines)),
		mountedAt: now,
		idleAt:    now.Add(opts.IdleAfter(len(lines))),
		target:    -1,
		glitched:  -1,
	}
	for i, l := range lines {
		if l.Kind != KindPlain && l.Kind != KindPreview {
			continue
		}
		n := len([]rune(l.Text))
		r := scramble.NewReveal(l.Text, opts.Delay(i), opts.Duration(n), rng)
		r.Mount(now)
		p.reveals[i] = r
	}
	p.nextPick = p.idleAt.Add(p.interval())
	return p
}

// Lines returns the classified page lines.
func (p *Page) Lines() []Line { return p.lines }

// Target returns the line index currently held for glitching, or -1.
func (p *Page) Target() int { return p.target }

// GlitchEpoch counts glitch picks since mount.
func (p *Page) GlitchEpoch() int { return p.glitchEpoch }

// IdleAt returns when the idle glitch scheduler starts.
func (p *Page) IdleAt() time.Time { return p.idleAt }

// Cancelled reports whether the page has been torn down.
func (p *Page) Cancelled() bool { return p.cancelled }

// Cancel tears the page down: every reveal and the scheduler stop, and Tick
// returns the last frame from then on. Revealed lines in that frame show
// their exact text even if they were glitching.
func (p *Page) Cancel() {
	if p.cancelled {
		return
	}
	p.cancelled = true
	p.target = -1
	for i, r := range p.reveals {
		if r == nil {
			continue
		}
		r.Cancel()
		if r.Done() && i < len(p.last.Lines) {
			p.last.Lines[i].Display = r.Text()
			p.last.Lines[i].Glitching = false
		}
	}
}

// Tick advances every line and the glitch scheduler to now.
func (p *Page) Tick(now time.Time) Frame {
	if p.cancelled {
		return p.last
	}

	if p.target >= 0 && !now.Before(p.targetUntil) {
		p.target = -1
	}
	if !now.Before(p.nextPick) {
		p.pick(now)
	}

	f := Frame{Lines: make([]FrameLine, len(p.lines))}
	for i, l := range p.lines {
		fl := FrameLine{Kind: l.Kind, Text: l.Text, Opacity: 1}
		switch l.Kind {
		case KindBlank:
		case KindThick, KindThin:
			fl.Opacity = p.opacity(i, now)
			fl.Display = l.Text
		default:
			r := p.reveals[i]
			fl.Display = r.Tick(now)
			fl.Glitching = r.Glitching()
			if r.State() == scramble.Pending {
				fl.Opacity = 0
			}
		}
		f.Lines[i] = fl
	}
	p.last = f
	return f
}

// Revealed reports whether every line has finished revealing or fading.
func (p *Page) Revealed(now time.Time) bool {
	if p.cancelled {
		return true
	}
	for i, l := range p.lines {
		switch l.Kind {
		case KindThick, KindThin:
			if p.opacity(i, now) < 1 {
				return false
			}
		case KindPlain, KindPreview:
			if !p.reveals[i].Done() {
				return false
			}
		}
	}
	return true
}

// Settled reports whether the page is revealed and no glitch is running. A
// settled page only changes at NextEvent.
func (p *Page) Settled(now time.Time) bool {
	if !p.Revealed(now) {
		return false
	}
	if p.glitched >= 0 && p.reveals[p.glitched].Glitching() {
		return false
	}
	return true
}

// NextEvent returns the next time the scheduler acts: a glitch pick or the
// release of the current target. It is zero after Cancel.
func (p *Page) NextEvent() time.Time {
	if p.cancelled {
		return time.Time{}
	}
	if p.target >= 0 && p.targetUntil.Before(p.nextPick) {
		return p.targetUntil
	}
	return p.nextPick
}

func (p *Page) opacity(i int, now time.Time) float64 {
	elapsed := now.Sub(p.mountedAt.Add(p.opts.Delay(i)))
	if elapsed <= 0 {
		return 0
	}
	if p.opts.Fade <= 0 || elapsed >= p.opts.Fade {
		return 1
	}
	return float64(elapsed) / float64(p.opts.Fade)
}

// interval draws a uniform wait in [GlitchMin, GlitchMax].
func (p *Page) interval() time.Duration {
	span := p.opts.GlitchMax - p.opts.GlitchMin
	return p.opts.GlitchMin + time.Duration(p.rng.Float64()*float64(span))
}

// pick chooses a random word on a random settled plain line and glitches it.
// The previous target's glitch is cancelled so only one line glitches.
func (p *Page) pick(now time.Time) {
	p.nextPick = now.Add(p.interval())

	var eligible []int
	for i, l := range p.lines {
		if l.Kind != KindPlain || !p.reveals[i].Done() || len(Words(l.Text)) == 0 {
			continue
		}
		eligible = append(eligible, i)
	}
	if len(eligible) == 0 {
		return
	}

	idx := eligible[p.rng.IntN(len(eligible))]
	words := Words(p.lines[idx].Text)
	span := words[p.rng.IntN(len(words))]

	if p.glitched >= 0 {
		p.reveals[p.glitched].CancelGlitch()
	}
	if !p.reveals[idx].Glitch(span, now) {
		p.target = -1
		return
	}
	p.target, p.glitched = idx, idx
	p.targetUntil = now.Add(p.opts.GlitchCeiling)
	p.glitchEpoch++
}

// Words returns the rune spans of maximal non-whitespace runs that contain
// at least one letter.
func Words(text string) []scramble.Span {
	var spans []scramble.Span
	start, letter := -1, false
	i := 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 && letter {
				spans = append(spans, scramble.Span{Start: start, End: i})
			}
			start, letter = -1, false
		} else {
			if start < 0 {
				start = i
			}
			if unicode.IsLetter(r) {
				letter = true
			}
		}
		i++
	}
	if start >= 0 && letter {
		spans = append(spans, scramble.Span{Start: start, End: i})
	}
	return spans
}
