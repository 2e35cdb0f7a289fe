// Package scramble implements the per-line decode animation: a left-to-right
// reveal that resolves random glyphs into the true text, and a transient
// glitch overlay that scrambles a span of already revealed text.
//
// A Reveal is a polled state machine. Callers pass the current time to Tick
// and render the returned frame; no timers or goroutines are owned here.
package scramble

import (
	"time"
	"unicode"
)

// Glyphs is the decorative set random substitutions are drawn from.
const Glyphs = "█▓▒░╔╗╚╝╠╣╦╩╬│─┌┐└┘├┤┬┴┼▀▄▌▐■□▪▫●○◘◙◦∙·×÷±≈≠≤≥«»¬¦¡¿"

var glyphs = []rune(Glyphs)

// Reveal tuning.
const (
	// Window is how many positions past the resolved prefix scramble.
	Window = 8
	// WindowHit is the chance a window position shows its true rune.
	WindowHit = 0.3
)

// Rand is the randomness source. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// State is the reveal lifecycle state.
type State int

const (
	// Pending lines render blank until their start delay elapses.
	Pending State = iota
	// Revealing lines decode left to right.
	Revealing
	// Done lines show their exact text and may glitch.
	Done
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Revealing:
		return "revealing"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Reveal animates one line. It is not safe for concurrent use.
type Reveal struct {
	text     string
	runes    []rune
	delay    time.Duration
	duration time.Duration
	rng      Rand

	state     State
	mounted   bool
	mountedAt time.Time
	startedAt time.Time
	cancelled bool
	last      string

	glitch glitch
}

// NewReveal creates a reveal for text that starts delay after mount and
// resolves over duration.
func NewReveal(text string, delay, duration time.Duration, rng Rand) *Reveal {
	return &Reveal{
		text:     text,
		runes:    []rune(text),
		delay:    delay,
		duration: duration,
		rng:      rng,
	}
}

// Mount records the mount time. Tick mounts implicitly on first call.
func (r *Reveal) Mount(now time.Time) {
	if r.mounted || r.cancelled {
		return
	}
	r.mounted = true
	r.mountedAt = now
	r.last = r.blank()
}

// Text returns the true line text.
func (r *Reveal) Text() string { return r.text }

// Len returns the line length in runes.
func (r *Reveal) Len() int { return len(r.runes) }

// State returns the lifecycle state.
func (r *Reveal) State() State { return r.state }

// Done reports whether the text has fully resolved.
func (r *Reveal) Done() bool { return r.state == Done }

// Cancelled reports whether Cancel was called.
func (r *Reveal) Cancelled() bool { return r.cancelled }

// Tick advances the animation to now and returns the frame to display. After
// Cancel it returns the last frame without changing any state.
func (r *Reveal) Tick(now time.Time) string {
	if r.cancelled {
		return r.last
	}
	if !r.mounted {
		r.Mount(now)
	}

	switch r.state {
	case Pending:
		if now.Before(r.mountedAt.Add(r.delay)) {
			r.last = r.blank()
			return r.last
		}
		r.state = Revealing
		r.startedAt = now
		r.last = r.revealFrame(0)
	case Revealing:
		r.last = r.revealFrame(now.Sub(r.startedAt))
	case Done:
		r.last = r.glitchFrame(now)
	}
	return r.last
}

// Cancel tears the reveal down. No later call changes its state. A revealed
// line is restored to its exact text; a line still decoding keeps its last
// frame.
func (r *Reveal) Cancel() {
	r.cancelled = true
	r.glitch = glitch{}
	if r.state == Done {
		r.last = r.text
	}
}

func (r *Reveal) blank() string {
	out := make([]rune, len(r.runes))
	for i, c := range r.runes {
		if unicode.IsSpace(c) {
			out[i] = c
		} else {
			out[i] = ' '
		}
	}
	return string(out)
}

func (r *Reveal) revealFrame(elapsed time.Duration) string {
	progress := 1.0
	if r.duration > 0 {
		progress = min(float64(elapsed)/float64(r.duration), 1)
	}
	if progress >= 1 {
		r.state = Done
		return r.text
	}

	resolved := int(progress * float64(len(r.runes)))
	out := make([]rune, len(r.runes))
	for i, c := range r.runes {
		switch {
		case unicode.IsSpace(c) || i < resolved:
			out[i] = c
		case i < resolved+Window:
			if r.rng.Float64() < WindowHit {
				out[i] = c
			} else {
				out[i] = r.glyph()
			}
		default:
			out[i] = ' '
		}
	}
	return string(out)
}

func (r *Reveal) glyph() rune {
	return glyphs[r.rng.IntN(len(glyphs))]
}
