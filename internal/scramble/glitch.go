package scramble

import (
	"time"
	"unicode"
)

// Glitch phase timing.
const (
	WaveIn       = 500 * time.Millisecond
	WaveOut      = 250 * time.Millisecond
	fullPerRune  = 50 * time.Millisecond
	fullMax      = 500 * time.Millisecond
	waveBand     = 3
	waveBandHit  = 0.5
	fullScramble = 0.85
)

// Span is a half-open rune range [Start, End) within a line.
type Span struct {
	Start, End int
}

// Len returns the number of runes in the span.
func (s Span) Len() int {
	return max(s.End-s.Start, 0)
}

type glitch struct {
	active bool
	span   Span
	at     time.Time
}

// FullDuration returns the length of the full-scramble phase for a span of
// n runes.
func FullDuration(n int) time.Duration {
	return min(fullPerRune+time.Duration(max(n-1, 0))*fullPerRune, fullMax)
}

// GlitchDuration returns the total glitch length for a span of n runes.
func GlitchDuration(n int) time.Duration {
	return WaveIn + FullDuration(n) + WaveOut
}

// Glitch starts the overlay on span at time at. It is refused, returning
// false, unless the line is Done and not cancelled. The span is clamped to the
// line; an empty span is refused. A running glitch is replaced.
func (r *Reveal) Glitch(span Span, at time.Time) bool {
	if r.cancelled || r.state != Done {
		return false
	}
	span.Start = max(span.Start, 0)
	span.End = min(span.End, len(r.runes))
	if span.Len() == 0 {
		return false
	}
	r.glitch = glitch{active: true, span: span, at: at}
	return true
}

// CancelGlitch stops any running glitch. The next frame is the exact text.
func (r *Reveal) CancelGlitch() {
	r.glitch = glitch{}
}

// Glitching reports whether a glitch overlay is running.
func (r *Reveal) Glitching() bool {
	return r.glitch.active
}

// GlitchEnd returns when the running glitch restores the text.
func (r *Reveal) GlitchEnd() (time.Time, bool) {
	if !r.glitch.active {
		return time.Time{}, false
	}
	return r.glitch.at.Add(GlitchDuration(r.glitch.span.Len())), true
}

func (r *Reveal) glitchFrame(now time.Time) string {
	g := r.glitch
	if !g.active {
		return r.text
	}
	t := now.Sub(g.at)
	n := g.span.Len()
	full := FullDuration(n)
	if t < 0 {
		return r.text
	}
	if t >= WaveIn+full+WaveOut {
		r.glitch = glitch{}
		return r.text
	}

	out := []rune(r.text)
	for k := range n {
		i := g.span.Start + k
		if unicode.IsSpace(out[i]) {
			continue
		}
		if r.glitched(k, n, t, full) {
			out[i] = r.glyph()
		}
	}
	return string(out)
}

// glitched reports whether span position k shows a glyph at offset t.
func (r *Reveal) glitched(k, n int, t, full time.Duration) bool {
	switch {
	case t < WaveIn:
		wave := int(float64(t) / float64(WaveIn) * float64(n))
		if k < wave {
			return true
		}
		if k < wave+waveBand {
			return r.rng.Float64() < waveBandHit
		}
		return false
	case t < WaveIn+full:
		return r.rng.Float64() < fullScramble
	default:
		wave := int(float64(t-WaveIn-full) / float64(WaveOut) * float64(n))
		if k < wave {
			return false
		}
		if k < wave+waveBand {
			return r.rng.Float64() < waveBandHit
		}
		return true
	}
}
