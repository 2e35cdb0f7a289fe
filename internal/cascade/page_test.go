package cascade

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/papapumpkin/folio/internal/scramble"
)

const samplePage = "TITLE\n===\n\nHello world here\n{{preview:some preview text}}\n---"

var t0 = time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC)

func seeded(seed uint64) scramble.Rand { return rand.New(rand.NewPCG(seed, seed+1)) }

// run ticks p every step from start until end, calling fn on each frame.
func run(p *Page, start, end time.Time, step time.Duration, fn func(time.Time, Frame)) {
	for now := start; !now.After(end); now = now.Add(step) {
		f := p.Tick(now)
		if fn != nil {
			fn(now, f)
		}
	}
}

func TestPage_Mount(t *testing.T) {
	t.Parallel()

	p := NewPage(samplePage, DefaultOptions(), seeded(1), t0)
	f := p.Tick(t0)
	if len(f.Lines) != 6 {
		t.Fatalf("got %d lines, want 6", len(f.Lines))
	}
	for i, l := range f.Lines {
		if l.Kind == KindBlank {
			continue
		}
		if l.Opacity != 0 {
			t.Errorf("line %d opacity at mount = %v, want 0", i, l.Opacity)
		}
		if l.Kind == KindPlain && strings.TrimSpace(l.Display) != "" {
			t.Errorf("line %d shows %q before its delay", i, l.Display)
		}
	}
	if p.Settled(t0) {
		t.Error("page settled at mount")
	}
}

func TestPage_SeparatorFade(t *testing.T) {
	t.Parallel()

	o := DefaultOptions()
	p := NewPage(samplePage, o, seeded(1), t0)
	tests := []struct {
		at   time.Duration
		want float64
	}{
		{o.Delay(1) - time.Millisecond, 0},
		{o.Delay(1) + o.Fade/2, 0.5},
		{o.Delay(1) + o.Fade, 1},
		{o.Delay(1) + time.Hour, 1},
	}
	for _, tt := range tests {
		f := p.Tick(t0.Add(tt.at))
		if got := f.Lines[1].Opacity; got != tt.want {
			t.Errorf("thick opacity at %v = %v, want %v", tt.at, got, tt.want)
		}
		if f.Lines[1].Display != "===" {
			t.Errorf("separator display = %q", f.Lines[1].Display)
		}
	}
}

func TestPage_RevealsSettle(t *testing.T) {
	t.Parallel()

	p := NewPage(samplePage, DefaultOptions(), seeded(2), t0)
	var last Frame
	run(p, t0, t0.Add(time.Second), 10*time.Millisecond, func(_ time.Time, f Frame) { last = f })

	if !p.Settled(t0.Add(time.Second)) {
		t.Fatal("page not settled after 1s")
	}
	for i, l := range last.Lines {
		if l.Display != l.Text {
			t.Errorf("line %d display = %q, want %q", i, l.Display, l.Text)
		}
	}
	if last.Lines[4].Text != "some preview text" {
		t.Errorf("preview text = %q", last.Lines[4].Text)
	}
	if p.Target() != -1 {
		t.Error("glitch target chosen before idle")
	}
}

func TestPage_IdleGlitch(t *testing.T) {
	t.Parallel()

	o := DefaultOptions()
	p := NewPage(samplePage, o, seeded(3), t0)
	end := t0.Add(o.IdleAfter(6) + 3*o.GlitchMax)

	sawGlitch := false
	run(p, t0, end, 10*time.Millisecond, func(now time.Time, f Frame) {
		active := 0
		for i, l := range f.Lines {
			if !l.Glitching {
				continue
			}
			active++
			sawGlitch = true
			if l.Kind != KindPlain {
				t.Fatalf("line %d of kind %v glitched", i, l.Kind)
			}
			if now.Before(p.IdleAt()) {
				t.Fatalf("glitch at %v before idle start", now.Sub(t0))
			}
		}
		if active > 1 {
			t.Fatalf("%d lines glitching at %v", active, now.Sub(t0))
		}
	})
	if !sawGlitch || p.GlitchEpoch() == 0 {
		t.Errorf("no glitch in %v of idle time (epoch %d)", 3*o.GlitchMax, p.GlitchEpoch())
	}
}

func TestPage_OneGlitchAtATime(t *testing.T) {
	t.Parallel()

	o := DefaultOptions()
	o.GlitchMin = 100 * time.Millisecond
	o.GlitchMax = 200 * time.Millisecond
	o.GlitchCeiling = 50 * time.Millisecond
	text := "alpha beta gamma\ndelta epsilon\nzeta eta theta\niota kappa"
	p := NewPage(text, o, seeded(4), t0)

	run(p, t0, t0.Add(10*time.Second), 5*time.Millisecond, func(now time.Time, f Frame) {
		active := 0
		for _, l := range f.Lines {
			if l.Glitching {
				active++
			}
		}
		if active > 1 {
			t.Fatalf("%d lines glitching at %v", active, now.Sub(t0))
		}
	})
	if p.GlitchEpoch() < 10 {
		t.Errorf("GlitchEpoch = %d, want many picks", p.GlitchEpoch())
	}
}

func TestPage_TargetReleased(t *testing.T) {
	t.Parallel()

	o := DefaultOptions()
	o.GlitchMin = 5 * time.Second
	p := NewPage("one two three", o, seeded(5), t0)
	run(p, t0, t0.Add(o.IdleAfter(1)), 10*time.Millisecond, nil)

	pick := p.NextEvent()
	p.Tick(pick)
	if p.Target() != 0 {
		t.Fatalf("Target after pick = %d, want 0", p.Target())
	}
	if got := p.NextEvent(); !got.Equal(pick.Add(o.GlitchCeiling)) {
		t.Errorf("NextEvent = %v, want target release at %v", got.Sub(t0), pick.Add(o.GlitchCeiling).Sub(t0))
	}
	p.Tick(pick.Add(o.GlitchCeiling))
	if p.Target() != -1 {
		t.Errorf("Target after ceiling = %d, want -1", p.Target())
	}
}

func TestPage_NoEligibleLines(t *testing.T) {
	t.Parallel()

	o := DefaultOptions()
	p := NewPage("===\n\n---\n{{preview:not eligible}}\n2025", o, seeded(6), t0)
	run(p, t0, t0.Add(30*time.Second), 20*time.Millisecond, func(_ time.Time, f Frame) {
		for i, l := range f.Lines {
			if l.Glitching {
				t.Fatalf("line %d glitched with no eligible lines", i)
			}
		}
	})
	if p.GlitchEpoch() != 0 {
		t.Errorf("GlitchEpoch = %d, want 0", p.GlitchEpoch())
	}
	if !p.NextEvent().After(t0.Add(30 * time.Second)) {
		t.Error("scheduler did not reschedule past the last skipped pick")
	}
}

func TestPage_Cancel(t *testing.T) {
	t.Parallel()

	p := NewPage(samplePage, DefaultOptions(), seeded(7), t0)
	run(p, t0, t0.Add(300*time.Millisecond), 10*time.Millisecond, nil)
	before := p.Tick(t0.Add(310 * time.Millisecond))
	p.Cancel()
	p.Cancel()

	after := p.Tick(t0.Add(time.Minute))
	for i := range before.Lines {
		if after.Lines[i] != before.Lines[i] {
			t.Errorf("line %d changed after cancel: %+v -> %+v", i, before.Lines[i], after.Lines[i])
		}
	}
	if !p.Cancelled() || !p.NextEvent().IsZero() || !p.Settled(t0.Add(time.Minute)) {
		t.Error("cancelled page should be settled with no next event")
	}
	if p.Target() != -1 || p.GlitchEpoch() != 0 {
		t.Error("cancelled page picked a glitch target")
	}
}

func TestPage_CancelDuringGlitch(t *testing.T) {
	t.Parallel()

	o := DefaultOptions()
	o.GlitchMin = 5 * time.Second
	text := "one two three"
	p := NewPage(text, o, seeded(5), t0)
	run(p, t0, t0.Add(o.IdleAfter(1)), 10*time.Millisecond, nil)

	pick := p.NextEvent()
	p.Tick(pick)
	mid := p.Tick(pick.Add(scramble.WaveIn + 10*time.Millisecond))
	if p.Target() != 0 || !mid.Lines[0].Glitching {
		t.Fatalf("expected line 0 mid-glitch, got target %d frame %+v", p.Target(), mid.Lines[0])
	}

	p.Cancel()
	after := p.Tick(pick.Add(time.Minute))
	if got := after.Lines[0]; got.Display != text || got.Glitching {
		t.Errorf("line after cancel = %+v, want exact text %q", got, text)
	}
}

func TestPage_InvalidOptionsFallBack(t *testing.T) {
	t.Parallel()

	p := NewPage("x", Options{}, seeded(8), t0)
	if want := t0.Add(DefaultOptions().IdleAfter(1)); !p.IdleAt().Equal(want) {
		t.Errorf("IdleAt = %v, want defaults", p.IdleAt().Sub(t0))
	}
}

func TestWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want []scramble.Span
	}{
		{"", nil},
		{"   ", nil},
		{"2025 ---", nil},
		{"hello", []scramble.Span{{Start: 0, End: 5}}},
		{"The gap, 2025 — vast!", []scramble.Span{{Start: 0, End: 3}, {Start: 4, End: 8}, {Start: 16, End: 21}}},
		{"  ünï  x1", []scramble.Span{{Start: 2, End: 5}, {Start: 7, End: 9}}},
	}
	for _, tt := range tests {
		got := Words(tt.text)
		if len(got) != len(tt.want) {
			t.Errorf("Words(%q) = %v, want %v", tt.text, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Words(%q) = %v, want %v", tt.text, got, tt.want)
				break
			}
		}
	}
}
