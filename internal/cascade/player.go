package cascade

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/papapumpkin/folio/internal/ansi"
)

// DefaultFPS is the redraw rate used when Player.FPS is unset.
const DefaultFPS = 30

// Player drives a Page to a terminal writer, redrawing in place with ANSI
// cursor control until the page is revealed. In Idle mode it keeps running the
// glitch scheduler until the context is cancelled.
type Player struct {
	Out          io.Writer
	Width        int
	PreviewLines int
	FPS          int
	Idle         bool
	Color        bool
	Now          func() time.Time
}

// Play runs page to completion. The page is cancelled when ctx is done. In
// Idle mode cancellation is the normal exit and Play returns nil.
func (pl Player) Play(ctx context.Context, page *Page) error {
	fps := pl.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	frame := time.Second / time.Duration(fps)
	now := pl.Now
	if now == nil {
		now = time.Now
	}

	if pl.Color {
		_, _ = io.WriteString(pl.Out, ansi.HideCursor)
		defer func() { _, _ = io.WriteString(pl.Out, ansi.ShowCursor) }()
	}

	timer := time.NewTimer(0)
	defer timer.Stop()

	drawn := 0
	for {
		select {
		case <-ctx.Done():
			page.Cancel()
			if pl.Idle {
				return nil
			}
			return ctx.Err()
		case <-timer.C:
		}

		t := now()
		rows := page.Tick(t).Rows(pl.Width, pl.PreviewLines)
		if err := pl.draw(rows, drawn); err != nil {
			page.Cancel()
			return fmt.Errorf("drawing frame: %w", err)
		}
		drawn = max(drawn, len(rows))

		if !pl.Idle && page.Revealed(t) {
			return nil
		}
		wait := frame
		if page.Settled(t) {
			wait = max(page.NextEvent().Sub(t), frame)
		}
		timer.Reset(wait)
	}
}

// draw rewrites the previous frame's rows in place.
func (pl Player) draw(rows []Row, previous int) error {
	var b strings.Builder
	if previous > 0 {
		b.WriteString("\r")
		b.WriteString(ansi.CursorUp(previous))
	}
	for _, r := range rows {
		b.WriteString(ansi.ClearLine)
		b.WriteString(pl.style(r))
		b.WriteByte('\n')
	}
	// Clear rows left over from a taller previous frame.
	for i := len(rows); i < previous; i++ {
		b.WriteString(ansi.ClearLine)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(pl.Out, b.String())
	return err
}

func (pl Player) style(r Row) string {
	if r.Opacity <= 0 {
		return ""
	}
	if !pl.Color {
		return r.Text
	}
	switch {
	case r.Kind == KindThick || r.Kind == KindThin:
		if r.Opacity < 1 {
			return ansi.Dim + r.Text + ansi.Reset
		}
		return ansi.Cyan + r.Text + ansi.Reset
	case r.Glitching:
		return ansi.Magenta + r.Text + ansi.Reset
	case r.Kind == KindPreview:
		return ansi.Dim + r.Text + ansi.Reset
	default:
		return r.Text
	}
}
