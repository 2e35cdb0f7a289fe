package cascade

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidOptions is returned by Options.Validate.
var ErrInvalidOptions = errors.New("invalid cascade options")

// Options tunes cascade timing.
type Options struct {
	BaseDelay     time.Duration // before the first line starts
	Stagger       time.Duration // added per line index
	LineDuration  time.Duration // base reveal duration
	PerRune       time.Duration // added to the reveal duration per rune
	SettleMargin  time.Duration // after the last line's start before idling
	Fade          time.Duration // separator fade-in
	PreviewLines  int           // rows a preview block is clipped to
	GlitchMin     time.Duration // shortest idle wait between glitches
	GlitchMax     time.Duration // longest idle wait between glitches
	GlitchCeiling time.Duration // how long a glitch target is held
}

// DefaultOptions returns the standard cascade timing.
func DefaultOptions() Options {
	return Options{
		BaseDelay:     50 * time.Millisecond,
		Stagger:       35 * time.Millisecond,
		LineDuration:  400 * time.Millisecond,
		PerRune:       2 * time.Millisecond,
		SettleMargin:  500 * time.Millisecond,
		Fade:          300 * time.Millisecond,
		PreviewLines:  2,
		GlitchMin:     time.Second,
		GlitchMax:     10 * time.Second,
		GlitchCeiling: 1250 * time.Millisecond,
	}
}

// Validate reports the first inconsistent setting.
func (o Options) Validate() error {
	switch {
	case o.BaseDelay < 0, o.Stagger < 0, o.LineDuration < 0, o.PerRune < 0, o.SettleMargin < 0, o.Fade < 0:
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidOptions)
	case o.PreviewLines < 1:
		return fmt.Errorf("%w: preview lines must be at least 1, got %d", ErrInvalidOptions, o.PreviewLines)
	case o.GlitchMin <= 0 || o.GlitchMax < o.GlitchMin:
		return fmt.Errorf("%w: glitch interval [%v, %v] is empty", ErrInvalidOptions, o.GlitchMin, o.GlitchMax)
	case o.GlitchCeiling <= 0:
		return fmt.Errorf("%w: glitch ceiling must be positive", ErrInvalidOptions)
	}
	return nil
}

// Delay returns the start delay of line i.
func (o Options) Delay(i int) time.Duration {
	return o.BaseDelay + time.Duration(i)*o.Stagger
}

// Duration returns the reveal duration of a line of n runes.
func (o Options) Duration(n int) time.Duration {
	return o.LineDuration + time.Duration(n)*o.PerRune
}

// IdleAfter returns how long after mount a page of n lines starts idling.
func (o Options) IdleAfter(n int) time.Duration {
	return o.BaseDelay + time.Duration(n)*o.Stagger + o.SettleMargin
}
