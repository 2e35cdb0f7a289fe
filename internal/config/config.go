// Package config loads runtime configuration from viper: built-in defaults,
// then .folio.yaml, FOLIO_* environment variables, and bound CLI flags.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/papapumpkin/folio/internal/cascade"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// SiteConfig holds the sidebar identity shown in the TUI.
type SiteConfig struct {
	Name    string   `mapstructure:"name"`
	Tagline []string `mapstructure:"tagline"`
	Links   []string `mapstructure:"links"`
}

// AnimationConfig holds cascade and scramble timing.
type AnimationConfig struct {
	BaseDelay         time.Duration `mapstructure:"base_delay"`
	Stagger           time.Duration `mapstructure:"stagger"`
	LineDuration      time.Duration `mapstructure:"line_duration"`
	SettleMargin      time.Duration `mapstructure:"settle_margin"`
	FadeDuration      time.Duration `mapstructure:"fade_duration"`
	PreviewLines      int           `mapstructure:"preview_lines"`
	FPS               int           `mapstructure:"fps"`
	GlitchMinInterval time.Duration `mapstructure:"glitch_min_interval"`
	GlitchMaxInterval time.Duration `mapstructure:"glitch_max_interval"`
	GlitchCeiling     time.Duration `mapstructure:"glitch_ceiling"`
}

// ServerConfig holds HTTP content API settings.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Config holds all runtime configuration.
type Config struct {
	ContentDir string          `mapstructure:"content_dir"`
	Watch      bool            `mapstructure:"watch"`
	Verbose    bool            `mapstructure:"verbose"`
	Log        LogConfig       `mapstructure:"log"`
	Site       SiteConfig      `mapstructure:"site"`
	Animation  AnimationConfig `mapstructure:"animation"`
	Server     ServerConfig    `mapstructure:"server"`
}

// SetDefaults registers the built-in default for every key.
func SetDefaults(v *viper.Viper) {
	def := cascade.DefaultOptions()

	v.SetDefault("content_dir", "")
	v.SetDefault("watch", false)
	v.SetDefault("verbose", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("site.name", "FOLIO")
	v.SetDefault("site.tagline", []string{"Software Engineer"})
	v.SetDefault("site.links", []string{})
	v.SetDefault("animation.base_delay", def.BaseDelay)
	v.SetDefault("animation.stagger", def.Stagger)
	v.SetDefault("animation.line_duration", def.LineDuration)
	v.SetDefault("animation.settle_margin", def.SettleMargin)
	v.SetDefault("animation.fade_duration", def.Fade)
	v.SetDefault("animation.preview_lines", def.PreviewLines)
	v.SetDefault("animation.fps", cascade.DefaultFPS)
	v.SetDefault("animation.glitch_min_interval", def.GlitchMin)
	v.SetDefault("animation.glitch_max_interval", def.GlitchMax)
	v.SetDefault("animation.glitch_ceiling", def.GlitchCeiling)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
}

// Load reads configuration from the global viper instance.
func Load() (Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads configuration from v, applying defaults for any value not
// set by config file, environment, or flags.
func LoadFrom(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range value, naming its key.
func (c Config) Validate() error {
	a := c.Animation
	durations := []struct {
		key string
		d   time.Duration
	}{
		{"animation.base_delay", a.BaseDelay},
		{"animation.stagger", a.Stagger},
		{"animation.line_duration", a.LineDuration},
		{"animation.settle_margin", a.SettleMargin},
		{"animation.fade_duration", a.FadeDuration},
		{"server.shutdown_timeout", c.Server.ShutdownTimeout},
	}
	for _, d := range durations {
		if d.d < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidConfig, d.key, d.d)
		}
	}

	switch {
	case a.FPS <= 0:
		return fmt.Errorf("%w: animation.fps must be positive, got %d", ErrInvalidConfig, a.FPS)
	case a.PreviewLines <= 0:
		return fmt.Errorf("%w: animation.preview_lines must be positive, got %d", ErrInvalidConfig, a.PreviewLines)
	case a.GlitchMinInterval <= 0:
		return fmt.Errorf("%w: animation.glitch_min_interval must be positive, got %v", ErrInvalidConfig, a.GlitchMinInterval)
	case a.GlitchMinInterval > a.GlitchMaxInterval:
		return fmt.Errorf("%w: animation.glitch_min_interval %v exceeds animation.glitch_max_interval %v",
			ErrInvalidConfig, a.GlitchMinInterval, a.GlitchMaxInterval)
	case a.GlitchCeiling <= 0:
		return fmt.Errorf("%w: animation.glitch_ceiling must be positive, got %v", ErrInvalidConfig, a.GlitchCeiling)
	}
	return nil
}

// CascadeOptions converts the animation settings into renderer options.
func (a AnimationConfig) CascadeOptions() cascade.Options {
	o := cascade.DefaultOptions()
	o.BaseDelay = a.BaseDelay
	o.Stagger = a.Stagger
	o.LineDuration = a.LineDuration
	o.SettleMargin = a.SettleMargin
	o.Fade = a.FadeDuration
	o.PreviewLines = a.PreviewLines
	o.GlitchMin = a.GlitchMinInterval
	o.GlitchMax = a.GlitchMaxInterval
	o.GlitchCeiling = a.GlitchCeiling
	return o
}
