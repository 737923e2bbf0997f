// Package config holds the tunables of the light-strand scene and binds them
// to command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

const (
	GlyphFlat     = "flat"
	GlyphGradient = "gradient"

	ModeCatchUp    = "catchup"
	ModeSingleStep = "single"
)

type Config struct {
	WindowW, WindowH int
	Title            string
	LogLevel         string
	HUD              bool
	Demo             time.Duration // run the scripted demo headless for this long

	// scheduler
	TPS  float64 // logical ticks per second
	Mode string

	// depth model
	BaseRadius float64
	Spread     float64
	MaxDepth   float64

	// picking
	PickRadius float64

	// strings and glyphs
	SagAmplitude float64
	RampTicks    float64
	Thickness    float64
	GlyphStyle   string
	BlurPerLevel float64
}

func Default() Config {
	return Config{
		WindowW:      960,
		WindowH:      640,
		Title:        "lightstrand",
		LogLevel:     "INFO",
		TPS:          60,
		Mode:         ModeCatchUp,
		BaseRadius:   10,
		Spread:       40,
		MaxDepth:     5,
		PickRadius:   10,
		SagAmplitude: 10,
		RampTicks:    2,
		Thickness:    1.5,
		GlyphStyle:   GlyphFlat,
		BlurPerLevel: 1.5,
	}
}

// Bind registers every field on fs using the current values as defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.WindowW, "width", c.WindowW, "window width in px")
	fs.IntVar(&c.WindowH, "height", c.WindowH, "window height in px")
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.StringVar(&c.LogLevel, "log", c.LogLevel, "log level: debug, info, warn, error, none")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the debug overlay")
	fs.DurationVar(&c.Demo, "demo", c.Demo, "run the scripted demo without a window for this long")
	fs.Float64Var(&c.TPS, "tps", c.TPS, "logical ticks per second")
	fs.StringVar(&c.Mode, "mode", c.Mode, "scheduler mode: catchup or single")
	fs.Float64Var(&c.BaseRadius, "base-radius", c.BaseRadius, "glyph radius at max depth")
	fs.Float64Var(&c.Spread, "spread", c.Spread, "extra glyph radius at depth 0")
	fs.Float64Var(&c.MaxDepth, "max-depth", c.MaxDepth, "depth level at the focal point")
	fs.Float64Var(&c.PickRadius, "pick-radius", c.PickRadius, "pointer picking radius in px")
	fs.Float64Var(&c.SagAmplitude, "sag", c.SagAmplitude, "sag swing amplitude in px")
	fs.Float64Var(&c.RampTicks, "ramp", c.RampTicks, "ticks before a new string swings at full amplitude")
	fs.Float64Var(&c.Thickness, "thickness", c.Thickness, "string thickness in px")
	fs.StringVar(&c.GlyphStyle, "glyph", c.GlyphStyle, "glyph style: flat or gradient")
	fs.Float64Var(&c.BlurPerLevel, "blur", c.BlurPerLevel, "gradient blur per missing depth level")
}

func (c Config) Validate() error {
	switch {
	case c.WindowW <= 0 || c.WindowH <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, c.WindowW, c.WindowH)
	case c.Demo < 0:
		return fmt.Errorf("%w: negative demo duration %s", ErrInvalid, c.Demo)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps must be positive, got %v", ErrInvalid, c.TPS)
	case c.BaseRadius < 0 || c.Spread < 0:
		return fmt.Errorf("%w: negative radius (base=%v spread=%v)", ErrInvalid, c.BaseRadius, c.Spread)
	case c.MaxDepth <= 0:
		return fmt.Errorf("%w: max depth must be positive, got %v", ErrInvalid, c.MaxDepth)
	case c.PickRadius <= 0:
		return fmt.Errorf("%w: pick radius must be positive, got %v", ErrInvalid, c.PickRadius)
	case c.RampTicks < 0 || c.Thickness < 0 || c.SagAmplitude < 0 || c.BlurPerLevel < 0:
		return fmt.Errorf("%w: negative curve setting", ErrInvalid)
	}
	if c.GlyphStyle != GlyphFlat && c.GlyphStyle != GlyphGradient {
		return fmt.Errorf("%w: unknown glyph style %q", ErrInvalid, c.GlyphStyle)
	}
	if c.Mode != ModeCatchUp && c.Mode != ModeSingleStep {
		return fmt.Errorf("%w: unknown scheduler mode %q", ErrInvalid, c.Mode)
	}
	return nil
}
