package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 10.0, c.BaseRadius)
	assert.Equal(t, 40.0, c.Spread)
	assert.Equal(t, 5.0, c.MaxDepth)
	assert.Equal(t, 10.0, c.PickRadius)
	assert.Equal(t, 2.0, c.RampTicks)
	assert.Equal(t, ModeCatchUp, c.Mode)
}

func TestBindParsesFlags(t *testing.T) {
	c := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	c.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-glyph", "gradient", "-pick-radius", "14", "-mode", "single", "-hud", "-demo", "2s"}))

	assert.Equal(t, GlyphGradient, c.GlyphStyle)
	assert.Equal(t, 14.0, c.PickRadius)
	assert.Equal(t, ModeSingleStep, c.Mode)
	assert.True(t, c.HUD)
	assert.Equal(t, 2*time.Second, c.Demo)
	assert.NoError(t, c.Validate())
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"zero tps":      func(c *Config) { c.TPS = 0 },
		"bad glyph":     func(c *Config) { c.GlyphStyle = "neon" },
		"bad mode":      func(c *Config) { c.Mode = "drop" },
		"neg spread":    func(c *Config) { c.Spread = -1 },
		"zero depth":    func(c *Config) { c.MaxDepth = 0 },
		"zero pick":     func(c *Config) { c.PickRadius = 0 },
		"tiny window":   func(c *Config) { c.WindowW = 0 },
		"neg thickness": func(c *Config) { c.Thickness = -2 },
		"neg demo":      func(c *Config) { c.Demo = -time.Second },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := Default()
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
}
