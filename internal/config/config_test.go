package config

import (
	"testing"

	"github.com/0x0FACED/go-bisector/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 1000, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, render.LayerPoints, cfg.Mode)
	assert.True(t, cfg.LogStdout)
	assert.False(t, cfg.Verbose)
}

func TestFlags(t *testing.T) {
	cfg, err := Parse([]string{"--addr", ":9000", "--width", "640", "--height=480", "--mode", "points+polygons", "-v", "--no-log-stdout"})
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, render.LayerPoints|render.LayerPolygons, cfg.Mode)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.LogStdout)
}

func TestBadFlags(t *testing.T) {
	_, err := Parse([]string{"--mode", "squares"})
	assert.ErrorIs(t, err, render.ErrUnknownLayer)

	_, err = Parse([]string{"--width", "-3"})
	assert.Error(t, err)

	_, err = Parse([]string{"--width", "wide"})
	assert.Error(t, err)
}
