package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessCommandLineArgsDefaults(t *testing.T) {
	options, err := ProcessCommandLineArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), options)
	assert.Equal(t, "assets", options.AssetDir)
	assert.Empty(t, options.FontPath)
	assert.Equal(t, 28.0, options.FontSize)
	assert.Equal(t, 8000, options.DeadZone)
}

func TestProcessCommandLineArgs(t *testing.T) {
	options, err := ProcessCommandLineArgs([]string{
		"--assets=media",
		"--font=16_true_type_fonts/lazy.ttf",
		"--font-size=14.5",
		"--dead-zone=3200",
	})
	require.NoError(t, err)
	assert.Equal(t, Options{
		AssetDir: "media",
		FontPath: "16_true_type_fonts/lazy.ttf",
		FontSize: 14.5,
		DeadZone: 3200,
	}, options)
}

func TestProcessCommandLineArgsErrors(t *testing.T) {
	_, err := ProcessCommandLineArgs([]string{"-h"})
	assert.ErrorIs(t, err, ErrHelp)

	_, err = ProcessCommandLineArgs([]string{"--assets=x", "--help"})
	assert.ErrorIs(t, err, ErrHelp)

	for _, arg := range []string{
		"--save-images",
		"--fullscreen=1",
		"--assets=",
		"--font-size=big",
		"--font-size=0",
		"--dead-zone=-1",
		"--dead-zone=40000",
	} {
		_, err := ProcessCommandLineArgs([]string{arg})
		assert.Error(t, err, arg)
		assert.NotErrorIs(t, err, ErrHelp, arg)
	}
}

func TestOpenFont(t *testing.T) {
	options := DefaultOptions()
	font, err := options.openFont()
	require.NoError(t, err)
	require.NoError(t, font.Close())

	options.FontPath = "does/not/exist.ttf"
	_, err = options.openFont()
	assert.Error(t, err)
}

func TestCentered(t *testing.T) {
	assert.Equal(t, 270, centered(ScreenWidth, 100))
	assert.Equal(t, 0, centered(ScreenWidth, ScreenWidth))
	assert.Equal(t, -10, centered(100, 120))
}
