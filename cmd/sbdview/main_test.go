package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"deedles.dev/pyramid"
	"deedles.dev/pyramid/sbdimg"
	"deedles.dev/pyramid/tile"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	c, err := parseFlags([]string{"sbdview", "-height", "100", "-width", "200", "-levels", "1,3", "-format", "bmp", "-seed", "4", "-shift=false"}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, &config{
		Height: 100,
		Width:  200,
		Levels: []int{1, 3},
		Shift:  false,
		Out:    ".",
		Format: sbdimg.BMP,
		Seed:   4,
	}, c)

	_, err = parseFlags([]string{"sbdview", "-format", "gif"}, io.Discard)
	require.Error(t, err)

	_, err = parseFlags([]string{"sbdview", "-levels", ""}, io.Discard)
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	c := &config{
		Height: 64,
		Width:  64,
		Levels: []int{0, 2},
		Shift:  true,
		Out:    dir,
		Format: sbdimg.PNG,
		Seed:   1,
	}
	require.NoError(t, run(context.Background(), c))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	for i, level := range c.Levels {
		name := entries[i].Name()
		require.True(t, strings.HasPrefix(name, fmt.Sprintf("sbd_level_%v_", level)), name)
		require.Equal(t, ".png", filepath.Ext(name))
	}
}

func TestRunConfigurationError(t *testing.T) {
	c := &config{Height: 4, Width: 4, Levels: []int{3}, Out: t.TempDir(), Format: sbdimg.PNG}
	require.ErrorIs(t, run(context.Background(), c), tile.ErrConfiguration)

	c.Levels = []int{-1, 0}
	require.ErrorIs(t, run(context.Background(), c), tile.ErrConfiguration)

	c.Levels = []int{1_000_000_000}
	require.ErrorIs(t, run(context.Background(), c), tile.ErrConfiguration)
}

func TestRunOnlyRequestedLevels(t *testing.T) {
	orig := pyramid.Logger()
	t.Cleanup(func() { pyramid.SetLogger(orig) })
	var buf bytes.Buffer
	pyramid.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	dir := t.TempDir()
	c := &config{Height: 1024, Width: 1024, Levels: []int{9}, Out: dir, Format: sbdimg.BMP, Seed: 2}
	require.NoError(t, run(context.Background(), c))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.True(t, strings.HasPrefix(entries[0].Name(), "sbd_level_9_"), entries[0].Name())
	require.Equal(t, 1, strings.Count(buf.String(), "subdivided level"), buf.String())
}
