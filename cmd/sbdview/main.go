// sbdview writes images of the subdivisions of a domain, one per
// requested level.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"deedles.dev/pyramid"
	"deedles.dev/pyramid/internal/util"
	"deedles.dev/pyramid/sbdimg"
	"deedles.dev/pyramid/tile"
)

const (
	exitFailure = 1
	exitConfig  = 2
)

type config struct {
	Height, Width int
	Levels        []int
	Shift         bool
	Out           string
	Format        sbdimg.Format
	Seed          uint64
	Labels        bool
	Verbose       bool
}

func parseFlags(args []string, output io.Writer) (*config, error) {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(output)

	height := fs.Int("height", 480, "height of the domain in pixels")
	width := fs.Int("width", 640, "width of the domain in pixels")
	levels := util.IntsFlag(fs, "levels", []int{0, 1, 2}, "comma-separated levels to render")
	shift := fs.Bool("shift", true, "include the shifted lattice")
	out := fs.String("out", ".", "directory to write images into")
	format := fs.String("format", string(sbdimg.PNG), "image format: png, bmp, or tiff")
	seed := fs.Uint64("seed", uint64(time.Now().UnixNano()), "seed for colors and file names")
	labels := fs.Bool("labels", false, "draw the index of each regular tile")
	verbose := fs.Bool("v", false, "log debug output")
	err := fs.Parse(args[1:])
	if err != nil {
		return nil, err
	}

	f, err := sbdimg.ParseFormat(*format)
	if err != nil {
		return nil, err
	}
	if len(*levels) == 0 {
		return nil, errors.New("no levels requested")
	}

	return &config{
		Height:  *height,
		Width:   *width,
		Levels:  *levels,
		Shift:   *shift,
		Out:     *out,
		Format:  f,
		Seed:    *seed,
		Labels:  *labels,
		Verbose: *verbose,
	}, nil
}

func run(ctx context.Context, c *config) error {
	subs, err := pyramid.Compute(ctx, c.Height, c.Width, c.Levels, c.Shift)
	if err != nil {
		return err
	}

	err = os.MkdirAll(c.Out, 0755)
	if err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	r := sbdimg.New(c.Seed)
	r.Labels = c.Labels
	for _, s := range subs {
		path := filepath.Join(c.Out, r.FileName(s.Level, c.Format))
		err := r.WriteFile(path, s)
		if err != nil {
			return fmt.Errorf("level %v: %w", s.Level, err)
		}
	}

	return nil
}

func main() {
	c, err := parseFlags(os.Args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitConfig)
	}

	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	pyramid.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	err = run(context.Background(), c)
	if err != nil {
		pyramid.Logger().Error("render subdivisions", slog.Any("err", err))
		if errors.Is(err, tile.ErrConfiguration) {
			os.Exit(exitConfig)
		}
		os.Exit(exitFailure)
	}
}
