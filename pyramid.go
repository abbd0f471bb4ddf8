package pyramid

import (
	"context"
	"fmt"
	"log/slog"

	"deedles.dev/pyramid/tile"
	"golang.org/x/sync/errgroup"
)

// Compute subdivides a height by width domain at each of the given
// levels. The returned slice parallels levels.
//
// Every level is validated before any work starts, so a bad level
// yields a *tile.ConfigurationError without anything being computed.
// The valid levels are then subdivided concurrently. If any of them
// fails, the remaining ones are abandoned and the first error is
// returned.
func Compute(ctx context.Context, height, width int, levels []int, shift bool) ([]tile.Subdivision, error) {
	for _, level := range levels {
		err := tile.Validate(height, width, level)
		if err != nil {
			return nil, err
		}
	}

	subs := make([]tile.Subdivision, len(levels))

	eg, ctx := errgroup.WithContext(ctx)
	for i, level := range levels {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			s, err := tile.Subdivide(height, width, level, shift)
			if err != nil {
				return fmt.Errorf("subdivide level %v: %w", level, err)
			}
			subs[i] = s

			Logger().Debug("subdivided level",
				slog.Int("level", level),
				slog.Int("height", height),
				slog.Int("width", width),
				slog.Bool("shift", shift),
				slog.Int("rects", s.Len()),
			)
			return nil
		})
	}

	err := eg.Wait()
	if err != nil {
		return nil, err
	}
	return subs, nil
}

// Levels subdivides a height by width domain at every level from 0 to
// maxLevel, inclusive. The returned slice is indexed by level.
func Levels(ctx context.Context, height, width, maxLevel int, shift bool) ([]tile.Subdivision, error) {
	err := tile.Validate(height, width, maxLevel)
	if err != nil {
		return nil, err
	}

	levels := make([]int, maxLevel+1)
	for i := range levels {
		levels[i] = i
	}
	return Compute(ctx, height, width, levels, shift)
}

// All subdivides a domain at every level it supports.
func All(ctx context.Context, height, width int, shift bool) ([]tile.Subdivision, error) {
	maxLevel, err := tile.MaxLevel(height, width)
	if err != nil {
		return nil, err
	}
	return Levels(ctx, height, width, maxLevel, shift)
}
