// Package tile computes the level subdivisions of a rectangular pixel
// domain.
//
// At level n the domain is cut into a regular lattice of 2^n by 2^n
// tiles. Optionally, a second lattice of (2^n-1) by (2^n-1) tiles,
// offset by half a tile in each direction, is appended so that the
// seams of the regular lattice are covered as well.
package tile

import (
	"deedles.dev/ximage/geom"
)

// maxLevel bounds the level so that 1<<level fits comfortably in an
// int on every platform.
const maxLevel = 30

// Subdivision is the result of subdividing a domain at one level.
type Subdivision struct {
	Height, Width int
	Level         int
	Shift         bool

	// Rects holds the regular lattice in row-major order followed, if
	// Shift is set, by the shifted lattice in row-major order.
	Rects []geom.Rect[int]
}

// Ratio returns the number of regular tiles along each axis.
func (s Subdivision) Ratio() int {
	return Ratio(s.Level)
}

// Len returns the number of rectangles in s.
func (s Subdivision) Len() int {
	return len(s.Rects)
}

// Regular returns the rectangles of the regular lattice. Together they
// partition the domain exactly.
func (s Subdivision) Regular() []geom.Rect[int] {
	n := min(Ratio(s.Level)*Ratio(s.Level), len(s.Rects))
	return s.Rects[:n:n]
}

// Shifted returns the rectangles of the half-offset lattice. It is
// empty if s was computed without shifting or at level 0.
func (s Subdivision) Shifted() []geom.Rect[int] {
	return s.Rects[len(s.Regular()):]
}

// Bounds returns the full domain as a rectangle.
func (s Subdivision) Bounds() geom.Rect[int] {
	return geom.Rt(0, 0, s.Width, s.Height)
}

// Ratio returns 2^level.
func Ratio(level int) int {
	return 1 << level
}

// ExpectedLen returns the number of rectangles that Subdivide produces
// for the given level.
func ExpectedLen(level int, shift bool) int {
	ratio := Ratio(level)
	n := ratio * ratio
	if shift {
		n += (ratio - 1) * (ratio - 1)
	}
	return n
}

// Subdivide splits a height by width domain into the tiles of the
// given level. For example,
//
//	Subdivide(100, 100, 1, true)
//
// will produce four regular tiles and one shifted tile:
//
//	-----------
//	|    |    |
//	|  --+--  |
//	|--|-+-|--|
//	|  --+--  |
//	|    |    |
//	-----------
//
// The last row and column of the regular lattice absorb whatever is
// left over by the integer division of the domain. The shifted lattice
// is never adjusted that way: every shifted tile has exactly the base
// tile size, and no attempt is made to clamp it to the domain.
//
// A *ConfigurationError is returned if the domain can't be subdivided
// at level. If the computed lattice ever has the wrong number of
// tiles, Subdivide panics with an InvariantViolation.
func Subdivide(height, width, level int, shift bool) (Subdivision, error) {
	err := Validate(height, width, level)
	if err != nil {
		return Subdivision{}, err
	}

	ratio := Ratio(level)
	size := geom.Pt(width/ratio, height/ratio)

	rects := make([]geom.Rect[int], 0, ExpectedLen(level, shift))
	rects = appendRegular(rects, ratio, size, geom.Pt(width, height))
	if shift {
		rects = appendShifted(rects, ratio, size)
	}

	s := Subdivision{
		Height: height,
		Width:  width,
		Level:  level,
		Shift:  shift,
		Rects:  rects,
	}
	checkLen(s)
	return s, nil
}

// MaxLevel returns the deepest level at which a height by width domain
// can be subdivided without producing empty tiles.
func MaxLevel(height, width int) (int, error) {
	err := Validate(height, width, 0)
	if err != nil {
		return 0, err
	}

	level := 0
	for level < maxLevel && Ratio(level+1) <= min(height, width) {
		level++
	}
	return level, nil
}

// Must returns s, panicking if err is not nil.
func Must(s Subdivision, err error) Subdivision {
	if err != nil {
		panic(err)
	}
	return s
}

func appendRegular(rects []geom.Rect[int], ratio int, size, domain geom.Point[int]) []geom.Rect[int] {
	for i := 0; i < ratio; i++ {
		for j := 0; j < ratio; j++ {
			x, y := size.X*j, size.Y*i

			w, h := size.X, size.Y
			if j == ratio-1 {
				w = max(size.X, domain.X-x)
			}
			if i == ratio-1 {
				h = max(size.Y, domain.Y-y)
			}

			rects = append(rects, geom.Rt(x, y, x+w, y+h))
		}
	}
	return rects
}

func appendShifted(rects []geom.Rect[int], ratio int, size geom.Point[int]) []geom.Rect[int] {
	half := geom.Pt(size.X/2, size.Y/2)
	for i := 0; i < ratio-1; i++ {
		for j := 0; j < ratio-1; j++ {
			x, y := size.X*j+half.X, size.Y*i+half.Y
			rects = append(rects, geom.Rt(x, y, x+size.X, y+size.Y))
		}
	}
	return rects
}
