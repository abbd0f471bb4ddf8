package tile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCheckLenPanics(t *testing.T) {
	full, err := Subdivide(100, 100, 1, true)
	require.NoError(t, err)

	short := full
	short.Rects = append(full.Rects[:0:0], full.Rects[:len(full.Rects)-1]...)
	before := append(short.Rects[:0:0], short.Rects...)

	var v any
	func() {
		defer func() { v = recover() }()
		checkLen(short)
	}()

	require.Equal(t, InvariantViolation{
		Expected: 5,
		Actual:   4,
		Height:   100,
		Width:    100,
		Level:    1,
		Shift:    true,
	}, v)
	require.ErrorContains(t, v.(error), "subdivision has 4 rectangles, expected 5")

	if diff := cmp.Diff(before, short.Rects); diff != "" {
		t.Fatalf("rectangles changed (-before +after):\n%v", diff)
	}
}

func TestCheckLenExtra(t *testing.T) {
	s, err := Subdivide(64, 32, 2, false)
	require.NoError(t, err)
	s.Rects = append(s.Rects, s.Rects[0])

	require.PanicsWithValue(t, InvariantViolation{
		Expected: 16,
		Actual:   17,
		Height:   64,
		Width:    32,
		Level:    2,
		Shift:    false,
	}, func() { checkLen(s) })
	require.Len(t, s.Rects, 17)
}

func TestCheckLenValid(t *testing.T) {
	s, err := Subdivide(64, 32, 2, true)
	require.NoError(t, err)
	require.NotPanics(t, func() { checkLen(s) })
}
