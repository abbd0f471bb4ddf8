package tile

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every *ConfigurationError.
var ErrConfiguration = errors.New("invalid subdivision configuration")

// ConfigurationError reports a parameter that a domain can't be
// subdivided with.
type ConfigurationError struct {
	Param  string
	Value  int
	Reason string
}

func (err *ConfigurationError) Error() string {
	return fmt.Sprintf("%v = %v: %v", err.Param, err.Value, err.Reason)
}

func (err *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// InvariantViolation is the value Subdivide panics with if it produces
// a lattice of the wrong size. It indicates a bug, not bad input.
type InvariantViolation struct {
	Expected, Actual int

	Height, Width int
	Level         int
	Shift         bool
}

func (v InvariantViolation) Error() string {
	return fmt.Sprintf(
		"subdivision has %v rectangles, expected %v (height = %v, width = %v, level = %v, shift = %v)",
		v.Actual,
		v.Expected,
		v.Height,
		v.Width,
		v.Level,
		v.Shift,
	)
}

// Validate reports whether a height by width domain can be subdivided
// at level, returning a *ConfigurationError if it can't.
func Validate(height, width, level int) error {
	switch {
	case height <= 0:
		return &ConfigurationError{Param: "height", Value: height, Reason: "must be positive"}
	case width <= 0:
		return &ConfigurationError{Param: "width", Value: width, Reason: "must be positive"}
	case level < 0:
		return &ConfigurationError{Param: "level", Value: level, Reason: "must not be negative"}
	case level > maxLevel:
		return &ConfigurationError{Param: "level", Value: level, Reason: fmt.Sprintf("must not exceed %v", maxLevel)}
	}

	ratio := Ratio(level)
	if height < ratio {
		return &ConfigurationError{
			Param:  "level",
			Value:  level,
			Reason: fmt.Sprintf("height %v is smaller than %v tiles", height, ratio),
		}
	}
	if width < ratio {
		return &ConfigurationError{
			Param:  "level",
			Value:  level,
			Reason: fmt.Sprintf("width %v is smaller than %v tiles", width, ratio),
		}
	}

	return nil
}

func checkLen(s Subdivision) {
	expected := ExpectedLen(s.Level, s.Shift)
	if len(s.Rects) == expected {
		return
	}

	panic(InvariantViolation{
		Expected: expected,
		Actual:   len(s.Rects),
		Height:   s.Height,
		Width:    s.Width,
		Level:    s.Level,
		Shift:    s.Shift,
	})
}
