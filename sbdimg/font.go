package sbdimg

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"deedles.dev/ximage/geom"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	// DefaultLabelSize is the label size, in points at 72 DPI, used
	// when a Renderer doesn't set one.
	DefaultLabelSize = 12

	// labelPad is the space between a label and the corner of its
	// tile.
	labelPad = 2
)

// monoFont parses Go Mono once. The parsed font is immutable and can
// be shared, unlike the faces created from it.
var monoFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(gomono.TTF)
})

// newLabelFace returns a Go Mono face of the given size.
func newLabelFace(size float64) (font.Face, error) {
	f, err := monoFont()
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}

// labelFace returns r's face, creating it for the current LabelSize if
// necessary.
func (r *Renderer) labelFace() font.Face {
	size := r.LabelSize
	if size <= 0 {
		size = DefaultLabelSize
	}
	if (r.face != nil) && (r.faceSize == size) {
		return r.face
	}

	face, err := newLabelFace(size)
	if err != nil {
		// Go Mono is embedded, so this only fails for nonsensical
		// sizes or a broken build.
		panic(err)
	}
	r.face, r.faceSize = face, size
	return face
}

// drawLabel writes str into the top-left corner of rect. Nothing is
// drawn if the text doesn't fit.
func drawLabel(dst draw.Image, face font.Face, rect geom.Rect[int], str string, c color.Color) {
	fdraw := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
	}

	metrics := face.Metrics()
	w := fdraw.MeasureString(str).Ceil() + 2*labelPad
	h := (metrics.Ascent + metrics.Descent).Ceil() + 2*labelPad
	if (w > rect.Dx()) || (h > rect.Dy()) {
		return
	}

	fdraw.Dot = fixed.P(rect.Min.X+labelPad, rect.Min.Y+labelPad).Add(fixed.Point26_6{Y: metrics.Ascent})
	fdraw.DrawString(str)
}
