// Package sbdimg renders subdivisions into images so that they can be
// inspected by eye.
//
// Rendering is purely instrumentation. It reads a tile.Subdivision and
// never modifies it.
package sbdimg

import (
	"image"
	"image/color"
	"math/rand/v2"
	"strconv"

	"deedles.dev/pyramid/tile"
	"deedles.dev/ximage/geom"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
)

// MinBorder is the thinnest outline drawn around a shifted tile.
const MinBorder = 2

// Renderer draws subdivisions. Colors are picked from Rand, so two
// Renderers seeded identically produce identical images.
//
// A Renderer is not safe for concurrent use: neither Rand nor the font
// face used to draw labels is. Use one Renderer per goroutine.
type Renderer struct {
	// Rand is the source of tile colors and file name identifiers. If
	// it is nil, a source seeded with zero is created on first use.
	Rand *rand.Rand

	// Labels enables drawing the index of each regular tile in its
	// top-left corner, if it fits.
	Labels bool

	// LabelSize is the size of labels in points. If it is zero,
	// DefaultLabelSize is used.
	LabelSize float64

	face     font.Face
	faceSize float64
}

// New returns a Renderer with a PCG source seeded with seed.
func New(seed uint64) *Renderer {
	return &Renderer{Rand: rand.New(rand.NewPCG(seed, seed))}
}

func (r *Renderer) rand() *rand.Rand {
	if r.Rand == nil {
		r.Rand = rand.New(rand.NewPCG(0, 0))
	}
	return r.Rand
}

func (r *Renderer) color() color.RGBA {
	rnd := r.rand()
	return color.RGBA{
		R: uint8(rnd.IntN(255)),
		G: uint8(rnd.IntN(255)),
		B: uint8(rnd.IntN(255)),
		A: 0xFF,
	}
}

// Border returns the outline thickness used for shifted tiles of a
// domain with the given height.
func Border(height int) int {
	return max(MinBorder, height/200)
}

// Render draws s into a new image the size of its domain. Regular
// tiles are filled with random colors and shifted tiles are outlined
// with random colors on top of them.
func (r *Renderer) Render(s tile.Subdivision) *image.RGBA {
	img := image.NewRGBA(s.Bounds().ImageRect())

	var face font.Face
	if r.Labels {
		face = r.labelFace()
	}

	for i, rect := range s.Regular() {
		c := r.color()
		draw.Draw(img, rect.ImageRect(), image.NewUniform(c), image.Point{}, draw.Src)
		if r.Labels {
			drawLabel(img, face, rect, strconv.Itoa(i), contrast(c))
		}
	}

	border := Border(s.Height)
	for _, rect := range s.Shifted() {
		drawRectBorder(img, rect, border, r.color())
	}

	return img
}

// drawRectBorder draws an outline of thickness n just inside of rect.
func drawRectBorder(img draw.Image, rect geom.Rect[int], n int, c color.Color) {
	src := image.NewUniform(c)
	edges := []geom.Rect[int]{
		geom.Rt(0, 0, n, rect.Dy()).Add(rect.Min),
		geom.Rt(0, 0, n, rect.Dy()).Add(geom.Pt(rect.Max.X-n, rect.Min.Y)),
		geom.Rt(0, 0, rect.Dx(), n).Add(rect.Min),
		geom.Rt(0, 0, rect.Dx(), n).Add(geom.Pt(rect.Min.X, rect.Max.Y-n)),
	}
	for _, edge := range edges {
		draw.Draw(img, edge.ImageRect(), src, image.Point{}, draw.Over)
	}
}

// contrast returns black or white, whichever is easier to read on top
// of c.
func contrast(c color.RGBA) color.Color {
	luma := 299*int(c.R) + 587*int(c.G) + 114*int(c.B)
	if luma > 128*1000 {
		return color.Black
	}
	return color.White
}
