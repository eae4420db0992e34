// Package scene builds the drawing primitives of a converted icon,
// and composes them into a stacked, grouped scene.
package scene

import (
	"strings"

	"github.com/benoitkugler/svg2excalidraw/svgicon"
	"github.com/benoitkugler/svg2excalidraw/svgpath"
	"github.com/benoitkugler/svg2excalidraw/svgshape"
)

// Stroke widths of the primitives.
const (
	DefaultStrokeWidth = 2
	RingStrokeWidth    = 4
)

// Transparent is the fill of unfilled primitives.
const Transparent = svgicon.Transparent

// Primitive is a drawing record: a line (polyline or polygon),
// a rectangle or an ellipse, in output coordinates.
type Primitive struct {
	Kind svgshape.Kind

	// Min corner and size.
	X, Y          float64
	Width, Height float64

	// Points of lines, relative to (X, Y).
	Points []svgpath.Point

	StrokeColor string
	FillColor   string // or Transparent
	StrokeWidth float64

	// GroupID is set by the Composer.
	GroupID string

	// Element is the index of the source element in the document.
	Element int
}

// Bounds returns the box of the primitive.
func (p Primitive) Bounds() svgpath.Bounds {
	return svgpath.Bounds{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Area is the area of the bounding box.
func (p Primitive) Area() float64 { return p.Bounds().Area() }

// IsFilled returns true if the fill is not transparent.
func (p Primitive) IsFilled() bool {
	return p.FillColor != "" && !strings.EqualFold(p.FillColor, Transparent)
}

// IsClosed returns true for lines whose first and last points coincide.
func (p Primitive) IsClosed() bool {
	return p.Kind == svgshape.Line && svgpath.Polyline(p.Points).IsClosed()
}

// Outline returns the points of a line in absolute coordinates.
func (p Primitive) Outline() svgpath.Polyline {
	return svgpath.Polyline(p.Points).Translate(-p.X, -p.Y)
}
