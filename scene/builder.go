package scene

import (
	"math"

	"github.com/benoitkugler/svg2excalidraw/svgpath"
	"github.com/benoitkugler/svg2excalidraw/svgshape"
)

const (
	// BaseScale is the output size of one unit of a ReferenceSize icon.
	BaseScale = 4.
	// ReferenceSize is the icon size that BaseScale is tuned for.
	ReferenceSize = 24.
)

// ScaleFactor returns the uniform scale normalizing an icon
// whose declared dimensions are width and height.
// Non positive dimensions are ignored; without any,
// the icon is assumed to be ReferenceSize wide.
func ScaleFactor(width, height float64) float64 {
	maxDim := math.Max(math.Max(width, height), 0)
	if maxDim <= 0 || math.IsNaN(maxDim) {
		maxDim = ReferenceSize
	}
	return BaseScale * ReferenceSize / maxDim
}

// Builder maps classified geometry to primitives.
// Degenerate shapes yield no primitive (the boolean is false);
// this is not an error.
type Builder struct {
	Scale float64
}

// NewBuilder returns a builder with the given scale factor.
func NewBuilder(scale float64) Builder { return Builder{Scale: scale} }

func (b Builder) scaled(box svgpath.Bounds) svgpath.Bounds {
	return svgpath.Bounds{X: box.X * b.Scale, Y: box.Y * b.Scale, W: box.W * b.Scale, H: box.H * b.Scale}
}

func (b Builder) box(kind svgshape.Kind, box svgpath.Bounds, fill, stroke string, element int) (Primitive, bool) {
	if box.W <= 0 || box.H <= 0 {
		return Primitive{}, false
	}
	box = b.scaled(box)
	return Primitive{
		Kind:        kind,
		X:           box.X,
		Y:           box.Y,
		Width:       box.W,
		Height:      box.H,
		StrokeColor: stroke,
		FillColor:   fill,
		StrokeWidth: DefaultStrokeWidth,
		Element:     element,
	}, true
}

// Rectangle builds a rectangle from its source box.
func (b Builder) Rectangle(box svgpath.Bounds, fill, stroke string, element int) (Primitive, bool) {
	return b.box(svgshape.Rectangle, box, fill, stroke, element)
}

// Ellipse builds an ellipse from its source bounding box.
func (b Builder) Ellipse(box svgpath.Bounds, fill, stroke string, element int) (Primitive, bool) {
	return b.box(svgshape.Ellipse, box, fill, stroke, element)
}

// Line builds a line from a source polyline. Only closed polylines are filled.
func (b Builder) Line(pl svgpath.Polyline, fill, stroke string, element int) (Primitive, bool) {
	if len(pl) < 2 {
		return Primitive{}, false
	}
	box := pl.Bounds()
	if box.W < 1e-6 && box.H < 1e-6 {
		return Primitive{}, false
	}
	if !pl.IsClosed() {
		fill = Transparent
	}
	rel := pl.Translate(box.X, box.Y)
	points := make([]svgpath.Point, len(rel))
	for i, p := range rel {
		points[i] = p.Scale(b.Scale)
	}
	box = b.scaled(box)
	return Primitive{
		Kind:        svgshape.Line,
		X:           box.X,
		Y:           box.Y,
		Width:       box.W,
		Height:      box.H,
		Points:      points,
		StrokeColor: stroke,
		FillColor:   fill,
		StrokeWidth: DefaultStrokeWidth,
		Element:     element,
	}, true
}

// Shape dispatches on the classification.
func (b Builder) Shape(c svgshape.Classification, fill, stroke string, element int) (Primitive, bool) {
	switch c.Kind {
	case svgshape.Ellipse:
		return b.Ellipse(c.Bounds, fill, stroke, element)
	case svgshape.Rectangle:
		return b.Rectangle(c.Bounds, fill, stroke, element)
	default:
		return b.Line(c.Points, fill, stroke, element)
	}
}

// RingOutline builds the thick, unfilled outline replacing a ring:
// the outer polyline stroked with the fill color of the ring.
func (b Builder) RingOutline(outer svgpath.Polyline, color string, element int) (Primitive, bool) {
	p, ok := b.Line(outer, Transparent, color, element)
	p.StrokeWidth = RingStrokeWidth
	return p, ok
}
