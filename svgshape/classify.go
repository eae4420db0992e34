// Package svgshape recognizes canonical shapes (circles and
// axis-aligned rectangles) among simplified polylines.
package svgshape

import (
	"math"

	"github.com/benoitkugler/svg2excalidraw/svgpath"
)

// Kind identifies a classified shape.
type Kind uint8

const (
	// Line is the fallback: a generic polyline or polygon.
	Line Kind = iota
	// Rectangle is an axis-aligned rectangle.
	Rectangle
	// Ellipse is a circle (or a nearly circular ellipse).
	Ellipse
)

func (k Kind) String() string {
	switch k {
	case Rectangle:
		return "rectangle"
	case Ellipse:
		return "ellipse"
	default:
		return "line"
	}
}

// Classification is the result of Classify.
// Bounds is meaningful for rectangles and ellipses; Points
// always holds the classified polyline.
type Classification struct {
	Kind   Kind
	Bounds svgpath.Bounds
	Points svgpath.Polyline
}

// Classifier holds the tolerances of the shape heuristics.
type Classifier struct {
	// AspectTolerance is the maximum difference between width and
	// height, relative to the larger dimension.
	AspectTolerance float64
	// PointTolerance is the absolute floor of the distance tolerances.
	PointTolerance float64
	// RadiusTolerance is the accepted deviation from the nominal radius,
	// relative to the radius.
	RadiusTolerance float64
	// EdgeTolerance is the accepted drift of an horizontal or vertical
	// edge, relative to the larger dimension.
	EdgeTolerance float64

	// CheckArea enables the area test for circles: the polygon area
	// divided by the bounding box area must be within AreaTolerance of π/4.
	CheckArea     bool
	AreaTolerance float64

	// AnyAspectRectangles disables the aspect ratio test for rectangles,
	// so that non square rectangles are recognized too.
	AnyAspectRectangles bool
}

// DefaultClassifier returns the usual tolerances, without the area check.
func DefaultClassifier() Classifier {
	return Classifier{
		AspectTolerance: 0.12,
		PointTolerance:  0.4,
		RadiusTolerance: 0.2,
		EdgeTolerance:   0.1,
		AreaTolerance:   0.1,
	}
}

// Classify tests the circle heuristic, then the rectangle one,
// and falls back to Line.
func (c Classifier) Classify(pl svgpath.Polyline) Classification {
	if b, ok := c.Circle(pl); ok {
		return Classification{Kind: Ellipse, Bounds: b, Points: pl}
	}
	if b, ok := c.Rectangle(pl); ok {
		return Classification{Kind: Rectangle, Bounds: b, Points: pl}
	}
	return Classification{Kind: Line, Bounds: pl.Bounds(), Points: pl}
}

// Classify uses the default classifier.
func Classify(pl svgpath.Polyline) Classification { return DefaultClassifier().Classify(pl) }

func (c Classifier) squareEnough(b svgpath.Bounds) bool {
	if b.W <= 0 || b.H <= 0 {
		return false
	}
	return math.Abs(b.W-b.H) <= b.MaxDim()*c.AspectTolerance
}

// Circle returns the bounds of pl if it approximates a circle.
func (c Classifier) Circle(pl svgpath.Polyline) (svgpath.Bounds, bool) {
	if len(pl) < 4 {
		return svgpath.Bounds{}, false
	}
	pts := pl.Open()
	if len(pts) < 4 {
		return svgpath.Bounds{}, false
	}
	b := pts.Bounds()
	if !c.squareEnough(b) {
		return svgpath.Bounds{}, false
	}
	center := b.Center()
	radius := (b.W + b.H) / 4
	tol := math.Max(radius*c.RadiusTolerance, c.PointTolerance)
	for _, p := range pts {
		d := math.Hypot(p.X-center.X, p.Y-center.Y)
		if math.Abs(d-radius) > tol {
			return svgpath.Bounds{}, false
		}
	}
	if c.CheckArea {
		ratio := math.Abs(Area(pts)) / b.Area()
		if math.Abs(ratio-math.Pi/4) > c.AreaTolerance {
			return svgpath.Bounds{}, false
		}
	}
	return b, true
}

// Rectangle returns the bounds of pl if it is an axis-aligned rectangle
// made of exactly 4 corners.
func (c Classifier) Rectangle(pl svgpath.Polyline) (svgpath.Bounds, bool) {
	pts := pl.Dedupe()
	if len(pts) != 4 {
		return svgpath.Bounds{}, false
	}
	b := pts.Bounds()
	if b.W <= 0 || b.H <= 0 {
		return svgpath.Bounds{}, false
	}
	if !c.AnyAspectRectangles && !c.squareEnough(b) {
		return svgpath.Bounds{}, false
	}
	tol := math.Max(b.MaxDim()*c.EdgeTolerance, c.PointTolerance)
	var horizontal, vertical int
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		dx, dy := math.Abs(q.X-p.X), math.Abs(q.Y-p.Y)
		switch {
		case dx <= tol && dy <= tol: // degenerated edge
			return svgpath.Bounds{}, false
		case dx <= tol:
			vertical++
		case dy <= tol:
			horizontal++
		default:
			return svgpath.Bounds{}, false
		}
	}
	if horizontal != 2 || vertical != 2 {
		return svgpath.Bounds{}, false
	}
	return b, true
}
