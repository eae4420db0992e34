package svgpath

import (
	"fmt"
	"math"
	"strings"
)

// PointEpsilon is the absolute tolerance used to decide
// that two points are the same (closure and de-duplication).
const PointEpsilon = 1e-3

// appendEpsilon is the tolerance below which a new point is
// considered a repetition of the previous one while interpreting a path.
const appendEpsilon = 1e-6

// Point is a 2D point in user space.
type Point struct{ X, Y float64 }

// Close returns true if p and q are within `eps` on both axes.
func (p Point) Close(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Scale multiplies both coordinates by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// reflect returns the reflection of p about the anchor.
func (p Point) reflect(anchor Point) Point {
	return Point{2*anchor.X - p.X, 2*anchor.Y - p.Y}
}

// Polyline is an ordered sequence of points.
// A closed polyline repeats its first point at the end.
type Polyline []Point

// IsClosed returns true if the first and last points coincide.
func (pl Polyline) IsClosed() bool {
	return len(pl) > 2 && pl[0].Close(pl[len(pl)-1], PointEpsilon)
}

// Open returns the polyline without its closing duplicate point, if any.
// The returned slice shares memory with pl.
func (pl Polyline) Open() Polyline {
	if len(pl) > 1 && pl[0].Close(pl[len(pl)-1], PointEpsilon) {
		return pl[:len(pl)-1]
	}
	return pl
}

// Dedupe removes near-coincident consecutive points and a closing duplicate.
func (pl Polyline) Dedupe() Polyline {
	out := make(Polyline, 0, len(pl))
	for _, p := range pl {
		if len(out) == 0 || !p.Close(out[len(out)-1], PointEpsilon) {
			out = append(out, p)
		}
	}
	if len(out) > 1 && out[0].Close(out[len(out)-1], PointEpsilon) {
		out = out[:len(out)-1]
	}
	return out
}

// Bounds returns the bounding box of the points.
// An empty polyline has empty bounds.
func (pl Polyline) Bounds() Bounds {
	if len(pl) == 0 {
		return Bounds{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pl {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Bounds{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Translate returns a new polyline with every point moved by -(dx, dy).
func (pl Polyline) Translate(dx, dy float64) Polyline {
	out := make(Polyline, len(pl))
	for i, p := range pl {
		out[i] = Point{p.X - dx, p.Y - dy}
	}
	return out
}

// String returns a compact representation, mainly for debugging.
func (pl Polyline) String() string {
	chunks := make([]string, len(pl))
	for i, p := range pl {
		chunks[i] = fmt.Sprintf("%4.3f,%4.3f", p.X, p.Y)
	}
	return strings.Join(chunks, " ")
}

// appendPoint adds p unless it repeats the last point.
func (pl *Polyline) appendPoint(p Point) {
	if n := len(*pl); n > 0 && (*pl)[n-1].Close(p, appendEpsilon) {
		return
	}
	*pl = append(*pl, p)
}

// Bounds defines an axis-aligned bounding box,
// such as a viewport or a path extent.
type Bounds struct{ X, Y, W, H float64 }

// MaxX returns the right edge.
func (b Bounds) MaxX() float64 { return b.X + b.W }

// MaxY returns the bottom edge.
func (b Bounds) MaxY() float64 { return b.Y + b.H }

// Center returns the middle of the box.
func (b Bounds) Center() Point { return Point{b.X + b.W/2, b.Y + b.H/2} }

// Area returns W*H.
func (b Bounds) Area() float64 { return math.Abs(b.W * b.H) }

// MaxDim returns the larger of the two dimensions.
func (b Bounds) MaxDim() float64 { return math.Max(b.W, b.H) }

// Contains returns true if inner lies within b,
// each edge being allowed to overflow by `margin`.
func (b Bounds) Contains(inner Bounds, margin float64) bool {
	return inner.X >= b.X-margin &&
		inner.Y >= b.Y-margin &&
		inner.MaxX() <= b.MaxX()+margin &&
		inner.MaxY() <= b.MaxY()+margin
}

// ContainsPoint returns true if p is inside b (edges included).
func (b Bounds) ContainsPoint(p Point) bool {
	return p.X >= b.X && p.X <= b.MaxX() && p.Y >= b.Y && p.Y <= b.MaxY()
}
