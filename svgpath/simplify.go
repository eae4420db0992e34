package svgpath

import "math"

const (
	// DefaultEpsilon is the base simplification tolerance, in user units.
	DefaultEpsilon = 0.2
	// RelativeScale widens the tolerance for large shapes:
	// the effective tolerance is at least RelativeScale * max(width, height).
	RelativeScale = 0.02
)

// Simplify reduces the number of points of pl, using the
// Ramer-Douglas-Peucker algorithm with a scale-aware tolerance.
// Endpoints are always kept, and a closed polyline stays closed.
func Simplify(pl Polyline, epsilon float64) Polyline {
	return SimplifyScaled(pl, epsilon, RelativeScale)
}

// SimplifyScaled is like Simplify, with the effective tolerance
// max(epsilon, relative * max(width, height)).
func SimplifyScaled(pl Polyline, epsilon, relative float64) Polyline {
	if len(pl) < 3 {
		return append(Polyline(nil), pl...)
	}
	closed := pl.IsClosed()
	working := pl
	if closed {
		working = pl[:len(pl)-1]
	}
	eps := math.Max(epsilon, working.Bounds().MaxDim()*relative)

	out := rdp(working, eps)
	if closed && !out[0].Close(out[len(out)-1], PointEpsilon) {
		out = append(out, out[0])
	}
	return out
}

// rdp runs the reduction with an explicit stack of segments.
func rdp(points Polyline, eps float64) Polyline {
	if len(points) < 3 {
		return append(Polyline(nil), points...)
	}
	keep := make([]bool, len(points))
	keep[0], keep[len(points)-1] = true, true

	type segment struct{ first, last int }
	stack := []segment{{0, len(points) - 1}}
	for len(stack) > 0 {
		seg := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		index, maxDist := -1, -1.
		for i := seg.first + 1; i < seg.last; i++ {
			if d := perpendicularDistance(points[i], points[seg.first], points[seg.last]); d > maxDist {
				index, maxDist = i, d
			}
		}
		if index == -1 || maxDist <= eps {
			continue
		}
		keep[index] = true
		stack = append(stack, segment{index, seg.last}, segment{seg.first, index})
	}

	out := make(Polyline, 0, len(points))
	for i, k := range keep {
		if k {
			out = append(out, points[i])
		}
	}
	return out
}

// perpendicularDistance returns the distance from p to the line (a, b),
// or to a when a and b coincide.
func perpendicularDistance(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx == 0 && dy == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	return math.Abs(dy*p.X-dx*p.Y+b.X*a.Y-b.Y*a.X) / math.Hypot(dx, dy)
}
