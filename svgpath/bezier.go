package svgpath

// cubic polinomial
// x = At^3 + Bt^2 + Ct + D
// where A,B,C,D:
// A = p3 -3 * p2 + 3 * p1 - p0
// B = 3 * p2 - 6 * p1 +3 * p0
// C = 3 * p1 - 3 * p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		(p0)
}

// cubicBezier holds the start point, the two control points and the end point.
type cubicBezier [4]Point

// evaluate returns the point at parameter t.
func (cu cubicBezier) evaluate(t float64) Point {
	return Point{
		X: bezierSpline(cu[0].X, cu[1].X, cu[2].X, cu[3].X, t),
		Y: bezierSpline(cu[0].Y, cu[1].Y, cu[2].Y, cu[3].Y, t),
	}
}

// sample returns the points at t = i/steps, for i = 1..steps.
// The start point is not included; the last point is exactly the end point.
func (cu cubicBezier) sample(steps int) []Point {
	if steps < 1 {
		steps = 1
	}
	out := make([]Point, 0, steps)
	for i := 1; i < steps; i++ {
		out = append(out, cu.evaluate(float64(i)/float64(steps)))
	}
	return append(out, cu[3])
}
