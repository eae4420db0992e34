package svgshape

import "github.com/benoitkugler/svg2excalidraw/svgpath"

// Area returns the signed area of the polygon (shoelace formula).
// A closing duplicate point does not change the result.
func Area(pl svgpath.Polyline) float64 {
	if len(pl) < 3 {
		return 0
	}
	var sum float64
	for i, p := range pl {
		q := pl[(i+1)%len(pl)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// PointInPolygon uses the even-odd ray casting rule.
func PointInPolygon(p svgpath.Point, polygon svgpath.Polyline) bool {
	polygon = polygon.Open()
	if len(polygon) < 3 {
		return false
	}
	inside := false
	j := len(polygon) - 1
	for i := range polygon {
		a, b := polygon[i], polygon[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
		j = i
	}
	return inside
}
