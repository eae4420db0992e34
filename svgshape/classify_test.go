package svgshape

import (
	"math"
	"testing"

	"github.com/benoitkugler/svg2excalidraw/svgpath"
)

func regularPolygon(cx, cy, r float64, n int) svgpath.Polyline {
	out := make(svgpath.Polyline, 0, n+1)
	for i := 0; i <= n; i++ {
		a := 2 * math.Pi * float64(i%n) / float64(n)
		out = append(out, svgpath.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)})
	}
	return out
}

func boundsClose(a, b svgpath.Bounds, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.W-b.W) <= tol && math.Abs(a.H-b.H) <= tol
}

func TestClassifyCircles(t *testing.T) {
	for _, c := range []Classifier{DefaultClassifier(), {
		AspectTolerance: 0.12, PointTolerance: 0.4, RadiusTolerance: 0.2,
		EdgeTolerance: 0.1, CheckArea: true, AreaTolerance: 0.1,
	}} {
		for n := 12; n <= 64; n += 5 {
			for _, r := range []float64{1, 4, 10, 37.5} {
				pl := regularPolygon(3, -2, r, n)
				got := c.Classify(pl)
				if got.Kind != Ellipse {
					t.Fatalf("n=%d, r=%g: expected an ellipse, got %s", n, r, got.Kind)
				}
				// vertices of odd polygons do not reach every side of the circle
				tol := r * (1 - math.Cos(math.Pi/float64(n)))
				expected := svgpath.Bounds{X: 3 - r, Y: -2 - r, W: 2 * r, H: 2 * r}
				if !boundsClose(got.Bounds, expected, 2*tol+1e-9) {
					t.Errorf("n=%d, r=%g: unexpected bounds %v", n, r, got.Bounds)
				}
			}
		}
	}
}

func TestClassifyRectangles(t *testing.T) {
	corners := []svgpath.Point{{X: 2, Y: 3}, {X: 12, Y: 3}, {X: 12, Y: 13}, {X: 2, Y: 13}}
	expected := svgpath.Bounds{X: 2, Y: 3, W: 10, H: 10}
	for start := 0; start < 4; start++ {
		for _, reverse := range []bool{false, true} {
			var pl svgpath.Polyline
			for i := 0; i < 4; i++ {
				k := (start + i) % 4
				if reverse {
					k = (start - i + 4) % 4
				}
				pl = append(pl, corners[k])
			}
			for _, closed := range []bool{false, true} {
				input := pl
				if closed {
					input = svgpath.Polygon(pl)
				}
				got := Classify(input)
				if got.Kind != Rectangle || got.Bounds != expected {
					t.Errorf("start %d, reverse %v, closed %v: got %s %v", start, reverse, closed, got.Kind, got.Bounds)
				}
			}
		}
	}
}

func TestClassifyWideRectangle(t *testing.T) {
	pl := svgpath.Polyline{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 8}, {X: 0, Y: 8}, {X: 0, Y: 0}}
	if got := Classify(pl); got.Kind != Line {
		t.Errorf("the default classifier only accepts squares, got %s", got.Kind)
	}
	c := DefaultClassifier()
	c.AnyAspectRectangles = true
	if got := c.Classify(pl); got.Kind != Rectangle || got.Bounds != (svgpath.Bounds{W: 20, H: 8}) {
		t.Errorf("expected a rectangle, got %s %v", got.Kind, got.Bounds)
	}
}

func TestClassifyLines(t *testing.T) {
	for _, pl := range []svgpath.Polyline{
		{{X: 0, Y: 0}, {X: 10, Y: 10}},
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}},                  // open corner
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}, {X: 0, Y: 0}},     // triangle
		{{X: 0, Y: 0}, {X: 10, Y: 2}, {X: 10, Y: 10}, {X: 0, Y: 10}},   // skewed edge
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 5}, {X: 0, Y: 0}},
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 0.01}}, // degenerated
	} {
		if got := Classify(pl); got.Kind != Line {
			t.Errorf("%s: expected a line, got %s", pl, got.Kind)
		} else if got.Bounds != pl.Bounds() {
			t.Errorf("unexpected bounds %v", got.Bounds)
		}
	}
}

func TestCircleBeforeRectangle(t *testing.T) {
	// a diamond passes the circle test
	pl := svgpath.Polyline{{X: 5, Y: 0}, {X: 10, Y: 5}, {X: 5, Y: 10}, {X: 0, Y: 5}, {X: 5, Y: 0}}
	if got := Classify(pl); got.Kind != Ellipse {
		t.Errorf("expected an ellipse, got %s", got.Kind)
	}
}

func TestCircleAreaCheck(t *testing.T) {
	// a star with all tips on the circle, and shallow notches
	var star svgpath.Polyline
	for i := 0; i < 16; i++ {
		r := 10.
		if i%2 == 1 {
			r = 8.2
		}
		a := 2 * math.Pi * float64(i) / 16
		star = append(star, svgpath.Point{X: r * math.Cos(a), Y: r * math.Sin(a)})
	}
	star = svgpath.Polygon(star)
	if _, ok := DefaultClassifier().Circle(star); !ok {
		t.Fatal("the lenient test should accept the star")
	}
	c := DefaultClassifier()
	c.CheckArea = true
	c.AreaTolerance = 0.05
	if _, ok := c.Circle(star); ok {
		t.Error("the area test should reject the star")
	}
}

func TestArea(t *testing.T) {
	square := svgpath.Polyline{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	if a := Area(square); a != 16 {
		t.Errorf("expected 16, got %g", a)
	}
	if a := Area(svgpath.Polygon(square)); a != 16 {
		t.Errorf("closing point should not matter, got %g", a)
	}
	reversed := svgpath.Polyline{{X: 0, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 0}, {X: 0, Y: 0}}
	if a := Area(reversed); a != -16 {
		t.Errorf("expected -16, got %g", a)
	}
}

func TestPointInPolygon(t *testing.T) {
	// U shape
	u := svgpath.Polyline{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 8}, {X: 7, Y: 8}, {X: 7, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}}
	for _, test := range []struct {
		p        svgpath.Point
		expected bool
	}{
		{svgpath.Point{X: 1, Y: 5}, true},
		{svgpath.Point{X: 5, Y: 9}, true},
		{svgpath.Point{X: 5, Y: 4}, false},
		{svgpath.Point{X: 11, Y: 5}, false},
		{svgpath.Point{X: -1, Y: 5}, false},
	} {
		if got := PointInPolygon(test.p, u); got != test.expected {
			t.Errorf("%v: expected %v", test.p, test.expected)
		}
	}
}
