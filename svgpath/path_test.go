package svgpath

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestParseCommands(t *testing.T) {
	for _, test := range []struct {
		data     string
		expected string
	}{
		{"M0,0 L10,0", "M0.000,0.000 L10.000,0.000"},
		{"M0 0 10 0 10 10", "M0.000,0.000 L10.000,0.000 L10.000,10.000"},
		{"m1 1 2 2", "m1.000,1.000 l2.000,2.000"},
		{"M0,0H5V5h-1v-1z", "M0.000,0.000 H5.000 V5.000 h-1.000 v-1.000 z"},
		{"M0-1.5.5.5", "M0.000,-1.500 L0.500,0.500"},
		{"M1e1,2E-1", "M10.000,0.200"},
		{"C0,1,2,3,4,5 6,7,8,9,10,11", "C0.000,1.000,2.000,3.000,4.000,5.000 C6.000,7.000,8.000,9.000,10.000,11.000"},
	} {
		p, err := ParseCommands(test.data)
		if err != nil {
			t.Fatalf("parsing %q: %s", test.data, err)
		}
		if got := p.String(); got != test.expected {
			t.Errorf("parsing %q: expected %q, got %q", test.data, test.expected, got)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	for _, data := range []string{
		"M0,0 A1,1 0 0 1 5,5", // arcs are not supported
		"M0,0 Q1,1 2,2",
		"M0",
		"M0,0 L",
		"M0,0 C1,1 2,2",
		"10,10",
		"M0,0 Z 5",
		"M0,0 L1,#",
	} {
		_, err := Parse(data)
		var malformed *MalformedPathError
		if !errors.As(err, &malformed) {
			t.Errorf("%q: expected a MalformedPathError, got %v", data, err)
		}
	}
}

func TestClosedSquare(t *testing.T) {
	pls, err := Interpreter{}.Interpret("M0,0 L10,0 L10,10 L0,10 Z")
	if err != nil {
		t.Fatal(err)
	}
	if len(pls) != 1 {
		t.Fatalf("expected one polyline, got %d", len(pls))
	}
	pl := pls[0]
	if len(pl) != 5 || !pl.IsClosed() {
		t.Fatalf("expected a closed 5 points polyline, got %s", pl)
	}

	simplified, err := Parse("M0,0 L10,0 L10,10 L0,10 Z")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(simplified[0], pl) {
		t.Errorf("simplification should not change a square: %s", simplified[0])
	}
}

func TestCubicSampling(t *testing.T) {
	pls, err := Interpreter{}.Interpret("M0,0 C0,10 10,10 10,0")
	if err != nil {
		t.Fatal(err)
	}
	if len(pls) != 1 || len(pls[0]) != 7 {
		t.Fatalf("expected the start and 6 samples, got %v", pls)
	}
	cu := cubicBezier{{0, 0}, {0, 10}, {10, 10}, {10, 0}}
	prevX := -1.
	for i, p := range pls[0] {
		tt := float64(i) / 6
		mt := 1 - tt
		x := 3*mt*tt*tt*10 + tt*tt*tt*10
		y := 3*mt*mt*tt*10 + 3*mt*tt*tt*10
		if math.Abs(p.X-x) > 1e-9 || math.Abs(p.Y-y) > 1e-9 {
			t.Errorf("sample %d: expected (%g, %g), got %v", i, x, y, p)
		}
		if e := cu.evaluate(tt); !e.Close(p, 1e-9) {
			t.Errorf("sample %d: expected %v, got %v", i, e, p)
		}
		if p.X <= prevX {
			t.Errorf("x should increase along the curve")
		}
		prevX = p.X
	}
}

func TestSmoothCubic(t *testing.T) {
	// the reflected control point of the second curve is (20, -10)
	pls, err := Interpreter{CubicSteps: 2}.Interpret("M0,0 C0,10 10,10 10,0 S20,-10 20,0")
	if err != nil {
		t.Fatal(err)
	}
	mid := cubicBezier{{10, 0}, {10, -10}, {20, -10}, {20, 0}}.evaluate(0.5)
	expected := Polyline{{0, 0}, {5, 7.5}, {10, 0}, mid, {20, 0}}
	if !reflect.DeepEqual(pls[0], expected) {
		t.Errorf("expected %s, got %s", expected, pls[0])
	}

	// without a previous cubic, the first control point is the current point
	pls, err = Interpreter{CubicSteps: 2}.Interpret("M0,0 L10,0 S20,10 20,0")
	if err != nil {
		t.Fatal(err)
	}
	mid = cubicBezier{{10, 0}, {10, 0}, {20, 10}, {20, 0}}.evaluate(0.5)
	expected = Polyline{{0, 0}, {10, 0}, mid, {20, 0}}
	if !reflect.DeepEqual(pls[0], expected) {
		t.Errorf("expected %s, got %s", expected, pls[0])
	}
}

func TestSubpaths(t *testing.T) {
	pls, err := Interpreter{}.Interpret("M0,0 L10,0 L10,10 Z L5,5 M20,20 l5,0 M30,30")
	if err != nil {
		t.Fatal(err)
	}
	expected := []Polyline{
		{{0, 0}, {10, 0}, {10, 10}, {0, 0}},
		{{0, 0}, {5, 5}}, // after a close, drawing restarts from the subpath start
		{{20, 20}, {25, 20}},
	}
	if !reflect.DeepEqual(pls, expected) {
		t.Errorf("expected %v, got %v", expected, pls)
	}
}

func TestRelativeCommands(t *testing.T) {
	pls, err := Interpreter{}.Interpret("m2,2 h3 v3 h-3 z")
	if err != nil {
		t.Fatal(err)
	}
	expected := []Polyline{{{2, 2}, {5, 2}, {5, 5}, {2, 5}, {2, 2}}}
	if !reflect.DeepEqual(pls, expected) {
		t.Errorf("expected %v, got %v", expected, pls)
	}
}

func TestDuplicatePointsDropped(t *testing.T) {
	pls, err := Interpreter{}.Interpret("M0,0 L0,0 L1,1 L1.0000001,1")
	if err != nil {
		t.Fatal(err)
	}
	if len(pls[0]) != 2 {
		t.Errorf("expected 2 points, got %s", pls[0])
	}

	// a lone move yields nothing
	pls, err = Parse("M5,5 M1,1 L1,1")
	if err != nil {
		t.Fatal(err)
	}
	if len(pls) != 0 {
		t.Errorf("expected no polyline, got %v", pls)
	}
}

func TestParseDeterministic(t *testing.T) {
	const data = "M12 2C6.48 2 2 6.48 2 12s4.48 10 10 10 10-4.48 10-10S17.52 2 12 2zm0 18c-4.41 0-8-3.59-8-8s3.59-8 8-8 8 3.59 8 8-3.59 8-8 8z"
	first, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("parsing should be deterministic")
	}
	if len(first) != 2 {
		t.Errorf("expected 2 subpaths, got %d", len(first))
	}
}

func TestParsePoints(t *testing.T) {
	pl, err := ParsePoints("0,0 10,0 10 10")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(Polygon(pl), Polyline{{0, 0}, {10, 0}, {10, 10}, {0, 0}}) {
		t.Errorf("unexpected polygon %s", Polygon(pl))
	}
	if _, err := ParsePoints("0,0 10"); err == nil {
		t.Error("expected an error for an odd number of coordinates")
	}
}
