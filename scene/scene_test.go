package scene

import (
	"testing"

	"github.com/benoitkugler/svg2excalidraw/idgen"
	"github.com/benoitkugler/svg2excalidraw/svgpath"
	"github.com/benoitkugler/svg2excalidraw/svgshape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x, y, size float64) svgpath.Polyline {
	return svgpath.Polyline{{X: x, Y: y}, {X: x + size, Y: y}, {X: x + size, Y: y + size}, {X: x, Y: y + size}, {X: x, Y: y}}
}

func circleBox(cx, cy, r float64) svgpath.Bounds {
	return svgpath.Bounds{X: cx - r, Y: cy - r, W: 2 * r, H: 2 * r}
}

func TestScaleFactor(t *testing.T) {
	assert.Equal(t, 4., ScaleFactor(24, 24))
	assert.Equal(t, 4., ScaleFactor(0, 0))
	assert.Equal(t, 2., ScaleFactor(48, 32))
	assert.Equal(t, 8., ScaleFactor(12, -1))
}

func TestBuilder(t *testing.T) {
	b := NewBuilder(2)

	rect, ok := b.Rectangle(svgpath.Bounds{X: 1, Y: 2, W: 3, H: 4}, AccentColor, "#1e1e1e", 0)
	require.True(t, ok)
	assert.Equal(t, svgpath.Bounds{X: 2, Y: 4, W: 6, H: 8}, rect.Bounds())
	assert.Equal(t, float64(DefaultStrokeWidth), rect.StrokeWidth)

	_, ok = b.Rectangle(svgpath.Bounds{W: 0, H: 4}, AccentColor, "#1e1e1e", 0)
	assert.False(t, ok)
	_, ok = b.Ellipse(svgpath.Bounds{W: 3, H: -1}, AccentColor, "#1e1e1e", 0)
	assert.False(t, ok)

	line, ok := b.Line(svgpath.Polyline{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 2}}, AccentColor, "#1e1e1e", 3)
	require.True(t, ok)
	assert.Equal(t, Transparent, line.FillColor, "open lines are not filled")
	assert.Equal(t, []svgpath.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 2}}, line.Points)
	assert.Equal(t, svgpath.Bounds{X: 2, Y: 2, W: 4, H: 2}, line.Bounds())
	assert.Equal(t, 3, line.Element)

	closed, ok := b.Line(square(1, 1, 2), AccentColor, "#1e1e1e", 0)
	require.True(t, ok)
	assert.True(t, closed.IsClosed())
	assert.Equal(t, AccentColor, closed.FillColor)
	assert.Equal(t, svgpath.Polyline{{X: 2, Y: 2}, {X: 6, Y: 2}, {X: 6, Y: 6}, {X: 2, Y: 6}, {X: 2, Y: 2}}, closed.Outline())

	_, ok = b.Line(svgpath.Polyline{{X: 1, Y: 1}, {X: 1, Y: 1}}, AccentColor, "#1e1e1e", 0)
	assert.False(t, ok, "zero size lines are dropped")
	_, ok = b.Line(svgpath.Polyline{{X: 1, Y: 1}}, AccentColor, "#1e1e1e", 0)
	assert.False(t, ok)

	ring, ok := b.RingOutline(square(0, 0, 24), AccentColor, 0)
	require.True(t, ok)
	assert.Equal(t, Transparent, ring.FillColor)
	assert.Equal(t, AccentColor, ring.StrokeColor)
	assert.Equal(t, float64(RingStrokeWidth), ring.StrokeWidth)

	c := svgshape.Classification{Kind: svgshape.Ellipse, Bounds: circleBox(5, 5, 5)}
	ell, ok := b.Shape(c, AccentColor, "#1e1e1e", 0)
	require.True(t, ok)
	assert.Equal(t, svgshape.Ellipse, ell.Kind)
	assert.Equal(t, svgpath.Bounds{W: 20, H: 20}, ell.Bounds())
}

func TestOverlayConcentricCircles(t *testing.T) {
	b := NewBuilder(1)
	outer, _ := b.Ellipse(circleBox(12, 12, 10), AccentColor, "#1e1e1e", 0)
	inner, _ := b.Ellipse(circleBox(12, 12, 4), AccentColor, "#1e1e1e", 1)

	for _, containment := range []Containment{BoundsContainment, CenterContainment} {
		for _, strict := range []bool{false, true} {
			cp := Composer{Overlay: true, Containment: containment, Strict: strict, IDs: idgen.NewSeeded(1)}
			sc := cp.Compose([]Primitive{outer, inner})
			require.Len(t, sc.Primitives, 2)
			assert.Equal(t, AccentColor, sc.Primitives[0].FillColor, "%s %v", containment, strict)
			assert.Equal(t, OverlayColor, sc.Primitives[1].FillColor, "%s %v", containment, strict)
		}
	}

	// the input is not mutated
	assert.Equal(t, AccentColor, inner.FillColor)

	cp := Composer{Overlay: false, IDs: idgen.NewSeeded(1)}
	sc := cp.Compose([]Primitive{outer, inner})
	assert.Equal(t, AccentColor, sc.Primitives[1].FillColor)
}

func TestOverlayAreaRatio(t *testing.T) {
	b := NewBuilder(1)
	outer, _ := b.Ellipse(circleBox(12, 12, 10), AccentColor, "#1e1e1e", 0)
	inner, _ := b.Ellipse(circleBox(12, 12, 9.5), AccentColor, "#1e1e1e", 1) // 90% of the area

	for _, containment := range []Containment{BoundsContainment, CenterContainment} {
		cp := Composer{Overlay: true, Strict: true, Containment: containment, IDs: idgen.NewSeeded(1)}
		sc := cp.Compose([]Primitive{outer, inner})
		for _, p := range sc.Primitives {
			assert.Equal(t, AccentColor, p.FillColor)
		}
	}
}

func TestOverlayOnlyAccent(t *testing.T) {
	b := NewBuilder(1)
	outer, _ := b.Rectangle(svgpath.Bounds{W: 20, H: 20}, "#ff0000", "#1e1e1e", 0)
	inner, _ := b.Rectangle(svgpath.Bounds{X: 5, Y: 5, W: 4, H: 4}, AccentColor, "#1e1e1e", 1)
	sc := Composer{Overlay: true, IDs: idgen.NewSeeded(1)}.Compose([]Primitive{outer, inner})
	assert.Equal(t, AccentColor, sc.Primitives[1].FillColor)

	// candidates are tested once, against their color before recoloring
	mid, _ := b.Rectangle(svgpath.Bounds{X: 2, Y: 2, W: 12, H: 12}, AccentColor, "#1e1e1e", 2)
	big, _ := b.Rectangle(svgpath.Bounds{W: 20, H: 20}, AccentColor, "#1e1e1e", 3)
	sc = Composer{Overlay: true, IDs: idgen.NewSeeded(1)}.Compose([]Primitive{inner, mid, big})
	require.Len(t, sc.Primitives, 3)
	assert.Equal(t, AccentColor, sc.Primitives[0].FillColor)
	assert.Equal(t, OverlayColor, sc.Primitives[1].FillColor)
	assert.Equal(t, OverlayColor, sc.Primitives[2].FillColor)
}

func TestOverlayCustomColors(t *testing.T) {
	b := NewBuilder(1)
	outer, _ := b.Ellipse(circleBox(12, 12, 10), "#FF0000", "#1e1e1e", 0)
	inner, _ := b.Ellipse(circleBox(12, 12, 4), "#ff0000", "#1e1e1e", 1)

	cp := Composer{Overlay: true, AccentColor: "#FF0000", OverlayColor: "#FFEEDD", IDs: idgen.NewSeeded(1)}
	sc := cp.Compose([]Primitive{outer, inner})
	require.Len(t, sc.Primitives, 2)
	assert.Equal(t, "#FF0000", sc.Primitives[0].FillColor)
	assert.Equal(t, "#ffeedd", sc.Primitives[1].FillColor)
}

func TestOverlayPointInPolygon(t *testing.T) {
	b := NewBuilder(1)
	// an L shape whose box contains the small square, but not its body
	shape := svgpath.Polyline{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 16}, {X: 20, Y: 16}, {X: 20, Y: 20}, {X: 0, Y: 20}, {X: 0, Y: 0}}
	outer, _ := b.Line(shape, AccentColor, "#1e1e1e", 0)
	inner, _ := b.Rectangle(svgpath.Bounds{X: 10, Y: 4, W: 4, H: 4}, AccentColor, "#1e1e1e", 1)

	sc := Composer{Overlay: true, Containment: BoundsContainment, IDs: idgen.NewSeeded(1)}.Compose([]Primitive{outer, inner})
	assert.Equal(t, OverlayColor, sc.Primitives[1].FillColor)

	sc = Composer{Overlay: true, Containment: CenterContainment, IDs: idgen.NewSeeded(1)}.Compose([]Primitive{outer, inner})
	assert.Equal(t, AccentColor, sc.Primitives[1].FillColor)
}

func TestStackingOrder(t *testing.T) {
	b := NewBuilder(1)
	small, _ := b.Rectangle(svgpath.Bounds{W: 2, H: 2}, AccentColor, "#1e1e1e", 0)
	stroke, _ := b.Line(svgpath.Polyline{{X: 0, Y: 0}, {X: 30, Y: 30}}, AccentColor, "#1e1e1e", 0)
	large, _ := b.Rectangle(svgpath.Bounds{W: 10, H: 10}, AccentColor, "#1e1e1e", 1)
	tie, _ := b.Rectangle(svgpath.Bounds{X: 20, W: 10, H: 10}, "#ff0000", "#1e1e1e", 2)

	input := []Primitive{small, stroke, large, tie}

	sc := Composer{Order: Layered, IDs: idgen.NewSeeded(1)}.Compose(input)
	var got []svgpath.Bounds
	for _, p := range sc.Primitives {
		got = append(got, p.Bounds())
	}
	assert.Equal(t, []svgpath.Bounds{large.Bounds(), tie.Bounds(), small.Bounds(), stroke.Bounds()}, got)

	sc = Composer{Order: DocumentOrder, IDs: idgen.NewSeeded(1)}.Compose(input)
	got = got[:0]
	for _, p := range sc.Primitives {
		got = append(got, p.Bounds())
	}
	assert.Equal(t, []svgpath.Bounds{small.Bounds(), stroke.Bounds(), large.Bounds(), tie.Bounds()}, got)
}

func TestGroupID(t *testing.T) {
	b := NewBuilder(1)
	p1, _ := b.Rectangle(svgpath.Bounds{W: 2, H: 2}, AccentColor, "#1e1e1e", 0)
	p2, _ := b.Rectangle(svgpath.Bounds{W: 3, H: 2}, AccentColor, "#1e1e1e", 1)

	sc1 := Composer{IDs: idgen.NewSeeded(7)}.Compose([]Primitive{p1, p2})
	sc2 := Composer{IDs: idgen.NewSeeded(7)}.Compose([]Primitive{p1, p2})
	require.NotEmpty(t, sc1.GroupID)
	assert.Equal(t, sc1.GroupID, sc2.GroupID)
	for _, p := range sc1.Primitives {
		assert.Equal(t, sc1.GroupID, p.GroupID)
	}
	assert.Equal(t, Background, sc1.Background)

	empty := Composer{}.Compose(nil)
	assert.Empty(t, empty.Primitives)
	assert.NotEmpty(t, empty.GroupID)
}

func TestDetectRing(t *testing.T) {
	outer, inner := square(0, 0, 24), square(5, 5, 14)
	got, ok := DetectRing([]svgpath.Polyline{outer, inner})
	require.True(t, ok)
	assert.Equal(t, outer, got)

	// order does not matter
	got, ok = DetectRing([]svgpath.Polyline{inner, outer})
	require.True(t, ok)
	assert.Equal(t, outer, got)

	// letter O: the hole is too small
	side := 7.589466384404109 // 10% of the outer area
	hole := square(12-side/2, 12-side/2, side)
	_, ok = DetectRing([]svgpath.Polyline{outer, hole})
	assert.False(t, ok)

	// near equal outlines
	_, ok = DetectRing([]svgpath.Polyline{outer, square(1, 1, 22)})
	assert.False(t, ok)

	// off center hole
	_, ok = DetectRing([]svgpath.Polyline{outer, square(0, 0, 14)})
	assert.False(t, ok)

	// not contained
	_, ok = DetectRing([]svgpath.Polyline{outer, square(15, 15, 14)})
	assert.False(t, ok)

	_, ok = DetectRing([]svgpath.Polyline{outer})
	assert.False(t, ok)
	_, ok = DetectRing([]svgpath.Polyline{outer, inner, square(8, 8, 4)})
	assert.False(t, ok)
	_, ok = DetectRing([]svgpath.Polyline{outer, {{X: 5, Y: 5}, {X: 19, Y: 19}, {X: 5, Y: 19}}})
	assert.False(t, ok, "too few points")
}
