package scene

import (
	"math"

	"github.com/benoitkugler/svg2excalidraw/svgpath"
	"github.com/benoitkugler/svg2excalidraw/svgshape"
)

// Tuning of the ring heuristic.
const (
	ringMargin    = 2
	ringMinPoints = 4
	ringMinRatio  = 0.2
	ringMaxRatio  = 0.8
	ringCenterTol = 0.2
)

// DetectRing reports whether the polylines of one path describe a frame:
// an outer outline with a single, centered hole of moderate size.
// On success, it returns the outer polyline.
func DetectRing(polylines []svgpath.Polyline) (svgpath.Polyline, bool) {
	if len(polylines) != 2 {
		return nil, false
	}
	outer, inner := polylines[0], polylines[1]
	outerArea, innerArea := math.Abs(svgshape.Area(outer)), math.Abs(svgshape.Area(inner))
	if innerArea > outerArea {
		outer, inner = inner, outer
		outerArea, innerArea = innerArea, outerArea
	}
	if len(outer.Open()) < ringMinPoints || len(inner.Open()) < ringMinPoints {
		return nil, false
	}
	ob, ib := outer.Bounds(), inner.Bounds()
	if !ob.Contains(ib, ringMargin) {
		return nil, false
	}
	if outerArea == 0 {
		return nil, false
	}
	if ratio := innerArea / outerArea; ratio < ringMinRatio || ratio > ringMaxRatio {
		return nil, false
	}
	oc, ic := ob.Center(), ib.Center()
	if math.Abs(oc.X-ic.X) > ringCenterTol*ob.W || math.Abs(oc.Y-ic.Y) > ringCenterTol*ob.H {
		return nil, false
	}
	return outer, true
}
