package scene

import (
	"cmp"
	"slices"
	"strings"

	"github.com/benoitkugler/svg2excalidraw/idgen"
	"github.com/benoitkugler/svg2excalidraw/svgicon"
	"github.com/benoitkugler/svg2excalidraw/svgshape"
)

// Default colors of the overlay heuristic.
const (
	AccentColor  = svgicon.AccentColor
	OverlayColor = svgicon.WhiteColor
	Background   = svgicon.WhiteColor
)

// Order selects the stacking order of a scene.
type Order uint8

const (
	// Layered lists filled primitives first, larger ones first,
	// then falls back to the emission order.
	Layered Order = iota
	// DocumentOrder keeps the order of the source elements first,
	// so that later elements are drawn on top.
	DocumentOrder
)

func (o Order) String() string {
	if o == DocumentOrder {
		return "document"
	}
	return "layered"
}

// Containment selects how a container is tested by the overlay heuristic.
type Containment uint8

const (
	// BoundsContainment requires the candidate box to fit in the container box,
	// up to OverlayMargin.
	BoundsContainment Containment = iota
	// CenterContainment requires the candidate center to lie inside the
	// container polygon (or box, for rectangles and ellipses).
	CenterContainment
)

func (c Containment) String() string {
	if c == CenterContainment {
		return "center"
	}
	return "bounds"
}

// Tuning of the overlay heuristic.
const (
	OverlayMargin    = 0.5
	MaxOverlayRatio  = 0.85
	MaxOverlayPoints = 30
)

// Scene is the ordered list of primitives of one document,
// sharing one group identifier.
type Scene struct {
	Primitives []Primitive
	GroupID    string

	Background string
	GridSize   int // 0 means no grid
}

// Composer orders primitives and resolves nested shapes.
type Composer struct {
	Order       Order
	Containment Containment

	// Overlay enables recoloring of nested accent shapes.
	Overlay bool
	// Strict rejects containers which are not much larger than the candidate,
	// and candidates with many points.
	Strict bool

	// AccentColor and OverlayColor default to the package constants.
	AccentColor, OverlayColor string

	// IDs provides the group identifier; it defaults to idgen.Random.
	IDs idgen.Source
}

// Compose returns the final scene. The input slice is not modified.
func (cp Composer) Compose(prims []Primitive) *Scene {
	out := slices.Clone(prims)
	if cp.Overlay {
		cp.applyOverlay(out)
	}
	cp.sort(out)

	ids := cp.IDs
	if ids == nil {
		ids = idgen.Random{}
	}
	group := ids.NewGroupID()
	for i := range out {
		out[i].GroupID = group
	}
	return &Scene{Primitives: out, GroupID: group, Background: Background}
}

func filledRank(p Primitive) int {
	if p.IsFilled() {
		return 0
	}
	return 1
}

func (cp Composer) sort(prims []Primitive) {
	byStyle := func(a, b Primitive) int {
		if c := cmp.Compare(filledRank(a), filledRank(b)); c != 0 {
			return c
		}
		return cmp.Compare(b.Area(), a.Area())
	}
	if cp.Order == DocumentOrder {
		slices.SortStableFunc(prims, func(a, b Primitive) int {
			if c := cmp.Compare(a.Element, b.Element); c != 0 {
				return c
			}
			return byStyle(a, b)
		})
		return
	}
	slices.SortStableFunc(prims, byStyle)
}

type filledShape struct {
	index int
	area  float64
	color string // before any recoloring
}

// applyOverlay recolors accent shapes nested in a larger accent shape.
func (cp Composer) applyOverlay(prims []Primitive) {
	accent := strings.ToLower(cmp.Or(cp.AccentColor, AccentColor))
	overlay := strings.ToLower(cmp.Or(cp.OverlayColor, OverlayColor))

	var filled []filledShape
	for i, p := range prims {
		if p.IsFilled() {
			filled = append(filled, filledShape{index: i, area: p.Area(), color: strings.ToLower(p.FillColor)})
		}
	}
	candidates := slices.Clone(filled)
	slices.SortStableFunc(candidates, func(a, b filledShape) int { return cmp.Compare(a.area, b.area) })
	containers := slices.Clone(filled)
	slices.SortStableFunc(containers, func(a, b filledShape) int { return cmp.Compare(b.area, a.area) })

	for _, cand := range candidates {
		if cand.color != accent {
			continue
		}
		inner := prims[cand.index]
		if cp.Strict && len(inner.Points) > MaxOverlayPoints {
			continue
		}
		for _, cont := range containers {
			if cont.area <= cand.area {
				break
			}
			if cont.color != accent {
				continue
			}
			if cp.Strict && cont.area > 0 && cand.area/cont.area > MaxOverlayRatio {
				continue
			}
			if cp.contains(prims[cont.index], inner) {
				prims[cand.index].FillColor = overlay
				break
			}
		}
	}
}

func (cp Composer) contains(outer, inner Primitive) bool {
	if cp.Containment == BoundsContainment {
		return outer.Bounds().Contains(inner.Bounds(), OverlayMargin)
	}
	center := inner.Bounds().Center()
	if outer.Kind == svgshape.Line && len(outer.Points) >= 3 {
		return svgshape.PointInPolygon(center, outer.Outline())
	}
	return outer.Bounds().ContainsPoint(center)
}
