package svgicon

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// GradStop represents a stop in the SVG 2.0 gradient specification
type GradStop struct {
	Color   string // as written, empty if not specified
	Offset  float64
	Opacity float64
}

// Gradient holds the description of an SVG 2.0 linear or radial gradient.
// Only the stops are used to build the paint table.
type Gradient struct {
	Radial bool
	Href   string // id of the gradient providing the stops, if any
	Stops  []GradStop
}

// PaintDef is the solid color chosen to represent a paint server.
type PaintDef struct {
	Color   string // as written in the file
	Opacity float64
}

// PaintTable maps paint server ids to their representative color.
type PaintTable map[string]PaintDef

// Lookup resolves a reference of the form url(#id).
func (pt PaintTable) Lookup(ref string) (PaintDef, bool) {
	id, ok := parseURLRef(ref)
	if !ok {
		return PaintDef{}, false
	}
	def, ok := pt[id]
	return def, ok
}

// parseURLRef extracts the id from url(#id), accepting quotes.
func parseURLRef(ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if !strings.HasPrefix(strings.ToLower(ref), "url(") {
		return "", false
	}
	end := strings.IndexByte(ref, ')')
	if end == -1 {
		return "", false
	}
	inner := strings.Trim(strings.TrimSpace(ref[len("url("):end]), `"'`)
	if !strings.HasPrefix(inner, "#") || len(inner) == 1 {
		return "", false
	}
	return inner[1:], true
}

func idOf(attrs []xml.Attr) string {
	for _, attr := range attrs {
		if attr.Name.Local == "id" {
			return attr.Value
		}
	}
	return ""
}

func linearGradientF(c *iconCursor, attrs []xml.Attr) error { return readGradient(c, attrs, false) }

func radialGradientF(c *iconCursor, attrs []xml.Attr) error { return readGradient(c, attrs, true) }

// readGradient starts a gradient; the direction and the spread
// are not needed to choose its representative color.
func readGradient(c *iconCursor, attrs []xml.Attr, radial bool) error {
	c.grad = &Gradient{Radial: radial}
	for _, attr := range attrs {
		if attr.Name.Local == "href" {
			c.grad.Href = strings.TrimPrefix(strings.TrimSpace(attr.Value), "#")
		}
	}
	if id := idOf(attrs); id != "" {
		c.grads[id] = c.grad
	}
	return nil
}

func stopF(c *iconCursor, attrs []xml.Attr) error {
	if c.grad == nil {
		return nil
	}
	stop := GradStop{Opacity: 1.0}
	decls := declarations(attrs)
	stop.Color = decls["stop-color"]
	if v, ok := decls["stop-opacity"]; ok {
		if op, err := strconv.ParseFloat(v, 64); err == nil {
			stop.Opacity = clamp01(op)
		}
	}
	if v, ok := decls["offset"]; ok {
		stop.Offset, _ = readFraction(v)
	}
	c.grad.Stops = append(c.grad.Stops, stop)
	return nil
}

func solidColorF(c *iconCursor, attrs []xml.Attr) error {
	decls := declarations(attrs)
	id, color := idOf(attrs), decls["solid-color"]
	if id == "" || color == "" {
		return nil
	}
	def := PaintDef{Color: color, Opacity: 1}
	if v, ok := decls["solid-opacity"]; ok {
		if op, err := strconv.ParseFloat(v, 64); err == nil {
			def.Opacity = clamp01(op)
		}
	}
	c.solids[id] = def
	return nil
}

// stops returns the stops of the gradient, following
// the href chain when the gradient has none.
func stops(grads map[string]*Gradient, g *Gradient) []GradStop {
	seen := map[*Gradient]bool{}
	for len(g.Stops) == 0 && g.Href != "" && !seen[g] {
		seen[g] = true
		next, ok := grads[g.Href]
		if !ok {
			break
		}
		g = next
	}
	return g.Stops
}

// representative returns the first stop with a color and a non zero
// opacity, or else the first stop with a color.
func representative(stops []GradStop) (PaintDef, bool) {
	var (
		fallback    PaintDef
		hasFallback bool
	)
	for _, stop := range stops {
		if stop.Color == "" {
			continue
		}
		if !hasFallback {
			fallback, hasFallback = PaintDef{Color: stop.Color, Opacity: stop.Opacity}, true
		}
		if stop.Opacity > 0 {
			return PaintDef{Color: stop.Color, Opacity: stop.Opacity}, true
		}
	}
	return fallback, hasFallback
}

func buildPaintTable(grads map[string]*Gradient, solids map[string]PaintDef) PaintTable {
	out := make(PaintTable, len(grads)+len(solids))
	for id, g := range grads {
		if def, ok := representative(stops(grads, g)); ok {
			out[id] = def
		}
	}
	for id, def := range solids {
		out[id] = def
	}
	return out
}
