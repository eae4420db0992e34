package svgicon

import (
	"math"
	"strconv"
	"strings"
)

// Fixed colors of the normalized palette.
const (
	OutlineColor = "#1e1e1e" // stroke color
	AccentColor  = "#1971c2" // fill of filled icons
	WhiteColor   = "#ffffff"
	Transparent  = "transparent"
)

// Policy selects how paint is turned into colors.
type Policy uint8

const (
	// Normalize discards the source hues: fills become the accent color,
	// white or transparent, and strokes the outline color.
	Normalize Policy = iota
	// Preserve keeps the source colors, resolving paint references
	// and opacities.
	Preserve
	// Snap preserves the colors, then replaces each one by the
	// closest color of the editor palette.
	Snap
)

func (p Policy) String() string {
	switch p {
	case Preserve:
		return "preserve"
	case Snap:
		return "snap"
	default:
		return "normalize"
	}
}

// Channel is either the fill or the stroke of an element.
type Channel uint8

// Channels
const (
	Fill Channel = iota
	Stroke
)

// ResolvedPaint is a final color, with its combined opacity.
type ResolvedPaint struct {
	Color   string // lower case 6 digits hex, or Transparent
	Opacity float64
}

// IsTransparent returns true if nothing is painted.
func (rp ResolvedPaint) IsTransparent() bool { return rp.Color == Transparent || rp.Color == "" }

// String returns the color, with a 2 digits alpha suffix when
// the opacity is below 1.
func (rp ResolvedPaint) String() string {
	if rp.IsTransparent() {
		return Transparent
	}
	return withAlpha(rp.Color, rp.Opacity)
}

func opaque(color string) ResolvedPaint { return ResolvedPaint{Color: color, Opacity: 1} }

// Resolver computes the paint of elements.
type Resolver struct {
	// Filled marks filled icons, for which the normalized fill
	// is the accent color instead of white.
	Filled bool

	FillPolicy, StrokePolicy Policy

	// Table resolves url(#id) references.
	Table PaintTable
}

// Resolve returns the paint of the given channel.
// It never fails: unresolved references and invalid colors
// fall back to transparent (fill) or the outline color (stroke).
func (r Resolver) Resolve(style PaintStyle, ch Channel) ResolvedPaint {
	if ch == Stroke {
		return r.stroke(style)
	}
	return r.fill(style)
}

// isWhite matches white, #fff and #ffffff.
func isWhite(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "white", "#fff", "#ffffff":
		return true
	}
	return false
}

func isNone(v string) bool {
	switch strings.ToLower(v) {
	case "none", "transparent":
		return true
	}
	return false
}

func (r Resolver) fill(style PaintStyle) ResolvedPaint {
	raw := strings.TrimSpace(style.Fill)
	if r.FillPolicy == Normalize {
		switch {
		case raw == "":
			if r.Filled {
				return opaque(AccentColor)
			}
			return opaque(WhiteColor)
		case isNone(raw):
			return opaque(Transparent)
		case !r.Filled, isWhite(raw):
			return opaque(WhiteColor)
		default:
			return opaque(AccentColor)
		}
	}

	if raw == "" || isNone(raw) {
		return opaque(Transparent)
	}
	out, ok := r.literal(raw, style.FillOpacity*style.Opacity)
	if !ok {
		return opaque(Transparent)
	}
	if r.FillPolicy == Snap {
		out.Color = SnapToPalette(out.Color)
	}
	return out
}

func (r Resolver) stroke(style PaintStyle) ResolvedPaint {
	raw := strings.TrimSpace(style.Stroke)
	if r.StrokePolicy == Normalize || raw == "" || isNone(raw) {
		return opaque(OutlineColor)
	}
	out, ok := r.literal(raw, style.StrokeOpacity*style.Opacity)
	if !ok {
		return opaque(OutlineColor)
	}
	if r.StrokePolicy == Snap {
		out.Color = SnapToPalette(out.Color)
	}
	return out
}

// literal resolves a color or a paint reference, combining
// the opacities of the element, the reference and the color itself.
func (r Resolver) literal(raw string, opacity float64) (ResolvedPaint, bool) {
	if strings.HasPrefix(strings.ToLower(raw), "url(") {
		def, ok := r.Table.Lookup(raw)
		if !ok {
			return ResolvedPaint{}, false
		}
		raw, opacity = def.Color, opacity*def.Opacity
	}
	if isNone(raw) {
		return ResolvedPaint{}, false
	}
	hex, alpha, err := parseSVGColor(raw)
	if err != nil {
		Logger().Debug("invalid color", "value", raw, "error", err)
		return ResolvedPaint{}, false
	}
	return ResolvedPaint{Color: hex, Opacity: clamp01(opacity * alpha)}, true
}

// Palette holds the colors of the editor palette, used by the Snap policy.
var Palette = []string{
	"#000000", "#343a40", "#495057", "#c92a2a", "#a61e4d", "#862e9c",
	"#5f3dc4", "#364fc7", "#1864ab", "#0b7285", "#087f5b", "#2b8a3e",
	"#5c940d", "#e67700", "#d9480f", "#f08c00", "#ffffff", "#f8f9fa",
	"#1971c2", "#ffd43b", "#ff6b6b", "#51cf66", "#74c0fc", "#d0bfff",
	"#ffa8a8",
}

func rgbOf(hex string) (r, g, b float64) {
	v, _ := strconv.ParseUint(strings.TrimPrefix(hex, "#")[:6], 16, 32)
	return float64(v >> 16 & 0xff), float64(v >> 8 & 0xff), float64(v & 0xff)
}

// SnapToPalette returns the palette color closest to hex
// (a 6 digits color), using the euclidean RGB distance.
// Other values are returned unchanged.
func SnapToPalette(hex string) string {
	if len(hex) != 7 || hex[0] != '#' {
		return hex
	}
	r, g, b := rgbOf(hex)
	best, bestDist := hex, math.Inf(1)
	for _, candidate := range Palette {
		cr, cg, cb := rgbOf(candidate)
		d := math.Hypot(math.Hypot(r-cr, g-cg), b-cb)
		if d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}
