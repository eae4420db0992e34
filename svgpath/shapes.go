package svgpath

// This file implements the transformation from
// basic SVG shapes to their polyline equivalent

// ParsePoints reads a `points` attribute (polyline and polygon elements),
// which must hold an even number of coordinates.
func ParsePoints(points string) (Polyline, error) {
	tokens, err := tokenize(points)
	if err != nil {
		return nil, err
	}
	if len(tokens)%2 != 0 {
		return nil, &MalformedPathError{Offset: len(points), Reason: "odd number of coordinates"}
	}
	var out Polyline
	for i := 0; i < len(tokens); i += 2 {
		if tokens[i].isCommand() || tokens[i+1].isCommand() {
			t := tokens[i]
			if !t.isCommand() {
				t = tokens[i+1]
			}
			return nil, &MalformedPathError{Offset: t.offset, Token: t.text, Reason: "number expected"}
		}
		out.appendPoint(Point{tokens[i].value, tokens[i+1].value})
	}
	return out, nil
}

// Polygon closes the polyline by repeating its first point.
func Polygon(pl Polyline) Polyline {
	if len(pl) < 2 || pl.IsClosed() {
		return pl
	}
	out := append(Polyline{}, pl...)
	return append(out, pl[0])
}

// Segment returns the two points polyline from (x1, y1) to (x2, y2).
func Segment(x1, y1, x2, y2 float64) Polyline {
	var out Polyline
	out.appendPoint(Point{x1, y1})
	out.appendPoint(Point{x2, y2})
	return out
}
