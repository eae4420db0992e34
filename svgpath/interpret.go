package svgpath

// DefaultCubicSteps is the number of segments used to flatten a cubic curve.
const DefaultCubicSteps = 6

// Interpreter turns path data into polylines.
// See DefaultInterpreter for the usual settings.
type Interpreter struct {
	// CubicSteps is the number of segments a cubic Bézier is sampled into.
	// Zero means DefaultCubicSteps.
	CubicSteps int

	// Epsilon is the base simplification tolerance: the effective one
	// is max(Epsilon, RelativeScale * max(width, height)).
	// A negative value disables simplification.
	Epsilon float64
}

// DefaultInterpreter uses DefaultCubicSteps and DefaultEpsilon.
var DefaultInterpreter = Interpreter{CubicSteps: DefaultCubicSteps, Epsilon: DefaultEpsilon}

// Parse interprets and simplifies the path data with the default settings.
func Parse(data string) ([]Polyline, error) { return DefaultInterpreter.Polylines(data) }

func (ip Interpreter) cubicSteps() int {
	if ip.CubicSteps <= 0 {
		return DefaultCubicSteps
	}
	return ip.CubicSteps
}

// Polylines interprets the path data, then simplifies each polyline.
// Polylines with less than two points are dropped, before and after simplification.
func (ip Interpreter) Polylines(data string) ([]Polyline, error) {
	raw, err := ip.Interpret(data)
	if err != nil {
		return nil, err
	}
	out := raw[:0]
	for _, pl := range raw {
		simplified := ip.Simplify(pl)
		if len(simplified) >= 2 {
			out = append(out, simplified)
		}
	}
	return out, nil
}

// Simplify applies the tolerance of the interpreter to pl.
func (ip Interpreter) Simplify(pl Polyline) Polyline {
	if ip.Epsilon < 0 {
		return pl
	}
	return Simplify(pl, ip.Epsilon)
}

// Interpret runs the path data without simplification.
// Polylines with less than two points are dropped.
func (ip Interpreter) Interpret(data string) ([]Polyline, error) {
	cmds, err := ParseCommands(data)
	if err != nil {
		return nil, err
	}
	cursor := pathCursor{steps: ip.cubicSteps()}
	for _, cmd := range cmds {
		cursor.run(cmd)
	}
	cursor.seal()

	out := cursor.polylines[:0]
	for _, pl := range cursor.polylines {
		if len(pl) >= 2 {
			out = append(out, pl)
		}
	}
	return out, nil
}

// pathCursor is the interpreter state.
type pathCursor struct {
	steps int

	current     Point  // current point
	start       Point  // start of the current subpath
	lastControl *Point // second control point of the previous cubic, if any

	polyline  Polyline // in progress
	polylines []Polyline
}

// seal moves the polyline in progress to the output.
func (c *pathCursor) seal() {
	if len(c.polyline) > 0 {
		c.polylines = append(c.polylines, c.polyline)
	}
	c.polyline = nil
}

// resolve returns the absolute position of (x, y).
func (c *pathCursor) resolve(relative bool, x, y float64) Point {
	if relative {
		return Point{c.current.X + x, c.current.Y + y}
	}
	return Point{x, y}
}

// lineTo appends p, starting from the current point
// if a drawing command follows a close.
func (c *pathCursor) lineTo(p Point) {
	if len(c.polyline) == 0 {
		c.polyline.appendPoint(c.current)
	}
	c.polyline.appendPoint(p)
	c.current = p
}

func (c *pathCursor) cubicTo(c1, c2, end Point) {
	if len(c.polyline) == 0 {
		c.polyline.appendPoint(c.current)
	}
	for _, p := range (cubicBezier{c.current, c1, c2, end}).sample(c.steps) {
		c.polyline.appendPoint(p)
	}
	c.current = end
	c.lastControl = &c2
}

func (c *pathCursor) run(cmd PathCommand) {
	args := cmd.Args
	switch cmd.Kind {
	case MoveTo:
		c.seal()
		c.current = c.resolve(cmd.Relative, args[0], args[1])
		c.start = c.current
		c.polyline = Polyline{c.current}
		c.lastControl = nil
	case LineTo:
		c.lineTo(c.resolve(cmd.Relative, args[0], args[1]))
		c.lastControl = nil
	case HLineTo:
		x := args[0]
		if cmd.Relative {
			x += c.current.X
		}
		c.lineTo(Point{x, c.current.Y})
		c.lastControl = nil
	case VLineTo:
		y := args[0]
		if cmd.Relative {
			y += c.current.Y
		}
		c.lineTo(Point{c.current.X, y})
		c.lastControl = nil
	case CubicTo:
		c1 := c.resolve(cmd.Relative, args[0], args[1])
		c2 := c.resolve(cmd.Relative, args[2], args[3])
		end := c.resolve(cmd.Relative, args[4], args[5])
		c.cubicTo(c1, c2, end)
	case SmoothCubicTo:
		c1 := c.current
		if c.lastControl != nil {
			c1 = c.lastControl.reflect(c.current)
		}
		c2 := c.resolve(cmd.Relative, args[0], args[1])
		end := c.resolve(cmd.Relative, args[2], args[3])
		c.cubicTo(c1, c2, end)
	case Close:
		if len(c.polyline) > 0 {
			c.polyline.appendPoint(c.start)
		}
		c.seal()
		c.current = c.start
		c.lastControl = nil
	}
}
