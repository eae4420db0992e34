package svgicon

import (
	"encoding/xml"
	"errors"
	"strconv"
	"strings"

	"github.com/benoitkugler/svg2excalidraw/svgpath"
)

type (
	// iconCursor is used while parsing SVG files
	iconCursor struct {
		icon       *SvgIcon
		styleStack []PaintStyle
		errorMode  ErrorMode

		grad   *Gradient // gradient being read, if any
		grads  map[string]*Gradient
		solids map[string]PaintDef

		inTitleText, inDescText, inDefs bool
		defsDepth                       int // nesting level inside <defs>
		currentDef                      []definition
		defs                            map[string][]definition

		curX, curY float64 // offset of a <use> element
	}

	// definition is used to store what's given in a def tag
	definition struct {
		ID, Tag string
		Attrs   []xml.Attr
	}
)

// handleError reports an unsupported construct according to the error mode.
func (c *iconCursor) handleError(msg string, args ...any) error {
	switch c.errorMode {
	case StrictErrorMode:
		return errors.New(msg)
	case WarnErrorMode:
		Logger().Warn(msg, args...)
	}
	return nil
}

// parseBasicFloat reads a number, with an optional "px" unit.
func parseBasicFloat(v string) (float64, error) {
	v = strings.TrimSpace(v)
	v = strings.TrimSuffix(v, "px")
	return strconv.ParseFloat(strings.TrimSpace(v), 64)
}

// parseOptionalFloat returns 0 for an empty attribute.
func parseOptionalFloat(v string) (float64, error) {
	if strings.TrimSpace(v) == "" {
		return 0, nil
	}
	return parseBasicFloat(v)
}

func readFraction(v string) (f float64, err error) {
	v = strings.TrimSpace(v)
	d := 1.0
	if strings.HasSuffix(v, "%") {
		d = 100
		v = strings.TrimSuffix(v, "%")
	}
	f, err = strconv.ParseFloat(v, 64)
	f /= d
	return
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
}

// declarations returns the presentation attributes and the style
// declarations of an element, lower cased. A style declaration
// overrides the attribute with the same name.
func declarations(attrs []xml.Attr) map[string]string {
	out := make(map[string]string, len(attrs))
	var style string
	for _, attr := range attrs {
		k := strings.ToLower(attr.Name.Local)
		if k == "style" {
			style = attr.Value
			continue
		}
		out[k] = strings.TrimSpace(attr.Value)
	}
	for _, pair := range strings.Split(style, ";") {
		k, v, ok := strings.Cut(pair, ":")
		if !ok {
			continue
		}
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(v)
	}
	return out
}

func (c *iconCursor) readStyleAttr(curStyle *PaintStyle, k, v string) error {
	switch k {
	case "fill":
		curStyle.Fill = v
	case "stroke":
		curStyle.Stroke = v
	case "fill-opacity", "stroke-opacity", "opacity":
		op, err := strconv.ParseFloat(v, 64)
		if err != nil {
			Logger().Debug("ignoring invalid opacity", "property", k, "value", v)
			return nil
		}
		op = clamp01(op)
		switch k {
		case "fill-opacity":
			curStyle.FillOpacity = op
		case "stroke-opacity":
			curStyle.StrokeOpacity = op
		default:
			curStyle.Opacity *= op
		}
	case "transform", "clip-path", "mask":
		// geometry is never transformed nor clipped
		return c.handleError("Unsupported svg attribute "+k, "value", v)
	}
	return nil
}

// pushStyle parses the paint properties of the element, and push them on the style stack.
// Note that this parses both the contents of a style attribute plus
// direct fill and opacity attributes.
func (c *iconCursor) pushStyle(attrs []xml.Attr) error {
	// Make a copy of the top style
	curStyle := c.styleStack[len(c.styleStack)-1]
	for k, v := range declarations(attrs) {
		if err := c.readStyleAttr(&curStyle, k, v); err != nil {
			return err
		}
	}
	c.styleStack = append(c.styleStack, curStyle) // Push style onto stack
	return nil
}

func (c *iconCursor) currentStyle() PaintStyle { return c.styleStack[len(c.styleStack)-1] }

// addElement appends a drawable element with the current style.
func (c *iconCursor) addElement(el *Element, attrs []xml.Attr) {
	el.ID = idOf(attrs)
	el.Style = c.currentStyle()
	c.icon.Elements = append(c.icon.Elements, el)
}

func (c *iconCursor) readStartElement(se xml.StartElement) (err error) {
	name := se.Name.Local
	if c.inDefs {
		if name == "defs" {
			c.defsDepth++
			return nil
		}
		// paint servers are read directly, other elements are only drawn through <use>
		if !isPaintElement(name) {
			c.recordDefinition(se)
			return nil
		}
	}
	df, ok := drawFuncs[name]
	if !ok {
		return c.handleError("Cannot process svg element "+name, "element", name)
	}
	return df(c, se.Attr)
}

// recordDefinition stores an element found in <defs>, so that
// it may be drawn later by a <use> element.
func (c *iconCursor) recordDefinition(se xml.StartElement) {
	ID := idOf(se.Attr)
	if ID != "" && len(c.currentDef) > 0 {
		c.saveDefinition()
	}
	c.currentDef = append(c.currentDef, definition{
		ID:    ID,
		Tag:   se.Name.Local,
		Attrs: se.Attr,
	})
}

func (c *iconCursor) saveDefinition() {
	if len(c.currentDef) == 0 {
		return
	}
	if c.defs == nil {
		c.defs = make(map[string][]definition)
	}
	if id := c.currentDef[0].ID; id != "" {
		c.defs[id] = c.currentDef
	}
	c.currentDef = nil
}

// readEndElement closes the elements recorded in <defs>.
func (c *iconCursor) readEndElement(name string) {
	if !c.inDefs {
		return
	}
	switch name {
	case "defs":
		if c.defsDepth > 0 {
			c.defsDepth--
			return
		}
		c.saveDefinition()
		c.inDefs = false
	case "g":
		if len(c.currentDef) > 0 {
			c.currentDef = append(c.currentDef, definition{Tag: "endg"})
		}
	}
}

// offset applies the offset of the <use> element being replayed.
func (c *iconCursor) offset(b svgpath.Bounds) svgpath.Bounds {
	b.X += c.curX
	b.Y += c.curY
	return b
}
