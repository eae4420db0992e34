package svgicon

import (
	"encoding/xml"
	"errors"
	"strings"

	"github.com/benoitkugler/svg2excalidraw/svgpath"
)

func init() {
	// avoids cyclical static declaration
	// called on package initialization
	drawFuncs["use"] = useF
}

type svgFunc func(c *iconCursor, attrs []xml.Attr) error

var drawFuncs = map[string]svgFunc{
	"svg":            svgF,
	"g":              gF,
	"line":           lineF,
	"stop":           stopF,
	"rect":           rectF,
	"circle":         circleF,
	"ellipse":        circleF, //circleF handles ellipse also
	"polyline":       polylineF,
	"polygon":        polygonF,
	"path":           pathF,
	"desc":           descF,
	"defs":           defsF,
	"title":          titleF,
	"linearGradient": linearGradientF,
	"radialGradient": radialGradientF,
	"solidColor":     solidColorF,
	"solidcolor":     solidColorF,
}

// isPaintElement returns true for the elements defining paint servers.
func isPaintElement(name string) bool {
	switch name {
	case "linearGradient", "radialGradient", "stop", "solidColor", "solidcolor":
		return true
	}
	return false
}

func svgF(c *iconCursor, attrs []xml.Attr) error {
	c.icon.ViewBox = svgpath.Bounds{}
	var width, height float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox":
			points := splitOnCommaOrSpace(attr.Value)
			if len(points) != 4 {
				return errParamMismatch
			}
			var vb [4]float64
			for i, p := range points {
				if vb[i], err = parseBasicFloat(p); err != nil {
					return err
				}
			}
			c.icon.ViewBox = svgpath.Bounds{X: vb[0], Y: vb[1], W: vb[2], H: vb[3]}
		case "width":
			c.icon.Width = attr.Value
			width, err = c.readDimension("width", attr.Value)
		case "height":
			c.icon.Height = attr.Value
			height, err = c.readDimension("height", attr.Value)
		}
		if err != nil {
			return err
		}
	}
	if c.icon.ViewBox.W == 0 {
		c.icon.ViewBox.W = width
	}
	if c.icon.ViewBox.H == 0 {
		c.icon.ViewBox.H = height
	}
	return nil
}

// readDimension returns 0 for dimensions which are not plain numbers
// (such as 100% or 1em), so that the viewBox alone fixes the size.
func (c *iconCursor) readDimension(name, value string) (float64, error) {
	v, err := parseOptionalFloat(value)
	if err != nil {
		return 0, c.handleError("Unsupported svg dimension "+name, "value", value)
	}
	return v, nil
}

func gF(*iconCursor, []xml.Attr) error { return nil } // g does nothing but push the style

// rectF ignores rounded corners.
func rectF(c *iconCursor, attrs []xml.Attr) error {
	var x, y, w, h float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x":
			x, err = parseOptionalFloat(attr.Value)
		case "y":
			y, err = parseOptionalFloat(attr.Value)
		case "width":
			w, err = parseOptionalFloat(attr.Value)
		case "height":
			h, err = parseOptionalFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	box := c.offset(svgpath.Bounds{X: x, Y: y, W: w, H: h})
	c.addElement(&Element{Kind: RectElement, Tag: "rect", Box: box}, attrs)
	return nil
}

func circleF(c *iconCursor, attrs []xml.Attr) error {
	var cx, cy, rx, ry float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "cx":
			cx, err = parseOptionalFloat(attr.Value)
		case "cy":
			cy, err = parseOptionalFloat(attr.Value)
		case "r":
			rx, err = parseOptionalFloat(attr.Value)
			ry = rx
		case "rx":
			rx, err = parseOptionalFloat(attr.Value)
		case "ry":
			ry, err = parseOptionalFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	box := c.offset(svgpath.Bounds{X: cx - rx, Y: cy - ry, W: 2 * rx, H: 2 * ry})
	c.addElement(&Element{Kind: EllipseElement, Tag: "ellipse", Box: box}, attrs)
	return nil
}

func lineF(c *iconCursor, attrs []xml.Attr) error {
	var x1, x2, y1, y2 float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x1":
			x1, err = parseOptionalFloat(attr.Value)
		case "x2":
			x2, err = parseOptionalFloat(attr.Value)
		case "y1":
			y1, err = parseOptionalFloat(attr.Value)
		case "y2":
			y2, err = parseOptionalFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	pl := svgpath.Segment(x1+c.curX, y1+c.curY, x2+c.curX, y2+c.curY)
	c.addElement(&Element{Kind: PolylineElement, Tag: "line", Points: pl}, attrs)
	return nil
}

func readPoints(c *iconCursor, attrs []xml.Attr) (svgpath.Polyline, error) {
	var points string
	for _, attr := range attrs {
		if attr.Name.Local == "points" {
			points = attr.Value
		}
	}
	pl, err := svgpath.ParsePoints(points)
	if err != nil {
		return nil, err
	}
	return pl.Translate(-c.curX, -c.curY), nil
}

func polylineF(c *iconCursor, attrs []xml.Attr) error {
	pl, err := readPoints(c, attrs)
	if err != nil {
		return err
	}
	c.addElement(&Element{Kind: PolylineElement, Tag: "polyline", Points: pl}, attrs)
	return nil
}

func polygonF(c *iconCursor, attrs []xml.Attr) error {
	pl, err := readPoints(c, attrs)
	if err != nil {
		return err
	}
	c.addElement(&Element{Kind: PolylineElement, Tag: "polygon", Points: svgpath.Polygon(pl)}, attrs)
	return nil
}

// pathF keeps the path data as it is; it is interpreted
// during the conversion.
func pathF(c *iconCursor, attrs []xml.Attr) error {
	var d string
	for _, attr := range attrs {
		if attr.Name.Local == "d" {
			d = strings.TrimSpace(attr.Value)
		}
	}
	if d == "" { // not drawn, but not an error
		return nil
	}
	c.addElement(&Element{
		Kind:     PathElement,
		Tag:      "path",
		PathData: d,
		Offset:   svgpath.Point{X: c.curX, Y: c.curY},
	}, attrs)
	return nil
}

func descF(c *iconCursor, attrs []xml.Attr) error {
	c.inDescText = true
	c.icon.Descriptions = append(c.icon.Descriptions, "")
	return nil
}

func titleF(c *iconCursor, attrs []xml.Attr) error {
	c.inTitleText = true
	c.icon.Titles = append(c.icon.Titles, "")
	return nil
}

func defsF(c *iconCursor, attrs []xml.Attr) error {
	c.inDefs = true
	return nil
}

func useF(c *iconCursor, attrs []xml.Attr) error {
	var (
		href string
		x, y float64
		err  error
	)
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "href":
			href = attr.Value
		case "x":
			x, err = parseOptionalFloat(attr.Value)
		case "y":
			y, err = parseOptionalFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	c.curX, c.curY = x, y
	defer func() {
		c.curX, c.curY = 0, 0
	}()
	if href == "" {
		return errors.New("only use tags with href is supported")
	}
	if !strings.HasPrefix(href, "#") {
		return errors.New("only the ID CSS selector is supported")
	}
	defs, ok := c.defs[href[1:]]
	if !ok {
		return errors.New("href ID in use statement was not found in saved defs")
	}
	depth := len(c.styleStack)
	defer func() { c.styleStack = c.styleStack[:depth] }()
	for _, def := range defs {
		if def.Tag == "endg" {
			// pop style
			c.styleStack = c.styleStack[:len(c.styleStack)-1]
			continue
		}
		if err = c.pushStyle(def.Attrs); err != nil {
			return err
		}
		df, ok := drawFuncs[def.Tag]
		if !ok || def.Tag == "use" {
			if err := c.handleError("Cannot process svg element "+def.Tag, "element", def.Tag); err != nil {
				return err
			}
		} else if err := df(c, def.Attrs); err != nil {
			return err
		}
		if def.Tag != "g" {
			// pop style
			c.styleStack = c.styleStack[:len(c.styleStack)-1]
		}
	}
	return nil
}
