// Provides parsing of SVG icons into a flat list of
// drawable elements, with their inherited paint properties,
// and resolution of the paint into final colors.
// Only the subset of SVG used by icon sets is supported:
// paths, basic shapes, groups, gradients and solid colors.
package svgicon

import (
	"encoding/xml"
	"errors"
	"io"
	"os"

	"github.com/benoitkugler/svg2excalidraw/svgpath"
	"golang.org/x/net/html/charset"
)

// ErrorMode is the for setting how the parser reacts to unparsed elements
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unparsed SVG elements
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode outputs a warning (see SetLogger) when an unparsed SVG element is found
	WarnErrorMode
	// StrictErrorMode causes an error when an unparsed SVG element is found
	StrictErrorMode
)

// ElementKind identifies the geometry carried by an Element.
type ElementKind uint8

const (
	// PathElement has its geometry in Element.PathData.
	PathElement ElementKind = iota
	// RectElement has its geometry in Element.Box.
	RectElement
	// EllipseElement (circle or ellipse) has its bounding box in Element.Box.
	EllipseElement
	// PolylineElement (line, polyline or polygon) has its geometry in Element.Points.
	PolylineElement
)

// PaintStyle holds the paint properties of an element,
// after inheritance from its enclosing groups.
// Colors are kept as written in the file; they are
// interpreted by a Resolver.
type PaintStyle struct {
	Fill, Stroke  string
	FillOpacity   float64
	StrokeOpacity float64
	Opacity       float64 // group and element opacity, multiplied
}

// DefaultStyle has no paint and full opacity.
var DefaultStyle = PaintStyle{FillOpacity: 1, StrokeOpacity: 1, Opacity: 1}

// Element is a drawable SVG element.
type Element struct {
	Kind ElementKind
	Tag  string // as found in the file
	ID   string // optional

	Style PaintStyle

	PathData string           // path
	Offset   svgpath.Point    // translation of PathData, set by <use>
	Box      svgpath.Bounds   // rect, circle, ellipse
	Points   svgpath.Polyline // line, polyline, polygon
}

// SvgIcon holds data from parsed SVGs.
type SvgIcon struct {
	ViewBox      svgpath.Bounds
	Titles       []string // Title elements collect here
	Descriptions []string // Description elements collect here

	// Drawable elements, in document order.
	Elements []*Element

	// Paint references (gradients and solid colors), by id.
	Paints PaintTable

	Width, Height string // top level width and height attributes
}

// ReadIconStream reads the Icon from the given io.Reader
// This only supports a sub-set of SVG, but
// is enough to convert many icons. errMode determines if the icon ignores, errors out, or logs a warning
// if it does not handle an element found in the icon file.
func ReadIconStream(stream io.Reader, errMode ErrorMode) (*SvgIcon, error) {
	icon := &SvgIcon{}
	cursor := &iconCursor{
		styleStack: []PaintStyle{DefaultStyle},
		icon:       icon,
		errorMode:  errMode,
		grads:      make(map[string]*Gradient),
		solids:     make(map[string]PaintDef),
	}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errors.New("invalid svg xml icon")
				}
				break
			}
			return icon, err
		}
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			// Reads all recognized style attributes from the start element
			// and places it on top of the styleStack
			err = cursor.pushStyle(se.Attr)
			if err != nil {
				return icon, err
			}
			err = cursor.readStartElement(se)
			if err != nil {
				return icon, err
			}
		case xml.EndElement:
			// pop style
			cursor.styleStack = cursor.styleStack[:len(cursor.styleStack)-1]
			cursor.readEndElement(se.Name.Local)
			switch se.Name.Local {
			case "title":
				cursor.inTitleText = false
			case "desc":
				cursor.inDescText = false
			case "radialGradient", "linearGradient":
				cursor.grad = nil
			}
		case xml.CharData:
			if cursor.inTitleText {
				icon.Titles[len(icon.Titles)-1] += string(se)
			}
			if cursor.inDescText {
				icon.Descriptions[len(icon.Descriptions)-1] += string(se)
			}
		}
	}
	icon.Paints = buildPaintTable(cursor.grads, cursor.solids)
	return icon, nil
}

// ReadIcon reads the Icon from the named file
// This only supports a sub-set of SVG, but
// is enough to convert many icons. errMode determines if the icon ignores, errors out, or logs a warning
// if it does not handle an element found in the icon file.
func ReadIcon(iconFile string, errMode ErrorMode) (*SvgIcon, error) {
	fin, errf := os.Open(iconFile)
	if errf != nil {
		return nil, errf
	}
	defer fin.Close()
	return ReadIconStream(fin, errMode)
}
