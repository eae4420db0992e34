// Package convert turns a parsed SVG icon into a scene
// of editor primitives.
package convert

import (
	"fmt"
	"io"
	"strings"

	"github.com/benoitkugler/svg2excalidraw/idgen"
	"github.com/benoitkugler/svg2excalidraw/scene"
	"github.com/benoitkugler/svg2excalidraw/svgicon"
	"github.com/benoitkugler/svg2excalidraw/svgpath"
	"github.com/benoitkugler/svg2excalidraw/svgshape"
)

// Options configures one conversion.
type Options struct {
	// Filled selects the accent color as the normalized fill.
	Filled bool

	FillPolicy, StrokePolicy svgicon.Policy

	// CubicSteps and Epsilon tune the path interpreter
	// (see svgpath.Interpreter). Zero CubicSteps means
	// svgpath.DefaultCubicSteps; Epsilon is used as given, so that
	// 0 keeps only the relative tolerance and a negative value
	// disables simplification. DefaultOptions sets svgpath.DefaultEpsilon.
	CubicSteps int
	Epsilon    float64

	Order       scene.Order
	Containment scene.Containment
	// Strict enables the area and complexity gates of the overlay heuristic.
	Strict bool
	// Ring replaces frame shaped paths by a thick outline.
	Ring bool

	Classifier svgshape.Classifier

	// ErrorMode is used by ConvertReader.
	ErrorMode svgicon.ErrorMode

	// IDs provides the group identifier. Nil means random identifiers.
	IDs idgen.Source
}

// DefaultOptions returns the options used for regular icons.
func DefaultOptions() Options {
	return Options{
		CubicSteps: svgpath.DefaultCubicSteps,
		Epsilon:    svgpath.DefaultEpsilon,
		Ring:       true,
		Classifier: svgshape.DefaultClassifier(),
		ErrorMode:  svgicon.WarnErrorMode,
	}
}

// PreserveColors sets both channels to the Preserve policy.
func (opts *Options) PreserveColors() {
	opts.FillPolicy, opts.StrokePolicy = svgicon.Preserve, svgicon.Preserve
}

// ElementError is returned when a source element can't be converted.
type ElementError struct {
	Index int // in SvgIcon.Elements
	Tag   string
	ID    string
	Err   error
}

func (e *ElementError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("element %d (<%s id=%q>): %s", e.Index, e.Tag, e.ID, e.Err)
	}
	return fmt.Sprintf("element %d (<%s>): %s", e.Index, e.Tag, e.Err)
}

func (e *ElementError) Unwrap() error { return e.Err }

// converter holds the state of one conversion
type converter struct {
	opts        Options
	resolver    svgicon.Resolver
	builder     scene.Builder
	interpreter svgpath.Interpreter
	prims       []scene.Primitive
}

// Convert builds the scene of the icon. It fails on the first
// element whose geometry is malformed.
func Convert(icon *svgicon.SvgIcon, opts Options) (*scene.Scene, error) {
	cv := converter{
		opts: opts,
		resolver: svgicon.Resolver{
			Filled:       opts.Filled,
			FillPolicy:   opts.FillPolicy,
			StrokePolicy: opts.StrokePolicy,
			Table:        icon.Paints,
		},
		builder:     scene.NewBuilder(scene.ScaleFactor(icon.ViewBox.W, icon.ViewBox.H)),
		interpreter: svgpath.Interpreter{CubicSteps: opts.CubicSteps, Epsilon: opts.Epsilon},
	}
	if cv.opts.Classifier == (svgshape.Classifier{}) {
		cv.opts.Classifier = svgshape.DefaultClassifier()
	}
	for i, el := range icon.Elements {
		if err := cv.element(i, el); err != nil {
			return nil, &ElementError{Index: i, Tag: el.Tag, ID: el.ID, Err: err}
		}
	}

	composer := scene.Composer{
		Order:       opts.Order,
		Containment: opts.Containment,
		Strict:      opts.Strict,
		// recoloring only makes sense for normalized fills
		Overlay: opts.FillPolicy == svgicon.Normalize,
		IDs:     opts.IDs,
	}
	return composer.Compose(cv.prims), nil
}

// ConvertReader parses an SVG document and converts it.
func ConvertReader(r io.Reader, opts Options) (*scene.Scene, error) {
	icon, err := svgicon.ReadIconStream(r, opts.ErrorMode)
	if err != nil {
		return nil, err
	}
	return Convert(icon, opts)
}

func (cv *converter) add(p scene.Primitive, ok bool) {
	if ok {
		cv.prims = append(cv.prims, p)
	}
}

func (cv *converter) element(index int, el *svgicon.Element) error {
	fill := cv.resolver.Resolve(el.Style, svgicon.Fill)
	stroke := cv.resolver.Resolve(el.Style, svgicon.Stroke).String()

	switch el.Kind {
	case svgicon.RectElement:
		cv.add(cv.builder.Rectangle(el.Box, fill.String(), stroke, index))
	case svgicon.EllipseElement:
		cv.add(cv.builder.Ellipse(el.Box, fill.String(), stroke, index))
	case svgicon.PolylineElement:
		cv.polyline(cv.interpreter.Simplify(el.Points), fill.String(), stroke, index)
	case svgicon.PathElement:
		polylines, err := cv.interpreter.Polylines(el.PathData)
		if err != nil {
			return err
		}
		for i, pl := range polylines {
			polylines[i] = pl.Translate(-el.Offset.X, -el.Offset.Y)
		}
		if cv.opts.Ring && !fill.IsTransparent() {
			if outer, ok := scene.DetectRing(polylines); ok {
				cv.add(cv.builder.RingOutline(outer, ringColor(fill.String(), stroke), index))
				return nil
			}
		}
		for _, pl := range polylines {
			cv.polyline(pl, fill.String(), stroke, index)
		}
	}
	return nil
}

func (cv *converter) polyline(pl svgpath.Polyline, fill, stroke string, index int) {
	if len(pl) < 2 {
		return
	}
	shape := cv.opts.Classifier.Classify(pl)
	cv.add(cv.builder.Shape(shape, fill, stroke, index))
}

// ringColor is the fill color of the ring, unless it would
// vanish on the scene background.
func ringColor(fill, stroke string) string {
	if strings.EqualFold(fill, scene.Background) {
		return stroke
	}
	return fill
}
