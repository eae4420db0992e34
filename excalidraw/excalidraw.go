// Package excalidraw serializes scenes to the Excalidraw
// document format (.excalidraw files).
package excalidraw

import (
	"encoding/json"
	"io"
	"time"

	"github.com/benoitkugler/svg2excalidraw/idgen"
	"github.com/benoitkugler/svg2excalidraw/scene"
	"github.com/benoitkugler/svg2excalidraw/svgshape"
)

// Source is written in the documents produced by this package.
const Source = "fluentui-icons-to-excalidraw"

// Document is the top level object of an .excalidraw file.
type Document struct {
	Type     string         `json:"type"`
	Version  int            `json:"version"`
	Source   string         `json:"source"`
	Elements []Element      `json:"elements"`
	AppState AppState       `json:"appState"`
	Files    map[string]any `json:"files"`
}

type AppState struct {
	GridSize            *int   `json:"gridSize"`
	ViewBackgroundColor string `json:"viewBackgroundColor"`
}

// Roundness is set on lines and rectangles.
type Roundness struct {
	Type int `json:"type"`
}

// Element is one drawing element. Optional groups of
// fields are embedded as pointers, and omitted when nil.
type Element struct {
	Type            string     `json:"type"`
	Version         int        `json:"version"`
	VersionNonce    int        `json:"versionNonce"`
	IsDeleted       bool       `json:"isDeleted"`
	ID              string     `json:"id"`
	FillStyle       string     `json:"fillStyle"`
	StrokeWidth     float64    `json:"strokeWidth"`
	StrokeStyle     string     `json:"strokeStyle"`
	Roughness       int        `json:"roughness"`
	Opacity         int        `json:"opacity"`
	Angle           float64    `json:"angle"`
	X               float64    `json:"x"`
	Y               float64    `json:"y"`
	StrokeColor     string     `json:"strokeColor"`
	BackgroundColor string     `json:"backgroundColor"`
	Width           float64    `json:"width"`
	Height          float64    `json:"height"`
	Seed            int        `json:"seed"`
	GroupIDs        []string   `json:"groupIds"`
	Roundness       *Roundness `json:"roundness,omitempty"`
	BoundElements   []any      `json:"boundElements"`
	Updated         int64      `json:"updated"`
	Link            *string    `json:"link"`
	Locked          bool       `json:"locked"`

	*Linear
	*Bindings
}

// Linear holds the fields of line elements.
type Linear struct {
	Points             [][2]float64 `json:"points"`
	LastCommittedPoint *[2]float64  `json:"lastCommittedPoint"`
	StartArrowhead     *string      `json:"startArrowhead"`
	EndArrowhead       *string      `json:"endArrowhead"`
}

// Bindings are always null for converted icons.
type Bindings struct {
	StartBinding *json.RawMessage `json:"startBinding"`
	EndBinding   *json.RawMessage `json:"endBinding"`
}

func newElement(p scene.Primitive, ids idgen.Source, updated int64) Element {
	el := Element{
		Type:            p.Kind.String(),
		Version:         1,
		VersionNonce:    ids.NewSeed(),
		ID:              ids.NewID(),
		FillStyle:       "solid",
		StrokeWidth:     p.StrokeWidth,
		StrokeStyle:     "solid",
		Roughness:       1,
		Opacity:         100,
		X:               p.X,
		Y:               p.Y,
		StrokeColor:     p.StrokeColor,
		BackgroundColor: p.FillColor,
		Width:           p.Width,
		Height:          p.Height,
		Seed:            ids.NewSeed(),
		GroupIDs:        []string{},
		BoundElements:   []any{},
		Updated:         updated,
	}
	if p.GroupID != "" {
		el.GroupIDs = append(el.GroupIDs, p.GroupID)
	}
	if el.StrokeWidth == 0 {
		el.StrokeWidth = scene.DefaultStrokeWidth
	}
	if el.BackgroundColor == "" {
		el.BackgroundColor = scene.Transparent
	}

	switch p.Kind {
	case svgshape.Line:
		el.Roundness = &Roundness{Type: 3}
		points := make([][2]float64, len(p.Points))
		for i, pt := range p.Points {
			points[i] = [2]float64{pt.X, pt.Y}
		}
		el.Linear = &Linear{Points: points}
		el.Bindings = &Bindings{}
	case svgshape.Rectangle:
		el.Roundness = &Roundness{Type: 3}
	case svgshape.Ellipse:
		el.Bindings = &Bindings{}
	}
	return el
}

// FromScene builds the document of a scene. Element identifiers and
// seeds are drawn from ids; now is used as the update time.
func FromScene(sc *scene.Scene, ids idgen.Source, now time.Time) *Document {
	if ids == nil {
		ids = idgen.Random{}
	}
	doc := &Document{
		Type:     "excalidraw",
		Version:  2,
		Source:   Source,
		Elements: make([]Element, 0, len(sc.Primitives)),
		AppState: AppState{ViewBackgroundColor: sc.Background},
		Files:    map[string]any{},
	}
	if doc.AppState.ViewBackgroundColor == "" {
		doc.AppState.ViewBackgroundColor = scene.Background
	}
	if sc.GridSize > 0 {
		grid := sc.GridSize
		doc.AppState.GridSize = &grid
	}
	updated := now.UnixMilli()
	for _, p := range sc.Primitives {
		doc.Elements = append(doc.Elements, newElement(p, ids, updated))
	}
	return doc
}

// Encode writes the document as indented JSON, followed by a newline.
func (doc *Document) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

// Decode reads a document written by Encode.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
