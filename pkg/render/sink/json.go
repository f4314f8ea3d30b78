package sink

import (
	"encoding/json"

	"github.com/matzehuels/windbarb/pkg/barb"
	"github.com/matzehuels/windbarb/pkg/graphic"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	decomposition *barb.Decomposition
	speed         *jsonSpeed
}

// WithJSONDecomposition records the segment counts the graphic encodes.
func WithJSONDecomposition(d barb.Decomposition) JSONOption {
	return func(r *jsonRenderer) { r.decomposition = &d }
}

// WithJSONSpeed records the caller's input speed, conversion factor and
// direction.
func WithJSONSpeed(speed, factor, angle float64) JSONOption {
	return func(r *jsonRenderer) {
		r.speed = &jsonSpeed{Speed: speed, Factor: factor, Angle: angle}
	}
}

type jsonOutput struct {
	ID            string             `json:"id,omitempty"`
	Class         string             `json:"class,omitempty"`
	Width         float64            `json:"width"`
	Height        float64            `json:"height"`
	Input         *jsonSpeed         `json:"input,omitempty"`
	Decomposition *jsonDecomposition `json:"decomposition,omitempty"`
	Shapes        []jsonShape        `json:"shapes"`
}

type jsonSpeed struct {
	Speed  float64 `json:"speed"`
	Factor float64 `json:"factor"`
	Angle  float64 `json:"angle"`
}

type jsonDecomposition struct {
	Knots    int                 `json:"knots"`
	Calm     bool                `json:"calm"`
	Segments *barb.SegmentCounts `json:"segments,omitempty"`
	Dropped  int                 `json:"dropped"`
}

type jsonShape struct {
	Type        graphic.Kind      `json:"type"`
	Part        graphic.Part      `json:"part,omitempty"`
	Class       string            `json:"class,omitempty"`
	X1          *float64          `json:"x1,omitempty"`
	Y1          *float64          `json:"y1,omitempty"`
	X2          *float64          `json:"x2,omitempty"`
	Y2          *float64          `json:"y2,omitempty"`
	CX          *float64          `json:"cx,omitempty"`
	CY          *float64          `json:"cy,omitempty"`
	R           *float64          `json:"r,omitempty"`
	Points      []graphic.Point   `json:"points,omitempty"`
	Stroke      string            `json:"stroke,omitempty"`
	Fill        string            `json:"fill,omitempty"`
	StrokeWidth float64           `json:"stroke_width,omitempty"`
	Rotate      *graphic.Rotation `json:"rotate,omitempty"`
	Children    []jsonShape       `json:"children,omitempty"`
}

// RenderJSON exports the shape tree as a pretty-printed JSON document.
func RenderJSON(g *graphic.Graphic, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		ID:     g.ID,
		Class:  g.Class,
		Width:  g.Width,
		Height: g.Height,
		Input:  r.speed,
		Shapes: []jsonShape{},
	}
	if r.decomposition != nil {
		out.Decomposition = buildJSONDecomposition(*r.decomposition)
	}
	if g.Root != nil {
		for _, s := range g.Root.Children {
			out.Shapes = append(out.Shapes, buildJSONShape(s))
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

func buildJSONDecomposition(d barb.Decomposition) *jsonDecomposition {
	jd := &jsonDecomposition{Knots: d.Knots(), Calm: d.IsCalm(), Dropped: d.Dropped()}
	if !d.IsCalm() {
		c := d.Counts()
		jd.Segments = &c
	}
	return jd
}

func buildJSONShape(s graphic.Shape) jsonShape {
	js := jsonShape{Type: s.Kind(), Part: graphic.PartOf(s)}
	switch v := s.(type) {
	case *graphic.Group:
		js.Class = v.Class
		js.Rotate = rotation(v.Rotate)
		for _, c := range v.Children {
			js.Children = append(js.Children, buildJSONShape(c))
		}
	case *graphic.Line:
		js.Class = v.Class
		js.X1, js.Y1, js.X2, js.Y2 = ptr(v.X1), ptr(v.Y1), ptr(v.X2), ptr(v.Y2)
		js.Stroke = v.Stroke
		js.StrokeWidth = v.StrokeWidth
		js.Rotate = rotation(v.Rotate)
	case *graphic.Polygon:
		js.Class = v.Class
		js.Points = v.Points
		js.Stroke = v.Stroke
		js.Fill = v.Fill
	case *graphic.Circle:
		js.Class = v.Class
		js.CX, js.CY, js.R = ptr(v.CX), ptr(v.CY), ptr(v.R)
		js.Stroke = v.Stroke
		js.Fill = v.Fill
		js.StrokeWidth = v.StrokeWidth
	}
	return js
}

func rotation(r graphic.Rotation) *graphic.Rotation {
	if r.IsZero() {
		return nil
	}
	return &r
}

func ptr(v float64) *float64 { return &v }
