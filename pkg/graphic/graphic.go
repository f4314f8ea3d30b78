package graphic

import "math"

// Kind identifies the shape type.
type Kind string

const (
	KindLine    Kind = "line"
	KindPolygon Kind = "polygon"
	KindCircle  Kind = "circle"
	KindGroup   Kind = "group"
)

// Part names what a shape depicts in the glyph.
type Part string

const (
	PartShaft   Part = "shaft"
	PartPennant Part = "pennant"
	PartFullBar Part = "full-bar"
	PartHalfBar Part = "half-bar"
	PartCalm    Part = "calm"
)

// Shape is any node of the tree.
type Shape interface {
	Kind() Kind
}

// Point is a 2D coordinate in canvas units (y grows downward).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rotation is a clockwise rotation by Angle degrees about (CX, CY).
// The zero value is the identity.
type Rotation struct {
	Angle float64 `json:"angle"`
	CX    float64 `json:"cx"`
	CY    float64 `json:"cy"`
}

// IsZero reports whether the rotation has no effect.
func (r Rotation) IsZero() bool { return r.Angle == 0 }

// Apply rotates p. With y pointing down, a positive angle turns clockwise
// on screen.
func (r Rotation) Apply(p Point) Point {
	if r.IsZero() {
		return p
	}
	rad := r.Angle * math.Pi / 180
	sin, cos := math.Sincos(rad)
	dx, dy := p.X-r.CX, p.Y-r.CY
	return Point{
		X: r.CX + dx*cos - dy*sin,
		Y: r.CY + dx*sin + dy*cos,
	}
}

// Line is a stroked segment, optionally rotated about a point.
type Line struct {
	Part        Part
	X1, Y1      float64
	X2, Y2      float64
	Stroke      string
	StrokeWidth float64
	Class       string
	Rotate      Rotation
}

// Polygon is a closed, filled path.
type Polygon struct {
	Part   Part
	Points []Point
	Stroke string
	Fill   string
	Class  string
}

// Circle is a stroked and filled circle.
type Circle struct {
	Part        Part
	CX, CY, R   float64
	Stroke      string
	Fill        string
	StrokeWidth float64
	Class       string
}

// Group nests shapes under a shared rotation.
type Group struct {
	Class    string
	Rotate   Rotation
	Children []Shape
}

func (*Line) Kind() Kind    { return KindLine }
func (*Polygon) Kind() Kind { return KindPolygon }
func (*Circle) Kind() Kind  { return KindCircle }
func (*Group) Kind() Kind   { return KindGroup }

// Add appends shapes to the group.
func (g *Group) Add(s ...Shape) { g.Children = append(g.Children, s...) }

// PartOf returns the part a leaf shape depicts, or "" for groups.
func PartOf(s Shape) Part {
	switch v := s.(type) {
	case *Line:
		return v.Part
	case *Polygon:
		return v.Part
	case *Circle:
		return v.Part
	}
	return ""
}

// Graphic is a rendered glyph on a fixed-size canvas.
type Graphic struct {
	ID     string
	Class  string
	Width  float64
	Height float64
	Root   *Group
}

// Walk visits every shape depth-first in document order. parents lists the
// rotations of the enclosing groups, innermost first, so applying them in
// order resolves absolute coordinates.
func (g *Graphic) Walk(fn func(s Shape, parents []Rotation)) {
	if g == nil || g.Root == nil {
		return
	}
	walk(g.Root, nil, fn)
}

func walk(s Shape, parents []Rotation, fn func(Shape, []Rotation)) {
	fn(s, parents)
	grp, ok := s.(*Group)
	if !ok {
		return
	}
	inner := parents
	if !grp.Rotate.IsZero() {
		inner = append(append([]Rotation(nil), grp.Rotate), parents...)
	}
	for _, c := range grp.Children {
		walk(c, inner, fn)
	}
}

// Count returns how many leaf shapes depict part.
func (g *Graphic) Count(part Part) int {
	n := 0
	g.Walk(func(s Shape, _ []Rotation) {
		if PartOf(s) == part {
			n++
		}
	})
	return n
}

// Leaves returns the number of non-group shapes.
func (g *Graphic) Leaves() int {
	n := 0
	g.Walk(func(s Shape, _ []Rotation) {
		if s.Kind() != KindGroup {
			n++
		}
	})
	return n
}

// NetRotation returns the rotation angle applied to shapes of the given
// part by their enclosing groups, or 0 if no such shape exists.
func (g *Graphic) NetRotation(part Part) float64 {
	var angle float64
	found := false
	g.Walk(func(s Shape, parents []Rotation) {
		if found || PartOf(s) != part {
			return
		}
		found = true
		for _, r := range parents {
			angle += r.Angle
		}
	})
	return angle
}
