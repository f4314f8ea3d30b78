package graphic

import "math"

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
	ok                     bool
}

// Empty reports whether no point has been added.
func (r Rect) Empty() bool { return !r.ok }

// Width returns the box width.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the box height.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

func (r *Rect) add(p Point) {
	if !r.ok {
		r.MinX, r.MaxX = p.X, p.X
		r.MinY, r.MaxY = p.Y, p.Y
		r.ok = true
		return
	}
	r.MinX = math.Min(r.MinX, p.X)
	r.MaxX = math.Max(r.MaxX, p.X)
	r.MinY = math.Min(r.MinY, p.Y)
	r.MaxY = math.Max(r.MaxY, p.Y)
}

// Bounds returns the box enclosing every shape after rotations are applied.
// Stroke widths are ignored; circles contribute their full extent.
func (g *Graphic) Bounds() Rect {
	var r Rect
	g.Walk(func(s Shape, parents []Rotation) {
		resolve := func(p Point) Point {
			for _, rot := range parents {
				p = rot.Apply(p)
			}
			return p
		}
		switch v := s.(type) {
		case *Line:
			r.add(resolve(v.Rotate.Apply(Point{v.X1, v.Y1})))
			r.add(resolve(v.Rotate.Apply(Point{v.X2, v.Y2})))
		case *Polygon:
			for _, p := range v.Points {
				r.add(resolve(p))
			}
		case *Circle:
			c := resolve(Point{v.CX, v.CY})
			r.add(Point{c.X - v.R, c.Y - v.R})
			r.add(Point{c.X + v.R, c.Y + v.R})
		}
	})
	return r
}

// Overflows reports whether any shape reaches past the canvas. Rotated
// shafts usually do; renderers can then let the overflow show.
func (g *Graphic) Overflows() bool {
	const eps = 1e-9
	b := g.Bounds()
	if b.Empty() {
		return false
	}
	return b.MinX < -eps || b.MinY < -eps || b.MaxX > g.Width+eps || b.MaxY > g.Height+eps
}
