package layout

import (
	"github.com/matzehuels/windbarb/pkg/barb"
	"github.com/matzehuels/windbarb/pkg/config"
	errs "github.com/matzehuels/windbarb/pkg/errors"
	"github.com/matzehuels/windbarb/pkg/graphic"
)

// Build lays out d for the given direction in degrees (0 = north, clockwise)
// and returns a new graphic. opts is validated first; on error nothing is
// produced.
func Build(d barb.Decomposition, angle float64, opts config.Options) (*graphic.Graphic, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := errs.ValidateAngle(angle); err != nil {
		return nil, err
	}

	g := &graphic.Graphic{
		ID:     opts.Root.ID,
		Class:  opts.Root.ClassName,
		Width:  opts.Canvas.Width,
		Height: opts.Canvas.Height,
		Root:   &graphic.Group{},
	}

	if d.IsCalm() {
		g.Root.Add(calmCircle(opts))
		return g, nil
	}

	g.Root.Add(windy(d.Counts(), angle, opts))
	return g, nil
}

// Rotation returns the group rotation for a wind direction. At 90° the
// shaft lies along the baseline with its tip to the right.
func Rotation(angle float64) float64 {
	return angle - 90
}

func calmCircle(opts config.Options) *graphic.Circle {
	c := opts.Circle
	return &graphic.Circle{
		Part:        graphic.PartCalm,
		CX:          opts.Canvas.Width / 2,
		CY:          opts.Canvas.Height / 2,
		R:           c.Radius,
		Stroke:      c.Stroke,
		Fill:        c.Fill,
		StrokeWidth: c.StrokeWidth,
		Class:       c.ClassName,
	}
}

func windy(c barb.SegmentCounts, angle float64, opts config.Options) *graphic.Group {
	geo := barb.NewGeometry(opts.BarHeight(), opts.Bar.Angle)
	y := opts.ShaftY()
	w := opts.Canvas.Width

	grp := &graphic.Group{
		Rotate: graphic.Rotation{Angle: Rotation(angle), CX: w / 2, CY: y},
	}

	grp.Add(&graphic.Line{
		Part:        graphic.PartShaft,
		X1:          0,
		Y1:          y,
		X2:          w,
		Y2:          y,
		Stroke:      opts.Bar.Stroke,
		StrokeWidth: opts.Bar.Width,
	})

	// x walks leftward from the tip; each segment consumes its own extent.
	x := w
	for i := 0; i < c.Pennants; i++ {
		grp.Add(pennant(x, y, geo, opts.Triangle))
		x -= geo.TriangleWidth + opts.Triangle.Padding
	}

	step := opts.Bar.Width + opts.Bar.Padding
	for i := 0; i < c.Full; i++ {
		grp.Add(bar(graphic.PartFullBar, x-opts.Bar.Width/2, y, geo.BarHeight, geo.Angle, opts.Bar, opts.Bar.FullClassName))
		x -= step
	}
	for i := 0; i < c.Half; i++ {
		grp.Add(bar(graphic.PartHalfBar, x-opts.Bar.Width/2, y, geo.HalfBarHeight, geo.Angle, opts.Bar, opts.Bar.ShortClassName))
		x -= step
	}
	return grp
}

// pennant draws a triangle whose base spans [right-width, right] on the shaft
// and whose apex sits above the right end.
func pennant(right, y float64, geo barb.Geometry, t config.Triangle) *graphic.Polygon {
	left := right - geo.TriangleWidth
	return &graphic.Polygon{
		Part: graphic.PartPennant,
		Points: []graphic.Point{
			{X: left, Y: y},
			{X: right, Y: y - geo.TriangleHeight},
			{X: right, Y: y},
		},
		Stroke: t.Stroke,
		Fill:   t.Fill,
		Class:  t.ClassName,
	}
}

// bar draws a vertical line of the given length standing on the shaft at x,
// tilted by angle about its base.
func bar(part graphic.Part, x, y, length, angle float64, b config.Bar, class string) *graphic.Line {
	return &graphic.Line{
		Part:        part,
		X1:          x,
		Y1:          y,
		X2:          x,
		Y2:          y - length,
		Stroke:      b.Stroke,
		StrokeWidth: b.Width,
		Class:       class,
		Rotate:      graphic.Rotation{Angle: angle, CX: x, CY: y},
	}
}
