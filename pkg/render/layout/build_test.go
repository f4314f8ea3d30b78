package layout

import (
	"math"
	"reflect"
	"testing"

	"github.com/matzehuels/windbarb/pkg/barb"
	"github.com/matzehuels/windbarb/pkg/config"
	errs "github.com/matzehuels/windbarb/pkg/errors"
	"github.com/matzehuels/windbarb/pkg/graphic"
)

func mustDecompose(t *testing.T, knots int) barb.Decomposition {
	t.Helper()
	d, err := barb.Decompose(knots)
	if err != nil {
		t.Fatalf("Decompose(%d) error: %v", knots, err)
	}
	return d
}

func TestBuildCalm(t *testing.T) {
	for k := 0; k < 5; k++ {
		g, err := Build(mustDecompose(t, k), 123, config.Default())
		if err != nil {
			t.Fatalf("Build(%d kt) error: %v", k, err)
		}
		if g.Leaves() != 1 {
			t.Errorf("Build(%d kt) leaves = %d, want only the calm circle", k, g.Leaves())
		}
		if g.Count(graphic.PartCalm) != 1 {
			t.Errorf("Build(%d kt) calm circles = %d, want 1", k, g.Count(graphic.PartCalm))
		}
		for _, p := range []graphic.Part{graphic.PartShaft, graphic.PartPennant, graphic.PartFullBar, graphic.PartHalfBar} {
			if n := g.Count(p); n != 0 {
				t.Errorf("Build(%d kt) %s count = %d, want 0", k, p, n)
			}
		}
	}
}

func TestBuildCalmCircleGeometry(t *testing.T) {
	opts := config.Default()
	opts.Circle.Radius = 7
	opts.Circle.Fill = "none"
	g, err := Build(barb.Calm(0), 0, opts)
	if err != nil {
		t.Fatal(err)
	}
	c, ok := g.Root.Children[0].(*graphic.Circle)
	if !ok {
		t.Fatalf("root child = %T, want *graphic.Circle", g.Root.Children[0])
	}
	if c.CX != 40 || c.CY != 16.5 || c.R != 7 {
		t.Errorf("circle = (%v, %v, r=%v), want (40, 16.5, r=7)", c.CX, c.CY, c.R)
	}
	if c.Fill != "none" || c.Class != config.DefaultCircleClass {
		t.Errorf("circle style = %q/%q", c.Fill, c.Class)
	}
}

func TestBuildCounts(t *testing.T) {
	tests := []struct {
		knots               int
		pennant, full, half int
	}{
		{5, 0, 0, 1},
		{10, 0, 1, 0},
		{24, 0, 2, 0},
		{78, 1, 2, 1},
		{85, 1, 3, 1},
		{155, 3, 0, 1},
	}

	for _, tt := range tests {
		g, err := Build(mustDecompose(t, tt.knots), 90, config.Default())
		if err != nil {
			t.Fatalf("Build(%d) error: %v", tt.knots, err)
		}
		if g.Count(graphic.PartShaft) != 1 {
			t.Errorf("Build(%d) shafts = %d, want 1", tt.knots, g.Count(graphic.PartShaft))
		}
		if got := g.Count(graphic.PartPennant); got != tt.pennant {
			t.Errorf("Build(%d) pennants = %d, want %d", tt.knots, got, tt.pennant)
		}
		if got := g.Count(graphic.PartFullBar); got != tt.full {
			t.Errorf("Build(%d) full bars = %d, want %d", tt.knots, got, tt.full)
		}
		if got := g.Count(graphic.PartHalfBar); got != tt.half {
			t.Errorf("Build(%d) half bars = %d, want %d", tt.knots, got, tt.half)
		}
		if g.Count(graphic.PartCalm) != 0 {
			t.Errorf("Build(%d) should not draw the calm circle", tt.knots)
		}
	}
}

// baseX returns the x position on the shaft where a segment touches it,
// before any rotation: the rightmost base point for pennants, the base for bars.
func baseX(s graphic.Shape) float64 {
	switch v := s.(type) {
	case *graphic.Polygon:
		return v.Points[2].X
	case *graphic.Line:
		return v.X1
	}
	return math.NaN()
}

func TestBuildOrderingAndSpacing(t *testing.T) {
	opts := config.Default()
	g, err := Build(mustDecompose(t, 115), 90, opts)
	if err != nil {
		t.Fatal(err)
	}
	grp := g.Root.Children[0].(*graphic.Group)

	var parts []graphic.Part
	var xs []float64
	for _, s := range grp.Children[1:] {
		parts = append(parts, graphic.PartOf(s))
		xs = append(xs, baseX(s))
	}

	want := []graphic.Part{
		graphic.PartPennant, graphic.PartPennant,
		graphic.PartFullBar,
		graphic.PartHalfBar,
	}
	if !reflect.DeepEqual(parts, want) {
		t.Fatalf("segment order = %v, want %v", parts, want)
	}

	for i := 1; i < len(xs); i++ {
		if xs[i] >= xs[i-1] {
			t.Errorf("segment %d at x=%v is not left of segment %d at x=%v", i, xs[i], i-1, xs[i-1])
		}
	}

	geo := barb.NewGeometry(opts.BarHeight(), opts.Bar.Angle)
	if xs[0] != opts.Canvas.Width {
		t.Errorf("first pennant abuts x=%v, want shaft tip %v", xs[0], opts.Canvas.Width)
	}
	if d := xs[0] - xs[1]; math.Abs(d-(geo.TriangleWidth+opts.Triangle.Padding)) > 1e-9 {
		t.Errorf("pennant spacing = %v, want %v", d, geo.TriangleWidth+opts.Triangle.Padding)
	}
	if d := xs[2] - xs[3]; math.Abs(d-(opts.Bar.Width+opts.Bar.Padding)) > 1e-9 {
		t.Errorf("bar spacing = %v, want %v", d, opts.Bar.Width+opts.Bar.Padding)
	}
}

func TestBuildBarLengthsAndTilt(t *testing.T) {
	opts := config.Default()
	g, err := Build(mustDecompose(t, 15), 90, opts)
	if err != nil {
		t.Fatal(err)
	}
	grp := g.Root.Children[0].(*graphic.Group)
	full := grp.Children[1].(*graphic.Line)
	half := grp.Children[2].(*graphic.Line)

	if l := full.Y1 - full.Y2; l != opts.BarHeight() {
		t.Errorf("full bar length = %v, want %v", l, opts.BarHeight())
	}
	if l := half.Y1 - half.Y2; l != opts.BarHeight()/2 {
		t.Errorf("half bar length = %v, want %v", l, opts.BarHeight()/2)
	}
	for _, b := range []*graphic.Line{full, half} {
		if b.Rotate.Angle != opts.Bar.Angle || b.Rotate.CX != b.X1 || b.Rotate.CY != b.Y1 {
			t.Errorf("bar rotation = %+v, want %v° about its base (%v, %v)", b.Rotate, opts.Bar.Angle, b.X1, b.Y1)
		}
	}
	if full.Class != config.DefaultFullBarClass || half.Class != config.DefaultHalfBarClass {
		t.Errorf("bar classes = %q/%q", full.Class, half.Class)
	}
}

func TestBuildShaft(t *testing.T) {
	opts := config.Default()
	g, err := Build(mustDecompose(t, 20), 90, opts)
	if err != nil {
		t.Fatal(err)
	}
	shaft := g.Root.Children[0].(*graphic.Group).Children[0].(*graphic.Line)
	if shaft.Part != graphic.PartShaft {
		t.Fatalf("first child part = %q, want shaft", shaft.Part)
	}
	if shaft.X1 != 0 || shaft.X2 != opts.Canvas.Width {
		t.Errorf("shaft spans [%v, %v], want [0, %v]", shaft.X1, shaft.X2, opts.Canvas.Width)
	}
	if shaft.Y1 != opts.ShaftY() || shaft.Y2 != opts.ShaftY() {
		t.Errorf("shaft y = %v/%v, want %v", shaft.Y1, shaft.Y2, opts.ShaftY())
	}
}

func TestBuildRotation(t *testing.T) {
	tests := []struct {
		angle float64
		want  float64
	}{
		{90, 0},
		{0, -90},
		{180, 90},
		{270, 180},
		{45, -45},
	}

	opts := config.Default()
	for _, tt := range tests {
		g, err := Build(mustDecompose(t, 30), tt.angle, opts)
		if err != nil {
			t.Fatal(err)
		}
		if got := g.NetRotation(graphic.PartShaft); got != tt.want {
			t.Errorf("angle %v: net rotation = %v, want %v", tt.angle, got, tt.want)
		}
		rot := g.Root.Children[0].(*graphic.Group).Rotate
		if rot.CX != opts.Canvas.Width/2 || rot.CY != opts.ShaftY() {
			t.Errorf("angle %v: rotation centre = (%v, %v), want shaft midpoint", tt.angle, rot.CX, rot.CY)
		}
	}
}

func TestBuildNorthPointsUp(t *testing.T) {
	opts := config.Default()
	g, err := Build(mustDecompose(t, 10), 0, opts)
	if err != nil {
		t.Fatal(err)
	}
	grp := g.Root.Children[0].(*graphic.Group)
	shaft := grp.Children[0].(*graphic.Line)
	tip := grp.Rotate.Apply(graphic.Point{X: shaft.X2, Y: shaft.Y2})
	tail := grp.Rotate.Apply(graphic.Point{X: shaft.X1, Y: shaft.Y1})
	if !(tip.Y < tail.Y) || math.Abs(tip.X-tail.X) > 1e-9 {
		t.Errorf("at 0° the tip %v should sit straight above the tail %v", tip, tail)
	}
}

func TestBuildIdempotent(t *testing.T) {
	opts := config.Default()
	a, err := Build(mustDecompose(t, 85), 217, opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Build(mustDecompose(t, 85), 217, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("Build() with identical arguments produced different trees")
	}
	if a.Root == b.Root {
		t.Error("Build() should return a fresh tree per call")
	}
}

func TestBuildInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Options)
	}{
		{"zero width", func(o *config.Options) { o.Canvas.Width = 0 }},
		{"negative height", func(o *config.Options) { o.Canvas.Height = -10 }},
		{"zero radius", func(o *config.Options) { o.Circle.Radius = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := config.Default()
			tt.mutate(&opts)
			for _, k := range []int{0, 85} {
				g, err := Build(mustDecompose(t, k), 0, opts)
				if !errs.Is(err, errs.ErrCodeInvalidConfiguration) {
					t.Errorf("Build(%d) error = %v, want INVALID_CONFIGURATION", k, err)
				}
				if g != nil {
					t.Errorf("Build(%d) returned partial output", k)
				}
			}
		})
	}
}

func TestBuildRootAttributes(t *testing.T) {
	opts := config.Default()
	opts.Root.ID = "station-7"
	g, err := Build(mustDecompose(t, 40), 0, opts)
	if err != nil {
		t.Fatal(err)
	}
	if g.ID != "station-7" || g.Class != config.DefaultRootClass {
		t.Errorf("root = %q/%q", g.ID, g.Class)
	}
	if g.Width != 80 || g.Height != 33 {
		t.Errorf("canvas = %vx%v, want 80x33", g.Width, g.Height)
	}
}
