package sink

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/windbarb/pkg/barb"
	"github.com/matzehuels/windbarb/pkg/graphic"
)

func TestRenderJSON(t *testing.T) {
	g := build(t, 85, 270)
	data, err := RenderJSON(g)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Width != 80 || out.Height != 33 {
		t.Errorf("size = %vx%v, want 80x33", out.Width, out.Height)
	}
	if len(out.Shapes) != 1 || out.Shapes[0].Type != graphic.KindGroup {
		t.Fatalf("Shapes = %+v, want one group", out.Shapes)
	}
	grp := out.Shapes[0]
	if grp.Rotate == nil || grp.Rotate.Angle != 180 {
		t.Errorf("group rotation = %+v, want 180", grp.Rotate)
	}
	if len(grp.Children) != 6 {
		t.Errorf("children = %d, want shaft + 5 segments", len(grp.Children))
	}
	if grp.Children[0].Part != graphic.PartShaft {
		t.Errorf("first child = %q, want shaft", grp.Children[0].Part)
	}
	if grp.Children[1].Part != graphic.PartPennant || len(grp.Children[1].Points) != 3 {
		t.Errorf("second child = %+v, want a 3-point pennant", grp.Children[1])
	}
	if out.Decomposition != nil || out.Input != nil {
		t.Error("decomposition and input should be omitted without options")
	}
}

func TestRenderJSONWithDecomposition(t *testing.T) {
	d, _ := barb.Decompose(78)
	data, err := RenderJSON(build(t, 78, 0), WithJSONDecomposition(d), WithJSONSpeed(40, 1.944, 0))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Decomposition == nil {
		t.Fatal("Decomposition should be set")
	}
	if out.Decomposition.Knots != 78 || out.Decomposition.Dropped != 3 || out.Decomposition.Calm {
		t.Errorf("Decomposition = %+v", out.Decomposition)
	}
	want := barb.SegmentCounts{Pennants: 1, Full: 2, Half: 1}
	if out.Decomposition.Segments == nil || *out.Decomposition.Segments != want {
		t.Errorf("Segments = %+v, want %+v", out.Decomposition.Segments, want)
	}
	if out.Input == nil || out.Input.Speed != 40 || out.Input.Factor != 1.944 {
		t.Errorf("Input = %+v", out.Input)
	}
}

func TestRenderJSONCalm(t *testing.T) {
	d, _ := barb.Decompose(2)
	data, err := RenderJSON(build(t, 2, 0), WithJSONDecomposition(d))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if len(out.Shapes) != 1 || out.Shapes[0].Type != graphic.KindCircle {
		t.Fatalf("Shapes = %+v, want one circle", out.Shapes)
	}
	c := out.Shapes[0]
	if c.R == nil || *c.R != 10 {
		t.Errorf("radius = %v, want 10", c.R)
	}
	if !out.Decomposition.Calm || out.Decomposition.Segments != nil {
		t.Errorf("Decomposition = %+v, want calm without segments", out.Decomposition)
	}
}

func TestRenderJSONEmptyGraphic(t *testing.T) {
	data, err := RenderJSON(&graphic.Graphic{Width: 1, Height: 1})
	if err != nil {
		t.Fatal(err)
	}
	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.Shapes == nil || len(out.Shapes) != 0 {
		t.Errorf("Shapes = %v, want empty list", out.Shapes)
	}
}
