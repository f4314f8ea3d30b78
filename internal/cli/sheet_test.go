package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/windbarb/pkg/errors"
	"github.com/matzehuels/windbarb/pkg/graphic"
)

const testSheet = `
columns = 2

[style.bar]
stroke = "#333"

[[container]]
id = "KSEA"
label = "Seattle"

[[container]]
id = "KPDX"

[[observation]]
container = "KSEA"
speed = 85
angle = 270

[[observation]]
container = "KPDX"
speed = 10
angle = 180
unit = "ms"

[[observation]]
container = "KBOS"
speed = 30
angle = 90
`

func TestDecodeSheet(t *testing.T) {
	s, err := decodeSheet(strings.NewReader(testSheet))
	if err != nil {
		t.Fatalf("decodeSheet() error: %v", err)
	}
	if s.Columns != 2 {
		t.Errorf("Columns = %d, want 2", s.Columns)
	}
	if s.CellWidth != defaultCellWidth || s.CellHeight != defaultCellHeight {
		t.Errorf("cell = %vx%v, want defaults", s.CellWidth, s.CellHeight)
	}
	if len(s.Containers) != 2 || len(s.Observations) != 3 {
		t.Fatalf("containers/observations = %d/%d, want 2/3", len(s.Containers), len(s.Observations))
	}
	if s.Style.Bar.Stroke == nil || *s.Style.Bar.Stroke != "#333" {
		t.Errorf("style bar stroke = %v", s.Style.Bar.Stroke)
	}
	if u := s.Observations[1].Unit; u == nil || *u != "ms" {
		t.Errorf("observation unit = %v, want ms", u)
	}
}

func TestDecodeSheetErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"syntax", "columns = ["},
		{"unknown key", "colums = 2"},
		{"unknown nested key", "[[observation]]\nspeeed = 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeSheet(strings.NewReader(tt.input))
			if !errs.Is(err, errs.ErrCodeInvalidInput) {
				t.Errorf("decodeSheet() error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestBuildSheet(t *testing.T) {
	s, err := decodeSheet(strings.NewReader(testSheet))
	if err != nil {
		t.Fatal(err)
	}
	var logs bytes.Buffer
	doc, res, err := buildSheet(s, newLogger(&logs, log.DebugLevel))
	if err != nil {
		t.Fatalf("buildSheet() error: %v", err)
	}

	if res.Attached != 2 {
		t.Errorf("Attached = %d, want 2", res.Attached)
	}
	if len(res.Skipped) != 1 || res.Skipped[0] != "KBOS" {
		t.Errorf("Skipped = %v, want [KBOS]", res.Skipped)
	}
	if !strings.Contains(logs.String(), "KBOS") {
		t.Error("missing container should be logged at debug")
	}

	g, ok := doc.Attached("KPDX")
	if !ok {
		t.Fatal("KPDX has no glyph")
	}
	// 10 m/s is 19 kt: one full bar and one half bar
	if g.Leaves() != 3 {
		t.Errorf("KPDX leaves = %d, want shaft + 2 bars", g.Leaves())
	}

	svg := string(doc.RenderSVG())
	if !strings.Contains(svg, ">Seattle</text>") {
		t.Error("label not applied")
	}
	if !strings.Contains(svg, ">KPDX</text>") {
		t.Error("unlabelled container should show its id")
	}
	if !strings.Contains(svg, `stroke="#333"`) {
		t.Error("sheet style not applied")
	}
}

func TestBuildSheetInvalidObservation(t *testing.T) {
	s, err := decodeSheet(strings.NewReader(`
[[container]]
id = "A"

[[observation]]
container = "A"
speed = -4
angle = 0
`))
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = buildSheet(s, newLogger(io.Discard, log.InfoLevel))
	if !errs.Is(err, errs.ErrCodeInvalidSpeed) {
		t.Errorf("buildSheet() error = %v, want INVALID_SPEED", err)
	}
}

func TestBuildSheetObservationUnit(t *testing.T) {
	tests := []struct {
		name         string
		observation  string
		wantPennants int
		wantFull     int
	}{
		{"sheet factor applies", "speed = 40", 1, 2},
		{"own unit beats sheet factor", "speed = 40\nunit = \"knots\"", 0, 4},
		{"own factor beats own unit", "speed = 40\nunit = \"ms\"\nfactor = 1.0", 0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "[style]\nconversion_factor = 1.943844\n\n[[container]]\nid = \"A\"\n\n[[observation]]\ncontainer = \"A\"\nangle = 0\n" + tt.observation + "\n"
			s, err := decodeSheet(strings.NewReader(input))
			if err != nil {
				t.Fatal(err)
			}
			doc, _, err := buildSheet(s, newLogger(io.Discard, log.InfoLevel))
			if err != nil {
				t.Fatalf("buildSheet() error: %v", err)
			}
			g, ok := doc.Attached("A")
			if !ok {
				t.Fatal("A has no glyph")
			}
			if got := g.Count(graphic.PartPennant); got != tt.wantPennants {
				t.Errorf("pennants = %d, want %d", got, tt.wantPennants)
			}
			if got := g.Count(graphic.PartFullBar); got != tt.wantFull {
				t.Errorf("full bars = %d, want %d", got, tt.wantFull)
			}
		})
	}
}
