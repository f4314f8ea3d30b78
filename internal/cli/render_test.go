package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/windbarb/pkg/errors"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		format string
		n      int
		want   string
	}{
		{"default", "", "svg", 1, "windbarb.svg"},
		{"default several", "", "png", 2, "windbarb.png"},
		{"single keeps name", "out/gust.image", "svg", 1, "out/gust.image"},
		{"several replace ext", "out/gust.svg", "json", 2, "out/gust.json"},
		{"several add ext", "gust", "pdf", 3, "gust.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(tt.output, tt.format, tt.n); got != tt.want {
				t.Errorf("outputPath(%q, %q, %d) = %q, want %q", tt.output, tt.format, tt.n, got, tt.want)
			}
		})
	}
}

func TestParseNumberArg(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"85", 85, false},
		{" 12.5 ", 12.5, false},
		{"-3", -3, false},
		{"fast", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parseNumberArg("speed", tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseNumberArg(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil {
			if !errs.Is(err, errs.ErrCodeInvalidInput) {
				t.Errorf("parseNumberArg(%q) code = %s, want INVALID_INPUT", tt.in, errs.GetCode(err))
			}
			continue
		}
		if got != tt.want {
			t.Errorf("parseNumberArg(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPipelineOptionsFlags(t *testing.T) {
	dir := t.TempDir()
	style := filepath.Join(dir, "style.toml")
	content := "conversion_factor = 2.0\n\n[canvas]\nwidth = 120.0\nheight = 40.0\n"
	if err := os.WriteFile(style, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c := New(os.Stderr, log.InfoLevel)
	cmd := c.renderCommand()
	cmd.SetContext(context.Background())
	if err := cmd.ParseFlags([]string{"-c", style, "--unit", "ms", "--height", "50", "-f", "svg,JSON"}); err != nil {
		t.Fatal(err)
	}

	var opts renderOpts
	opts.configPath = style
	opts.unit = "ms"
	opts.height = 50
	opts.formats = "svg,JSON"
	opts.scale = 2

	popts, err := opts.pipelineOptions(cmd, 40, 90)
	if err != nil {
		t.Fatalf("pipelineOptions() error: %v", err)
	}

	o := popts.Overrides
	if o.Unit == nil || *o.Unit != "ms" {
		t.Errorf("Unit = %v, want ms", o.Unit)
	}
	if o.ConversionFactor != nil {
		t.Errorf("ConversionFactor = %v, want cleared by --unit", *o.ConversionFactor)
	}
	if o.Canvas.Width == nil || *o.Canvas.Width != 120 {
		t.Errorf("Canvas.Width = %v, want 120 from file", o.Canvas.Width)
	}
	if o.Canvas.Height == nil || *o.Canvas.Height != 50 {
		t.Errorf("Canvas.Height = %v, want 50 from flag", o.Canvas.Height)
	}
	if len(popts.Formats) != 2 || popts.Formats[1] != "json" {
		t.Errorf("Formats = %v, want [svg json]", popts.Formats)
	}
	if popts.Speed != 40 || popts.Angle != 90 {
		t.Errorf("speed/angle = %v/%v, want 40/90", popts.Speed, popts.Angle)
	}
}

func TestPipelineOptionsOverflow(t *testing.T) {
	c := New(os.Stderr, log.InfoLevel)
	cmd := c.renderCommand()
	cmd.SetContext(context.Background())

	for _, overflow := range []bool{false, true} {
		opts := renderOpts{formats: "svg", scale: 2, overflow: overflow}
		popts, err := opts.pipelineOptions(cmd, 25, 0)
		if err != nil {
			t.Fatalf("pipelineOptions() error: %v", err)
		}
		if popts.OverflowVisible != overflow {
			t.Errorf("OverflowVisible = %v, want %v", popts.OverflowVisible, overflow)
		}
	}
}

func TestWriteArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "barb.svg")
	if err := writeArtifact(path, []byte("<svg/>")); err != nil {
		t.Fatalf("writeArtifact() error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "<svg/>" {
		t.Errorf("file = %q", got)
	}
}
