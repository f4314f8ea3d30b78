package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/windbarb/pkg/config"
	errs "github.com/matzehuels/windbarb/pkg/errors"
	"github.com/matzehuels/windbarb/pkg/render"
)

// memCache is an in-memory cache that counts traffic.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	gets int
	sets int
}

func newMemCache() *memCache { return &memCache{data: make(map[string][]byte)} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	d, ok := c.data[key]
	return d, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.data[key] = data
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) Close() error { return nil }

func quietLogger() *log.Logger { return log.NewWithOptions(io.Discard, log.Options{}) }

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true},
		{"", true},
	}
	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errs.Is(err, errs.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s, want INVALID_FORMAT", tt.format, errs.GetCode(err))
		}
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in      string
		want    []string
		wantErr bool
	}{
		{"svg", []string{"svg"}, false},
		{"svg, JSON ,svg", []string{"svg", "json"}, false},
		{"", nil, false},
		{"svg,gif", nil, true},
	}
	for _, tt := range tests {
		got, err := ParseFormats(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormats(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestContentType(t *testing.T) {
	for _, f := range FormatNames() {
		if ContentType(f) == "application/octet-stream" {
			t.Errorf("ContentType(%q) has no specific type", f)
		}
	}
}

func TestOptionsSetDefaults(t *testing.T) {
	var o Options
	o.SetDefaults()
	if !reflect.DeepEqual(o.Formats, []string{FormatSVG}) || o.Scale != DefaultScale {
		t.Errorf("SetDefaults() = %+v", o)
	}
}

func TestExecute(t *testing.T) {
	r := NewRunner(newMemCache(), nil, quietLogger())
	res, err := r.Execute(context.Background(), Options{
		Speed:   85,
		Angle:   270,
		Formats: []string{FormatSVG, FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	c := res.Decomposition.Counts()
	if c.Pennants != 1 || c.Full != 3 || c.Half != 1 {
		t.Errorf("Counts() = %v, want 1×50 3×10 1×5", c)
	}
	if res.Stats.Segments != 5 {
		t.Errorf("Stats.Segments = %d, want 5", res.Stats.Segments)
	}
	if !bytes.Contains(res.Artifacts[FormatSVG], []byte("<svg")) {
		t.Error("SVG artifact missing markup")
	}
	var doc map[string]any
	if err := json.Unmarshal(res.Artifacts[FormatJSON], &doc); err != nil {
		t.Errorf("JSON artifact invalid: %v", err)
	}
	if res.CacheInfo.RenderHit || len(res.CacheInfo.Misses) != 2 {
		t.Errorf("CacheInfo = %+v, want two misses", res.CacheInfo)
	}
	if res.Stats.Bytes[FormatSVG] != len(res.Artifacts[FormatSVG]) {
		t.Error("Stats.Bytes does not match the artifact")
	}
}

func TestExecuteCaches(t *testing.T) {
	ctx := context.Background()
	mc := newMemCache()
	r := NewRunner(mc, nil, quietLogger())
	opts := Options{Speed: 40, Angle: 90, Formats: []string{FormatSVG}}

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheInfo.RenderHit {
		t.Errorf("second run CacheInfo = %+v, want hit", second.CacheInfo)
	}
	if !bytes.Equal(first.Artifacts[FormatSVG], second.Artifacts[FormatSVG]) {
		t.Error("cached artifact differs from the rendered one")
	}
	if mc.sets != 1 {
		t.Errorf("cache sets = %d, want 1", mc.sets)
	}

	// A different style must not reuse the entry.
	opts.Overrides.Bar.Stroke = config.String("#c00")
	third, _ := r.Execute(ctx, opts)
	if third.CacheInfo.RenderHit {
		t.Error("changed configuration should miss the cache")
	}

	// Refresh bypasses reads but still writes.
	opts.Refresh = true
	fourth, _ := r.Execute(ctx, opts)
	if fourth.CacheInfo.RenderHit {
		t.Error("Refresh should not read from the cache")
	}
	if mc.sets != 3 {
		t.Errorf("cache sets = %d, want 3", mc.sets)
	}

	// The title is part of the SVG, so it is part of the key.
	opts.Refresh = false
	opts.Title = "KSEA"
	fifth, _ := r.Execute(ctx, opts)
	if fifth.CacheInfo.RenderHit {
		t.Error("changed title should miss the cache")
	}
	if !bytes.Contains(fifth.Artifacts[FormatSVG], []byte("<title>KSEA</title>")) {
		t.Error("title missing from the rendered SVG")
	}
}

func TestExecuteNilCache(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	res, err := r.Execute(context.Background(), Options{Speed: 2})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !res.Decomposition.IsCalm() {
		t.Error("2 kt should be calm")
	}
	if !bytes.Contains(res.Artifacts[FormatSVG], []byte("<circle")) {
		t.Error("calm SVG should contain the circle")
	}
}

func TestExecuteErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errs.Code
	}{
		{"negative speed", Options{Speed: -5}, errs.ErrCodeInvalidSpeed},
		{"bad format", Options{Speed: 5, Formats: []string{"gif"}}, errs.ErrCodeInvalidFormat},
		{"bad canvas", Options{Speed: 5, Overrides: config.Overrides{
			Canvas: config.CanvasOverrides{Width: config.Float(-1)},
		}}, errs.ErrCodeInvalidConfiguration},
		{"bad unit", Options{Speed: 5, Overrides: config.Overrides{Unit: config.String("parsecs")}}, errs.ErrCodeInvalidConfiguration},
		{"negative scale", Options{Speed: 5, Scale: -1}, errs.ErrCodeInvalidConfiguration},
	}
	mc := newMemCache()
	r := NewRunner(mc, nil, quietLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.Execute(context.Background(), tt.opts)
			if !errs.Is(err, tt.code) {
				t.Errorf("Execute() error = %v, want code %s", err, tt.code)
			}
			if res != nil {
				t.Error("Execute() returned a result alongside an error")
			}
		})
	}
	if mc.sets != 0 {
		t.Errorf("failed runs wrote %d cache entries", mc.sets)
	}
}

func TestExecuteConvertedFormats(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	_, err := r.Execute(context.Background(), Options{Speed: 25, Formats: []string{FormatPNG}})
	if render.Available() {
		if err != nil {
			t.Errorf("Execute(png) error: %v", err)
		}
		return
	}
	if !errs.Is(err, errs.ErrCodeUnsupported) {
		t.Errorf("Execute(png) without rsvg-convert error = %v, want UNSUPPORTED", err)
	}
}

func TestExecuteOverflow(t *testing.T) {
	r := NewRunner(newMemCache(), nil, quietLogger())
	ctx := context.Background()

	calm, err := r.Execute(ctx, Options{Speed: 2})
	if err != nil {
		t.Fatal(err)
	}
	if calm.Stats.Overflow {
		t.Error("calm circle should fit the canvas")
	}

	// at 0 degrees the 80-wide shaft stands upright in a 33-high canvas
	north, err := r.Execute(ctx, Options{Speed: 25, Angle: 0})
	if err != nil {
		t.Fatal(err)
	}
	if !north.Stats.Overflow {
		t.Error("upright shaft should overflow")
	}
	if bytes.Contains(north.Artifacts[FormatSVG], []byte(`overflow="visible"`)) {
		t.Error("overflow shown without OverflowVisible")
	}

	visible, err := r.Execute(ctx, Options{Speed: 25, Angle: 0, OverflowVisible: true})
	if err != nil {
		t.Fatal(err)
	}
	if visible.CacheInfo.RenderHit {
		t.Error("OverflowVisible should not reuse the clipped artifact")
	}
	if !bytes.Contains(visible.Artifacts[FormatSVG], []byte(`overflow="visible"`)) {
		t.Error("OverflowVisible missing from SVG")
	}
}
