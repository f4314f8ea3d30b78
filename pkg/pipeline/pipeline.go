// Package pipeline runs the speed → glyph → artifact flow shared by the CLI
// and the HTTP service.
//
// A run resolves the configuration, decomposes the speed, lays out the
// glyph and serializes it in every requested format. Serialized artifacts
// are cached by a key built from the resolved configuration, the input and
// the format, so repeated requests skip layout and conversion.
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Execute(ctx, pipeline.Options{
//		Speed:   85,
//		Angle:   270,
//		Formats: []string{pipeline.FormatSVG, pipeline.FormatPNG},
//	})
//	svg := res.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/windbarb/pkg/barb"
	"github.com/matzehuels/windbarb/pkg/config"
	errs "github.com/matzehuels/windbarb/pkg/errors"
	"github.com/matzehuels/windbarb/pkg/graphic"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatPDF  = "pdf"
	FormatPNG  = "png"
)

// DefaultScale is the PNG scale factor when none is given.
const DefaultScale = 2.0

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
	FormatPDF:  true,
	FormatPNG:  true,
}

// FormatNames returns the supported formats in a stable order.
func FormatNames() []string {
	return []string{FormatSVG, FormatJSON, FormatPDF, FormatPNG}
}

// ContentType returns the MIME type of a format.
func ContentType(format string) string {
	switch format {
	case FormatSVG:
		return "image/svg+xml"
	case FormatJSON:
		return "application/json"
	case FormatPDF:
		return "application/pdf"
	case FormatPNG:
		return "image/png"
	}
	return "application/octet-stream"
}

// ValidateFormat checks that format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format %q (must be one of: %s)",
			format, strings.Join(FormatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks every entry of formats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated list, trimming blanks and
// dropping duplicates.
func ParseFormats(s string) ([]string, error) {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || slices.Contains(out, f) {
			continue
		}
		if err := ValidateFormat(f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// Options describes one run.
type Options struct {
	Speed float64 `json:"speed"`
	Angle float64 `json:"angle"`

	// Overrides are applied over config.Default().
	Overrides config.Overrides `json:"overrides"`

	Formats []string `json:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty"` // PNG scale factor
	Title   string   `json:"title,omitempty"` // SVG <title>

	// OverflowVisible lets shapes past the canvas edge show in SVG output.
	OverflowVisible bool `json:"overflow_visible,omitempty"`

	// Refresh skips cache reads; results are still written.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`
}

// SetDefaults fills unset formats and scale.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
}

// Validate checks formats, scale and the input values. Configuration is
// checked when it is resolved.
func (o *Options) Validate() error {
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := errs.ValidatePositive("scale", o.Scale); err != nil {
		return err
	}
	if err := errs.ValidateSpeed(o.Speed); err != nil {
		return err
	}
	return errs.ValidateAngle(o.Angle)
}

// Result holds the outputs of a run.
type Result struct {
	Graphic       *graphic.Graphic
	Decomposition barb.Decomposition
	Config        config.Options

	// Artifacts maps each requested format to its bytes.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats reports timing and size.
type Stats struct {
	Segments   int
	RenderTime time.Duration
	Bytes      map[string]int
	Overflow   bool // some shape reaches past the canvas
}

// CacheInfo reports which artifacts came from the cache.
type CacheInfo struct {
	Hits      []string
	Misses    []string
	RenderHit bool // every artifact was a hit
}

func (c CacheInfo) String() string {
	return fmt.Sprintf("%d hit, %d miss", len(c.Hits), len(c.Misses))
}
