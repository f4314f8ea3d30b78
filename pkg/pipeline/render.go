package pipeline

import (
	"github.com/matzehuels/windbarb/pkg/barb"
	"github.com/matzehuels/windbarb/pkg/config"
	errs "github.com/matzehuels/windbarb/pkg/errors"
	"github.com/matzehuels/windbarb/pkg/graphic"
	"github.com/matzehuels/windbarb/pkg/render/sink"
)

// Render serializes g in one format.
func Render(g *graphic.Graphic, d barb.Decomposition, cfg config.Options, opts Options, format string) ([]byte, error) {
	svgOpts := buildSVGOptions(opts)

	switch format {
	case FormatSVG:
		return sink.RenderSVG(g, svgOpts...), nil
	case FormatJSON:
		return sink.RenderJSON(g,
			sink.WithJSONDecomposition(d),
			sink.WithJSONSpeed(opts.Speed, cfg.ConversionFactor, opts.Angle))
	case FormatPDF:
		return sink.RenderPDF(g, sink.WithPDFSVGOptions(svgOpts...))
	case FormatPNG:
		return sink.RenderPNG(g, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
	}
	return nil, errs.New(errs.ErrCodeInvalidFormat, "unsupported format: %s", format)
}

// buildSVGOptions returns the options shared by SVG and the formats
// converted from it. Converted formats need the header for rsvg-convert.
func buildSVGOptions(opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithXMLHeader()}
	if opts.Title != "" {
		svgOpts = append(svgOpts, sink.WithTitle(opts.Title))
	}
	if opts.OverflowVisible {
		svgOpts = append(svgOpts, sink.WithOverflowVisible())
	}
	return svgOpts
}
