// Package render turns a [graphic.Graphic] into bytes.
//
// # Overview
//
// Rendering is split into three stages that live in subpackages:
//
//   - [layout] places shafts, pennants, bars and the calm circle
//   - [sink] serializes a graphic as SVG, JSON, PDF or PNG
//   - [document] nests many glyphs into named containers on one page
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). [Available] reports whether
// it is installed; without it only SVG and JSON can be produced.
//
//	svg := sink.RenderSVG(g)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [graphic.Graphic]: github.com/matzehuels/windbarb/pkg/graphic
// [layout]: github.com/matzehuels/windbarb/pkg/render/layout
// [sink]: github.com/matzehuels/windbarb/pkg/render/sink
// [document]: github.com/matzehuels/windbarb/pkg/render/document
package render
