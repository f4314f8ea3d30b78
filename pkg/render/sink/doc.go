// Package sink serializes a [graphic.Graphic] into output formats.
//
// # Formats
//
//   - SVG: standalone markup, one element per shape ([RenderSVG])
//   - JSON: the shape tree as data, with optional decomposition ([RenderJSON])
//   - PDF and PNG: SVG converted through rsvg-convert ([RenderPDF], [RenderPNG])
//
// Basic usage:
//
//	g, _ := windbarb.Render(85, 270)
//	svg := sink.RenderSVG(g, sink.WithXMLHeader())
//
// [WriteSVGElement] writes a graphic as a nested <svg> element so that
// larger documents (see render/document) can embed many glyphs.
//
// Sinks never modify the graphic and are safe to call concurrently.
package sink
