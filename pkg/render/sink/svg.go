package sink

import (
	"bytes"
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/windbarb/pkg/graphic"
)

const svgNS = "http://www.w3.org/2000/svg"

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	xmlHeader bool
	overflow  bool
	title     string
	indent    string
}

// WithXMLHeader prepends an <?xml?> declaration for standalone files.
func WithXMLHeader() SVGOption { return func(r *svgRenderer) { r.xmlHeader = true } }

// WithOverflowVisible lets rotated segments draw past the canvas edges.
func WithOverflowVisible() SVGOption { return func(r *svgRenderer) { r.overflow = true } }

// WithTitle adds an accessible <title> element.
func WithTitle(s string) SVGOption { return func(r *svgRenderer) { r.title = s } }

// WithIndent sets the per-level indentation (default two spaces).
func WithIndent(s string) SVGOption { return func(r *svgRenderer) { r.indent = s } }

// RenderSVG serializes g as a standalone SVG document.
func RenderSVG(g *graphic.Graphic, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	var buf bytes.Buffer
	if r.xmlHeader {
		buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	}
	r.writeRoot(&buf, g, 0, 0, 0, true)
	return buf.Bytes()
}

// WriteSVGElement writes g as an <svg> element positioned at (x, y) inside
// an enclosing document, indented by depth levels.
func WriteSVGElement(buf *bytes.Buffer, g *graphic.Graphic, x, y float64, depth int, opts ...SVGOption) {
	r := newSVGRenderer(opts...)
	r.writeRoot(buf, g, x, y, depth, false)
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{indent: "  "}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r *svgRenderer) pad(depth int) string { return strings.Repeat(r.indent, depth) }

func (r *svgRenderer) writeRoot(buf *bytes.Buffer, g *graphic.Graphic, x, y float64, depth int, standalone bool) {
	buf.WriteString(r.pad(depth))
	buf.WriteString("<svg")
	if standalone {
		fmt.Fprintf(buf, ` xmlns=%q`, svgNS)
	} else {
		fmt.Fprintf(buf, ` x="%s" y="%s"`, num(x), num(y))
	}
	writeAttr(buf, "id", g.ID)
	writeAttr(buf, "class", g.Class)
	fmt.Fprintf(buf, ` width="%s" height="%s" viewBox="0 0 %s %s"`,
		num(g.Width), num(g.Height), num(g.Width), num(g.Height))
	if r.overflow {
		buf.WriteString(` overflow="visible"`)
	}
	buf.WriteString(">\n")

	if r.title != "" {
		fmt.Fprintf(buf, "%s<title>%s</title>\n", r.pad(depth+1), html.EscapeString(r.title))
	}
	if g.Root != nil {
		for _, s := range g.Root.Children {
			r.writeShape(buf, s, depth+1)
		}
	}

	buf.WriteString(r.pad(depth))
	buf.WriteString("</svg>\n")
}

func (r *svgRenderer) writeShape(buf *bytes.Buffer, s graphic.Shape, depth int) {
	buf.WriteString(r.pad(depth))
	switch v := s.(type) {
	case *graphic.Group:
		buf.WriteString("<g")
		writeAttr(buf, "class", v.Class)
		writeRotation(buf, v.Rotate)
		buf.WriteString(">\n")
		for _, c := range v.Children {
			r.writeShape(buf, c, depth+1)
		}
		buf.WriteString(r.pad(depth))
		buf.WriteString("</g>\n")
	case *graphic.Line:
		buf.WriteString("<line")
		writeAttr(buf, "class", v.Class)
		fmt.Fprintf(buf, ` x1="%s" y1="%s" x2="%s" y2="%s"`, num(v.X1), num(v.Y1), num(v.X2), num(v.Y2))
		writeAttr(buf, "stroke", v.Stroke)
		fmt.Fprintf(buf, ` stroke-width="%s"`, num(v.StrokeWidth))
		writeRotation(buf, v.Rotate)
		buf.WriteString("/>\n")
	case *graphic.Polygon:
		buf.WriteString("<path")
		writeAttr(buf, "class", v.Class)
		fmt.Fprintf(buf, ` d="%s"`, pathData(v.Points))
		writeAttr(buf, "stroke", v.Stroke)
		writeAttr(buf, "fill", v.Fill)
		buf.WriteString("/>\n")
	case *graphic.Circle:
		buf.WriteString("<circle")
		writeAttr(buf, "class", v.Class)
		fmt.Fprintf(buf, ` cx="%s" cy="%s" r="%s"`, num(v.CX), num(v.CY), num(v.R))
		writeAttr(buf, "stroke", v.Stroke)
		writeAttr(buf, "fill", v.Fill)
		fmt.Fprintf(buf, ` stroke-width="%s"`, num(v.StrokeWidth))
		buf.WriteString("/>\n")
	}
}

func writeAttr(buf *bytes.Buffer, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(buf, ` %s="%s"`, name, html.EscapeString(value))
}

func writeRotation(buf *bytes.Buffer, rot graphic.Rotation) {
	if rot.IsZero() {
		return
	}
	fmt.Fprintf(buf, ` transform="rotate(%s %s %s)"`, num(rot.Angle), num(rot.CX), num(rot.CY))
}

// pathData returns a closed path through pts: "M x y L x y ... Z".
func pathData(pts []graphic.Point) string {
	var b strings.Builder
	for i, p := range pts {
		if i == 0 {
			b.WriteString("M")
		} else {
			b.WriteString(" L")
		}
		fmt.Fprintf(&b, "%s %s", num(p.X), num(p.Y))
	}
	if len(pts) > 0 {
		b.WriteString(" Z")
	}
	return b.String()
}

// num formats v with at most three decimals and no trailing zeros.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
