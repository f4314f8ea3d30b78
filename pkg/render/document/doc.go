// Package document composes many wind barbs onto one SVG page.
//
// A [Document] holds named containers, rectangular slots identified by an
// id. Glyphs are placed with [Document.Attach]; an id that names no
// container is ignored and Attach returns false. Callers that care may log
// the miss, but it is never an error.
//
//	doc, _ := document.NewGrid(3, 100, 60, "KSEA", "KPDX", "KSFO")
//	g, _ := windbarb.Render(25, 180)
//	doc.Attach("KPDX", g)
//	svg := doc.RenderSVG()
//
// Each glyph is centred in its container and written as a nested <svg>
// element, so its own viewBox and transforms are preserved.
package document
