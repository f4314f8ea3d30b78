// Package pkg provides the libraries behind windbarb.
//
// # Overview
//
// A wind barb shows wind speed and direction on a station plot. The shaft
// points into the wind; 50-knot pennants, 10-knot bars and 5-knot half bars
// sit at its far end, and a circle replaces the whole glyph when the wind
// is calm (under 5 knots).
//
// # Architecture
//
// The data flow through windbarb:
//
//	speed, angle
//	     ↓
//	[barb] package (convert to knots, split into segments)
//	     ↓
//	[render/layout] package (place shapes, rotate to the wind direction)
//	     ↓
//	[graphic] package (shape tree)
//	     ↓
//	[render/sink] package (SVG/JSON/PDF/PNG)
//
// [windbarb] wraps the first three steps behind functional options and is
// the entry point most callers want:
//
//	g, err := windbarb.Render(40, 270, windbarb.WithUnit("ms"))
//	svg := sink.RenderSVG(g)
//
// # Main Packages
//
// [config] - Resolved rendering options, partial overrides loaded from TOML,
// and named speed units.
//
// [render/document] - Pages of named containers that glyphs attach to.
//
// [pipeline] - Validate, render, serialize and cache in one call. Used by the
// CLI and the HTTP service so both behave the same.
//
// [cache] - Artifact cache with file, Redis and no-op backends.
//
// [server] - HTTP service built on chi.
//
// [observability] - Hooks for render, cache and HTTP events.
//
// [errors] - Coded errors shared by every package.
//
// [barb]: https://pkg.go.dev/github.com/matzehuels/windbarb/pkg/barb
// [graphic]: https://pkg.go.dev/github.com/matzehuels/windbarb/pkg/graphic
// [windbarb]: https://pkg.go.dev/github.com/matzehuels/windbarb/pkg/windbarb
// [config]: https://pkg.go.dev/github.com/matzehuels/windbarb/pkg/config
// [render/layout]: https://pkg.go.dev/github.com/matzehuels/windbarb/pkg/render/layout
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/windbarb/pkg/render/sink
// [render/document]: https://pkg.go.dev/github.com/matzehuels/windbarb/pkg/render/document
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/windbarb/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/windbarb/pkg/cache
// [server]: https://pkg.go.dev/github.com/matzehuels/windbarb/pkg/server
// [observability]: https://pkg.go.dev/github.com/matzehuels/windbarb/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/windbarb/pkg/errors
package pkg
