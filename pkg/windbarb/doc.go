// Package windbarb renders wind speed and direction as a meteorological
// wind barb.
//
// A barb is a shaft pointing into the wind with segments along it: a
// pennant for every 50 knots, a full bar for every 10 and a half bar for
// a remaining 5. Below 5 knots the glyph is a single calm circle.
//
// # Usage
//
//	g, err := windbarb.Render(85, 270)
//	if err != nil {
//		return err
//	}
//	svg := sink.RenderSVG(g)
//
// Speeds in other units are converted with a factor into knots:
//
//	g, err := windbarb.Render(12.5, 180, windbarb.WithUnit("ms"))
//
// Options override the defaults field by field, so a partial bar style
// keeps every other bar setting:
//
//	r, err := windbarb.New(
//		windbarb.WithCanvas(120, 50),
//		windbarb.WithBar(config.BarOverrides{Stroke: config.String("#c00")}),
//	)
//
// A [Renderer] is immutable once built and may be shared between
// goroutines. Every call returns a fresh [graphic.Graphic].
//
// # Errors
//
// Negative or non-finite speeds fail with INVALID_SPEED. Options that would
// produce an impossible glyph fail with INVALID_CONFIGURATION. Both are
// reported before any shape is built.
package windbarb
