// Package config holds the styling and canvas configuration for wind barbs.
//
// [Options] is the resolved, fully populated configuration every renderer
// works from. [Default] returns the stock values (80×33 canvas, 30° bars,
// padding 6, calm radius 10, speed already in knots).
//
// [Overrides] is the partial form users write: every field is a pointer, and
// [Overrides.Apply] copies only the fields that are set onto a base Options.
// This is how TOML files and HTTP query parameters are layered over the
// defaults without reflection:
//
//	var o config.Overrides
//	_, err := toml.Decode(`[canvas]
//	width = 120`, &o)
//	opts := o.Apply(config.Default())
//
// [Options.Validate] enforces the preconditions a render needs and reports
// INVALID_CONFIGURATION otherwise.
package config
