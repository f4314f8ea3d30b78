// Package barb turns a wind speed into the segments of a meteorological wind
// barb and computes the geometry those segments are drawn with.
//
// # Overview
//
// A wind barb encodes speed in knots as a row of marks hanging off a shaft:
//
//   - pennant (filled triangle): 50 knots
//   - full bar: 10 knots
//   - half bar: 5 knots
//
// Speeds that round below 5 knots have no marks at all and are drawn as a
// calm circle instead.
//
// # Decomposition
//
// [ToKnots] scales a caller-unit speed into whole knots, and [Decompose]
// splits the knots greedily, largest segment first:
//
//	k, _ := barb.ToKnots(40, barb.MetersPerSecond) // 78
//	d, _ := barb.Decompose(k)
//	d.Counts() // {Pennants: 1, Full: 2, Half: 1}, 3 knots dropped
//
// The remainder below 5 knots is dropped. That loss of resolution is the
// convention of the glyph and is kept as is.
//
// The result is a tagged [Decomposition]: either calm ([Decomposition.IsCalm])
// or a set of [SegmentCounts]. Renderers switch on the tag rather than on a
// nil or zero value.
//
// # Geometry
//
// [NewGeometry] derives the pennant dimensions from the bar height and the
// bar angle so that a pennant's apex lines up with the tip of a rotated bar.
package barb
