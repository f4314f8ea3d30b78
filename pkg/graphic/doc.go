// Package graphic defines the in-memory shape tree a wind barb is rendered
// into.
//
// A [Graphic] is a fixed-size canvas holding a root [Group]. The tree uses a
// small closed set of shapes ([Line], [Polygon], [Circle], [Group]) so that
// sinks in render/sink can serialize it to SVG or JSON without knowing how
// it was laid out. Each leaf carries a [Part] naming what it depicts (shaft,
// pennant, full bar, half bar, calm circle).
//
// Rotations are stored, not applied: a shape keeps its unrotated
// coordinates plus a [Rotation], mirroring an SVG rotate(a cx cy) transform.
// [Rotation.Apply] and [Graphic.Bounds] resolve absolute positions when a
// caller needs them.
//
// Trees are built fresh per render and are not mutated afterwards; they are
// safe to share between goroutines for reading.
package graphic
