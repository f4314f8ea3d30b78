// Package layout positions the segments of a decomposed wind barb on the
// canvas and emits the resulting [graphic.Graphic].
//
// # Calm
//
// A calm decomposition yields a single circle centred on the canvas and
// nothing else.
//
// # Windy
//
// The shaft runs horizontally across the whole canvas along the bottom edge.
// Segments are placed walking right to left from the shaft tip:
//
//  1. pennants, each [barb.Geometry].TriangleWidth wide plus triangle padding
//  2. full bars, each offset by bar width plus bar padding
//  3. half bars, half as long, with the same spacing
//
// Every bar is tilted by the bar angle about its own base, toward the tip.
// The whole group is then rotated by (direction − 90°) about the middle of
// the shaft, so 0° points the shaft up and angles increase clockwise.
//
// The order pennants, full bars, half bars is fixed.
package layout
