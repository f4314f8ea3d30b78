package barb

import "math"

// Geometry holds the derived dimensions used to lay out segments. It is a
// pure function of the bar height and bar angle.
type Geometry struct {
	BarHeight      float64 // length of a full bar
	HalfBarHeight  float64 // length of a half bar
	TriangleHeight float64 // pennant apex height above the shaft
	TriangleWidth  float64 // pennant base length along the shaft
	Angle          float64 // bar tilt in degrees from vertical
}

// NewGeometry computes the layout geometry. A pennant is sized so its apex
// sits where the tip of a full bar tilted by angle would be.
func NewGeometry(barHeight, angle float64) Geometry {
	rad := (90 - angle) * math.Pi / 180
	return Geometry{
		BarHeight:      barHeight,
		HalfBarHeight:  barHeight / 2,
		TriangleHeight: barHeight * math.Sin(rad),
		TriangleWidth:  barHeight * math.Cos(rad),
		Angle:          angle,
	}
}
