package barb

import (
	"fmt"
	"math"

	errs "github.com/matzehuels/windbarb/pkg/errors"
)

// Segment magnitudes in knots.
const (
	PennantKnots = 50
	FullKnots    = 10
	HalfKnots    = 5
)

// MaxKnots bounds the speed a barb can show. Larger values are rejected so
// the segment count, and with it the size of the output, stays small.
const MaxKnots = 1000

// Common conversion factors into knots.
const (
	Knots           = 1.0
	MetersPerSecond = 1.943844
	KilometersPerHr = 0.539957
	MilesPerHour    = 0.868976
)

// SegmentCounts is how many of each segment a barb carries.
type SegmentCounts struct {
	Pennants int `json:"pennants"` // 50-knot triangles
	Full     int `json:"full"`     // 10-knot bars
	Half     int `json:"half"`     // 5-knot bars
}

// Knots returns the speed the segments represent.
func (c SegmentCounts) Knots() int {
	return c.Pennants*PennantKnots + c.Full*FullKnots + c.Half*HalfKnots
}

// Total returns the number of segments.
func (c SegmentCounts) Total() int {
	return c.Pennants + c.Full + c.Half
}

// String formats the counts as "1×50 3×10 1×5".
func (c SegmentCounts) String() string {
	return fmt.Sprintf("%d×50 %d×10 %d×5", c.Pennants, c.Full, c.Half)
}

// Decomposition is the result of splitting a speed into segments. It is
// either calm (no segments, draw a circle) or carries segment counts.
type Decomposition struct {
	knots  int
	calm   bool
	counts SegmentCounts
}

// Calm returns the calm decomposition for the given knots (expected < 5).
func Calm(knots int) Decomposition {
	return Decomposition{knots: knots, calm: true}
}

// Segments returns a windy decomposition with the given counts.
func Segments(knots int, c SegmentCounts) Decomposition {
	return Decomposition{knots: knots, counts: c}
}

// IsCalm reports whether no segment fits and the calm circle is drawn.
func (d Decomposition) IsCalm() bool { return d.calm }

// Counts returns the segment counts. It is the zero value for calm.
func (d Decomposition) Counts() SegmentCounts { return d.counts }

// Knots returns the effective knots the decomposition was computed from.
func (d Decomposition) Knots() int { return d.knots }

// Represented returns the knots encoded by the segments.
func (d Decomposition) Represented() int { return d.counts.Knots() }

// Dropped returns the knots lost to the greedy remainder (always < 5).
func (d Decomposition) Dropped() int { return d.knots - d.counts.Knots() }

// String implements fmt.Stringer.
func (d Decomposition) String() string {
	if d.calm {
		return fmt.Sprintf("calm (%d kt)", d.knots)
	}
	return fmt.Sprintf("%s (%d kt, %d dropped)", d.counts, d.knots, d.Dropped())
}

// ToKnots scales speed by factor and rounds to the nearest whole knot.
// Halves round away from zero.
func ToKnots(speed, factor float64) (int, error) {
	if err := errs.ValidateSpeed(speed); err != nil {
		return 0, err
	}
	if err := errs.ValidatePositive("conversion factor", factor); err != nil {
		return 0, err
	}
	k := math.Round(speed * factor)
	if k > MaxKnots {
		return 0, errs.New(errs.ErrCodeInvalidSpeed, "speed %v × %v exceeds %d kt", speed, factor, MaxKnots)
	}
	return int(k), nil
}

// Decompose splits knots greedily: every 50 first, then every 10, then
// every 5. Anything left below 5 is dropped. Knots below 5 yield calm.
func Decompose(knots int) (Decomposition, error) {
	if knots < 0 {
		return Decomposition{}, errs.New(errs.ErrCodeInvalidSpeed, "knots must be non-negative, got %d", knots)
	}
	if knots > MaxKnots {
		return Decomposition{}, errs.New(errs.ErrCodeInvalidSpeed, "knots must be at most %d, got %d", MaxKnots, knots)
	}
	if knots < HalfKnots {
		return Calm(knots), nil
	}

	var c SegmentCounts
	rest := knots
	for rest >= PennantKnots {
		rest -= PennantKnots
		c.Pennants++
	}
	for rest >= FullKnots {
		rest -= FullKnots
		c.Full++
	}
	for rest >= HalfKnots {
		rest -= HalfKnots
		c.Half++
	}
	return Segments(knots, c), nil
}

// DecomposeSpeed is ToKnots followed by Decompose.
func DecomposeSpeed(speed, factor float64) (Decomposition, error) {
	k, err := ToKnots(speed, factor)
	if err != nil {
		return Decomposition{}, err
	}
	return Decompose(k)
}
