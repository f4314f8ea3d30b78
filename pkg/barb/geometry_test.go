package barb

import (
	"math"
	"testing"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestNewGeometry(t *testing.T) {
	tests := []struct {
		name      string
		height    float64
		angle     float64
		wantTriH  float64
		wantTriW  float64
		wantHalfH float64
	}{
		{"thirty degrees", 20, 30, 20 * math.Sqrt(3) / 2, 10, 10},
		{"upright bars", 20, 0, 20, 0, 10},
		{"flat bars", 20, 90, 0, 20, 10},
		{"forty five", 10, 45, 10 * math.Sqrt2 / 2, 10 * math.Sqrt2 / 2, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGeometry(tt.height, tt.angle)
			if !approx(g.TriangleHeight, tt.wantTriH) {
				t.Errorf("TriangleHeight = %v, want %v", g.TriangleHeight, tt.wantTriH)
			}
			if !approx(g.TriangleWidth, tt.wantTriW) {
				t.Errorf("TriangleWidth = %v, want %v", g.TriangleWidth, tt.wantTriW)
			}
			if !approx(g.HalfBarHeight, tt.wantHalfH) {
				t.Errorf("HalfBarHeight = %v, want %v", g.HalfBarHeight, tt.wantHalfH)
			}
			if g.BarHeight != tt.height {
				t.Errorf("BarHeight = %v, want %v", g.BarHeight, tt.height)
			}
		})
	}
}

func TestGeometryPennantMatchesBarTip(t *testing.T) {
	g := NewGeometry(31, 30)
	rad := g.Angle * math.Pi / 180
	tipX := g.BarHeight * math.Sin(rad)
	tipY := g.BarHeight * math.Cos(rad)
	if !approx(tipX, g.TriangleWidth) || !approx(tipY, g.TriangleHeight) {
		t.Errorf("pennant apex (%v, %v) != bar tip (%v, %v)", g.TriangleWidth, g.TriangleHeight, tipX, tipY)
	}
}
