package config

import (
	errs "github.com/matzehuels/windbarb/pkg/errors"
)

// Default values.
const (
	DefaultWidth            = 80.0
	DefaultHeight           = 33.0
	DefaultConversionFactor = 1.0
	DefaultBarAngle         = 30.0
	DefaultBarWidth         = 2.0
	DefaultBarPadding       = 6.0
	DefaultTrianglePadding  = 6.0
	DefaultCircleRadius     = 10.0
	DefaultCircleStroke     = 2.0
	DefaultStroke           = "#000"
	DefaultCircleFill       = "#fff"
	DefaultRootClass        = "wind-barb-root"
	DefaultFullBarClass     = "wind-barb-bar-full"
	DefaultHalfBarClass     = "wind-barb-bar-half"
	DefaultTriangleClass    = "wind-barb-triangle"
	DefaultCircleClass      = "wind-barb-zero-knots"
)

// Canvas is the fixed drawing area.
type Canvas struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

// Bar styles the shaft and the full and half bars.
type Bar struct {
	Stroke         string  `json:"stroke" toml:"stroke"`
	Width          float64 `json:"width" toml:"width"`
	Angle          float64 `json:"angle" toml:"angle"`
	Padding        float64 `json:"padding" toml:"padding"`
	FullClassName  string  `json:"full_class" toml:"full_class"`
	ShortClassName string  `json:"half_class" toml:"half_class"`
}

// Triangle styles the 50-knot pennants.
type Triangle struct {
	Stroke    string  `json:"stroke" toml:"stroke"`
	Fill      string  `json:"fill" toml:"fill"`
	Padding   float64 `json:"padding" toml:"padding"`
	ClassName string  `json:"class" toml:"class"`
}

// Circle styles the calm-wind glyph.
type Circle struct {
	Stroke      string  `json:"stroke" toml:"stroke"`
	Fill        string  `json:"fill" toml:"fill"`
	Radius      float64 `json:"radius" toml:"radius"`
	StrokeWidth float64 `json:"stroke_width" toml:"stroke_width"`
	ClassName   string  `json:"class" toml:"class"`
}

// Root names the top-level element.
type Root struct {
	ID        string `json:"id,omitempty" toml:"id"`
	ClassName string `json:"class" toml:"class"`
}

// Options is the resolved configuration of a render.
type Options struct {
	Canvas           Canvas   `json:"canvas"`
	ConversionFactor float64  `json:"conversion_factor"`
	Bar              Bar      `json:"bar"`
	Triangle         Triangle `json:"triangle"`
	Circle           Circle   `json:"circle"`
	Root             Root     `json:"root"`
}

// Default returns the stock configuration.
func Default() Options {
	return Options{
		Canvas:           Canvas{Width: DefaultWidth, Height: DefaultHeight},
		ConversionFactor: DefaultConversionFactor,
		Bar: Bar{
			Stroke:         DefaultStroke,
			Width:          DefaultBarWidth,
			Angle:          DefaultBarAngle,
			Padding:        DefaultBarPadding,
			FullClassName:  DefaultFullBarClass,
			ShortClassName: DefaultHalfBarClass,
		},
		Triangle: Triangle{
			Stroke:    DefaultStroke,
			Fill:      DefaultStroke,
			Padding:   DefaultTrianglePadding,
			ClassName: DefaultTriangleClass,
		},
		Circle: Circle{
			Stroke:      DefaultStroke,
			Fill:        DefaultCircleFill,
			Radius:      DefaultCircleRadius,
			StrokeWidth: DefaultCircleStroke,
			ClassName:   DefaultCircleClass,
		},
		Root: Root{ClassName: DefaultRootClass},
	}
}

// BarHeight is the length of a full bar: the canvas height minus half a
// stroke at each end so the shaft and bar tips stay on the canvas.
func (o Options) BarHeight() float64 {
	return o.Canvas.Height - o.Bar.Width
}

// ShaftY is the vertical position of the shaft, on the bottom edge.
func (o Options) ShaftY() float64 {
	return o.Canvas.Height - o.Bar.Width/2
}

// Validate checks every precondition of a render.
func (o Options) Validate() error {
	checks := []error{
		errs.ValidatePositive("canvas.width", o.Canvas.Width),
		errs.ValidatePositive("canvas.height", o.Canvas.Height),
		errs.ValidatePositive("conversion_factor", o.ConversionFactor),
		errs.ValidatePositive("bar.width", o.Bar.Width),
		errs.ValidateNonNegative("bar.padding", o.Bar.Padding),
		errs.ValidateNonNegative("triangle.padding", o.Triangle.Padding),
		errs.ValidatePositive("circle.radius", o.Circle.Radius),
		errs.ValidateNonNegative("circle.stroke_width", o.Circle.StrokeWidth),
		errs.ValidateAttr("bar.stroke", o.Bar.Stroke),
		errs.ValidateAttr("bar.full_class", o.Bar.FullClassName),
		errs.ValidateAttr("bar.half_class", o.Bar.ShortClassName),
		errs.ValidateAttr("triangle.stroke", o.Triangle.Stroke),
		errs.ValidateAttr("triangle.fill", o.Triangle.Fill),
		errs.ValidateAttr("triangle.class", o.Triangle.ClassName),
		errs.ValidateAttr("circle.stroke", o.Circle.Stroke),
		errs.ValidateAttr("circle.fill", o.Circle.Fill),
		errs.ValidateAttr("circle.class", o.Circle.ClassName),
		errs.ValidateAttr("root.class", o.Root.ClassName),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	if !(o.Bar.Angle >= 0 && o.Bar.Angle <= 90) {
		return errs.New(errs.ErrCodeInvalidConfiguration, "bar.angle must be within [0, 90], got %v", o.Bar.Angle)
	}
	if o.Root.ID != "" {
		if err := errs.ValidateID(o.Root.ID); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidConfiguration, err, "root.id")
		}
	}
	if o.BarHeight() <= 0 {
		return errs.New(errs.ErrCodeInvalidConfiguration,
			"canvas.height (%v) must exceed bar.width (%v)", o.Canvas.Height, o.Bar.Width)
	}
	return nil
}
