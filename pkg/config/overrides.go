package config

// CanvasOverrides is the partial form of Canvas.
type CanvasOverrides struct {
	Width  *float64 `json:"width,omitempty" toml:"width"`
	Height *float64 `json:"height,omitempty" toml:"height"`
}

// BarOverrides is the partial form of Bar.
type BarOverrides struct {
	Stroke         *string  `json:"stroke,omitempty" toml:"stroke"`
	Width          *float64 `json:"width,omitempty" toml:"width"`
	Angle          *float64 `json:"angle,omitempty" toml:"angle"`
	Padding        *float64 `json:"padding,omitempty" toml:"padding"`
	FullClassName  *string  `json:"full_class,omitempty" toml:"full_class"`
	ShortClassName *string  `json:"half_class,omitempty" toml:"half_class"`
}

// TriangleOverrides is the partial form of Triangle.
type TriangleOverrides struct {
	Stroke    *string  `json:"stroke,omitempty" toml:"stroke"`
	Fill      *string  `json:"fill,omitempty" toml:"fill"`
	Padding   *float64 `json:"padding,omitempty" toml:"padding"`
	ClassName *string  `json:"class,omitempty" toml:"class"`
}

// CircleOverrides is the partial form of Circle.
type CircleOverrides struct {
	Stroke      *string  `json:"stroke,omitempty" toml:"stroke"`
	Fill        *string  `json:"fill,omitempty" toml:"fill"`
	Radius      *float64 `json:"radius,omitempty" toml:"radius"`
	StrokeWidth *float64 `json:"stroke_width,omitempty" toml:"stroke_width"`
	ClassName   *string  `json:"class,omitempty" toml:"class"`
}

// RootOverrides is the partial form of Root.
type RootOverrides struct {
	ID        *string `json:"id,omitempty" toml:"id"`
	ClassName *string `json:"class,omitempty" toml:"class"`
}

// Overrides is a partial Options. Nil fields keep the base value.
type Overrides struct {
	Canvas           CanvasOverrides   `json:"canvas" toml:"canvas"`
	ConversionFactor *float64          `json:"conversion_factor,omitempty" toml:"conversion_factor"`
	Unit             *string           `json:"unit,omitempty" toml:"unit"`
	Bar              BarOverrides      `json:"bar" toml:"bar"`
	Triangle         TriangleOverrides `json:"triangle" toml:"triangle"`
	Circle           CircleOverrides   `json:"circle" toml:"circle"`
	Root             RootOverrides     `json:"root" toml:"root"`
}

// Apply returns base with every set field of o copied over. When both Unit
// and ConversionFactor are set, ConversionFactor wins. An unknown unit is
// reported by [Overrides.Resolve]; Apply leaves the factor untouched.
func (o Overrides) Apply(base Options) Options {
	out := base

	setF(&out.Canvas.Width, o.Canvas.Width)
	setF(&out.Canvas.Height, o.Canvas.Height)

	if o.Unit != nil {
		if f, err := ParseUnit(*o.Unit); err == nil {
			out.ConversionFactor = f
		}
	}
	setF(&out.ConversionFactor, o.ConversionFactor)

	setS(&out.Bar.Stroke, o.Bar.Stroke)
	setF(&out.Bar.Width, o.Bar.Width)
	setF(&out.Bar.Angle, o.Bar.Angle)
	setF(&out.Bar.Padding, o.Bar.Padding)
	setS(&out.Bar.FullClassName, o.Bar.FullClassName)
	setS(&out.Bar.ShortClassName, o.Bar.ShortClassName)

	setS(&out.Triangle.Stroke, o.Triangle.Stroke)
	setS(&out.Triangle.Fill, o.Triangle.Fill)
	setF(&out.Triangle.Padding, o.Triangle.Padding)
	setS(&out.Triangle.ClassName, o.Triangle.ClassName)

	setS(&out.Circle.Stroke, o.Circle.Stroke)
	setS(&out.Circle.Fill, o.Circle.Fill)
	setF(&out.Circle.Radius, o.Circle.Radius)
	setF(&out.Circle.StrokeWidth, o.Circle.StrokeWidth)
	setS(&out.Circle.ClassName, o.Circle.ClassName)

	setS(&out.Root.ID, o.Root.ID)
	setS(&out.Root.ClassName, o.Root.ClassName)
	return out
}

// Resolve applies o over base and validates the result.
func (o Overrides) Resolve(base Options) (Options, error) {
	if o.Unit != nil {
		if _, err := ParseUnit(*o.Unit); err != nil {
			return Options{}, err
		}
	}
	out := o.Apply(base)
	if err := out.Validate(); err != nil {
		return Options{}, err
	}
	return out, nil
}

// Merge layers next over o: fields set in next win.
func (o Overrides) Merge(next Overrides) Overrides {
	out := o
	mergeP(&out.Canvas.Width, next.Canvas.Width)
	mergeP(&out.Canvas.Height, next.Canvas.Height)
	mergeP(&out.ConversionFactor, next.ConversionFactor)
	mergeP(&out.Unit, next.Unit)
	mergeP(&out.Bar.Stroke, next.Bar.Stroke)
	mergeP(&out.Bar.Width, next.Bar.Width)
	mergeP(&out.Bar.Angle, next.Bar.Angle)
	mergeP(&out.Bar.Padding, next.Bar.Padding)
	mergeP(&out.Bar.FullClassName, next.Bar.FullClassName)
	mergeP(&out.Bar.ShortClassName, next.Bar.ShortClassName)
	mergeP(&out.Triangle.Stroke, next.Triangle.Stroke)
	mergeP(&out.Triangle.Fill, next.Triangle.Fill)
	mergeP(&out.Triangle.Padding, next.Triangle.Padding)
	mergeP(&out.Triangle.ClassName, next.Triangle.ClassName)
	mergeP(&out.Circle.Stroke, next.Circle.Stroke)
	mergeP(&out.Circle.Fill, next.Circle.Fill)
	mergeP(&out.Circle.Radius, next.Circle.Radius)
	mergeP(&out.Circle.StrokeWidth, next.Circle.StrokeWidth)
	mergeP(&out.Circle.ClassName, next.Circle.ClassName)
	mergeP(&out.Root.ID, next.Root.ID)
	mergeP(&out.Root.ClassName, next.Root.ClassName)
	return out
}

func setF(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setS(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func mergeP[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}

// Float returns a pointer to v, for building Overrides literals.
func Float(v float64) *float64 { return &v }

// String returns a pointer to v, for building Overrides literals.
func String(v string) *string { return &v }
