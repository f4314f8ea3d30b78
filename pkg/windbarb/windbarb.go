package windbarb

import (
	"github.com/matzehuels/windbarb/pkg/barb"
	"github.com/matzehuels/windbarb/pkg/config"
	"github.com/matzehuels/windbarb/pkg/graphic"
	"github.com/matzehuels/windbarb/pkg/render/layout"
)

// Option adjusts the configuration of a [Renderer].
type Option func(*settings)

type settings struct {
	base      config.Options
	overrides config.Overrides
}

// WithOptions replaces the base configuration that overrides apply to.
func WithOptions(o config.Options) Option {
	return func(s *settings) { s.base = o }
}

// WithOverrides layers a partial configuration, such as one read from TOML.
func WithOverrides(o config.Overrides) Option {
	return func(s *settings) { s.overrides = s.overrides.Merge(o) }
}

// WithCanvas sets the glyph size.
func WithCanvas(width, height float64) Option {
	return WithOverrides(config.Overrides{
		Canvas: config.CanvasOverrides{Width: &width, Height: &height},
	})
}

// WithConversionFactor sets the multiplier from input speed to knots.
func WithConversionFactor(f float64) Option {
	return WithOverrides(config.Overrides{ConversionFactor: &f})
}

// WithUnit selects a named conversion factor ("knots", "ms", "kmh", "mph").
func WithUnit(name string) Option {
	return WithOverrides(config.Overrides{Unit: &name})
}

// WithBar overrides the set fields of the bar style.
func WithBar(b config.BarOverrides) Option {
	return WithOverrides(config.Overrides{Bar: b})
}

// WithTriangle overrides the set fields of the pennant style.
func WithTriangle(t config.TriangleOverrides) Option {
	return WithOverrides(config.Overrides{Triangle: t})
}

// WithCircle overrides the set fields of the calm circle style.
func WithCircle(c config.CircleOverrides) Option {
	return WithOverrides(config.Overrides{Circle: c})
}

// WithRoot sets the id and class of the root element. Empty strings keep
// the current value.
func WithRoot(id, class string) Option {
	var r config.RootOverrides
	if id != "" {
		r.ID = &id
	}
	if class != "" {
		r.ClassName = &class
	}
	return WithOverrides(config.Overrides{Root: r})
}

// Renderer turns speeds into graphics under a fixed configuration.
type Renderer struct {
	opts config.Options
}

// New resolves opts over the defaults and validates the result.
func New(opts ...Option) (*Renderer, error) {
	s := settings{base: config.Default()}
	for _, opt := range opts {
		opt(&s)
	}
	resolved, err := s.overrides.Resolve(s.base)
	if err != nil {
		return nil, err
	}
	return &Renderer{opts: resolved}, nil
}

// Options returns the resolved configuration.
func (r *Renderer) Options() config.Options { return r.opts }

// Decompose converts speed with the configured factor and splits it into
// segments.
func (r *Renderer) Decompose(speed float64) (barb.Decomposition, error) {
	return barb.DecomposeSpeed(speed, r.opts.ConversionFactor)
}

// Render draws speed (in input units) blowing from angle degrees
// (0 = north, clockwise).
func (r *Renderer) Render(speed, angle float64) (*graphic.Graphic, error) {
	d, err := r.Decompose(speed)
	if err != nil {
		return nil, err
	}
	return layout.Build(d, angle, r.opts)
}

// Render is shorthand for New followed by Renderer.Render.
func Render(speed, angle float64, opts ...Option) (*graphic.Graphic, error) {
	r, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return r.Render(speed, angle)
}
