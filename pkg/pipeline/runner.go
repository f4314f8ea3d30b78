package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/windbarb/pkg/barb"
	"github.com/matzehuels/windbarb/pkg/cache"
	"github.com/matzehuels/windbarb/pkg/config"
	errs "github.com/matzehuels/windbarb/pkg/errors"
	"github.com/matzehuels/windbarb/pkg/observability"
	"github.com/matzehuels/windbarb/pkg/windbarb"
)

// Runner executes runs against a cache. It holds no per-run state and may
// be shared between goroutines.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner returns a runner. A nil cache disables caching, a nil keyer
// uses the default and a nil logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute renders opts.Speed and opts.Angle in every requested format.
// Errors are coded: INVALID_SPEED, INVALID_CONFIGURATION and
// INVALID_FORMAT for bad input, UNSUPPORTED when PDF or PNG conversion is
// unavailable.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}

	renderer, err := windbarb.New(windbarb.WithOverrides(opts.Overrides))
	if err != nil {
		return nil, err
	}
	cfg := renderer.Options()

	d, err := renderer.Decompose(opts.Speed)
	if err != nil {
		return nil, err
	}
	observability.Render().OnDecompose(ctx, d.Knots(), d.IsCalm())
	logger.Debug("decomposed speed", "speed", opts.Speed, "knots", d.Knots(), "segments", d.String())

	start := time.Now()
	observability.Render().OnRenderStart(ctx, opts.Formats)
	res, err := r.render(ctx, renderer, d, cfg, opts, logger)
	elapsed := time.Since(start)
	observability.Render().OnRenderComplete(ctx, opts.Formats, elapsed, err)
	if err != nil {
		return nil, err
	}

	res.Stats.RenderTime = elapsed
	logger.Info("rendered wind barb",
		"knots", d.Knots(),
		"angle", opts.Angle,
		"formats", opts.Formats,
		"cache", res.CacheInfo.String(),
		"duration", elapsed)
	return res, nil
}

func (r *Runner) render(ctx context.Context, renderer *windbarb.Renderer, d barb.Decomposition, cfg config.Options, opts Options, logger *log.Logger) (*Result, error) {
	g, err := renderer.Render(opts.Speed, opts.Angle)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Graphic:       g,
		Decomposition: d,
		Config:        cfg,
		Artifacts:     make(map[string][]byte, len(opts.Formats)),
		Stats: Stats{
			Segments: d.Counts().Total(),
			Bytes:    make(map[string]int),
			Overflow: g.Overflows(),
		},
	}
	if res.Stats.Overflow {
		logger.Debug("glyph extends past the canvas", "bounds", g.Bounds())
	}

	cfgHash, err := cache.HashJSON(cfg)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "hash configuration")
	}

	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(cfgHash, cache.ArtifactKeyOpts{
			Speed:    opts.Speed,
			Angle:    opts.Angle,
			Format:   format,
			Scale:    scaleKey(format, opts.Scale),
			Title:    titleKey(format, opts.Title),
			Overflow: opts.OverflowVisible && format != FormatJSON,
		})

		if !opts.Refresh {
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				logger.Debug("cache read failed", "format", format, "error", err)
			}
			if hit {
				observability.Cache().OnCacheHit(ctx, format)
				res.Artifacts[format] = data
				res.Stats.Bytes[format] = len(data)
				res.CacheInfo.Hits = append(res.CacheInfo.Hits, format)
				continue
			}
			observability.Cache().OnCacheMiss(ctx, format)
		}

		data, err := Render(g, d, cfg, opts, format)
		if err != nil {
			return nil, err
		}
		res.Artifacts[format] = data
		res.Stats.Bytes[format] = len(data)
		res.CacheInfo.Misses = append(res.CacheInfo.Misses, format)

		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			logger.Warn("cache write failed", "format", format, "error", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, format, len(data))
	}

	res.CacheInfo.RenderHit = len(res.CacheInfo.Misses) == 0
	return res, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func scaleKey(format string, scale float64) float64 {
	if format == FormatPNG {
		return scale
	}
	return 0
}

// titleKey drops the title for JSON, which does not carry it.
func titleKey(format, title string) string {
	if format == FormatJSON {
		return ""
	}
	return title
}
