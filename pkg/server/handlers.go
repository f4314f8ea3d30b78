package server

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/windbarb/pkg/barb"
	"github.com/matzehuels/windbarb/pkg/buildinfo"
	"github.com/matzehuels/windbarb/pkg/config"
	errs "github.com/matzehuels/windbarb/pkg/errors"
	"github.com/matzehuels/windbarb/pkg/pipeline"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleBarb(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}

	opts, err := parseRenderQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", pipeline.ContentType(format))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if res.CacheInfo.RenderHit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

type decomposeResponse struct {
	Speed       float64             `json:"speed"`
	Factor      float64             `json:"factor"`
	Knots       int                 `json:"knots"`
	Calm        bool                `json:"calm"`
	Segments    *barb.SegmentCounts `json:"segments,omitempty"`
	Represented int                 `json:"represented"`
	Dropped     int                 `json:"dropped"`
}

func (s *Server) handleDecompose(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	speed, err := requiredFloat(q, "speed")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	factor, err := parseFactor(q)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	d, err := barb.DecomposeSpeed(speed, factor)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := decomposeResponse{
		Speed:       speed,
		Factor:      factor,
		Knots:       d.Knots(),
		Calm:        d.IsCalm(),
		Represented: d.Represented(),
		Dropped:     d.Dropped(),
	}
	if !d.IsCalm() {
		c := d.Counts()
		resp.Segments = &c
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUnits(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, config.Units)
}

// parseRenderQuery reads speed, angle, unit, factor, width, height and
// title.
func parseRenderQuery(q url.Values) (pipeline.Options, error) {
	var opts pipeline.Options
	var err error

	if opts.Speed, err = requiredFloat(q, "speed"); err != nil {
		return opts, err
	}
	if opts.Angle, err = optionalFloat(q, "angle", 0); err != nil {
		return opts, err
	}
	if u := q.Get("unit"); u != "" {
		opts.Overrides.Unit = &u
	}
	if q.Has("factor") {
		f, err := optionalFloat(q, "factor", 0)
		if err != nil {
			return opts, err
		}
		opts.Overrides.ConversionFactor = &f
	}
	for _, dim := range []struct {
		name string
		dst  **float64
	}{
		{"width", &opts.Overrides.Canvas.Width},
		{"height", &opts.Overrides.Canvas.Height},
	} {
		if !q.Has(dim.name) {
			continue
		}
		v, err := optionalFloat(q, dim.name, 0)
		if err != nil {
			return opts, err
		}
		*dim.dst = &v
	}
	opts.Title = q.Get("title")
	return opts, nil
}

// parseFactor resolves the conversion factor of a decompose query. factor
// wins over unit; neither means knots.
func parseFactor(q url.Values) (float64, error) {
	if q.Has("factor") {
		f, err := optionalFloat(q, "factor", 0)
		if err != nil {
			return 0, err
		}
		return f, nil
	}
	if u := q.Get("unit"); u != "" {
		return config.ParseUnit(u)
	}
	return config.DefaultConversionFactor, nil
}

func requiredFloat(q url.Values, name string) (float64, error) {
	if !q.Has(name) {
		return 0, errs.New(errs.ErrCodeInvalidInput, "missing query parameter %q", name)
	}
	return optionalFloat(q, name, 0)
}

func optionalFloat(q url.Values, name string, def float64) (float64, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errs.Wrap(errs.ErrCodeInvalidInput, err, "query parameter %q is not a number", name)
	}
	return v, nil
}
