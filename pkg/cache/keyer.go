package cache

import "time"

// TTLArtifact is how long rendered artifacts are kept. Output depends only
// on the inputs, so entries never go stale; the TTL bounds disk use.
const TTLArtifact = 7 * 24 * time.Hour

// ArtifactKeyOpts identifies one serialized glyph.
type ArtifactKeyOpts struct {
	Speed  float64 `json:"speed"`
	Angle  float64 `json:"angle"`
	Format string  `json:"format"`
	Scale  float64 `json:"scale,omitempty"` // PNG only
	Title  string  `json:"title,omitempty"`

	Overflow bool `json:"overflow,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey names the bytes of one rendered format under a resolved
	// configuration, given as its hash.
	ArtifactKey(configHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the stock keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) ArtifactKey(configHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", configHash, opts)
}
