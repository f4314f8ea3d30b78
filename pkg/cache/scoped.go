package cache

// ScopedKeyer prefixes the keys of another Keyer, giving each tenant of a
// shared backend its own namespace:
//
//	k := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "station:KSEA:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the default keyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) ArtifactKey(configHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(configHash, opts)
}
