package config

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/windbarb/pkg/errors"
)

// Decode reads TOML overrides from r. Unknown keys are rejected so that a
// misspelled knob does not silently fall back to its default.
func Decode(r io.Reader) (Overrides, error) {
	var o Overrides
	md, err := toml.NewDecoder(r).Decode(&o)
	if err != nil {
		return Overrides{}, errs.Wrap(errs.ErrCodeInvalidConfiguration, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Overrides{}, errs.New(errs.ErrCodeInvalidConfiguration, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	return o, nil
}

// Load reads TOML overrides from the file at path.
func Load(path string) (Overrides, error) {
	if err := errs.ValidatePath(path); err != nil {
		return Overrides{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Overrides{}, errs.Wrap(errs.ErrCodeNotFound, err, "config file %s", path)
		}
		return Overrides{}, errs.Wrap(errs.ErrCodeInvalidPath, err, "open config %s", path)
	}
	defer f.Close()
	return Decode(f)
}

// Encode writes o as TOML. Only set fields are written.
func Encode(w io.Writer, o Overrides) error {
	return toml.NewEncoder(w).Encode(o)
}
