package config

import (
	"sort"
	"strings"

	"github.com/matzehuels/windbarb/pkg/barb"
	errs "github.com/matzehuels/windbarb/pkg/errors"
)

// Units maps unit names to their conversion factor into knots.
var Units = map[string]float64{
	"kt":    barb.Knots,
	"kn":    barb.Knots,
	"knots": barb.Knots,
	"ms":    barb.MetersPerSecond,
	"m/s":   barb.MetersPerSecond,
	"kmh":   barb.KilometersPerHr,
	"km/h":  barb.KilometersPerHr,
	"mph":   barb.MilesPerHour,
}

// ParseUnit returns the conversion factor for a unit name (case-insensitive).
func ParseUnit(name string) (float64, error) {
	f, ok := Units[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, errs.New(errs.ErrCodeInvalidConfiguration,
			"unknown unit %q (must be one of %s)", name, strings.Join(UnitNames(), ", "))
	}
	return f, nil
}

// UnitNames returns the accepted unit names, sorted.
func UnitNames() []string {
	names := make([]string, 0, len(Units))
	for n := range Units {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
