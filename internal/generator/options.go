package generator

import (
	"errors"
	"fmt"
	"time"
)

// Preset names a bundle of default entity counts.
type Preset string

const (
	PresetSmall  Preset = "small"
	PresetMedium Preset = "medium"
	PresetLarge  Preset = "large"
)

// ErrUnknownPreset is returned for a preset name outside small/medium/large.
var ErrUnknownPreset = errors.New("generator: unknown preset")

type presetCounts struct {
	Products  int
	Vendors   int
	Customers int
	Locations int
}

var presets = map[Preset]presetCounts{
	PresetSmall:  {Products: 100, Vendors: 15, Customers: 20, Locations: 3},
	PresetMedium: {Products: 500, Vendors: 50, Customers: 75, Locations: 4},
	PresetLarge:  {Products: 1000, Vendors: 100, Customers: 150, Locations: 5},
}

// Options configures one generation run. Explicit counts override the preset
// defaults; an empty preset means small. A zero Seed falls back to the
// current time, so callers wanting reproducible output must set it.
type Options struct {
	Preset    Preset
	Products  int
	Vendors   int
	Customers int
	Locations int
	Seed      int64

	// Now anchors all generated dates and timestamps. Zero means time.Now.
	Now time.Time
}

// resolve validates the options and fills unset counts from the preset.
// Vendor and customer counts are clamped to their name-pool sizes: the pools
// are drawn without replacement, so a larger request silently yields the pool
// size rather than an error.
func (o Options) resolve() (Options, error) {
	preset := o.Preset
	if preset == "" {
		preset = PresetSmall
	}
	defaults, ok := presets[preset]
	if !ok {
		return Options{}, fmt.Errorf("%w: %q", ErrUnknownPreset, o.Preset)
	}

	if o.Products < 0 || o.Vendors < 0 || o.Customers < 0 || o.Locations < 0 {
		return Options{}, errors.New("generator: entity counts must not be negative")
	}

	if o.Products == 0 {
		o.Products = defaults.Products
	}
	if o.Vendors == 0 {
		o.Vendors = defaults.Vendors
	}
	if o.Customers == 0 {
		o.Customers = defaults.Customers
	}
	if o.Locations == 0 {
		o.Locations = defaults.Locations
	}

	if o.Vendors > len(vendorTemplates) {
		o.Vendors = len(vendorTemplates)
	}
	if o.Customers > len(customerNames) {
		o.Customers = len(customerNames)
	}
	if o.Locations > len(locationTemplates) {
		o.Locations = len(locationTemplates)
	}

	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	return o, nil
}
