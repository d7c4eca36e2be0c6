// internal/encoder/setup.go
package encoder

import (
	"errors"
	"math"

	"github.com/tamzrod/tcm-scripter/internal/catalog"
	"github.com/tamzrod/tcm-scripter/internal/simulator"
)

// ErrNoUsableSettings is returned when a target configuration contains
// nothing the encoder recognizes.
var ErrNoUsableSettings = errors.New("encoder: no usable settings in configuration")

// CarSetting is one setting of a target configuration, resolved
// against its catalog definition.
type CarSetting struct {
	Name      string
	Target    float64 // fraction scale, clamped into the definition's bounds
	Increment float64
	Start     float64 // fixed reset reference when Reset is true
	Reset     bool    // value must be reset to Start before ticking
	kind      catalog.Kind
}

// Ticks returns the signed tick count for this setting.
// Fixed-start settings count from Start; positive means the physical
// input that decreases the live value from the start, regardless of
// the setting's sign convention. Delta settings count from zero;
// positive means the increase input. Rounding is nearest, ties away
// from zero (math.Round), deliberately lossy below half an increment.
func (s CarSetting) Ticks() int {
	if s.kind == catalog.KindFixedStart {
		return int(math.Round((s.Start - s.Target) / s.Increment))
	}
	return int(math.Round(s.Target / s.Increment))
}

// Keystrokes expands the tick count into directional inputs, using the
// same direction model as the live session.
func (s CarSetting) Keystrokes() []simulator.Input {
	n := s.Ticks()
	dir := simulator.InputRight
	if n < 0 {
		dir = simulator.InputLeft
		n = -n
	}
	if n == 0 {
		return nil
	}

	out := make([]simulator.Input, n)
	for i := range out {
		out[i] = dir
	}
	return out
}

// CarSetup is a complete encoded target configuration: the included
// settings in canonical catalog order plus the names that were
// auto-skipped. Built once; never mutated afterward.
type CarSetup struct {
	Settings    []CarSetting
	AutoSkipped []string
}

// NewCarSetup resolves a normalized name -> target map against the
// catalog. Names are matched case-insensitively with spaces and
// underscores normalized; anything absent or unrecognized lands in
// AutoSkipped (diagnostic only). Caller-named settings in skip are
// excluded silently, without an AutoSkipped entry. Target values are
// percentages, the unit the settings sheets use; they are scaled to
// the fraction scale and clamped into the definition's bounds, so a
// target past a range edge saturates exactly where the live session
// would.
func NewCarSetup(cat *catalog.Catalog, targets map[string]float64, skip []string) (*CarSetup, error) {
	norm := make(map[string]float64, len(targets))
	for name, v := range targets {
		norm[catalog.Normalize(name)] = v
	}

	skipped := make(map[string]bool, len(skip))
	for _, name := range skip {
		skipped[catalog.Normalize(name)] = true
	}

	setup := &CarSetup{}

	for _, name := range catalog.Names() {
		if skipped[name] {
			continue
		}

		def, known := cat.Get(name)
		v, present := norm[name]
		if !known || !present {
			setup.AutoSkipped = append(setup.AutoSkipped, name)
			continue
		}

		v /= 100
		if v < def.Min {
			v = def.Min
		}
		if v > def.Max {
			v = def.Max
		}

		setup.Settings = append(setup.Settings, CarSetting{
			Name:      def.Name,
			Target:    v,
			Increment: def.Increment,
			Start:     def.Start,
			Reset:     def.Kind == catalog.KindFixedStart,
			kind:      def.Kind,
		})
	}

	if len(setup.Settings) == 0 {
		return nil, ErrNoUsableSettings
	}
	return setup, nil
}
