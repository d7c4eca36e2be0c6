// internal/simulator/setting.go
package simulator

import "github.com/tamzrod/tcm-scripter/internal/catalog"

// ProSetting is one live, clamped setting value bound to its catalog
// definition. All mutation goes through Adjust.
type ProSetting struct {
	def   catalog.Definition
	value float64
}

// NewProSetting creates a setting at its default value.
func NewProSetting(def catalog.Definition) *ProSetting {
	return &ProSetting{def: def, value: def.Default}
}

// Name returns the canonical setting name.
func (p *ProSetting) Name() string {
	return p.def.Name
}

// Definition returns the shared read-only definition.
func (p *ProSetting) Definition() catalog.Definition {
	return p.def
}

// Value returns the current clamped value.
func (p *ProSetting) Value() float64 {
	return p.value
}

// Adjust applies one directional tick. Only Left and Right adjust;
// any other input is a no-op. Returns true iff the clamped value
// changed, false at a saturated boundary.
func (p *ProSetting) Adjust(in Input) bool {
	if in != InputLeft && in != InputRight {
		return false
	}

	step := p.def.Increment
	if in == InputLeft {
		step = -step
	}
	if p.def.Inverted {
		step = -step
	}

	old := p.value
	p.set(old + step)
	return p.value != old
}

// set clamps v into [Min, Max] and stores it.
func (p *ProSetting) set(v float64) {
	if v < p.def.Min {
		v = p.def.Min
	}
	if v > p.def.Max {
		v = p.def.Max
	}
	p.value = v
}
