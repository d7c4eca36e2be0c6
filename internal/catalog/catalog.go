// internal/catalog/catalog.go
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Kind tags how a setting's target value is interpreted by the encoder.
type Kind int

const (
	// KindDelta means the target is a signed offset from zero.
	KindDelta Kind = iota

	// KindFixedStart means the target is absolute and the in-game value
	// must first be reset to Start before ticking toward it.
	KindFixedStart
)

// StepSize is the per-tick increment of most settings on the
// normalized scale. One tick moves a setting by one percentage
// point (0.01).
const StepSize = 0.01

// CamberStepSize is the finer camber increment: one tick moves a
// camber setting by a hundredth of a percentage point.
const CamberStepSize = 0.0001

// Definition is the immutable record for one setting.
// The live session and the encoder both read direction, bounds and
// defaults from here and nowhere else.
type Definition struct {
	Name        string
	Min         float64 // lower bound, Min <= Max
	Max         float64 // upper bound
	Increment   float64 // > 0
	Default     float64 // session start value, within [Min, Max]
	Start       float64 // encoder reset reference; meaningful for KindFixedStart only
	Inverted    bool    // true if the increase input lowers the value
	Kind        Kind
	Description string
}

// canonicalOrder is the fixed on-screen order of the settings menu.
// Both the session and the encoder iterate settings in this order.
var canonicalOrder = []string{
	"final_drive",
	"front_power_distrib",
	"grip_front",
	"grip_rear",
	"front_brake_balance",
	"brake_power",
	"load_front",
	"load_rear",
	"spring_front",
	"spring_rear",
	"compression_front",
	"compression_rear",
	"rebound_front",
	"rebound_rear",
	"arb_front",
	"arb_rear",
	"camber_front",
	"camber_rear",
}

// aliases maps sheet column names to canonical setting names.
var aliases = map[string]string{
	"power_distribution": "front_power_distrib",
	"brake_balance":      "front_brake_balance",
}

// specialDefault holds the two settings whose session value does not
// start at zero. Their range is presented high-to-low in the game, so
// the increase input lowers the stored value.
var specialDefault = map[string]float64{
	"front_power_distrib": 0.40,
	"front_brake_balance": 0.40,
}

// ErrEmptyCatalog is returned when no row of the source parses.
var ErrEmptyCatalog = errors.New("catalog: no valid settings found")

// Catalog is the loaded name -> Definition mapping.
type Catalog struct {
	defs map[string]Definition
}

// Get returns the definition for a canonical name.
func (c *Catalog) Get(name string) (Definition, bool) {
	d, ok := c.defs[name]
	return d, ok
}

// Len reports the number of loaded definitions.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// Definitions returns the loaded definitions in canonical order.
func (c *Catalog) Definitions() []Definition {
	out := make([]Definition, 0, len(c.defs))
	for _, name := range canonicalOrder {
		if d, ok := c.defs[name]; ok {
			out = append(out, d)
		}
	}
	return out
}

// Names returns the canonical setting order. The slice is a copy.
func Names() []string {
	out := make([]string, len(canonicalOrder))
	copy(out, canonicalOrder)
	return out
}

// Normalize converts a display or sheet name to its canonical
// snake_case form, applying known aliases.
func Normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, " ", "_")
	n = strings.ReplaceAll(n, "-", "_")
	if canon, ok := aliases[n]; ok {
		return canon
	}
	return n
}

// Select returns the definitions for the requested names, in canonical
// order, dropping names the catalog does not know. Requested names are
// normalized first.
func (c *Catalog) Select(names []string) []Definition {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[Normalize(n)] = true
	}

	var out []Definition
	for _, name := range canonicalOrder {
		if !want[name] {
			continue
		}
		if d, ok := c.defs[name]; ok {
			out = append(out, d)
		}
	}
	return out
}

// validate checks a definition's internal consistency before it is
// admitted into the catalog.
func validate(d Definition) error {
	if d.Name == "" {
		return errors.New("catalog: empty setting name")
	}
	if d.Min > d.Max {
		return fmt.Errorf("catalog: %s: min %v > max %v", d.Name, d.Min, d.Max)
	}
	if d.Increment <= 0 {
		return fmt.Errorf("catalog: %s: increment must be > 0", d.Name)
	}
	if d.Default < d.Min || d.Default > d.Max {
		return fmt.Errorf("catalog: %s: default %v outside [%v, %v]", d.Name, d.Default, d.Min, d.Max)
	}
	return nil
}
