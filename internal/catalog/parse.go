// internal/catalog/parse.go
package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Row is one raw catalog source row before parsing.
type Row struct {
	Name        string // display name, e.g. "Power Distribution"
	Range       string // e.g. "60% to 20%"
	Description string
}

// parseRange parses a textual percentage range.
// Contract: split on the literal " to ", strip a trailing '%' from each
// side, divide by 100. A range presented high-to-low (60% to 20%) is
// reported with descending=true; bounds are returned normalized so that
// lo <= hi.
func parseRange(s string) (lo, hi float64, descending bool, err error) {
	parts := strings.Split(s, " to ")
	if len(parts) != 2 {
		return 0, 0, false, fmt.Errorf("catalog: range %q: expected \"<min>%% to <max>%%\"", s)
	}

	a, err := parsePercent(parts[0])
	if err != nil {
		return 0, 0, false, fmt.Errorf("catalog: range %q: %w", s, err)
	}
	b, err := parsePercent(parts[1])
	if err != nil {
		return 0, 0, false, fmt.Errorf("catalog: range %q: %w", s, err)
	}

	if a > b {
		return b, a, true, nil
	}
	return a, b, false, nil
}

func parsePercent(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad percentage %q", s)
	}
	return v / 100, nil
}

// ParseRow converts one source row into a Definition.
// Inversion, non-zero defaults, the fixed-start kind and the camber
// step are decided here by canonical name; they are not discoverable
// from the row text.
func ParseRow(r Row) (Definition, error) {
	name := Normalize(r.Name)
	if name == "" {
		return Definition{}, fmt.Errorf("catalog: row with empty name")
	}

	lo, hi, _, err := parseRange(r.Range)
	if err != nil {
		return Definition{}, err
	}

	d := Definition{
		Name:        name,
		Min:         lo,
		Max:         hi,
		Increment:   StepSize,
		Kind:        KindDelta,
		Description: strings.TrimSpace(r.Description),
	}
	if strings.HasPrefix(name, "camber_") {
		d.Increment = CamberStepSize
	}

	if def, ok := specialDefault[name]; ok {
		d.Default = def
		d.Inverted = true
		d.Kind = KindFixedStart
		// The game resets these to the top of their presented range.
		d.Start = hi
	}

	if err := validate(d); err != nil {
		return Definition{}, err
	}
	return d, nil
}
