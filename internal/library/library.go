// internal/library/library.go
package library

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tamzrod/tcm-scripter/internal/catalog"
	"go.uber.org/zap"
)

// Lookup failures are distinguished per level; an empty result is
// never returned silently.
var (
	ErrCategoryNotFound     = errors.New("library: category not found")
	ErrManufacturerNotFound = errors.New("library: manufacturer not found")
	ErrModelNotFound        = errors.New("library: model not found")

	// ErrNoUsableValues means every setting of a car was a placeholder
	// or non-numeric.
	ErrNoUsableValues = errors.New("library: no usable setting values")

	// ErrEmptyLibrary means the source contained no cars at all.
	ErrEmptyLibrary = errors.New("library: no cars found")
)

// placeholders are sheet artifacts that mean "setting not available".
var placeholders = map[string]bool{
	"":    true,
	"--":  true,
	"nan": true,
	"n/a": true,
}

// Library is the normalized community settings sheet:
// category -> manufacturer -> model -> setting targets.
type Library struct {
	Categories map[string]Category `yaml:"categories"`

	log *zap.Logger
}

type Category struct {
	Manufacturers map[string]Manufacturer `yaml:"manufacturers"`
}

type Manufacturer struct {
	Models map[string]Model `yaml:"models"`
}

// Model holds raw setting values as they appear in the sheet. Values
// may be numbers, numeric strings, or placeholders.
type Model struct {
	Settings map[string]any `yaml:"settings"`
}

// CategoryNames returns the available categories, sorted.
func (l *Library) CategoryNames() []string {
	out := make([]string, 0, len(l.Categories))
	for name := range l.Categories {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// CarListing is one manufacturer with its models, for display.
type CarListing struct {
	Manufacturer string
	Models       []string
}

// Cars lists the cars of one category, grouped by manufacturer and
// sorted at both levels.
func (l *Library) Cars(category string) ([]CarListing, error) {
	cat, ok := l.Categories[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCategoryNotFound, category)
	}

	out := make([]CarListing, 0, len(cat.Manufacturers))
	for name, mfr := range cat.Manufacturers {
		models := make([]string, 0, len(mfr.Models))
		for m := range mfr.Models {
			models = append(models, m)
		}
		sort.Strings(models)
		out = append(out, CarListing{Manufacturer: name, Models: models})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Manufacturer < out[j].Manufacturer
	})
	return out, nil
}

// CarSettings resolves one car to a normalized name -> target map.
// Placeholder and non-numeric values skip that single setting with a
// warning; a car with nothing usable is an error.
func (l *Library) CarSettings(category, manufacturer, model string) (map[string]float64, error) {
	cat, ok := l.Categories[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCategoryNotFound, category)
	}
	mfr, ok := cat.Manufacturers[manufacturer]
	if !ok {
		return nil, fmt.Errorf("%w: %q in category %q", ErrManufacturerNotFound, manufacturer, category)
	}
	mdl, ok := mfr.Models[model]
	if !ok {
		return nil, fmt.Errorf("%w: %q for manufacturer %q in category %q", ErrModelNotFound, model, manufacturer, category)
	}

	out := make(map[string]float64, len(mdl.Settings))
	for name, raw := range mdl.Settings {
		v, ok := numeric(raw)
		if !ok {
			l.log.Warn("skipping non-numeric setting value",
				zap.String("model", model),
				zap.String("setting", name),
				zap.Any("value", raw))
			continue
		}
		out[catalog.Normalize(name)] = v
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s / %s / %s", ErrNoUsableValues, category, manufacturer, model)
	}
	return out, nil
}

// numeric coerces a raw sheet value to a float, rejecting placeholders.
func numeric(raw any) (float64, bool) {
	switch v := raw.(type) {
	case int:
		return float64(v), true
	case float64:
		return v, true
	case string:
		s := strings.TrimSpace(v)
		if placeholders[strings.ToLower(s)] {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
