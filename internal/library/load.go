// internal/library/load.go
package library

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// LoadFile loads a settings library from a YAML file.
func LoadFile(path string, log *zap.Logger) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("library: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f, log)
}

// Load parses a settings library and prunes empty branches: a
// manufacturer with no models, or a category with no manufacturers,
// is dropped. A library with no cars at all is an error.
func Load(r io.Reader, log *zap.Logger) (*Library, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var lib Library
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&lib); err != nil {
		return nil, fmt.Errorf("library: parse: %w", err)
	}
	lib.log = log

	for catName, cat := range lib.Categories {
		for mfrName, mfr := range cat.Manufacturers {
			if len(mfr.Models) == 0 {
				log.Warn("dropping manufacturer with no models",
					zap.String("category", catName),
					zap.String("manufacturer", mfrName))
				delete(cat.Manufacturers, mfrName)
			}
		}
		if len(cat.Manufacturers) == 0 {
			delete(lib.Categories, catName)
		}
	}

	if len(lib.Categories) == 0 {
		return nil, ErrEmptyLibrary
	}
	return &lib, nil
}
