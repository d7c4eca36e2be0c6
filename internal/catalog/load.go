// internal/catalog/load.go
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

//go:embed data/pro_settings.csv
var defaultCSV []byte

// Default loads the embedded pro settings description sheet.
func Default(log *zap.Logger) (*Catalog, error) {
	return Load(bytes.NewReader(defaultCSV), log)
}

// LoadFile loads a catalog from a CSV file on disk.
func LoadFile(path string, log *zap.Logger) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f, log)
}

// Load parses catalog rows from CSV.
// Expected columns: a settings name column (header contains
// "Pro Settings"), "Possible Values" and "Description".
// Malformed rows are logged and skipped; loading fails only when the
// resulting catalog would be empty.
func Load(r io.Reader, log *zap.Logger) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("catalog: read header: %w", err)
	}

	nameCol, rangeCol, descCol := -1, -1, -1
	for i, col := range header {
		col = strings.TrimPrefix(col, "\ufeff") // sheets export a BOM
		switch {
		case strings.Contains(col, "Pro Settings"):
			nameCol = i
		case strings.TrimSpace(col) == "Possible Values":
			rangeCol = i
		case strings.TrimSpace(col) == "Description":
			descCol = i
		}
	}
	if nameCol < 0 || rangeCol < 0 {
		return nil, fmt.Errorf("catalog: missing required columns in header %v", header)
	}

	defs := make(map[string]Definition)

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("catalog: read row: %w", err)
		}
		if nameCol >= len(rec) || rangeCol >= len(rec) {
			log.Warn("catalog row missing fields", zap.Strings("row", rec))
			continue
		}

		row := Row{
			Name:  rec[nameCol],
			Range: rec[rangeCol],
		}
		if descCol >= 0 && descCol < len(rec) {
			row.Description = rec[descCol]
		}

		d, err := ParseRow(row)
		if err != nil {
			log.Warn("skipping catalog row",
				zap.String("name", row.Name),
				zap.Error(err))
			continue
		}

		if _, dup := defs[d.Name]; dup {
			log.Warn("duplicate catalog row", zap.String("name", d.Name))
			continue
		}
		defs[d.Name] = d
	}

	if len(defs) == 0 {
		return nil, ErrEmptyCatalog
	}
	return &Catalog{defs: defs}, nil
}
