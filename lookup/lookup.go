// Package lookup provides the static code tables of the source index
// database: human-readable labels for production, prime meridian, projection,
// and ISO type codes. Tables load once at process start and are read-only
// afterwards; unknown codes are tolerated, unknown categories are not.
package lookup

import (
	"sort"

	"github.com/srappel/oimkit/errors"
)

// Category identifies one of the static code tables.
type Category string

const (
	// CategoryProduction maps production codes to color/reproduction labels
	CategoryProduction Category = "production"
	// CategoryPrimeMeridian maps prime meridian codes to meridian names
	CategoryPrimeMeridian Category = "prime_meridian"
	// CategoryProjection maps projection codes to projection names
	CategoryProjection Category = "projection"
	// CategoryISOType maps ISO bibliographic type codes to type labels
	CategoryISOType Category = "iso_type"
)

// String returns the string representation of the category
func (c Category) String() string {
	return string(c)
}

// Table holds the four code-to-label mappings used during sheet building.
// A Table is built once at process start and is read-only afterwards, so a
// single instance may be shared by any number of builders.
type Table struct {
	tables map[Category]map[string]string
}

// Default production codes describe how a sheet was reproduced or colored.
var defaultProduction = map[string]string{
	"0": "uncolored",
	"1": "partly colored",
	"2": "colored",
	"3": "photocopy",
	"4": "photographic print",
	"5": "negative photocopy",
	"6": "negative microform",
	"7": "positive microform",
	"8": "digital raster",
	"9": "digital vector",
}

var defaultPrimeMeridian = map[string]string{
	"0": "Greenwich",
	"1": "Paris",
	"2": "Ferro",
	"3": "Madrid",
	"4": "Rome",
	"5": "Athens",
	"6": "Washington D.C.",
	"7": "Cadiz",
	"8": "Pulkovo",
	"9": "other",
}

var defaultProjection = map[string]string{
	"0": "unknown",
	"1": "polyconic",
	"2": "transverse Mercator",
	"3": "Lambert conformal conic",
	"4": "UTM",
	"5": "Gauss-Kruger",
	"6": "Bonne",
	"7": "sinusoidal",
	"8": "other",
}

var defaultISOType = map[string]string{
	"0": "monograph",
	"1": "serial",
	"2": "series",
	"3": "set",
	"9": "unknown",
}

// Default returns a Table populated with the compiled-in code mappings.
func Default() *Table {
	return &Table{
		tables: map[Category]map[string]string{
			CategoryProduction:    defaultProduction,
			CategoryPrimeMeridian: defaultPrimeMeridian,
			CategoryProjection:    defaultProjection,
			CategoryISOType:       defaultISOType,
		},
	}
}

// Lookup resolves a code within a category to its human-readable label.
//
// An undeclared category is a wiring error and returns ErrUnknownCategory.
// An unknown or empty code within a declared category is tolerated: source
// data is known to contain sparse and legacy values, so the result is simply
// ("", false, nil) and the caller omits the attribute.
func (t *Table) Lookup(category Category, code string) (string, bool, error) {
	table, ok := t.tables[category]
	if !ok {
		return "", false, errors.Wrap(errors.ErrUnknownCategory, "Table", "Lookup", "resolve category "+string(category))
	}
	if code == "" {
		return "", false, nil
	}
	label, ok := table[code]
	return label, ok, nil
}

// Categories returns the declared category names in sorted order.
func (t *Table) Categories() []Category {
	cats := make([]Category, 0, len(t.tables))
	for c := range t.tables {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}
