// Package builder converts raw index database records into normalized OIM
// Sheets. It owns the field rename table, the categorical code resolution,
// and the date classification that together encode the source database's
// conventions.
package builder

import (
	"fmt"
	"strconv"

	"github.com/srappel/oimkit/errors"
	"github.com/srappel/oimkit/lookup"
	"github.com/srappel/oimkit/record"
	"github.com/srappel/oimkit/sheet"
)

// Builder turns RawRecords into Sheets using a shared, read-only lookup
// table. A single Builder serves an entire export run; Build has no side
// effects and no state carries over between records.
type Builder struct {
	lookup *lookup.Table
}

// New creates a Builder over the given lookup table. A nil table uses the
// compiled-in defaults.
func New(table *lookup.Table) *Builder {
	if table == nil {
		table = lookup.Default()
	}
	return &Builder{lookup: table}
}

// codeOf reads a categorical code field, normalizing numeric export formats
// ("2", "2.0") to the canonical table key.
func codeOf(rec record.RawRecord, field string) string {
	v, ok := rec.String(field)
	if !ok {
		return ""
	}
	if i, ok := rec.Int(field); ok {
		return strconv.Itoa(i)
	}
	return v
}

// Build converts one RawRecord into a Sheet.
//
// When flip is true, the label and title values are swapped after the direct
// field copies; this compensates for source records that historically
// transposed the two roles. Date-classifier results are merged last and
// overwrite any attribute set earlier, so a classified date role always takes
// precedence over the verbatim date string.
//
// Build fails with ErrMissingLabel when the resulting label would be empty;
// no partial Sheet is produced.
func (b *Builder) Build(rec record.RawRecord, flip bool) (sheet.Sheet, error) {
	attrs := make(map[string]string)

	// Step 1: direct copies through the rename table.
	for _, m := range directMappings {
		if v, ok := rec.String(m.Source); ok {
			attrs[m.Attribute] = v
		}
	}

	// Step 2: category-specific transforms.
	specials := []struct {
		field     string
		category  lookup.Category
		attribute string
	}{
		{FieldProduction, lookup.CategoryProduction, "color"},
		{FieldPrimeMeridian, lookup.CategoryPrimeMeridian, "primeMer"},
		{FieldProjection, lookup.CategoryProjection, "projection"},
		{FieldISOType, lookup.CategoryISOType, "isoType"},
	}
	for _, sp := range specials {
		label, found, err := b.lookup.Lookup(sp.category, codeOf(rec, sp.field))
		if err != nil {
			return sheet.Sheet{}, errors.Wrap(err, "Builder", "Build", "resolve "+sp.field)
		}
		if found {
			attrs[sp.attribute] = label
		}
	}

	if v, ok := rec.String(FieldISOVal); ok {
		attrs["isoVal"] = v
	}
	if n, ok := rec.Int(FieldScale); ok && n > 0 {
		attrs["scale"] = fmt.Sprintf("1:%d", n)
	}
	if v, ok := rec.String(FieldDate); ok {
		attrs["date"] = v
	}

	// Step 3: optional label/title transposition.
	if flip {
		attrs["label"], attrs["title"] = attrs["title"], attrs["label"]
	}

	// Step 4: classified dates overwrite direct copies.
	for role, year := range ClassifyDates(datePairs(rec)) {
		attrs[string(role)] = year
	}

	// Step 5: construct; the label contract is checked here.
	s := sheet.Sheet{
		Label:      attrs["label"],
		Title:      attrs["title"],
		Publisher:  attrs["publisher"],
		InstCallNo: attrs["instCallNo"],
		Edition:    attrs["edition"],
		Color:      attrs["color"],
		PrimeMer:   attrs["primeMer"],
		Projection: attrs["projection"],
		IsoType:    attrs["isoType"],
		IsoVal:     attrs["isoVal"],
		Scale:      attrs["scale"],
		DatePub:    attrs["datePub"],
		Date:       attrs["date"],
		DateSurvey: attrs["dateSurvey"],
		DatePhoto:  attrs["datePhoto"],
	}

	if w, ok := rec.Float(FieldWest); ok {
		s.West = &w
	}
	if e, ok := rec.Float(FieldEast); ok {
		s.East = &e
	}
	if n, ok := rec.Float(FieldNorth); ok {
		s.North = &n
	}
	if so, ok := rec.Float(FieldSouth); ok {
		s.South = &so
	}

	return sheet.New(s)
}

// datePairs collects the record's year/type observations in declared order.
func datePairs(rec record.RawRecord) []DatePair {
	pairs := make([]DatePair, 0, len(yearFields))
	for _, yf := range yearFields {
		year, _ := rec.String(yf.Year)
		typ, _ := rec.String(yf.Type)
		pairs = append(pairs, DatePair{Year: year, Type: typ})
	}
	return pairs
}

// BuildAll drains a record source, aggregating successes and per-record
// failures into two lists. Per-record failures (missing label) never abort
// the batch; the caller decides whether their presence fails the run. A
// source error or a non-recoverable build error aborts immediately,
// returning the Sheets built so far, which remain valid and usable.
func (b *Builder) BuildAll(src record.Source, flip bool) ([]sheet.Sheet, []*errors.RecordError, error) {
	var sheets []sheet.Sheet
	var failures []*errors.RecordError

	for idx := 0; ; idx++ {
		rec, ok, err := src.Next()
		if err != nil {
			return sheets, failures, err
		}
		if !ok {
			return sheets, failures, nil
		}

		s, err := b.Build(rec, flip)
		if err != nil {
			if errors.IsRecoverable(err) {
				val, _ := rec.String(FieldLabel)
				failures = append(failures, errors.NewRecordError(idx, FieldLabel, val, err))
				continue
			}
			return sheets, failures, err
		}
		sheets = append(sheets, s)
	}
}
