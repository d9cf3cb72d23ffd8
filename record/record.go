// Package record defines the raw tabular input to the sheet-building
// pipeline and the sources that produce it.
//
// A RawRecord is one flat row from a bibliographic index database: an ordered
// mapping from source field name to a scalar value. Records are immutable
// once constructed; all access goes through accessors, and an empty source
// cell is indistinguishable from an absent field.
package record

import (
	"strconv"
)

// RawRecord is one source row, keyed by source field name.
// Field order follows the source's declared column order.
type RawRecord struct {
	fields []string
	values map[string]string
}

// NewRawRecord zips field names with their values. Values beyond the field
// list are dropped; missing trailing values and empty strings both read back
// as absent.
func NewRawRecord(fields, values []string) RawRecord {
	m := make(map[string]string, len(fields))
	for i, name := range fields {
		if i >= len(values) {
			break
		}
		if values[i] == "" {
			continue
		}
		m[name] = values[i]
	}
	return RawRecord{fields: fields, values: m}
}

// Fields returns the source column order.
func (r RawRecord) Fields() []string {
	out := make([]string, len(r.fields))
	copy(out, r.fields)
	return out
}

// Has reports whether the named field carries a value.
func (r RawRecord) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// String returns the named field's value and whether it was present.
func (r RawRecord) String(name string) (string, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Float parses the named field as a number. Returns false when the field is
// absent or not numeric.
func (r RawRecord) Float(name string) (float64, bool) {
	v, ok := r.values[name]
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Int parses the named field as an integer, tolerating a trailing decimal
// point as emitted by some database exports ("1995.0").
func (r RawRecord) Int(name string) (int, bool) {
	v, ok := r.values[name]
	if !ok {
		return 0, false
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// Source is a finite, ordered supplier of RawRecords.
//
// Next returns the next record and true, or a zero record and false when the
// source is exhausted. A non-nil error aborts iteration. Close releases the
// underlying resource and is safe to call after exhaustion.
type Source interface {
	Next() (RawRecord, bool, error)
	Close() error
}
