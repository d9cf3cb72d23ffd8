// Package sheet defines the normalized cartographic index entity and its
// GeoJSON serialization.
//
// A Sheet is one record of the OpenIndexMaps (OIM) specification: a single
// physical or historical map sheet with a required label, an optional
// bounding box, and a set of optional descriptive attributes. Sheets
// aggregate into an IndexMap, which serializes to a GeoJSON
// FeatureCollection with one Feature per Sheet in insertion order.
package sheet

import (
	"github.com/srappel/oimkit/errors"
)

// Sheet is one normalized index-map record. The zero value of every field
// except Label means "absent"; absent attributes are omitted from the
// serialized Feature entirely. Construct through New, which enforces the
// label requirement, and treat the value as immutable afterwards.
type Sheet struct {
	// Label is the sheet identifier shown on the index map. Required.
	Label string

	Title      string
	Publisher  string
	InstCallNo string

	// Edition holds the edition number, or the edition date when the
	// source's date classification yields one (the OIM attribute is shared).
	Edition string

	// Bounding coordinates in decimal degrees. Geometry is emitted only when
	// all four are present; no geometric validity check beyond presence.
	West  *float64
	East  *float64
	North *float64
	South *float64

	Color      string
	PrimeMer   string
	Projection string
	IsoType    string
	IsoVal     string

	// Scale is preformatted as "1:<denominator>".
	Scale string

	// Date attributes, each a year held as text.
	DatePub    string
	Date       string
	DateSurvey string
	DatePhoto  string
}

// New validates and returns a Sheet. The only construction-time contract is
// a non-empty label; everything else is optional.
func New(s Sheet) (Sheet, error) {
	if s.Label == "" {
		return Sheet{}, errors.ErrMissingLabel
	}
	return s, nil
}

// HasBounds reports whether all four bounding coordinates are present.
func (s Sheet) HasBounds() bool {
	return s.West != nil && s.East != nil && s.North != nil && s.South != nil
}

// Feature serializes the Sheet as a GeoJSON Feature. Geometry is the closed
// four-corner ring of the bounding box when all coordinates are present and
// null otherwise. Properties carry every populated attribute under its OIM
// name; absent attributes are omitted rather than emitted as null.
func (s Sheet) Feature() Feature {
	props := map[string]any{"label": s.Label}

	setString := func(key, val string) {
		if val != "" {
			props[key] = val
		}
	}
	setString("title", s.Title)
	setString("publisher", s.Publisher)
	setString("instCallNo", s.InstCallNo)
	setString("edition", s.Edition)
	setString("color", s.Color)
	setString("primeMer", s.PrimeMer)
	setString("projection", s.Projection)
	setString("isoType", s.IsoType)
	setString("isoVal", s.IsoVal)
	setString("scale", s.Scale)
	setString("datePub", s.DatePub)
	setString("date", s.Date)
	setString("dateSurvey", s.DateSurvey)
	setString("datePhoto", s.DatePhoto)

	var geom *Geometry
	if s.HasBounds() {
		geom = boundsPolygon(*s.West, *s.East, *s.North, *s.South)
	}

	return Feature{
		Type:       "Feature",
		Geometry:   geom,
		Properties: props,
	}
}
