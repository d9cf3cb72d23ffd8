package sheet

import (
	"encoding/json"
	"io"
	"os"

	"github.com/srappel/oimkit/errors"
)

// IndexMap is an ordered collection of Sheets for one export run.
// Insertion order equals input record order and is preserved through
// serialization. Sheets are not deduplicated.
type IndexMap struct {
	sheets []Sheet
}

// NewIndexMap returns an empty IndexMap.
func NewIndexMap() *IndexMap {
	return &IndexMap{}
}

// Add appends a Sheet.
func (m *IndexMap) Add(s Sheet) {
	m.sheets = append(m.sheets, s)
}

// Len returns the number of Sheets.
func (m *IndexMap) Len() int {
	return len(m.sheets)
}

// Sheets returns the Sheets in insertion order.
func (m *IndexMap) Sheets() []Sheet {
	out := make([]Sheet, len(m.sheets))
	copy(out, m.sheets)
	return out
}

// FeatureCollection serializes every Sheet into a GeoJSON FeatureCollection
// in insertion order. Serialization is total: given Sheets that passed New,
// it cannot fail.
func (m *IndexMap) FeatureCollection() FeatureCollection {
	features := make([]Feature, 0, len(m.sheets))
	for _, s := range m.sheets {
		features = append(features, s.Feature())
	}
	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}

// MarshalJSON implements json.Marshaler.
func (m *IndexMap) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.FeatureCollection())
}

// WriteTo streams the serialized FeatureCollection to w as UTF-8 JSON.
func (m *IndexMap) WriteTo(w io.Writer) (int64, error) {
	data, err := json.MarshalIndent(m.FeatureCollection(), "", "  ")
	if err != nil {
		return 0, errors.Wrap(err, "IndexMap", "WriteTo", "marshal feature collection")
	}
	data = append(data, '\n')
	n, err := w.Write(data)
	if err != nil {
		return int64(n), errors.Wrap(err, "IndexMap", "WriteTo", "write document")
	}
	return int64(n), nil
}

// WriteFile writes the serialized FeatureCollection to path, creating or
// truncating the file. The file is closed on every exit path.
func (m *IndexMap) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "IndexMap", "WriteFile", "create output file")
	}
	defer func() { _ = f.Close() }()

	if _, err := m.WriteTo(f); err != nil {
		return err
	}
	return f.Close()
}
