package sheet

// Feature represents a GeoJSON Feature.
type Feature struct {
	Type       string         `json:"type"`
	Geometry   *Geometry      `json:"geometry"` // nil marshals as null
	Properties map[string]any `json:"properties"`
}

// Geometry represents a GeoJSON Polygon geometry. Only polygons occur in
// index maps, so the coordinate shape is fixed at one ring level.
type Geometry struct {
	Type        string         `json:"type"`
	Coordinates [][][2]float64 `json:"coordinates"`
}

// FeatureCollection represents a GeoJSON FeatureCollection.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// boundsPolygon builds the closed four-corner ring of a bounding box.
// Coordinate order is [longitude, latitude]; the ring starts and ends at the
// northwest corner.
func boundsPolygon(west, east, north, south float64) *Geometry {
	return &Geometry{
		Type: "Polygon",
		Coordinates: [][][2]float64{{
			{west, north},
			{east, north},
			{east, south},
			{west, south},
			{west, north},
		}},
	}
}
