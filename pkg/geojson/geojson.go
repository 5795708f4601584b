// Package geojson exposes trail locations for the map tab.
package geojson

import (
	"github.com/goccy/go-json"

	"aporo/pkg/models"
)

// FeatureCollection represents a GeoJSON FeatureCollection.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature represents a GeoJSON Feature.
type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// Geometry is a GeoJSON Point geometry.
type Geometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// ToFeature converts a trail's trailhead to a Point feature. GeoJSON orders
// coordinates [lng, lat].
func ToFeature(t models.Trail) Feature {
	return Feature{
		Type: "Feature",
		Geometry: Geometry{
			Type:        "Point",
			Coordinates: [2]float64{t.Coordinates.Lng, t.Coordinates.Lat},
		},
		Properties: map[string]any{
			"id":         t.ID,
			"name":       t.Name,
			"difficulty": t.Difficulty,
			"distance":   t.Distance,
		},
	}
}

// ToFeatureCollection converts trails to a FeatureCollection in catalog order.
func ToFeatureCollection(trails []models.Trail) *FeatureCollection {
	features := make([]Feature, 0, len(trails))
	for _, t := range trails {
		features = append(features, ToFeature(t))
	}
	return &FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}

// ToJSON serializes a FeatureCollection to JSON.
func (fc *FeatureCollection) ToJSON() ([]byte, error) {
	return json.Marshal(fc)
}

// ToJSONIndent serializes a FeatureCollection to indented JSON.
func (fc *FeatureCollection) ToJSONIndent() ([]byte, error) {
	return json.MarshalIndent(fc, "", "  ")
}
