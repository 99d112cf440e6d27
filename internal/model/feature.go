package model

import "encoding/json"

// Feature is one constituency boundary from the GeoJSON dataset. The
// core only consumes its display name and numeric identifier; geometry
// passes through opaquely for map rendering.
type Feature struct {
	Type       string            `json:"type"`
	Properties FeatureProperties `json:"properties"`
	Geometry   json.RawMessage   `json:"geometry"`
}

// FeatureProperties carries the boundary dataset's attributes for one
// assembly constituency.
type FeatureProperties struct {
	Name     string `json:"AC_NAME"`
	ID       int    `json:"AC_NO"`
	District string `json:"DIST_NAME,omitempty"`
}

// FeatureCollection is the boundary dataset as loaded.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}
