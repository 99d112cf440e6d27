package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tn-election-atlas/internal/model"
)

// Boundaries parses the constituency boundary FeatureCollection.
// Geometry is kept as raw JSON; the core never interprets it.
func Boundaries(r io.Reader) ([]model.Feature, error) {
	var fc model.FeatureCollection
	if err := json.NewDecoder(r).Decode(&fc); err != nil {
		return nil, fmt.Errorf("parse boundary geojson: %w", err)
	}
	if fc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("boundary geojson: expected FeatureCollection, got %q", fc.Type)
	}
	if len(fc.Features) == 0 {
		return nil, fmt.Errorf("boundary geojson: no features")
	}
	return fc.Features, nil
}

// BoundariesFile loads the boundary dataset from disk.
func BoundariesFile(path string) ([]model.Feature, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open boundary file: %w", err)
	}
	defer f.Close()
	return Boundaries(f)
}
