package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Year,Constituency_Name,Constituency_Type,District_Name,Candidate,Sex,Age,Party,Education,Profession,Votes,Valid_Votes,Electors,Turnout_Percentage,Vote_Share_Percentage,Position,Margin,Margin_Percentage,Terms_Won,Incumbent,Turncoat,Recontest,Prior_Party,Prior_Constituency
2021,Chennai,GEN,Chennai,Anbazhagan,M,54,DMK,Graduate,Advocate,50000,95000,140000,67.85,52.63,1,12000,12.63,2,true,false,true,DMK,Chennai
2021,Chennai,GEN,Chennai,Balan,M,,ADMK,12th Pass,Business,38000,95000,140000,67.85,40.00,2,,,0,false,false,false,,
`

func TestResultsCSV(t *testing.T) {
	records, err := ResultsCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 2)

	winner := records[0]
	assert.Equal(t, 2021, winner.Year)
	assert.Equal(t, "Chennai", winner.Constituency)
	assert.Equal(t, "GEN", winner.ConstituencyType)
	assert.Equal(t, "DMK", winner.Party)
	assert.Equal(t, 50000, winner.Votes)
	assert.Equal(t, 1, winner.Position)
	require.NotNil(t, winner.Age)
	assert.Equal(t, 54, *winner.Age)
	require.NotNil(t, winner.Margin)
	assert.Equal(t, 12000, *winner.Margin)
	require.NotNil(t, winner.VoteSharePct)
	assert.InDelta(t, 52.63, *winner.VoteSharePct, 1e-9)
	assert.True(t, winner.Incumbent.True())
	assert.False(t, winner.Turncoat.True())

	// Blank optional columns become absent, not zero.
	loser := records[1]
	assert.Nil(t, loser.Age)
	assert.Nil(t, loser.Margin)
	assert.Nil(t, loser.MarginPct)
	assert.Equal(t, "", loser.PriorParty)
}

func TestResultsCSVBadNumber(t *testing.T) {
	bad := strings.ReplaceAll(sampleCSV, "50000", "not-a-number")
	_, err := ResultsCSV(strings.NewReader(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Votes")
}

func TestResultsGlob(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tn_2021.csv"), []byte(sampleCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tn_2016.csv"), []byte(sampleCSV), 0o644))

	records, err := ResultsGlob(filepath.Join(dir, "tn_*.csv"))
	require.NoError(t, err)
	assert.Len(t, records, 4)
}

func TestResultsGlobNoMatches(t *testing.T) {
	_, err := ResultsGlob(filepath.Join(t.TempDir(), "*.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "matched no files")
}

const sampleGeoJSON = `{
	"type": "FeatureCollection",
	"features": [
		{
			"type": "Feature",
			"properties": {"AC_NAME": "Chennai (SC)", "AC_NO": 7, "DIST_NAME": "Chennai"},
			"geometry": {"type": "Polygon", "coordinates": [[[80.2, 13.0], [80.3, 13.0], [80.3, 13.1], [80.2, 13.0]]]}
		}
	]
}`

func TestBoundaries(t *testing.T) {
	features, err := Boundaries(strings.NewReader(sampleGeoJSON))
	require.NoError(t, err)
	require.Len(t, features, 1)

	f := features[0]
	assert.Equal(t, "Chennai (SC)", f.Properties.Name)
	assert.Equal(t, 7, f.Properties.ID)
	// Geometry passes through opaque and intact.
	assert.Contains(t, string(f.Geometry), "Polygon")
}

func TestBoundariesRejectsNonCollection(t *testing.T) {
	_, err := Boundaries(strings.NewReader(`{"type": "Feature"}`))
	require.Error(t, err)
}

func TestBoundariesRejectsEmpty(t *testing.T) {
	_, err := Boundaries(strings.NewReader(`{"type": "FeatureCollection", "features": []}`))
	require.Error(t, err)
}
