package mapdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEnglish(t *testing.T) {
	assert.True(t, IsEnglish("united kingdom"))
	assert.True(t, IsEnglish("hong-kong_2"))
	assert.False(t, IsEnglish("北京"))
	assert.False(t, IsEnglish("São Paulo"))
	assert.False(t, IsEnglish(""))
}

func TestDefaultStoreLoadsBundledData(t *testing.T) {
	store, err := Default()
	require.NoError(t, err)

	name, coord, err := store.City("北京")
	require.NoError(t, err)
	assert.Equal(t, "北京", name)
	assert.InDelta(t, 116.46, coord.Lng(), 1e-9)
	assert.InDelta(t, 39.92, coord.Lat(), 1e-9)

	path, err := store.Map("北京")
	require.NoError(t, err)
	assert.Equal(t, "maps/beijing.js", path)

	path, err = store.Map("beijing")
	require.NoError(t, err)
	assert.Equal(t, "maps/beijing.js", path)
}

func TestLoadMapsDerivesEnglishNames(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.LoadMaps(strings.NewReader(`{
		"广州": ["maps/440100_guangzhou", "js"],
		"英国": ["maps/united_kingdom", "js"],
		"主题": ["themes/dark", "js"]
	}`)))

	path, err := store.Map("guangzhou")
	require.NoError(t, err)
	assert.Equal(t, "maps/440100_guangzhou.js", path)

	path, err = store.Map("United Kingdom")
	require.NoError(t, err)
	assert.Equal(t, "maps/united_kingdom.js", path)

	_, err = store.Map("主题")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCloseMatches(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.LoadCities(strings.NewReader(`{"London": [-0.12, 51.5], "Paris": [2.35, 48.85]}`)))

	name, _, err := store.City("lond")
	require.NoError(t, err)
	assert.Equal(t, "London", name)

	name, _, err = store.City("Pariss")
	require.NoError(t, err)
	assert.Equal(t, "Paris", name)

	_, _, err = store.City("Xi")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadCitiesRejectsBadPairs(t *testing.T) {
	store := NewStore()
	err := store.LoadCities(strings.NewReader(`{"Nowhere": [1]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nowhere")
}

func TestSetCityAndCustomMaps(t *testing.T) {
	store := NewStore()
	store.SetCity("Atlantis", Coord{-30, 31})
	name, coord, err := store.City("atlantis")
	require.NoError(t, err)
	assert.Equal(t, "Atlantis", name)
	assert.Equal(t, Coord{-30, 31}, coord)

	require.Error(t, store.RegisterMap(CustomMap{Name: "empty"}))
	geo := map[string]any{"type": "FeatureCollection", "features": []any{}}
	require.NoError(t, store.RegisterMap(CustomMap{Name: "island", GeoJSON: geo}))

	m, ok := store.CustomMap("island")
	require.True(t, ok)
	assert.Equal(t, geo, m.GeoJSON)
}

func TestSearch(t *testing.T) {
	store, err := Default()
	require.NoError(t, err)

	results := store.SearchMaps("shan", 3)
	require.NotEmpty(t, results)
	assert.Equal(t, "shanxi", results[0].Name)
	assert.LessOrEqual(t, len(results), 3)

	results = store.SearchCities("", 2)
	assert.Len(t, results, 2)

	assert.Empty(t, store.SearchCities("北京", 0))
}
