package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/mapvendor/internal/asset"
)

func group(name string) asset.Group {
	return asset.Group{Name: name, Scripts: []asset.Ref{{Name: name, URL: "https://x/" + name + ".js"}}}
}

func TestAdd(t *testing.T) {
	r := New()
	require.NoError(t, r.Add(group("Leaflet")))

	t.Run("duplicate name is rejected", func(t *testing.T) {
		err := r.Add(group("leaflet")) // case-insensitive clash
		assert.ErrorContains(t, err, "duplicate asset group")
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		err := r.Add(asset.Group{})
		assert.ErrorContains(t, err, "empty name")
	})
}

func TestLookupCaseInsensitive(t *testing.T) {
	r := New()
	require.NoError(t, r.Add(group("HeatMap")))

	for _, name := range []string{"heatmap", "HEATMAP", "HeatMap"} {
		g, ok := r.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, "HeatMap", g.Name)
	}

	_, ok := r.Lookup("unknown")
	assert.False(t, ok)
}

func TestSelect(t *testing.T) {
	r := New()
	require.NoError(t, r.AddAll([]asset.Group{group("leaflet"), group("heatmap"), group("draw")}))

	t.Run("by name with unknowns reported", func(t *testing.T) {
		selected, unknown := r.Select([]string{"HEATMAP", "nope", "leaflet"}, false)
		require.Len(t, selected, 2)
		assert.Equal(t, "heatmap", selected[0].Name)
		assert.Equal(t, "leaflet", selected[1].Name)
		assert.Equal(t, []string{"nope"}, unknown)
	})

	t.Run("duplicate requests collapse", func(t *testing.T) {
		selected, unknown := r.Select([]string{"draw", "Draw", "DRAW"}, false)
		assert.Len(t, selected, 1)
		assert.Empty(t, unknown)
	})

	t.Run("all ignores names and keeps registration order", func(t *testing.T) {
		selected, unknown := r.Select([]string{"nope"}, true)
		require.Len(t, selected, 3)
		assert.Equal(t, "leaflet", selected[0].Name)
		assert.Equal(t, "heatmap", selected[1].Name)
		assert.Equal(t, "draw", selected[2].Name)
		assert.Empty(t, unknown)
	})

	t.Run("only unknown names yields empty selection", func(t *testing.T) {
		selected, unknown := r.Select([]string{"a", "b"}, false)
		assert.Empty(t, selected)
		assert.Equal(t, []string{"a", "b"}, unknown)
	})
}

func TestNamesSorted(t *testing.T) {
	r := New()
	require.NoError(t, r.AddAll([]asset.Group{group("zeta"), group("alpha"), group("mid")}))
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.Names())
}

func TestBuiltinsRegisterCleanly(t *testing.T) {
	r := New()
	require.NoError(t, r.AddAll(asset.Builtins()))

	g, ok := r.Lookup("leaflet")
	require.True(t, ok)
	assert.NotEmpty(t, g.Scripts)
	assert.NotEmpty(t, g.Styles)

	for _, name := range []string{"heatmap", "markercluster", "draw", "minimap", "mouseposition", "fullscreen", "beautifyicon"} {
		_, ok := r.Lookup(name)
		assert.True(t, ok, name)
	}
}
