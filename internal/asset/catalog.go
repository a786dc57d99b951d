package asset

// Builtins returns the asset groups known out of the box: the core Leaflet
// map plus the commonly used plugins. Names and URLs mirror the upstream
// map-library defaults; the populator and resolver only care that each URL's
// basename is unique within the cache.
//
// The returned slice is freshly allocated on every call so callers may
// append or reorder without aliasing.
func Builtins() []Group {
	return []Group{
		{
			Name: "leaflet",
			Scripts: []Ref{
				{Name: "leaflet", URL: "https://cdn.jsdelivr.net/npm/leaflet@1.9.3/dist/leaflet.js"},
				{Name: "jquery", URL: "https://code.jquery.com/jquery-3.7.1.min.js"},
				{Name: "bootstrap", URL: "https://cdn.jsdelivr.net/npm/bootstrap@5.2.2/dist/js/bootstrap.bundle.min.js"},
				{Name: "awesome_markers", URL: "https://cdnjs.cloudflare.com/ajax/libs/Leaflet.awesome-markers/2.0.2/leaflet.awesome-markers.js"},
			},
			Styles: []Ref{
				{Name: "leaflet_css", URL: "https://cdn.jsdelivr.net/npm/leaflet@1.9.3/dist/leaflet.css"},
				{Name: "bootstrap_css", URL: "https://cdn.jsdelivr.net/npm/bootstrap@5.2.2/dist/css/bootstrap.min.css"},
				{Name: "bootstrap_icons_css", URL: "https://cdn.jsdelivr.net/npm/bootstrap-icons@1.9.1/font/bootstrap-icons.min.css"},
				{Name: "fontawesome_css", URL: "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.2.0/css/all.min.css"},
				{Name: "awesome_markers_css", URL: "https://cdnjs.cloudflare.com/ajax/libs/Leaflet.awesome-markers/2.0.2/leaflet.awesome-markers.css"},
				{Name: "awesome_rotate_css", URL: "https://cdn.jsdelivr.net/gh/python-visualization/folium/folium/templates/leaflet.awesome.rotate.min.css"},
			},
		},
		{
			Name: "heatmap",
			Scripts: []Ref{
				{Name: "leaflet_heat", URL: "https://cdn.jsdelivr.net/gh/python-visualization/folium@main/folium/templates/leaflet_heat.min.js"},
			},
		},
		{
			Name: "markercluster",
			Scripts: []Ref{
				{Name: "markerclusterjs", URL: "https://cdnjs.cloudflare.com/ajax/libs/leaflet.markercluster/1.1.0/leaflet.markercluster.js"},
			},
			Styles: []Ref{
				{Name: "markerclustercss", URL: "https://cdnjs.cloudflare.com/ajax/libs/leaflet.markercluster/1.1.0/MarkerCluster.css"},
				{Name: "markerclusterdefaultcss", URL: "https://cdnjs.cloudflare.com/ajax/libs/leaflet.markercluster/1.1.0/MarkerCluster.Default.css"},
			},
		},
		{
			Name: "draw",
			Scripts: []Ref{
				{Name: "leaflet_draw_js", URL: "https://cdnjs.cloudflare.com/ajax/libs/leaflet.draw/1.0.2/leaflet.draw.js"},
			},
			Styles: []Ref{
				{Name: "leaflet_draw_css", URL: "https://cdnjs.cloudflare.com/ajax/libs/leaflet.draw/1.0.2/leaflet.draw.css"},
			},
		},
		{
			Name: "minimap",
			Scripts: []Ref{
				{Name: "minimap_js", URL: "https://cdn.jsdelivr.net/gh/python-visualization/folium/folium/templates/Control.MiniMap.min.js"},
			},
			Styles: []Ref{
				{Name: "minimap_css", URL: "https://cdn.jsdelivr.net/gh/python-visualization/folium/folium/templates/Control.MiniMap.min.css"},
			},
		},
		{
			Name: "mouseposition",
			Scripts: []Ref{
				{Name: "mouse_position_js", URL: "https://cdn.jsdelivr.net/gh/ardhi/Leaflet.MousePosition/src/L.Control.MousePosition.min.js"},
			},
			Styles: []Ref{
				{Name: "mouse_position_css", URL: "https://cdn.jsdelivr.net/gh/ardhi/Leaflet.MousePosition/src/L.Control.MousePosition.min.css"},
			},
		},
		{
			Name: "fullscreen",
			Scripts: []Ref{
				{Name: "Control.Fullscreen.js", URL: "https://cdnjs.cloudflare.com/ajax/libs/leaflet.fullscreen/3.0.0/Control.FullScreen.min.js"},
			},
			Styles: []Ref{
				{Name: "Control.FullScreen.css", URL: "https://cdnjs.cloudflare.com/ajax/libs/leaflet.fullscreen/3.0.0/Control.FullScreen.min.css"},
			},
		},
		{
			Name: "beautifyicon",
			Scripts: []Ref{
				{Name: "beautify_icon_js", URL: "https://cdn.jsdelivr.net/gh/marslan390/BeautifyMarker/leaflet-beautify-marker-icon.min.js"},
			},
			Styles: []Ref{
				{Name: "beautify_icon_css", URL: "https://cdn.jsdelivr.net/gh/marslan390/BeautifyMarker/leaflet-beautify-marker-icon.min.css"},
			},
		},
	}
}
