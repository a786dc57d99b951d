package app

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/mapvendor/internal/asset"
)

// staticLoader implements config.Loader with a fixed result, standing in
// for the HCL loader in tests.
type staticLoader struct {
	groups []asset.Group
	err    error
}

func (l *staticLoader) Load(_ context.Context, _ ...string) ([]asset.Group, error) {
	return l.groups, l.err
}

func testConfig(t *testing.T, cacheDir string) *Config {
	t.Helper()
	return &Config{
		CacheDir:  cacheDir,
		LogFormat: "text",
		LogLevel:  "error",
		Workers:   1,
		Timeout:   5 * time.Second,
	}
}

func TestRunEndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/leaflet.js":
			_, _ = w.Write([]byte("console.log('leaflet')"))
		case "/leaflet.css":
			_, _ = w.Write([]byte(".leaflet-container{}"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	jsURL := server.URL + "/leaflet.js"
	cssURL := server.URL + "/leaflet.css"

	cacheDir := filepath.Join(t.TempDir(), "cache")
	cfg := testConfig(t, cacheDir)
	cfg.Groups = []string{"offline-demo"}
	cfg.ManifestPath = "manifests"
	cfg.Check = true

	loader := &staticLoader{groups: []asset.Group{{
		Name:    "offline-demo",
		Scripts: []asset.Ref{{Name: "leaflet", URL: jsURL}},
		Styles:  []asset.Ref{{Name: "leaflet-css", URL: cssURL}},
	}}}

	var out bytes.Buffer
	a := NewApp(&out, cfg, loader)
	require.NoError(t, a.Run(context.Background()))

	assert.FileExists(t, filepath.Join(cacheDir, "leaflet.js"))
	assert.FileExists(t, filepath.Join(cacheDir, "leaflet.css"))
	assert.Contains(t, out.String(), "Summary: downloaded 2, skipped 0, failed 0")
	assert.Contains(t, out.String(), "Offline readiness (cache: "+cacheDir+")")
	assert.Contains(t, out.String(), "Ready for offline use")

	// Render-time half of the round trip: a tree referencing the vendored
	// URLs rewrites to cache paths, an unvendored URL stays remote.
	rewriter := asset.NewRewriter(asset.NewResolver(cacheDir))
	root := &asset.Element{
		Scripts: []asset.Ref{
			{Name: "leaflet", URL: jsURL},
			{Name: "unrelated", URL: "https://cdn.example.com/unrelated.js"},
		},
		Styles: []asset.Ref{{Name: "leaflet-css", URL: cssURL}},
	}
	rewriter.Rewrite(root)

	assert.Equal(t, filepath.Join(cacheDir, "leaflet.js"), root.Scripts[0].URL)
	assert.Equal(t, "https://cdn.example.com/unrelated.js", root.Scripts[1].URL)
	assert.Equal(t, filepath.Join(cacheDir, "leaflet.css"), root.Styles[0].URL)
}

func TestRunNothingToDo(t *testing.T) {
	cfg := testConfig(t, t.TempDir())
	cfg.Groups = []string{"no-such-group", "also-unknown"}

	var out bytes.Buffer
	a := NewApp(&out, cfg, &staticLoader{})
	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "Nothing to do")
}

func TestRunFetchFailureSignalsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/good.js" {
			_, _ = w.Write([]byte("ok"))
			return
		}
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	cacheDir := t.TempDir()
	cfg := testConfig(t, cacheDir)
	cfg.Groups = []string{"flaky"}
	cfg.ManifestPath = "manifests"

	loader := &staticLoader{groups: []asset.Group{{
		Name: "flaky",
		Scripts: []asset.Ref{
			{Name: "good", URL: server.URL + "/good.js"},
			{Name: "bad", URL: server.URL + "/bad.js"},
		},
	}}}

	var out bytes.Buffer
	a := NewApp(&out, cfg, loader)
	err := a.Run(context.Background())
	require.ErrorIs(t, err, ErrFetchFailed)

	// Partial failure leaves the good file on disk and lists the bad URL.
	assert.FileExists(t, filepath.Join(cacheDir, "good.js"))
	assert.Contains(t, out.String(), "Failed URLs:")
	assert.Contains(t, out.String(), server.URL+"/bad.js")
}

func TestRunSecondRunSkips(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	t.Cleanup(server.Close)

	cfg := testConfig(t, t.TempDir())
	cfg.Groups = []string{"demo"}
	cfg.ManifestPath = "manifests"
	loader := &staticLoader{groups: []asset.Group{{
		Name:    "demo",
		Scripts: []asset.Ref{{Name: "a", URL: server.URL + "/a.js"}},
	}}}

	var first bytes.Buffer
	require.NoError(t, NewApp(&first, cfg, loader).Run(context.Background()))
	assert.Contains(t, first.String(), "downloaded 1, skipped 0")

	var second bytes.Buffer
	require.NoError(t, NewApp(&second, cfg, loader).Run(context.Background()))
	assert.Contains(t, second.String(), "downloaded 0, skipped 1")
}

func TestNewAppRejectsDuplicateManifestGroup(t *testing.T) {
	cfg := testConfig(t, t.TempDir())
	cfg.ManifestPath = "manifests"

	// A manifest group clashing with a built-in name is a startup error.
	loader := &staticLoader{groups: []asset.Group{{Name: "leaflet"}}}

	var out bytes.Buffer
	assert.Panics(t, func() { NewApp(&out, cfg, loader) })
}

func TestNewAppRegistersBuiltins(t *testing.T) {
	cfg := testConfig(t, t.TempDir())

	var out bytes.Buffer
	a := NewApp(&out, cfg, &staticLoader{})

	_, ok := a.Registry().Lookup("heatmap")
	assert.True(t, ok)
}
