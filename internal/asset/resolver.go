package asset

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolver maps remote asset URLs to files in a single flat cache directory.
// Every cached asset is addressed by the basename of its source URL; that is
// the on-disk contract shared with the populator.
//
// A Resolver is read-only. It never creates files and never returns an
// error: any filesystem problem degrades to "no match", which callers treat
// as "keep using the remote URL".
type Resolver struct {
	cacheDir string
}

// NewResolver creates a Resolver over the given cache directory. The
// directory does not need to exist; a missing directory behaves like an
// empty cache.
func NewResolver(cacheDir string) *Resolver {
	return &Resolver{cacheDir: cacheDir}
}

// CacheDir returns the directory this resolver reads from.
func (r *Resolver) CacheDir() string {
	return r.cacheDir
}

// Resolve returns the local path for url and true when a cached copy
// exists. Non-http(s) locators and URLs with an empty final path segment
// miss immediately.
//
// The existence check is intentionally racy with respect to concurrent
// cache writes: both locators point at equivalent content, so the worst
// case is one render that still reaches the network.
func (r *Resolver) Resolve(url string) (string, bool) {
	if !IsRemote(url) {
		return "", false
	}

	name := CacheName(url)
	if name == "" {
		return "", false
	}

	local := filepath.Join(r.cacheDir, name)
	info, err := os.Stat(local)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return local, true
}

// CacheName derives the cache filename for a URL: the final path segment
// with any query component stripped. It returns "" when the URL has no
// usable basename (e.g. it ends in a slash).
func CacheName(url string) string {
	if i := strings.IndexByte(url, '?'); i >= 0 {
		url = url[:i]
	}
	if i := strings.LastIndexByte(url, '/'); i >= 0 {
		url = url[i+1:]
	}
	return url
}
