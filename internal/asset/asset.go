package asset

import "strings"

// Ref is a single script or style dependency: a display name paired with a
// locator. The locator is either a fully-qualified http(s) URL or an opaque
// local/embedded reference that is never rewritten.
type Ref struct {
	Name string
	URL  string
}

// Remote reports whether the ref's locator is a fetchable remote URL.
func (r Ref) Remote() bool {
	return IsRemote(r.URL)
}

// IsRemote reports whether a locator is an http or https URL. Anything else
// (relative paths, data URIs, already-rewritten cache paths) is left alone
// by every component in this package.
func IsRemote(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// Group is a named collection of script and style refs. It is the
// prototype-level asset source the populator works from, mirroring the
// defaults a render node of that kind would carry.
type Group struct {
	Name    string
	Scripts []Ref
	Styles  []Ref
}

// Assets returns the group's refs in collection order, scripts first.
func (g Group) Assets() []Ref {
	out := make([]Ref, 0, len(g.Scripts)+len(g.Styles))
	out = append(out, g.Scripts...)
	out = append(out, g.Styles...)
	return out
}

// Node is the minimal capability a render-tree node must expose to be
// walked. A nil child map is a leaf. Implementations must be pointer-shaped:
// the Rewriter's visited set is keyed on interface identity.
type Node interface {
	Children() map[string]Node
}

// ScriptHolder is implemented by nodes carrying a script asset slot. The
// Rewriter checks for it with a type assertion; absence is a valid leaf,
// not an error.
type ScriptHolder interface {
	ScriptAssets() []Ref
	SetScriptAssets([]Ref)
}

// StyleHolder is the style counterpart of ScriptHolder.
type StyleHolder interface {
	StyleAssets() []Ref
	SetStyleAssets([]Ref)
}
