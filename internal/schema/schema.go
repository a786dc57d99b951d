// Package schema defines the HCL block structures for asset-group manifest
// files. It is purely declarative; evaluation and translation into the
// asset model happen in the hcl package.
package schema

import "github.com/hashicorp/hcl/v2"

// AssetEntry represents a single `script` or `style` block inside a group.
// The url is kept as an unevaluated expression so it can reference manifest
// variables (e.g. a shared CDN base).
type AssetEntry struct {
	Name string         `hcl:"name"`
	URL  hcl.Expression `hcl:"url"`
}

// Group represents a `group` block: one named asset source that can be
// selected on the command line alongside the built-ins.
type Group struct {
	Name    string        `hcl:"name,label"`
	Scripts []*AssetEntry `hcl:"script,block"`
	Styles  []*AssetEntry `hcl:"style,block"`
}

// Variables represents the optional `variables` block of a manifest file.
// Its attributes become the `var.*` scope for url expressions in the same
// file.
type Variables struct {
	Body hcl.Body `hcl:",remain"`
}

// Manifest represents the top-level structure of a single manifest file.
type Manifest struct {
	Variables *Variables `hcl:"variables,block"`
	Groups    []*Group   `hcl:"group,block"`
}
