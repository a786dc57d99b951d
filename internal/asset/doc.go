// Package asset defines the core asset model and the two render-time
// components built on it: the Resolver, which maps a remote URL to a cached
// local file when one exists, and the Rewriter, which walks a render tree
// and substitutes cached paths into every asset reference exactly once per
// node.
//
// Both components degrade silently: a URL with no cached counterpart passes
// through unchanged, so a renderer always produces valid output even with an
// empty or missing cache.
package asset
