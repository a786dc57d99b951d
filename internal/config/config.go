// Package config defines the format-agnostic contract for loading
// user-supplied asset-group manifests. Concrete implementations, such as
// the HCL one, live in separate packages; the app only ever consumes the
// Loader interface.
package config

import (
	"context"

	"github.com/vk/mapvendor/internal/asset"
)

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads manifest files from the given paths (files or directories)
	// and returns the asset groups they declare. An empty path list yields
	// an empty result, not an error.
	Load(ctx context.Context, paths ...string) ([]asset.Group, error)
}
