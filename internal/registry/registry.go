// Package registry provides the catalog of named asset groups.
//
// The Registry maps the case-insensitive group names accepted on the command
// line to their asset definitions. It is seeded with the built-in groups and
// extended with manifest-loaded ones at startup, then validated so that a
// name collision is caught before any fetch work begins.
package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vk/mapvendor/internal/asset"
)

// Registry holds all known asset groups for a single application instance.
type Registry struct {
	groups map[string]asset.Group // key: lower-cased name
	order  []string               // registration order of keys
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{groups: make(map[string]asset.Group)}
}

// Add registers a group. Names are case-insensitive; registering a second
// group under an already-taken name is an error.
func (r *Registry) Add(g asset.Group) error {
	key := strings.ToLower(g.Name)
	if key == "" {
		return fmt.Errorf("group with empty name cannot be registered")
	}
	if _, exists := r.groups[key]; exists {
		return fmt.Errorf("duplicate asset group %q", key)
	}
	r.groups[key] = g
	r.order = append(r.order, key)
	return nil
}

// AddAll registers every group in order, stopping at the first error.
func (r *Registry) AddAll(groups []asset.Group) error {
	for _, g := range groups {
		if err := r.Add(g); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the group registered under name, case-insensitively.
func (r *Registry) Lookup(name string) (asset.Group, bool) {
	g, ok := r.groups[strings.ToLower(name)]
	return g, ok
}

// Names returns all registered group names, sorted for stable help and
// warning output.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	sort.Strings(names)
	return names
}

// Select resolves the requested names into groups. With all set, every
// registered group is returned in registration order and names are ignored.
// Otherwise each name is looked up case-insensitively; unknown names are
// returned separately so the caller can warn without aborting, and
// duplicate requests for the same group collapse to one selection.
func (r *Registry) Select(names []string, all bool) (selected []asset.Group, unknown []string) {
	if all {
		for _, key := range r.order {
			selected = append(selected, r.groups[key])
		}
		return selected, nil
	}

	seen := make(map[string]struct{})
	for _, name := range names {
		key := strings.ToLower(name)
		g, ok := r.groups[key]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		selected = append(selected, g)
	}
	return selected, unknown
}
