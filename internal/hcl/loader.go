// Package hcl implements the config.Loader interface for HCL manifest
// files. A manifest declares extra asset groups, optionally interpolating
// per-file variables into asset URLs:
//
//	variables {
//	  cdn = "https://unpkg.com"
//	}
//
//	group "vector-tiles" {
//	  script {
//	    name = "maplibre"
//	    url  = "${var.cdn}/maplibre-gl@3.6.2/dist/maplibre-gl.js"
//	  }
//	  style {
//	    name = "maplibre-css"
//	    url  = "${var.cdn}/maplibre-gl@3.6.2/dist/maplibre-gl.css"
//	  }
//	}
package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/mapvendor/internal/asset"
	"github.com/vk/mapvendor/internal/ctxlog"
	"github.com/vk/mapvendor/internal/fsutil"
	"github.com/vk/mapvendor/internal/schema"
)

// Loader loads asset-group manifests written in HCL.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every .hcl file under the given paths and returns the groups
// they declare, in file order. Directories are searched recursively; a path
// given directly must be a file.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]asset.Group, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("manifest path %s: %w", path, err)
		}
		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, fmt.Errorf("searching manifest directory %s: %w", path, err)
			}
			files = append(files, found...)
		} else {
			files = append(files, path)
		}
	}
	logger.Debug("Manifest files discovered.", "count", len(files))

	parser := hclparse.NewParser()
	var groups []asset.Group
	for _, file := range files {
		fileGroups, err := l.decodeManifestFile(ctx, parser, file)
		if err != nil {
			return nil, err
		}
		groups = append(groups, fileGroups...)
	}
	return groups, nil
}

// decodeManifestFile parses and decodes a single manifest file into the
// asset model.
func (l *Loader) decodeManifestFile(ctx context.Context, parser *hclparse.Parser, path string) ([]asset.Group, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding manifest file.", "path", path)

	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest file %s: %s", path, diags.Error())
	}

	var manifest schema.Manifest
	diags = gohcl.DecodeBody(file.Body, nil, &manifest)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest file %s: %s", path, diags.Error())
	}

	evalCtx, err := l.buildEvalContext(manifest.Variables)
	if err != nil {
		return nil, fmt.Errorf("manifest file %s: %w", path, err)
	}

	groups := make([]asset.Group, 0, len(manifest.Groups))
	for _, g := range manifest.Groups {
		translated, err := l.translateGroup(g, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("manifest file %s: %w", path, err)
		}
		groups = append(groups, translated)
	}
	logger.Debug("Successfully decoded manifest file.", "path", path, "groups_found", len(groups))
	return groups, nil
}

// buildEvalContext evaluates the `variables` block attributes and exposes
// them as the `var.*` scope. Variable values may be any cty type; only the
// final url values must convert to string.
func (l *Loader) buildEvalContext(vars *schema.Variables) (*hcl.EvalContext, error) {
	values := map[string]cty.Value{}
	if vars != nil {
		attrs, diags := vars.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid variables block: %s", diags.Error())
		}
		for name, attr := range attrs {
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return nil, fmt.Errorf("evaluating variable %q: %s", name, diags.Error())
			}
			values[name] = val
		}
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"var": cty.ObjectVal(values),
		},
	}, nil
}

// translateGroup converts a decoded group block into the asset model,
// evaluating each url expression against the manifest's variable scope.
func (l *Loader) translateGroup(g *schema.Group, evalCtx *hcl.EvalContext) (asset.Group, error) {
	if g.Name == "" {
		return asset.Group{}, fmt.Errorf("group with empty name")
	}

	out := asset.Group{Name: g.Name}
	for _, entry := range g.Scripts {
		ref, err := l.translateEntry(g.Name, entry, evalCtx)
		if err != nil {
			return asset.Group{}, err
		}
		out.Scripts = append(out.Scripts, ref)
	}
	for _, entry := range g.Styles {
		ref, err := l.translateEntry(g.Name, entry, evalCtx)
		if err != nil {
			return asset.Group{}, err
		}
		out.Styles = append(out.Styles, ref)
	}
	return out, nil
}

// translateEntry evaluates one script/style block into a Ref.
func (l *Loader) translateEntry(group string, entry *schema.AssetEntry, evalCtx *hcl.EvalContext) (asset.Ref, error) {
	val, diags := entry.URL.Value(evalCtx)
	if diags.HasErrors() {
		return asset.Ref{}, fmt.Errorf("group %q, asset %q: evaluating url: %s", group, entry.Name, diags.Error())
	}

	converted, err := convert.Convert(val, cty.String)
	if err != nil {
		return asset.Ref{}, fmt.Errorf("group %q, asset %q: url must be a string: %w", group, entry.Name, err)
	}
	if converted.IsNull() {
		return asset.Ref{}, fmt.Errorf("group %q, asset %q: url must not be null", group, entry.Name)
	}

	url := converted.AsString()
	if url == "" {
		return asset.Ref{}, fmt.Errorf("group %q, asset %q: url must not be empty", group, entry.Name)
	}
	return asset.Ref{Name: entry.Name, URL: url}, nil
}
