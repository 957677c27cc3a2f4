package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/dyegen/internal/config"
	"github.com/specialistvlad/dyegen/internal/ctxlog"
)

// Extension is the file extension this loader reads.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every file and merges them, in order, into one model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range paths {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		fileModel, err := l.translateFile(ctx, file, &root)
		if err != nil {
			return nil, err
		}
		if err := model.Merge(fileModel); err != nil {
			return nil, fmt.Errorf("failed to merge HCL file %s: %w", file, err)
		}
	}

	logger.Debug("HCL loading complete.", "namespace", model.Namespace, "colors", len(model.Colors), "roles", len(model.Roles))
	return model, nil
}

// translateFile converts the HCL schema of one file into the agnostic model.
func (l *Loader) translateFile(ctx context.Context, file string, root *fileRoot) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx).With("file", file)

	m := &config.Model{}
	if root.Namespace != nil {
		m.Namespace = *root.Namespace
	}
	for _, p := range root.Palettes {
		m.Colors = append(m.Colors, p.Colors...)
	}
	for _, r := range root.Roles {
		pattern, err := newExprPattern(r.ID)
		if err != nil {
			return nil, fmt.Errorf("role %q: %w", r.Name, err)
		}
		def := &config.RoleDefinition{
			Name:    r.Name,
			Pattern: pattern,
			Block:   boolOr(r.Block, true),
			Item:    boolOr(r.Item, true),
			Source:  file,
		}
		logger.Debug("Translated HCL role.", "role", def.Name, "block", def.Block, "item", def.Item)
		m.Roles = append(m.Roles, def)
	}
	return m, nil
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
