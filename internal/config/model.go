package config

import (
	"fmt"
	"slices"

	"github.com/specialistvlad/dyegen/internal/palette"
)

// Model is the unified, format-agnostic representation of a palette
// configuration.
type Model struct {
	// Namespace of every generated identifier. Empty means unset.
	Namespace string
	// Colors in declaration order.
	Colors []string
	// Roles in declaration order.
	Roles []*RoleDefinition
}

// RoleDefinition tells how one role is named for every colour.
type RoleDefinition struct {
	Name    string
	Pattern NamePattern
	Block   bool
	Item    bool
	// Source is the file the role was declared in, for error messages.
	Source string
}

// Default returns the built-in palette configuration.
func Default() *Model {
	m := &Model{
		Namespace: palette.DefaultNamespace,
		Colors:    slices.Clone(palette.DefaultColors),
	}
	for _, spec := range palette.DefaultRoles {
		m.Roles = append(m.Roles, &RoleDefinition{
			Name:    spec.Role,
			Pattern: TemplatePattern(ColorPlaceholder + spec.Suffix),
			Block:   spec.Block,
			Item:    spec.Item,
			Source:  "built-in",
		})
	}
	return m
}

// Role returns the role definition with the given name, or nil.
func (m *Model) Role(name string) *RoleDefinition {
	for _, r := range m.Roles {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// Merge folds other into m. Colours append, roles are added, and the
// namespace must agree when both sides set it. Declaring a colour or role
// twice is an error.
func (m *Model) Merge(other *Model) error {
	if other.Namespace != "" {
		if m.Namespace != "" && m.Namespace != other.Namespace {
			return fmt.Errorf("conflicting namespaces %q and %q", m.Namespace, other.Namespace)
		}
		m.Namespace = other.Namespace
	}
	for _, color := range other.Colors {
		if slices.Contains(m.Colors, color) {
			return fmt.Errorf("color %q declared twice", color)
		}
		m.Colors = append(m.Colors, color)
	}
	for _, role := range other.Roles {
		if prev := m.Role(role.Name); prev != nil {
			return fmt.Errorf("role %q declared in %s and %s", role.Name, prev.Source, role.Source)
		}
		m.Roles = append(m.Roles, role)
	}
	return nil
}

// Palette expands every role pattern for every colour. A model without a
// namespace uses the default one; a model without roles uses the built-in
// role table.
func (m *Model) Palette() (*palette.Palette, error) {
	if len(m.Colors) == 0 {
		return nil, fmt.Errorf("configuration declares no colors")
	}
	namespace := m.Namespace
	if namespace == "" {
		namespace = palette.DefaultNamespace
	}
	roles := m.Roles
	if len(roles) == 0 {
		roles = Default().Roles
	}

	p, err := palette.New(namespace)
	if err != nil {
		return nil, err
	}
	for _, color := range m.Colors {
		subject, err := p.AddSubject(color)
		if err != nil {
			return nil, err
		}
		for _, role := range roles {
			path, err := role.Pattern.Expand(color)
			if err != nil {
				return nil, fmt.Errorf("role %q for color %q: %w", role.Name, color, err)
			}
			if err := p.Bind(subject, role.Name, path, role.Block, role.Item); err != nil {
				return nil, err
			}
		}
	}
	return p, nil
}
