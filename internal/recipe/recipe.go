// Package recipe turns one palette subject into keyed documents.
//
// A recipe is a pure function of the subject and the role lookup. It returns
// its documents in an Output and never touches a registry, which keeps each
// recipe testable on its own and leaves duplicate detection to the engine.
package recipe

import (
	"fmt"

	"github.com/specialistvlad/dyegen/internal/palette"
	"github.com/specialistvlad/dyegen/internal/registry"
)

// Output is everything a recipe produced for one subject.
type Output struct {
	// BlockStates go to the blockstates registry, fail-fast.
	BlockStates []registry.Entry
	// Models go to the models registry, fail-fast.
	Models []registry.Entry
	// ItemDefaults go to the models registry, first-wins.
	ItemDefaults []registry.Entry
}

// Len returns the number of entries across all three groups.
func (o *Output) Len() int {
	return len(o.BlockStates) + len(o.Models) + len(o.ItemDefaults)
}

// Func is the signature every recipe implements.
type Func func(s palette.Subject, lookup palette.Lookup) (*Output, error)

// Recipe is a named Func.
type Recipe struct {
	Name  string
	Apply Func
}

// Stage is an ordered group of recipes applied to every subject before the
// next stage starts. Order matters for first-wins item defaults.
type Stage struct {
	Name    string
	Recipes []Recipe
}

// Stages returns the full recipe set: block placements and models first,
// then item models.
func Stages() []Stage {
	return []Stage{
		{Name: "blocks", Recipes: BlockRecipes()},
		{Name: "items", Recipes: ItemRecipes()},
	}
}

// resolve looks up several roles at once, failing on the first missing one.
func resolve(lookup palette.Lookup, s palette.Subject, roles ...string) ([]palette.Handle, error) {
	handles := make([]palette.Handle, len(roles))
	for i, role := range roles {
		h, err := lookup.Lookup(s, role)
		if err != nil {
			return nil, err
		}
		handles[i] = h
	}
	return handles, nil
}

// requireBlock fails when a role used as a block is registered item-only.
func requireBlock(s palette.Subject, role string, h palette.Handle) error {
	if !h.Block {
		return fmt.Errorf("role %q of subject %q is not a block", role, s.Name)
	}
	return nil
}

// requireItem fails when a role used as an item has no item form.
func requireItem(s palette.Subject, role string, h palette.Handle) error {
	if !h.Item {
		return fmt.Errorf("role %q of subject %q has no item", role, s.Name)
	}
	return nil
}
