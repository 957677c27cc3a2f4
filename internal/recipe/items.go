package recipe

import (
	"github.com/specialistvlad/dyegen/internal/palette"
	"github.com/specialistvlad/dyegen/internal/registry"
	"github.com/specialistvlad/dyegen/internal/template"
)

// ItemRecipes returns the item stage in application order.
func ItemRecipes() []Recipe {
	return []Recipe{
		{Name: "bed_item", Apply: BedItem},
		{Name: "banner_item", Apply: InventoryItem(palette.RoleBanner, template.BannerInventory, noTextures)},
		{Name: "shulker_box_item", Apply: InventoryItem(palette.RoleShulkerBox, template.ShulkerBoxInventory, ownParticle)},
		{Name: "candle_item", Apply: FlatItem(palette.RoleCandle)},
		{Name: "wool_item", Apply: BlockItem(palette.RoleWool)},
		{Name: "rockwool_item", Apply: AliasItem(palette.RoleRockwool, palette.RoleWool)},
		{Name: "carpet_item", Apply: BlockItem(palette.RoleCarpet)},
		{Name: "terracotta_item", Apply: BlockItem(palette.RoleTerracotta)},
		{Name: "glazed_terracotta_item", Apply: BlockItem(palette.RoleGlazedTerracotta)},
		{Name: "concrete_item", Apply: BlockItem(palette.RoleConcrete)},
		{Name: "concrete_powder_item", Apply: BlockItem(palette.RoleConcretePowder)},
		{Name: "stained_glass_item", Apply: BlockItem(palette.RoleStainedGlass)},
		{Name: "dye_item", Apply: FlatItem(palette.RoleDye)},
	}
}

// BedItem uses the bed inventory template with the subject's wool as
// particle.
func BedItem(s palette.Subject, lookup palette.Lookup) (*Output, error) {
	hs, err := resolve(lookup, s, palette.RoleBed, palette.RoleWool)
	if err != nil {
		return nil, err
	}
	if err := requireItem(s, palette.RoleBed, hs[0]); err != nil {
		return nil, err
	}

	model, err := template.BedInventory.CreateAt(template.ItemModel(hs[0].ID), template.ParticleOf(hs[1].ID))
	if err != nil {
		return nil, err
	}
	return &Output{Models: []registry.Entry{model}}, nil
}

func noTextures(palette.Handle) template.Mapping { return template.NewMapping() }

func ownParticle(h palette.Handle) template.Mapping { return template.ParticleOf(h.ID) }

// InventoryItem instantiates an item template with the textures mapping
// returns for the role's handle.
func InventoryItem(role string, tpl template.Template, mapping func(palette.Handle) template.Mapping) Func {
	return func(s palette.Subject, lookup palette.Lookup) (*Output, error) {
		hs, err := resolve(lookup, s, role)
		if err != nil {
			return nil, err
		}
		if err := requireItem(s, role, hs[0]); err != nil {
			return nil, err
		}

		model, err := tpl.CreateAt(template.ItemModel(hs[0].ID), mapping(hs[0]))
		if err != nil {
			return nil, err
		}
		return &Output{Models: []registry.Entry{model}}, nil
	}
}

// FlatItem emits a generated item model drawn from the item's own sprite.
func FlatItem(role string) Func {
	return func(s palette.Subject, lookup palette.Lookup) (*Output, error) {
		hs, err := resolve(lookup, s, role)
		if err != nil {
			return nil, err
		}
		if err := requireItem(s, role, hs[0]); err != nil {
			return nil, err
		}

		model, err := template.FlatItem.CreateAt(template.ItemModel(hs[0].ID), template.Layer0Item(hs[0].ID))
		if err != nil {
			return nil, err
		}
		return &Output{Models: []registry.Entry{model}}, nil
	}
}

// BlockItem registers the default item model of a block: a model whose only
// content is the block model as parent. It is first-wins, and blocks without
// an item are skipped.
func BlockItem(role string) Func {
	return AliasItem(role, role)
}

// AliasItem is BlockItem with the parent taken from another role's block
// model.
func AliasItem(role, target string) Func {
	return func(s palette.Subject, lookup palette.Lookup) (*Output, error) {
		hs, err := resolve(lookup, s, role, target)
		if err != nil {
			return nil, err
		}
		if !hs[0].Item {
			return &Output{}, nil
		}
		return &Output{
			ItemDefaults: []registry.Entry{
				template.Delegate(template.ItemModel(hs[0].ID), template.BlockModel(hs[1].ID)),
			},
		}, nil
	}
}
