package recipe

import (
	"github.com/specialistvlad/dyegen/internal/blockstate"
	"github.com/specialistvlad/dyegen/internal/palette"
	"github.com/specialistvlad/dyegen/internal/registry"
	"github.com/specialistvlad/dyegen/internal/resloc"
	"github.com/specialistvlad/dyegen/internal/template"
)

// BlockRecipes returns the block stage in application order.
func BlockRecipes() []Recipe {
	return []Recipe{
		{Name: "bed", Apply: EntityBlock(palette.RoleBed, "bed")},
		{Name: "banner", Apply: EntityBlock(palette.RoleBanner, "banner")},
		{Name: "wall_banner", Apply: EntityBlock(palette.RoleWallBanner, "banner")},
		{Name: "shulker_box", Apply: ShulkerBox},
		{Name: "candle", Apply: Candles},
		{Name: "wool", Apply: Cube(palette.RoleWool)},
		{Name: "rockwool", Apply: AliasBlock(palette.RoleRockwool, palette.RoleWool)},
		{Name: "carpet", Apply: Carpet},
		{Name: "terracotta", Apply: Cube(palette.RoleTerracotta)},
		{Name: "glazed_terracotta", Apply: Cube(palette.RoleGlazedTerracotta)},
		{Name: "concrete", Apply: Cube(palette.RoleConcrete)},
		{Name: "concrete_powder", Apply: Cube(palette.RoleConcretePowder)},
		{Name: "stained_glass", Apply: Glass},
	}
}

// EntityBlock renders the block through a shared vanilla model, as the game
// draws the real geometry with a block entity renderer.
func EntityBlock(role, baseModel string) Func {
	return func(s palette.Subject, lookup palette.Lookup) (*Output, error) {
		hs, err := resolve(lookup, s, role)
		if err != nil {
			return nil, err
		}
		if err := requireBlock(s, role, hs[0]); err != nil {
			return nil, err
		}
		return &Output{
			BlockStates: []registry.Entry{
				blockstate.Simple(hs[0].ID, blockstate.Model(template.VanillaBlockModel(baseModel))),
			},
		}, nil
	}
}

// ShulkerBox emits a particle-only model, the box itself is entity rendered.
func ShulkerBox(s palette.Subject, lookup palette.Lookup) (*Output, error) {
	hs, err := resolve(lookup, s, palette.RoleShulkerBox)
	if err != nil {
		return nil, err
	}
	box := hs[0].ID

	model, err := template.ParticleOnly.Create(box, template.ParticleOf(box))
	if err != nil {
		return nil, err
	}
	return &Output{
		BlockStates: []registry.Entry{blockstate.Simple(box, blockstate.Model(model.Key))},
		Models:      []registry.Entry{model},
	}, nil
}

// Cube emits a cube_all model textured with the block's own sprite.
func Cube(role string) Func {
	return func(s palette.Subject, lookup palette.Lookup) (*Output, error) {
		hs, err := resolve(lookup, s, role)
		if err != nil {
			return nil, err
		}
		if err := requireBlock(s, role, hs[0]); err != nil {
			return nil, err
		}
		block := hs[0].ID

		mapping := template.DefaultTexture(block).Put(template.All, template.BlockModel(block))
		model, err := template.CubeAll.Create(block, mapping)
		if err != nil {
			return nil, err
		}
		return &Output{
			BlockStates: []registry.Entry{blockstate.Simple(block, blockstate.Model(model.Key))},
			Models:      []registry.Entry{model},
		}, nil
	}
}

// AliasBlock renders role with the model generated for target. No model is
// emitted, the placement only references the target's key.
func AliasBlock(role, target string) Func {
	return func(s palette.Subject, lookup palette.Lookup) (*Output, error) {
		hs, err := resolve(lookup, s, role, target)
		if err != nil {
			return nil, err
		}
		if err := requireBlock(s, role, hs[0]); err != nil {
			return nil, err
		}
		return &Output{
			BlockStates: []registry.Entry{
				blockstate.Simple(hs[0].ID, blockstate.Model(template.BlockModel(hs[1].ID))),
			},
		}, nil
	}
}

// Carpet emits the vanilla carpet model textured with the subject's wool.
func Carpet(s palette.Subject, lookup palette.Lookup) (*Output, error) {
	hs, err := resolve(lookup, s, palette.RoleCarpet, palette.RoleWool)
	if err != nil {
		return nil, err
	}
	carpet, wool := hs[0].ID, hs[1].ID

	model, err := template.Carpet.Create(carpet, template.WoolOf(wool))
	if err != nil {
		return nil, err
	}
	return &Output{
		BlockStates: []registry.Entry{blockstate.Simple(carpet, blockstate.Model(model.Key))},
		Models:      []registry.Entry{model},
	}, nil
}

type candleCount struct {
	count  int
	suffix string
	tpl    template.Template
}

var candleCounts = []candleCount{
	{count: 1, suffix: "_one_candle", tpl: template.Candle1},
	{count: 2, suffix: "_two_candles", tpl: template.Candle2},
	{count: 3, suffix: "_three_candles", tpl: template.Candle3},
	{count: 4, suffix: "_four_candles", tpl: template.Candle4},
}

// Candles emits the eight candle models, the candle placement dispatching on
// candles x lit, and the two candle cake models with their lit dispatch.
func Candles(s palette.Subject, lookup palette.Lookup) (*Output, error) {
	hs, err := resolve(lookup, s, palette.RoleCandle, palette.RoleCandleCake)
	if err != nil {
		return nil, err
	}
	candle, cake := hs[0].ID, hs[1].ID

	unlit := template.Cube(template.BlockTexture(candle, ""))
	lit := template.Cube(template.BlockTexture(candle, "_lit"))

	out := &Output{}
	dispatch := blockstate.NewDispatch(blockstate.Candles, blockstate.Lit)
	for _, c := range candleCounts {
		for _, isLit := range []bool{false, true} {
			suffix, mapping := c.suffix, unlit
			if isLit {
				suffix, mapping = c.suffix+"_lit", lit
			}
			model, err := c.tpl.CreateWithSuffix(candle, suffix, mapping)
			if err != nil {
				return nil, err
			}
			out.Models = append(out.Models, model)
			dispatch.Select(blockstate.Model(model.Key), c.count, isLit)
		}
	}
	candleState, err := blockstate.Dispatched(candle, dispatch)
	if err != nil {
		return nil, err
	}

	cakeModel, err := template.CakeCandle.Create(cake, template.CandleCake(candle, false))
	if err != nil {
		return nil, err
	}
	cakeLitModel, err := template.CakeCandle.CreateWithSuffix(cake, "_lit", template.CandleCake(candle, true))
	if err != nil {
		return nil, err
	}
	cakeState, err := blockstate.Dispatched(cake, blockstate.BooleanDispatch(blockstate.Lit,
		blockstate.Model(cakeLitModel.Key),
		blockstate.Model(cakeModel.Key),
	))
	if err != nil {
		return nil, err
	}

	out.Models = append(out.Models, cakeModel, cakeLitModel)
	out.BlockStates = append(out.BlockStates, candleState, cakeState)
	return out, nil
}

// Glass emits the stained glass block and its pane: five pane models, the
// pane's flat item and a multi-part placement connecting to neighbours.
func Glass(s palette.Subject, lookup palette.Lookup) (*Output, error) {
	hs, err := resolve(lookup, s, palette.RoleStainedGlass, palette.RoleStainedGlassPane)
	if err != nil {
		return nil, err
	}
	glass, pane := hs[0], hs[1]

	glassTemplate := template.WithParent(resloc.New(glass.ID.Namespace, "block/stained_glass"), template.All)
	glassModel, err := glassTemplate.Create(glass.ID, template.DefaultTexture(glass.ID).Put(template.All, template.BlockModel(glass.ID)))
	if err != nil {
		return nil, err
	}

	mapping := template.PaneOf(glass.ID, pane.ID)
	paneTemplates := []template.Template{
		template.PanePost,
		template.PaneSide,
		template.PaneSideAlt,
		template.PaneNoSide,
		template.PaneNoSideAlt,
	}
	paneModels := make([]registry.Entry, len(paneTemplates))
	for i, tpl := range paneTemplates {
		if paneModels[i], err = tpl.Create(pane.ID, mapping); err != nil {
			return nil, err
		}
	}
	post, side, sideAlt := blockstate.Model(paneModels[0].Key), blockstate.Model(paneModels[1].Key), blockstate.Model(paneModels[2].Key)
	noSide, noSideAlt := blockstate.Model(paneModels[3].Key), blockstate.Model(paneModels[4].Key)

	paneState := blockstate.NewMultiPart(pane.ID).
		Always(post).
		With(blockstate.When(blockstate.North, true), side).
		With(blockstate.When(blockstate.East, true), side.WithY(blockstate.R90)).
		With(blockstate.When(blockstate.South, true), sideAlt).
		With(blockstate.When(blockstate.West, true), sideAlt.WithY(blockstate.R90)).
		With(blockstate.When(blockstate.North, false), noSide).
		With(blockstate.When(blockstate.East, false), noSideAlt).
		With(blockstate.When(blockstate.South, false), noSideAlt.WithY(blockstate.R90)).
		With(blockstate.When(blockstate.West, false), noSide.WithY(blockstate.R270)).
		Entry()

	out := &Output{
		BlockStates: []registry.Entry{
			blockstate.Simple(glass.ID, blockstate.Model(glassModel.Key)),
			paneState,
		},
		Models: append([]registry.Entry{glassModel}, paneModels...),
	}

	if pane.Item {
		item, err := template.FlatItem.CreateAt(template.ItemModel(pane.ID), template.Layer0Block(glass.ID))
		if err != nil {
			return nil, err
		}
		out.Models = append(out.Models, item)
	}
	return out, nil
}
