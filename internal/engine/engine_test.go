package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/specialistvlad/dyegen/internal/blockstate"
	"github.com/specialistvlad/dyegen/internal/palette"
	"github.com/specialistvlad/dyegen/internal/recipe"
	"github.com/specialistvlad/dyegen/internal/registry"
	"github.com/specialistvlad/dyegen/internal/resloc"
	"github.com/specialistvlad/dyegen/internal/template"
	"github.com/specialistvlad/dyegen/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loc(path string) resloc.Location {
	return resloc.New(palette.DefaultNamespace, path)
}

func single(t *testing.T, colors ...string) *palette.Palette {
	t.Helper()
	p, err := palette.Build(palette.DefaultNamespace, colors, palette.DefaultRoles)
	require.NoError(t, err)
	return p
}

func TestGenerate_Maroon(t *testing.T) {
	p := single(t, "maroon")

	res, err := New().Generate(testutil.Context(t), p.Subjects(), p)
	require.NoError(t, err)

	assert.Equal(t, 15, res.BlockStates.Len())
	assert.Equal(t, 37, res.Models.Len())

	for _, key := range []string{
		"block/maroon_candle_one_candle", "block/maroon_candle_one_candle_lit",
		"block/maroon_candle_two_candles", "block/maroon_candle_two_candles_lit",
		"block/maroon_candle_three_candles", "block/maroon_candle_three_candles_lit",
		"block/maroon_candle_four_candles", "block/maroon_candle_four_candles_lit",
	} {
		assert.True(t, res.Models.Has(loc(key)), key)
	}

	doc, ok := res.BlockStates.Get(loc("maroon_candle"))
	require.True(t, ok)
	assert.Len(t, doc.(*blockstate.VariantsDocument).Variants, 8)

	rockwool, ok := res.Models.Get(loc("item/maroon_rockwool"))
	require.True(t, ok)
	assert.Equal(t, loc("block/maroon_wool"), *rockwool.(*template.Document).Parent)
}

func TestGenerate_ScalesWithSubjects(t *testing.T) {
	p := single(t, palette.DefaultColors...)

	res, err := New().Generate(testutil.Context(t), p.Subjects(), p)
	require.NoError(t, err)

	n := len(palette.DefaultColors)
	assert.Equal(t, 15*n, res.BlockStates.Len())
	assert.Equal(t, 37*n, res.Models.Len())
}

func TestGenerate_DuplicateKeyIsFatal(t *testing.T) {
	p := single(t, "maroon")
	wool := recipe.Recipe{Name: "wool", Apply: recipe.Cube(palette.RoleWool)}

	_, err := New(recipe.Stage{Name: "blocks", Recipes: []recipe.Recipe{wool, wool}}).
		Generate(testutil.Context(t), p.Subjects(), p)

	var dupErr *registry.DuplicateKeyError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, registry.BlockStates, dupErr.Kind)
	assert.Equal(t, loc("maroon_wool"), dupErr.Key)
	assert.ErrorContains(t, err, "recipe wool for subject maroon")
}

func TestGenerate_ItemDefaultsFirstWins(t *testing.T) {
	p := single(t, "maroon")
	custom := recipe.Recipe{Name: "custom_wool_item", Apply: func(s palette.Subject, lookup palette.Lookup) (*recipe.Output, error) {
		return &recipe.Output{ItemDefaults: []registry.Entry{
			template.Delegate(loc("item/maroon_wool"), resloc.Vanilla("block/white_wool")),
		}}, nil
	}}
	stage := recipe.Stage{Name: "items", Recipes: []recipe.Recipe{
		custom,
		{Name: "wool_item", Apply: recipe.BlockItem(palette.RoleWool)},
	}}

	ctx, logs := testutil.ContextWithLogs(t)
	res, err := New(stage).Generate(ctx, p.Subjects(), p)
	require.NoError(t, err)

	doc, ok := res.Models.Get(loc("item/maroon_wool"))
	require.True(t, ok)
	assert.Equal(t, resloc.Vanilla("block/white_wool"), *doc.(*template.Document).Parent)
	assert.Contains(t, logs.String(), "Item model already defined, keeping the first one.")
}

func TestGenerate_MissingSlotAborts(t *testing.T) {
	p := single(t, "maroon")
	broken := recipe.Recipe{Name: "broken", Apply: func(s palette.Subject, lookup palette.Lookup) (*recipe.Output, error) {
		entry, err := template.Carpet.Create(loc("maroon_carpet"), template.NewMapping())
		if err != nil {
			return nil, err
		}
		return &recipe.Output{Models: []registry.Entry{entry}}, nil
	}}

	_, err := New(recipe.Stage{Name: "blocks", Recipes: []recipe.Recipe{broken}}).
		Generate(testutil.Context(t), p.Subjects(), p)

	var slotErr *template.MissingSlotError
	require.True(t, errors.As(err, &slotErr))
	assert.Equal(t, "wool", slotErr.Slot)
}

func TestGenerate_Cancelled(t *testing.T) {
	p := single(t, "maroon")
	ctx, cancel := context.WithCancel(testutil.Context(t))
	cancel()

	_, err := New().Generate(ctx, p.Subjects(), p)
	assert.ErrorIs(t, err, context.Canceled)
}
