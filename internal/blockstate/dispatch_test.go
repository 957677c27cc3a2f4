package blockstate

import (
	"encoding/json"
	"testing"

	"github.com/specialistvlad/dyegen/internal/resloc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func model(path string) Variant {
	return Model(resloc.New("dyenamics", path))
}

func TestDispatch_Complete(t *testing.T) {
	d := NewDispatch(Candles, Lit)
	for count := 1; count <= 4; count++ {
		for _, lit := range []bool{false, true} {
			d.Select(model("block/c"), count, lit)
		}
	}

	variants, err := d.Build()
	require.NoError(t, err)
	assert.Len(t, variants, 8)
	assert.Contains(t, variants, "candles=1,lit=false")
	assert.Contains(t, variants, "candles=4,lit=true")
}

func TestDispatch_Incomplete(t *testing.T) {
	d := NewDispatch(Candles, Lit)
	for count := 1; count <= 4; count++ {
		d.Select(model("block/c"), count, false)
	}
	d.Select(model("block/c"), 1, true)

	_, err := d.Build()
	var incomplete *IncompleteDispatchError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, []string{"candles", "lit"}, incomplete.Axes)
	assert.Equal(t, []string{"candles=2,lit=true", "candles=3,lit=true", "candles=4,lit=true"}, incomplete.Missing)
}

func TestDispatch_InvalidSelections(t *testing.T) {
	testCases := []struct {
		name   string
		build  func() *Dispatch
		errMsg string
	}{
		{
			name: "value out of range",
			build: func() *Dispatch {
				return NewDispatch(Candles).Select(model("a"), 5)
			},
			errMsg: "not valid for property candles",
		},
		{
			name: "wrong value type",
			build: func() *Dispatch {
				return NewDispatch(Lit).Select(model("a"), "yes")
			},
			errMsg: "not valid for property lit",
		},
		{
			name: "wrong arity",
			build: func() *Dispatch {
				return NewDispatch(Candles, Lit).Select(model("a"), 1)
			},
			errMsg: "dispatch has 2 axes",
		},
		{
			name: "repeated combination",
			build: func() *Dispatch {
				return NewDispatch(Lit).Select(model("a"), true).Select(model("b"), true).Select(model("c"), false)
			},
			errMsg: "lit=true selected twice",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.build().Build()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestBooleanDispatch(t *testing.T) {
	entry, err := Dispatched(resloc.New("dyenamics", "maroon_candle_cake"),
		BooleanDispatch(Lit, model("block/maroon_candle_cake_lit"), model("block/maroon_candle_cake")))
	require.NoError(t, err)

	data, err := json.Marshal(entry.Produce())
	require.NoError(t, err)
	assert.JSONEq(t, `{"variants": {
		"lit=false": {"model": "dyenamics:block/maroon_candle_cake"},
		"lit=true": {"model": "dyenamics:block/maroon_candle_cake_lit"}
	}}`, string(data))
}

func TestDispatched_ReportsBlock(t *testing.T) {
	_, err := Dispatched(resloc.New("dyenamics", "maroon_candle"), NewDispatch(Lit).Select(model("a"), true))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blockstate dyenamics:maroon_candle")
}

func TestSimple(t *testing.T) {
	entry := Simple(resloc.New("dyenamics", "maroon_bed"), Model(resloc.Vanilla("block/bed")))

	data, err := json.Marshal(entry.Produce())
	require.NoError(t, err)
	assert.JSONEq(t, `{"variants": {"": {"model": "minecraft:block/bed"}}}`, string(data))
}

func TestMultiPart(t *testing.T) {
	entry := NewMultiPart(resloc.New("dyenamics", "maroon_stained_glass_pane")).
		Always(model("block/post")).
		With(When(North, true), model("block/side")).
		With(When(West, false), model("block/noside").WithY(R270)).
		Entry()

	data, err := json.Marshal(entry.Produce())
	require.NoError(t, err)
	assert.JSONEq(t, `{"multipart": [
		{"apply": {"model": "dyenamics:block/post"}},
		{"apply": {"model": "dyenamics:block/side"}, "when": {"north": "true"}},
		{"apply": {"model": "dyenamics:block/noside", "y": 270}, "when": {"west": "false"}}
	]}`, string(data))
}

func TestCondition_InvalidValuePanics(t *testing.T) {
	assert.Panics(t, func() { When(Candles, 9) })
}
