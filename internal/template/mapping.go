package template

import (
	"fmt"
	"maps"

	"github.com/specialistvlad/dyegen/internal/resloc"
)

// MissingSlotError reports a slot that neither the mapping nor any of the
// slot's ancestors bind.
type MissingSlotError struct {
	Slot string
}

func (e *MissingSlotError) Error() string {
	return fmt.Sprintf("can't find texture for slot %q", e.Slot)
}

// Mapping binds texture slots to locations. The zero value is not usable;
// call NewMapping.
type Mapping struct {
	slots map[*Slot]resloc.Location
}

// NewMapping returns an empty mapping.
func NewMapping() Mapping {
	return Mapping{slots: make(map[*Slot]resloc.Location)}
}

// Put returns a copy of m with slot bound to loc. The receiver is left
// untouched so shared mappings can be extended per recipe.
func (m Mapping) Put(slot *Slot, loc resloc.Location) Mapping {
	next := Mapping{slots: maps.Clone(m.slots)}
	if next.slots == nil {
		next.slots = make(map[*Slot]resloc.Location)
	}
	next.slots[slot] = loc
	return next
}

// Get resolves slot, walking up its parent chain.
func (m Mapping) Get(slot *Slot) (resloc.Location, error) {
	for s := slot; s != nil; s = s.Parent {
		if loc, ok := m.slots[s]; ok {
			return loc, nil
		}
	}
	return resloc.Location{}, &MissingSlotError{Slot: slot.ID}
}

// Cube binds `all` to a single texture.
func Cube(texture resloc.Location) Mapping {
	return NewMapping().Put(All, texture)
}

// DefaultTexture binds `texture` to the block's own texture.
func DefaultTexture(block resloc.Location) Mapping {
	return NewMapping().Put(Texture, BlockTexture(block, ""))
}

// ParticleOf binds `particle` to the block's own texture.
func ParticleOf(block resloc.Location) Mapping {
	return NewMapping().Put(Particle, BlockTexture(block, ""))
}

// WoolOf binds `wool` to the block's own texture.
func WoolOf(block resloc.Location) Mapping {
	return NewMapping().Put(Wool, BlockTexture(block, ""))
}

// Layer0Block binds `layer0` to a block texture, for flat items that reuse
// the block's sprite.
func Layer0Block(block resloc.Location) Mapping {
	return NewMapping().Put(Layer0, BlockTexture(block, ""))
}

// Layer0Item binds `layer0` to the item's own texture.
func Layer0Item(item resloc.Location) Mapping {
	return NewMapping().Put(Layer0, ItemTexture(item))
}

// PaneOf binds the glass texture to `pane` and the pane top to `edge`.
func PaneOf(glass, pane resloc.Location) Mapping {
	return NewMapping().
		Put(Pane, BlockTexture(glass, "")).
		Put(Edge, BlockTexture(pane, "_top"))
}

// CandleCake binds the vanilla cake textures plus the candle texture, lit or
// not.
func CandleCake(candle resloc.Location, lit bool) Mapping {
	suffix := ""
	if lit {
		suffix = "_lit"
	}
	return NewMapping().
		Put(Particle, resloc.Vanilla("block/cake_side")).
		Put(Bottom, resloc.Vanilla("block/cake_bottom")).
		Put(Top, resloc.Vanilla("block/cake_top")).
		Put(Side, resloc.Vanilla("block/cake_side")).
		Put(Candle, BlockTexture(candle, suffix))
}
