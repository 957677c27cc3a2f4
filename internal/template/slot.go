package template

// Slot is a named texture variable inside a model. Parent is consulted when
// a Mapping has no direct binding for the slot.
type Slot struct {
	ID     string
	Parent *Slot
}

// NewSlot declares a slot with an optional fallback parent.
func NewSlot(id string, parent *Slot) *Slot {
	return &Slot{ID: id, Parent: parent}
}

func (s *Slot) String() string {
	return s.ID
}

// Slots used by the block and item templates below.
var (
	All      = NewSlot("all", nil)
	Texture  = NewSlot("texture", All)
	Particle = NewSlot("particle", Texture)
	End      = NewSlot("end", All)
	Bottom   = NewSlot("bottom", End)
	Top      = NewSlot("top", End)
	Side     = NewSlot("side", All)
	Wool     = NewSlot("wool", nil)
	Pane     = NewSlot("pane", nil)
	Edge     = NewSlot("edge", nil)
	Candle   = NewSlot("candle", nil)
	Layer0   = NewSlot("layer0", nil)
)
