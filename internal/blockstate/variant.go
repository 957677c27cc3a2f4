package blockstate

import "github.com/specialistvlad/dyegen/internal/resloc"

// Rotation is a model rotation in degrees, restricted to quarter turns.
type Rotation int

const (
	R0   Rotation = 0
	R90  Rotation = 90
	R180 Rotation = 180
	R270 Rotation = 270
)

// Variant selects a model and how it is oriented.
type Variant struct {
	Model  resloc.Location `json:"model"`
	UVLock bool            `json:"uvlock,omitempty"`
	X      Rotation        `json:"x,omitempty"`
	Y      Rotation        `json:"y,omitempty"`
}

// Model returns an unrotated variant for model.
func Model(model resloc.Location) Variant {
	return Variant{Model: model}
}

// WithY returns a copy rotated around the vertical axis.
func (v Variant) WithY(r Rotation) Variant {
	v.Y = r
	return v
}

// WithX returns a copy rotated around the horizontal axis.
func (v Variant) WithX(r Rotation) Variant {
	v.X = r
	return v
}
