package blockstate

import (
	"encoding/json"
	"fmt"

	"github.com/specialistvlad/dyegen/internal/registry"
	"github.com/specialistvlad/dyegen/internal/resloc"
)

// VariantsDocument is the serialized multi-variant form.
type VariantsDocument struct {
	Variants map[string]Variant `json:"variants"`
}

// MultiPartDocument is the serialized multi-part form.
type MultiPartDocument struct {
	Multipart []Part `json:"multipart"`
}

// Part is one layer of a multi-part document. A nil When applies always.
type Part struct {
	Apply Variant    `json:"apply"`
	When  *Condition `json:"when,omitempty"`
}

// Condition is a conjunction of property terms.
type Condition struct {
	terms map[string]string
}

// When starts a condition with a single term.
func When(prop Property, value any) *Condition {
	return (&Condition{terms: make(map[string]string)}).And(prop, value)
}

// And adds a term. Invalid values panic: conditions are declared in code.
func (c *Condition) And(prop Property, value any) *Condition {
	s, err := prop.Format(value)
	if err != nil {
		panic(fmt.Sprintf("blockstate: %v", err))
	}
	c.terms[prop.Name] = s
	return c
}

// MarshalJSON renders the terms as a flat object of strings.
func (c *Condition) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.terms)
}

// Simple returns a single-variant placement document for block.
func Simple(block resloc.Location, variant Variant) registry.Entry {
	doc := &VariantsDocument{Variants: map[string]Variant{"": variant}}
	return registry.Entry{
		Key:     block,
		Produce: func() any { return doc },
	}
}

// Dispatched returns a placement document driven by a dispatch table. The
// table is validated immediately.
func Dispatched(block resloc.Location, d *Dispatch) (registry.Entry, error) {
	variants, err := d.Build()
	if err != nil {
		return registry.Entry{}, fmt.Errorf("blockstate %s: %w", block, err)
	}
	doc := &VariantsDocument{Variants: variants}
	return registry.Entry{
		Key:     block,
		Produce: func() any { return doc },
	}, nil
}

// MultiPart accumulates parts for a multi-part document.
type MultiPart struct {
	block resloc.Location
	parts []Part
}

// NewMultiPart starts a multi-part document for block.
func NewMultiPart(block resloc.Location) *MultiPart {
	return &MultiPart{block: block}
}

// Always adds an unconditional part.
func (m *MultiPart) Always(v Variant) *MultiPart {
	m.parts = append(m.parts, Part{Apply: v})
	return m
}

// With adds a conditional part.
func (m *MultiPart) With(when *Condition, v Variant) *MultiPart {
	m.parts = append(m.parts, Part{Apply: v, When: when})
	return m
}

// Entry freezes the parts into a registry entry.
func (m *MultiPart) Entry() registry.Entry {
	doc := &MultiPartDocument{Multipart: append([]Part(nil), m.parts...)}
	return registry.Entry{
		Key:     m.block,
		Produce: func() any { return doc },
	}
}
