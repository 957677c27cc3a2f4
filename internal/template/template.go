package template

import (
	"fmt"

	"github.com/specialistvlad/dyegen/internal/registry"
	"github.com/specialistvlad/dyegen/internal/resloc"
)

// Document is the serialized form of a model. Field order matches sorted
// key order so the encoder output is stable.
type Document struct {
	Parent   *resloc.Location           `json:"parent,omitempty"`
	Textures map[string]resloc.Location `json:"textures,omitempty"`
}

// Template is an immutable model skeleton shared by every subject.
type Template struct {
	Parent *resloc.Location
	Suffix string
	Slots  []*Slot
}

// Block declares a template whose parent is `minecraft:block/<parent>`.
func Block(parent, suffix string, slots ...*Slot) Template {
	loc := resloc.Vanilla("block/" + parent)
	return Template{Parent: &loc, Suffix: suffix, Slots: slots}
}

// Item declares a template whose parent is `minecraft:item/<parent>`.
func Item(parent string, slots ...*Slot) Template {
	loc := resloc.Vanilla("item/" + parent)
	return Template{Parent: &loc, Slots: slots}
}

// WithParent declares a template with an arbitrary parent model.
func WithParent(parent resloc.Location, slots ...*Slot) Template {
	return Template{Parent: &parent, Slots: slots}
}

// Bare declares a parentless template.
func Bare(slots ...*Slot) Template {
	return Template{Slots: slots}
}

// Create instantiates the template for block, keyed at
// `ns:block/<path><template suffix>`.
func (t Template) Create(block resloc.Location, mapping Mapping) (registry.Entry, error) {
	return t.CreateAt(BlockModelWithSuffix(block, t.Suffix), mapping)
}

// CreateWithSuffix instantiates the template keyed at
// `ns:block/<path><suffix>`. It is used when one block needs several sibling
// models from the same template.
func (t Template) CreateWithSuffix(block resloc.Location, suffix string, mapping Mapping) (registry.Entry, error) {
	return t.CreateAt(BlockModelWithSuffix(block, suffix), mapping)
}

// CreateAt instantiates the template under an explicit model location.
func (t Template) CreateAt(key resloc.Location, mapping Mapping) (registry.Entry, error) {
	doc, err := t.instantiate(mapping)
	if err != nil {
		return registry.Entry{}, fmt.Errorf("model %s: %w", key, err)
	}
	return registry.Entry{
		Key:     key,
		Produce: func() any { return doc },
	}, nil
}

func (t Template) instantiate(mapping Mapping) (*Document, error) {
	doc := &Document{Parent: t.Parent}
	if len(t.Slots) == 0 {
		return doc, nil
	}

	doc.Textures = make(map[string]resloc.Location, len(t.Slots))
	for _, slot := range t.Slots {
		loc, err := mapping.Get(slot)
		if err != nil {
			return nil, err
		}
		doc.Textures[slot.ID] = loc
	}
	return doc, nil
}

// Delegate returns an entry whose document only points at parent. Item
// models that render exactly like their block use it.
func Delegate(key, parent resloc.Location) registry.Entry {
	doc := &Document{Parent: &parent}
	return registry.Entry{
		Key:     key,
		Produce: func() any { return doc },
	}
}
