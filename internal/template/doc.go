// Package template builds model documents from reusable skeletons.
//
// A Template names a parent model and the texture slots it needs. A Mapping
// binds slots to texture locations for one block. Slots form a fallback
// chain (particle falls back to texture, which falls back to all), so a
// mapping that binds `all` satisfies every slot descending from it.
//
// Instantiating a template yields a registry.Entry whose producer renders
//
//	{"parent": "<template parent>", "textures": {"<slot>": "<location>"}}
//
// Slot resolution happens eagerly, so a missing binding surfaces as a
// MissingSlotError while recipes run rather than as an absent JSON field.
package template
