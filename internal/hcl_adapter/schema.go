package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all possible top-level content from
// any palette file.
type fileRoot struct {
	Namespace *string         `hcl:"namespace,optional"`
	Palettes  []*PaletteBlock `hcl:"palette,block"`
	Roles     []*RoleBlock    `hcl:"role,block"`
}

// PaletteBlock is a `palette { colors = [...] }` block.
type PaletteBlock struct {
	Colors []string `hcl:"colors"`
}

// RoleBlock is a `role "<name>" { ... }` block. ID is kept as an expression
// and evaluated once per colour.
type RoleBlock struct {
	Name  string         `hcl:"name,label"`
	ID    hcl.Expression `hcl:"id"`
	Block *bool          `hcl:"block,optional"`
	Item  *bool          `hcl:"item,optional"`
}
