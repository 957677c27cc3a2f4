package palette

// Roles looked up by the recipe set.
const (
	RoleWool             = "wool"
	RoleCarpet           = "carpet"
	RoleBed              = "bed"
	RoleBanner           = "banner"
	RoleWallBanner       = "wall_banner"
	RoleShulkerBox       = "shulker_box"
	RoleCandle           = "candle"
	RoleCandleCake       = "candle_cake"
	RoleTerracotta       = "terracotta"
	RoleGlazedTerracotta = "glazed_terracotta"
	RoleConcrete         = "concrete"
	RoleConcretePowder   = "concrete_powder"
	RoleRockwool         = "rockwool"
	RoleStainedGlass     = "stained_glass"
	RoleStainedGlassPane = "stained_glass_pane"
	RoleDye              = "dye"
)

// RoleSpec describes how a role is named for every subject: `<subject><Suffix>`.
type RoleSpec struct {
	Role   string
	Suffix string
	Block  bool
	Item   bool
}

// DefaultNamespace is the namespace of the built-in palette.
const DefaultNamespace = "dyenamics"

// DefaultColors is the built-in subject enumeration.
var DefaultColors = []string{
	"peach",
	"aquamarine",
	"fluorescent",
	"mint",
	"maroon",
	"bubblegum",
	"lavender",
	"persimmon",
	"cherenkov",
}

// DefaultRoles is the built-in role table.
var DefaultRoles = []RoleSpec{
	{Role: RoleWool, Suffix: "_wool", Block: true, Item: true},
	{Role: RoleCarpet, Suffix: "_carpet", Block: true, Item: true},
	{Role: RoleBed, Suffix: "_bed", Block: true, Item: true},
	{Role: RoleBanner, Suffix: "_banner", Block: true, Item: true},
	{Role: RoleWallBanner, Suffix: "_wall_banner", Block: true},
	{Role: RoleShulkerBox, Suffix: "_shulker_box", Block: true, Item: true},
	{Role: RoleCandle, Suffix: "_candle", Block: true, Item: true},
	{Role: RoleCandleCake, Suffix: "_candle_cake", Block: true},
	{Role: RoleTerracotta, Suffix: "_terracotta", Block: true, Item: true},
	{Role: RoleGlazedTerracotta, Suffix: "_glazed_terracotta", Block: true, Item: true},
	{Role: RoleConcrete, Suffix: "_concrete", Block: true, Item: true},
	{Role: RoleConcretePowder, Suffix: "_concrete_powder", Block: true, Item: true},
	{Role: RoleRockwool, Suffix: "_rockwool", Block: true, Item: true},
	{Role: RoleStainedGlass, Suffix: "_stained_glass", Block: true, Item: true},
	{Role: RoleStainedGlassPane, Suffix: "_stained_glass_pane", Block: true, Item: true},
	{Role: RoleDye, Suffix: "_dye", Item: true},
}

// Build creates a palette from subject names and suffix-based role specs.
func Build(namespace string, colors []string, roles []RoleSpec) (*Palette, error) {
	p, err := New(namespace)
	if err != nil {
		return nil, err
	}
	for _, color := range colors {
		subject, err := p.AddSubject(color)
		if err != nil {
			return nil, err
		}
		for _, spec := range roles {
			if err := p.Bind(subject, spec.Role, color+spec.Suffix, spec.Block, spec.Item); err != nil {
				return nil, err
			}
		}
	}
	return p, nil
}

// Default returns the built-in palette.
func Default() *Palette {
	p, err := Build(DefaultNamespace, DefaultColors, DefaultRoles)
	if err != nil {
		panic(err)
	}
	return p
}
