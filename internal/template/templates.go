package template

// Block model templates.
var (
	CubeAll      = Block("cube_all", "", All)
	Carpet       = Block("carpet", "", Wool)
	ParticleOnly = Bare(Particle)

	Candle1    = Block("template_candle", "", All, Particle)
	Candle2    = Block("template_two_candles", "", All, Particle)
	Candle3    = Block("template_three_candles", "", All, Particle)
	Candle4    = Block("template_four_candles", "", All, Particle)
	CakeCandle = Block("template_cake_with_candle", "", Candle, Bottom, Side, Top, Particle)

	PanePost      = Block("template_glass_pane_post", "_post", Pane, Edge)
	PaneSide      = Block("template_glass_pane_side", "_side", Pane, Edge)
	PaneSideAlt   = Block("template_glass_pane_side_alt", "_side_alt", Pane, Edge)
	PaneNoSide    = Block("template_glass_pane_noside", "_noside", Pane)
	PaneNoSideAlt = Block("template_glass_pane_noside_alt", "_noside_alt", Pane)
)

// Item model templates.
var (
	FlatItem            = Item("generated", Layer0)
	BedInventory        = Item("template_bed", Particle)
	BannerInventory     = Item("template_banner")
	ShulkerBoxInventory = Item("template_shulker_box", Particle)
)
