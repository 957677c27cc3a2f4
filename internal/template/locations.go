package template

import "github.com/specialistvlad/dyegen/internal/resloc"

// BlockModel returns the model location of a block: `ns:block/<path>`.
func BlockModel(block resloc.Location) resloc.Location {
	return block.WithPrefix("block/")
}

// BlockModelWithSuffix returns `ns:block/<path><suffix>`.
func BlockModelWithSuffix(block resloc.Location, suffix string) resloc.Location {
	return block.WithPrefix("block/").WithSuffix(suffix)
}

// ItemModel returns the model location of an item: `ns:item/<path>`.
func ItemModel(item resloc.Location) resloc.Location {
	return item.WithPrefix("item/")
}

// BlockTexture returns `ns:block/<path><suffix>`.
func BlockTexture(block resloc.Location, suffix string) resloc.Location {
	return block.WithPrefix("block/").WithSuffix(suffix)
}

// ItemTexture returns `ns:item/<path>`.
func ItemTexture(item resloc.Location) resloc.Location {
	return item.WithPrefix("item/")
}

// VanillaBlockModel returns `minecraft:block/<name>`.
func VanillaBlockModel(name string) resloc.Location {
	return resloc.Vanilla("block/" + name)
}
