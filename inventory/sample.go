package inventory

import "github.com/gravitas-015/gamekit/item"

func intPtr(v int) *int { return &v }

// SampleCatalog returns a small fantasy-flavored item catalog used by the
// package tests and documentation examples.
func SampleCatalog() *item.Definitions[string, item.AnySlot, struct{}] {
	defs, err := item.NewDefinitions(
		item.Definition[string, item.AnySlot, struct{}]{
			Key: "wood", Name: "wood", FriendlyName: "Wood",
			Description:  "A bundle of logs.",
			MaximumStack: intPtr(64),
		},
		item.Definition[string, item.AnySlot, struct{}]{
			Key: "stone", Name: "stone", FriendlyName: "Stone",
			MaximumStack: intPtr(64),
		},
		item.Definition[string, item.AnySlot, struct{}]{
			Key: "gold-coin", Name: "gold_coin", FriendlyName: "Gold Coin",
		},
		item.Definition[string, item.AnySlot, struct{}]{
			Key: "iron-pickaxe", Name: "iron_pickaxe", FriendlyName: "Iron Pickaxe",
			MaximumStack:      intPtr(1),
			MaximumDurability: intPtr(128),
		},
		item.Definition[string, item.AnySlot, struct{}]{
			Key: "bread", Name: "bread", FriendlyName: "Bread",
			MaximumStack: intPtr(16),
		},
	)
	if err != nil {
		panic(err)
	}
	return defs
}

// SampleInventories returns a filled fixed backpack and an empty dynamic
// pouch sharing the sample catalog.
func SampleInventories() (*Inventory[string, item.AnySlot, struct{}], *Inventory[string, item.AnySlot, struct{}], *item.Definitions[string, item.AnySlot, struct{}]) {
	defs := SampleCatalog()

	backpack := NewFixed[string, item.AnySlot, struct{}](9)
	wood, _ := defs.NewStack("wood", 32)
	stone, _ := defs.NewStack("stone", 12)
	pick, _ := defs.NewStack("iron-pickaxe", 1)
	_ = backpack.Insert(wood, defs)
	_ = backpack.Insert(stone, defs)
	_ = backpack.Insert(pick, defs)

	pouch := NewDynamic[string, item.AnySlot, struct{}](1, 4)

	return backpack, pouch, defs
}
