package assets

import "shadowmaster/internal/catalog"

// DefaultEquipment returns the equipment item templates, three per slot.
func DefaultEquipment() map[string]catalog.EquipmentDef {
	return map[string]catalog.EquipmentDef{
		// Weapons
		"rusty_blade": {
			Name: "Rusty Blade", Emoji: "🗡️", Slot: catalog.SlotWeapon, Cost: 25,
			Stats: catalog.Stats{Strength: 2},
		},
		"bone_cleaver": {
			Name: "Bone Cleaver", Emoji: "🪓", Slot: catalog.SlotWeapon, Cost: 80,
			Stats: catalog.Stats{Strength: 4, Speed: -1},
		},
		"soul_reaver": {
			Name: "Soul Reaver", Emoji: "⚔️", Slot: catalog.SlotWeapon, Cost: 200,
			Stats: catalog.Stats{Strength: 5, Magic: 3},
		},
		// Armor
		"leather_scraps": {
			Name: "Leather Scraps", Emoji: "🦺", Slot: catalog.SlotArmor, Cost: 20,
			Stats: catalog.Stats{Defense: 2},
		},
		"iron_plate": {
			Name: "Iron Plate", Emoji: "🛡️", Slot: catalog.SlotArmor, Cost: 90,
			Stats: catalog.Stats{Defense: 5, Speed: -1},
		},
		"nether_mail": {
			Name: "Nether Mail", Emoji: "⛓️", Slot: catalog.SlotArmor, Cost: 210,
			Stats: catalog.Stats{Defense: 6, Magic: 2},
		},
		// Boots
		"worn_boots": {
			Name: "Worn Boots", Emoji: "🥾", Slot: catalog.SlotBoots, Cost: 15,
			Stats: catalog.Stats{Speed: 2},
		},
		"stalker_treads": {
			Name: "Stalker Treads", Emoji: "👟", Slot: catalog.SlotBoots, Cost: 70,
			Stats: catalog.Stats{Speed: 4},
		},
		"void_striders": {
			Name: "Void Striders", Emoji: "🩰", Slot: catalog.SlotBoots, Cost: 180,
			Stats: catalog.Stats{Speed: 5, Magic: 2},
		},
		// Accessories
		"bone_charm": {
			Name: "Bone Charm", Emoji: "🦴", Slot: catalog.SlotAccessory, Cost: 35,
			Stats: catalog.Stats{Magic: 2},
		},
		"ember_ring": {
			Name: "Ember Ring", Emoji: "💍", Slot: catalog.SlotAccessory, Cost: 110,
			Stats: catalog.Stats{Strength: 2, Magic: 3},
		},
		"crown_of_whispers": {
			Name: "Crown of Whispers", Emoji: "👑", Slot: catalog.SlotAccessory, Cost: 260,
			Stats: catalog.Stats{Strength: 2, Defense: 2, Speed: 2, Magic: 2},
		},
	}
}
