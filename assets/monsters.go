// Package assets holds the built-in default content tables. The catalog
// loader falls back to these whenever a data document is missing or broken,
// so the game always has something to run on.
package assets

import "shadowmaster/internal/catalog"

// DefaultMonsters returns the recruitable creature archetypes.
func DefaultMonsters() map[string]catalog.MonsterDef {
	return map[string]catalog.MonsterDef{
		"goblin": {
			Name:        "Goblin",
			Emoji:       "👺",
			Cost:        30,
			BaseStats:   catalog.Stats{Strength: 2, Defense: 2, Speed: 4, Magic: 1},
			Description: "Small, vicious, and cheap. Arrives in numbers.",
			Abilities:   []string{"shadow_strike"},
		},
		"imp": {
			Name:        "Imp",
			Emoji:       "😈",
			Cost:        45,
			BaseStats:   catalog.Stats{Strength: 2, Defense: 1, Speed: 5, Magic: 3},
			Description: "A cackling sprite of the lower planes.",
			Abilities:   []string{"shadow_strike"},
		},
		"orc": {
			Name:        "Orc",
			Emoji:       "👹",
			Cost:        60,
			BaseStats:   catalog.Stats{Strength: 5, Defense: 4, Speed: 2, Magic: 1},
			Description: "A wall of muscle with a grudge against doors.",
			Abilities:   []string{"brute_force"},
		},
		"shadow": {
			Name:        "Shadow",
			Emoji:       "👤",
			Cost:        80,
			BaseStats:   catalog.Stats{Strength: 3, Defense: 2, Speed: 6, Magic: 4},
			Description: "A sliver of night that learned to hate.",
			Abilities:   []string{"shadow_strike", "terror"},
		},
		"sorcerer": {
			Name:        "Sorcerer",
			Emoji:       "🧙",
			Cost:        100,
			BaseStats:   catalog.Stats{Strength: 1, Defense: 2, Speed: 3, Magic: 7},
			Description: "Traded a soul for syllables that burn.",
			Abilities:   []string{"dark_magic"},
		},
		"wraith": {
			Name:        "Wraith",
			Emoji:       "👻",
			Cost:        130,
			BaseStats:   catalog.Stats{Strength: 4, Defense: 3, Speed: 5, Magic: 5},
			Description: "Feeds on the warmth of the living.",
			Abilities:   []string{"life_drain", "terror"},
		},
		"troll": {
			Name:        "Troll",
			Emoji:       "🧌",
			Cost:        160,
			BaseStats:   catalog.Stats{Strength: 7, Defense: 6, Speed: 1, Magic: 1},
			Description: "Regrows everything except patience.",
			Abilities:   []string{"brute_force", "rage"},
		},
		"lich": {
			Name:        "Lich",
			Emoji:       "💀",
			Cost:        220,
			BaseStats:   catalog.Stats{Strength: 3, Defense: 4, Speed: 3, Magic: 8},
			Description: "Death was a career move.",
			Abilities:   []string{"dark_magic", "life_drain"},
		},
		"demon": {
			Name:        "Demon",
			Emoji:       "👿",
			Cost:        300,
			BaseStats:   catalog.Stats{Strength: 7, Defense: 4, Speed: 5, Magic: 6},
			Description: "Bound by contract, motivated by cruelty.",
			Abilities:   []string{"dark_magic", "terror"},
		},
		"dragon": {
			Name:        "Dragon",
			Emoji:       "🐉",
			Cost:        500,
			BaseStats:   catalog.Stats{Strength: 9, Defense: 7, Speed: 4, Magic: 7},
			Description: "The reason kingdoms keep their gold in vaults.",
			Abilities:   []string{"brute_force", "dark_magic", "terror"},
		},
	}
}

// WildMonsterKeys are the archetypes that can be found roaming the depths.
var WildMonsterKeys = []string{"goblin", "orc", "sorcerer"}
