package assets

import "shadowmaster/internal/catalog"

// DefaultMissions returns the mission templates. Raids close to home resolve
// immediately as observed skirmishes; distant operations are deferred and
// resolve when the player rests.
func DefaultMissions() map[string]catalog.MissionDef {
	return map[string]catalog.MissionDef{
		"village": {
			Name:          "Raid the Village",
			Description:   "A sleepy hamlet with a poorly guarded granary.",
			Difficulty:    "Easy",
			EnergyCost:    1,
			RequiredPower: 20,
			UnlockLevel:   1,
			Reward:        catalog.Reward{Gold: 60, Reputation: 5, Items: []string{"rusty_blade", "worn_boots"}},
			Enemies: []catalog.EnemyGroup{
				{Type: "village_guard", Count: 2},
				{Type: "farm_worker", Count: 3},
			},
			Mode: catalog.Immediate,
		},
		"farm": {
			Name:          "Burn the Farmstead",
			Description:   "Fields of grain, and nobody watching the scarecrows.",
			Difficulty:    "Easy",
			EnergyCost:    1,
			RequiredPower: 15,
			UnlockLevel:   1,
			Reward:        catalog.Reward{Gold: 40, Reputation: 3},
			Enemies: []catalog.EnemyGroup{
				{Type: "farm_worker", Count: 4},
			},
			Mode: catalog.Deferred,
		},
		"caravan": {
			Name:          "Ambush the Caravan",
			Description:   "Merchants on the old forest road, heavy with coin.",
			Difficulty:    "Medium",
			EnergyCost:    2,
			RequiredPower: 40,
			UnlockLevel:   1,
			Reward:        catalog.Reward{Gold: 120, Reputation: 8, Items: []string{"leather_scraps", "bone_charm"}},
			Enemies: []catalog.EnemyGroup{
				{Type: "merchant_guard", Count: 3},
				{Type: "village_guard", Count: 1},
			},
			Mode: catalog.Deferred,
		},
		"convoy": {
			Name:          "Intercept the Royal Convoy",
			Description:   "Tax gold under military escort. The crown will notice.",
			Difficulty:    "Hard",
			EnergyCost:    2,
			RequiredPower: 70,
			UnlockLevel:   2,
			Reward:        catalog.Reward{Gold: 250, Reputation: 15, Items: []string{"bone_cleaver", "iron_plate"}},
			Enemies: []catalog.EnemyGroup{
				{Type: "royal_soldier", Count: 2},
				{Type: "merchant_guard", Count: 2},
			},
			Mode: catalog.Immediate,
		},
		"castle": {
			Name:          "Storm the Border Castle",
			Description:   "Stone walls, steel knights, and a vault behind both.",
			Difficulty:    "Very Hard",
			EnergyCost:    3,
			RequiredPower: 110,
			UnlockLevel:   3,
			Reward:        catalog.Reward{Gold: 500, Reputation: 30, Items: []string{"soul_reaver", "nether_mail"}},
			Enemies: []catalog.EnemyGroup{
				{Type: "castle_knight", Count: 2},
				{Type: "royal_soldier", Count: 3},
			},
			Mode: catalog.Immediate,
		},
		"port": {
			Name:          "Seize the Port",
			Description:   "Warehouses, tariffs, and a captain who won't kneel.",
			Difficulty:    "Very Hard",
			EnergyCost:    3,
			RequiredPower: 150,
			UnlockLevel:   3,
			Reward:        catalog.Reward{Gold: 700, Reputation: 40, Items: []string{"crown_of_whispers", "void_striders"}},
			Enemies: []catalog.EnemyGroup{
				{Type: "port_captain", Count: 1},
				{Type: "merchant_guard", Count: 3},
				{Type: "royal_soldier", Count: 2},
			},
			Mode: catalog.Deferred,
		},
	}
}
