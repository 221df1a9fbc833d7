package assets

import "shadowmaster/internal/catalog"

// DefaultEnemies returns the opposing unit templates.
func DefaultEnemies() map[string]catalog.EnemyDef {
	return map[string]catalog.EnemyDef{
		"village_guard": {
			Name: "Village Guard", Emoji: "🛡️",
			HP: 25, Attack: 8, Defense: 6, Speed: 5,
			Abilities: []string{"shield_bash"},
		},
		"farm_worker": {
			Name: "Farm Worker", Emoji: "🧑‍🌾",
			HP: 15, Attack: 5, Defense: 3, Speed: 4,
			Abilities: []string{"pitchfork_jab"},
		},
		"merchant_guard": {
			Name: "Merchant Guard", Emoji: "💂",
			HP: 30, Attack: 10, Defense: 7, Speed: 6,
			Abilities: []string{"shield_bash", "crossbow_bolt"},
		},
		"royal_soldier": {
			Name: "Royal Soldier", Emoji: "⚔️",
			HP: 40, Attack: 13, Defense: 10, Speed: 7,
			Abilities: []string{"shield_bash", "rallying_cry"},
		},
		"castle_knight": {
			Name: "Castle Knight", Emoji: "🏇",
			HP: 55, Attack: 16, Defense: 14, Speed: 6,
			Abilities: []string{"holy_smite", "rallying_cry"},
		},
		"port_captain": {
			Name: "Port Captain", Emoji: "⚓",
			HP: 70, Attack: 18, Defense: 12, Speed: 9,
			Abilities: []string{"cutlass_flurry", "rallying_cry"},
		},
	}
}

// DefaultAbilities returns the ability table shared by creatures and enemies.
func DefaultAbilities() map[string]catalog.AbilityDef {
	return map[string]catalog.AbilityDef{
		// Enemy abilities
		"shield_bash":    {Name: "Shield Bash", Multiplier: 0.8, Effect: "stun"},
		"pitchfork_jab":  {Name: "Pitchfork Jab", Multiplier: 0.9},
		"crossbow_bolt":  {Name: "Crossbow Bolt", Multiplier: 1.2, Effect: "armor_pierce"},
		"rallying_cry":   {Name: "Rallying Cry", Multiplier: 0.7, Effect: "buff_allies"},
		"holy_smite":     {Name: "Holy Smite", Multiplier: 1.5, Effect: "critical"},
		"cutlass_flurry": {Name: "Cutlass Flurry", Multiplier: 1.4},
		// Creature abilities
		"shadow_strike": {Name: "Shadow Strike", Multiplier: 1.4, Effect: "critical"},
		"terror":        {Name: "Terror", Multiplier: 1.1, Effect: "fear"},
		"life_drain":    {Name: "Life Drain", Multiplier: 1.2, Effect: "lifesteal"},
		"dark_magic":    {Name: "Dark Magic", Multiplier: 1.6},
		"brute_force":   {Name: "Brute Force", Multiplier: 1.5},
		"rage":          {Name: "Rage", Multiplier: 1.3, Effect: "critical"},
	}
}
