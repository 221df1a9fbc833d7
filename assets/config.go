package assets

import "shadowmaster/internal/catalog"

// DefaultConfig returns the tunable tables: starting state, dungeon upgrade
// tiers, exploration discoveries, meditations, rest events, random events,
// and the narrative lines keyed by combat outcome.
func DefaultConfig() catalog.Config {
	return catalog.Config{
		Start: catalog.StartState{
			Gold:         50,
			Energy:       5,
			MaxEnergy:    5,
			MaxMonsters:  5,
			DungeonLevel: 1,
		},
		DungeonUpgrades: map[int]catalog.DungeonUpgrade{
			2: {
				Name: "Carved Warrens", Cost: 300, MaxMonsters: 8, MaxEnergy: 6,
				Features: []string{"royal convoy routes", "larger barracks"},
			},
			3: {
				Name: "Obsidian Halls", Cost: 800, MaxMonsters: 12, MaxEnergy: 8,
				Features: []string{"coastal operations", "war room"},
			},
			4: {
				Name: "Throne of Shadows", Cost: 2000, MaxMonsters: 18, MaxEnergy: 10,
				Features: []string{"legion command", "endless night"},
			},
		},
		Discoveries: map[string][]catalog.Discovery{
			"ruins": {
				{Text: "A collapsed shrine hides a pouch of tarnished coins.", Gold: 20},
				{Text: "You pry a gilded sigil from a broken archway.", Gold: 35},
				{Text: "Old bones, old armor, and a handful of silver.", Gold: 15, Reputation: 2},
				{Text: "Scratched into the wall: a map nobody finished drawing.", Reputation: 3},
			},
			"whispers": {
				{Text: "The voices lead you to a cache beneath a false floor.", Gold: 30},
				{Text: "A dead man's secret buys a living man's respect.", Reputation: 5},
				{Text: "The whispers fade into laughter. Nothing here but cold.", Gold: 5},
			},
			"depths": {
				{Text: "A vein of raw silver glitters in the torchlight.", Gold: 45},
				{Text: "Something enormous passed this way. You take notes, and its scales.", Gold: 25, Reputation: 4},
				{Text: "The dark stares back. You leave an offering and gain its favor.", Reputation: 6},
			},
		},
		Meditations: []string{
			"You sit among the shadows and let the dungeon breathe around you.",
			"The candles gutter. Somewhere below, something answers your thoughts.",
			"You dream of empires in ash and wake knowing how to build one.",
		},
		RestEvents: []catalog.Discovery{
			{Text: "A nightmare courier leaves tribute at your gate.", Gold: 25},
			{Text: "Tales of your deeds spread through the taverns.", Reputation: 5},
			{Text: "Your goblins dig up something shiny while you sleep.", Gold: 40},
		},
		RandomEvents: []catalog.Event{
			{
				Text: "Adventurers have been spotted near the dungeon entrance, arguing over a hand-drawn map.",
				Choices: []catalog.EventChoice{
					{Text: "Drive them off", Action: "defendDungeon"},
					{Text: "Bribe them to leave", Action: "negotiate", Value: 75},
				},
			},
			{
				Text: "A hooded figure offers a pact sealed in brimstone.",
				Choices: []catalog.EventChoice{
					{Text: "Sign the pact", Action: "demonPact", Value: 100},
					{Text: "Refuse politely", Action: "journal", Value: 0},
				},
			},
			{
				Text: "A lost merchant stumbles into your halls, trembling.",
				Choices: []catalog.EventChoice{
					{Text: "Take his purse", Action: "addGold", Value: 50},
					{Text: "Escort him out so he can spread the tale", Action: "addReputation", Value: 10},
				},
			},
		},
		WildMonsters: WildMonsterKeys,
		Narrative: map[string]string{
			"overwhelming_success": "Your forces sweep the field before the enemy can form ranks.",
			"strong_success":       "The enemy line buckles and breaks under the assault.",
			"standard_success":     "A hard fight, but the objective is yours.",
			"costly_success":       "Victory, bought dearly in blood and broken steel.",
			"failure":              "The raid collapses. Survivors limp home under cover of dark.",
			"flawless_victory":     "Not one of yours fell. The enemy was not so lucky.",
			"victory":              "The battlefield is yours, at an acceptable price.",
			"pyrrhic_victory":      "You hold the field, barely, over the bodies of your own.",
			"narrow_defeat":        "Your forces fall back in good order to fight another day.",
			"crushing_defeat":      "A rout. The shadows swallow what remains of your warband.",
		},
	}
}
