package assets

import "shadowmaster/internal/catalog"

// Defaults assembles the full built-in catalog. Loaders merge on-disk content
// over this so every table always exists.
func Defaults() *catalog.Catalog {
	return &catalog.Catalog{
		Monsters:  DefaultMonsters(),
		Equipment: DefaultEquipment(),
		Missions:  DefaultMissions(),
		Enemies:   DefaultEnemies(),
		Abilities: DefaultAbilities(),
		Config:    DefaultConfig(),
	}
}
