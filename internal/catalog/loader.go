package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Document file names expected under the data directory.
const (
	MonstersFile  = "monsters.yaml"
	EquipmentFile = "equipment.yaml"
	MissionsFile  = "missions.yaml"
	EnemiesFile   = "enemies.yaml"
	AbilitiesFile = "abilities.yaml"
	ConfigFile    = "config.yaml"
)

// Load reads the content documents from dir and merges them over defaults.
// Each document degrades independently: a missing or malformed file keeps the
// default table and contributes a warning. Load never fails outright; the
// returned catalog is always complete and combat-safe.
func Load(dir string, defaults *Catalog) (*Catalog, []error) {
	cat := &Catalog{
		Monsters:  defaults.Monsters,
		Equipment: defaults.Equipment,
		Missions:  defaults.Missions,
		Enemies:   defaults.Enemies,
		Abilities: defaults.Abilities,
		Config:    defaults.Config,
	}
	var warnings []error

	warn := func(name string, err error) {
		warnings = append(warnings, fmt.Errorf("load %s: %w (using built-in defaults)", name, err))
	}

	if m, err := loadDoc[map[string]MonsterDef](filepath.Join(dir, MonstersFile)); err != nil {
		warn(MonstersFile, err)
	} else if len(m) > 0 {
		cat.Monsters = m
	}
	if e, err := loadDoc[map[string]EquipmentDef](filepath.Join(dir, EquipmentFile)); err != nil {
		warn(EquipmentFile, err)
	} else if len(e) > 0 {
		cat.Equipment = e
	}
	if m, err := loadDoc[map[string]MissionDef](filepath.Join(dir, MissionsFile)); err != nil {
		warn(MissionsFile, err)
	} else if len(m) > 0 {
		cat.Missions = m
	}
	if e, err := loadDoc[map[string]EnemyDef](filepath.Join(dir, EnemiesFile)); err != nil {
		warn(EnemiesFile, err)
	} else if len(e) > 0 {
		cat.Enemies = e
	}
	if a, err := loadDoc[map[string]AbilityDef](filepath.Join(dir, AbilitiesFile)); err != nil {
		warn(AbilitiesFile, err)
	} else if len(a) > 0 {
		cat.Abilities = a
	}
	if c, err := loadDoc[Config](filepath.Join(dir, ConfigFile)); err != nil {
		warn(ConfigFile, err)
	} else {
		mergeConfig(&cat.Config, c, defaults.Config)
	}

	cat.normalize(defaults)
	return cat, warnings
}

// loadDoc opens and decodes one YAML document.
func loadDoc[T any](path string) (T, error) {
	var out T
	f, err := os.Open(path)
	if err != nil {
		return out, err
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(&out); err != nil {
		return out, fmt.Errorf("decode: %w", err)
	}
	return out, nil
}

// mergeConfig overlays loaded config sections onto dst, keeping the default
// for any section the document left empty.
func mergeConfig(dst *Config, loaded, def Config) {
	*dst = loaded
	if dst.Start == (StartState{}) {
		dst.Start = def.Start
	}
	if len(dst.DungeonUpgrades) == 0 {
		dst.DungeonUpgrades = def.DungeonUpgrades
	}
	if len(dst.Discoveries) == 0 {
		dst.Discoveries = def.Discoveries
	}
	if len(dst.Meditations) == 0 {
		dst.Meditations = def.Meditations
	}
	if len(dst.RestEvents) == 0 {
		dst.RestEvents = def.RestEvents
	}
	if len(dst.RandomEvents) == 0 {
		dst.RandomEvents = def.RandomEvents
	}
	if len(dst.WildMonsters) == 0 {
		dst.WildMonsters = def.WildMonsters
	}
	if len(dst.Narrative) == 0 {
		dst.Narrative = def.Narrative
	}
}

// normalize backfills anything content authors may have left out so combat
// resolution never trips on missing tables: at least one enemy archetype and
// one ability must exist, missions must reference known enemies, and maps are
// never nil.
func (c *Catalog) normalize(defaults *Catalog) {
	if len(c.Enemies) == 0 {
		c.Enemies = defaults.Enemies
	}
	if len(c.Abilities) == 0 {
		c.Abilities = defaults.Abilities
	}
	if c.Monsters == nil {
		c.Monsters = map[string]MonsterDef{}
	}
	if c.Equipment == nil {
		c.Equipment = map[string]EquipmentDef{}
	}
	if c.Missions == nil {
		c.Missions = map[string]MissionDef{}
	}
	for key, m := range c.Missions {
		if m.Mode != Immediate && m.Mode != Deferred {
			m.Mode = Deferred
		}
		if m.UnlockLevel < 1 {
			m.UnlockLevel = 1
		}
		c.Missions[key] = m
	}
}
