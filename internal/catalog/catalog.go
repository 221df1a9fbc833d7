// Package catalog holds the static content tables the game runs on: creature
// archetypes, equipment, missions, enemy templates, abilities, and the tunable
// configuration. Tables are read-only once loaded.
package catalog

import (
	"errors"
	"sort"
)

// ErrUnknownKey is returned when a monster, equipment, mission, or enemy
// reference does not exist in the loaded tables.
var ErrUnknownKey = errors.New("unknown catalog key")

// Stats are the four creature attributes. Equipment bonuses use the same
// shape with zero meaning "no bonus".
type Stats struct {
	Strength int `yaml:"strength" json:"strength"`
	Defense  int `yaml:"defense" json:"defense"`
	Speed    int `yaml:"speed" json:"speed"`
	Magic    int `yaml:"magic" json:"magic"`
}

// Sum returns the slot-agnostic total of all four attributes.
func (s Stats) Sum() int {
	return s.Strength + s.Defense + s.Speed + s.Magic
}

// Add returns s with o's attributes added on.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Strength: s.Strength + o.Strength,
		Defense:  s.Defense + o.Defense,
		Speed:    s.Speed + o.Speed,
		Magic:    s.Magic + o.Magic,
	}
}

// MonsterDef is a recruitable creature archetype.
type MonsterDef struct {
	Name        string   `yaml:"name"`
	Emoji       string   `yaml:"emoji"`
	Cost        int      `yaml:"cost"`
	BaseStats   Stats    `yaml:"baseStats"`
	Description string   `yaml:"description"`
	Abilities   []string `yaml:"abilities"`
}

// Slot names the four equipment positions on a creature.
type Slot string

const (
	SlotWeapon    Slot = "weapon"
	SlotArmor     Slot = "armor"
	SlotBoots     Slot = "boots"
	SlotAccessory Slot = "accessory"
)

// Slots lists all equipment slots in display order.
var Slots = []Slot{SlotWeapon, SlotArmor, SlotBoots, SlotAccessory}

// EquipmentDef is an immutable item template. Instances are referenced by key;
// they are never copied or mutated.
type EquipmentDef struct {
	Name  string `yaml:"name"`
	Emoji string `yaml:"emoji"`
	Slot  Slot   `yaml:"slot"`
	Cost  int    `yaml:"cost"`
	Stats Stats  `yaml:"stats"`
}

// ResolutionMode selects how a mission's combat is resolved.
type ResolutionMode string

const (
	// Immediate missions run the full turn-based skirmish at dispatch time.
	Immediate ResolutionMode = "immediate"
	// Deferred missions queue up and resolve with a probability roll at rest.
	Deferred ResolutionMode = "deferred"
)

// Reward is what a mission pays on success. Items is a pool keys are drawn
// from, not a guaranteed drop.
type Reward struct {
	Gold       int      `yaml:"gold"`
	Reputation int      `yaml:"reputation"`
	Items      []string `yaml:"items"`
}

// EnemyGroup places Count instances of one enemy archetype in a mission.
type EnemyGroup struct {
	Type  string `yaml:"type"`
	Count int    `yaml:"count"`
}

// MissionDef is a mission template.
type MissionDef struct {
	Name          string         `yaml:"name"`
	Description   string         `yaml:"description"`
	Difficulty    string         `yaml:"difficulty"`
	EnergyCost    int            `yaml:"energyCost"`
	RequiredPower int            `yaml:"requiredPower"`
	UnlockLevel   int            `yaml:"unlockLevel"`
	Reward        Reward         `yaml:"reward"`
	Enemies       []EnemyGroup   `yaml:"enemies"`
	Mode          ResolutionMode `yaml:"mode"`
}

// EnemyDef is an opposing combat unit template.
type EnemyDef struct {
	Name      string   `yaml:"name"`
	Emoji     string   `yaml:"emoji"`
	HP        int      `yaml:"hp"`
	Attack    int      `yaml:"attack"`
	Defense   int      `yaml:"defense"`
	Speed     int      `yaml:"speed"`
	Abilities []string `yaml:"abilities"`
}

// AbilityDef is a combat ability. Multiplier scales the triggering attack's
// damage; Effect names a secondary effect (only "lifesteal" has a mechanical
// consequence, the rest color the log).
type AbilityDef struct {
	Name       string  `yaml:"name"`
	Multiplier float64 `yaml:"damage_multiplier"`
	Effect     string  `yaml:"effect"`
}

// DungeonUpgrade is one tier of the dungeon upgrade table, keyed by the level
// it upgrades to.
type DungeonUpgrade struct {
	Name        string   `yaml:"name"`
	Cost        int      `yaml:"cost"`
	MaxMonsters int      `yaml:"maxMonsters"`
	MaxEnergy   int      `yaml:"maxEnergy"`
	Features    []string `yaml:"features"`
}

// Discovery is a flavored gold/reputation find used by exploration and rest
// events.
type Discovery struct {
	Text       string `yaml:"text"`
	Gold       int    `yaml:"gold"`
	Reputation int    `yaml:"reputation"`
}

// EventChoice is one option of a random event. Action is one of addGold,
// addReputation, defendDungeon, negotiate, demonPact, journal.
type EventChoice struct {
	Text   string `yaml:"text"`
	Action string `yaml:"action"`
	Value  int    `yaml:"value"`
}

// Event is a multi-choice random encounter.
type Event struct {
	Text    string        `yaml:"text"`
	Choices []EventChoice `yaml:"choices"`
}

// StartState is the fresh-game player state.
type StartState struct {
	Gold         int `yaml:"gold"`
	Energy       int `yaml:"energy"`
	MaxEnergy    int `yaml:"maxEnergy"`
	MaxMonsters  int `yaml:"maxMonsters"`
	DungeonLevel int `yaml:"dungeonLevel"`
}

// Config bundles the tunable tables that are not per-entity.
type Config struct {
	Start           StartState             `yaml:"start"`
	DungeonUpgrades map[int]DungeonUpgrade `yaml:"dungeonUpgrades"`
	Discoveries     map[string][]Discovery `yaml:"discoveries"`
	Meditations     []string               `yaml:"meditations"`
	RestEvents      []Discovery            `yaml:"restEvents"`
	RandomEvents    []Event                `yaml:"randomEvents"`
	WildMonsters    []string               `yaml:"wildMonsters"`
	Narrative       map[string]string      `yaml:"narrative"`
}

// Catalog is the full loaded content set.
type Catalog struct {
	Monsters  map[string]MonsterDef
	Equipment map[string]EquipmentDef
	Missions  map[string]MissionDef
	Enemies   map[string]EnemyDef
	Abilities map[string]AbilityDef
	Config    Config
}

// Monster looks up a creature archetype.
func (c *Catalog) Monster(key string) (MonsterDef, bool) {
	d, ok := c.Monsters[key]
	return d, ok
}

// Item looks up an equipment template.
func (c *Catalog) Item(key string) (EquipmentDef, bool) {
	d, ok := c.Equipment[key]
	return d, ok
}

// Mission looks up a mission template.
func (c *Catalog) Mission(key string) (MissionDef, bool) {
	d, ok := c.Missions[key]
	return d, ok
}

// Enemy looks up an enemy template.
func (c *Catalog) Enemy(key string) (EnemyDef, bool) {
	d, ok := c.Enemies[key]
	return d, ok
}

// Ability looks up an ability. Missing abilities resolve to a plain strike so
// combat never crashes on bad content.
func (c *Catalog) Ability(key string) AbilityDef {
	if a, ok := c.Abilities[key]; ok {
		return a
	}
	return AbilityDef{Name: "Strike", Multiplier: 1.0}
}

// FallbackEnemy returns a stand-in defender for missions whose enemy groups
// all name unknown archetypes. The lowest sorted key keeps the choice
// deterministic; an empty table yields a built-in militia.
func (c *Catalog) FallbackEnemy() EnemyDef {
	keys := make([]string, 0, len(c.Enemies))
	for k := range c.Enemies {
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return EnemyDef{Name: "Militia", Emoji: "🧑", HP: 20, Attack: 4, Defense: 2, Speed: 3}
	}
	sort.Strings(keys)
	return c.Enemies[keys[0]]
}

// Upgrade returns the dungeon upgrade tier for the given target level.
func (c *Catalog) Upgrade(level int) (DungeonUpgrade, bool) {
	u, ok := c.Config.DungeonUpgrades[level]
	return u, ok
}

// NarrativeLine returns the display text for an outcome key, falling back to
// the key itself for unknown outcomes.
func (c *Catalog) NarrativeLine(key string) string {
	if line, ok := c.Config.Narrative[key]; ok {
		return line
	}
	return key
}

// MissionKeys returns mission keys sorted for stable display, gated by dungeon
// level.
func (c *Catalog) MissionKeys(dungeonLevel int) []string {
	keys := make([]string, 0, len(c.Missions))
	for k, m := range c.Missions {
		if m.UnlockLevel <= dungeonLevel {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := c.Missions[keys[i]], c.Missions[keys[j]]
		if a.RequiredPower != b.RequiredPower {
			return a.RequiredPower < b.RequiredPower
		}
		return keys[i] < keys[j]
	})
	return keys
}
