// Package creature models the player's recruited monsters and the item
// inventory, and computes the two power figures the rest of the game keys on.
package creature

import (
	"shadowmaster/internal/catalog"
)

// Creature is one recruited (or wild-caught) monster. Name and Emoji are
// denormalized from the archetype at creation and may diverge afterwards.
// BaseStats never change; level and equipment act as overlays.
type Creature struct {
	Type       string                  `json:"type"`
	Name       string                  `json:"name"`
	Emoji      string                  `json:"emoji"`
	Level      int                     `json:"level"`
	Experience int                     `json:"experience"`
	BaseStats  catalog.Stats           `json:"baseStats"`
	Equipment  map[catalog.Slot]string `json:"equipment"`
	OnMission  bool                    `json:"onMission"`
}

// New instantiates a level-1 creature from an archetype.
func New(key string, def catalog.MonsterDef) *Creature {
	return &Creature{
		Type:      key,
		Name:      def.Name,
		Emoji:     def.Emoji,
		Level:     1,
		BaseStats: def.BaseStats,
		Equipment: map[catalog.Slot]string{},
	}
}

// ItemLookup resolves an equipment key to its definition.
type ItemLookup interface {
	Item(key string) (catalog.EquipmentDef, bool)
}

// EffectiveStats returns the creature's combat attributes: base stats, plus a
// level bonus shared across all four stats through one integer division, plus
// the typed bonus of each equipped item. Unknown item keys contribute nothing.
func (c *Creature) EffectiveStats(items ItemLookup) catalog.Stats {
	levelBonus := (c.Level - 1) * 2 / 4
	stats := c.BaseStats.Add(catalog.Stats{
		Strength: levelBonus, Defense: levelBonus, Speed: levelBonus, Magic: levelBonus,
	})
	for _, key := range c.Equipment {
		if def, ok := items.Item(key); ok {
			stats = stats.Add(def.Stats)
		}
	}
	return stats
}

// SelectionPower returns the aggregate used for mission eligibility: the sum
// of the unmodified base stats, a flat level bonus, and every equipped item's
// bonuses summed across all stats regardless of type. Deliberately cruder
// than EffectiveStats; the two must not be unified.
func (c *Creature) SelectionPower(items ItemLookup) int {
	power := c.BaseStats.Sum() + (c.Level-1)*2
	for _, key := range c.Equipment {
		if def, ok := items.Item(key); ok {
			power += def.Stats.Sum()
		}
	}
	return power
}

// AbilityKeys returns the creature's combat abilities from its archetype,
// defaulting to a lone shadow strike for unknown archetypes.
func (c *Creature) AbilityKeys(monsters map[string]catalog.MonsterDef) []string {
	if def, ok := monsters[c.Type]; ok && len(def.Abilities) > 0 {
		return def.Abilities
	}
	return []string{"shadow_strike"}
}
