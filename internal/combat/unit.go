package combat

import (
	"shadowmaster/internal/catalog"
	"shadowmaster/internal/creature"
)

// Unit is one combatant on the skirmish grid. TeamIndex is the roster
// position for player units and -1 for enemies.
type Unit struct {
	Name      string
	Emoji     string
	TeamIndex int
	HP        int
	MaxHP     int
	Attack    int
	Defense   int
	Speed     int
	Abilities []string
}

// Alive reports whether the unit can still act.
func (u *Unit) Alive() bool {
	return u.HP > 0
}

// UnitFromCreature derives a skirmish unit from a roster creature. Equipment
// feeds in asymmetrically: strength bonuses harden hit points as well as
// attack, magic only sharpens attack.
func UnitFromCreature(teamIndex int, c *creature.Creature, cat *catalog.Catalog) *Unit {
	s := c.BaseStats
	u := &Unit{
		Name:      c.Name,
		Emoji:     c.Emoji,
		TeamIndex: teamIndex,
		MaxHP:     20 + (s.Strength+s.Defense)*3 + (c.Level-1)*5,
		Attack:    s.Strength + s.Magic/2 + (c.Level-1)*2,
		Defense:   s.Defense + s.Strength/3 + (c.Level - 1),
		Speed:     s.Speed + s.Magic/3 + (c.Level - 1),
		Abilities: c.AbilityKeys(cat.Monsters),
	}
	for _, key := range c.Equipment {
		if item, ok := cat.Item(key); ok {
			u.MaxHP += item.Stats.Strength * 3
			u.Attack += item.Stats.Strength + item.Stats.Magic
			u.Defense += item.Stats.Defense
			u.Speed += item.Stats.Speed
		}
	}
	u.HP = u.MaxHP
	return u
}

// EnemyUnits expands a mission's enemy groups into units. Unknown enemy keys
// are skipped; a field emptied entirely by bad content is refilled with
// stand-ins, so a skirmish is never an uncontested walkover.
func EnemyUnits(def catalog.MissionDef, cat *catalog.Catalog) []*Unit {
	var units []*Unit
	for _, g := range def.Enemies {
		e, ok := cat.Enemy(g.Type)
		if !ok {
			continue
		}
		for i := 0; i < g.Count; i++ {
			units = append(units, enemyUnit(e))
		}
	}
	if len(units) == 0 {
		e := cat.FallbackEnemy()
		n := 0
		for _, g := range def.Enemies {
			n += g.Count
		}
		if n < 1 {
			n = 1
		}
		for i := 0; i < n; i++ {
			units = append(units, enemyUnit(e))
		}
	}
	return units
}

func enemyUnit(e catalog.EnemyDef) *Unit {
	return &Unit{
		Name:      e.Name,
		Emoji:     e.Emoji,
		TeamIndex: -1,
		HP:        e.HP,
		MaxHP:     e.HP,
		Attack:    e.Attack,
		Defense:   e.Defense,
		Speed:     e.Speed,
		Abilities: e.Abilities,
	}
}
