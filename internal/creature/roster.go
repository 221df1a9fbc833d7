package creature

import (
	"errors"
	"fmt"

	"shadowmaster/internal/catalog"
)

var (
	// ErrRosterFull means the dungeon cannot house another creature.
	ErrRosterFull = errors.New("roster is full")
	// ErrCreatureUnavailable means the creature is committed to a
	// dispatched mission.
	ErrCreatureUnavailable = errors.New("creature is away on a mission")
	// ErrNoSuchCreature means the index does not name a roster member.
	ErrNoSuchCreature = errors.New("no such creature")
	// ErrItemNotHeld means the item key is not in the unequipped inventory.
	ErrItemNotHeld = errors.New("item is not in the inventory")
)

// Roster owns the player's creatures and the unequipped item inventory.
// An item key is either in exactly one creature's slot or in Inventory,
// never both; items are never destroyed.
type Roster struct {
	Creatures []*Creature `json:"creatures"`
	Inventory []string    `json:"inventory"`
}

// NewRoster returns an empty roster.
func NewRoster() *Roster {
	return &Roster{}
}

// Add appends a creature, enforcing the dungeon-level cap.
func (r *Roster) Add(c *Creature, maxCreatures int) error {
	if len(r.Creatures) >= maxCreatures {
		return ErrRosterFull
	}
	r.Creatures = append(r.Creatures, c)
	return nil
}

// Get returns the creature at index i.
func (r *Roster) Get(i int) (*Creature, error) {
	if i < 0 || i >= len(r.Creatures) {
		return nil, fmt.Errorf("index %d: %w", i, ErrNoSuchCreature)
	}
	return r.Creatures[i], nil
}

// Dismiss removes the creature at index i, returning its equipped items to
// the inventory. Creatures on a dispatched mission cannot be dismissed.
func (r *Roster) Dismiss(i int) (*Creature, error) {
	c, err := r.Get(i)
	if err != nil {
		return nil, err
	}
	if c.OnMission {
		return nil, ErrCreatureUnavailable
	}
	for slot, key := range c.Equipment {
		if key != "" {
			r.Inventory = append(r.Inventory, key)
		}
		delete(c.Equipment, slot)
	}
	r.Creatures = append(r.Creatures[:i], r.Creatures[i+1:]...)
	return c, nil
}

// RemoveAt drops the creature at index i outright (combat loss). Its
// equipment is salvaged back into the inventory.
func (r *Roster) RemoveAt(i int) (*Creature, error) {
	c, err := r.Get(i)
	if err != nil {
		return nil, err
	}
	for slot, key := range c.Equipment {
		if key != "" {
			r.Inventory = append(r.Inventory, key)
		}
		delete(c.Equipment, slot)
	}
	r.Creatures = append(r.Creatures[:i], r.Creatures[i+1:]...)
	return c, nil
}

// AddItem puts an item key into the unequipped inventory.
func (r *Roster) AddItem(key string) {
	r.Inventory = append(r.Inventory, key)
}

// Equip moves itemKey from the inventory into the matching slot of creature
// i. An item already in that slot is returned to the inventory, preserving
// the one-place-per-item invariant.
func (r *Roster) Equip(i int, itemKey string, items ItemLookup) error {
	c, err := r.Get(i)
	if err != nil {
		return err
	}
	def, ok := items.Item(itemKey)
	if !ok {
		return fmt.Errorf("equip %q: %w", itemKey, catalog.ErrUnknownKey)
	}
	idx := indexOf(r.Inventory, itemKey)
	if idx < 0 {
		return fmt.Errorf("equip %q: %w", itemKey, ErrItemNotHeld)
	}

	r.Inventory = append(r.Inventory[:idx], r.Inventory[idx+1:]...)
	if c.Equipment == nil {
		c.Equipment = map[catalog.Slot]string{}
	}
	if old := c.Equipment[def.Slot]; old != "" {
		r.Inventory = append(r.Inventory, old)
	}
	c.Equipment[def.Slot] = itemKey
	return nil
}

// Unequip clears the slot on creature i, returning the item to the inventory.
func (r *Roster) Unequip(i int, slot catalog.Slot) error {
	c, err := r.Get(i)
	if err != nil {
		return err
	}
	if key := c.Equipment[slot]; key != "" {
		r.Inventory = append(r.Inventory, key)
		delete(c.Equipment, slot)
	}
	return nil
}

// TotalPower sums SelectionPower over the whole roster.
func (r *Roster) TotalPower(items ItemLookup) int {
	total := 0
	for _, c := range r.Creatures {
		total += c.SelectionPower(items)
	}
	return total
}

// ItemCount returns how many item keys exist across slots and inventory;
// the figure must never change except through purchase or reward.
func (r *Roster) ItemCount() int {
	n := len(r.Inventory)
	for _, c := range r.Creatures {
		for _, key := range c.Equipment {
			if key != "" {
				n++
			}
		}
	}
	return n
}

func indexOf(list []string, key string) int {
	for i, k := range list {
		if k == key {
			return i
		}
	}
	return -1
}
