// Package economy tracks the dungeon's spendable resources: gold, reputation,
// the daily energy pool, and the dungeon level that gates everything else.
package economy

import (
	"errors"

	"shadowmaster/internal/catalog"
)

var (
	// ErrInsufficientFunds means a purchase costs more gold than is held.
	ErrInsufficientFunds = errors.New("not enough gold")
	// ErrInsufficientEnergy means the action costs more energy than remains
	// today.
	ErrInsufficientEnergy = errors.New("not enough energy")
	// ErrNoUpgrade means the dungeon is already at its final level.
	ErrNoUpgrade = errors.New("no further dungeon upgrade")
)

// Ledger is the dungeon's account book. All mutation goes through methods so
// gold and energy can never go negative.
type Ledger struct {
	Gold         int `json:"gold"`
	Reputation   int `json:"reputation"`
	Energy       int `json:"energy"`
	MaxEnergy    int `json:"maxEnergy"`
	Day          int `json:"day"`
	DungeonLevel int `json:"dungeonLevel"`
	MaxMonsters  int `json:"maxMonsters"`
}

// NewLedger opens a ledger from the configured starting state on day 1.
func NewLedger(start catalog.StartState) *Ledger {
	return &Ledger{
		Gold:         start.Gold,
		Energy:       start.Energy,
		MaxEnergy:    start.MaxEnergy,
		Day:          1,
		DungeonLevel: start.DungeonLevel,
		MaxMonsters:  start.MaxMonsters,
	}
}

// CanAfford reports whether cost gold is on hand.
func (l *Ledger) CanAfford(cost int) bool {
	return l.Gold >= cost
}

// Spend deducts cost gold, or deducts nothing and reports
// ErrInsufficientFunds.
func (l *Ledger) Spend(cost int) error {
	if !l.CanAfford(cost) {
		return ErrInsufficientFunds
	}
	l.Gold -= cost
	return nil
}

// Earn credits gold and reputation.
func (l *Ledger) Earn(gold, reputation int) {
	l.Gold += gold
	l.Reputation += reputation
}

// Penalize removes gold and reputation, clamping both at zero.
func (l *Ledger) Penalize(gold, reputation int) {
	l.Gold -= gold
	if l.Gold < 0 {
		l.Gold = 0
	}
	l.Reputation -= reputation
	if l.Reputation < 0 {
		l.Reputation = 0
	}
}

// HasEnergy reports whether cost energy remains today. Actions validate with
// this before consuming.
func (l *Ledger) HasEnergy(cost int) bool {
	return l.Energy >= cost
}

// ConsumeEnergy deducts cost energy, clamping at zero. It never fails;
// callers gate on HasEnergy first.
func (l *Ledger) ConsumeEnergy(cost int) {
	l.Energy -= cost
	if l.Energy < 0 {
		l.Energy = 0
	}
}

// RestoreFull refills energy to the maximum and advances the day counter.
func (l *Ledger) RestoreFull() {
	l.Energy = l.MaxEnergy
	l.Day++
}

// NextUpgrade returns the upgrade that would take the dungeon to its next
// level, if one exists.
func (l *Ledger) NextUpgrade(cat *catalog.Catalog) (catalog.DungeonUpgrade, bool) {
	return cat.Upgrade(l.DungeonLevel + 1)
}

// Upgrade pays for and applies the next dungeon level. Raising the roof also
// refills today's energy to the new maximum.
func (l *Ledger) Upgrade(cat *catalog.Catalog) error {
	up, ok := l.NextUpgrade(cat)
	if !ok {
		return ErrNoUpgrade
	}
	if err := l.Spend(up.Cost); err != nil {
		return err
	}
	l.DungeonLevel++
	l.MaxEnergy = up.MaxEnergy
	l.MaxMonsters = up.MaxMonsters
	l.Energy = l.MaxEnergy
	return nil
}
