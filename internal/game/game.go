// Package game is the orchestrator: it owns the live state and exposes every
// player action as a method, applying combat results, progression, and the
// economy in one place.
package game

import (
	"errors"
	"fmt"
	"math/rand"

	"shadowmaster/internal/catalog"
	"shadowmaster/internal/combat"
	"shadowmaster/internal/creature"
	"shadowmaster/internal/economy"
	"shadowmaster/internal/mission"
	"shadowmaster/internal/progression"
)

// JournalCap bounds the journal; the oldest entries fall off.
const JournalCap = 15

// ErrNoPendingEvent means ChooseEvent was called with no event on screen.
var ErrNoPendingEvent = errors.New("no event pending")

// ErrBadChoice means the event choice index is out of range.
var ErrBadChoice = errors.New("no such choice")

// ErrEventPending means an event is waiting on a decision and other actions
// must wait for it.
var ErrEventPending = errors.New("an event awaits your decision")

// Game is one player's full session state.
type Game struct {
	Catalog  *catalog.Catalog
	Roster   *creature.Roster
	Ledger   *economy.Ledger
	Missions *mission.Manager

	// Journal holds recent happenings, newest first, day-stamped.
	Journal []string

	rng     *rand.Rand
	pending *catalog.Event
}

// New starts a fresh game from the catalog's configured opening state.
func New(cat *catalog.Catalog, rng *rand.Rand) *Game {
	roster := creature.NewRoster()
	ledger := economy.NewLedger(cat.Config.Start)
	g := &Game{
		Catalog:  cat,
		Roster:   roster,
		Ledger:   ledger,
		Missions: mission.NewManager(cat, roster, ledger),
		rng:      rng,
	}
	g.journal("You claim the abandoned dungeon as your own.")
	return g
}

func (g *Game) journal(text string) {
	entry := fmt.Sprintf("Day %d: %s", g.Ledger.Day, text)
	g.Journal = append([]string{entry}, g.Journal...)
	if len(g.Journal) > JournalCap {
		g.Journal = g.Journal[:JournalCap]
	}
}

// Recruit buys a monster archetype into the roster.
func (g *Game) Recruit(key string) (*creature.Creature, error) {
	def, ok := g.Catalog.Monster(key)
	if !ok {
		return nil, fmt.Errorf("recruit %q: %w", key, catalog.ErrUnknownKey)
	}
	if len(g.Roster.Creatures) >= g.Ledger.MaxMonsters {
		return nil, creature.ErrRosterFull
	}
	if err := g.Ledger.Spend(def.Cost); err != nil {
		return nil, err
	}
	c := creature.New(key, def)
	_ = g.Roster.Add(c, g.Ledger.MaxMonsters)
	g.journal(fmt.Sprintf("%s %s joins your ranks.", c.Emoji, c.Name))
	return c, nil
}

// BuyEquipment purchases an item into the unequipped inventory.
func (g *Game) BuyEquipment(key string) error {
	def, ok := g.Catalog.Item(key)
	if !ok {
		return fmt.Errorf("buy %q: %w", key, catalog.ErrUnknownKey)
	}
	if err := g.Ledger.Spend(def.Cost); err != nil {
		return err
	}
	g.Roster.AddItem(key)
	g.journal(fmt.Sprintf("Acquired %s %s.", def.Emoji, def.Name))
	return nil
}

// EquipItem fits an inventory item onto creature i. Creatures out on a
// mission keep the gear they left with.
func (g *Game) EquipItem(i int, itemKey string) error {
	c, err := g.Roster.Get(i)
	if err != nil {
		return err
	}
	if c.OnMission {
		return creature.ErrCreatureUnavailable
	}
	return g.Roster.Equip(i, itemKey, g.Catalog)
}

// UnequipItem empties a slot on creature i back into the inventory.
func (g *Game) UnequipItem(i int, slot catalog.Slot) error {
	c, err := g.Roster.Get(i)
	if err != nil {
		return err
	}
	if c.OnMission {
		return creature.ErrCreatureUnavailable
	}
	return g.Roster.Unequip(i, slot)
}

// DismissCreature releases creature i, salvaging its equipment.
func (g *Game) DismissCreature(i int) error {
	c, err := g.Roster.Dismiss(i)
	if err != nil {
		return err
	}
	g.journal(fmt.Sprintf("%s %s leaves your service.", c.Emoji, c.Name))
	return nil
}

// UpgradeDungeon buys the next dungeon tier.
func (g *Game) UpgradeDungeon() error {
	up, ok := g.Ledger.NextUpgrade(g.Catalog)
	if !ok {
		return economy.ErrNoUpgrade
	}
	if err := g.Ledger.Upgrade(g.Catalog); err != nil {
		return err
	}
	g.journal(fmt.Sprintf("The dungeon grows: %s.", up.Name))
	return nil
}

// Meditate spends an energy communing with the dark for a modest trickle of
// gold and reputation.
func (g *Game) Meditate() (string, error) {
	if g.pending != nil {
		return "", ErrEventPending
	}
	if !g.Ledger.HasEnergy(1) {
		return "", economy.ErrInsufficientEnergy
	}
	g.Ledger.ConsumeEnergy(1)
	gold := 15 + g.rng.Intn(15)
	rep := 3 + g.rng.Intn(6)
	g.Ledger.Earn(gold, rep)

	text := "You sit in silence among the bones."
	if lines := g.Catalog.Config.Meditations; len(lines) > 0 {
		text = lines[g.rng.Intn(len(lines))]
	}
	g.journal(fmt.Sprintf("%s (+%d gold, +%d reputation)", text, gold, rep))
	return text, nil
}

// Explore spends an energy on one of the discovery sites. The whispers may
// carry a visitor to your door; the depths sometimes hold a wild monster.
func (g *Game) Explore(site string) (string, error) {
	if g.pending != nil {
		return "", ErrEventPending
	}
	finds, ok := g.Catalog.Config.Discoveries[site]
	if !ok {
		return "", fmt.Errorf("explore %q: %w", site, catalog.ErrUnknownKey)
	}
	if !g.Ledger.HasEnergy(1) {
		return "", economy.ErrInsufficientEnergy
	}
	g.Ledger.ConsumeEnergy(1)

	switch {
	case site == "whispers" && g.rng.Float64() < 0.30 && len(g.Catalog.Config.RandomEvents) > 0:
		ev := g.Catalog.Config.RandomEvents[g.rng.Intn(len(g.Catalog.Config.RandomEvents))]
		g.pending = &ev
		return ev.Text, nil
	case site == "depths" && g.rng.Float64() < 0.20:
		if text, caught := g.catchWildMonster(); caught {
			return text, nil
		}
	}

	if len(finds) == 0 {
		g.journal("You find nothing but dust.")
		return "You find nothing but dust.", nil
	}
	d := finds[g.rng.Intn(len(finds))]
	g.Ledger.Earn(d.Gold, d.Reputation)
	g.journal(fmt.Sprintf("%s (+%d gold, +%d reputation)", d.Text, d.Gold, d.Reputation))
	return d.Text, nil
}

// catchWildMonster tries to add a free wild creature; a full roster means it
// slips away.
func (g *Game) catchWildMonster() (string, bool) {
	keys := g.Catalog.Config.WildMonsters
	if len(keys) == 0 {
		return "", false
	}
	key := keys[g.rng.Intn(len(keys))]
	def, ok := g.Catalog.Monster(key)
	if !ok {
		return "", false
	}
	if len(g.Roster.Creatures) >= g.Ledger.MaxMonsters {
		g.journal(fmt.Sprintf("A wild %s eyes your crowded dungeon and slinks away.", def.Name))
		return fmt.Sprintf("A wild %s slinks away; there is no room.", def.Name), true
	}
	c := creature.New(key, def)
	_ = g.Roster.Add(c, g.Ledger.MaxMonsters)
	text := fmt.Sprintf("A wild %s %s crawls out of the depths and joins you!", c.Emoji, c.Name)
	g.journal(text)
	return text, true
}

// Rest ends the day: queued missions resolve in dispatch order, energy
// refills, and sometimes something stirs during the night.
func (g *Game) Rest() []combat.Result {
	resolved := g.Missions.ResolveAll(g.rng)
	results := make([]combat.Result, 0, len(resolved))
	for _, r := range resolved {
		g.applyResult(r.Team, r.Result)
		results = append(results, r.Result)
	}

	g.Ledger.RestoreFull()
	if events := g.Catalog.Config.RestEvents; len(events) > 0 && g.rng.Float64() < 0.20 {
		d := events[g.rng.Intn(len(events))]
		g.Ledger.Earn(d.Gold, d.Reputation)
		g.journal(d.Text)
	} else {
		g.journal("The dungeon sleeps. Energy restored.")
	}
	return results
}

// ApplySkirmish books an immediate mission's outcome. The team is the
// roster selection the mission was dispatched with.
func (g *Game) ApplySkirmish(team []*creature.Creature, res combat.Result) {
	g.applyResult(team, res)
}

// applyResult books one combat result: payout, experience, injuries, loot,
// and a journal line.
func (g *Game) applyResult(team []*creature.Creature, res combat.Result) {
	def, _ := g.Catalog.Mission(res.MissionKey)

	g.Ledger.Earn(res.Gold, res.Reputation)
	if res.ItemDrop != "" {
		g.Roster.AddItem(res.ItemDrop)
	}

	for _, c := range team {
		progression.GrantExperience(c, res.Experience)
	}
	for _, i := range res.Casualties {
		if i >= 0 && i < len(team) {
			c := team[i]
			progression.ApplyInjury(c, progression.InjuryLevels(c.Level))
		}
	}

	line := fmt.Sprintf("%s: %s", def.Name, g.Catalog.NarrativeLine(res.Outcome))
	if res.Gold > 0 || res.Reputation > 0 {
		line += fmt.Sprintf(" (+%d gold, +%d reputation)", res.Gold, res.Reputation)
	}
	if len(res.Casualties) > 0 {
		line += fmt.Sprintf(" %d wounded.", len(res.Casualties))
	}
	g.journal(line)
}

// DispatchPrepared sends the staged mission out, booking the outcome at once
// for immediate missions.
func (g *Game) DispatchPrepared() (*combat.Result, error) {
	team := make([]*creature.Creature, 0, len(g.Missions.Selected))
	for _, i := range g.Missions.Selected {
		if c, err := g.Roster.Get(i); err == nil {
			team = append(team, c)
		}
	}
	res, err := g.Missions.Dispatch(g.rng)
	if err != nil {
		return nil, err
	}
	if res != nil {
		g.applyResult(team, *res)
	} else {
		g.journal("A raiding party slips out into the night.")
	}
	return res, nil
}

// PendingEvent returns the event waiting on a decision, if any.
func (g *Game) PendingEvent() *catalog.Event {
	return g.pending
}

// ChooseEvent answers the pending event with choice i and returns the
// narration of what happened.
func (g *Game) ChooseEvent(i int) (string, error) {
	if g.pending == nil {
		return "", ErrNoPendingEvent
	}
	if i < 0 || i >= len(g.pending.Choices) {
		return "", ErrBadChoice
	}
	choice := g.pending.Choices[i]
	g.pending = nil

	text := g.resolveEventChoice(choice)
	g.journal(text)
	return text, nil
}

// resolveEventChoice applies one event action and returns its narration.
func (g *Game) resolveEventChoice(choice catalog.EventChoice) string {
	switch choice.Action {
	case "addGold":
		g.Ledger.Earn(choice.Value, 0)
		return fmt.Sprintf("You pocket %d gold.", choice.Value)
	case "addReputation":
		g.Ledger.Earn(0, choice.Value)
		return fmt.Sprintf("Word of your deeds spreads. +%d reputation.", choice.Value)
	case "defendDungeon":
		return g.defendDungeon()
	case "negotiate":
		if err := g.Ledger.Spend(75); err != nil {
			return "Your coffers are too light to bargain. " + g.defendDungeon()
		}
		return "You buy the intruders off with 75 gold."
	case "demonPact":
		if err := g.Ledger.Spend(100); err != nil {
			return "The demon sneers at your empty purse and vanishes."
		}
		g.Ledger.Earn(0, 25)
		if g.rng.Float64() < 0.30 {
			if def, ok := g.Catalog.Monster("demon"); ok && len(g.Roster.Creatures) < g.Ledger.MaxMonsters {
				c := creature.New("demon", def)
				_ = g.Roster.Add(c, g.Ledger.MaxMonsters)
				return "The pact is sealed. A demon steps through to serve you."
			}
		}
		return "The pact is sealed. Your dark renown grows. +25 reputation."
	default:
		return choice.Text
	}
}

// defendDungeon is a fight at your own gates: won often, but losing costs a
// creature or a purse.
func (g *Game) defendDungeon() string {
	if g.rng.Float64() < 0.70 {
		gold := 100 + g.rng.Intn(100)
		rep := 15 + g.rng.Intn(10)
		g.Ledger.Earn(gold, rep)
		return fmt.Sprintf("You repel the raiders and strip their corpses. +%d gold, +%d reputation.", gold, rep)
	}
	for tries := 0; tries < len(g.Roster.Creatures); tries++ {
		i := g.rng.Intn(len(g.Roster.Creatures))
		if !g.Roster.Creatures[i].OnMission {
			c, _ := g.Roster.RemoveAt(i)
			return fmt.Sprintf("The raiders break through. %s %s is slain.", c.Emoji, c.Name)
		}
	}
	g.Ledger.Penalize(50, 0)
	return "The raiders break through and make off with your gold."
}
