// Package mission drives the mission lifecycle: available missions are
// prepared with a team, dispatched, and resolved either on the spot or when
// the dungeon rests.
package mission

import (
	"errors"
	"fmt"

	"shadowmaster/internal/catalog"
	"shadowmaster/internal/combat"
	"shadowmaster/internal/creature"
	"shadowmaster/internal/economy"
)

var (
	// ErrNoMissionPrepared means Dispatch was called with nothing staged.
	ErrNoMissionPrepared = errors.New("no mission prepared")
	// ErrEmptyTeam means the prepared mission has no creatures selected.
	ErrEmptyTeam = errors.New("no creatures selected")
	// ErrTeamTooWeak means the selected power is below the mission's
	// required power.
	ErrTeamTooWeak = errors.New("team power below mission requirement")
	// ErrAlreadyDispatched means a party is already out on that mission.
	ErrAlreadyDispatched = errors.New("mission already dispatched")
	// ErrMissionLocked means the mission is gated behind a higher dungeon
	// level.
	ErrMissionLocked = errors.New("mission not yet unlocked")
)

// Dispatched is a deferred mission in flight. The team stays locked until the
// mission resolves at rest.
type Dispatched struct {
	Key       string
	Team      []*creature.Creature
	TeamPower int
	Day       int
}

// Record is a settled mission kept for the chronicle.
type Record struct {
	Key     string `json:"key"`
	Outcome string `json:"outcome"`
	Success bool   `json:"success"`
	Day     int    `json:"day"`
}

// Manager owns the prepared mission, the queue of dispatched ones, and the
// history of settled ones.
type Manager struct {
	cat    *catalog.Catalog
	roster *creature.Roster
	ledger *economy.Ledger

	// Preparation state; transient, cleared by Dispatch and Abandon.
	PrepKey  string
	Selected []int

	Queue   []*Dispatched
	History []Record
}

// NewManager wires a manager to the shared game state.
func NewManager(cat *catalog.Catalog, roster *creature.Roster, ledger *economy.Ledger) *Manager {
	return &Manager{cat: cat, roster: roster, ledger: ledger}
}

// Prepare stages a mission for team selection, clearing any prior selection.
func (m *Manager) Prepare(key string) error {
	def, ok := m.cat.Mission(key)
	if !ok {
		return fmt.Errorf("mission %q: %w", key, catalog.ErrUnknownKey)
	}
	if def.UnlockLevel > m.ledger.DungeonLevel {
		return fmt.Errorf("mission %q: %w", key, ErrMissionLocked)
	}
	for _, d := range m.Queue {
		if d.Key == key {
			return fmt.Errorf("mission %q: %w", key, ErrAlreadyDispatched)
		}
	}
	if !m.ledger.HasEnergy(def.EnergyCost) {
		return economy.ErrInsufficientEnergy
	}
	m.PrepKey = key
	m.Selected = nil
	return nil
}

// Toggle flips creature i in or out of the prepared team. Creatures already
// out on a mission cannot be selected.
func (m *Manager) Toggle(i int) error {
	c, err := m.roster.Get(i)
	if err != nil {
		return err
	}
	for n, sel := range m.Selected {
		if sel == i {
			m.Selected = append(m.Selected[:n], m.Selected[n+1:]...)
			return nil
		}
	}
	if c.OnMission {
		return creature.ErrCreatureUnavailable
	}
	m.Selected = append(m.Selected, i)
	return nil
}

// Abandon drops the prepared mission back to available.
func (m *Manager) Abandon() {
	m.PrepKey = ""
	m.Selected = nil
}

// SelectedPower sums the selection power of the staged team.
func (m *Manager) SelectedPower(items creature.ItemLookup) int {
	power := 0
	for _, i := range m.Selected {
		if c, err := m.roster.Get(i); err == nil {
			power += c.SelectionPower(items)
		}
	}
	return power
}

// Dispatch commits the prepared mission. Every check runs before any state
// changes, so a refused dispatch leaves energy, flags, and the preparation
// untouched. Immediate missions resolve on the spot and the result comes
// back; deferred missions return nil and queue until ResolveAll.
func (m *Manager) Dispatch(src combat.Source) (*combat.Result, error) {
	if m.PrepKey == "" {
		return nil, ErrNoMissionPrepared
	}
	def, ok := m.cat.Mission(m.PrepKey)
	if !ok {
		return nil, fmt.Errorf("mission %q: %w", m.PrepKey, catalog.ErrUnknownKey)
	}
	if len(m.Selected) == 0 {
		return nil, ErrEmptyTeam
	}
	power := m.SelectedPower(m.cat)
	if power < def.RequiredPower {
		return nil, fmt.Errorf("%w: %d of %d", ErrTeamTooWeak, power, def.RequiredPower)
	}
	if !m.ledger.HasEnergy(def.EnergyCost) {
		return nil, economy.ErrInsufficientEnergy
	}

	team := make([]*creature.Creature, 0, len(m.Selected))
	for _, i := range m.Selected {
		c, err := m.roster.Get(i)
		if err != nil {
			return nil, err
		}
		team = append(team, c)
	}

	m.ledger.ConsumeEnergy(def.EnergyCost)
	key := m.PrepKey
	m.Abandon()

	if def.Mode == catalog.Immediate {
		res := combat.ResolveSkirmish(key, def, team, m.cat, src)
		m.record(res)
		return &res, nil
	}

	for _, c := range team {
		c.OnMission = true
	}
	m.Queue = append(m.Queue, &Dispatched{
		Key:       key,
		Team:      team,
		TeamPower: power,
		Day:       m.ledger.Day,
	})
	return nil, nil
}

// ResolveAll settles every queued mission in dispatch order and releases
// their teams. Reward and casualty application is the caller's job.
func (m *Manager) ResolveAll(src combat.Source) []ResolvedMission {
	resolved := make([]ResolvedMission, 0, len(m.Queue))
	for _, d := range m.Queue {
		def, ok := m.cat.Mission(d.Key)
		if !ok {
			// Content can change out from under a restored save. Settle
			// against a zero-reward stand-in rather than stranding the team.
			def = catalog.MissionDef{Name: d.Key, RequiredPower: max(1, d.TeamPower)}
		}
		res := combat.ResolveRoll(d.Key, def, d.TeamPower, len(d.Team), src)
		for _, c := range d.Team {
			c.OnMission = false
		}
		m.record(res)
		resolved = append(resolved, ResolvedMission{Team: d.Team, Result: res})
	}
	m.Queue = nil
	return resolved
}

func (m *Manager) record(res combat.Result) {
	m.History = append(m.History, Record{
		Key:     res.MissionKey,
		Outcome: res.Outcome,
		Success: res.Success,
		Day:     m.ledger.Day,
	})
}

// ResolvedMission pairs a combat result with the team it happened to, so
// casualty indexes can be mapped back to creatures.
type ResolvedMission struct {
	Team   []*creature.Creature
	Result combat.Result
}

// InFlight reports whether any mission is waiting on a rest to resolve.
func (m *Manager) InFlight() bool {
	return len(m.Queue) > 0
}
