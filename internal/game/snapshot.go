package game

import (
	"time"

	"shadowmaster/internal/catalog"
	"shadowmaster/internal/creature"
	"shadowmaster/internal/economy"
	"shadowmaster/internal/mission"
)

// Snapshot is the serializable whole of a session: ledger, roster, journal,
// the mission chronicle, and the missions still in flight with their teams as
// roster indexes.
type Snapshot struct {
	Ledger  economy.Ledger   `json:"ledger"`
	Roster  *creature.Roster `json:"roster"`
	Journal []string         `json:"journal"`
	Queue   []QueuedMission  `json:"queue"`
	History []mission.Record `json:"history,omitempty"`
	SavedAt time.Time        `json:"savedAt"`
}

// QueuedMission is a dispatched mission flattened for storage.
type QueuedMission struct {
	Key       string `json:"key"`
	Team      []int  `json:"team"`
	TeamPower int    `json:"teamPower"`
	Day       int    `json:"day"`
}

// Snapshot captures the current state. Team pointers become roster indexes,
// valid for this exact roster ordering.
func (g *Game) Snapshot() *Snapshot {
	s := &Snapshot{
		Ledger:  *g.Ledger,
		Roster:  g.Roster,
		Journal: g.Journal,
		History: g.Missions.History,
		SavedAt: time.Now(),
	}
	for _, d := range g.Missions.Queue {
		q := QueuedMission{Key: d.Key, TeamPower: d.TeamPower, Day: d.Day}
		for _, c := range d.Team {
			if i := g.indexOfCreature(c); i >= 0 {
				q.Team = append(q.Team, i)
			}
		}
		s.Queue = append(s.Queue, q)
	}
	return s
}

func (g *Game) indexOfCreature(c *creature.Creature) int {
	for i, rc := range g.Roster.Creatures {
		if rc == c {
			return i
		}
	}
	return -1
}

// Restore replaces the session state with a snapshot. Mission locks are
// recomputed from the queue, so a truncated save can never strand a creature
// on a mission that no longer exists.
func (g *Game) Restore(s *Snapshot) {
	*g.Ledger = s.Ledger
	// Saves written before a ledger field existed carry it as zero; the caps
	// can never legitimately be zero, so they fall back to the start state.
	start := g.Catalog.Config.Start
	if g.Ledger.MaxEnergy == 0 {
		g.Ledger.MaxEnergy = start.MaxEnergy
	}
	if g.Ledger.MaxMonsters == 0 {
		g.Ledger.MaxMonsters = start.MaxMonsters
	}
	if g.Ledger.DungeonLevel == 0 {
		g.Ledger.DungeonLevel = start.DungeonLevel
	}
	if g.Ledger.Day == 0 {
		g.Ledger.Day = 1
	}
	if s.Roster != nil {
		*g.Roster = *s.Roster
	}
	g.Journal = s.Journal
	g.pending = nil

	for _, c := range g.Roster.Creatures {
		c.OnMission = false
		if c.Equipment == nil {
			c.Equipment = map[catalog.Slot]string{}
		}
	}

	g.Missions.PrepKey = ""
	g.Missions.Selected = nil
	g.Missions.Queue = nil
	g.Missions.History = s.History
	for _, q := range s.Queue {
		d := &mission.Dispatched{Key: q.Key, TeamPower: q.TeamPower, Day: q.Day}
		for _, i := range q.Team {
			if c, err := g.Roster.Get(i); err == nil {
				c.OnMission = true
				d.Team = append(d.Team, c)
			}
		}
		if len(d.Team) > 0 {
			g.Missions.Queue = append(g.Missions.Queue, d)
		}
	}
}
