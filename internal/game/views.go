package game

import (
	"sort"

	"shadowmaster/internal/catalog"
)

// Status is the header line state: resources, day, and dungeon caps.
type Status struct {
	Gold         int
	Reputation   int
	Energy       int
	MaxEnergy    int
	Day          int
	DungeonLevel int
	RosterSize   int
	MaxMonsters  int
	InFlight     int
}

// Status snapshots the header values.
func (g *Game) Status() Status {
	return Status{
		Gold:         g.Ledger.Gold,
		Reputation:   g.Ledger.Reputation,
		Energy:       g.Ledger.Energy,
		MaxEnergy:    g.Ledger.MaxEnergy,
		Day:          g.Ledger.Day,
		DungeonLevel: g.Ledger.DungeonLevel,
		RosterSize:   len(g.Roster.Creatures),
		MaxMonsters:  g.Ledger.MaxMonsters,
		InFlight:     len(g.Missions.Queue),
	}
}

// MissionView is one mission row with its availability explained.
type MissionView struct {
	Key           string
	Name          string
	Description   string
	Difficulty    string
	RequiredPower int
	EnergyCost    int
	Mode          catalog.ResolutionMode
	Enabled       bool
	Reason        string
}

// MissionViews lists the unlocked missions in required-power order, marking
// the ones that cannot be staged right now and why.
func (g *Game) MissionViews() []MissionView {
	keys := g.Catalog.MissionKeys(g.Ledger.DungeonLevel)
	views := make([]MissionView, 0, len(keys))
	for _, key := range keys {
		def, _ := g.Catalog.Mission(key)
		v := MissionView{
			Key:           key,
			Name:          def.Name,
			Description:   def.Description,
			Difficulty:    def.Difficulty,
			RequiredPower: def.RequiredPower,
			EnergyCost:    def.EnergyCost,
			Mode:          def.Mode,
			Enabled:       true,
		}
		switch {
		case g.inFlight(key):
			v.Enabled = false
			v.Reason = "party already dispatched"
		case !g.Ledger.HasEnergy(def.EnergyCost):
			v.Enabled = false
			v.Reason = "not enough energy"
		case g.Roster.TotalPower(g.Catalog) < def.RequiredPower:
			v.Enabled = false
			v.Reason = "your forces are too weak"
		}
		views = append(views, v)
	}
	return views
}

func (g *Game) inFlight(key string) bool {
	for _, d := range g.Missions.Queue {
		if d.Key == key {
			return true
		}
	}
	return false
}

// RecruitView is one monster row in the recruitment screen.
type RecruitView struct {
	Key         string
	Name        string
	Emoji       string
	Description string
	Cost        int
	Stats       catalog.Stats
	Enabled     bool
	Reason      string
}

// RecruitViews lists every archetype by price, marking the unaffordable ones.
func (g *Game) RecruitViews() []RecruitView {
	views := make([]RecruitView, 0, len(g.Catalog.Monsters))
	for key, def := range g.Catalog.Monsters {
		v := RecruitView{
			Key: key, Name: def.Name, Emoji: def.Emoji,
			Description: def.Description, Cost: def.Cost, Stats: def.BaseStats,
			Enabled: true,
		}
		switch {
		case len(g.Roster.Creatures) >= g.Ledger.MaxMonsters:
			v.Enabled = false
			v.Reason = "the dungeon is full"
		case !g.Ledger.CanAfford(def.Cost):
			v.Enabled = false
			v.Reason = "not enough gold"
		}
		views = append(views, v)
	}
	sortByCost(views, func(v RecruitView) (int, string) { return v.Cost, v.Key })
	return views
}

// MarketView is one equipment row in the market screen.
type MarketView struct {
	Key     string
	Name    string
	Emoji   string
	Slot    catalog.Slot
	Cost    int
	Stats   catalog.Stats
	Enabled bool
	Reason  string
}

// MarketViews lists the equipment catalog by price.
func (g *Game) MarketViews() []MarketView {
	views := make([]MarketView, 0, len(g.Catalog.Equipment))
	for key, def := range g.Catalog.Equipment {
		v := MarketView{
			Key: key, Name: def.Name, Emoji: def.Emoji,
			Slot: def.Slot, Cost: def.Cost, Stats: def.Stats,
			Enabled: true,
		}
		if !g.Ledger.CanAfford(def.Cost) {
			v.Enabled = false
			v.Reason = "not enough gold"
		}
		views = append(views, v)
	}
	sortByCost(views, func(v MarketView) (int, string) { return v.Cost, v.Key })
	return views
}

func sortByCost[T any](views []T, key func(T) (int, string)) {
	sort.Slice(views, func(i, j int) bool {
		ci, ki := key(views[i])
		cj, kj := key(views[j])
		if ci != cj {
			return ci < cj
		}
		return ki < kj
	})
}

// CreatureView is one roster row.
type CreatureView struct {
	Index     int
	Name      string
	Emoji     string
	Level     int
	Power     int
	Effective catalog.Stats
	Equipment map[catalog.Slot]string
	OnMission bool
	Selected  bool
}

// RosterViews lists the roster with derived power figures; Selected reflects
// the mission currently being staged.
func (g *Game) RosterViews() []CreatureView {
	selected := map[int]bool{}
	for _, i := range g.Missions.Selected {
		selected[i] = true
	}
	views := make([]CreatureView, len(g.Roster.Creatures))
	for i, c := range g.Roster.Creatures {
		views[i] = CreatureView{
			Index:     i,
			Name:      c.Name,
			Emoji:     c.Emoji,
			Level:     c.Level,
			Power:     c.SelectionPower(g.Catalog),
			Effective: c.EffectiveStats(g.Catalog),
			Equipment: c.Equipment,
			OnMission: c.OnMission,
			Selected:  selected[i],
		}
	}
	return views
}
