package combat

import (
	"math/rand"
	"testing"

	"shadowmaster/internal/catalog"
	"shadowmaster/internal/creature"
)

// fixedSource always rolls the same value and picks index 0.
type fixedSource struct{ f float64 }

func (s fixedSource) Float64() float64 { return s.f }
func (s fixedSource) Intn(n int) int   { return 0 }

func rollMission() catalog.MissionDef {
	return catalog.MissionDef{
		Name:          "Raid the Village",
		RequiredPower: 20,
		Reward:        catalog.Reward{Gold: 100, Reputation: 10, Items: []string{"rusty_blade"}},
	}
}

func TestResolveRollOverwhelming(t *testing.T) {
	// Ratio 2.0 with a minimal roll: guaranteed success at the top tier.
	res := ResolveRoll("village", rollMission(), 40, 5, fixedSource{0})

	if !res.Success {
		t.Fatal("ratio 2.0 with roll 0 must succeed")
	}
	if res.Outcome != "overwhelming_success" {
		t.Errorf("outcome = %q, want overwhelming_success", res.Outcome)
	}
	if res.Gold != 150 || res.Reputation != 15 {
		t.Errorf("payout = %d gold %d rep, want 150/15", res.Gold, res.Reputation)
	}
	if res.Experience != 5 {
		t.Errorf("experience = %d, want 5", res.Experience)
	}
	if len(res.Casualties) != 0 {
		t.Errorf("top tier has zero casualty chance, got %v", res.Casualties)
	}
	if res.ItemDrop != "rusty_blade" {
		t.Errorf("roll 0 beats the 30%% loot chance, got %q", res.ItemDrop)
	}
}

func TestResolveRollFailure(t *testing.T) {
	// A roll of 0.99 loses at every tier.
	res := ResolveRoll("village", rollMission(), 10, 5, fixedSource{0.99})

	if res.Success {
		t.Fatal("roll 0.99 must fail")
	}
	if res.Outcome != "failure" {
		t.Errorf("outcome = %q, want failure", res.Outcome)
	}
	// Failure still pays 10% of the posted gold and 5% of the reputation.
	if res.Gold != 10 || res.Reputation != 0 {
		t.Errorf("consolation = %d gold %d rep, want 10/0", res.Gold, res.Reputation)
	}
	if res.Experience != 1 {
		t.Errorf("experience = %d, want consolation 1", res.Experience)
	}
	// Ratio 0.5: casualty fraction is 0.2 of a 5-strong team.
	if len(res.Casualties) != 1 {
		t.Errorf("casualties = %v, want exactly 1", res.Casualties)
	}
	if res.ItemDrop != "" {
		t.Error("failure drops no loot")
	}
}

func TestResolveRollStandardTierNumbers(t *testing.T) {
	// Ratio exactly 1.0 lands in the standard tier.
	res := ResolveRoll("village", rollMission(), 20, 3, fixedSource{0.5})
	if !res.Success || res.Outcome != "standard_success" {
		t.Fatalf("got %+v, want standard_success", res)
	}
	if res.Gold != 100 || res.Experience != 3 {
		t.Errorf("payout = %d gold %d xp, want 100/3", res.Gold, res.Experience)
	}
	// A 0.5 roll misses both the 15% casualty and 20% loot chances.
	if len(res.Casualties) != 0 || res.ItemDrop != "" {
		t.Errorf("got casualties %v item %q, want none", res.Casualties, res.ItemDrop)
	}
}

func TestUnitFromCreatureDerivation(t *testing.T) {
	cat := testCatalog()
	c := &creature.Creature{
		Type: "orc", Name: "Orc", Level: 3,
		BaseStats: catalog.Stats{Strength: 6, Defense: 4, Speed: 3, Magic: 2},
		Equipment: map[catalog.Slot]string{catalog.SlotWeapon: "blade"},
	}
	u := UnitFromCreature(0, c, cat)

	// hp: 20 + (6+4)*3 + 2*5 + bladeStr*3 = 20+30+10+9 = 69
	if u.MaxHP != 69 || u.HP != 69 {
		t.Errorf("hp = %d/%d, want 69/69", u.HP, u.MaxHP)
	}
	// atk: 6 + 2/2 + 2*2 + bladeStr + bladeMagic = 6+1+4+3+1 = 15
	if u.Attack != 15 {
		t.Errorf("attack = %d, want 15", u.Attack)
	}
	// def: 4 + 6/3 + 2 = 8
	if u.Defense != 8 {
		t.Errorf("defense = %d, want 8", u.Defense)
	}
	// spd: 3 + 2/3 + 2 = 5
	if u.Speed != 5 {
		t.Errorf("speed = %d, want 5", u.Speed)
	}
}

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Monsters: map[string]catalog.MonsterDef{
			"orc": {Name: "Orc", Abilities: []string{"brute_force"}},
		},
		Equipment: map[string]catalog.EquipmentDef{
			"blade": {Name: "Blade", Slot: catalog.SlotWeapon, Stats: catalog.Stats{Strength: 3, Magic: 1}},
		},
		Enemies: map[string]catalog.EnemyDef{
			"guard": {Name: "Guard", HP: 30, Attack: 6, Defense: 3, Speed: 4},
		},
		Abilities: map[string]catalog.AbilityDef{
			"brute_force": {Name: "Brute Force", Multiplier: 1.5},
		},
	}
}

func TestEnemyUnitsFallBackForUnknownArchetypes(t *testing.T) {
	cat := testCatalog()
	def := catalog.MissionDef{
		Name:    "Haunt",
		Enemies: []catalog.EnemyGroup{{Type: "ghost", Count: 2}},
	}
	units := EnemyUnits(def, cat)
	if len(units) != 2 {
		t.Fatalf("units = %d, want 2 stand-ins", len(units))
	}
	for _, u := range units {
		if u.Name != "Guard" || u.HP != 30 {
			t.Errorf("stand-in = %+v, want the guard template", u)
		}
	}
}

func strongTeam(n int) []*creature.Creature {
	team := make([]*creature.Creature, n)
	for i := range team {
		team[i] = &creature.Creature{
			Type: "orc", Name: "Orc", Emoji: "O", Level: 5,
			BaseStats: catalog.Stats{Strength: 10, Defense: 8, Speed: 6, Magic: 4},
			Equipment: map[catalog.Slot]string{},
		}
	}
	return team
}

func TestResolveSkirmishCrushesWeakDefenders(t *testing.T) {
	cat := testCatalog()
	def := catalog.MissionDef{
		Name:    "Raid",
		Reward:  catalog.Reward{Gold: 100, Reputation: 10},
		Enemies: []catalog.EnemyGroup{{Type: "guard", Count: 1}},
	}
	// A lone harmless guard: victory whatever the dice say.
	cat.Enemies["guard"] = catalog.EnemyDef{Name: "Guard", HP: 1, Attack: 0, Defense: 0, Speed: 1}

	for seed := int64(1); seed <= 5; seed++ {
		res := ResolveSkirmish("raid", def, strongTeam(3), cat, rand.New(rand.NewSource(seed)))
		if !res.Success {
			t.Fatalf("seed %d: overwhelming team lost: %+v", seed, res)
		}
		if res.Outcome != "flawless_victory" {
			t.Errorf("seed %d: outcome = %q, want flawless_victory", seed, res.Outcome)
		}
		if res.Gold != 150 || res.Experience != 5 {
			t.Errorf("seed %d: payout = %d gold %d xp, want 150/5", seed, res.Gold, res.Experience)
		}
		if len(res.Log) == 0 {
			t.Error("skirmish must produce a transcript")
		}
	}
}

func TestResolveSkirmishStalemateIsDefeat(t *testing.T) {
	cat := testCatalog()
	// An unkillable, harmless wall: the turn cap forces a withdrawal.
	cat.Enemies["guard"] = catalog.EnemyDef{Name: "Wall", HP: 100000, Attack: 0, Defense: 0, Speed: 1}
	def := catalog.MissionDef{
		Name:    "Siege",
		Reward:  catalog.Reward{Gold: 100},
		Enemies: []catalog.EnemyGroup{{Type: "guard", Count: 1}},
	}

	res := ResolveSkirmish("siege", def, strongTeam(2), cat, rand.New(rand.NewSource(7)))
	if res.Success {
		t.Fatal("a stalemate must count as defeat")
	}
	if res.Outcome != "narrow_defeat" {
		t.Errorf("outcome = %q, want narrow_defeat with no casualties", res.Outcome)
	}
	if res.Gold != 0 || res.ItemDrop != "" {
		t.Error("defeat pays nothing")
	}
	if res.Experience != 1 {
		t.Errorf("experience = %d, want 1", res.Experience)
	}
	if len(res.Casualties) != 0 {
		t.Errorf("casualties = %v, want none against a harmless wall", res.Casualties)
	}
}

func TestResolveSkirmishCasualtiesAreTeamIndexes(t *testing.T) {
	cat := testCatalog()
	cat.Enemies["guard"] = catalog.EnemyDef{Name: "Titan", HP: 5000, Attack: 200, Defense: 50, Speed: 20}
	def := catalog.MissionDef{
		Name:    "Doom",
		Enemies: []catalog.EnemyGroup{{Type: "guard", Count: 3}},
	}

	team := strongTeam(3)
	res := ResolveSkirmish("doom", def, team, cat, rand.New(rand.NewSource(3)))
	if res.Success {
		t.Fatal("the team cannot win this")
	}
	if res.Outcome != "crushing_defeat" {
		t.Errorf("outcome = %q, want crushing_defeat after a wipe", res.Outcome)
	}
	if len(res.Casualties) != len(team) {
		t.Fatalf("casualties = %v, want the whole team", res.Casualties)
	}
	seen := map[int]bool{}
	for _, i := range res.Casualties {
		if i < 0 || i >= len(team) || seen[i] {
			t.Fatalf("bad casualty index set %v", res.Casualties)
		}
		seen[i] = true
	}
}

func TestSkirmishTerminates(t *testing.T) {
	cat := testCatalog()
	def := catalog.MissionDef{
		Name:    "Raid",
		Reward:  catalog.Reward{Gold: 50, Items: []string{"blade"}},
		Enemies: []catalog.EnemyGroup{{Type: "guard", Count: 4}},
	}

	for seed := int64(0); seed < 20; seed++ {
		res := ResolveSkirmish("raid", def, strongTeam(3), cat, rand.New(rand.NewSource(seed)))
		if res.Outcome == "" {
			t.Fatalf("seed %d: no outcome", seed)
		}
		if res.Success && res.Gold == 0 {
			t.Errorf("seed %d: victory must pay gold", seed)
		}
		if !res.Success && (res.Gold != 0 || res.ItemDrop != "") {
			t.Errorf("seed %d: defeat must pay nothing", seed)
		}
	}
}
