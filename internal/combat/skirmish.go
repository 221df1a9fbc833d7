package combat

import (
	"fmt"
	"sort"

	"shadowmaster/internal/catalog"
	"shadowmaster/internal/creature"
)

// MaxTurns caps a skirmish. Reaching the cap with enemies standing counts as
// a defeat; the attackers withdraw.
const MaxTurns = 20

const abilityChance = 0.2

// skirmishTier maps the surviving fraction of the team to the victory payout.
type skirmishTier struct {
	maxLossFrac float64
	outcome     string
	multiplier  float64
	experience  int
	itemChance  float64
}

var victoryTiers = []skirmishTier{
	{0.0, "flawless_victory", 1.5, 5, 0.80},
	{0.3, "victory", 1.0, 2, 0.50},
	{1.0, "pyrrhic_victory", 0.8, 1, 0.30},
}

// ResolveSkirmish plays an immediate mission out turn by turn and returns the
// outcome with a full transcript.
func ResolveSkirmish(key string, def catalog.MissionDef, team []*creature.Creature, cat *catalog.Catalog, src Source) Result {
	res := Result{MissionKey: key}

	attackers := make([]*Unit, len(team))
	for i, c := range team {
		attackers[i] = UnitFromCreature(i, c, cat)
	}
	defenders := EnemyUnits(def, cat)
	all := append(append([]*Unit{}, attackers...), defenders...)

	logf := func(format string, args ...any) {
		res.Log = append(res.Log, fmt.Sprintf(format, args...))
	}
	logf("%s begins: %d against %d", def.Name, len(attackers), len(defenders))

	for turn := 1; turn <= MaxTurns; turn++ {
		if !anyAlive(attackers) || !anyAlive(defenders) {
			break
		}
		logf("-- turn %d --", turn)

		order := make([]*Unit, len(all))
		copy(order, all)
		initiative := make(map[*Unit]float64, len(order))
		for _, u := range order {
			initiative[u] = float64(u.Speed) + src.Float64()*3
		}
		sort.SliceStable(order, func(i, j int) bool {
			return initiative[order[i]] > initiative[order[j]]
		})

		for _, actor := range order {
			if !actor.Alive() {
				continue
			}
			var pool []*Unit
			if actor.TeamIndex >= 0 {
				pool = defenders
			} else {
				pool = attackers
			}
			target := pickTarget(pool, src)
			if target == nil {
				break
			}

			base := actor.Attack - target.Defense/2
			if base < 1 {
				base = 1
			}
			dmg := int(float64(base) * (0.8 + src.Float64()*0.4))
			if dmg < 1 {
				dmg = 1
			}

			if len(actor.Abilities) > 0 && src.Float64() < abilityChance {
				ab := cat.Ability(actor.Abilities[src.Intn(len(actor.Abilities))])
				dmg = int(float64(dmg) * ab.Multiplier)
				if dmg < 1 {
					dmg = 1
				}
				logf("%s %s uses %s on %s for %d", actor.Emoji, actor.Name, ab.Name, target.Name, dmg)
				if ab.Effect == "lifesteal" {
					heal := int(ab.Multiplier * 10)
					actor.HP += heal
					if actor.HP > actor.MaxHP {
						actor.HP = actor.MaxHP
					}
					logf("%s %s drains %d health", actor.Emoji, actor.Name, heal)
				}
			} else {
				logf("%s %s hits %s for %d", actor.Emoji, actor.Name, target.Name, dmg)
			}

			target.HP -= dmg
			if !target.Alive() {
				logf("%s %s falls", target.Emoji, target.Name)
			}
		}
	}

	for _, u := range attackers {
		if !u.Alive() {
			res.Casualties = append(res.Casualties, u.TeamIndex)
		}
	}
	lossFrac := float64(len(res.Casualties)) / float64(len(attackers))

	if !anyAlive(defenders) && anyAlive(attackers) {
		tier := victoryTiers[len(victoryTiers)-1]
		for _, t := range victoryTiers {
			if lossFrac <= t.maxLossFrac {
				tier = t
				break
			}
		}
		res.Success = true
		res.Outcome = tier.outcome
		res.Gold = int(float64(def.Reward.Gold) * tier.multiplier)
		res.Reputation = int(float64(def.Reward.Reputation) * tier.multiplier)
		res.Experience = tier.experience
		if len(def.Reward.Items) > 0 && src.Float64() < tier.itemChance {
			res.ItemDrop = def.Reward.Items[src.Intn(len(def.Reward.Items))]
		}
		logf("the defenders are routed")
		return res
	}

	res.Outcome = "narrow_defeat"
	if lossFrac >= 0.8 {
		res.Outcome = "crushing_defeat"
	}
	res.Experience = 1
	logf("the raid is driven back")
	return res
}

func anyAlive(units []*Unit) bool {
	for _, u := range units {
		if u.Alive() {
			return true
		}
	}
	return false
}

// pickTarget chooses uniformly among living units in pool.
func pickTarget(pool []*Unit, src Source) *Unit {
	var living []*Unit
	for _, u := range pool {
		if u.Alive() {
			living = append(living, u)
		}
	}
	if len(living) == 0 {
		return nil
	}
	return living[src.Intn(len(living))]
}
