package combat

import "shadowmaster/internal/catalog"

// rollTier maps a power ratio band to its outcome numbers.
type rollTier struct {
	minRatio       float64
	outcome        string
	multiplier     float64
	experience     int
	casualtyChance float64
}

var rollTiers = []rollTier{
	{2.0, "overwhelming_success", 1.5, 5, 0.00},
	{1.5, "strong_success", 1.3, 4, 0.05},
	{1.0, "standard_success", 1.0, 3, 0.15},
	{0.0, "costly_success", 0.8, 2, 0.25},
}

// successChance is a step function of the team-power to required-power ratio.
func successChance(ratio float64) float64 {
	switch {
	case ratio >= 2.0:
		return 0.95
	case ratio >= 1.5:
		return 0.85
	case ratio >= 1.2:
		return 0.70
	case ratio >= 1.0:
		return 0.55
	case ratio >= 0.8:
		return 0.40
	default:
		return 0.25
	}
}

// ResolveRoll settles a deferred mission with one weighted roll. teamPower is
// the summed selection power of the dispatched team.
func ResolveRoll(key string, def catalog.MissionDef, teamPower, teamSize int, src Source) Result {
	ratio := float64(teamPower) / float64(def.RequiredPower)
	res := Result{MissionKey: key}

	if src.Float64() >= successChance(ratio) {
		res.Outcome = "failure"
		res.Experience = 1
		res.Gold = def.Reward.Gold * 10 / 100
		res.Reputation = def.Reward.Reputation * 5 / 100
		frac := 0.5 - ratio
		if frac < 0.2 {
			frac = 0.2
		}
		res.Casualties = firstN(int(float64(teamSize) * frac))
		return res
	}

	tier := rollTiers[len(rollTiers)-1]
	for _, t := range rollTiers {
		if ratio >= t.minRatio {
			tier = t
			break
		}
	}

	res.Success = true
	res.Outcome = tier.outcome
	res.Gold = int(float64(def.Reward.Gold) * tier.multiplier)
	res.Reputation = int(float64(def.Reward.Reputation) * tier.multiplier)
	res.Experience = tier.experience

	if tier.casualtyChance > 0 && src.Float64() < tier.casualtyChance {
		res.Casualties = firstN(teamSize / 5)
	}
	if len(def.Reward.Items) > 0 && src.Float64() < 0.2*tier.multiplier {
		res.ItemDrop = def.Reward.Items[src.Intn(len(def.Reward.Items))]
	}
	return res
}

// firstN returns the indexes 0..n-1. A roll has no per-unit trace, so the
// front of the team absorbs the losses.
func firstN(n int) []int {
	if n <= 0 {
		return nil
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
