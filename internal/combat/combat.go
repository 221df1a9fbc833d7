// Package combat resolves missions. Deferred missions get a single weighted
// probability roll; immediate missions play out a turn-based skirmish between
// derived units. Both paths report through the same Result.
package combat

// Source supplies the randomness for a resolution. *rand.Rand satisfies it;
// tests substitute fixed sequences.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// Result is the outcome of one resolved mission.
type Result struct {
	MissionKey string
	Success    bool
	Outcome    string // narrative key, e.g. "standard_success" or "pyrrhic_victory"

	// Payout. Gold and Reputation are tier-scaled on success; a failed
	// roll still pays a sliver of the posted reward, while a lost
	// skirmish pays nothing. Experience goes to every team member.
	// ItemDrop is empty when the loot roll missed.
	Gold       int
	Reputation int
	Experience int
	ItemDrop   string

	// Casualties are team indexes injured in the field.
	Casualties []int

	// Log is the turn transcript of a skirmish; empty for rolls.
	Log []string
}
