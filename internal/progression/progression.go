// Package progression levels creatures up from mission experience and levels
// them down when they come home injured.
package progression

import "shadowmaster/internal/creature"

// Threshold is the experience a creature must accumulate to leave its
// current level: level times this constant.
const Threshold = 100

// GrantExperience adds amount to the creature's experience and applies as
// many level-ups as the total supports. Each level-up resets the experience
// counter to zero, so overshoot is discarded rather than banked.
// It returns the number of levels gained.
func GrantExperience(c *creature.Creature, amount int) int {
	c.Experience += amount
	gained := 0
	for c.Experience >= c.Level*Threshold {
		c.Level++
		c.Experience = 0
		gained++
	}
	return gained
}

// InjuryLevels returns how many levels a casualty at the given level loses.
func InjuryLevels(level int) int {
	n := level / 10
	if n < 1 {
		n = 1
	}
	return n
}

// ApplyInjury knocks levels off an injured creature and clears its partial
// experience. Level never drops below 1.
func ApplyInjury(c *creature.Creature, levels int) {
	c.Level -= levels
	if c.Level < 1 {
		c.Level = 1
	}
	c.Experience = 0
}
