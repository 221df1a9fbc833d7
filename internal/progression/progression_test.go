package progression

import (
	"testing"

	"shadowmaster/internal/creature"
)

func level1() *creature.Creature {
	return &creature.Creature{Type: "goblin", Name: "Goblin", Level: 1}
}

func TestGrantExperienceLevelsUpAndResets(t *testing.T) {
	c := level1()
	gained := GrantExperience(c, 150)
	if gained != 1 {
		t.Errorf("gained = %d, want 1", gained)
	}
	if c.Level != 2 || c.Experience != 0 {
		t.Errorf("got level %d exp %d, want level 2 exp 0 (overshoot discarded)", c.Level, c.Experience)
	}
}

func TestGrantExperienceBelowThreshold(t *testing.T) {
	c := level1()
	if gained := GrantExperience(c, 99); gained != 0 {
		t.Errorf("gained = %d, want 0", gained)
	}
	if c.Level != 1 || c.Experience != 99 {
		t.Errorf("got level %d exp %d, want level 1 exp 99", c.Level, c.Experience)
	}
}

func TestGrantExperienceChainsLevels(t *testing.T) {
	// 100 leaves level 1; the reset means a second jump needs a fresh 200.
	c := level1()
	GrantExperience(c, 100)
	if c.Level != 2 {
		t.Fatalf("level = %d, want 2", c.Level)
	}
	GrantExperience(c, 199)
	if c.Level != 2 || c.Experience != 199 {
		t.Errorf("got level %d exp %d, want level 2 exp 199", c.Level, c.Experience)
	}
	GrantExperience(c, 1)
	if c.Level != 3 || c.Experience != 0 {
		t.Errorf("got level %d exp %d, want level 3 exp 0", c.Level, c.Experience)
	}
}

func TestInjuryLevels(t *testing.T) {
	cases := []struct{ level, want int }{
		{1, 1}, {5, 1}, {9, 1}, {10, 1}, {20, 2}, {35, 3},
	}
	for _, tc := range cases {
		if got := InjuryLevels(tc.level); got != tc.want {
			t.Errorf("InjuryLevels(%d) = %d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestApplyInjuryFloorsAtLevelOne(t *testing.T) {
	c := level1()
	c.Experience = 50
	for i := 0; i < 5; i++ {
		ApplyInjury(c, 2)
	}
	if c.Level != 1 {
		t.Errorf("level = %d, want 1 (injury never deletes a creature)", c.Level)
	}
	if c.Experience != 0 {
		t.Errorf("experience = %d, want 0 after injury", c.Experience)
	}
}

func TestApplyInjuryDropsLevels(t *testing.T) {
	c := level1()
	c.Level = 7
	ApplyInjury(c, 2)
	if c.Level != 5 {
		t.Errorf("level = %d, want 5", c.Level)
	}
}
