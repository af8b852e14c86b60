// Package leveling holds the pure XP/level math for the RPG layer.
// Functions here are total over any Character value; existence checks and
// persistence belong to the store.
package leveling

import "github.com/fitquest/FitQuest_Go/internal/domain"

// XPPerLevel is the flat per-level cost. Level thresholds are exact
// multiples of this value, which keeps the curve reversible and trivially
// testable.
const XPPerLevel = 1000

// LevelForXP derives the level for a given XP total:
// max(1, xp/XPPerLevel + 1).
func LevelForXP(xp int) int {
	if xp < 0 {
		return 1
	}
	return xp/XPPerLevel + 1
}

// ApplyXP returns a copy of the character with the XP delta applied and the
// level recomputed. Negative or zero amounts contribute nothing; the call
// still succeeds and returns the character unchanged. XP never decreases.
func ApplyXP(c domain.Character, amount int) domain.Character {
	if amount < 0 {
		amount = 0
	}
	c.XP += amount
	c.Level = LevelForXP(c.XP)
	return c
}
