// Package rules implements the derived-stats engine: the pure formulas that
// turn base attributes into budgets and hit points, and the atomic checks
// behind every point allocation. Nothing here touches storage or holds state.
package rules

import "github.com/zombierpg/survivor-api/internal/entities/survival"

// Creation-time limits.
const (
	// StatMin and StatMax bound each attribute during creation. Leveling
	// can push a stat past StatMax later.
	StatMin = 1
	StatMax = 5

	// StatPointPool is the total points a finished stat spread may hold.
	// Every stat starts at StatMin, leaving StatPointPool - 5 to assign.
	StatPointPool = 10

	// RequiredPersonalSkills is how many point-buy skills a survivor picks.
	RequiredPersonalSkills = 6

	// SkillPointsMin and SkillPointsMax bound the points on one personal
	// skill. Selecting a skill allocates SkillPointsMin immediately.
	SkillPointsMin = 1
	SkillPointsMax = 10

	// RequiredSpecialSkills is exact, not a cap.
	RequiredSpecialSkills = 2

	// MaxLoadoutItems caps the starting inventory picked at creation.
	MaxLoadoutItems = 2

	// BaseHealth plus the resistance margin above HealthResistanceThreshold
	// gives starting hit points.
	BaseHealth                = 10
	HealthResistanceThreshold = 2

	// DefaultInventoryCapacity is the backpack slot count after finalize.
	DefaultInventoryCapacity = 15
)

// PersonalSkillBudget returns the total skill points an intelligence score
// grants.
func PersonalSkillBudget(intelligence int) int {
	return intelligence * 5
}

// PersonalSkillPointsLeft returns the unspent remainder of the skill budget,
// floored at zero so an intelligence drop never shows a negative pool.
func PersonalSkillPointsLeft(intelligence int, skills []survival.PersonalSkill) int {
	spent := 0
	for i := range skills {
		spent += skills[i].Points
	}
	left := PersonalSkillBudget(intelligence) - spent
	if left < 0 {
		return 0
	}
	return left
}

// StartingHealth returns hit points for a resistance score.
func StartingHealth(resistance int) int {
	health := BaseHealth
	if resistance > HealthResistanceThreshold {
		health += resistance - HealthResistanceThreshold
	}
	return health
}

// CanAdjustStat reports whether a single-step stat edit is legal. All four
// checks must pass or the edit is rejected whole: the stat stays within
// [StatMin, StatMax], the spread total never exceeds StatPointPool, and the
// unassigned pool never goes negative.
func CanAdjustStat(stats *survival.Stats, id survival.StatID, delta int) bool {
	if delta == 0 {
		return false
	}
	current := stats.Get(id)
	next := current + delta
	if next < StatMin || next > StatMax {
		return false
	}
	total := stats.Total() + delta
	if total > StatPointPool {
		return false
	}
	// pool = StatPointPool - total; decreases always free points.
	return StatPointPool-total >= 0
}

// StatPointsLeft returns the unassigned portion of the stat pool.
func StatPointsLeft(stats *survival.Stats) int {
	return StatPointPool - stats.Total()
}

// CanAdjustSkillPoints reports whether a single-step skill point edit is
// legal: increases need pool points available and respect SkillPointsMax,
// decreases stop at SkillPointsMin.
func CanAdjustSkillPoints(points, pointsLeft, delta int) bool {
	if delta == 0 {
		return false
	}
	next := points + delta
	if next < SkillPointsMin || next > SkillPointsMax {
		return false
	}
	if delta > 0 && pointsLeft <= 0 {
		return false
	}
	return true
}
