package progression

import (
	"github.com/zombierpg/survivor-api/internal/entities/survival"
)

// Benefit identifies the reward chosen for a level-up.
type Benefit string

// Level-up benefits. Exactly one is chosen per level.
const (
	BenefitMaxHealth    Benefit = "max_health"
	BenefitStat         Benefit = "stat"
	BenefitNewSkill     Benefit = "new_skill"
	BenefitImproveSkill Benefit = "improve_skill"
)

// LevelUpInput carries the chosen benefit and the fields its path requires.
// Only the fields for the chosen benefit are read.
type LevelUpInput struct {
	CharacterID string
	Benefit     Benefit

	// Stat names the attribute for BenefitStat.
	Stat survival.StatID

	// SkillID names the predefined skill for BenefitNewSkill, or the skill
	// being improved for BenefitImproveSkill.
	SkillID string

	// CustomName and CustomDescription author a new custom skill for
	// BenefitNewSkill when SkillID is empty.
	CustomName        string
	CustomDescription string

	// Effect is the improvement text for BenefitImproveSkill.
	Effect string
}

// LevelUpOutput returns the leveled character
type LevelUpOutput struct {
	Character *survival.Character
}
