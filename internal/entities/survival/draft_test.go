package survival_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zombierpg/survivor-api/internal/entities/survival"
)

func TestStageOrder(t *testing.T) {
	assert.Equal(t, survival.StageStats, survival.StageBasics.Next())
	assert.Equal(t, survival.StagePersonalSkills, survival.StageStats.Next())
	assert.Equal(t, survival.StageHealthReview, survival.StageSpecialSkills.Next())
	assert.Equal(t, survival.StageInventory, survival.StageHealthReview.Next())
	assert.Equal(t, survival.StageComplete, survival.StageInventory.Next())
}

func TestStageClampsAtEnds(t *testing.T) {
	assert.Equal(t, survival.StageBasics, survival.StageBasics.Prev())
	assert.Equal(t, survival.StageComplete, survival.StageComplete.Next())
}

func TestStageIndexUnknown(t *testing.T) {
	assert.Equal(t, -1, survival.Stage("limbo").Index())
	assert.Equal(t, survival.Stage("limbo"), survival.Stage("limbo").Next())
}

func TestDraftSkillLookups(t *testing.T) {
	d := &survival.Draft{
		SelectedPersonalSkillIDs: []string{"medicina", "sigilo"},
		PersonalSkills: []survival.PersonalSkill{
			{ID: "medicina", Points: 3},
			{ID: "sigilo", Points: 1},
		},
		SpecialSkillIDs: []string{"cazador"},
		LoadoutIDs:      []string{"pistola"},
	}

	assert.True(t, d.HasSelectedPersonalSkill("sigilo"))
	assert.False(t, d.HasSelectedPersonalSkill("atletismo"))
	assert.Equal(t, 1, d.FindPersonalSkill("sigilo"))
	assert.Equal(t, -1, d.FindPersonalSkill("atletismo"))
	assert.True(t, d.HasSpecialSkill("cazador"))
	assert.True(t, d.HasLoadoutItem("pistola"))
	assert.False(t, d.HasLoadoutItem("machete"))
}
