package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/zombierpg/survivor-api/internal/entities/survival"
	"github.com/zombierpg/survivor-api/internal/rules"
)

func TestPersonalSkillBudget(t *testing.T) {
	tests := []struct {
		intelligence int
		want         int
	}{
		{1, 5},
		{2, 10},
		{3, 15},
		{5, 25},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, rules.PersonalSkillBudget(tt.intelligence),
			"intelligence %d", tt.intelligence)
	}
}

func TestPersonalSkillPointsLeft(t *testing.T) {
	skills := func(points ...int) []survival.PersonalSkill {
		out := make([]survival.PersonalSkill, len(points))
		for i, p := range points {
			out[i] = survival.PersonalSkill{ID: "s", Points: p}
		}
		return out
	}

	tests := []struct {
		name         string
		intelligence int
		skills       []survival.PersonalSkill
		want         int
	}{
		{"no skills selected", 3, nil, 15},
		{"six skills at one point", 3, skills(1, 1, 1, 1, 1, 1), 9},
		{"fully allocated", 3, skills(4, 4, 2, 2, 2, 1), 0},
		{"overspent floors at zero", 1, skills(4, 4), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want,
				rules.PersonalSkillPointsLeft(tt.intelligence, tt.skills))
		})
	}
}

func TestStartingHealth(t *testing.T) {
	tests := []struct {
		resistance int
		want       int
	}{
		{1, 10},
		{2, 10},
		{3, 11},
		{4, 12},
		{5, 13},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, rules.StartingHealth(tt.resistance),
			"resistance %d", tt.resistance)
	}
}

func TestCanAdjustStat(t *testing.T) {
	base := survival.Stats{Strength: 1, Agility: 1, Intelligence: 1, Resistance: 1, Charisma: 1}

	t.Run("increase from floor", func(t *testing.T) {
		stats := base
		assert.True(t, rules.CanAdjustStat(&stats, survival.StatStrength, 1))
	})

	t.Run("decrease below floor rejected", func(t *testing.T) {
		stats := base
		assert.False(t, rules.CanAdjustStat(&stats, survival.StatStrength, -1))
	})

	t.Run("increase past cap rejected", func(t *testing.T) {
		stats := base
		stats.Strength = 5
		assert.False(t, rules.CanAdjustStat(&stats, survival.StatStrength, 1))
	})

	t.Run("increase past pool rejected", func(t *testing.T) {
		stats := survival.Stats{Strength: 4, Agility: 2, Intelligence: 2, Resistance: 1, Charisma: 1}
		assert.False(t, rules.CanAdjustStat(&stats, survival.StatAgility, 1))
	})

	t.Run("decrease frees a point", func(t *testing.T) {
		stats := survival.Stats{Strength: 4, Agility: 2, Intelligence: 2, Resistance: 1, Charisma: 1}
		assert.True(t, rules.CanAdjustStat(&stats, survival.StatStrength, -1))
	})

	t.Run("zero delta rejected", func(t *testing.T) {
		stats := base
		assert.False(t, rules.CanAdjustStat(&stats, survival.StatStrength, 0))
	})
}

func TestCanAdjustSkillPoints(t *testing.T) {
	tests := []struct {
		name       string
		points     int
		pointsLeft int
		delta      int
		want       bool
	}{
		{"increase with pool", 1, 5, 1, true},
		{"increase without pool", 1, 0, 1, false},
		{"increase past cap", 10, 5, 1, false},
		{"decrease to floor", 2, 0, -1, true},
		{"decrease below floor", 1, 5, -1, false},
		{"zero delta", 5, 5, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want,
				rules.CanAdjustSkillPoints(tt.points, tt.pointsLeft, tt.delta))
		})
	}
}

// Any sequence of accepted single-step edits keeps the spread legal: each
// stat within [1,5], total within [5,10], and the pool consistent with the
// total.
func TestStatAdjustmentsKeepSpreadLegal(t *testing.T) {
	ids := survival.StatIDs()

	rapid.Check(t, func(rt *rapid.T) {
		stats := survival.Stats{
			Strength: 1, Agility: 1, Intelligence: 1, Resistance: 1, Charisma: 1,
		}

		steps := rapid.IntRange(0, 40).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			id := ids[rapid.IntRange(0, len(ids)-1).Draw(rt, "stat")]
			delta := rapid.SampledFrom([]int{-1, 1}).Draw(rt, "delta")

			if rules.CanAdjustStat(&stats, id, delta) {
				stats.Set(id, stats.Get(id)+delta)
			}

			for _, sid := range ids {
				v := stats.Get(sid)
				if v < rules.StatMin || v > rules.StatMax {
					rt.Fatalf("stat %s out of range: %d", sid, v)
				}
			}
			total := stats.Total()
			if total < 5 || total > rules.StatPointPool {
				rt.Fatalf("total out of range: %d", total)
			}
			if rules.StatPointsLeft(&stats) != rules.StatPointPool-total {
				rt.Fatalf("pool inconsistent with total %d", total)
			}
		}
	})
}
