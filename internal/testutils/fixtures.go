package testutils

import (
	"github.com/zombierpg/survivor-api/internal/entities/survival"
)

// NewTestCharacter returns a finalized level-1 survivor with a legal stat
// spread, fully allocated skills, and an empty backpack. Tests mutate the
// copy freely.
func NewTestCharacter(id string) *survival.Character {
	return &survival.Character{
		ID:         id,
		Name:       "Marta",
		Age:        29,
		Background: "Enfermera de urgencias",
		Level:      1,
		Stats: survival.Stats{
			Strength:     1,
			Agility:      2,
			Intelligence: 3,
			Resistance:   3,
			Charisma:     1,
		},
		PersonalSkills: []survival.PersonalSkill{
			{ID: "medicina", Name: "Medicina", Points: 5},
			{ID: "sigilo", Name: "Sigilo", Points: 2},
			{ID: "observacion", Name: "Observación", Points: 2},
			{ID: "atletismo", Name: "Atletismo", Points: 2},
			{ID: "empatia", Name: "Empatía", Points: 2},
			{ID: "primeros_auxilios", Name: "Primeros auxilios", Points: 2},
		},
		SpecialSkillIDs:   []string{"primeros_auxilios", "sigilo"},
		Health:            survival.Health{Current: 11, Max: 11},
		Inventory:         []survival.Item{},
		InventoryCapacity: 15,
		CreatedAt:         "2025-06-01T10:00:00Z",
		LastUpdated:       "2025-06-01T10:00:00Z",
	}
}

// NewTestState wraps a character in a persisted record.
func NewTestState(id string) *survival.GameState {
	return &survival.GameState{
		Character: NewTestCharacter(id),
	}
}
