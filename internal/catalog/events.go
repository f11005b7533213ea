package catalog

import "github.com/zombierpg/survivor-api/internal/entities/survival"

var gameEvents = []survival.GameEvent{
	{
		ID:          "zombie_attack",
		Title:       "Ataque Zombie",
		Description: "Un zombie te ataca por sorpresa. Recibes daño.",
		Type:        survival.EventDanger,
		Effects:     survival.EventEffects{Health: -3},
	},
	{
		ID:          "find_medicine",
		Title:       "Botiquín Encontrado",
		Description: "Encuentras un botiquín en un armario abandonado.",
		Type:        survival.EventPositive,
		Effects:     survival.EventEffects{ItemIDs: []string{"botiquin"}},
	},
	{
		ID:          "find_food",
		Title:       "Comida Enlatada",
		Description: "Encuentras varias latas de comida en buen estado.",
		Type:        survival.EventPositive,
		Effects:     survival.EventEffects{ItemIDs: []string{"lata_conserva", "lata_conserva"}},
	},
	{
		ID:          "find_water",
		Title:       "Agua Potable",
		Description: "Encuentras botellas de agua sin abrir.",
		Type:        survival.EventPositive,
		Effects:     survival.EventEffects{ItemIDs: []string{"botella_agua", "botella_agua"}},
	},
	{
		ID:          "find_ammo",
		Title:       "Munición",
		Description: "Encuentras munición en un cadáver.",
		Type:        survival.EventPositive,
		Effects:     survival.EventEffects{ItemIDs: []string{"municion_9mm"}},
	},
	{
		ID:          "heal_rest",
		Title:       "Descanso Reparador",
		Description: "Encuentras un lugar seguro para descansar y recuperas salud.",
		Type:        survival.EventPositive,
		Effects:     survival.EventEffects{Health: 2},
	},
	{
		ID:          "increase_max_health",
		Title:       "Entrenamiento Físico",
		Description: "Después de días de ejercicio, tu resistencia física aumenta.",
		Type:        survival.EventPositive,
		Effects:     survival.EventEffects{Health: 1, MaxHealth: 1},
	},
	{
		ID:          "lose_supplies",
		Title:       "Emboscada",
		Description: "Un grupo de bandidos te embosca y pierdes algunos suministros.",
		Type:        survival.EventDanger,
		Effects:     survival.EventEffects{Health: -1, ItemIDs: []string{survival.RemoveRandomItem}},
	},
}

// Events returns the predefined game events in display order.
func Events() []survival.GameEvent {
	out := make([]survival.GameEvent, len(gameEvents))
	copy(out, gameEvents)
	return out
}

// Event returns the predefined event with the given id.
func Event(id string) (survival.GameEvent, bool) {
	for _, ev := range gameEvents {
		if ev.ID == id {
			return ev, true
		}
	}
	return survival.GameEvent{}, false
}
