// Package catalog holds the static reference data: stat definitions, skill
// lists, the item table, and the predefined game events. Everything here is
// immutable lookup data; callers receive copies and the package never
// mutates. Display names and descriptions keep the original Spanish text.
package catalog

import "github.com/zombierpg/survivor-api/internal/entities/survival"

// StatDefinition describes one of the five base attributes.
type StatDefinition struct {
	ID          survival.StatID
	Label       string
	Description string
}

// SkillDefinition describes a selectable personal or special skill.
type SkillDefinition struct {
	ID          string
	Name        string
	Description string
}

var stats = []StatDefinition{
	{ID: survival.StatStrength, Label: "Fuerza",
		Description: "Capacidad para levantar objetos pesados, hacer daño en combate cuerpo a cuerpo"},
	{ID: survival.StatAgility, Label: "Agilidad",
		Description: "Velocidad, reflejos y destreza"},
	{ID: survival.StatIntelligence, Label: "Inteligencia",
		Description: "Conocimiento, resolución de problemas y habilidades técnicas"},
	{ID: survival.StatResistance, Label: "Resistencia",
		Description: "Aguante físico, resistencia a enfermedades y toxinas"},
	{ID: survival.StatCharisma, Label: "Carisma",
		Description: "Persuasión, liderazgo e influencia social"},
}

// Stats returns the five stat definitions in display order.
func Stats() []StatDefinition {
	out := make([]StatDefinition, len(stats))
	copy(out, stats)
	return out
}

// Stat returns the definition for a stat id.
func Stat(id survival.StatID) (StatDefinition, bool) {
	for _, def := range stats {
		if def.ID == id {
			return def, true
		}
	}
	return StatDefinition{}, false
}
