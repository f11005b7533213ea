package catalog

import "github.com/zombierpg/survivor-api/internal/entities/survival"

// loadoutItems are the ten items offered during creation. pickupItems only
// enter play through events or manual backpack additions.
var loadoutItems = []survival.Item{
	{
		ID:          "pistola",
		Name:        "Pistola 9mm",
		Description: "Una pistola semiautomática con 12 balas. Efectiva a corta distancia.",
		Type:        survival.ItemTypeWeapon,
		Quantity:    1,
		Weight:      1.2,
		Image:       "🔫",
		Usable:      true,
		Damage:      5,
	},
	{
		ID:            "botiquin",
		Name:          "Botiquín de primeros auxilios",
		Description:   "Contiene vendas, antisépticos y analgésicos básicos.",
		Type:          survival.ItemTypeMedicine,
		Quantity:      1,
		Weight:        1.0,
		Image:         "🧰",
		Usable:        true,
		Consumable:    true,
		HealthRestore: 5,
	},
	{
		ID:          "cuchillo",
		Name:        "Cuchillo de caza",
		Description: "Un cuchillo afilado y resistente. Útil para combate cuerpo a cuerpo y supervivencia.",
		Type:        survival.ItemTypeWeapon,
		Quantity:    1,
		Weight:      0.4,
		Image:       "🔪",
		Usable:      true,
		Damage:      3,
	},
	{
		ID:          "linterna",
		Name:        "Linterna táctica",
		Description: "Linterna resistente con baterías de larga duración.",
		Type:        survival.ItemTypeTool,
		Quantity:    1,
		Weight:      0.3,
		Image:       "🔦",
		Usable:      true,
	},
	{
		ID:            "comida",
		Name:          "Raciones de emergencia",
		Description:   "Comida enlatada y barras energéticas para 3 días.",
		Type:          survival.ItemTypeFood,
		Stackable:     true,
		Quantity:      1,
		MaxStack:      5,
		Weight:        0.8,
		Image:         "🥫",
		Usable:        true,
		Consumable:    true,
		HealthRestore: 2,
	},
	{
		ID:            "agua",
		Name:          "Cantimplora con purificador",
		Description:   "Permite almacenar y purificar agua encontrada en el camino.",
		Type:          survival.ItemTypeWater,
		Quantity:      1,
		Weight:        0.6,
		Image:         "🧴",
		Usable:        true,
		Consumable:    true,
		HealthRestore: 1,
	},
	{
		ID:          "mochila",
		Name:        "Mochila táctica",
		Description: "Mochila resistente con múltiples compartimentos.",
		Type:        survival.ItemTypeMisc,
		Quantity:    1,
		Weight:      1.5,
		Image:       "🎒",
	},
	{
		ID:          "radio",
		Name:        "Radio de emergencia",
		Description: "Radio que funciona con manivela para comunicaciones de emergencia.",
		Type:        survival.ItemTypeTool,
		Quantity:    1,
		Weight:      0.7,
		Image:       "📻",
		Usable:      true,
	},
	{
		ID:          "mapa",
		Name:        "Mapa de la ciudad",
		Description: "Mapa detallado con rutas de evacuación marcadas.",
		Type:        survival.ItemTypeMisc,
		Quantity:    1,
		Weight:      0.1,
		Image:       "🗺️",
	},
	{
		ID:          "machete",
		Name:        "Machete",
		Description: "Arma contundente para combate cuerpo a cuerpo y despejar caminos.",
		Type:        survival.ItemTypeWeapon,
		Quantity:    1,
		Weight:      1.1,
		Image:       "⚔️",
		Usable:      true,
		Damage:      4,
	},
}

var pickupItems = []survival.Item{
	{
		ID:            "lata_conserva",
		Name:          "Lata de conserva",
		Description:   "Comida enlatada en buen estado. Recupera algo de salud.",
		Type:          survival.ItemTypeFood,
		Stackable:     true,
		Quantity:      1,
		MaxStack:      10,
		Weight:        0.4,
		Image:         "🥫",
		Usable:        true,
		Consumable:    true,
		HealthRestore: 2,
	},
	{
		ID:            "botella_agua",
		Name:          "Botella de agua",
		Description:   "Agua potable sin abrir.",
		Type:          survival.ItemTypeWater,
		Stackable:     true,
		Quantity:      1,
		MaxStack:      10,
		Weight:        0.5,
		Image:         "💧",
		Usable:        true,
		Consumable:    true,
		HealthRestore: 1,
	},
	{
		ID:          "municion_9mm",
		Name:        "Munición 9mm",
		Description: "Caja de balas de 9mm para pistola.",
		Type:        survival.ItemTypeAmmo,
		Stackable:   true,
		Quantity:    12,
		MaxStack:    50,
		Weight:      0.2,
		Image:       "🧨",
		AmmoType:    survival.Ammo9mm,
	},
}

// Items returns the creation-loadout item table in display order.
func Items() []survival.Item {
	out := make([]survival.Item, len(loadoutItems))
	copy(out, loadoutItems)
	return out
}

// Item returns the catalog entry for an item id, checking both the loadout
// table and the pickup-only items granted by events.
func Item(id string) (survival.Item, bool) {
	for _, it := range loadoutItems {
		if it.ID == id {
			return it, true
		}
	}
	for _, it := range pickupItems {
		if it.ID == id {
			return it, true
		}
	}
	return survival.Item{}, false
}

// NewItem returns a fresh instance of a catalog item, ready to be placed in
// an inventory. The copy never aliases catalog data.
func NewItem(id string) (*survival.Item, bool) {
	it, ok := Item(id)
	if !ok {
		return nil, false
	}
	return &it, true
}
