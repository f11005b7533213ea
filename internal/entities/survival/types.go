// Package survival implements the survivor game entities.
// These are data-only structs; all rule calculations live in internal/rules
// and the orchestrators. JSON tags preserve the original save-file layout,
// including the Spanish stat keys, so existing exports stay round-trippable.
package survival

// ItemType classifies an inventory item. The set is closed; the UI resolves
// each type to a display asset, the core only stores the tag.
type ItemType string

// Item types
const (
	ItemTypeWeapon   ItemType = "weapon"
	ItemTypeAmmo     ItemType = "ammo"
	ItemTypeFood     ItemType = "food"
	ItemTypeWater    ItemType = "water"
	ItemTypeMedicine ItemType = "medicine"
	ItemTypeTool     ItemType = "tool"
	ItemTypeResource ItemType = "resource"
	ItemTypeClothing ItemType = "clothing"
	ItemTypeMisc     ItemType = "misc"
)

// Valid reports whether t is one of the known item types.
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeWeapon, ItemTypeAmmo, ItemTypeFood, ItemTypeWater,
		ItemTypeMedicine, ItemTypeTool, ItemTypeResource, ItemTypeClothing, ItemTypeMisc:
		return true
	default:
		return false
	}
}

// AmmoType identifies which weapons an ammo item feeds.
type AmmoType string

// Ammo types
const (
	Ammo9mm     AmmoType = "9mm"
	Ammo12Gauge AmmoType = "12gauge"
	Ammo556     AmmoType = "556"
	Ammo762     AmmoType = "762"
	AmmoArrow   AmmoType = "arrow"
	AmmoBolt    AmmoType = "bolt"
)

// StatID identifies one of the five base attributes.
type StatID string

// Stat identifiers. The ids double as JSON keys in the persisted stats block.
const (
	StatStrength     StatID = "fuerza"
	StatAgility      StatID = "agilidad"
	StatIntelligence StatID = "inteligencia"
	StatResistance   StatID = "resistencia"
	StatCharisma     StatID = "carisma"
)

// StatIDs returns the five stats in display order.
func StatIDs() []StatID {
	return []StatID{StatStrength, StatAgility, StatIntelligence, StatResistance, StatCharisma}
}

// EventType classifies a game event for presentation purposes.
type EventType string

// Event types
const (
	EventDanger   EventType = "danger"
	EventPositive EventType = "positive"
	EventNeutral  EventType = "neutral"
)
