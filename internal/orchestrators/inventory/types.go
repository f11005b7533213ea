package inventory

import (
	"github.com/zombierpg/survivor-api/internal/entities/survival"
)

// AddItemInput adds a catalog item to a character's backpack
type AddItemInput struct {
	CharacterID string
	ItemID      string
}

// AddItemOutput returns the updated character
type AddItemOutput struct {
	Character *survival.Character
}

// AddCustomItemInput adds a fully-specified user-authored item. The id is
// generated; the template is also saved to the custom-item registry for
// reuse.
type AddCustomItemInput struct {
	CharacterID   string
	Name          string
	Description   string
	Type          survival.ItemType
	Stackable     bool
	Quantity      int
	MaxStack      int
	Weight        float64
	Image         string
	Usable        bool
	Consumable    bool
	AmmoType      survival.AmmoType
	HealthRestore int
	Damage        int
}

// AddCustomItemOutput returns the updated character and the stored item
type AddCustomItemOutput struct {
	Character *survival.Character
	Item      *survival.Item
}

// RemoveItemInput removes one whole stack by its inventory index
type RemoveItemInput struct {
	CharacterID string
	Index       int
}

// RemoveItemOutput returns the updated character
type RemoveItemOutput struct {
	Character *survival.Character
}

// UseItemInput uses the item at an inventory index
type UseItemInput struct {
	CharacterID string
	Index       int
}

// UseItemOutput returns the updated character and how much health the use
// restored after clamping
type UseItemOutput struct {
	Character      *survival.Character
	HealthRestored int
}

// SetQuantityInput changes a stack's quantity
type SetQuantityInput struct {
	CharacterID string
	Index       int
	Quantity    int
}

// SetQuantityOutput returns the updated character
type SetQuantityOutput struct {
	Character *survival.Character
}

// TotalWeightInput asks for the combined carry weight
type TotalWeightInput struct {
	CharacterID string
}

// TotalWeightOutput carries the combined weight of all stacks
type TotalWeightOutput struct {
	Weight float64
}

// CustomItemsInput lists the stored custom item templates
type CustomItemsInput struct{}

// CustomItemsOutput returns the stored custom item templates
type CustomItemsOutput struct {
	Items []survival.Item
}
