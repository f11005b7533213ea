package survival

// EventEffects describes what triggering a game event does to the character.
// ItemIDs name catalog items to grant; the RemoveRandomItem marker drops one
// random inventory stack instead.
type EventEffects struct {
	Health    int      `json:"health"`
	MaxHealth int      `json:"maxHealth"`
	ItemIDs   []string `json:"items"`
}

// RemoveRandomItem is the sentinel item id used by events that cost the
// character a random piece of inventory.
const RemoveRandomItem = "remove_random"

// GameEvent is a narrative event the player can trigger from the event
// simulator. Custom events are authored in-game and persisted separately from
// the predefined catalog. Presentation (icons, colors) is derived from Type
// by the UI and never stored.
type GameEvent struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Type        EventType    `json:"type"`
	Effects     EventEffects `json:"effects"`
	Custom      bool         `json:"isCustom,omitempty"`
}
