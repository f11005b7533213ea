package encounters

import (
	"github.com/zombierpg/survivor-api/internal/entities/survival"
)

// ListEventsInput lists every triggerable event
type ListEventsInput struct{}

// ListEventsOutput returns the predefined events followed by the custom ones
type ListEventsOutput struct {
	Events []survival.GameEvent
}

// CreateCustomEventInput authors a new event
type CreateCustomEventInput struct {
	Title       string
	Description string
	Type        survival.EventType
	Health      int
	MaxHealth   int
	ItemIDs     []string
}

// CreateCustomEventOutput returns the stored event
type CreateCustomEventOutput struct {
	Event *survival.GameEvent
}

// UpdateCustomEventInput edits an existing custom event
type UpdateCustomEventInput struct {
	ID          string
	Title       string
	Description string
	Type        survival.EventType
	Health      int
	MaxHealth   int
	ItemIDs     []string
}

// UpdateCustomEventOutput returns the updated event
type UpdateCustomEventOutput struct {
	Event *survival.GameEvent
}

// DeleteCustomEventInput removes a custom event
type DeleteCustomEventInput struct {
	ID string
}

// DeleteCustomEventOutput defines the output for removing a custom event
type DeleteCustomEventOutput struct{}

// TriggerInput fires an event against a character
type TriggerInput struct {
	CharacterID string
	EventID     string
}

// TriggerOutput reports what the event did
type TriggerOutput struct {
	Character    *survival.Character
	Event        *survival.GameEvent
	GrantedItems []string
	RemovedItem  string
}

// EventLogInput reads the event log
type EventLogInput struct{}

// EventLogOutput returns log entries, newest first
type EventLogOutput struct {
	Entries []string
}

// ClearEventLogInput empties the event log
type ClearEventLogInput struct{}

// ClearEventLogOutput defines the output for clearing the event log
type ClearEventLogOutput struct{}
