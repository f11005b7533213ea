// Package registry persists the user-authored extras that live beside the
// save slots: custom item templates, custom events, and the event log. Each
// collection is stored whole under one key. A corrupt payload degrades to an
// empty collection instead of failing the caller.
package registry

//go:generate mockgen -destination=mock/mock_repository.go -package=registrymock github.com/zombierpg/survivor-api/internal/repositories/registry Repository

import (
	"context"

	"github.com/zombierpg/survivor-api/internal/entities/survival"
)

// Repository defines the interface for registry persistence
type Repository interface {
	// GetCustomItems returns the stored custom item templates, empty when
	// none exist or the payload is unreadable
	GetCustomItems(ctx context.Context, input GetCustomItemsInput) (*GetCustomItemsOutput, error)

	// PutCustomItems replaces the stored custom item templates
	PutCustomItems(ctx context.Context, input PutCustomItemsInput) (*PutCustomItemsOutput, error)

	// GetCustomEvents returns the stored custom events, empty when none
	// exist or the payload is unreadable
	GetCustomEvents(ctx context.Context, input GetCustomEventsInput) (*GetCustomEventsOutput, error)

	// PutCustomEvents replaces the stored custom events
	PutCustomEvents(ctx context.Context, input PutCustomEventsInput) (*PutCustomEventsOutput, error)

	// GetEventLog returns the event log, newest entry first
	GetEventLog(ctx context.Context, input GetEventLogInput) (*GetEventLogOutput, error)

	// AppendEventLog prepends an entry to the event log
	AppendEventLog(ctx context.Context, input AppendEventLogInput) (*AppendEventLogOutput, error)

	// ClearEventLog removes the event log; absent log is not an error
	ClearEventLog(ctx context.Context, input ClearEventLogInput) (*ClearEventLogOutput, error)
}

// GetCustomItemsInput defines the input for reading custom item templates
type GetCustomItemsInput struct{}

// GetCustomItemsOutput defines the output for reading custom item templates
type GetCustomItemsOutput struct {
	Items []survival.Item
}

// PutCustomItemsInput defines the input for storing custom item templates
type PutCustomItemsInput struct {
	Items []survival.Item
}

// PutCustomItemsOutput defines the output for storing custom item templates
type PutCustomItemsOutput struct{}

// GetCustomEventsInput defines the input for reading custom events
type GetCustomEventsInput struct{}

// GetCustomEventsOutput defines the output for reading custom events
type GetCustomEventsOutput struct {
	Events []survival.GameEvent
}

// PutCustomEventsInput defines the input for storing custom events
type PutCustomEventsInput struct {
	Events []survival.GameEvent
}

// PutCustomEventsOutput defines the output for storing custom events
type PutCustomEventsOutput struct{}

// GetEventLogInput defines the input for reading the event log
type GetEventLogInput struct{}

// GetEventLogOutput defines the output for reading the event log
type GetEventLogOutput struct {
	Entries []string
}

// AppendEventLogInput defines the input for appending to the event log
type AppendEventLogInput struct {
	Entry string
}

// AppendEventLogOutput defines the output for appending to the event log
type AppendEventLogOutput struct{}

// ClearEventLogInput defines the input for clearing the event log
type ClearEventLogInput struct{}

// ClearEventLogOutput defines the output for clearing the event log
type ClearEventLogOutput struct{}
