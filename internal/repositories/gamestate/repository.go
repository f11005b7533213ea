// Package gamestate provides the multi-slot save layer: one GameState record
// per character id, plus an index set of known ids. The index and the record
// set stay consistent; dangling index members are pruned during listing.
package gamestate

//go:generate mockgen -destination=mock/mock_repository.go -package=gamestatemock github.com/zombierpg/survivor-api/internal/repositories/gamestate Repository

import (
	"context"

	"github.com/zombierpg/survivor-api/internal/entities/survival"
)

// Repository defines the interface for game-state persistence
type Repository interface {
	// Save writes the record under its character id, generating an id when
	// the character has none, and keeps the index in sync
	// Returns errors.InvalidArgument for a nil or character-less record
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves the record for a character id
	// Returns errors.InvalidArgument for an empty id
	// Returns errors.NotFound if no record exists
	// Returns errors.DataLoss when the stored payload cannot be parsed
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes the record and its index entry. Deleting an absent id
	// succeeds; the call is idempotent
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListSummaries projects every indexed record into a dashboard summary,
	// ordered by last update descending. Records that fail to load or parse
	// are skipped and their index entries pruned
	ListSummaries(ctx context.Context, input ListSummariesInput) (*ListSummariesOutput, error)

	// Export returns the stored record bytes unmodified, for user backup
	// Returns errors.NotFound if no record exists
	Export(ctx context.Context, input ExportInput) (*ExportOutput, error)

	// MigrateLegacy imports the pre-index single-slot record if one exists,
	// writing it through Save and removing the legacy key. An in-progress
	// legacy draft is left untouched
	MigrateLegacy(ctx context.Context, input MigrateLegacyInput) (*MigrateLegacyOutput, error)
}

// SaveInput defines the input for saving a record
type SaveInput struct {
	State *survival.GameState
}

// SaveOutput defines the output for saving a record
type SaveOutput struct {
	State *survival.GameState
}

// GetInput defines the input for getting a record
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a record
type GetOutput struct {
	State *survival.GameState
}

// DeleteInput defines the input for deleting a record
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a record
type DeleteOutput struct{}

// ListSummariesInput defines the input for listing summaries
type ListSummariesInput struct{}

// ListSummariesOutput defines the output for listing summaries
type ListSummariesOutput struct {
	Summaries []survival.Summary
}

// ExportInput defines the input for exporting a record
type ExportInput struct {
	ID string
}

// ExportOutput carries the stored record bytes
type ExportOutput struct {
	Data []byte
}

// MigrateLegacyInput defines the input for the legacy migration
type MigrateLegacyInput struct{}

// MigrateLegacyOutput reports what the migration did
type MigrateLegacyOutput struct {
	Migrated    bool
	CharacterID string
}
