// Package draft provides persistence for the single in-progress creation
// draft. There is at most one draft at a time; it survives process restarts
// and is removed on finalize or reset.
package draft

//go:generate mockgen -destination=mock/mock_repository.go -package=draftmock github.com/zombierpg/survivor-api/internal/repositories/draft Repository

import (
	"context"

	"github.com/zombierpg/survivor-api/internal/entities/survival"
)

// Repository defines the interface for draft persistence
type Repository interface {
	// Put stores the draft, replacing any existing one
	// Returns errors.InvalidArgument for a nil draft
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Get retrieves the current draft
	// Returns errors.NotFound when no draft exists
	// Returns errors.DataLoss when the stored payload cannot be parsed
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes the draft; absent draft is not an error
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// PutInput defines the input for storing the draft
type PutInput struct {
	Draft *survival.Draft
}

// PutOutput defines the output for storing the draft
type PutOutput struct {
	Draft *survival.Draft
}

// GetInput defines the input for getting the draft
type GetInput struct{}

// GetOutput defines the output for getting the draft
type GetOutput struct {
	Draft *survival.Draft
}

// DeleteInput defines the input for deleting the draft
type DeleteInput struct{}

// DeleteOutput defines the output for deleting the draft
type DeleteOutput struct{}
