package builder

import (
	"github.com/zombierpg/survivor-api/internal/entities/survival"
)

// StartDraftInput defines the input for starting or resuming a draft
type StartDraftInput struct{}

// StartDraftOutput returns the active draft
type StartDraftOutput struct {
	Draft *survival.Draft
}

// GetDraftInput defines the input for reading the draft
type GetDraftInput struct{}

// GetDraftOutput returns the active draft
type GetDraftOutput struct {
	Draft *survival.Draft
}

// ResetDraftInput defines the input for discarding the draft
type ResetDraftInput struct{}

// ResetDraftOutput returns the fresh replacement draft
type ResetDraftOutput struct {
	Draft *survival.Draft
}

// UpdateBasicsInput carries the identity fields of the first stage
type UpdateBasicsInput struct {
	Name       string
	Age        int
	Background string
	Appearance string
}

// UpdateBasicsOutput returns the updated draft
type UpdateBasicsOutput struct {
	Draft *survival.Draft
}

// UpdateImageInput carries the portrait blob. An empty value clears it.
type UpdateImageInput struct {
	ImageData string
}

// UpdateImageOutput returns the updated draft
type UpdateImageOutput struct {
	Draft *survival.Draft
}

// AdjustStatInput is a single-step stat edit
type AdjustStatInput struct {
	Stat  survival.StatID
	Delta int
}

// AdjustStatOutput returns the updated draft
type AdjustStatOutput struct {
	Draft *survival.Draft
}

// SelectPersonalSkillInput picks a personal skill
type SelectPersonalSkillInput struct {
	SkillID string
}

// SelectPersonalSkillOutput returns the updated draft
type SelectPersonalSkillOutput struct {
	Draft *survival.Draft
}

// DeselectPersonalSkillInput drops a picked personal skill, returning its
// points to the pool
type DeselectPersonalSkillInput struct {
	SkillID string
}

// DeselectPersonalSkillOutput returns the updated draft
type DeselectPersonalSkillOutput struct {
	Draft *survival.Draft
}

// AdjustSkillPointsInput is a single-step skill point edit
type AdjustSkillPointsInput struct {
	SkillID string
	Delta   int
}

// AdjustSkillPointsOutput returns the updated draft
type AdjustSkillPointsOutput struct {
	Draft *survival.Draft
}

// ToggleSpecialSkillInput selects or deselects a special skill
type ToggleSpecialSkillInput struct {
	SkillID string
}

// ToggleSpecialSkillOutput returns the updated draft
type ToggleSpecialSkillOutput struct {
	Draft *survival.Draft
}

// ToggleLoadoutItemInput selects or deselects a starting item
type ToggleLoadoutItemInput struct {
	ItemID string
}

// ToggleLoadoutItemOutput returns the updated draft
type ToggleLoadoutItemOutput struct {
	Draft *survival.Draft
}

// AdvanceInput moves the draft one stage forward
type AdvanceInput struct{}

// AdvanceOutput returns the updated draft
type AdvanceOutput struct {
	Draft *survival.Draft
}

// BackInput moves the draft one stage backward
type BackInput struct{}

// BackOutput returns the updated draft
type BackOutput struct {
	Draft *survival.Draft
}

// FinalizeInput converts the draft into a persisted character
type FinalizeInput struct{}

// FinalizeOutput returns the finalized character record
type FinalizeOutput struct {
	State *survival.GameState
}
