// Package builder implements the character-creation pipeline: an ordered
// sequence of stages with forward gates, free backward movement among the
// early stages, and a finalize step that turns the draft into a persisted
// character. Every mutation recomputes the derived fields and persists the
// draft before returning, so a reload resumes exactly where the player was.
package builder

import (
	"context"
	"log/slog"
	"time"

	"github.com/zombierpg/survivor-api/internal/catalog"
	"github.com/zombierpg/survivor-api/internal/entities/survival"
	"github.com/zombierpg/survivor-api/internal/errors"
	"github.com/zombierpg/survivor-api/internal/pkg/clock"
	"github.com/zombierpg/survivor-api/internal/pkg/idgen"
	"github.com/zombierpg/survivor-api/internal/repositories/draft"
	"github.com/zombierpg/survivor-api/internal/repositories/gamestate"
	"github.com/zombierpg/survivor-api/internal/rules"
)

// Orchestrator drives the creation pipeline.
type Orchestrator struct {
	draftRepo draft.Repository
	stateRepo gamestate.Repository
	idGen     idgen.Generator
	clock     clock.Clock
}

// Config contains the dependencies for the builder orchestrator.
type Config struct {
	DraftRepo     draft.Repository
	GameStateRepo gamestate.Repository
	IDGenerator   idgen.Generator
	Clock         clock.Clock
}

// Validate validates the Config.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.DraftRepo == nil {
		vb.RequiredField("DraftRepo")
	}
	if cfg.GameStateRepo == nil {
		vb.RequiredField("GameStateRepo")
	}
	return vb.Build()
}

// New creates a builder orchestrator from the config.
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	g := cfg.IDGenerator
	if g == nil {
		g = &idgen.TimestampGenerator{}
	}

	return &Orchestrator{
		draftRepo: cfg.DraftRepo,
		stateRepo: cfg.GameStateRepo,
		idGen:     g,
		clock:     c,
	}, nil
}

// newDraft builds the empty starting draft: every stat at the floor, full
// pools, derived fields consistent.
func (o *Orchestrator) newDraft() *survival.Draft {
	now := o.clock.Now().UTC().Format(time.RFC3339)
	d := &survival.Draft{
		Stats: survival.Stats{
			Strength:     rules.StatMin,
			Agility:      rules.StatMin,
			Intelligence: rules.StatMin,
			Resistance:   rules.StatMin,
			Charisma:     rules.StatMin,
		},
		PersonalSkills:           []survival.PersonalSkill{},
		SelectedPersonalSkillIDs: []string{},
		SpecialSkillIDs:          []string{},
		LoadoutIDs:               []string{},
		Stage:                    survival.StageBasics,
		CreatedAt:                now,
		UpdatedAt:                now,
	}
	o.recompute(d)
	return d
}

// recompute refreshes every derived field after a mutation.
func (o *Orchestrator) recompute(d *survival.Draft) {
	d.TotalStatPoints = d.Stats.Total()
	d.PointsLeft = rules.StatPointsLeft(&d.Stats)
	d.PersonalSkillPointsLeft = rules.PersonalSkillPointsLeft(d.Stats.Intelligence, d.PersonalSkills)
	d.Health = rules.StartingHealth(d.Stats.Resistance)
}

// persist recomputes, stamps, and stores the draft.
func (o *Orchestrator) persist(ctx context.Context, d *survival.Draft) error {
	o.recompute(d)
	d.UpdatedAt = o.clock.Now().UTC().Format(time.RFC3339)
	_, err := o.draftRepo.Put(ctx, draft.PutInput{Draft: d})
	return err
}

// load fetches the current draft.
func (o *Orchestrator) load(ctx context.Context) (*survival.Draft, error) {
	out, err := o.draftRepo.Get(ctx, draft.GetInput{})
	if err != nil {
		return nil, err
	}
	return out.Draft, nil
}

// StartDraft resumes the in-progress draft, or creates a fresh one when none
// exists.
func (o *Orchestrator) StartDraft(ctx context.Context, _ StartDraftInput) (*StartDraftOutput, error) {
	existing, err := o.load(ctx)
	if err == nil {
		return &StartDraftOutput{Draft: existing}, nil
	}
	if !errors.IsNotFound(err) && !errors.IsDataLoss(err) {
		return nil, err
	}
	if errors.IsDataLoss(err) {
		slog.WarnContext(ctx, "stored draft unreadable, starting over")
	}

	d := o.newDraft()
	if err := o.persist(ctx, d); err != nil {
		return nil, err
	}
	return &StartDraftOutput{Draft: d}, nil
}

// GetDraft returns the current draft.
func (o *Orchestrator) GetDraft(ctx context.Context, _ GetDraftInput) (*GetDraftOutput, error) {
	d, err := o.load(ctx)
	if err != nil {
		return nil, err
	}
	return &GetDraftOutput{Draft: d}, nil
}

// ResetDraft discards the current draft and starts a fresh one.
func (o *Orchestrator) ResetDraft(ctx context.Context, _ ResetDraftInput) (*ResetDraftOutput, error) {
	if _, err := o.draftRepo.Delete(ctx, draft.DeleteInput{}); err != nil {
		return nil, err
	}

	d := o.newDraft()
	if err := o.persist(ctx, d); err != nil {
		return nil, err
	}
	return &ResetDraftOutput{Draft: d}, nil
}

// UpdateBasics sets the identity fields.
func (o *Orchestrator) UpdateBasics(ctx context.Context, input UpdateBasicsInput) (*UpdateBasicsOutput, error) {
	vb := errors.NewValidationBuilder()
	if input.Age < 0 {
		vb.InvalidField("age", "cannot be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	d, err := o.load(ctx)
	if err != nil {
		return nil, err
	}

	d.Name = input.Name
	d.Age = input.Age
	d.Background = input.Background
	d.Appearance = input.Appearance

	if err := o.persist(ctx, d); err != nil {
		return nil, err
	}
	return &UpdateBasicsOutput{Draft: d}, nil
}

// UpdateImage sets or clears the portrait blob.
func (o *Orchestrator) UpdateImage(ctx context.Context, input UpdateImageInput) (*UpdateImageOutput, error) {
	d, err := o.load(ctx)
	if err != nil {
		return nil, err
	}

	d.ImageData = input.ImageData

	if err := o.persist(ctx, d); err != nil {
		return nil, err
	}
	return &UpdateImageOutput{Draft: d}, nil
}

// AdjustStat applies a single-step stat edit. All checks pass or nothing
// changes; there is no partial application.
func (o *Orchestrator) AdjustStat(ctx context.Context, input AdjustStatInput) (*AdjustStatOutput, error) {
	if _, ok := catalog.Stat(input.Stat); !ok {
		return nil, errors.InvalidArgumentf("unknown stat %q", input.Stat)
	}
	if input.Delta != 1 && input.Delta != -1 {
		return nil, errors.InvalidArgument("stat adjustments are single steps of +1 or -1")
	}

	d, err := o.load(ctx)
	if err != nil {
		return nil, err
	}

	if !rules.CanAdjustStat(&d.Stats, input.Stat, input.Delta) {
		return nil, errors.FailedPreconditionf(
			"cannot adjust %s by %+d: stats stay within %d-%d and the pool holds %d points",
			input.Stat, input.Delta, rules.StatMin, rules.StatMax, rules.StatPointPool)
	}

	d.Stats.Set(input.Stat, d.Stats.Get(input.Stat)+input.Delta)

	if err := o.persist(ctx, d); err != nil {
		return nil, err
	}
	return &AdjustStatOutput{Draft: d}, nil
}

// SelectPersonalSkill picks a skill and allocates its first point.
func (o *Orchestrator) SelectPersonalSkill(
	ctx context.Context,
	input SelectPersonalSkillInput,
) (*SelectPersonalSkillOutput, error) {
	def, ok := catalog.PersonalSkill(input.SkillID)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown personal skill %q", input.SkillID)
	}

	d, err := o.load(ctx)
	if err != nil {
		return nil, err
	}

	if d.HasSelectedPersonalSkill(input.SkillID) {
		return nil, errors.FailedPreconditionf("personal skill %q is already selected", input.SkillID)
	}
	if len(d.SelectedPersonalSkillIDs) >= rules.RequiredPersonalSkills {
		return nil, errors.FailedPreconditionf(
			"cannot select more than %d personal skills", rules.RequiredPersonalSkills)
	}
	if d.PersonalSkillPointsLeft < rules.SkillPointsMin {
		return nil, errors.FailedPrecondition("no personal skill points remaining")
	}

	d.SelectedPersonalSkillIDs = append(d.SelectedPersonalSkillIDs, def.ID)
	d.PersonalSkills = append(d.PersonalSkills, survival.PersonalSkill{
		ID:     def.ID,
		Name:   def.Name,
		Points: rules.SkillPointsMin,
	})

	if err := o.persist(ctx, d); err != nil {
		return nil, err
	}
	return &SelectPersonalSkillOutput{Draft: d}, nil
}

// DeselectPersonalSkill drops a picked skill. The points it held return to
// the pool exactly, not a recomputed baseline.
func (o *Orchestrator) DeselectPersonalSkill(
	ctx context.Context,
	input DeselectPersonalSkillInput,
) (*DeselectPersonalSkillOutput, error) {
	d, err := o.load(ctx)
	if err != nil {
		return nil, err
	}

	if !d.HasSelectedPersonalSkill(input.SkillID) {
		return nil, errors.FailedPreconditionf("personal skill %q is not selected", input.SkillID)
	}

	for i, id := range d.SelectedPersonalSkillIDs {
		if id == input.SkillID {
			d.SelectedPersonalSkillIDs = append(
				d.SelectedPersonalSkillIDs[:i], d.SelectedPersonalSkillIDs[i+1:]...)
			break
		}
	}
	if i := d.FindPersonalSkill(input.SkillID); i >= 0 {
		d.PersonalSkills = append(d.PersonalSkills[:i], d.PersonalSkills[i+1:]...)
	}

	if err := o.persist(ctx, d); err != nil {
		return nil, err
	}
	return &DeselectPersonalSkillOutput{Draft: d}, nil
}

// AdjustSkillPoints applies a single-step point edit on a selected skill.
func (o *Orchestrator) AdjustSkillPoints(
	ctx context.Context,
	input AdjustSkillPointsInput,
) (*AdjustSkillPointsOutput, error) {
	if input.Delta != 1 && input.Delta != -1 {
		return nil, errors.InvalidArgument("skill point adjustments are single steps of +1 or -1")
	}

	d, err := o.load(ctx)
	if err != nil {
		return nil, err
	}

	i := d.FindPersonalSkill(input.SkillID)
	if i < 0 {
		return nil, errors.FailedPreconditionf("personal skill %q is not selected", input.SkillID)
	}

	if !rules.CanAdjustSkillPoints(d.PersonalSkills[i].Points, d.PersonalSkillPointsLeft, input.Delta) {
		return nil, errors.FailedPreconditionf(
			"cannot adjust %q by %+d: skills hold %d-%d points and increases need pool points",
			input.SkillID, input.Delta, rules.SkillPointsMin, rules.SkillPointsMax)
	}

	d.PersonalSkills[i].Points += input.Delta

	if err := o.persist(ctx, d); err != nil {
		return nil, err
	}
	return &AdjustSkillPointsOutput{Draft: d}, nil
}

// ToggleSpecialSkill selects a special skill, or deselects it when already
// picked. Selection is capped at the required count.
func (o *Orchestrator) ToggleSpecialSkill(
	ctx context.Context,
	input ToggleSpecialSkillInput,
) (*ToggleSpecialSkillOutput, error) {
	if _, ok := catalog.SpecialSkill(input.SkillID); !ok {
		return nil, errors.InvalidArgumentf("unknown special skill %q", input.SkillID)
	}

	d, err := o.load(ctx)
	if err != nil {
		return nil, err
	}

	if d.HasSpecialSkill(input.SkillID) {
		for i, id := range d.SpecialSkillIDs {
			if id == input.SkillID {
				d.SpecialSkillIDs = append(d.SpecialSkillIDs[:i], d.SpecialSkillIDs[i+1:]...)
				break
			}
		}
	} else {
		if len(d.SpecialSkillIDs) >= rules.RequiredSpecialSkills {
			return nil, errors.FailedPreconditionf(
				"exactly %d special skills are allowed", rules.RequiredSpecialSkills)
		}
		d.SpecialSkillIDs = append(d.SpecialSkillIDs, input.SkillID)
	}

	if err := o.persist(ctx, d); err != nil {
		return nil, err
	}
	return &ToggleSpecialSkillOutput{Draft: d}, nil
}

// ToggleLoadoutItem selects a starting item, or deselects it when already
// picked. Picking past the cap is a no-op rather than an error; the selection
// simply stays full.
func (o *Orchestrator) ToggleLoadoutItem(
	ctx context.Context,
	input ToggleLoadoutItemInput,
) (*ToggleLoadoutItemOutput, error) {
	if _, ok := catalog.Item(input.ItemID); !ok {
		return nil, errors.InvalidArgumentf("unknown item %q", input.ItemID)
	}

	d, err := o.load(ctx)
	if err != nil {
		return nil, err
	}

	if d.HasLoadoutItem(input.ItemID) {
		for i, id := range d.LoadoutIDs {
			if id == input.ItemID {
				d.LoadoutIDs = append(d.LoadoutIDs[:i], d.LoadoutIDs[i+1:]...)
				break
			}
		}
	} else if len(d.LoadoutIDs) < rules.MaxLoadoutItems {
		d.LoadoutIDs = append(d.LoadoutIDs, input.ItemID)
	} else {
		return &ToggleLoadoutItemOutput{Draft: d}, nil
	}

	if err := o.persist(ctx, d); err != nil {
		return nil, err
	}
	return &ToggleLoadoutItemOutput{Draft: d}, nil
}

// gate returns nil when the draft may leave its current stage going forward.
func gate(d *survival.Draft) error {
	switch d.Stage {
	case survival.StageBasics:
		return nil
	case survival.StageStats:
		if d.Stats.Total() != rules.StatPointPool {
			return errors.FailedPreconditionf(
				"all %d stat points must be assigned, %d left", rules.StatPointPool, d.PointsLeft)
		}
		return nil
	case survival.StagePersonalSkills:
		if len(d.SelectedPersonalSkillIDs) != rules.RequiredPersonalSkills {
			return errors.FailedPreconditionf(
				"exactly %d personal skills must be selected", rules.RequiredPersonalSkills)
		}
		if d.PersonalSkillPointsLeft != 0 {
			return errors.FailedPreconditionf(
				"%d personal skill points are still unassigned", d.PersonalSkillPointsLeft)
		}
		return nil
	case survival.StageSpecialSkills:
		// This is the save gate: the draft is checked before the health
		// review becomes reachable.
		vb := errors.NewValidationBuilder()
		errors.ValidateRequired("name", d.Name, vb)
		if err := vb.Build(); err != nil {
			return err
		}
		if len(d.SpecialSkillIDs) != rules.RequiredSpecialSkills {
			return errors.FailedPreconditionf(
				"exactly %d special skills must be selected, have %d",
				rules.RequiredSpecialSkills, len(d.SpecialSkillIDs))
		}
		return nil
	case survival.StageHealthReview:
		return nil
	default:
		return errors.FailedPrecondition("creation finishes through finalize")
	}
}

// Advance moves one stage forward after its gate passes.
func (o *Orchestrator) Advance(ctx context.Context, _ AdvanceInput) (*AdvanceOutput, error) {
	d, err := o.load(ctx)
	if err != nil {
		return nil, err
	}

	if err := gate(d); err != nil {
		return nil, err
	}

	d.Stage = d.Stage.Next()

	if err := o.persist(ctx, d); err != nil {
		return nil, err
	}
	return &AdvanceOutput{Draft: d}, nil
}

// Back moves one stage backward. Backward movement is never gated.
func (o *Orchestrator) Back(ctx context.Context, _ BackInput) (*BackOutput, error) {
	d, err := o.load(ctx)
	if err != nil {
		return nil, err
	}

	d.Stage = d.Stage.Prev()

	if err := o.persist(ctx, d); err != nil {
		return nil, err
	}
	return &BackOutput{Draft: d}, nil
}

// Finalize validates the whole draft, converts it into a persisted
// character, and clears the draft slot.
func (o *Orchestrator) Finalize(ctx context.Context, _ FinalizeInput) (*FinalizeOutput, error) {
	d, err := o.load(ctx)
	if err != nil {
		return nil, err
	}

	if err := o.validateComplete(d); err != nil {
		return nil, err
	}

	now := o.clock.Now().UTC().Format(time.RFC3339)
	health := rules.StartingHealth(d.Stats.Resistance)

	inventory := make([]survival.Item, 0, len(d.LoadoutIDs))
	for _, id := range d.LoadoutIDs {
		item, ok := catalog.NewItem(id)
		if !ok {
			return nil, errors.InvalidArgumentf("unknown item %q in loadout", id)
		}
		inventory = append(inventory, *item)
	}

	ch := &survival.Character{
		ID:                o.idGen.Generate(),
		Name:              d.Name,
		Age:               d.Age,
		Background:        d.Background,
		Appearance:        d.Appearance,
		ImageData:         d.ImageData,
		Level:             1,
		Stats:             d.Stats,
		PersonalSkills:    d.PersonalSkills,
		SpecialSkillIDs:   d.SpecialSkillIDs,
		Health:            survival.Health{Current: health, Max: health},
		Inventory:         inventory,
		InventoryCapacity: rules.DefaultInventoryCapacity,
		CreatedAt:         now,
		LastUpdated:       now,
	}

	out, err := o.stateRepo.Save(ctx, gamestate.SaveInput{
		State: &survival.GameState{Character: ch},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to persist finalized character")
	}

	if _, err := o.draftRepo.Delete(ctx, draft.DeleteInput{}); err != nil {
		// The character is saved; a draft that lingers is only cosmetic.
		slog.WarnContext(ctx, "failed to clear draft after finalize",
			"character_id", ch.ID,
			"error", err.Error())
	}

	slog.DebugContext(ctx, "finalized character",
		"character_id", ch.ID,
		"name", ch.Name,
		"health", health)

	return &FinalizeOutput{State: out.State}, nil
}

// validateComplete re-checks every creation invariant before finalize.
func (o *Orchestrator) validateComplete(d *survival.Draft) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", d.Name, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	if d.Stats.Total() != rules.StatPointPool {
		return errors.FailedPreconditionf(
			"all %d stat points must be assigned", rules.StatPointPool)
	}
	if len(d.SelectedPersonalSkillIDs) != rules.RequiredPersonalSkills {
		return errors.FailedPreconditionf(
			"exactly %d personal skills must be selected", rules.RequiredPersonalSkills)
	}
	if rules.PersonalSkillPointsLeft(d.Stats.Intelligence, d.PersonalSkills) != 0 {
		return errors.FailedPrecondition("personal skill points must be fully assigned")
	}
	if len(d.SpecialSkillIDs) != rules.RequiredSpecialSkills {
		return errors.FailedPreconditionf(
			"exactly %d special skills must be selected", rules.RequiredSpecialSkills)
	}
	if len(d.LoadoutIDs) > rules.MaxLoadoutItems {
		return errors.FailedPreconditionf(
			"starting loadout holds at most %d items", rules.MaxLoadoutItems)
	}
	return nil
}
