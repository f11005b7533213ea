// Package encounters implements the event simulator: predefined and
// user-authored narrative events applied to a character. Triggering an event
// moves health within its clamps, grants items through the backpack merge
// rules, and appends a line to the persisted event log.
package encounters

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/zombierpg/survivor-api/internal/catalog"
	"github.com/zombierpg/survivor-api/internal/entities/survival"
	"github.com/zombierpg/survivor-api/internal/errors"
	"github.com/zombierpg/survivor-api/internal/events"
	"github.com/zombierpg/survivor-api/internal/orchestrators/inventory"
	"github.com/zombierpg/survivor-api/internal/pkg/clock"
	"github.com/zombierpg/survivor-api/internal/pkg/idgen"
	"github.com/zombierpg/survivor-api/internal/repositories/gamestate"
	"github.com/zombierpg/survivor-api/internal/repositories/registry"
)

// Orchestrator drives the event simulator.
type Orchestrator struct {
	stateRepo    gamestate.Repository
	registryRepo registry.Repository
	bus          *events.Bus
	idGen        idgen.Generator
	clock        clock.Clock
	rng          *rand.Rand
}

// Config contains the dependencies for the encounters orchestrator.
type Config struct {
	GameStateRepo gamestate.Repository
	RegistryRepo  registry.Repository
	Bus           *events.Bus
	IDGenerator   idgen.Generator
	Clock         clock.Clock

	// Rand drives the remove_random effect; seeded from the wall clock
	// when nil. Tests inject a fixed seed.
	Rand *rand.Rand
}

// Validate validates the Config.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.GameStateRepo == nil {
		vb.RequiredField("GameStateRepo")
	}
	if cfg.RegistryRepo == nil {
		vb.RequiredField("RegistryRepo")
	}
	if cfg.Bus == nil {
		vb.RequiredField("Bus")
	}
	return vb.Build()
}

// New creates an encounters orchestrator from the config.
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
		g = idgen.NewUUID("event")
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404
	}

	return &Orchestrator{
		stateRepo:    cfg.GameStateRepo,
		registryRepo: cfg.RegistryRepo,
		bus:          cfg.Bus,
		idGen:        g,
		clock:        c,
		rng:          rng,
	}, nil
}

// ListEvents returns the predefined catalog followed by the custom events.
func (o *Orchestrator) ListEvents(ctx context.Context, _ ListEventsInput) (*ListEventsOutput, error) {
	out, err := o.registryRepo.GetCustomEvents(ctx, registry.GetCustomEventsInput{})
	if err != nil {
		return nil, err
	}
	return &ListEventsOutput{Events: append(catalog.Events(), out.Events...)}, nil
}

func validateEventFields(title string, eventType survival.EventType, itemIDs []string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("title", title, vb)
	switch eventType {
	case survival.EventDanger, survival.EventPositive, survival.EventNeutral:
	default:
		vb.InvalidField("type", "unknown event type")
	}
	for _, id := range itemIDs {
		if id == survival.RemoveRandomItem {
			continue
		}
		if _, ok := catalog.Item(id); !ok {
			vb.Fieldf("items", "unknown item %q", id)
		}
	}
	return vb.Build()
}

// CreateCustomEvent stores a new user-authored event.
func (o *Orchestrator) CreateCustomEvent(
	ctx context.Context,
	input CreateCustomEventInput,
) (*CreateCustomEventOutput, error) {
	if err := validateEventFields(input.Title, input.Type, input.ItemIDs); err != nil {
		return nil, err
	}

	ev := survival.GameEvent{
		ID:          o.idGen.Generate(),
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Type:        input.Type,
		Effects: survival.EventEffects{
			Health:    input.Health,
			MaxHealth: input.MaxHealth,
			ItemIDs:   input.ItemIDs,
		},
		Custom: true,
	}

	out, err := o.registryRepo.GetCustomEvents(ctx, registry.GetCustomEventsInput{})
	if err != nil {
		return nil, err
	}
	if _, err := o.registryRepo.PutCustomEvents(ctx, registry.PutCustomEventsInput{
		Events: append(out.Events, ev),
	}); err != nil {
		return nil, err
	}

	return &CreateCustomEventOutput{Event: &ev}, nil
}

// UpdateCustomEvent edits a stored custom event in place.
func (o *Orchestrator) UpdateCustomEvent(
	ctx context.Context,
	input UpdateCustomEventInput,
) (*UpdateCustomEventOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("event ID cannot be empty")
	}
	if err := validateEventFields(input.Title, input.Type, input.ItemIDs); err != nil {
		return nil, err
	}

	out, err := o.registryRepo.GetCustomEvents(ctx, registry.GetCustomEventsInput{})
	if err != nil {
		return nil, err
	}

	for i := range out.Events {
		if out.Events[i].ID != input.ID {
			continue
		}
		out.Events[i] = survival.GameEvent{
			ID:          input.ID,
			Title:       strings.TrimSpace(input.Title),
			Description: input.Description,
			Type:        input.Type,
			Effects: survival.EventEffects{
				Health:    input.Health,
				MaxHealth: input.MaxHealth,
				ItemIDs:   input.ItemIDs,
			},
			Custom: true,
		}
		if _, err := o.registryRepo.PutCustomEvents(ctx, registry.PutCustomEventsInput{
			Events: out.Events,
		}); err != nil {
			return nil, err
		}
		return &UpdateCustomEventOutput{Event: &out.Events[i]}, nil
	}

	return nil, errors.NotFoundf("custom event %q not found", input.ID)
}

// DeleteCustomEvent removes a stored custom event.
func (o *Orchestrator) DeleteCustomEvent(
	ctx context.Context,
	input DeleteCustomEventInput,
) (*DeleteCustomEventOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("event ID cannot be empty")
	}

	out, err := o.registryRepo.GetCustomEvents(ctx, registry.GetCustomEventsInput{})
	if err != nil {
		return nil, err
	}

	for i := range out.Events {
		if out.Events[i].ID != input.ID {
			continue
		}
		remaining := append(out.Events[:i], out.Events[i+1:]...)
		if _, err := o.registryRepo.PutCustomEvents(ctx, registry.PutCustomEventsInput{
			Events: remaining,
		}); err != nil {
			return nil, err
		}
		return &DeleteCustomEventOutput{}, nil
	}

	return nil, errors.NotFoundf("custom event %q not found", input.ID)
}

// findEvent resolves an event id against the predefined catalog, then the
// custom registry.
func (o *Orchestrator) findEvent(ctx context.Context, id string) (*survival.GameEvent, error) {
	if ev, ok := catalog.Event(id); ok {
		return &ev, nil
	}

	out, err := o.registryRepo.GetCustomEvents(ctx, registry.GetCustomEventsInput{})
	if err != nil {
		return nil, err
	}
	for i := range out.Events {
		if out.Events[i].ID == id {
			return &out.Events[i], nil
		}
	}

	return nil, errors.NotFoundf("event %q not found", id)
}

// Trigger applies an event to a character: max-health delta first, then the
// health delta clamped to [0, max], then item effects. A full backpack stops
// item grants without failing the event.
func (o *Orchestrator) Trigger(ctx context.Context, input TriggerInput) (*TriggerOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	ev, err := o.findEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	out, err := o.stateRepo.Get(ctx, gamestate.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	ch := out.State.Character

	healthBefore := ch.Health

	ch.Health.Max += ev.Effects.MaxHealth
	if ch.Health.Max < 1 {
		ch.Health.Max = 1
	}
	ch.Health.Current += ev.Effects.Health
	if ch.Health.Current > ch.Health.Max {
		ch.Health.Current = ch.Health.Max
	}
	if ch.Health.Current < 0 {
		ch.Health.Current = 0
	}

	granted := make([]string, 0, len(ev.Effects.ItemIDs))
	removed := ""
	for _, itemID := range ev.Effects.ItemIDs {
		if itemID == survival.RemoveRandomItem {
			if len(ch.Inventory) == 0 {
				continue
			}
			i := o.rng.Intn(len(ch.Inventory))
			removed = ch.Inventory[i].Name
			ch.Inventory = append(ch.Inventory[:i], ch.Inventory[i+1:]...)
			continue
		}

		item, ok := catalog.NewItem(itemID)
		if !ok {
			slog.WarnContext(ctx, "event references unknown item",
				"event_id", ev.ID,
				"item_id", itemID)
			continue
		}
		if err := inventory.Place(ch, item); err != nil {
			if errors.IsResourceExhausted(err) {
				slog.DebugContext(ctx, "backpack full, dropping event grant",
					"event_id", ev.ID,
					"item_id", itemID)
				break
			}
			return nil, err
		}
		granted = append(granted, item.Name)
	}

	ch.LastUpdated = o.clock.Now().UTC().Format(time.RFC3339)
	if _, err := o.stateRepo.Save(ctx, gamestate.SaveInput{State: out.State}); err != nil {
		return nil, errors.Wrapf(err, "failed to persist event outcome")
	}

	o.logEvent(ctx, ev, ch)

	if ch.Health != healthBefore {
		o.bus.Publish(events.HealthChange{
			Current: ch.Health.Current,
			Max:     ch.Health.Max,
		})
	}

	return &TriggerOutput{
		Character:    ch,
		Event:        ev,
		GrantedItems: granted,
		RemovedItem:  removed,
	}, nil
}

func (o *Orchestrator) logEvent(ctx context.Context, ev *survival.GameEvent, ch *survival.Character) {
	entry := fmt.Sprintf("%s %s: %s (salud %d/%d)",
		o.clock.Now().UTC().Format(time.RFC3339),
		ev.Title, ev.Description,
		ch.Health.Current, ch.Health.Max)

	if _, err := o.registryRepo.AppendEventLog(ctx, registry.AppendEventLogInput{
		Entry: entry,
	}); err != nil {
		// The outcome is already saved; a lost log line is not worth
		// failing the trigger.
		slog.WarnContext(ctx, "failed to append event log",
			"event_id", ev.ID,
			"error", err.Error())
	}
}

// EventLog returns the log entries, newest first.
func (o *Orchestrator) EventLog(ctx context.Context, _ EventLogInput) (*EventLogOutput, error) {
	out, err := o.registryRepo.GetEventLog(ctx, registry.GetEventLogInput{})
	if err != nil {
		return nil, err
	}
	return &EventLogOutput{Entries: out.Entries}, nil
}

// ClearEventLog empties the log.
func (o *Orchestrator) ClearEventLog(ctx context.Context, _ ClearEventLogInput) (*ClearEventLogOutput, error) {
	if _, err := o.registryRepo.ClearEventLog(ctx, registry.ClearEventLogInput{}); err != nil {
		return nil, err
	}
	return &ClearEventLogOutput{}, nil
}
