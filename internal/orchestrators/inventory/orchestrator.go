// Package inventory implements the capacity-bounded backpack: add, remove,
// use, and restack semantics shared by pickups, events, and manual edits.
// Every successful mutation stamps lastUpdated and persists the character
// before returning.
package inventory

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/zombierpg/survivor-api/internal/catalog"
	"github.com/zombierpg/survivor-api/internal/entities/survival"
	"github.com/zombierpg/survivor-api/internal/errors"
	"github.com/zombierpg/survivor-api/internal/events"
	"github.com/zombierpg/survivor-api/internal/pkg/clock"
	"github.com/zombierpg/survivor-api/internal/pkg/idgen"
	"github.com/zombierpg/survivor-api/internal/repositories/gamestate"
	"github.com/zombierpg/survivor-api/internal/repositories/registry"
)

// Orchestrator drives backpack mutations.
type Orchestrator struct {
	stateRepo    gamestate.Repository
	registryRepo registry.Repository
	bus          *events.Bus
	idGen        idgen.Generator
	clock        clock.Clock
}

// Config contains the dependencies for the inventory orchestrator.
type Config struct {
	GameStateRepo gamestate.Repository
	RegistryRepo  registry.Repository
	Bus           *events.Bus
	IDGenerator   idgen.Generator
	Clock         clock.Clock
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

// New creates an inventory orchestrator from the config.
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
		g = idgen.NewUUID("item")
	}

	return &Orchestrator{
		stateRepo:    cfg.GameStateRepo,
		registryRepo: cfg.RegistryRepo,
		bus:          cfg.Bus,
		idGen:        g,
		clock:        c,
	}, nil
}

func (o *Orchestrator) load(ctx context.Context, id string) (*survival.GameState, error) {
	if id == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	out, err := o.stateRepo.Get(ctx, gamestate.GetInput{ID: id})
	if err != nil {
		return nil, err
	}
	return out.State, nil
}

func (o *Orchestrator) persist(ctx context.Context, state *survival.GameState) error {
	state.Character.LastUpdated = o.clock.Now().UTC().Format(time.RFC3339)
	_, err := o.stateRepo.Save(ctx, gamestate.SaveInput{State: state})
	return err
}

// Place puts the incoming item into the backpack following the merge rules:
// stackable items merge into an existing stack of the same id when the result
// fits within maxStack, otherwise a separate stack is appended. An overflow
// never truncates quantity. Capacity is checked before anything else. Event
// grants go through the same rule.
func Place(ch *survival.Character, incoming *survival.Item) error {
	if len(ch.Inventory) >= ch.InventoryCapacity {
		return errors.ResourceExhaustedf(
			"inventory is full (%d/%d)", len(ch.Inventory), ch.InventoryCapacity)
	}

	if incoming.Stackable {
		if i := ch.FindItemIndex(incoming.ID); i >= 0 {
			existing := &ch.Inventory[i]
			if existing.CanStackWith(incoming) {
				existing.Quantity += incoming.Quantity
				return nil
			}
		}
	}

	ch.Inventory = append(ch.Inventory, *incoming)
	return nil
}

// AddItem adds a catalog item.
func (o *Orchestrator) AddItem(ctx context.Context, input AddItemInput) (*AddItemOutput, error) {
	item, ok := catalog.NewItem(input.ItemID)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown item %q", input.ItemID)
	}

	state, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	ch := state.Character

	if err := Place(ch, item); err != nil {
		return nil, err
	}

	if err := o.persist(ctx, state); err != nil {
		return nil, err
	}
	return &AddItemOutput{Character: ch}, nil
}

// AddCustomItem adds a user-authored item and remembers its template in the
// custom-item registry.
func (o *Orchestrator) AddCustomItem(
	ctx context.Context,
	input AddCustomItemInput,
) (*AddCustomItemOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if !input.Type.Valid() {
		vb.InvalidField("type", "unknown item type")
	}
	if input.Weight < 0 {
		vb.InvalidField("weight", "cannot be negative")
	}
	if input.Stackable {
		if input.MaxStack < 1 {
			vb.InvalidField("maxStack", "stackable items need a max stack of at least 1")
		}
		if input.Quantity < 1 || (input.MaxStack >= 1 && input.Quantity > input.MaxStack) {
			vb.InvalidField("quantity", "must be between 1 and maxStack")
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	qty := input.Quantity
	if !input.Stackable {
		qty = 1
	}

	item := &survival.Item{
		ID:            o.idGen.Generate(),
		Name:          strings.TrimSpace(input.Name),
		Description:   input.Description,
		Type:          input.Type,
		Stackable:     input.Stackable,
		Quantity:      qty,
		MaxStack:      input.MaxStack,
		Weight:        input.Weight,
		Image:         input.Image,
		Usable:        input.Usable,
		Consumable:    input.Consumable,
		AmmoType:      input.AmmoType,
		HealthRestore: input.HealthRestore,
		Damage:        input.Damage,
	}

	state, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	ch := state.Character

	if err := Place(ch, item); err != nil {
		return nil, err
	}

	if err := o.persist(ctx, state); err != nil {
		return nil, err
	}

	// Registry failures do not undo the add; the template is a convenience.
	if err := o.rememberTemplate(ctx, item); err != nil {
		slog.WarnContext(ctx, "failed to store custom item template",
			"item_id", item.ID,
			"error", err.Error())
	}

	return &AddCustomItemOutput{Character: ch, Item: item}, nil
}

func (o *Orchestrator) rememberTemplate(ctx context.Context, item *survival.Item) error {
	out, err := o.registryRepo.GetCustomItems(ctx, registry.GetCustomItemsInput{})
	if err != nil {
		return err
	}
	_, err = o.registryRepo.PutCustomItems(ctx, registry.PutCustomItemsInput{
		Items: append(out.Items, *item),
	})
	return err
}

// CustomItems lists the stored custom item templates.
func (o *Orchestrator) CustomItems(ctx context.Context, _ CustomItemsInput) (*CustomItemsOutput, error) {
	out, err := o.registryRepo.GetCustomItems(ctx, registry.GetCustomItemsInput{})
	if err != nil {
		return nil, err
	}
	return &CustomItemsOutput{Items: out.Items}, nil
}

// RemoveItem drops one whole stack by index.
func (o *Orchestrator) RemoveItem(ctx context.Context, input RemoveItemInput) (*RemoveItemOutput, error) {
	state, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	ch := state.Character

	if input.Index < 0 || input.Index >= len(ch.Inventory) {
		return nil, errors.InvalidArgumentf("no item at index %d", input.Index)
	}

	ch.Inventory = append(ch.Inventory[:input.Index], ch.Inventory[input.Index+1:]...)

	if err := o.persist(ctx, state); err != nil {
		return nil, err
	}
	return &RemoveItemOutput{Character: ch}, nil
}

// UseItem uses the item at an index. Consumables lose one unit and restore
// health clamped to max; usable non-consumables are informational only.
func (o *Orchestrator) UseItem(ctx context.Context, input UseItemInput) (*UseItemOutput, error) {
	state, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	ch := state.Character

	if input.Index < 0 || input.Index >= len(ch.Inventory) {
		return nil, errors.InvalidArgumentf("no item at index %d", input.Index)
	}

	item := &ch.Inventory[input.Index]
	if !item.Usable {
		return nil, errors.FailedPreconditionf("%s cannot be used", item.Name)
	}

	if !item.Consumable {
		return &UseItemOutput{Character: ch}, nil
	}

	restored := 0
	if item.HealthRestore > 0 {
		before := ch.Health.Current
		ch.Health.Current += item.HealthRestore
		if ch.Health.Current > ch.Health.Max {
			ch.Health.Current = ch.Health.Max
		}
		restored = ch.Health.Current - before
	}

	if item.Quantity > 1 {
		item.Quantity--
	} else {
		ch.Inventory = append(ch.Inventory[:input.Index], ch.Inventory[input.Index+1:]...)
	}

	if err := o.persist(ctx, state); err != nil {
		return nil, err
	}

	if restored > 0 {
		o.bus.Publish(events.HealthChange{
			Current: ch.Health.Current,
			Max:     ch.Health.Max,
		})
	}

	return &UseItemOutput{Character: ch, HealthRestored: restored}, nil
}

// SetQuantity changes a stack's quantity within [1, maxStack].
func (o *Orchestrator) SetQuantity(ctx context.Context, input SetQuantityInput) (*SetQuantityOutput, error) {
	state, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	ch := state.Character

	if input.Index < 0 || input.Index >= len(ch.Inventory) {
		return nil, errors.InvalidArgumentf("no item at index %d", input.Index)
	}

	item := &ch.Inventory[input.Index]
	if !item.Stackable {
		return nil, errors.FailedPreconditionf("%s does not stack", item.Name)
	}
	if input.Quantity < 1 || input.Quantity > item.MaxStack {
		return nil, errors.InvalidArgumentf(
			"quantity must be between 1 and %d", item.MaxStack)
	}

	item.Quantity = input.Quantity

	if err := o.persist(ctx, state); err != nil {
		return nil, err
	}
	return &SetQuantityOutput{Character: ch}, nil
}

// TotalWeight sums the carry weight of every stack.
func (o *Orchestrator) TotalWeight(ctx context.Context, input TotalWeightInput) (*TotalWeightOutput, error) {
	state, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	return &TotalWeightOutput{Weight: state.Character.InventoryWeight()}, nil
}
